package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gingham-app/gingham/internal/model"
)

// SavePlan inserts a generated plan. Plan IDs are generated by the engine
// and unique per process; re-saving the same ID is a no-op rather than an
// error so retried requests stay idempotent.
func (db *DB) SavePlan(ctx context.Context, plan model.StoredPlan) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO plans (id, kind, title, payload, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 ON CONFLICT (id) DO NOTHING`,
		plan.ID, string(plan.Kind), plan.Title, plan.Payload, plan.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("storage: save plan: %w", err)
	}
	return nil
}

// GetPlan retrieves a plan by its engine-assigned ID.
func (db *DB) GetPlan(ctx context.Context, id string) (model.StoredPlan, error) {
	var plan model.StoredPlan
	err := db.pool.QueryRow(ctx,
		`SELECT id, kind, title, payload, created_at FROM plans WHERE id = $1`, id,
	).Scan(&plan.ID, &plan.Kind, &plan.Title, &plan.Payload, &plan.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.StoredPlan{}, ErrNotFound
		}
		return model.StoredPlan{}, fmt.Errorf("storage: get plan: %w", err)
	}
	return plan, nil
}

// ListPlans returns plans newest first, optionally filtered by kind. Payloads
// are included; callers listing for display should project what they need.
func (db *DB) ListPlans(ctx context.Context, kind model.PlanKind, limit int) ([]model.StoredPlan, error) {
	if limit <= 0 {
		limit = 50
	}

	query := `SELECT id, kind, title, payload, created_at FROM plans`
	args := []any{}
	if kind != "" {
		query += ` WHERE kind = $1`
		args = append(args, string(kind))
	}
	query += fmt.Sprintf(` ORDER BY created_at DESC, id DESC LIMIT %d`, limit)

	rows, err := db.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("storage: list plans: %w", err)
	}
	defer rows.Close()

	var plans []model.StoredPlan
	for rows.Next() {
		var plan model.StoredPlan
		if err := rows.Scan(&plan.ID, &plan.Kind, &plan.Title, &plan.Payload, &plan.CreatedAt); err != nil {
			return nil, fmt.Errorf("storage: scan plan: %w", err)
		}
		plans = append(plans, plan)
	}
	return plans, rows.Err()
}

// GetLatestPlan returns the most recently created plan of the given kind.
func (db *DB) GetLatestPlan(ctx context.Context, kind model.PlanKind) (model.StoredPlan, error) {
	var plan model.StoredPlan
	err := db.pool.QueryRow(ctx,
		`SELECT id, kind, title, payload, created_at FROM plans
		 WHERE kind = $1 ORDER BY created_at DESC, id DESC LIMIT 1`, string(kind),
	).Scan(&plan.ID, &plan.Kind, &plan.Title, &plan.Payload, &plan.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.StoredPlan{}, ErrNotFound
		}
		return model.StoredPlan{}, fmt.Errorf("storage: get latest plan: %w", err)
	}
	return plan, nil
}

// DeletePlan removes a plan by ID. Missing plans return ErrNotFound.
func (db *DB) DeletePlan(ctx context.Context, id string) error {
	tag, err := db.pool.Exec(ctx, `DELETE FROM plans WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("storage: delete plan: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
