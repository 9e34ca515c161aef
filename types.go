package gingham

import (
	"encoding/json"
	"time"
)

// PlanKind distinguishes the two plan pipelines.
type PlanKind string

const (
	PlanKindGoal   PlanKind = "goal"
	PlanKindPicnic PlanKind = "picnic"
)

// Plan is the public representation of a generated plan.
// It is a curated view of internal/model.StoredPlan for use in extension
// interfaces. No internal package imports, so it is safe to use from outside the module.
type Plan struct {
	ID        string
	Kind      PlanKind
	Title     string
	CreatedAt time.Time
	// Payload is the full plan document as JSON (the same document the
	// HTTP API returns from POST /v1/plans/goal or /v1/plans/picnic).
	Payload json.RawMessage
}
