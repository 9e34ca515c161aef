package server

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/gingham-app/gingham/internal/export"
	"github.com/gingham-app/gingham/internal/geocode"
	"github.com/gingham-app/gingham/internal/model"
	"github.com/gingham-app/gingham/internal/plan"
	"github.com/gingham-app/gingham/internal/storage"
	"github.com/gingham-app/gingham/internal/weather"
)

// Handlers holds HTTP handler dependencies.
type Handlers struct {
	db                  *storage.DB
	generator           *plan.Generator
	weather             *weather.Client
	geocode             *geocode.Client
	logger              *slog.Logger
	startedAt           time.Time
	version             string
	maxRequestBodyBytes int64
	planHooks           []PlanHook
	openapiSpec         []byte
}

// PlanHook receives notifications after a plan is generated.
// Hook methods run in goroutines and must not block indefinitely.
// Failures are logged but never fail the originating request.
type PlanHook interface {
	OnPlanCreated(ctx context.Context, plan model.StoredPlan) error
}

// HandlersDeps holds all dependencies for constructing Handlers.
// DB is optional (nil runs the API stateless, without persistence).
type HandlersDeps struct {
	DB                  *storage.DB
	Generator           *plan.Generator
	Weather             *weather.Client
	Geocode             *geocode.Client
	Logger              *slog.Logger
	Version             string
	MaxRequestBodyBytes int64
	PlanHooks           []PlanHook
	OpenAPISpec         []byte
}

// NewHandlers creates a new Handlers with all dependencies.
func NewHandlers(d HandlersDeps) *Handlers {
	return &Handlers{
		db:                  d.DB,
		generator:           d.Generator,
		weather:             d.Weather,
		geocode:             d.Geocode,
		logger:              d.Logger,
		startedAt:           time.Now(),
		version:             d.Version,
		maxRequestBodyBytes: d.MaxRequestBodyBytes,
		planHooks:           d.PlanHooks,
		openapiSpec:         d.OpenAPISpec,
	}
}

// HandleOpenAPISpec serves the embedded OpenAPI specification.
func (h *Handlers) HandleOpenAPISpec(w http.ResponseWriter, r *http.Request) {
	if len(h.openapiSpec) == 0 {
		http.NotFound(w, r)
		return
	}
	w.Header().Set("Content-Type", "application/yaml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(h.openapiSpec)
}

// HandleCreateGoalPlan handles POST /v1/plans/goal.
func (h *Handlers) HandleCreateGoalPlan(w http.ResponseWriter, r *http.Request) {
	var in model.GoalInput
	if err := decodeJSON(w, r, &in, h.maxRequestBodyBytes); err != nil {
		handleDecodeError(w, r, err)
		return
	}

	generated, err := h.generator.Goal(in)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, err.Error())
		return
	}

	h.persistPlan(r, model.PlanKindGoal, generated.ID, generated.Title, generated.CreatedAt, generated)
	writeJSON(w, r, http.StatusOK, generated)
}

// HandleCreatePicnicPlan handles POST /v1/plans/picnic.
//
// The forecast is best-effort: a geocoding or weather failure never fails the
// plan, it falls back to generic weather tips and marks the source
// unavailable.
func (h *Handlers) HandleCreatePicnicPlan(w http.ResponseWriter, r *http.Request) {
	var in model.PicnicInput
	if err := decodeJSON(w, r, &in, h.maxRequestBodyBytes); err != nil {
		handleDecodeError(w, r, err)
		return
	}
	if err := in.Validate(); err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, err.Error())
		return
	}

	forecast := h.fetchForecast(r, in)

	generated, err := h.generator.Picnic(in, forecast)
	if err != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, err.Error())
		return
	}

	h.persistPlan(r, model.PlanKindPicnic, generated.ID, generated.Title, generated.CreatedAt, generated)
	writeJSON(w, r, http.StatusOK, generated)
}

// fetchForecast resolves the picnic location to a coordinate (unless the
// caller supplied one) and fetches the forecast. Returns nil on any failure.
func (h *Handlers) fetchForecast(r *http.Request, in model.PicnicInput) *model.Forecast {
	ctx := r.Context()

	var lat, lng float64
	if in.Coordinate != nil {
		lat, lng = in.Coordinate.Lat, in.Coordinate.Lng
	} else {
		place, err := h.geocode.Resolve(ctx, in.Location)
		if err != nil {
			h.logger.Warn("geocode failed, skipping forecast",
				"location", in.Location,
				"error", err,
				"request_id", RequestIDFromContext(ctx),
			)
			return nil
		}
		lat, lng = place.Lat, place.Lng
	}

	forecast, err := h.weather.Forecast(ctx, lat, lng, in.Date)
	if err != nil {
		h.logger.Warn("forecast fetch failed, using generic tips",
			"lat", lat,
			"lng", lng,
			"error", err,
			"request_id", RequestIDFromContext(ctx),
		)
		return nil
	}
	return &forecast
}

// persistPlan saves a generated plan when persistence is configured. Save
// failures are logged, never surfaced: the plan was already generated.
// Registered plan hooks fire even in stateless mode.
func (h *Handlers) persistPlan(r *http.Request, kind model.PlanKind, id, title string, createdAt time.Time, payload any) {
	raw, err := json.Marshal(payload)
	if err != nil {
		h.logger.Error("marshal plan for storage", "plan_id", id, "error", err)
		return
	}
	stored := model.StoredPlan{
		ID:        id,
		Kind:      kind,
		Title:     title,
		Payload:   raw,
		CreatedAt: createdAt,
	}
	h.firePlanHooks(stored)
	if h.db == nil {
		return
	}
	if err := h.db.SavePlan(r.Context(), stored); err != nil {
		h.logger.Error("save plan",
			"plan_id", id,
			"error", err,
			"request_id", RequestIDFromContext(r.Context()),
		)
	}
}

// firePlanHooks notifies registered hooks asynchronously.
func (h *Handlers) firePlanHooks(stored model.StoredPlan) {
	if len(h.planHooks) == 0 {
		return
	}
	hooks := h.planHooks
	logger := h.logger
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		for _, hk := range hooks {
			if err := hk.OnPlanCreated(ctx, stored); err != nil {
				logger.Warn("plan hook OnPlanCreated failed", "plan_id", stored.ID, "error", err)
			}
		}
	}()
}

// planSummary is the list-view projection of a stored plan.
type planSummary struct {
	ID        string         `json:"id"`
	Kind      model.PlanKind `json:"kind"`
	Title     string         `json:"title"`
	CreatedAt time.Time      `json:"created_at"`
}

// storedPlanResponse is the detail view: the record plus its full payload.
type storedPlanResponse struct {
	ID        string          `json:"id"`
	Kind      model.PlanKind  `json:"kind"`
	Title     string          `json:"title"`
	CreatedAt time.Time       `json:"created_at"`
	Plan      json.RawMessage `json:"plan"`
}

// HandleListPlans handles GET /v1/plans?kind=&limit=.
func (h *Handlers) HandleListPlans(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeError(w, r, http.StatusServiceUnavailable, model.ErrCodeUnavailable, "persistence is not configured")
		return
	}

	kind, ok := parseKind(r.URL.Query().Get("kind"))
	if !ok {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "kind must be goal or picnic")
		return
	}

	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil || n < 1 {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "limit must be a positive integer")
			return
		}
		limit = n
	}

	plans, err := h.db.ListPlans(r.Context(), kind, limit)
	if err != nil {
		h.logger.Error("list plans", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to list plans")
		return
	}

	summaries := make([]planSummary, 0, len(plans))
	for _, p := range plans {
		summaries = append(summaries, planSummary{
			ID:        p.ID,
			Kind:      p.Kind,
			Title:     p.Title,
			CreatedAt: p.CreatedAt,
		})
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"plans": summaries})
}

// HandleGetPlan handles GET /v1/plans/{plan_id}.
func (h *Handlers) HandleGetPlan(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeError(w, r, http.StatusServiceUnavailable, model.ErrCodeUnavailable, "persistence is not configured")
		return
	}

	stored, err := h.db.GetPlan(r.Context(), r.PathValue("plan_id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "plan not found")
			return
		}
		h.logger.Error("get plan", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to load plan")
		return
	}

	writeJSON(w, r, http.StatusOK, storedPlanResponse{
		ID:        stored.ID,
		Kind:      stored.Kind,
		Title:     stored.Title,
		CreatedAt: stored.CreatedAt,
		Plan:      json.RawMessage(stored.Payload),
	})
}

// HandleLatestPlan handles GET /v1/plans/latest?kind=.
func (h *Handlers) HandleLatestPlan(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeError(w, r, http.StatusServiceUnavailable, model.ErrCodeUnavailable, "persistence is not configured")
		return
	}

	kind, ok := parseKind(r.URL.Query().Get("kind"))
	if !ok || kind == "" {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "kind must be goal or picnic")
		return
	}

	stored, err := h.db.GetLatestPlan(r.Context(), kind)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "no plans of that kind")
			return
		}
		h.logger.Error("latest plan", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to load plan")
		return
	}

	writeJSON(w, r, http.StatusOK, storedPlanResponse{
		ID:        stored.ID,
		Kind:      stored.Kind,
		Title:     stored.Title,
		CreatedAt: stored.CreatedAt,
		Plan:      json.RawMessage(stored.Payload),
	})
}

// HandleExportPlan handles GET /v1/plans/{plan_id}/export?format=text|ics|share.
// Only picnic plans export; goal plans are structured for progress tracking,
// not calendars.
func (h *Handlers) HandleExportPlan(w http.ResponseWriter, r *http.Request) {
	if h.db == nil {
		writeError(w, r, http.StatusServiceUnavailable, model.ErrCodeUnavailable, "persistence is not configured")
		return
	}

	format := r.URL.Query().Get("format")
	switch format {
	case "text", "ics", "share":
	default:
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "format must be text, ics, or share")
		return
	}

	stored, err := h.db.GetPlan(r.Context(), r.PathValue("plan_id"))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			writeError(w, r, http.StatusNotFound, model.ErrCodeNotFound, "plan not found")
			return
		}
		h.logger.Error("get plan for export", "error", err, "request_id", RequestIDFromContext(r.Context()))
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to load plan")
		return
	}
	if stored.Kind != model.PlanKindPicnic {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "only picnic plans can be exported")
		return
	}

	var picnic model.PicnicPlan
	if err := json.Unmarshal(stored.Payload, &picnic); err != nil {
		h.logger.Error("unmarshal stored picnic plan", "plan_id", stored.ID, "error", err)
		writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "stored plan is unreadable")
		return
	}

	switch format {
	case "text":
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte(export.Text(picnic)))
	case "ics":
		cal, err := export.Calendar(picnic)
		if err != nil {
			writeError(w, r, http.StatusInternalServerError, model.ErrCodeInternalError, "failed to build calendar: "+err.Error())
			return
		}
		w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
		w.Header().Set("Content-Disposition", `attachment; filename="picnic.ics"`)
		_, _ = w.Write([]byte(cal))
	case "share":
		writeJSON(w, r, http.StatusOK, map[string]string{
			"message": export.ShareMessage(picnic),
			"url":     export.ShareURL(picnic),
		})
	}
}

// HandleWeather handles GET /v1/weather?lat=&lng=&date=.
func (h *Handlers) HandleWeather(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
	lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
	if errLat != nil || errLng != nil {
		writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "lat and lng must be decimal coordinates")
		return
	}

	date := q.Get("date")
	if date != "" {
		if _, err := time.Parse(model.PicnicDateFormat, date); err != nil {
			writeError(w, r, http.StatusBadRequest, model.ErrCodeInvalidInput, "date must be YYYY-MM-DD")
			return
		}
	}

	forecast, err := h.weather.Forecast(r.Context(), lat, lng, date)
	if err != nil {
		h.logger.Warn("forecast fetch failed", "lat", lat, "lng", lng, "error", err)
		writeError(w, r, http.StatusBadGateway, model.ErrCodeUpstreamError, "weather provider unavailable")
		return
	}

	resp := model.WeatherResponse{Forecast: forecast}
	for _, day := range forecast.Daily {
		cond := weather.Describe(day.WeatherCode)
		resp.Conditions = append(resp.Conditions, model.DayOutlook{
			Date:        day.Date,
			Description: cond.Description,
			Icon:        cond.Icon,
		})
	}
	if date != "" {
		resp.Tips = weather.DeriveTips(forecast, date)
	}

	writeJSON(w, r, http.StatusOK, resp)
}

// locationResult is one geocoding candidate plus a ready-to-open maps link.
type locationResult struct {
	model.Place
	DirectionsURL string `json:"directions_url"`
}

// HandleLocations handles GET /v1/locations?q=.
func (h *Handlers) HandleLocations(w http.ResponseWriter, r *http.Request) {
	places, err := h.geocode.Search(r.Context(), r.URL.Query().Get("q"))
	if err != nil {
		h.logger.Warn("location search failed", "error", err)
		writeError(w, r, http.StatusBadGateway, model.ErrCodeUpstreamError, "geocoding provider unavailable")
		return
	}

	results := make([]locationResult, 0, len(places))
	for _, p := range places {
		results = append(results, locationResult{
			Place:         p,
			DirectionsURL: geocode.DirectionsURL(p),
		})
	}
	writeJSON(w, r, http.StatusOK, map[string]any{"places": results})
}

// HandleHealth handles GET /health.
func (h *Handlers) HandleHealth(w http.ResponseWriter, r *http.Request) {
	pgStatus := "disabled"
	status := "ok"
	httpStatus := http.StatusOK

	if h.db != nil {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := h.db.Ping(ctx); err != nil {
			pgStatus = "disconnected"
			status = "degraded"
			httpStatus = http.StatusServiceUnavailable
		} else {
			pgStatus = "connected"
		}
	}

	writeJSON(w, r, httpStatus, model.HealthResponse{
		Status:   status,
		Version:  h.version,
		Postgres: pgStatus,
		Uptime:   int64(time.Since(h.startedAt).Seconds()),
	})
}

// parseKind maps the kind query parameter; empty means no filter.
func parseKind(raw string) (model.PlanKind, bool) {
	switch raw {
	case "":
		return "", true
	case string(model.PlanKindGoal):
		return model.PlanKindGoal, true
	case string(model.PlanKindPicnic):
		return model.PlanKindPicnic, true
	default:
		return "", false
	}
}
