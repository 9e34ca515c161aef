package model

import "time"

// Error codes returned in the standard error envelope.
const (
	ErrCodeInvalidInput  = "invalid_input"
	ErrCodeNotFound      = "not_found"
	ErrCodeUnavailable   = "unavailable"
	ErrCodeUpstreamError = "upstream_error"
	ErrCodeRateLimited   = "rate_limited"
	ErrCodeInternalError = "internal_error"
)

// ResponseMeta carries request tracing info on every response.
type ResponseMeta struct {
	RequestID string    `json:"request_id"`
	Timestamp time.Time `json:"timestamp"`
}

// APIResponse is the standard response envelope for all HTTP API responses.
type APIResponse struct {
	Data any          `json:"data,omitempty"`
	Meta ResponseMeta `json:"meta"`
}

// ErrorDetail is the code/message body of an error response.
type ErrorDetail struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// APIError is the standard error response envelope.
type APIError struct {
	Error ErrorDetail  `json:"error"`
	Meta  ResponseMeta `json:"meta"`
}

// HealthResponse is the GET /health body.
type HealthResponse struct {
	Status   string `json:"status"`
	Version  string `json:"version"`
	Postgres string `json:"postgres"` // "connected", "disconnected", or "disabled"
	Uptime   int64  `json:"uptime_seconds"`
}

// WeatherResponse is the GET /v1/weather body: the raw forecast plus
// per-day condition descriptions and advisory tips for the requested date.
type WeatherResponse struct {
	Forecast   Forecast     `json:"forecast"`
	Conditions []DayOutlook `json:"conditions"`
	Tips       []string     `json:"tips,omitempty"`
}

// DayOutlook pairs a forecast day with its decoded condition.
type DayOutlook struct {
	Date        string `json:"date"`
	Description string `json:"description"`
	Icon        string `json:"icon"`
}

// PlanKind distinguishes stored plan records.
type PlanKind string

const (
	PlanKindGoal   PlanKind = "goal"
	PlanKindPicnic PlanKind = "picnic"
)

// StoredPlan is a persisted plan record. Payload is the full immutable plan
// JSON; the store treats it as opaque.
type StoredPlan struct {
	ID        string    `json:"id"` // the plan's own identity, e.g. "picnic_1724..._x7f3k2p9q"
	Kind      PlanKind  `json:"kind"`
	Title     string    `json:"title"`
	Payload   []byte    `json:"payload"`
	CreatedAt time.Time `json:"created_at"`
}
