package gingham

import (
	"context"
	"net/http"
)

// PlanHook receives async notifications when a plan is generated.
// Multiple hooks may be registered via multiple WithPlanHook calls.
// Hook methods run in goroutines and must not block indefinitely.
// Failures are logged but do not fail the originating request.
type PlanHook interface {
	OnPlanCreated(ctx context.Context, plan Plan) error
}

// RouteRegistrar registers additional routes on the shared HTTP mux.
// Extra routes share the mux, middleware chain, and OTEL instrumentation
// with the built-in routes. The function is called once during New() after
// all built-in routes are registered.
type RouteRegistrar func(mux *http.ServeMux)

// Middleware wraps the root HTTP handler.
// Applied outermost (before routing), so it sees all requests including /health.
// Multiple middlewares are applied in registration order (first-registered = outermost).
type Middleware func(http.Handler) http.Handler
