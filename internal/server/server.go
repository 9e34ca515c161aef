package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/gingham-app/gingham/internal/geocode"
	"github.com/gingham-app/gingham/internal/plan"
	"github.com/gingham-app/gingham/internal/ratelimit"
	"github.com/gingham-app/gingham/internal/storage"
	"github.com/gingham-app/gingham/internal/weather"
)

// Server is the Gingham HTTP server.
type Server struct {
	httpServer *http.Server
	handler    http.Handler
	handlers   *Handlers
	logger     *slog.Logger
}

// Handler returns the root HTTP handler for use in tests.
func (s *Server) Handler() http.Handler {
	return s.handler
}

// ServerConfig holds all dependencies and configuration for creating a Server.
// Optional fields (nil-safe): DB, MCPServer.
type ServerConfig struct {
	// Required dependencies.
	Generator *plan.Generator
	Weather   *weather.Client
	Geocode   *geocode.Client
	Logger    *slog.Logger

	// Optional dependencies (nil = disabled).
	DB          *storage.DB
	MCPServer   *mcpserver.MCPServer
	RateLimiter ratelimit.Limiter

	// HTTP server settings.
	Port                int
	ReadTimeout         time.Duration
	WriteTimeout        time.Duration
	Version             string
	MaxRequestBodyBytes int64
	OpenAPISpec         []byte // Embedded OpenAPI YAML.

	// Extension points for embedding consumers.
	ExtraRoutes []func(*http.ServeMux)
	Middlewares []func(http.Handler) http.Handler
	PlanHooks   []PlanHook
}

// New creates a new HTTP server with all routes configured.
func New(cfg ServerConfig) *Server {
	h := NewHandlers(HandlersDeps{
		DB:                  cfg.DB,
		Generator:           cfg.Generator,
		Weather:             cfg.Weather,
		Geocode:             cfg.Geocode,
		Logger:              cfg.Logger,
		Version:             cfg.Version,
		MaxRequestBodyBytes: cfg.MaxRequestBodyBytes,
		PlanHooks:           cfg.PlanHooks,
		OpenAPISpec:         cfg.OpenAPISpec,
	})

	mux := http.NewServeMux()

	// Rate limiting guards only the routes that reach the public providers.
	limited := func(next http.HandlerFunc) http.Handler {
		if cfg.RateLimiter == nil {
			return next
		}
		return ratelimit.Middleware(cfg.RateLimiter, cfg.Logger, func(r *http.Request) string {
			return RequestIDFromContext(r.Context())
		})(next)
	}

	// Plan generation.
	mux.Handle("POST /v1/plans/goal", limited(h.HandleCreateGoalPlan))
	mux.Handle("POST /v1/plans/picnic", limited(h.HandleCreatePicnicPlan))

	// Stored plan retrieval. The literal /latest segment wins over {plan_id}
	// under the mux's most-specific-pattern rule.
	mux.HandleFunc("GET /v1/plans", h.HandleListPlans)
	mux.HandleFunc("GET /v1/plans/latest", h.HandleLatestPlan)
	mux.HandleFunc("GET /v1/plans/{plan_id}", h.HandleGetPlan)
	mux.HandleFunc("GET /v1/plans/{plan_id}/export", h.HandleExportPlan)

	// Provider lookups.
	mux.Handle("GET /v1/weather", limited(h.HandleWeather))
	mux.Handle("GET /v1/locations", limited(h.HandleLocations))

	// MCP StreamableHTTP transport.
	if cfg.MCPServer != nil {
		mcpHTTP := mcpserver.NewStreamableHTTPServer(cfg.MCPServer)
		mux.Handle("/mcp", mcpHTTP)
	}

	// OpenAPI spec (no rate limit).
	mux.HandleFunc("GET /openapi.yaml", h.HandleOpenAPISpec)

	// Health.
	mux.HandleFunc("GET /health", h.HandleHealth)

	// Embedder-registered routes share the mux and middleware chain.
	for _, register := range cfg.ExtraRoutes {
		register(mux)
	}

	// Middleware chain (outermost executes first):
	// request ID → security headers → tracing → logging → recovery → handler.
	var handler http.Handler = mux
	handler = recoveryMiddleware(cfg.Logger, handler)
	handler = loggingMiddleware(cfg.Logger, handler)
	handler = tracingMiddleware(handler)
	handler = securityHeadersMiddleware(handler)
	handler = requestIDMiddleware(handler)

	// Embedder middlewares wrap last so the first registered is outermost and
	// sees every request, including /health.
	for i := len(cfg.Middlewares) - 1; i >= 0; i-- {
		handler = cfg.Middlewares[i](handler)
	}

	return &Server{
		httpServer: &http.Server{
			Addr:         fmt.Sprintf(":%d", cfg.Port),
			Handler:      handler,
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
		},
		handler:  handler,
		handlers: h,
		logger:   cfg.Logger,
	}
}

// Handlers returns the underlying Handlers for use in tests.
func (s *Server) Handlers() *Handlers {
	return s.handlers
}

// Start begins serving HTTP requests.
func (s *Server) Start() error {
	s.logger.Info("http server starting", "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully shuts down the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("http server shutting down")
	return s.httpServer.Shutdown(ctx)
}
