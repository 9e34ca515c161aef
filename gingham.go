// Package gingham is the public API for embedding the Gingham planning server.
//
// Host applications import this package to construct and extend the server
// without forking it:
//
//	app, err := gingham.New(
//	    gingham.WithVersion(version),
//	    gingham.WithLogger(logger),
//	    gingham.WithPlanHook(myNotifier{}),
//	    gingham.WithExtraRoutes(myRoutes),
//	)
//	if err != nil { ... }
//	if err := app.Run(ctx); err != nil { ... }
//
// The import graph enforces a strict no-cycle rule: gingham (root) imports
// internal/*, but internal/* never imports gingham (root). Public types
// (Plan, PlanKind) are standalone structs with no internal imports; the
// conversion helper toPublicPlan lives here because this is the only file
// that sees both sides of the boundary.
package gingham

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/joho/godotenv"

	"github.com/gingham-app/gingham/api"
	"github.com/gingham-app/gingham/internal/config"
	"github.com/gingham-app/gingham/internal/geocode"
	"github.com/gingham-app/gingham/internal/mcp"
	"github.com/gingham-app/gingham/internal/model"
	"github.com/gingham-app/gingham/internal/plan"
	"github.com/gingham-app/gingham/internal/ratelimit"
	"github.com/gingham-app/gingham/internal/server"
	"github.com/gingham-app/gingham/internal/storage"
	"github.com/gingham-app/gingham/internal/telemetry"
	"github.com/gingham-app/gingham/internal/weather"
	"github.com/gingham-app/gingham/migrations"
)

// App is the Gingham server lifecycle. Construct with New(), run with Run().
// App has no public fields. Use New() options to configure it.
type App struct {
	cfg          config.Config
	db           *storage.DB
	srv          *server.Server
	limiter      ratelimit.Limiter
	otelShutdown telemetry.Shutdown
	logger       *slog.Logger
	version      string
}

// New initialises the Gingham server. It loads configuration, connects to
// the database when one is configured, runs migrations, wires all
// subsystems, and returns a ready-to-run App. It does NOT start any
// goroutines or accept HTTP connections until Run() is called.
func New(opts ...Option) (*App, error) {
	o := resolvedOptions{}
	for _, fn := range opts {
		fn(&o)
	}

	logger := o.logger
	if logger == nil {
		logger = slog.Default()
	}

	// Load .env file if present (non-fatal; production won't have one).
	_ = godotenv.Load()

	// Load configuration (env vars), then apply option overrides.
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if o.port != 0 {
		cfg.Port = o.port
	}
	if o.databaseURL != "" {
		cfg.DatabaseURL = o.databaseURL
	}
	if o.weatherBaseURL != "" {
		cfg.WeatherBaseURL = o.weatherBaseURL
	}
	if o.geocodeBaseURL != "" {
		cfg.GeocodeBaseURL = o.geocodeBaseURL
	}
	version := o.version
	if version == "" {
		version = "dev"
	}

	logger.Info("gingham starting", "version", version, "port", cfg.Port)

	// Initialize OpenTelemetry.
	otelShutdown, err := telemetry.Init(context.Background(), cfg.OTELEndpoint, cfg.ServiceName, version, cfg.OTELInsecure)
	if err != nil {
		return nil, fmt.Errorf("telemetry: %w", err)
	}

	// Connect to the database when configured. Without DATABASE_URL the
	// server runs stateless: plans are generated and returned but not stored.
	var db *storage.DB
	if cfg.DatabaseURL != "" {
		db, err = storage.New(context.Background(), cfg.DatabaseURL, logger)
		if err != nil {
			_ = otelShutdown(context.Background())
			return nil, fmt.Errorf("storage: %w", err)
		}

		if err := db.RunMigrations(context.Background(), migrations.FS); err != nil {
			db.Close()
			_ = otelShutdown(context.Background())
			return nil, fmt.Errorf("migrations: %w", err)
		}
		for i, extraFS := range o.extraMigrations {
			if err := db.RunMigrations(context.Background(), extraFS); err != nil {
				db.Close()
				_ = otelShutdown(context.Background())
				return nil, fmt.Errorf("extra migrations[%d]: %w", i, err)
			}
		}
	} else {
		logger.Info("persistence: disabled (no DATABASE_URL)")
	}

	// Provider clients. Empty base URLs select the public Open-Meteo endpoints.
	weatherClient := weather.NewClient(cfg.WeatherBaseURL)
	geocodeClient := geocode.NewClient(cfg.GeocodeBaseURL)

	generator := plan.New()

	// Rate limiter.
	var limiter ratelimit.Limiter
	if cfg.RateLimitEnabled {
		limiter = ratelimit.NewMemoryLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)
		logger.Info("rate limiting: memory (in-process token bucket)",
			"rps", cfg.RateLimitRPS, "burst", cfg.RateLimitBurst)
	} else {
		logger.Info("rate limiting: disabled")
	}

	// MCP server (mounted at /mcp by the HTTP server).
	mcpSrv := mcp.New(generator, weatherClient, geocodeClient, db, logger, version)

	// Adapt plan hooks from public gingham.PlanHook to internal server.PlanHook.
	var planHooks []server.PlanHook
	for _, h := range o.planHooks {
		planHooks = append(planHooks, &planHookAdapter{hook: h})
	}

	// Adapt route registrars and middlewares to the internal server formats.
	var extraRoutes []func(*http.ServeMux)
	for _, fn := range o.routeRegistrars {
		extraRoutes = append(extraRoutes, fn)
	}
	var middlewares []func(http.Handler) http.Handler
	for _, mw := range o.middlewares {
		middlewares = append(middlewares, mw)
	}

	srv := server.New(server.ServerConfig{
		Generator:           generator,
		Weather:             weatherClient,
		Geocode:             geocodeClient,
		Logger:              logger,
		DB:                  db,
		MCPServer:           mcpSrv.MCPServer(),
		RateLimiter:         limiter,
		Port:                cfg.Port,
		ReadTimeout:         cfg.ReadTimeout,
		WriteTimeout:        cfg.WriteTimeout,
		Version:             version,
		MaxRequestBodyBytes: cfg.MaxRequestBodyBytes,
		OpenAPISpec:         api.OpenAPISpec,
		ExtraRoutes:         extraRoutes,
		Middlewares:         middlewares,
		PlanHooks:           planHooks,
	})

	return &App{
		cfg:          cfg,
		db:           db,
		srv:          srv,
		limiter:      limiter,
		otelShutdown: otelShutdown,
		logger:       logger,
		version:      version,
	}, nil
}

// Handler returns the root HTTP handler, with the full middleware chain
// applied. Useful for mounting the App inside a larger mux or driving it
// with httptest in the embedding application's tests.
func (a *App) Handler() http.Handler {
	return a.srv.Handler()
}

// Run starts the HTTP server and blocks until ctx is cancelled or a fatal
// server error occurs. On return, Shutdown is called automatically, so
// callers should not call Shutdown separately.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		if err := a.srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		return err
	}

	return a.Shutdown(context.Background())
}

// Shutdown drains in-flight HTTP requests, then closes the rate limiter,
// database pool, and OTEL provider.
func (a *App) Shutdown(ctx context.Context) error {
	a.logger.Info("gingham shutting down")

	httpCtx, httpCancel := context.WithTimeout(ctx, 10*time.Second)
	defer httpCancel()
	if err := a.srv.Shutdown(httpCtx); err != nil {
		a.logger.Error("http shutdown error", "error", err)
	}

	if a.limiter != nil {
		_ = a.limiter.Close()
	}
	_ = a.otelShutdown(context.Background())
	if a.db != nil {
		a.db.Close()
	}

	a.logger.Info("gingham stopped")
	return nil
}

// planHookAdapter wraps a gingham.PlanHook to satisfy server.PlanHook.
// It converts internal model types to public gingham types at the boundary.
type planHookAdapter struct {
	hook PlanHook
}

func (a *planHookAdapter) OnPlanCreated(ctx context.Context, p model.StoredPlan) error {
	return a.hook.OnPlanCreated(ctx, toPublicPlan(p))
}

// toPublicPlan converts an internal model.StoredPlan to the public
// gingham.Plan. Lives here because this is the only file that imports both
// sides of the boundary.
func toPublicPlan(p model.StoredPlan) Plan {
	return Plan{
		ID:        p.ID,
		Kind:      PlanKind(p.Kind),
		Title:     p.Title,
		CreatedAt: p.CreatedAt,
		Payload:   p.Payload,
	}
}
