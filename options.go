package gingham

import (
	"io/fs"
	"log/slog"
)

// Option configures an App.
type Option func(*resolvedOptions)

// resolvedOptions holds all extension points after applying defaults.
// Unexported; callers use the With* functions.
type resolvedOptions struct {
	port            int
	databaseURL     string
	weatherBaseURL  string
	geocodeBaseURL  string
	logger          *slog.Logger
	version         string
	planHooks       []PlanHook
	routeRegistrars []RouteRegistrar
	middlewares     []Middleware
	extraMigrations []fs.FS
}

// WithPort overrides the TCP port from config (GINGHAM_PORT env var).
func WithPort(port int) Option {
	return func(o *resolvedOptions) { o.port = port }
}

// WithDatabaseURL overrides the database connection string from config
// (DATABASE_URL env var). Pass a URL to enable persistence when the
// environment has none.
func WithDatabaseURL(url string) Option {
	return func(o *resolvedOptions) { o.databaseURL = url }
}

// WithWeatherBaseURL overrides the forecast provider base URL from config
// (GINGHAM_WEATHER_BASE_URL env var). Useful for pointing the App at a
// recorded or stubbed provider in tests.
func WithWeatherBaseURL(url string) Option {
	return func(o *resolvedOptions) { o.weatherBaseURL = url }
}

// WithGeocodeBaseURL overrides the geocoding provider base URL from config
// (GINGHAM_GEOCODE_BASE_URL env var).
func WithGeocodeBaseURL(url string) Option {
	return func(o *resolvedOptions) { o.geocodeBaseURL = url }
}

// WithLogger sets the structured logger for the App.
// If not set, the default slog logger is used.
func WithLogger(logger *slog.Logger) Option {
	return func(o *resolvedOptions) { o.logger = logger }
}

// WithVersion sets the version string reported in the health endpoint and logs.
func WithVersion(version string) Option {
	return func(o *resolvedOptions) { o.version = version }
}

// WithPlanHook registers a hook to receive plan lifecycle notifications.
// Multiple hooks may be registered; all registered hooks receive every event.
func WithPlanHook(hook PlanHook) Option {
	return func(o *resolvedOptions) { o.planHooks = append(o.planHooks, hook) }
}

// WithExtraRoutes registers additional routes on the shared HTTP mux.
// Multiple registrars may be registered; all are called in registration order.
func WithExtraRoutes(fn RouteRegistrar) Option {
	return func(o *resolvedOptions) { o.routeRegistrars = append(o.routeRegistrars, fn) }
}

// WithMiddleware registers an outermost HTTP middleware.
// Multiple middlewares may be registered. Applied in registration order:
// the first-registered middleware is outermost (called first by every request).
func WithMiddleware(mw Middleware) Option {
	return func(o *resolvedOptions) { o.middlewares = append(o.middlewares, mw) }
}

// WithExtraMigrations adds an additional SQL migration filesystem to run
// after the built-in migrations. Multiple filesystems may be registered;
// they are applied in registration order. Each FS must contain sequential
// SQL files in the same format as the migrations package.
func WithExtraMigrations(dir fs.FS) Option {
	return func(o *resolvedOptions) { o.extraMigrations = append(o.extraMigrations, dir) }
}
