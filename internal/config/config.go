// Package config loads and validates application configuration from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds all application configuration.
type Config struct {
	// Server settings.
	Port         int
	ReadTimeout  time.Duration
	WriteTimeout time.Duration

	// Database settings. An empty DatabaseURL disables persistence: plans
	// are generated and returned but not stored.
	DatabaseURL string

	// Upstream provider settings. Empty base URLs select the public
	// Open-Meteo endpoints.
	WeatherBaseURL string
	GeocodeBaseURL string

	// OTEL settings.
	OTELEndpoint string
	OTELInsecure bool
	ServiceName  string

	// Rate limit settings, applied per client IP to the endpoints that call
	// the public providers.
	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int

	// Operational settings.
	LogLevel            string
	MaxRequestBodyBytes int64
}

// Load reads configuration from environment variables with sensible defaults.
func Load() (Config, error) {
	otelInsecure, err := envBool("OTEL_EXPORTER_OTLP_INSECURE", false)
	if err != nil {
		return Config{}, err
	}
	rateLimitEnabled, err := envBool("GINGHAM_RATE_LIMIT_ENABLED", true)
	if err != nil {
		return Config{}, err
	}

	cfg := Config{
		Port:                envInt("GINGHAM_PORT", 8080),
		ReadTimeout:         envDuration("GINGHAM_READ_TIMEOUT", 30*time.Second),
		WriteTimeout:        envDuration("GINGHAM_WRITE_TIMEOUT", 30*time.Second),
		DatabaseURL:         envStr("DATABASE_URL", ""),
		WeatherBaseURL:      envStr("GINGHAM_WEATHER_BASE_URL", ""),
		GeocodeBaseURL:      envStr("GINGHAM_GEOCODE_BASE_URL", ""),
		OTELEndpoint:        envStr("OTEL_EXPORTER_OTLP_ENDPOINT", ""),
		OTELInsecure:        otelInsecure,
		ServiceName:         envStr("OTEL_SERVICE_NAME", "gingham"),
		RateLimitEnabled:    rateLimitEnabled,
		RateLimitRPS:        envFloat("GINGHAM_RATE_LIMIT_RPS", 10),
		RateLimitBurst:      envInt("GINGHAM_RATE_LIMIT_BURST", 30),
		LogLevel:            envStr("GINGHAM_LOG_LEVEL", "info"),
		MaxRequestBodyBytes: int64(envInt("GINGHAM_MAX_REQUEST_BODY_BYTES", 1*1024*1024)), // 1 MB default
	}

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the configuration is internally consistent.
func (c Config) Validate() error {
	if c.Port <= 0 || c.Port > 65535 {
		return fmt.Errorf("config: GINGHAM_PORT must be a valid port (got %d)", c.Port)
	}
	if c.MaxRequestBodyBytes <= 0 {
		return fmt.Errorf("config: GINGHAM_MAX_REQUEST_BODY_BYTES must be positive")
	}
	if c.RateLimitEnabled && (c.RateLimitRPS <= 0 || c.RateLimitBurst <= 0) {
		return fmt.Errorf("config: GINGHAM_RATE_LIMIT_RPS and GINGHAM_RATE_LIMIT_BURST must be positive")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("config: GINGHAM_LOG_LEVEL must be debug, info, warn, or error (got %q)", c.LogLevel)
	}
	return nil
}

func envStr(key, defaultVal string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultVal
}

func envInt(key string, defaultVal int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return defaultVal
}

func envFloat(key string, defaultVal float64) float64 {
	if v := os.Getenv(key); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			return f
		}
	}
	return defaultVal
}

func envBool(key string, defaultVal bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return defaultVal, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("config: %s must be a boolean (got %q)", key, v)
	}
	return b, nil
}

func envDuration(key string, defaultVal time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return defaultVal
}
