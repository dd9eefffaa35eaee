package config

import (
	"errors"
	"fmt"
	"slices"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/jonwraymond/leagueops/cache"
	"github.com/jonwraymond/leagueops/observe"
	"github.com/jonwraymond/leagueops/sleeper"
)

var (
	// ErrInvalidTTL indicates a cache TTL was zero or negative.
	ErrInvalidTTL = errors.New("config: cache TTL must be positive")

	// ErrMissingLeagueID indicates a league-scoped consumer required a
	// league identifier and none was configured.
	ErrMissingLeagueID = errors.New("config: missing league ID")
)

// Config holds environment-driven settings for the client and its
// observability stack.
type Config struct {
	// BaseURL is the root of the remote fantasy API.
	BaseURL string `env:"LEAGUEOPS_BASE_URL" envDefault:"https://api.sleeper.app/v1"`

	// Sport selects the sport segment in player and state endpoints.
	Sport string `env:"LEAGUEOPS_SPORT" envDefault:"nfl"`

	// LeagueID is the league most tools operate on. Optional at load time;
	// RequireLeagueID enforces presence for league-scoped consumers.
	LeagueID string `env:"LEAGUEOPS_LEAGUE_ID"`

	// StandardTTL is the freshness window for league-scoped responses.
	StandardTTL time.Duration `env:"LEAGUEOPS_CACHE_TTL" envDefault:"5m"`

	// BulkTTL is the freshness window for the full player directory.
	BulkTTL time.Duration `env:"LEAGUEOPS_PLAYERS_CACHE_TTL" envDefault:"24h"`

	// LogLevel sets the minimum level for structured log output.
	LogLevel string `env:"LEAGUEOPS_LOG_LEVEL" envDefault:"info"`

	// TracingExporter selects the span exporter. Empty disables tracing.
	TracingExporter string `env:"LEAGUEOPS_TRACING_EXPORTER" envDefault:""`

	// MetricsExporter selects the metrics exporter. Empty disables metrics.
	MetricsExporter string `env:"LEAGUEOPS_METRICS_EXPORTER" envDefault:""`

	// OTLPEndpoint is the collector address for the otlp exporters.
	OTLPEndpoint string `env:"LEAGUEOPS_OTLP_ENDPOINT"`
}

// Load parses configuration from the environment and validates it.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate checks that the loaded values are usable.
func (c Config) Validate() error {
	if c.StandardTTL <= 0 || c.BulkTTL <= 0 {
		return fmt.Errorf("%w: standard=%s bulk=%s", ErrInvalidTTL, c.StandardTTL, c.BulkTTL)
	}
	if !slices.Contains(observe.ValidLogLevels, c.LogLevel) {
		return fmt.Errorf("%w: %q", observe.ErrInvalidLogLevel, c.LogLevel)
	}
	if !slices.Contains(observe.ValidTracingExporters, c.TracingExporter) {
		return fmt.Errorf("%w: %q", observe.ErrInvalidTracingExporter, c.TracingExporter)
	}
	if !slices.Contains(observe.ValidMetricsExporters, c.MetricsExporter) {
		return fmt.Errorf("%w: %q", observe.ErrInvalidMetricsExporter, c.MetricsExporter)
	}
	return nil
}

// RequireLeagueID returns the configured league ID or an error when unset.
func (c Config) RequireLeagueID() (string, error) {
	if c.LeagueID == "" {
		return "", ErrMissingLeagueID
	}
	return c.LeagueID, nil
}

// Policy returns the cache policy built from the configured TTLs.
func (c Config) Policy() cache.Policy {
	return cache.Policy{
		StandardTTL: c.StandardTTL,
		BulkTTL:     c.BulkTTL,
	}
}

// ClientConfig maps the loaded settings onto a client configuration.
// Cache and observability hooks are left for the caller to attach.
func (c Config) ClientConfig() sleeper.Config {
	return sleeper.Config{
		BaseURL: c.BaseURL,
		Sport:   c.Sport,
		Policy:  c.Policy(),
	}
}

// ObserveConfig maps the loaded settings onto an observability configuration
// for observe.NewObserver. A subsystem is enabled when its exporter is set to
// anything other than "none"; the OTLP endpoint feeds both signal paths.
func (c Config) ObserveConfig(serviceName, version string) observe.Config {
	return observe.Config{
		ServiceName: serviceName,
		Version:     version,
		Tracing: observe.TracingConfig{
			Enabled:   c.TracingExporter != "" && c.TracingExporter != "none",
			Exporter:  c.TracingExporter,
			SamplePct: 1.0,
			Endpoint:  c.OTLPEndpoint,
		},
		Metrics: observe.MetricsConfig{
			Enabled:  c.MetricsExporter != "" && c.MetricsExporter != "none",
			Exporter: c.MetricsExporter,
			Endpoint: c.OTLPEndpoint,
		},
		Logging: observe.LoggingConfig{
			Enabled: true,
			Level:   c.LogLevel,
		},
	}
}
