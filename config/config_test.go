package config

import (
	"errors"
	"testing"
	"time"

	"github.com/jonwraymond/leagueops/observe"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.BaseURL != "https://api.sleeper.app/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Sport != "nfl" {
		t.Errorf("Sport = %q", cfg.Sport)
	}
	if cfg.StandardTTL != 5*time.Minute {
		t.Errorf("StandardTTL = %v, want 5m", cfg.StandardTTL)
	}
	if cfg.BulkTTL != 24*time.Hour {
		t.Errorf("BulkTTL = %v, want 24h", cfg.BulkTTL)
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %q, want info", cfg.LogLevel)
	}
	if cfg.LeagueID != "" {
		t.Errorf("LeagueID = %q, want empty", cfg.LeagueID)
	}
}

func TestLoadFromEnvironment(t *testing.T) {
	t.Setenv("LEAGUEOPS_BASE_URL", "http://localhost:8080/v1")
	t.Setenv("LEAGUEOPS_SPORT", "nba")
	t.Setenv("LEAGUEOPS_LEAGUE_ID", "289646328504385536")
	t.Setenv("LEAGUEOPS_CACHE_TTL", "90s")
	t.Setenv("LEAGUEOPS_PLAYERS_CACHE_TTL", "12h")
	t.Setenv("LEAGUEOPS_LOG_LEVEL", "debug")
	t.Setenv("LEAGUEOPS_TRACING_EXPORTER", "stdout")
	t.Setenv("LEAGUEOPS_METRICS_EXPORTER", "prometheus")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if cfg.BaseURL != "http://localhost:8080/v1" {
		t.Errorf("BaseURL = %q", cfg.BaseURL)
	}
	if cfg.Sport != "nba" {
		t.Errorf("Sport = %q", cfg.Sport)
	}
	if cfg.LeagueID != "289646328504385536" {
		t.Errorf("LeagueID = %q", cfg.LeagueID)
	}
	if cfg.StandardTTL != 90*time.Second {
		t.Errorf("StandardTTL = %v", cfg.StandardTTL)
	}
	if cfg.BulkTTL != 12*time.Hour {
		t.Errorf("BulkTTL = %v", cfg.BulkTTL)
	}
	if cfg.TracingExporter != "stdout" {
		t.Errorf("TracingExporter = %q", cfg.TracingExporter)
	}
	if cfg.MetricsExporter != "prometheus" {
		t.Errorf("MetricsExporter = %q", cfg.MetricsExporter)
	}
}

func TestLoadRejectsMalformedDuration(t *testing.T) {
	t.Setenv("LEAGUEOPS_CACHE_TTL", "five minutes")

	if _, err := Load(); err == nil {
		t.Fatal("expected parse error for malformed duration")
	}
}

func TestValidate(t *testing.T) {
	valid := Config{
		StandardTTL: 5 * time.Minute,
		BulkTTL:     24 * time.Hour,
		LogLevel:    "info",
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr error
	}{
		{
			name:   "valid",
			mutate: func(*Config) {},
		},
		{
			name:    "zero standard TTL",
			mutate:  func(c *Config) { c.StandardTTL = 0 },
			wantErr: ErrInvalidTTL,
		},
		{
			name:    "negative bulk TTL",
			mutate:  func(c *Config) { c.BulkTTL = -time.Hour },
			wantErr: ErrInvalidTTL,
		},
		{
			name:    "unknown log level",
			mutate:  func(c *Config) { c.LogLevel = "verbose" },
			wantErr: observe.ErrInvalidLogLevel,
		},
		{
			name:    "unknown tracing exporter",
			mutate:  func(c *Config) { c.TracingExporter = "jaeger" },
			wantErr: observe.ErrInvalidTracingExporter,
		},
		{
			name:    "unknown metrics exporter",
			mutate:  func(c *Config) { c.MetricsExporter = "statsd" },
			wantErr: observe.ErrInvalidMetricsExporter,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == nil {
				if err != nil {
					t.Fatalf("Validate: %v", err)
				}
				return
			}
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Validate = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRequireLeagueID(t *testing.T) {
	cfg := Config{LeagueID: "12345"}
	id, err := cfg.RequireLeagueID()
	if err != nil {
		t.Fatalf("RequireLeagueID: %v", err)
	}
	if id != "12345" {
		t.Errorf("id = %q", id)
	}

	cfg.LeagueID = ""
	if _, err := cfg.RequireLeagueID(); !errors.Is(err, ErrMissingLeagueID) {
		t.Fatalf("err = %v, want ErrMissingLeagueID", err)
	}
}

func TestObserveConfig(t *testing.T) {
	cfg := Config{
		LogLevel:        "debug",
		TracingExporter: "otlp",
		MetricsExporter: "prometheus",
		OTLPEndpoint:    "collector:4317",
	}

	oc := cfg.ObserveConfig("leagueops", "1.2.3")

	if oc.ServiceName != "leagueops" || oc.Version != "1.2.3" {
		t.Errorf("identity = %q/%q", oc.ServiceName, oc.Version)
	}
	if !oc.Tracing.Enabled || oc.Tracing.Exporter != "otlp" {
		t.Errorf("Tracing = %+v", oc.Tracing)
	}
	if oc.Tracing.Endpoint != "collector:4317" {
		t.Errorf("Tracing.Endpoint = %q, want collector:4317", oc.Tracing.Endpoint)
	}
	if !oc.Metrics.Enabled || oc.Metrics.Exporter != "prometheus" {
		t.Errorf("Metrics = %+v", oc.Metrics)
	}
	if oc.Metrics.Endpoint != "collector:4317" {
		t.Errorf("Metrics.Endpoint = %q, want collector:4317", oc.Metrics.Endpoint)
	}
	if !oc.Logging.Enabled || oc.Logging.Level != "debug" {
		t.Errorf("Logging = %+v", oc.Logging)
	}

	if err := oc.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestObserveConfigDisabledSubsystems(t *testing.T) {
	tests := []struct {
		name     string
		exporter string
	}{
		{"empty", ""},
		{"none", "none"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := Config{
				LogLevel:        "info",
				TracingExporter: tt.exporter,
				MetricsExporter: tt.exporter,
			}

			oc := cfg.ObserveConfig("leagueops", "")
			if oc.Tracing.Enabled {
				t.Errorf("Tracing.Enabled = true for exporter %q", tt.exporter)
			}
			if oc.Metrics.Enabled {
				t.Errorf("Metrics.Enabled = true for exporter %q", tt.exporter)
			}
		})
	}
}

func TestClientConfig(t *testing.T) {
	cfg := Config{
		BaseURL:     "http://localhost:9000",
		Sport:       "nfl",
		StandardTTL: time.Minute,
		BulkTTL:     time.Hour,
	}

	cc := cfg.ClientConfig()
	if cc.BaseURL != cfg.BaseURL {
		t.Errorf("BaseURL = %q", cc.BaseURL)
	}
	if cc.Sport != cfg.Sport {
		t.Errorf("Sport = %q", cc.Sport)
	}
	if cc.Policy.StandardTTL != time.Minute || cc.Policy.BulkTTL != time.Hour {
		t.Errorf("Policy = %+v", cc.Policy)
	}
}
