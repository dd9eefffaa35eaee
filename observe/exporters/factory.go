// Package exporters provides factory functions for creating OpenTelemetry exporters.
package exporters

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"go.opentelemetry.io/otel/exporters/otlp/otlpmetric/otlpmetricgrpc"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracegrpc"
	"go.opentelemetry.io/otel/exporters/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdoutmetric"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

// ErrEndpointNotConfigured indicates the otlp exporter was selected without
// an endpoint, either explicit or via the OTEL_EXPORTER_OTLP_* environment.
var ErrEndpointNotConfigured = errors.New("exporters: otlp endpoint not configured")

// NewTracingExporter creates a trace span exporter based on the exporter name.
// Supported exporters: stdout, otlp, none. For otlp, endpoint overrides the
// OTEL_EXPORTER_OTLP_* environment; one of the two must be set.
func NewTracingExporter(ctx context.Context, name, endpoint string) (sdktrace.SpanExporter, error) {
	switch name {
	case "stdout":
		return stdouttrace.New(stdouttrace.WithWriter(os.Stdout))

	case "otlp":
		if endpoint != "" {
			return otlptracegrpc.New(ctx, otlptracegrpc.WithEndpoint(endpoint))
		}
		if !otlpEnvConfigured("OTEL_EXPORTER_OTLP_TRACES_ENDPOINT") {
			return nil, fmt.Errorf("%w: set the endpoint or OTEL_EXPORTER_OTLP_ENDPOINT", ErrEndpointNotConfigured)
		}
		return otlptracegrpc.New(ctx)

	case "none", "":
		// Return a no-op exporter that discards everything
		return stdouttrace.New(stdouttrace.WithWriter(io.Discard))

	default:
		return nil, fmt.Errorf("unknown exporter: %q", name)
	}
}

// NewMetricsReader creates a metrics reader based on the exporter name.
// Supported exporters: stdout, otlp, prometheus, none. For otlp, endpoint
// overrides the OTEL_EXPORTER_OTLP_* environment; one of the two must be set.
func NewMetricsReader(ctx context.Context, name, endpoint string) (sdkmetric.Reader, error) {
	switch name {
	case "stdout":
		exp, err := stdoutmetric.New(stdoutmetric.WithWriter(os.Stdout))
		if err != nil {
			return nil, fmt.Errorf("failed to create stdout metrics exporter: %w", err)
		}
		return sdkmetric.NewPeriodicReader(exp), nil

	case "otlp":
		var opts []otlpmetricgrpc.Option
		if endpoint != "" {
			opts = append(opts, otlpmetricgrpc.WithEndpoint(endpoint))
		} else if !otlpEnvConfigured("OTEL_EXPORTER_OTLP_METRICS_ENDPOINT") {
			return nil, fmt.Errorf("%w: set the endpoint or OTEL_EXPORTER_OTLP_ENDPOINT", ErrEndpointNotConfigured)
		}
		exp, err := otlpmetricgrpc.New(ctx, opts...)
		if err != nil {
			return nil, fmt.Errorf("failed to create OTLP metrics exporter: %w", err)
		}
		return sdkmetric.NewPeriodicReader(exp), nil

	case "prometheus":
		exp, err := prometheus.New()
		if err != nil {
			return nil, fmt.Errorf("failed to create Prometheus exporter: %w", err)
		}
		return exp, nil

	case "none", "":
		// Return a no-op reader
		exp, err := stdoutmetric.New(stdoutmetric.WithWriter(io.Discard))
		if err != nil {
			return nil, err
		}
		return sdkmetric.NewPeriodicReader(exp), nil

	default:
		return nil, fmt.Errorf("unknown metrics exporter: %q", name)
	}
}

// otlpEnvConfigured reports whether the generic or signal-specific OTLP
// endpoint variable is set.
func otlpEnvConfigured(signalVar string) bool {
	return os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT") != "" || os.Getenv(signalVar) != ""
}
