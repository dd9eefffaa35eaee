package observe

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	tracenoop "go.opentelemetry.io/otel/trace/noop"
)

// RequestMeta contains metadata about a remote API request for telemetry purposes.
type RequestMeta struct {
	Resource   string // Logical resource name, e.g. "rosters" (required)
	Endpoint   string // Endpoint path, e.g. "/league/123/rosters"
	CacheClass string // Freshness class: "standard" or "bulk" (optional)
}

// SpanName returns the deterministic span name for this request.
// Format: api.get.<resource>
func (m RequestMeta) SpanName() string {
	return "api.get." + m.Resource
}

// Tracer wraps OpenTelemetry tracing with request-specific span management.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: StartSpan must honor cancellation/deadlines and return ctx.Err() when canceled.
// - Errors: EndSpan must be best-effort and must not panic.
type Tracer interface {
	// StartSpan starts a new span for a remote API request.
	StartSpan(ctx context.Context, meta RequestMeta) (context.Context, trace.Span)

	// EndSpan ends the span, recording any error.
	EndSpan(span trace.Span, err error)
}

// tracerImpl is the concrete implementation of Tracer.
type tracerImpl struct {
	tracer trace.Tracer
}

// NewTracer creates a new Tracer wrapping the given OpenTelemetry tracer.
func NewTracer(t trace.Tracer) Tracer {
	return &tracerImpl{tracer: t}
}

// StartSpan starts a new span with request metadata as attributes.
func (t *tracerImpl) StartSpan(ctx context.Context, meta RequestMeta) (context.Context, trace.Span) {
	attrs := []attribute.KeyValue{
		attribute.String("api.resource", meta.Resource),
		attribute.String("http.method", "GET"),
		attribute.Bool("api.error", false), // Will be updated in EndSpan if error
	}

	if meta.Endpoint != "" {
		attrs = append(attrs, attribute.String("api.endpoint", meta.Endpoint))
	}
	if meta.CacheClass != "" {
		attrs = append(attrs, attribute.String("api.cache_class", meta.CacheClass))
	}

	ctx, span := t.tracer.Start(ctx, meta.SpanName(),
		trace.WithAttributes(attrs...),
		trace.WithSpanKind(trace.SpanKindClient),
	)

	return ctx, span
}

// EndSpan ends the span and records the error status if present.
func (t *tracerImpl) EndSpan(span trace.Span, err error) {
	if err != nil {
		span.SetStatus(codes.Error, err.Error())
		span.SetAttributes(attribute.Bool("api.error", true))
		span.RecordError(err)
	} else {
		span.SetStatus(codes.Ok, "")
	}
	span.End()
}

// noopTracer is a tracer that does nothing.
type noopTracer struct {
	noop trace.Tracer
}

// NewNoopTracer creates a no-op tracer.
func NewNoopTracer() Tracer {
	return &noopTracer{
		noop: tracenoop.NewTracerProvider().Tracer("noop"),
	}
}

func (t *noopTracer) StartSpan(ctx context.Context, meta RequestMeta) (context.Context, trace.Span) {
	return t.noop.Start(ctx, meta.SpanName())
}

func (t *noopTracer) EndSpan(span trace.Span, err error) {
	span.End()
}
