package observe

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Instruments records request and cache metrics for the API client.
//
// Contract:
// - Concurrency: implementations must be safe for concurrent use.
// - Context: must honor cancellation/deadlines and return quickly.
// - Errors: implementations must not panic.
type Instruments interface {
	// RecordRequest records a client operation with duration, cache outcome,
	// and error status. cacheHit is true when the payload was served from
	// the cache without a network call.
	RecordRequest(ctx context.Context, meta RequestMeta, duration time.Duration, cacheHit bool, err error)
}

// instrumentsImpl is the concrete implementation of Instruments.
type instrumentsImpl struct {
	meter        metric.Meter
	totalCount   metric.Int64Counter
	errorCount   metric.Int64Counter
	cacheHits    metric.Int64Counter
	cacheMisses  metric.Int64Counter
	durationHist metric.Float64Histogram
}

// NewInstruments creates an Instruments instance with the given meter.
func NewInstruments(meter metric.Meter) (Instruments, error) {
	totalCount, err := meter.Int64Counter(
		"api.request.total",
		metric.WithDescription("Total number of client operations"),
		metric.WithUnit("{call}"),
	)
	if err != nil {
		return nil, err
	}

	errorCount, err := meter.Int64Counter(
		"api.request.errors",
		metric.WithDescription("Total number of failed client operations"),
		metric.WithUnit("{error}"),
	)
	if err != nil {
		return nil, err
	}

	cacheHits, err := meter.Int64Counter(
		"api.cache.hits",
		metric.WithDescription("Operations served from the response cache"),
		metric.WithUnit("{hit}"),
	)
	if err != nil {
		return nil, err
	}

	cacheMisses, err := meter.Int64Counter(
		"api.cache.misses",
		metric.WithDescription("Operations that required a network call"),
		metric.WithUnit("{miss}"),
	)
	if err != nil {
		return nil, err
	}

	durationHist, err := meter.Float64Histogram(
		"api.request.duration_ms",
		metric.WithDescription("Client operation duration in milliseconds"),
		metric.WithUnit("ms"),
	)
	if err != nil {
		return nil, err
	}

	return &instrumentsImpl{
		meter:        meter,
		totalCount:   totalCount,
		errorCount:   errorCount,
		cacheHits:    cacheHits,
		cacheMisses:  cacheMisses,
		durationHist: durationHist,
	}, nil
}

// RecordRequest records metrics for a client operation.
func (m *instrumentsImpl) RecordRequest(ctx context.Context, meta RequestMeta, duration time.Duration, cacheHit bool, err error) {
	attrs := []attribute.KeyValue{
		attribute.String("api.resource", meta.Resource),
	}
	if meta.CacheClass != "" {
		attrs = append(attrs, attribute.String("api.cache_class", meta.CacheClass))
	}

	opt := metric.WithAttributes(attrs...)

	// Always increment total counter
	m.totalCount.Add(ctx, 1, opt)

	// Increment error counter on failure
	if err != nil {
		m.errorCount.Add(ctx, 1, opt)
	}

	if cacheHit {
		m.cacheHits.Add(ctx, 1, opt)
	} else {
		m.cacheMisses.Add(ctx, 1, opt)
	}

	// Record duration in milliseconds
	durationMs := float64(duration.Milliseconds())
	m.durationHist.Record(ctx, durationMs, opt)
}

// noopInstruments is an Instruments implementation that does nothing.
type noopInstruments struct{}

// NewNoopInstruments returns an Instruments that discards everything.
func NewNoopInstruments() Instruments {
	return &noopInstruments{}
}

func (m *noopInstruments) RecordRequest(ctx context.Context, meta RequestMeta, duration time.Duration, cacheHit bool, err error) {
}
