package observability

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Registration outcomes reported to the registration.total counter.
const (
	OutcomeAdded   = "added"
	OutcomeSkipped = "skipped"
)

// Metrics holds the metric instruments for service registration and
// resolution.
type Metrics struct {
	registrationTotal metric.Int64Counter
	collectionSize    metric.Int64UpDownCounter
	resolveTotal      metric.Int64Counter
	resolveDuration   metric.Float64Histogram
}

// NewMetrics creates metric instruments on the given meter.
func NewMetrics(meter metric.Meter) (*Metrics, error) {
	registrationTotal, err := meter.Int64Counter("registration.total",
		metric.WithDescription("Total registration calls by outcome and source kind"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating registration.total counter: %w", err)
	}

	collectionSize, err := meter.Int64UpDownCounter("collection.size",
		metric.WithDescription("Number of descriptors held by service collections"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating collection.size gauge: %w", err)
	}

	resolveTotal, err := meter.Int64Counter("resolve.total",
		metric.WithDescription("Total resolutions by service type and status"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resolve.total counter: %w", err)
	}

	resolveDuration, err := meter.Float64Histogram("resolve.duration",
		metric.WithDescription("Duration of resolutions in seconds"),
		metric.WithUnit("s"),
	)
	if err != nil {
		return nil, fmt.Errorf("creating resolve.duration histogram: %w", err)
	}

	return &Metrics{
		registrationTotal: registrationTotal,
		collectionSize:    collectionSize,
		resolveTotal:      resolveTotal,
		resolveDuration:   resolveDuration,
	}, nil
}

// RecordRegistration records one registration call.
func (m *Metrics) RecordRegistration(ctx context.Context, outcome, source string, keyed bool) {
	m.registrationTotal.Add(ctx, 1, metric.WithAttributes(
		attribute.String("outcome", outcome),
		attribute.String("source", source),
		attribute.Bool("keyed", keyed),
	))
	if outcome == OutcomeAdded {
		m.collectionSize.Add(ctx, 1)
	}
}

// RecordResolve records one resolution.
func (m *Metrics) RecordResolve(ctx context.Context, serviceType, status string, duration time.Duration) {
	attrs := metric.WithAttributes(
		attribute.String("service_type", serviceType),
		attribute.String("status", status),
	)
	m.resolveTotal.Add(ctx, 1, attrs)
	m.resolveDuration.Record(ctx, duration.Seconds(), metric.WithAttributes(
		attribute.String("service_type", serviceType),
	))
}
