package observability

import (
	"errors"
	"fmt"

	"go.opentelemetry.io/otel/metric"
)

// namespace prefixes every sortviz instrument name.
const namespace = "sortviz"

// metricBuilder creates instruments under one dotted scope, e.g.
// "sortviz.generation", and collects every creation error so a metric set
// is checked once after construction.
type metricBuilder struct {
	meter metric.Meter
	scope string
	errs  []error
}

func newMetricBuilder(mt metric.Meter, scope ...string) *metricBuilder {
	name := namespace
	for _, part := range scope {
		name += "." + part
	}

	return &metricBuilder{meter: mt, scope: name}
}

func (b *metricBuilder) name(suffix string) string { return b.scope + "." + suffix }

func (b *metricBuilder) counter(suffix, desc, unit string) metric.Int64Counter {
	name := b.name(suffix)
	c, err := b.meter.Int64Counter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.track(name, err)

	return c
}

// histogram creates a Float64Histogram; bounds override the SDK default buckets.
func (b *metricBuilder) histogram(suffix, desc, unit string, bounds []float64) metric.Float64Histogram {
	name := b.name(suffix)
	h, err := b.meter.Float64Histogram(name,
		metric.WithDescription(desc),
		metric.WithUnit(unit),
		metric.WithExplicitBucketBoundaries(bounds...),
	)
	b.track(name, err)

	return h
}

func (b *metricBuilder) upDownCounter(suffix, desc, unit string) metric.Int64UpDownCounter {
	name := b.name(suffix)
	c, err := b.meter.Int64UpDownCounter(name, metric.WithDescription(desc), metric.WithUnit(unit))
	b.track(name, err)

	return c
}

func (b *metricBuilder) track(name string, err error) {
	if err != nil {
		b.errs = append(b.errs, fmt.Errorf("create %s: %w", name, err))
	}
}

// err reports every failed instrument, or nil.
func (b *metricBuilder) err() error { return errors.Join(b.errs...) }
