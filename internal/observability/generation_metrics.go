package observability

import (
	"context"
	"time"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const (
	scopeGeneration = "generation"

	metricRunsTotal        = "runs.total"
	metricSnapshots        = "snapshots"
	metricGenerateDuration = "duration.seconds"
	metricCacheHitsTotal   = "cache.hits.total"
	metricCacheMissesTotal = "cache.misses.total"

	attrAlgorithm = "algorithm"
)

// snapshotBucketBoundaries spans singleton traces up to quadratic traces of
// a few hundred elements.
var snapshotBucketBoundaries = []float64{1, 10, 50, 100, 250, 500, 1000, 5000, 25000, 100000}

// GenerationMetrics holds OTel instruments for trace generation.
type GenerationMetrics struct {
	runsTotal   metric.Int64Counter
	snapshots   metric.Float64Histogram
	duration    metric.Float64Histogram
	cacheHits   metric.Int64Counter
	cacheMisses metric.Int64Counter
}

// GenerationStats describes one served trace.
type GenerationStats struct {
	Algorithm string
	Snapshots int
	Duration  time.Duration
	Cached    bool
}

// NewGenerationMetrics creates generation instruments from the given meter.
func NewGenerationMetrics(mt metric.Meter) (*GenerationMetrics, error) {
	b := newMetricBuilder(mt, scopeGeneration)

	gm := &GenerationMetrics{
		runsTotal:   b.counter(metricRunsTotal, "Traces served", "{run}"),
		snapshots:   b.histogram(metricSnapshots, "Snapshots per trace", "{snapshot}", snapshotBucketBoundaries),
		duration:    b.histogram(metricGenerateDuration, "Generation time in seconds", "s", requestBucketBoundaries),
		cacheHits:   b.counter(metricCacheHitsTotal, "Trace cache hits", "{hit}"),
		cacheMisses: b.counter(metricCacheMissesTotal, "Trace cache misses", "{miss}"),
	}

	if err := b.err(); err != nil {
		return nil, err
	}

	return gm, nil
}

// RecordRun records one served trace. Safe to call on a nil receiver.
func (gm *GenerationMetrics) RecordRun(ctx context.Context, stats GenerationStats) {
	if gm == nil {
		return
	}

	attrs := metric.WithAttributes(attribute.String(attrAlgorithm, stats.Algorithm))

	gm.runsTotal.Add(ctx, 1, attrs)
	gm.snapshots.Record(ctx, float64(stats.Snapshots), attrs)

	if stats.Cached {
		gm.cacheHits.Add(ctx, 1, attrs)

		return
	}

	gm.cacheMisses.Add(ctx, 1, attrs)
	gm.duration.Record(ctx, stats.Duration.Seconds(), attrs)
}
