package observability_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansonlam23/algorithm-visualizer/internal/observability"
)

func TestREDMetrics_RecordRequest(t *testing.T) {
	t.Parallel()

	mp, reader := newManualMeter(t)

	red, err := observability.NewREDMetrics(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	red.RecordRequest(ctx, "sort_trace", observability.StatusOK, 2*time.Millisecond)
	red.RecordRequest(ctx, "sort_trace", observability.StatusError, time.Millisecond)

	rm := collectMetrics(t, reader)

	assert.Equal(t, int64(2), sumValue(t, findMetric(rm, "sortviz.requests.total")))
	assert.Equal(t, int64(1), sumValue(t, findMetric(rm, "sortviz.errors.total")))
	assert.NotNil(t, findMetric(rm, "sortviz.request.duration.seconds"))
}

func TestREDMetrics_TrackInflight(t *testing.T) {
	t.Parallel()

	mp, reader := newManualMeter(t)

	red, err := observability.NewREDMetrics(mp.Meter("test"))
	require.NoError(t, err)

	done := red.TrackInflight(context.Background(), "op")
	assert.Equal(t, int64(1), sumValue(t, findMetric(collectMetrics(t, reader), "sortviz.inflight.requests")))

	done()
	assert.Equal(t, int64(0), sumValue(t, findMetric(collectMetrics(t, reader), "sortviz.inflight.requests")))
}

func TestREDMetrics_NilReceiverIsNoop(t *testing.T) {
	t.Parallel()

	var red *observability.REDMetrics

	assert.NotPanics(t, func() {
		red.RecordRequest(context.Background(), "op", observability.StatusOK, time.Second)
		red.TrackInflight(context.Background(), "op")()
	})
}

func TestGenerationMetrics_RecordRun(t *testing.T) {
	t.Parallel()

	mp, reader := newManualMeter(t)

	gm, err := observability.NewGenerationMetrics(mp.Meter("test"))
	require.NoError(t, err)

	ctx := context.Background()
	gm.RecordRun(ctx, observability.GenerationStats{Algorithm: "heap-sort", Snapshots: 40, Duration: time.Millisecond})
	gm.RecordRun(ctx, observability.GenerationStats{Algorithm: "heap-sort", Snapshots: 40, Cached: true})

	rm := collectMetrics(t, reader)

	assert.Equal(t, int64(2), sumValue(t, findMetric(rm, "sortviz.generation.runs.total")))
	assert.Equal(t, int64(1), sumValue(t, findMetric(rm, "sortviz.generation.cache.hits.total")))
	assert.Equal(t, int64(1), sumValue(t, findMetric(rm, "sortviz.generation.cache.misses.total")))
	assert.NotNil(t, findMetric(rm, "sortviz.generation.snapshots"))
	assert.NotNil(t, findMetric(rm, "sortviz.generation.duration.seconds"))
}

func TestGenerationMetrics_NilReceiverIsNoop(t *testing.T) {
	t.Parallel()

	var gm *observability.GenerationMetrics

	assert.NotPanics(t, func() {
		gm.RecordRun(context.Background(), observability.GenerationStats{Algorithm: "x"})
	})
}
