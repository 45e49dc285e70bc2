package replay_test

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
)

func sampleTrace() replay.Trace {
	rec := replay.NewRecorder([]int{2, 1})
	rec.Emit("start")
	rec.Mark(replay.StatusComparing, 0, 1)
	rec.Emit("compare")
	rec.Swap(0, 1)
	rec.Mark(replay.StatusSwapping, 0, 1)
	rec.Emit("swap")

	return rec.Finish("done")
}

func TestParseStatus(t *testing.T) {
	t.Parallel()

	for _, status := range replay.Statuses() {
		got, err := replay.ParseStatus(string(status))
		require.NoError(t, err)
		assert.Equal(t, status, got)
	}

	_, err := replay.ParseStatus("glowing")
	require.ErrorIs(t, err, replay.ErrUnknownStatus)
}

func TestTrace_AtClamps(t *testing.T) {
	t.Parallel()

	trace := sampleTrace()

	assert.Equal(t, 0, trace.At(-5).Step)
	assert.Equal(t, 3, trace.At(99).Step)
	assert.Equal(t, 3, trace.TotalSteps())
	assert.Equal(t, trace.Final().Step, trace.TotalSteps())
	assert.Equal(t, 0, trace.First().Step)
}

func TestTrace_CloneIsIndependent(t *testing.T) {
	t.Parallel()

	trace := sampleTrace()
	clone := trace.Clone()

	clone[0].Array[0].Value = 100
	clone[0].Array[0].Status = replay.StatusPivot

	assert.Equal(t, 2, trace[0].Array[0].Value)
	assert.Equal(t, replay.StatusDefault, trace[0].Array[0].Status)
}

func TestTrace_Window(t *testing.T) {
	t.Parallel()

	trace := sampleTrace()

	window := trace.Window(1, 2)
	require.Len(t, window, 2)
	assert.Equal(t, 1, window[0].Step)
	assert.Equal(t, 2, window[1].Step)

	assert.Len(t, trace.Window(-3, 100), 4)
	assert.Empty(t, trace.Window(3, 1))
	assert.Nil(t, replay.Trace{}.Window(0, 1))
}

func TestTrace_Page(t *testing.T) {
	t.Parallel()

	trace := sampleTrace()

	tests := []struct {
		name      string
		start     int
		limit     int
		wantStart int
		wantSteps []int
	}{
		{name: "whole", start: 0, limit: 0, wantStart: 0, wantSteps: []int{0, 1, 2, 3}},
		{name: "middle", start: 1, limit: 2, wantStart: 1, wantSteps: []int{1, 2}},
		{name: "limit_past_end", start: 2, limit: 10, wantStart: 2, wantSteps: []int{2, 3}},
		{name: "start_past_end", start: 9, limit: 2, wantStart: 3, wantSteps: []int{3}},
		{name: "huge_limit", start: 1, limit: math.MaxInt, wantStart: 1, wantSteps: []int{1, 2, 3}},
		{name: "huge_both", start: math.MaxInt, limit: math.MaxInt, wantStart: 3, wantSteps: []int{3}},
		{name: "negative_start", start: -4, limit: 1, wantStart: 0, wantSteps: []int{0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			page, start := trace.Page(tt.start, tt.limit)
			assert.Equal(t, tt.wantStart, start)

			steps := make([]int, 0, len(page))
			for _, snap := range page {
				steps = append(steps, snap.Step)
			}

			assert.Equal(t, tt.wantSteps, steps)
		})
	}

	page, start := replay.Trace{}.Page(3, 1)
	assert.Nil(t, page)
	assert.Zero(t, start)
}

func TestSnapshot_JSONFieldNames(t *testing.T) {
	t.Parallel()

	data, err := json.Marshal(sampleTrace().Final())
	require.NoError(t, err)

	var doc map[string]any

	require.NoError(t, json.Unmarshal(data, &doc))

	for _, key := range []string{"array", "step", "totalSteps", "description", "isComplete"} {
		assert.Contains(t, doc, key)
	}

	elements, ok := doc["array"].([]any)
	require.True(t, ok)
	require.Len(t, elements, 2)

	first, ok := elements[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "sorted", first["status"])
	assert.InDelta(t, 0, first["index"], 0)
}

func TestSnapshot_StatusAtOutOfRange(t *testing.T) {
	t.Parallel()

	snap := sampleTrace().First()

	assert.Equal(t, replay.StatusDefault, snap.StatusAt(-1))
	assert.Equal(t, replay.StatusDefault, snap.StatusAt(10))
}
