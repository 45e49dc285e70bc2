package replay_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
)

func TestPlayer_StepNavigation(t *testing.T) {
	t.Parallel()

	player := replay.NewPlayer(sampleTrace())

	assert.Equal(t, 0, player.Index())
	assert.False(t, player.Prev())

	assert.True(t, player.Next())
	assert.True(t, player.Next())
	assert.True(t, player.Next())
	assert.False(t, player.Next())
	assert.True(t, player.AtEnd())
	assert.Equal(t, 3, player.Index())

	player.First()
	assert.Equal(t, 0, player.Index())

	player.Last()
	assert.Equal(t, player.TotalSteps(), player.Index())
}

func TestPlayer_SeekClamps(t *testing.T) {
	t.Parallel()

	player := replay.NewPlayer(sampleTrace())

	assert.Equal(t, 0, player.Seek(-1))
	assert.Equal(t, 3, player.Seek(42))
	assert.Equal(t, 2, player.Seek(2))

	snap, ok := player.Current()
	require.True(t, ok)
	assert.Equal(t, 2, snap.Step)
}

func TestPlayer_AdvanceStopsAtEnd(t *testing.T) {
	t.Parallel()

	player := replay.NewPlayer(sampleTrace())
	assert.False(t, player.Advance())

	player.Play()
	require.True(t, player.Playing())

	ticks := 0
	for player.Advance() {
		ticks++
	}

	assert.Equal(t, 3, ticks)
	assert.False(t, player.Playing())
	assert.True(t, player.AtEnd())

	player.Toggle()
	assert.True(t, player.Playing())
	assert.Equal(t, 0, player.Index())
}

func TestPlayer_SingleSnapshotNeverPlays(t *testing.T) {
	t.Parallel()

	rec := replay.NewRecorder(nil)
	rec.Emit("empty")

	player := replay.NewPlayer(rec.Finish("done"))
	player.Play()

	assert.False(t, player.Playing())
	assert.InDelta(t, 1.0, player.Progress(), 0.0001)
}

func TestPlayer_LoadResets(t *testing.T) {
	t.Parallel()

	player := replay.NewPlayer(sampleTrace())
	player.Seek(2)
	player.Play()

	player.Load(sampleTrace().Window(0, 1))

	assert.Equal(t, 0, player.Index())
	assert.False(t, player.Playing())
	assert.Equal(t, 1, player.TotalSteps())
}

func TestPlayer_EmptyTrace(t *testing.T) {
	t.Parallel()

	player := replay.NewPlayer(nil)

	_, ok := player.Current()
	assert.False(t, ok)
	assert.Equal(t, 0, player.Seek(5))
}

func TestPlayer_SpeedAndInterval(t *testing.T) {
	t.Parallel()

	player := replay.NewPlayer(sampleTrace())
	assert.Equal(t, time.Second, player.Interval())

	require.NoError(t, player.SetSpeed(2))
	assert.Equal(t, 500*time.Millisecond, player.Interval())

	require.NoError(t, player.SetSpeed(100))
	assert.InDelta(t, replay.MaxSpeed, player.Speed(), 0.0001)

	require.ErrorIs(t, player.SetSpeed(0), replay.ErrInvalidSpeed)
	assert.Equal(t, time.Second, replay.Interval(-1))
}

func TestPlayer_Progress(t *testing.T) {
	t.Parallel()

	player := replay.NewPlayer(sampleTrace())
	assert.InDelta(t, 0.0, player.Progress(), 0.0001)

	player.Last()
	assert.InDelta(t, 1.0, player.Progress(), 0.0001)
}
