package replay

import (
	"errors"
	"time"
)

// BaseInterval is the delay between automatic advances at speed 1.
const BaseInterval = time.Second

// Speed limits accepted by the player.
const (
	MinSpeed = 0.1
	MaxSpeed = 5.0
)

// ErrInvalidSpeed is returned when a speed factor is not positive.
var ErrInvalidSpeed = errors.New("playback speed must be positive")

// Player is a cursor over a Trace. It holds no timer of its own; callers
// drive it at Interval() and stop when Advance reports the end.
// A Player is not safe for concurrent use.
type Player struct {
	trace   Trace
	cursor  int
	speed   float64
	playing bool
}

// NewPlayer returns a paused player positioned on the first snapshot.
func NewPlayer(trace Trace) *Player {
	return &Player{trace: trace, speed: 1}
}

// Load replaces the trace, rewinds, and pauses.
func (p *Player) Load(trace Trace) {
	p.trace = trace
	p.cursor = 0
	p.playing = false
}

// Trace returns the trace being played.
func (p *Player) Trace() Trace { return p.trace }

// Index returns the current cursor position.
func (p *Player) Index() int { return p.cursor }

// TotalSteps returns the number of steps, len-1.
func (p *Player) TotalSteps() int { return p.trace.TotalSteps() }

// Current returns the snapshot under the cursor.
func (p *Player) Current() (Snapshot, bool) {
	if len(p.trace) == 0 {
		return Snapshot{}, false
	}

	return p.trace[p.cursor], true
}

// Seek moves the cursor to i, clamped to [0, len-1].
func (p *Player) Seek(i int) int {
	p.cursor = clampIndex(i, len(p.trace))

	return p.cursor
}

// Next advances one step. It reports false when already at the end.
func (p *Player) Next() bool {
	if p.AtEnd() {
		return false
	}

	p.cursor++

	return true
}

// Prev moves back one step. It reports false when already at the start.
func (p *Player) Prev() bool {
	if p.cursor == 0 {
		return false
	}

	p.cursor--

	return true
}

// First rewinds to the initial snapshot.
func (p *Player) First() { p.cursor = 0 }

// Last jumps to the final snapshot.
func (p *Player) Last() { p.Seek(len(p.trace) - 1) }

// AtEnd reports whether the cursor is on the final snapshot.
func (p *Player) AtEnd() bool { return p.cursor >= len(p.trace)-1 }

// Playing reports whether automatic advancement is on.
func (p *Player) Playing() bool { return p.playing }

// Play turns automatic advancement on. Playing from the end rewinds first.
func (p *Player) Play() {
	if p.AtEnd() {
		p.First()
	}

	p.playing = len(p.trace) > 1
}

// Pause turns automatic advancement off.
func (p *Player) Pause() { p.playing = false }

// Toggle flips between playing and paused.
func (p *Player) Toggle() {
	if p.playing {
		p.Pause()

		return
	}

	p.Play()
}

// Advance is called on every timer tick. It steps forward while playing and
// pauses once the final snapshot is reached. It reports whether the cursor moved.
func (p *Player) Advance() bool {
	if !p.playing {
		return false
	}

	moved := p.Next()
	if p.AtEnd() {
		p.playing = false
	}

	return moved
}

// Speed returns the speed factor.
func (p *Player) Speed() float64 { return p.speed }

// SetSpeed sets the speed factor, clamped to [MinSpeed, MaxSpeed].
func (p *Player) SetSpeed(speed float64) error {
	if speed <= 0 {
		return ErrInvalidSpeed
	}

	p.speed = max(MinSpeed, min(speed, MaxSpeed))

	return nil
}

// Interval returns the tick delay for the current speed.
func (p *Player) Interval() time.Duration {
	return Interval(p.speed)
}

// Progress returns the cursor position as a fraction in [0, 1].
func (p *Player) Progress() float64 {
	total := p.TotalSteps()
	if total == 0 {
		return 1
	}

	return float64(p.cursor) / float64(total)
}

// Interval returns BaseInterval scaled down by speed. Non-positive speeds
// fall back to BaseInterval.
func Interval(speed float64) time.Duration {
	if speed <= 0 {
		return BaseInterval
	}

	return time.Duration(float64(BaseInterval) / speed)
}
