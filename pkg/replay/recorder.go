package replay

import "fmt"

// Counters tallies the primitive operations a generator performed.
type Counters struct {
	Comparisons int `json:"comparisons" yaml:"comparisons"`
	Exchanges   int `json:"exchanges"   yaml:"exchanges"`
}

// Recorder owns the mutable working sequence of one generator run and the
// snapshots emitted from it. A Recorder must not be shared between runs.
type Recorder struct {
	work     []Element
	snaps    Trace
	counters Counters
}

// NewRecorder copies values into a fresh working buffer with every slot at
// StatusDefault. The caller's slice is never touched again.
func NewRecorder(values []int) *Recorder {
	work := make([]Element, len(values))
	for i, v := range values {
		work[i] = Element{Value: v, Index: i, Status: StatusDefault}
	}

	return &Recorder{work: work}
}

// Len returns the length of the working sequence.
func (r *Recorder) Len() int { return len(r.work) }

// Value returns the value currently held by slot i.
func (r *Recorder) Value(i int) int { return r.work[i].Value }

// Counters returns the operation tallies so far.
func (r *Recorder) Counters() Counters { return r.counters }

// Mark sets status on each of the given slots.
func (r *Recorder) Mark(status Status, slots ...int) {
	for _, i := range slots {
		r.work[i].Status = status
	}
}

// MarkRange sets status on every slot in [lo, hi].
func (r *Recorder) MarkRange(status Status, lo, hi int) {
	for i := lo; i <= hi; i++ {
		r.work[i].Status = status
	}
}

// MarkAll sets status on every slot.
func (r *Recorder) MarkAll(status Status) {
	for i := range r.work {
		r.work[i].Status = status
	}
}

// Less reports whether slot i holds a smaller value than slot j.
func (r *Recorder) Less(i, j int) bool {
	r.counters.Comparisons++

	return r.work[i].Value < r.work[j].Value
}

// Greater reports whether slot i holds a larger value than slot j.
func (r *Recorder) Greater(i, j int) bool {
	r.counters.Comparisons++

	return r.work[i].Value > r.work[j].Value
}

// LessOrEqual reports whether slot i holds a value no larger than slot j.
func (r *Recorder) LessOrEqual(i, j int) bool {
	r.counters.Comparisons++

	return r.work[i].Value <= r.work[j].Value
}

// Swap exchanges the values of slots i and j. Statuses stay with the slots.
func (r *Recorder) Swap(i, j int) {
	r.counters.Exchanges++
	r.work[i].Value, r.work[j].Value = r.work[j].Value, r.work[i].Value
}

// Rotate moves the value in slot from down to slot to (to < from), shifting
// the values in [to, from-1] one slot to the right. The multiset of values
// is unchanged, so every snapshot stays a permutation of the input.
func (r *Recorder) Rotate(to, from int) {
	if from <= to {
		return
	}

	r.counters.Exchanges++

	moved := r.work[from].Value
	for i := from; i > to; i-- {
		r.work[i].Value = r.work[i-1].Value
	}

	r.work[to].Value = moved
}

// Emit appends a snapshot of the current working state. The element list is
// deep-copied, so later mutations never leak into emitted snapshots.
func (r *Recorder) Emit(format string, args ...any) {
	r.snaps = append(r.snaps, Snapshot{
		Array:       r.capture(),
		Step:        len(r.snaps),
		Description: fmt.Sprintf(format, args...),
	})
}

// Finish marks every slot sorted, emits the final snapshot carrying the
// total step count, and hands over the trace. The recorder must not be used
// afterwards.
//
// An empty working sequence yields exactly one snapshot: the initial one,
// marked complete.
func (r *Recorder) Finish(format string, args ...any) Trace {
	if len(r.work) == 0 && len(r.snaps) == 1 {
		r.snaps[0].IsComplete = true

		return r.release()
	}

	r.MarkAll(StatusSorted)

	step := len(r.snaps)
	r.snaps = append(r.snaps, Snapshot{
		Array:       r.capture(),
		Step:        step,
		TotalSteps:  step,
		Description: fmt.Sprintf(format, args...),
		IsComplete:  true,
	})

	return r.release()
}

func (r *Recorder) capture() []Element {
	out := make([]Element, len(r.work))
	copy(out, r.work)

	return out
}

func (r *Recorder) release() Trace {
	out := r.snaps
	r.snaps = nil
	r.work = nil

	return out
}
