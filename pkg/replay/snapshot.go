// Package replay defines the snapshot contract shared by every sorting trace
// generator and its consumers (renderers, players, exporters), plus the
// accumulator generators use to build traces and the cursor used to walk them.
package replay

import (
	"errors"
	"fmt"
	"slices"
)

// Status tags the role an element plays in a single snapshot.
// It is purely descriptive and carries no algorithmic state.
type Status string

// Closed set of element statuses.
const (
	StatusDefault   Status = "default"
	StatusComparing Status = "comparing"
	StatusSwapping  Status = "swapping"
	StatusSorted    Status = "sorted"
	StatusPivot     Status = "pivot"
	StatusPartition Status = "partition"
)

// ErrUnknownStatus is returned by ParseStatus for values outside the closed set.
var ErrUnknownStatus = errors.New("unknown element status")

// Statuses returns every valid status in display order.
func Statuses() []Status {
	return []Status{
		StatusDefault,
		StatusComparing,
		StatusSwapping,
		StatusSorted,
		StatusPivot,
		StatusPartition,
	}
}

// ParseStatus converts a string into a Status.
func ParseStatus(s string) (Status, error) {
	status := Status(s)
	if !slices.Contains(Statuses(), status) {
		return "", fmt.Errorf("%w: %q", ErrUnknownStatus, s)
	}

	return status, nil
}

// Element is one slot of the working sequence at a point in time.
// Index always equals the slot the element occupies.
type Element struct {
	Value  int    `json:"value"  yaml:"value"`
	Index  int    `json:"index"  yaml:"index"`
	Status Status `json:"status" yaml:"status"`
}

// Snapshot is an immutable capture of the whole working sequence.
//
// TotalSteps is zero on every snapshot except the final one, which carries
// the real total. Consumers rely on the final-only value.
type Snapshot struct {
	Array       []Element `json:"array"       yaml:"array"`
	Step        int       `json:"step"        yaml:"step"`
	TotalSteps  int       `json:"totalSteps"  yaml:"totalSteps"`
	Description string    `json:"description" yaml:"description"`
	IsComplete  bool      `json:"isComplete"  yaml:"isComplete"`
}

// Values returns the element values in slot order.
func (s Snapshot) Values() []int {
	values := make([]int, len(s.Array))
	for i, el := range s.Array {
		values[i] = el.Value
	}

	return values
}

// StatusAt returns the status of slot i, or StatusDefault when out of range.
func (s Snapshot) StatusAt(i int) Status {
	if i < 0 || i >= len(s.Array) {
		return StatusDefault
	}

	return s.Array[i].Status
}

// IndicesWith returns the slots carrying the given status.
func (s Snapshot) IndicesWith(status Status) []int {
	var out []int

	for i, el := range s.Array {
		if el.Status == status {
			out = append(out, i)
		}
	}

	return out
}

// Clone returns a deep copy of the snapshot.
func (s Snapshot) Clone() Snapshot {
	s.Array = slices.Clone(s.Array)

	return s
}

// Trace is the ordered list of snapshots produced by one generator run.
type Trace []Snapshot

// Len returns the number of snapshots.
func (t Trace) Len() int { return len(t) }

// TotalSteps returns the display total, len-1. An empty trace reports 0.
func (t Trace) TotalSteps() int {
	if len(t) == 0 {
		return 0
	}

	return len(t) - 1
}

// At returns the snapshot at the clamped index.
// It panics on an empty trace, which no generator produces.
func (t Trace) At(i int) Snapshot {
	return t[clampIndex(i, len(t))]
}

// First returns the initial snapshot.
func (t Trace) First() Snapshot { return t.At(0) }

// Final returns the last snapshot.
func (t Trace) Final() Snapshot { return t.At(len(t) - 1) }

// Clone deep-copies every snapshot, so the copy shares no element storage.
func (t Trace) Clone() Trace {
	if t == nil {
		return nil
	}

	out := make(Trace, len(t))
	for i, snap := range t {
		out[i] = snap.Clone()
	}

	return out
}

// Window returns a deep copy of snapshots in [from, to], both clamped.
func (t Trace) Window(from, to int) Trace {
	if len(t) == 0 {
		return nil
	}

	from = clampIndex(from, len(t))
	to = clampIndex(to, len(t))

	if to < from {
		return Trace{}
	}

	return t[from : to+1].Clone()
}

// Page returns a deep copy of at most limit snapshots starting at start,
// together with the clamped start it actually used. A limit of zero or less
// runs to the end of the trace. Arbitrarily large start and limit values
// are safe.
func (t Trace) Page(start, limit int) (Trace, int) {
	if len(t) == 0 {
		return nil, 0
	}

	start = clampIndex(start, len(t))

	end := len(t) - 1
	if limit > 0 && limit <= end-start {
		end = start + limit - 1
	}

	return t[start : end+1].Clone(), start
}

func clampIndex(i, n int) int {
	if n == 0 {
		return 0
	}

	return max(0, min(i, n-1))
}
