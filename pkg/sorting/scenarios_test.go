package sorting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

func TestExchangeSort_ThreeOneTwo(t *testing.T) {
	t.Parallel()

	trace := sorting.ExchangeSort([]int{3, 1, 2})

	// start, cmp, swap, swap, cmp, swap, swap, cmp, final
	require.Len(t, trace, 9)

	cmp := trace[1]
	assert.Equal(t, []int{0, 1}, cmp.IndicesWith(replay.StatusComparing))
	assert.Equal(t, []int{3, 1, 2}, cmp.Values())

	assert.Equal(t, []int{0, 1}, trace[2].IndicesWith(replay.StatusSwapping))
	assert.Equal(t, []int{3, 1, 2}, trace[2].Values())
	assert.Equal(t, []int{1, 3, 2}, trace[3].Values())
	assert.Equal(t, []int{0, 1}, trace[3].IndicesWith(replay.StatusSwapping))

	assert.Equal(t, []int{1, 2, 3}, trace.Final().Values())
	assert.True(t, trace.Final().IsComplete)
	assert.Equal(t, 8, trace.Final().TotalSteps)
}

func TestExchangeSort_StepCountFormula(t *testing.T) {
	t.Parallel()

	for name, input := range fixtures {
		res, err := sorting.Run(sorting.ExchangeSortName, input)
		require.NoError(t, err)

		if len(input) == 0 {
			assert.Equal(t, 0, res.Trace.TotalSteps(), name)

			continue
		}

		swaps := 0
		comparisons := 0

		for _, snap := range res.Trace {
			if len(snap.IndicesWith(replay.StatusComparing)) == 2 {
				comparisons++
			}

			if len(snap.IndicesWith(replay.StatusSwapping)) == 2 {
				swaps++
			}
		}

		assert.Equal(t, comparisons+swaps+1, res.Trace.TotalSteps(), name)
		assert.Equal(t, res.Counters.Comparisons+2*res.Counters.Exchanges+1, res.Trace.TotalSteps(), name)
	}
}

func TestExchangeSort_MarksTrailingSorted(t *testing.T) {
	t.Parallel()

	trace := sorting.ExchangeSort([]int{2, 3, 1})

	// After the first pass the last slot is settled; it appears at the
	// first comparison of the second pass.
	var seen bool

	for _, snap := range trace[1 : len(trace)-1] {
		if snap.StatusAt(2) == replay.StatusSorted {
			seen = true

			assert.Equal(t, 3, snap.Values()[2])
		}
	}

	assert.True(t, seen)
}

func TestSelectionSort_TiesKeepEarliestMinimum(t *testing.T) {
	t.Parallel()

	res, err := sorting.Run(sorting.SelectionSortName, []int{2, 1, 1})
	require.NoError(t, err)

	// Pass 0 must pick slot 1, the first of the two minima.
	assert.Equal(t, 2, res.Counters.Exchanges)
	assert.Equal(t, []int{1, 2, 1}, swapSnapshots(res.Trace)[0].Values())
	assert.Equal(t, []int{1, 1, 2}, res.Trace.Final().Values())
}

func TestSelectionSort_RunningMinimumStaysHighlighted(t *testing.T) {
	t.Parallel()

	trace := sorting.SelectionSort([]int{5, 1, 4, 3})

	// start, cmp 1, cmp 2, cmp 3, swap, ...
	assert.Equal(t, []int{0, 1}, trace[1].IndicesWith(replay.StatusComparing))
	assert.Equal(t, []int{0, 1, 2}, trace[2].IndicesWith(replay.StatusComparing))
	assert.Equal(t, []int{0, 1, 3}, trace[3].IndicesWith(replay.StatusComparing))
	assert.Equal(t, []int{0, 1}, trace[4].IndicesWith(replay.StatusSwapping))
}

func TestSelectionSort_ReplacedMinimumIsReset(t *testing.T) {
	t.Parallel()

	trace := sorting.SelectionSort([]int{5, 3, 1})

	// Slot 1 was the minimum until slot 2 replaced it.
	assert.Equal(t, []int{0, 1, 2}, trace[2].IndicesWith(replay.StatusComparing))
	assert.Equal(t, []int{0, 2}, trace[3].IndicesWith(replay.StatusSwapping))
	assert.Equal(t, replay.StatusDefault, trace[3].StatusAt(1))
}

func TestSelectionSort_SortedPrefixGrows(t *testing.T) {
	t.Parallel()

	trace := sorting.SelectionSort([]int{3, 2, 1})

	for _, snap := range trace {
		if snap.IsComplete {
			continue
		}

		sorted := snap.IndicesWith(replay.StatusSorted)
		for i, slot := range sorted {
			assert.Equal(t, i, slot, "sorted slots form a prefix")
		}
	}
}

func TestInsertionSort_ShiftsAreComparedFirst(t *testing.T) {
	t.Parallel()

	trace := sorting.InsertionSort([]int{2, 1})

	// start, inserting, compare, shift, placed, final
	require.Len(t, trace, 6)

	assert.Equal(t, "Inserting element 1 into sorted portion", trace[1].Description)
	assert.Equal(t, []int{0, 1}, trace[2].IndicesWith(replay.StatusComparing))
	assert.Equal(t, []int{1, 2}, trace[3].Values())
	assert.Equal(t, []int{0, 1}, trace[3].IndicesWith(replay.StatusSwapping))
	assert.Equal(t, []int{0, 1}, trace[4].IndicesWith(replay.StatusSorted))
}

func TestInsertionSort_SortedInputNeverShifts(t *testing.T) {
	t.Parallel()

	res, err := sorting.Run(sorting.InsertionSortName, fixtures["sorted"])
	require.NoError(t, err)

	assert.Zero(t, res.Counters.Exchanges)
	assert.Empty(t, swapSnapshots(res.Trace))
}

func TestMergeSort_FourTwo(t *testing.T) {
	t.Parallel()

	trace := sorting.MergeSort([]int{4, 2})

	var comparisons []replay.Snapshot

	for _, snap := range trace {
		if len(snap.IndicesWith(replay.StatusComparing)) > 0 {
			comparisons = append(comparisons, snap)
		}
	}

	require.Len(t, comparisons, 1)
	assert.Equal(t, "Comparing 4 and 2", comparisons[0].Description)

	placements := swapSnapshots(trace)
	require.Len(t, placements, 2)
	assert.Equal(t, []int{0}, placements[0].IndicesWith(replay.StatusSwapping))
	assert.Equal(t, 2, placements[0].Values()[0])
	assert.Equal(t, []int{1}, placements[1].IndicesWith(replay.StatusSwapping))
	assert.Equal(t, 4, placements[1].Values()[1])

	assert.Equal(t, []int{0, 1}, trace.Final().IndicesWith(replay.StatusSorted))
}

func TestMergeSort_LeftWinsTies(t *testing.T) {
	t.Parallel()

	res, err := sorting.Run(sorting.MergeSortName, []int{1, 1})
	require.NoError(t, err)

	assert.Zero(t, res.Counters.Exchanges)
	assert.Equal(t, []int{1, 1}, res.Trace.Final().Values())
}

func TestPartitionSort_PivotFirst(t *testing.T) {
	t.Parallel()

	trace := sorting.PartitionSort([]int{5, 3, 8, 1})
	require.Greater(t, len(trace), 2)

	first := trace[1]
	assert.Equal(t, []int{3}, first.IndicesWith(replay.StatusPivot))
	assert.Equal(t, 1, first.Values()[3])
	assert.Equal(t, []int{1, 3, 5, 8}, trace.Final().Values())
}

func TestPartitionSort_SwapOnlyOnPositionChange(t *testing.T) {
	t.Parallel()

	// Every candidate is below the pivot and already in place.
	res, err := sorting.Run(sorting.PartitionSortName, []int{1, 2, 3})
	require.NoError(t, err)

	assert.Zero(t, res.Counters.Exchanges)

	for _, snap := range swapSnapshots(res.Trace) {
		assert.Equal(t, "Placed pivot in final position", snap.Description)
	}
}

func TestHeapSort_RootSortedLast(t *testing.T) {
	t.Parallel()

	trace := sorting.HeapSort([]int{4, 10, 3, 5, 1})

	for _, snap := range trace[:len(trace)-1] {
		assert.NotEqual(t, replay.StatusSorted, snap.StatusAt(0))
	}

	assert.Equal(t, []int{1, 3, 4, 5, 10}, trace.Final().Values())
}

func TestHeapSort_ExtractionMovesMaximum(t *testing.T) {
	t.Parallel()

	trace := sorting.HeapSort([]int{1, 2, 3})

	var moved []replay.Snapshot

	for _, snap := range trace {
		if snap.Description == "Moved largest element to position 2" {
			moved = append(moved, snap)
		}
	}

	require.Len(t, moved, 1)
	assert.Equal(t, 3, moved[0].Values()[2])
}

func swapSnapshots(trace replay.Trace) []replay.Snapshot {
	var out []replay.Snapshot

	for _, snap := range trace {
		if !snap.IsComplete && len(snap.IndicesWith(replay.StatusSwapping)) > 0 {
			out = append(out, snap)
		}
	}

	return out
}
