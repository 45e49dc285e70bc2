package sorting

import "github.com/ansonlam23/algorithm-visualizer/pkg/replay"

// exchangeSort is bubble sort. Each adjacent comparison yields one snapshot
// and each exchange yields two, so a run of n elements produces
// comparisons + 2*exchanges + 2 snapshots.
func exchangeSort(input []int) (replay.Trace, replay.Counters) {
	rec := replay.NewRecorder(input)
	n := rec.Len()

	rec.Emit("Starting exchange sort")

	for i := range n {
		for j := 0; j < n-i-1; j++ {
			rec.Mark(replay.StatusComparing, j, j+1)
			rec.Emit("Comparing elements at positions %d and %d", j, j+1)

			if rec.Greater(j, j+1) {
				rec.Mark(replay.StatusSwapping, j, j+1)
				rec.Emit("Starting swap at positions %d and %d", j, j+1)

				rec.Swap(j, j+1)
				rec.Emit("Swapped elements at positions %d and %d", j, j+1)
			}

			rec.Mark(replay.StatusDefault, j, j+1)
		}

		rec.Mark(replay.StatusSorted, n-i-1)
	}

	return finish(rec, "Exchange sort")
}
