package sorting

import "github.com/ansonlam23/algorithm-visualizer/pkg/replay"

func selectionSort(input []int) (replay.Trace, replay.Counters) {
	rec := replay.NewRecorder(input)
	n := rec.Len()

	rec.Emit("Starting selection sort")

	for i := 0; i < n-1; i++ {
		minIdx := i
		rec.Mark(replay.StatusComparing, i)

		for j := i + 1; j < n; j++ {
			rec.Mark(replay.StatusComparing, j)
			rec.Emit("Comparing element at position %d with current minimum", j)

			// Strict less keeps the earliest minimum on ties. The running
			// minimum stays highlighted until a smaller value replaces it.
			if rec.Less(j, minIdx) {
				if minIdx != i {
					rec.Mark(replay.StatusDefault, minIdx)
				}

				minIdx = j

				continue
			}

			rec.Mark(replay.StatusDefault, j)
		}

		if minIdx != i {
			rec.Swap(i, minIdx)
			rec.Mark(replay.StatusSwapping, i, minIdx)
			rec.Emit("Swapping minimum element to position %d", i)
			rec.Mark(replay.StatusDefault, minIdx)
		}

		rec.Mark(replay.StatusSorted, i)
	}

	if n > 0 {
		rec.Mark(replay.StatusSorted, n-1)
	}

	return finish(rec, "Selection sort")
}
