package sorting

import "github.com/ansonlam23/algorithm-visualizer/pkg/replay"

// partitionSort is quick sort with the Lomuto scheme. Sortedness is only
// marked at pivot placement; a blanket pass marks everything at the end.
func partitionSort(input []int) (replay.Trace, replay.Counters) {
	rec := replay.NewRecorder(input)

	rec.Emit("Starting quick sort")
	partitionRange(rec, 0, rec.Len()-1)
	rec.MarkAll(replay.StatusSorted)

	return finish(rec, "Quick sort")
}

func partitionRange(rec *replay.Recorder, lo, hi int) {
	if lo >= hi {
		return
	}

	p := partition(rec, lo, hi)

	partitionRange(rec, lo, p-1)
	partitionRange(rec, p+1, hi)
}

// partition places the pivot (slot hi) into its final position and returns
// that position.
func partition(rec *replay.Recorder, lo, hi int) int {
	rec.Mark(replay.StatusPivot, hi)
	rec.Emit("Pivot element: %d", rec.Value(hi))

	i := lo - 1

	for j := lo; j < hi; j++ {
		rec.Mark(replay.StatusComparing, j)
		rec.Emit("Comparing %d with pivot %d", rec.Value(j), rec.Value(hi))

		if rec.Less(j, hi) {
			i++

			if i != j {
				rec.Swap(i, j)
				rec.Mark(replay.StatusSwapping, i, j)
				rec.Emit("Swapped elements at positions %d and %d", i, j)
				rec.Mark(replay.StatusDefault, i)
			}
		}

		rec.Mark(replay.StatusDefault, j)
	}

	p := i + 1
	if p != hi {
		rec.Swap(p, hi)
	}

	rec.Mark(replay.StatusSwapping, p, hi)
	rec.Emit("Placed pivot in final position")

	if p != hi {
		rec.Mark(replay.StatusDefault, hi)
	}

	rec.Mark(replay.StatusSorted, p)

	return p
}
