package sorting

import "github.com/ansonlam23/algorithm-visualizer/pkg/replay"

// insertionSort walks the key left through the sorted prefix by adjacent
// exchanges, so no snapshot ever holds a duplicated value.
func insertionSort(input []int) (replay.Trace, replay.Counters) {
	rec := replay.NewRecorder(input)
	n := rec.Len()

	rec.Emit("Starting insertion sort")

	for i := 1; i < n; i++ {
		rec.Mark(replay.StatusComparing, i)
		rec.Emit("Inserting element %d into sorted portion", rec.Value(i))

		j := i - 1
		for j >= 0 && rec.Greater(j, j+1) {
			rec.Mark(replay.StatusComparing, j, j+1)
			rec.Emit("Comparing %d with %d", rec.Value(j), rec.Value(j+1))

			rec.Swap(j, j+1)
			rec.Mark(replay.StatusSwapping, j, j+1)
			rec.Emit("Shifting element %d to the right", rec.Value(j+1))

			rec.Mark(replay.StatusSorted, j+1)
			rec.Mark(replay.StatusComparing, j)
			j--
		}

		rec.MarkRange(replay.StatusSorted, 0, i)
		rec.Emit("Placed %d in correct position", rec.Value(j+1))
	}

	return finish(rec, "Insertion sort")
}
