package sorting

import "github.com/ansonlam23/algorithm-visualizer/pkg/replay"

func heapSort(input []int) (replay.Trace, replay.Counters) {
	rec := replay.NewRecorder(input)
	n := rec.Len()

	rec.Emit("Starting heap sort")

	for i := n/2 - 1; i >= 0; i-- {
		siftDown(rec, n, i)
	}

	for end := n - 1; end > 0; end-- {
		rec.Swap(0, end)
		rec.Mark(replay.StatusSwapping, 0, end)
		rec.Emit("Moved largest element to position %d", end)

		rec.Mark(replay.StatusSorted, end)
		rec.Mark(replay.StatusDefault, 0)

		siftDown(rec, end, 0)
	}

	if n > 0 {
		rec.Mark(replay.StatusSorted, 0)
	}

	return finish(rec, "Heap sort")
}

// siftDown restores the max-heap property for the subtree rooted at i
// within the first size slots.
func siftDown(rec *replay.Recorder, size, i int) {
	largest := i

	if l := 2*i + 1; l < size {
		rec.Mark(replay.StatusComparing, l, largest)
		rec.Emit("Comparing with left child")

		bigger := rec.Greater(l, largest)
		rec.Mark(replay.StatusDefault, l, largest)

		if bigger {
			largest = l
		}
	}

	if r := 2*i + 2; r < size {
		rec.Mark(replay.StatusComparing, r, largest)
		rec.Emit("Comparing with right child")

		bigger := rec.Greater(r, largest)
		rec.Mark(replay.StatusDefault, r, largest)

		if bigger {
			largest = r
		}
	}

	if largest == i {
		return
	}

	rec.Swap(i, largest)
	rec.Mark(replay.StatusSwapping, i, largest)
	rec.Emit("Swapped with larger child")
	rec.Mark(replay.StatusDefault, i, largest)

	siftDown(rec, size, largest)
}
