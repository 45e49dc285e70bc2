package sorting

import "github.com/ansonlam23/algorithm-visualizer/pkg/replay"

func mergeSort(input []int) (replay.Trace, replay.Counters) {
	rec := replay.NewRecorder(input)

	rec.Emit("Starting merge sort")
	mergeRange(rec, 0, rec.Len()-1)

	return finish(rec, "Merge sort")
}

// mergeRange sorts [lo, hi] by splitting on the left-biased midpoint.
func mergeRange(rec *replay.Recorder, lo, hi int) {
	if lo >= hi {
		return
	}

	mid := (lo + hi) / 2

	mergeRange(rec, lo, mid)
	mergeRange(rec, mid+1, hi)
	mergeHalves(rec, lo, mid, hi)
}

// mergeHalves merges the sorted runs [lo, mid] and [mid+1, hi] in place.
// The left head is always at k and the right head at rs; taking from the
// right rotates that value down to k, which keeps every snapshot a
// permutation of the input.
func mergeHalves(rec *replay.Recorder, lo, mid, hi int) {
	k, rs := lo, mid+1

	for k < rs && rs <= hi {
		rec.Mark(replay.StatusComparing, k, rs)
		rec.Emit("Comparing %d and %d", rec.Value(k), rec.Value(rs))

		// Left wins ties.
		takeLeft := rec.LessOrEqual(k, rs)
		rec.Mark(replay.StatusDefault, k, rs)

		if !takeLeft {
			rec.Rotate(k, rs)
			rs++
		}

		rec.Mark(replay.StatusSwapping, k)
		rec.Emit("Placed element in position %d", k)
		rec.Mark(replay.StatusDefault, k)
		k++
	}

	fromLeft := rs > hi

	for ; k <= hi; k++ {
		rec.Mark(replay.StatusSwapping, k)

		if fromLeft {
			rec.Emit("Placed remaining element from left array")
		} else {
			rec.Emit("Placed remaining element from right array")
		}

		rec.Mark(replay.StatusDefault, k)
	}

	rec.MarkRange(replay.StatusSorted, lo, hi)
}
