package sorting

import "github.com/ansonlam23/algorithm-visualizer/pkg/replay"

// Result is one generator run: the trace plus the operation tallies
// recorded while producing it.
type Result struct {
	Algorithm Algorithm       `json:"algorithm" yaml:"algorithm"`
	Trace     replay.Trace    `json:"trace"     yaml:"trace"`
	Counters  replay.Counters `json:"counters"  yaml:"counters"`
}

// Generate runs the named generator over input and returns its trace.
// The only error is ErrUnknownAlgorithm; generation itself is total.
func Generate(alg Algorithm, input []int) (replay.Trace, error) {
	res, err := Run(alg, input)
	if err != nil {
		return nil, err
	}

	return res.Trace, nil
}

// Run is Generate plus operation counters.
func Run(alg Algorithm, input []int) (Result, error) {
	e, err := find(alg)
	if err != nil {
		return Result{}, err
	}

	trace, counters := e.counted(input)

	return Result{Algorithm: alg, Trace: trace, Counters: counters}, nil
}

// RunAll runs every algorithm over the same input, in presentation order.
func RunAll(input []int) []Result {
	out := make([]Result, 0, len(catalog))

	for _, e := range catalog {
		trace, counters := e.counted(input)
		out = append(out, Result{Algorithm: e.info.Name, Trace: trace, Counters: counters})
	}

	return out
}

// ExchangeSort returns the bubble sort trace of input.
func ExchangeSort(input []int) replay.Trace {
	trace, _ := exchangeSort(input)

	return trace
}

// SelectionSort returns the selection sort trace of input.
func SelectionSort(input []int) replay.Trace {
	trace, _ := selectionSort(input)

	return trace
}

// InsertionSort returns the insertion sort trace of input.
func InsertionSort(input []int) replay.Trace {
	trace, _ := insertionSort(input)

	return trace
}

// MergeSort returns the merge sort trace of input.
func MergeSort(input []int) replay.Trace {
	trace, _ := mergeSort(input)

	return trace
}

// PartitionSort returns the quick sort trace of input.
func PartitionSort(input []int) replay.Trace {
	trace, _ := partitionSort(input)

	return trace
}

// HeapSort returns the heap sort trace of input.
func HeapSort(input []int) replay.Trace {
	trace, _ := heapSort(input)

	return trace
}

func finish(rec *replay.Recorder, title string) (replay.Trace, replay.Counters) {
	counters := rec.Counters()

	return rec.Finish("%s completed!", title), counters
}
