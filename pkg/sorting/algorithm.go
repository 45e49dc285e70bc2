// Package sorting implements the trace generators: six classic comparison
// sorts that record every comparison, exchange and placement as a
// replay.Trace for step-by-step playback.
package sorting

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
)

// Algorithm names a trace generator.
type Algorithm string

// Supported algorithms.
const (
	ExchangeSortName  Algorithm = "exchange-sort"
	SelectionSortName Algorithm = "selection-sort"
	InsertionSortName Algorithm = "insertion-sort"
	MergeSortName     Algorithm = "merge-sort"
	PartitionSortName Algorithm = "partition-sort"
	HeapSortName      Algorithm = "heap-sort"
)

// ErrUnknownAlgorithm is returned when a name does not match any generator.
var ErrUnknownAlgorithm = errors.New("unknown sorting algorithm")

// Generator is a pure function from an input sequence to its trace.
// Implementations never mutate input.
type Generator func(input []int) replay.Trace

// Info is the static description of an algorithm.
type Info struct {
	Name            Algorithm `json:"name"             yaml:"name"`
	Title           string    `json:"title"            yaml:"title"`
	Description     string    `json:"description"      yaml:"description"`
	TimeComplexity  string    `json:"time_complexity"  yaml:"time_complexity"`
	SpaceComplexity string    `json:"space_complexity" yaml:"space_complexity"`
	BestCase        string    `json:"best_case"        yaml:"best_case"`
	AverageCase     string    `json:"average_case"     yaml:"average_case"`
	WorstCase       string    `json:"worst_case"       yaml:"worst_case"`
}

type entry struct {
	info    Info
	counted func(input []int) (replay.Trace, replay.Counters)
}

// catalog lists the algorithms in presentation order.
var catalog = []entry{
	{
		info: Info{
			Name:  ExchangeSortName,
			Title: "Bubble Sort",
			Description: "Repeatedly steps through the list, compares adjacent elements " +
				"and swaps them if they are in the wrong order.",
			TimeComplexity:  "O(n²)",
			SpaceComplexity: "O(1)",
			BestCase:        "O(n)",
			AverageCase:     "O(n²)",
			WorstCase:       "O(n²)",
		},
		counted: exchangeSort,
	},
	{
		info: Info{
			Name:  SelectionSortName,
			Title: "Selection Sort",
			Description: "Divides the list into a sorted and an unsorted region and repeatedly " +
				"selects the smallest element from the unsorted region.",
			TimeComplexity:  "O(n²)",
			SpaceComplexity: "O(1)",
			BestCase:        "O(n²)",
			AverageCase:     "O(n²)",
			WorstCase:       "O(n²)",
		},
		counted: selectionSort,
	},
	{
		info: Info{
			Name:  InsertionSortName,
			Title: "Insertion Sort",
			Description: "Builds the sorted list one item at a time by inserting each new " +
				"element into the sorted prefix.",
			TimeComplexity:  "O(n²)",
			SpaceComplexity: "O(1)",
			BestCase:        "O(n)",
			AverageCase:     "O(n²)",
			WorstCase:       "O(n²)",
		},
		counted: insertionSort,
	},
	{
		info: Info{
			Name:  MergeSortName,
			Title: "Merge Sort",
			Description: "Divide and conquer: splits the list in halves down to single " +
				"elements, then merges the sorted halves back together.",
			TimeComplexity:  "O(n log n)",
			SpaceComplexity: "O(n)",
			BestCase:        "O(n log n)",
			AverageCase:     "O(n log n)",
			WorstCase:       "O(n log n)",
		},
		counted: mergeSort,
	},
	{
		info: Info{
			Name:  PartitionSortName,
			Title: "Quick Sort",
			Description: "Picks a pivot, partitions the list around it, and sorts both " +
				"partitions recursively.",
			TimeComplexity:  "O(n log n)",
			SpaceComplexity: "O(log n)",
			BestCase:        "O(n log n)",
			AverageCase:     "O(n log n)",
			WorstCase:       "O(n²)",
		},
		counted: partitionSort,
	},
	{
		info: Info{
			Name:  HeapSortName,
			Title: "Heap Sort",
			Description: "Builds a binary max-heap and repeatedly moves its root to the end " +
				"of the unsorted region.",
			TimeComplexity:  "O(n log n)",
			SpaceComplexity: "O(1)",
			BestCase:        "O(n log n)",
			AverageCase:     "O(n log n)",
			WorstCase:       "O(n log n)",
		},
		counted: heapSort,
	},
}

// aliases maps the classic names onto generator names.
var aliases = map[string]Algorithm{
	"bubble-sort": ExchangeSortName,
	"bubble":      ExchangeSortName,
	"quick-sort":  PartitionSortName,
	"quick":       PartitionSortName,
	"selection":   SelectionSortName,
	"insertion":   InsertionSortName,
	"merge":       MergeSortName,
	"heap":        HeapSortName,
}

// Algorithms returns every algorithm in presentation order.
func Algorithms() []Algorithm {
	out := make([]Algorithm, len(catalog))
	for i, e := range catalog {
		out[i] = e.info.Name
	}

	return out
}

// Catalog returns the static description of every algorithm.
func Catalog() []Info {
	out := make([]Info, len(catalog))
	for i, e := range catalog {
		out[i] = e.info
	}

	return out
}

// ParseAlgorithm resolves a name or alias, case-insensitively.
func ParseAlgorithm(name string) (Algorithm, error) {
	key := strings.ToLower(strings.TrimSpace(name))

	if alias, ok := aliases[key]; ok {
		return alias, nil
	}

	for _, e := range catalog {
		if string(e.info.Name) == key {
			return e.info.Name, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, name)
}

// Lookup returns the static description of alg.
func Lookup(alg Algorithm) (Info, error) {
	e, err := find(alg)
	if err != nil {
		return Info{}, err
	}

	return e.info, nil
}

// GeneratorFor returns the trace generator for alg.
func GeneratorFor(alg Algorithm) (Generator, error) {
	e, err := find(alg)
	if err != nil {
		return nil, err
	}

	counted := e.counted

	return func(input []int) replay.Trace {
		trace, _ := counted(input)

		return trace
	}, nil
}

func find(alg Algorithm) (entry, error) {
	for _, e := range catalog {
		if e.info.Name == alg {
			return e, nil
		}
	}

	return entry{}, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, alg)
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return string(a) }
