package sorting_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

var fixtures = map[string][]int{
	"empty":        {},
	"singleton":    {7},
	"pair":         {4, 2},
	"sorted":       {1, 2, 3, 4, 5, 6},
	"reversed":     {9, 7, 5, 3, 1, 0, -2},
	"duplicates":   {3, 1, 3, 2, 1, 3},
	"all_equal":    {5, 5, 5, 5},
	"mixed":        {12, 45, 3, 27, 8, 33, 19, 1, 40, 22},
	"odd_length":   {5, 3, 8, 1, 9},
	"negative_mix": {0, -10, 10, -5, 5},
}

func TestGenerate_TraceInvariants(t *testing.T) {
	t.Parallel()

	for _, alg := range sorting.Algorithms() {
		for name, input := range fixtures {
			t.Run(string(alg)+"/"+name, func(t *testing.T) {
				t.Parallel()

				trace, err := sorting.Generate(alg, input)
				require.NoError(t, err)
				require.NotEmpty(t, trace)

				first := trace.First()
				assert.Equal(t, 0, first.Step)
				assert.Equal(t, valuesOrEmpty(input), first.Values())

				for i, el := range first.Array {
					assert.Equal(t, replay.StatusDefault, el.Status)
					assert.Equal(t, i, el.Index)
				}

				want := slices.Sorted(slices.Values(input))

				for i, snap := range trace {
					assert.Equal(t, i, snap.Step, "step numbering")
					assert.Equal(t, i == len(trace)-1, snap.IsComplete, "completion flag at %d", i)
					assert.NotEmpty(t, snap.Description)

					require.Len(t, snap.Array, len(input))
					assert.ElementsMatch(t, valuesOrEmpty(input), snap.Values(), "permutation at step %d", i)

					for slot, el := range snap.Array {
						assert.Equal(t, slot, el.Index)
					}

					if i < len(trace)-1 {
						assert.Zero(t, snap.TotalSteps, "totalSteps is final-only")
					}
				}

				final := trace.Final()
				assert.Equal(t, len(trace)-1, final.TotalSteps)
				assert.Equal(t, valuesOrEmpty(want), final.Values())

				for _, el := range final.Array {
					assert.Equal(t, replay.StatusSorted, el.Status)
				}
			})
		}
	}
}

func TestGenerate_DoesNotMutateInput(t *testing.T) {
	t.Parallel()

	for _, alg := range sorting.Algorithms() {
		input := []int{9, 4, 7, 1, 8}
		_, err := sorting.Generate(alg, input)
		require.NoError(t, err)
		assert.Equal(t, []int{9, 4, 7, 1, 8}, input, alg.String())
	}
}

func TestGenerate_Idempotent(t *testing.T) {
	t.Parallel()

	input := fixtures["mixed"]

	for _, alg := range sorting.Algorithms() {
		a, err := sorting.Generate(alg, input)
		require.NoError(t, err)

		b, err := sorting.Generate(alg, input)
		require.NoError(t, err)

		assert.Equal(t, a, b, alg.String())
	}
}

func TestGenerate_EmptyYieldsSingleCompleteSnapshot(t *testing.T) {
	t.Parallel()

	for _, alg := range sorting.Algorithms() {
		trace, err := sorting.Generate(alg, nil)
		require.NoError(t, err)
		require.Len(t, trace, 1, alg.String())

		assert.True(t, trace[0].IsComplete)
		assert.Empty(t, trace[0].Array)
		assert.Zero(t, trace[0].TotalSteps)
	}
}

func TestGenerate_Singleton(t *testing.T) {
	t.Parallel()

	for _, alg := range sorting.Algorithms() {
		trace, err := sorting.Generate(alg, []int{42})
		require.NoError(t, err)

		assert.Equal(t, []int{42}, trace.Final().Values(), alg.String())
		assert.Equal(t, replay.StatusSorted, trace.Final().StatusAt(0))
	}
}

func TestGenerate_UnknownAlgorithm(t *testing.T) {
	t.Parallel()

	_, err := sorting.Generate("bogo-sort", []int{1})
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)

	_, err = sorting.Run("", nil)
	require.ErrorIs(t, err, sorting.ErrUnknownAlgorithm)
}

func TestRun_CountersMatchTrace(t *testing.T) {
	t.Parallel()

	res, err := sorting.Run(sorting.ExchangeSortName, []int{3, 1, 2})
	require.NoError(t, err)

	assert.Equal(t, sorting.ExchangeSortName, res.Algorithm)
	assert.Equal(t, replay.Counters{Comparisons: 3, Exchanges: 2}, res.Counters)
	assert.Equal(t, res.Counters.Comparisons+2*res.Counters.Exchanges+1, res.Trace.TotalSteps())
}

func TestRunAll_PresentationOrder(t *testing.T) {
	t.Parallel()

	results := sorting.RunAll([]int{2, 1})
	require.Len(t, results, len(sorting.Algorithms()))

	for i, alg := range sorting.Algorithms() {
		assert.Equal(t, alg, results[i].Algorithm)
		assert.Equal(t, []int{1, 2}, results[i].Trace.Final().Values())
	}
}

func TestExportedGeneratorsMatchGenerate(t *testing.T) {
	t.Parallel()

	input := fixtures["duplicates"]

	direct := map[sorting.Algorithm]sorting.Generator{
		sorting.ExchangeSortName:  sorting.ExchangeSort,
		sorting.SelectionSortName: sorting.SelectionSort,
		sorting.InsertionSortName: sorting.InsertionSort,
		sorting.MergeSortName:     sorting.MergeSort,
		sorting.PartitionSortName: sorting.PartitionSort,
		sorting.HeapSortName:      sorting.HeapSort,
	}

	for alg, gen := range direct {
		viaName, err := sorting.Generate(alg, input)
		require.NoError(t, err)

		viaLookup, err := sorting.GeneratorFor(alg)
		require.NoError(t, err)

		assert.Equal(t, viaName, gen(input), alg.String())
		assert.Equal(t, viaName, viaLookup(input), alg.String())
	}
}

func valuesOrEmpty(v []int) []int {
	if v == nil {
		return []int{}
	}

	return v
}
