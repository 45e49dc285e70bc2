package tracecache_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ansonlam23/algorithm-visualizer/internal/tracecache"
	"github.com/ansonlam23/algorithm-visualizer/pkg/replay"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

const (
	smallMaxEntries          = 2
	testConcurrentGoroutines = 16
	testConcurrentOps        = 50
)

func mustRun(t *testing.T, alg sorting.Algorithm, input []int) sorting.Result {
	t.Helper()

	res, err := sorting.Run(alg, input)
	require.NoError(t, err)

	return res
}

func TestCache_GetMissThenHit(t *testing.T) {
	t.Parallel()

	cache := tracecache.New(8)
	input := []int{3, 1, 2}
	key := tracecache.KeyFor(sorting.MergeSortName, input)

	_, ok := cache.Get(key)
	assert.False(t, ok)

	res := mustRun(t, sorting.MergeSortName, input)
	cache.Put(key, res)

	got, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, res, got)

	stats := cache.Stats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.InDelta(t, 0.5, stats.HitRate(), 0.0001)
	assert.Equal(t, 1, stats.Entries)
}

func TestCache_ClonesOnPutAndGet(t *testing.T) {
	t.Parallel()

	cache := tracecache.New(8)
	key := tracecache.KeyFor(sorting.HeapSortName, []int{2, 1})
	res := mustRun(t, sorting.HeapSortName, []int{2, 1})

	cache.Put(key, res)
	res.Trace[0].Array[0].Value = 99

	first, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, 2, first.Trace[0].Array[0].Value)

	first.Trace[0].Array[0].Status = replay.StatusPivot

	second, ok := cache.Get(key)
	require.True(t, ok)
	assert.Equal(t, replay.StatusDefault, second.Trace[0].Array[0].Status)
}

func TestCache_EvictsLeastRecentlyUsed(t *testing.T) {
	t.Parallel()

	cache := tracecache.New(smallMaxEntries)

	keyA := tracecache.KeyFor(sorting.ExchangeSortName, []int{1})
	keyB := tracecache.KeyFor(sorting.ExchangeSortName, []int{2})
	keyC := tracecache.KeyFor(sorting.ExchangeSortName, []int{3})

	cache.Put(keyA, mustRun(t, sorting.ExchangeSortName, []int{1}))
	cache.Put(keyB, mustRun(t, sorting.ExchangeSortName, []int{2}))

	_, ok := cache.Get(keyA)
	require.True(t, ok)

	cache.Put(keyC, mustRun(t, sorting.ExchangeSortName, []int{3}))

	_, ok = cache.Get(keyB)
	assert.False(t, ok, "B was least recently used")

	_, ok = cache.Get(keyA)
	assert.True(t, ok)

	_, ok = cache.Get(keyC)
	assert.True(t, ok)
	assert.Equal(t, smallMaxEntries, cache.Len())
}

func TestCache_MaxElements(t *testing.T) {
	t.Parallel()

	small := mustRun(t, sorting.ExchangeSortName, []int{1, 2})
	large := mustRun(t, sorting.ExchangeSortName, []int{5, 4, 3})

	cache := tracecache.New(10, tracecache.WithMaxElements(int64(len(small.Trace)*2)))

	cache.Put(tracecache.KeyFor(sorting.ExchangeSortName, []int{5, 4, 3}), large)
	assert.Zero(t, cache.Len(), "oversized result is skipped")

	cache.Put(tracecache.KeyFor(sorting.ExchangeSortName, []int{1, 2}), small)
	assert.Equal(t, 1, cache.Len())
	assert.Equal(t, int64(len(small.Trace)*2), cache.Stats().Elements)
}

func TestCache_UpdateExistingKey(t *testing.T) {
	t.Parallel()

	cache := tracecache.New(4)
	key := tracecache.KeyFor(sorting.SelectionSortName, []int{2, 1})

	cache.Put(key, mustRun(t, sorting.SelectionSortName, []int{2, 1}))
	cache.Put(key, mustRun(t, sorting.SelectionSortName, []int{2, 1}))

	assert.Equal(t, 1, cache.Len())
}

func TestCache_Clear(t *testing.T) {
	t.Parallel()

	cache := tracecache.New(4)
	cache.Put(tracecache.KeyFor(sorting.MergeSortName, nil), mustRun(t, sorting.MergeSortName, nil))
	require.Equal(t, 1, cache.Len())

	cache.Clear()
	assert.Zero(t, cache.Len())
	assert.Zero(t, cache.Stats().Elements)
}

func TestCache_ConcurrentAccess(t *testing.T) {
	t.Parallel()

	cache := tracecache.New(8)

	var wg sync.WaitGroup

	for g := range testConcurrentGoroutines {
		wg.Add(1)

		go func() {
			defer wg.Done()

			for i := range testConcurrentOps {
				input := []int{g % 4, i % 3}
				key := tracecache.KeyFor(sorting.InsertionSortName, input)

				if _, ok := cache.Get(key); !ok {
					res, err := sorting.Run(sorting.InsertionSortName, input)
					if err == nil {
						cache.Put(key, res)
					}
				}
			}
		}()
	}

	wg.Wait()

	stats := cache.Stats()
	assert.Equal(t, int64(testConcurrentGoroutines*testConcurrentOps), stats.Hits+stats.Misses)
	assert.LessOrEqual(t, stats.Entries, 8)
}

func TestKeyFor_DistinguishesAlgorithmAndInput(t *testing.T) {
	t.Parallel()

	a := tracecache.KeyFor(sorting.HeapSortName, []int{1, 2})
	b := tracecache.KeyFor(sorting.MergeSortName, []int{1, 2})
	c := tracecache.KeyFor(sorting.HeapSortName, []int{12})

	assert.NotEqual(t, a, b)
	assert.NotEqual(t, a, c)
	assert.Equal(t, a, tracecache.KeyFor(sorting.HeapSortName, []int{1, 2}))
	assert.Equal(t, "1,2", a.Input, fmt.Sprint(a))
}

func TestNew_PanicsWithoutCapacity(t *testing.T) {
	t.Parallel()

	assert.Panics(t, func() { tracecache.New(0) })
}
