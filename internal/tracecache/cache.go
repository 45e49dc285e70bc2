// Package tracecache is a thread-safe LRU of generated traces. Generation
// is deterministic, so a trace for (algorithm, input) can be served again
// without recomputation. Entries are cloned on the way in and out; callers
// never share snapshot storage with the cache or with each other.
package tracecache

import (
	"sync"
	"sync/atomic"

	"github.com/ansonlam23/algorithm-visualizer/pkg/sequence"
	"github.com/ansonlam23/algorithm-visualizer/pkg/sorting"
)

// Key identifies a generation request.
type Key struct {
	Algorithm sorting.Algorithm
	Input     string
}

// KeyFor builds the cache key for alg over input.
func KeyFor(alg sorting.Algorithm, input []int) Key {
	return Key{Algorithm: alg, Input: sequence.Format(input)}
}

// entry is a doubly-linked list node holding one cached result.
type entry struct {
	key   Key
	value sorting.Result
	size  int64
	prev  *entry
	next  *entry
}

// Cache is a count- and size-bounded LRU of sorting results.
type Cache struct {
	mu      sync.Mutex
	entries map[Key]*entry
	head    *entry // Most recently used.
	tail    *entry // Least recently used.

	maxEntries int
	maxSize    int64
	curSize    int64

	hits   atomic.Int64
	misses atomic.Int64
}

// Option configures a Cache.
type Option func(*Cache)

// WithMaxElements bounds the total number of snapshot elements held across
// all entries. Results larger than the bound are never cached.
func WithMaxElements(n int64) Option {
	return func(c *Cache) {
		c.maxSize = n
	}
}

// New creates a cache holding at most maxEntries results. maxEntries must be
// positive; New panics otherwise.
func New(maxEntries int, opts ...Option) *Cache {
	if maxEntries <= 0 {
		panic("tracecache: maxEntries must be positive")
	}

	c := &Cache{
		entries:    make(map[Key]*entry),
		maxEntries: maxEntries,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// Get returns a private copy of the cached result for key.
func (c *Cache) Get(key Key) (sorting.Result, bool) {
	c.mu.Lock()

	ent, ok := c.entries[key]
	if !ok {
		c.mu.Unlock()
		c.misses.Add(1)

		return sorting.Result{}, false
	}

	c.moveToFront(ent)
	value := ent.value
	c.mu.Unlock()

	c.hits.Add(1)

	return cloneResult(value), true
}

// Put stores a private copy of res under key, evicting least recently used
// entries as needed.
func (c *Cache) Put(key Key, res sorting.Result) {
	size := resultSize(res)
	if c.maxSize > 0 && size > c.maxSize {
		return
	}

	res = cloneResult(res)

	c.mu.Lock()
	defer c.mu.Unlock()

	if ent, ok := c.entries[key]; ok {
		c.curSize += size - ent.size
		ent.value = res
		ent.size = size
		c.moveToFront(ent)
		c.evictOverflow(ent)

		return
	}

	for len(c.entries) >= c.maxEntries && c.tail != nil {
		c.evictTail()
	}

	ent := &entry{key: key, value: res, size: size}
	c.entries[key] = ent
	c.curSize += size
	c.addToFront(ent)
	c.evictOverflow(ent)
}

// Len returns the number of cached results.
func (c *Cache) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// Clear removes all entries. Counters are kept.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[Key]*entry)
	c.head = nil
	c.tail = nil
	c.curSize = 0
}

// evictOverflow drops tail entries until the size bound holds, never
// evicting keep.
func (c *Cache) evictOverflow(keep *entry) {
	for c.maxSize > 0 && c.curSize > c.maxSize && c.tail != nil && c.tail != keep {
		c.evictTail()
	}
}

func (c *Cache) evictTail() {
	victim := c.tail
	c.removeFromList(victim)
	delete(c.entries, victim.key)
	c.curSize -= victim.size
}

func (c *Cache) moveToFront(ent *entry) {
	if ent == c.head {
		return
	}

	c.removeFromList(ent)
	c.addToFront(ent)
}

func (c *Cache) addToFront(ent *entry) {
	ent.prev = nil
	ent.next = c.head

	if c.head != nil {
		c.head.prev = ent
	}

	c.head = ent

	if c.tail == nil {
		c.tail = ent
	}
}

func (c *Cache) removeFromList(ent *entry) {
	if ent.prev != nil {
		ent.prev.next = ent.next
	} else {
		c.head = ent.next
	}

	if ent.next != nil {
		ent.next.prev = ent.prev
	} else {
		c.tail = ent.prev
	}
}

func cloneResult(res sorting.Result) sorting.Result {
	res.Trace = res.Trace.Clone()

	return res
}

// resultSize counts snapshot elements; an empty-input trace still costs one.
func resultSize(res sorting.Result) int64 {
	var n int64
	for _, snap := range res.Trace {
		n += int64(max(len(snap.Array), 1))
	}

	return n
}
