package tracecache

// Stats holds cache performance metrics.
type Stats struct {
	Hits        int64 `json:"hits"`
	Misses      int64 `json:"misses"`
	Entries     int   `json:"entries"`
	Elements    int64 `json:"elements"`
	MaxEntries  int   `json:"max_entries"`
	MaxElements int64 `json:"max_elements"`
}

// HitRate returns the cache hit rate as a fraction (0.0 to 1.0).
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// Stats returns current cache statistics.
func (c *Cache) Stats() Stats {
	c.mu.Lock()
	defer c.mu.Unlock()

	return Stats{
		Hits:        c.hits.Load(),
		Misses:      c.misses.Load(),
		Entries:     len(c.entries),
		Elements:    c.curSize,
		MaxEntries:  c.maxEntries,
		MaxElements: c.maxSize,
	}
}
