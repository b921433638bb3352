// Package cache provides the generic LRU cache shared by the shaper
// implementations.
//
// # Cache[K, V]
//
// A thread-safe LRU cache with a soft limit. Insertion past the limit
// evicts the least recently used quarter of the entries, so a shaping
// workload that cycles through slightly more runs than the limit does
// not evict on every insert.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// The shaped-run cache is the main consumer: shaping a line is expensive
// (bidi segmentation, font fallback, HarfBuzz), while a typical frame
// re-shapes the same few hundred runs. GetOrCreate keeps the
// lookup-or-shape sequence atomic.
//
// # Thread Safety
//
// Cache is safe for concurrent use and must not be copied after creation
// (it contains a mutex).
package cache
