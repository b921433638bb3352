package cache

import "sync"

// Cache is a generic thread-safe LRU cache with a soft limit.
// When the cache grows past softLimit, the least recently used quarter
// is evicted so steady-state churn does not evict on every insert.
//
// Cache is safe for concurrent use.
// Cache must not be copied after creation (has mutex).
type Cache[K comparable, V any] struct {
	mu        sync.Mutex
	entries   map[K]*cacheEntry[K, V]
	order     lruList[K]
	softLimit int
}

// cacheEntry holds a cached value with its position in the LRU order.
type cacheEntry[K comparable, V any] struct {
	value V
	node  *lruNode[K]
}

// New creates a new cache with the given soft limit.
// A softLimit of 0 means unlimited.
func New[K comparable, V any](softLimit int) *Cache[K, V] {
	return &Cache[K, V]{
		entries:   make(map[K]*cacheEntry[K, V]),
		softLimit: softLimit,
	}
}

// Get retrieves a value from the cache.
// Returns (value, true) if found, (zero, false) otherwise.
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}

	c.order.MoveToFront(entry.node)
	return entry.value, true
}

// Set stores a value in the cache.
// If the cache exceeds softLimit after insertion, old entries are evicted.
func (c *Cache[K, V]) Set(key K, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.put(key, value)
}

// GetOrCreate returns the cached value or creates and stores it.
// create runs under the cache lock so concurrent callers never build the
// same entry twice; it must not call back into the cache.
func (c *Cache[K, V]) GetOrCreate(key K, create func() V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	if entry, ok := c.entries[key]; ok {
		c.order.MoveToFront(entry.node)
		return entry.value
	}

	value := create()
	c.put(key, value)
	return value
}

// Clear removes all entries from the cache.
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries = make(map[K]*cacheEntry[K, V])
	c.order.Clear()
}

// Len returns the number of entries in the cache.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()

	return len(c.entries)
}

// put inserts or replaces an entry and evicts when over the soft limit.
// Caller must hold c.mu.
func (c *Cache[K, V]) put(key K, value V) {
	if entry, ok := c.entries[key]; ok {
		entry.value = value
		c.order.MoveToFront(entry.node)
		return
	}

	c.entries[key] = &cacheEntry[K, V]{
		value: value,
		node:  c.order.PushFront(key),
	}

	if c.softLimit > 0 && len(c.entries) > c.softLimit {
		c.evictOldest()
	}
}

// evictOldest removes least recently used entries down to 3/4 of the
// soft limit. Caller must hold c.mu.
func (c *Cache[K, V]) evictOldest() {
	targetSize := c.softLimit * 3 / 4
	if targetSize < 1 {
		targetSize = 1
	}

	for len(c.entries) > targetSize {
		key, ok := c.order.RemoveOldest()
		if !ok {
			return
		}
		delete(c.entries, key)
	}
}
