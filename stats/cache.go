package stats

import (
	"sync"

	"golang.org/x/sync/singleflight"
)

// Cache memoizes snapshots per canonical query key (query.Query.Key).
//
// Concurrent requests for the same uncomputed key collapse into one
// computation via singleflight. The cache has exactly one invalidation
// event, a rebuild of the store it was computed against, and the owner of
// the store is responsible for calling Invalidate then.
type Cache struct {
	group   singleflight.Group
	mu      sync.RWMutex
	entries map[string]Snapshot
}

// NewCache creates an empty cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string]Snapshot)}
}

// Get returns the snapshot for key, computing it at most once per cache
// generation.
func (c *Cache) Get(key string, compute func() Snapshot) Snapshot {
	c.mu.RLock()
	snap, ok := c.entries[key]
	c.mu.RUnlock()
	if ok {
		return snap
	}

	v, _, _ := c.group.Do(key, func() (any, error) {
		snap := compute()
		c.mu.Lock()
		c.entries[key] = snap
		c.mu.Unlock()
		return snap, nil
	})
	return v.(Snapshot)
}

// Invalidate drops every entry. Call after a store rebuild.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.entries = make(map[string]Snapshot)
	c.mu.Unlock()
}

// Len returns the number of cached snapshots.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
