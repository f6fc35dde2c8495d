package costs

import (
	"sync"
	"time"
)

// IsExpired reports whether a value stored at storedAt is stale at now.
func IsExpired(storedAt, now time.Time, ttl time.Duration) bool {
	return now.Sub(storedAt) >= ttl
}

type cacheEntry[V any] struct {
	value    V
	storedAt time.Time
}

// Cache is a keyed in-process cache with a fixed time-to-live.
// The mutex only guards the map; concurrent misses may both fetch and Put.
type Cache[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	clock   Clock
	entries map[string]cacheEntry[V]
}

func NewCache[V any](ttl time.Duration, clock Clock) *Cache[V] {
	if clock == nil {
		clock = SystemClock{}
	}
	return &Cache[V]{
		ttl:     ttl,
		clock:   clock,
		entries: make(map[string]cacheEntry[V]),
	}
}

// Get returns the value for key unless it is missing or expired.
func (c *Cache[V]) Get(key string) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok || IsExpired(e.storedAt, c.clock.Now(), c.ttl) {
		var zero V
		return zero, false
	}
	return e.value, true
}

// Put stores value under key as of storedAt.
func (c *Cache[V]) Put(key string, value V, storedAt time.Time) {
	c.mu.Lock()
	c.entries[key] = cacheEntry[V]{value: value, storedAt: storedAt}
	c.mu.Unlock()
}

// Clear drops every entry.
func (c *Cache[V]) Clear() {
	c.mu.Lock()
	c.entries = make(map[string]cacheEntry[V])
	c.mu.Unlock()
}
