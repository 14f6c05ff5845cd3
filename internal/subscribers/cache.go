package subscribers

import (
	"sync"
	"time"
)

// Cache is the minimal contract the counter needs. A nil cache disables
// caching without changing results.
type Cache[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
}

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// TTLCache is a map-backed cache with per-entry expiry. Concurrent misses on
// the same key may each recompute and overwrite it; last writer wins. That
// race is accepted: recomputation is idempotent and cheap next to the TTL.
type TTLCache[T any] struct {
	mu    sync.Mutex
	ttl   time.Duration
	now   func() time.Time
	items map[string]entry[T]
}

// NewTTLCache builds a cache with the given TTL. The now function may be nil,
// in which case time.Now is used; tests pass a deterministic clock.
func NewTTLCache[T any](ttl time.Duration, now func() time.Time) *TTLCache[T] {
	if now == nil {
		now = time.Now
	}
	return &TTLCache[T]{ttl: ttl, now: now, items: make(map[string]entry[T])}
}

// Get returns the cached value if present and not expired. Expired entries
// are removed on read.
func (c *TTLCache[T]) Get(key string) (T, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var zero T
	e, ok := c.items[key]
	if !ok {
		return zero, false
	}
	if c.now().After(e.expiresAt) {
		delete(c.items, key)
		return zero, false
	}
	return e.value, true
}

// Set stores a value with the cache TTL.
func (c *TTLCache[T]) Set(key string, value T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items[key] = entry[T]{value: value, expiresAt: c.now().Add(c.ttl)}
}
