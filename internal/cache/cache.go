// Package cache provides time-bounded memoization of upstream lookups.
package cache

import (
	"sync"
	"time"

	"github.com/jonboulle/clockwork"
)

type entry[V any] struct {
	value      V
	insertedAt time.Time
	ttl        time.Duration
}

// Cache memoizes computed values per key until a TTL elapses. It is safe
// for concurrent use. Entries are never mutated after insertion;
// refreshing a key replaces the old entry. Growth across distinct keys
// is unbounded.
type Cache[K comparable, V any] struct {
	clock   clockwork.Clock
	mu      sync.Mutex
	entries map[K]entry[V]
}

// New creates a Cache using the given time source. Tests pass a
// clockwork fake clock to exercise expiry deterministically.
func New[K comparable, V any](clock clockwork.Clock) *Cache[K, V] {
	return &Cache[K, V]{
		clock:   clock,
		entries: make(map[K]entry[V]),
	}
}

// GetOrCompute returns the live cached value for key, or invokes compute
// and stores its result with the given ttl. Compute errors are returned
// without being stored, so a failed lookup is retried on the next call
// rather than pinned for the TTL (no negative caching). Concurrent
// callers racing on the same missing key may each invoke compute; the
// duplicate upstream call is accepted in exchange for never holding the
// lock across a network request.
func (c *Cache[K, V]) GetOrCompute(key K, ttl time.Duration, compute func() (V, error)) (V, bool, error) {
	if v, ok := c.get(key); ok {
		return v, true, nil
	}

	v, err := compute()
	if err != nil {
		var zero V
		return zero, false, err
	}

	c.mu.Lock()
	c.entries[key] = entry[V]{value: v, insertedAt: c.clock.Now(), ttl: ttl}
	c.mu.Unlock()

	return v, false, nil
}

func (c *Cache[K, V]) get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	e, ok := c.entries[key]
	if !ok {
		var zero V
		return zero, false
	}
	if c.clock.Now().Sub(e.insertedAt) > e.ttl {
		delete(c.entries, key)
		var zero V
		return zero, false
	}
	return e.value, true
}

// Len reports the number of stored entries, expired or not.
func (c *Cache[K, V]) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
