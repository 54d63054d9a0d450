// File: cache.go
// Title: Bounded In-Memory Cache
// Description: Thread-safe in-memory cache with optional TTL and a size
//              bound. Used to share expensive, immutable-by-contract values
//              such as compiled comparers between calls.
// Author: msto63
// Version: v0.2.0
// Created: 2025-12-06
// Modified: 2025-12-14
//
// Change History:
// - 2025-12-06 v0.1.0: Initial implementation for service model lists
// - 2025-12-14 v0.2.0: Generic keys and values, lazy expiry instead of a
//                      cleanup goroutine, least recently used eviction

package cache

import (
	"sync"
	"time"
)

// entry represents a cached item with expiration
type entry[V any] struct {
	value      V
	expiration time.Time
	lastUsed   time.Time
}

func (e *entry[V]) expired(now time.Time) bool {
	if e.expiration.IsZero() {
		return false // never expires
	}
	return now.After(e.expiration)
}

// Cache is a thread-safe in-memory cache with TTL support
type Cache[K comparable, V any] struct {
	mu       sync.Mutex
	items    map[K]*entry[V]
	maxItems int
	ttl      time.Duration
	now      func() time.Time

	// Metrics
	hits   int64
	misses int64
}

// Config holds cache configuration. A zero TTL keeps entries until they are
// evicted.
type Config struct {
	MaxItems int
	TTL      time.Duration
}

// DefaultConfig returns default cache configuration
func DefaultConfig() Config {
	return Config{
		MaxItems: 1000,
	}
}

// New creates a new cache instance
func New[K comparable, V any](cfg Config) *Cache[K, V] {
	if cfg.MaxItems <= 0 {
		cfg.MaxItems = DefaultConfig().MaxItems
	}
	if cfg.TTL < 0 {
		cfg.TTL = 0
	}

	return &Cache[K, V]{
		items:    make(map[K]*entry[V]),
		maxItems: cfg.MaxItems,
		ttl:      cfg.TTL,
		now:      time.Now,
	}
}

// Get retrieves a value from the cache
func (c *Cache[K, V]) Get(key K) (V, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.get(key)
}

func (c *Cache[K, V]) get(key K) (V, bool) {
	var zero V
	now := c.now()

	e, ok := c.items[key]
	if !ok {
		c.misses++
		return zero, false
	}
	if e.expired(now) {
		delete(c.items, key)
		c.misses++
		return zero, false
	}

	e.lastUsed = now
	c.hits++
	return e.value, true
}

// Set stores a value in the cache with the default TTL
func (c *Cache[K, V]) Set(key K, value V) {
	c.SetWithTTL(key, value, c.ttl)
}

// SetWithTTL stores a value with a custom TTL
func (c *Cache[K, V]) SetWithTTL(key K, value V, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.set(key, value, ttl)
}

func (c *Cache[K, V]) set(key K, value V, ttl time.Duration) {
	now := c.now()
	if _, exists := c.items[key]; !exists && len(c.items) >= c.maxItems {
		c.evict(now)
	}

	var exp time.Time
	if ttl > 0 {
		exp = now.Add(ttl)
	}
	c.items[key] = &entry[V]{value: value, expiration: exp, lastUsed: now}
}

// GetOrSet returns the cached value for key or stores the result of fn. The
// lock is held while fn runs, so fn is called at most once per missing key.
func (c *Cache[K, V]) GetOrSet(key K, fn func() (V, error)) (V, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if v, ok := c.get(key); ok {
		return v, nil
	}

	v, err := fn()
	if err != nil {
		var zero V
		return zero, err
	}
	c.set(key, v, c.ttl)
	return v, nil
}

// Delete removes a value from the cache
func (c *Cache[K, V]) Delete(key K) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.items, key)
}

// Clear removes all items from the cache
func (c *Cache[K, V]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = make(map[K]*entry[V])
}

// Size returns the number of items in the cache
func (c *Cache[K, V]) Size() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Stats returns cache statistics. hitRate is a percentage.
func (c *Cache[K, V]) Stats() (hits, misses int64, hitRate float64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	hits = c.hits
	misses = c.misses
	total := hits + misses
	if total > 0 {
		hitRate = float64(hits) / float64(total) * 100
	}
	return
}

// evict removes expired entries, or the least recently used one if none has
// expired (must be called with lock held)
func (c *Cache[K, V]) evict(now time.Time) {
	var (
		oldestKey K
		oldest    time.Time
		found     bool
		removed   bool
	)

	for key, e := range c.items {
		if e.expired(now) {
			delete(c.items, key)
			removed = true
			continue
		}
		if !found || e.lastUsed.Before(oldest) {
			oldestKey, oldest, found = key, e.lastUsed, true
		}
	}

	if !removed && found {
		delete(c.items, oldestKey)
	}
}
