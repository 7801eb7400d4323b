package cache

import (
	"time"

	"github.com/dgraph-io/ristretto/v2"
)

// Cache wraps a ristretto cache keyed by string and tagged with a display name
// for the admin cache pages.
type Cache[T any] struct {
	impl      *ristretto.Cache[string, T]
	cacheType string
	ttl       time.Duration
}

// New creates a cache with the given cost function and a default TTL of one hour.
func New[T any](costFunc func(T) int64, cacheType string) (*Cache[T], error) {
	return NewWithTTL(costFunc, cacheType, time.Hour)
}

// NewWithTTL creates a cache whose Set uses ttl.
func NewWithTTL[T any](costFunc func(T) int64, cacheType string, ttl time.Duration) (*Cache[T], error) {
	impl, err := ristretto.NewCache(&ristretto.Config[string, T]{
		NumCounters: 1e5,     // number of keys to track frequency of (100k)
		MaxCost:     1 << 24, // maximum cost of cache (16MB)
		BufferItems: 64,      // number of keys per Get buffer
		Metrics:     true,
		Cost:        costFunc,
	})
	if err != nil {
		return nil, err
	}

	return &Cache[T]{
		impl:      impl,
		cacheType: cacheType,
		ttl:       ttl,
	}, nil
}

// Get retrieves a value from the cache
func (c *Cache[T]) Get(key string) (T, bool) {
	return c.impl.Get(key)
}

// Set stores a value using the cache's default TTL
func (c *Cache[T]) Set(key string, value T, cost int64) bool {
	return c.SetWithTTL(key, value, cost, c.ttl)
}

// SetWithTTL stores a value in the cache with a specific TTL
func (c *Cache[T]) SetWithTTL(key string, value T, cost int64, ttl time.Duration) bool {
	return c.impl.SetWithTTL(key, value, cost, ttl)
}

// Delete removes a single key.
func (c *Cache[T]) Delete(key string) {
	c.impl.Del(key)
}

// Clear removes all items from the cache
func (c *Cache[T]) Clear() {
	c.impl.Clear()
}

// Wait blocks until buffered writes are applied
func (c *Cache[T]) Wait() {
	c.impl.Wait()
}

// Type returns the display name given at construction.
func (c *Cache[T]) Type() string {
	return c.cacheType
}

// GetItemCount returns the current number of items in the cache
func (c *Cache[T]) GetItemCount() int64 {
	return int64(c.impl.Metrics.KeysAdded() - c.impl.Metrics.KeysEvicted())
}

// Stats returns cache statistics for admin monitoring
func (c *Cache[T]) Stats() map[string]interface{} {
	metrics := c.impl.Metrics

	memoryUsed := metrics.CostAdded() - metrics.CostEvicted()

	hitRate := 0.0
	totalRequests := metrics.Hits() + metrics.Misses()
	if totalRequests > 0 {
		hitRate = float64(metrics.Hits()) / float64(totalRequests) * 100
	}

	return map[string]interface{}{
		"cache_type":       c.cacheType,
		"hits":             metrics.Hits(),
		"misses":           metrics.Misses(),
		"sets":             metrics.KeysAdded(),
		"total_requests":   totalRequests,
		"hit_rate":         hitRate,
		"cost_added":       metrics.CostAdded(),
		"cost_evicted":     metrics.CostEvicted(),
		"sets_dropped":     metrics.SetsDropped(),
		"sets_rejected":    metrics.SetsRejected(),
		"memory_used":      memoryUsed,
		"memory_used_kb":   float64(memoryUsed) / 1024,
		"total_added_kb":   float64(metrics.CostAdded()) / 1024,
		"total_evicted_kb": float64(metrics.CostEvicted()) / 1024,
		"current_items":    c.GetItemCount(),
	}
}
