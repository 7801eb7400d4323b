package cache

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCache(t *testing.T) {
	c, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Test Cache")
	require.NoError(t, err)

	testValue := "test string"
	c.Set("test-key", testValue, int64(len(testValue)))
	c.Wait()

	value, found := c.Get("test-key")
	require.True(t, found)
	assert.Equal(t, testValue, value)
	assert.Equal(t, "Test Cache", c.Type())
}

func TestCacheWithSlice(t *testing.T) {
	c, err := New[[]string](func(value []string) int64 {
		return int64(len(value) * 20)
	}, "Brand Names")
	require.NoError(t, err)

	names := []string{"Toyota", "Honda"}
	c.Set("names", names, 40)
	c.Wait()

	value, found := c.Get("names")
	require.True(t, found)
	assert.Equal(t, names, value)
}

func TestCacheDeleteAndClear(t *testing.T) {
	c, err := New[string](func(value string) int64 { return 1 }, "Test Cache")
	require.NoError(t, err)

	c.Set("a", "1", 1)
	c.Set("b", "2", 1)
	c.Wait()

	c.Delete("a")
	_, found := c.Get("a")
	assert.False(t, found)

	c.Clear()
	_, found = c.Get("b")
	assert.False(t, found)
}

func TestCacheTTL(t *testing.T) {
	c, err := NewWithTTL[string](func(value string) int64 { return 1 }, "Short TTL", 50*time.Millisecond)
	require.NoError(t, err)

	c.Set("k", "v", 1)
	c.Wait()
	_, found := c.Get("k")
	assert.True(t, found)

	time.Sleep(1500 * time.Millisecond)
	_, found = c.Get("k")
	assert.False(t, found)
}

func TestCacheStats(t *testing.T) {
	c, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Test Cache")
	require.NoError(t, err)

	testValue := "test string"
	c.Set("key1", testValue, int64(len(testValue)))
	c.Set("key2", testValue, int64(len(testValue)))
	c.Wait()

	c.Get("key1")
	c.Get("key2")
	c.Get("key3")

	stats := c.Stats()

	expectedKeys := []string{
		"cache_type", "hits", "misses", "sets", "total_requests",
		"hit_rate", "cost_added", "cost_evicted", "sets_dropped",
		"sets_rejected", "memory_used", "memory_used_kb", "total_added_kb",
		"total_evicted_kb", "current_items",
	}
	for _, key := range expectedKeys {
		assert.Contains(t, stats, key, "Expected key %s in stats", key)
	}

	assert.Equal(t, "Test Cache", stats["cache_type"])
	hitRate := stats["hit_rate"].(float64)
	assert.GreaterOrEqual(t, hitRate, 0.0)
	assert.LessOrEqual(t, hitRate, 100.0)
}

func TestCacheStatsEmptyCache(t *testing.T) {
	c, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Empty Cache")
	require.NoError(t, err)

	stats := c.Stats()

	assert.Equal(t, "Empty Cache", stats["cache_type"])
	assert.Equal(t, uint64(0), stats["hits"])
	assert.Equal(t, uint64(0), stats["misses"])
	assert.Equal(t, uint64(0), stats["total_requests"])
	assert.Equal(t, 0.0, stats["hit_rate"])
}

func BenchmarkCacheStats(b *testing.B) {
	c, err := New[string](func(value string) int64 {
		return int64(len(value))
	}, "Benchmark Cache")
	if err != nil {
		b.Fatal(err)
	}

	testValue := "test string"
	for i := 0; i < 100; i++ {
		c.Set(fmt.Sprintf("key%d", i), testValue, int64(len(testValue)))
	}
	c.Wait()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if stats := c.Stats(); stats == nil {
			b.Fatal("Stats is nil")
		}
	}
}
