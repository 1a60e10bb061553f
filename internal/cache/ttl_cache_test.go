package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTTLCache_SetAndGet(t *testing.T) {
	c := NewTTLCache[string, int](time.Minute)

	_, ok := c.Get("monthly")
	assert.False(t, ok)

	c.Set("monthly", 42)
	value, ok := c.Get("monthly")
	assert.True(t, ok)
	assert.Equal(t, 42, value)
}

func TestTTLCache_Expires(t *testing.T) {
	now := time.Date(2026, time.January, 10, 12, 0, 0, 0, time.UTC)
	c := NewTTLCache[string, string](time.Minute)
	c.now = func() time.Time { return now }

	c.Set("sellers", "ok")

	now = now.Add(59 * time.Second)
	_, ok := c.Get("sellers")
	assert.True(t, ok)

	now = now.Add(2 * time.Second)
	_, ok = c.Get("sellers")
	assert.False(t, ok)
	assert.Equal(t, 0, c.Len())
}

func TestTTLCache_ZeroTTLNeverExpires(t *testing.T) {
	now := time.Now()
	c := NewTTLCache[string, int](0)
	c.now = func() time.Time { return now }

	c.Set("k", 1)
	now = now.Add(24 * time.Hour)

	_, ok := c.Get("k")
	assert.True(t, ok)
}

func TestTTLCache_DeleteAndPurge(t *testing.T) {
	c := NewTTLCache[string, int](time.Minute)
	c.Set("a", 1)
	c.Set("b", 2)

	c.Delete("a")
	_, ok := c.Get("a")
	assert.False(t, ok)
	assert.Equal(t, 1, c.Len())

	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestTTLCache_NilIsSafe(t *testing.T) {
	var c *TTLCache[string, int]

	c.Set("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
	c.Purge()
	assert.Equal(t, 0, c.Len())
}

func TestTTLCache_ConcurrentAccess(t *testing.T) {
	c := NewTTLCache[int, int](time.Minute)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			c.Set(i, i)
			c.Get(i)
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 50, c.Len())
}

func TestNoopCache(t *testing.T) {
	var c Cache[string, int] = NoopCache[string, int]{}

	c.Set("a", 1)
	_, ok := c.Get("a")
	assert.False(t, ok)
}
