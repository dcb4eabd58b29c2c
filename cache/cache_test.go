package cache

import (
	"testing"
	"time"

	"estate-server/entities"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPropertyCacheGetSet(t *testing.T) {
	c := NewPropertyCache(time.Minute)

	_, ok := c.Get("p1")
	assert.False(t, ok)

	c.Set(entities.Property{ID: "p1", Title: "Skyline Towers"})

	p, ok := c.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "Skyline Towers", p.Title)
}

func TestPropertyCacheReturnsCopies(t *testing.T) {
	c := NewPropertyCache(time.Minute)
	c.Set(entities.Property{ID: "p1", Title: "Original"})

	p, ok := c.Get("p1")
	require.True(t, ok)
	p.Title = "Mutated"

	again, ok := c.Get("p1")
	require.True(t, ok)
	assert.Equal(t, "Original", again.Title)
}

func TestPropertyCacheExpiry(t *testing.T) {
	c := NewPropertyCache(10 * time.Millisecond)
	c.Set(entities.Property{ID: "p1"})

	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get("p1")
	assert.False(t, ok)
}

func TestPropertyCacheInvalidate(t *testing.T) {
	c := NewPropertyCache(time.Minute)
	c.Set(entities.Property{ID: "p1"})
	c.Set(entities.Property{ID: "p2"})

	c.Invalidate("p1")

	_, ok := c.Get("p1")
	assert.False(t, ok)
	_, ok = c.Get("p2")
	assert.True(t, ok)
}

func TestPropertyCacheStats(t *testing.T) {
	c := NewPropertyCache(time.Minute)
	c.Set(entities.Property{ID: "p1"})

	c.Get("p1")
	c.Get("missing")

	stats := c.Stats()
	assert.Equal(t, 1, stats["entries"])
	assert.Equal(t, int64(1), stats["hits"])
	assert.Equal(t, int64(1), stats["misses"])
}

func TestQueryKeyIsOrderIndependent(t *testing.T) {
	a := QueryKey("properties:search", map[string]string{"location": "Pune", "limit": "20"})
	b := QueryKey("properties:search", map[string]string{"limit": "20", "location": "Pune"})
	assert.Equal(t, a, b)

	other := QueryKey("properties:search", map[string]string{"location": "Mumbai", "limit": "20"})
	assert.NotEqual(t, a, other)
}
