package cache_test

import (
	"testing"
	"time"

	"github.com/romahawk/flowlogix/pkg/cache"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLRUCache_SetGet(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set(1, []byte("one"))

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, []byte("one"), got)

	_, ok = c.Get(2)
	assert.False(t, ok)
}

func TestLRUCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := cache.NewLRUCache(2, time.Minute)

	c.Set(1, []byte("one"))
	c.Set(2, []byte("two"))

	// Touch 1 so 2 becomes the eviction candidate.
	_, ok := c.Get(1)
	require.True(t, ok)

	c.Set(3, []byte("three"))

	_, ok = c.Get(2)
	assert.False(t, ok)
	_, ok = c.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 2, c.Size())
}

func TestLRUCache_TTLExpiry(t *testing.T) {
	c := cache.NewLRUCache(10, 10*time.Millisecond)

	c.Set(1, []byte("one"))
	time.Sleep(20 * time.Millisecond)

	_, ok := c.Get(1)
	assert.False(t, ok)
}

func TestLRUCache_Invalidate(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.Set(1, []byte("one"))
	c.Invalidate(1)

	_, ok := c.Get(1)
	assert.False(t, ok)
	assert.Equal(t, 0, c.Size())
}

func TestLRUCache_UpdateRefreshesValue(t *testing.T) {
	c := cache.NewLRUCache(10, time.Minute)

	c.Set(1, []byte("one"))
	c.Set(1, []byte("uno"))

	got, ok := c.Get(1)
	require.True(t, ok)
	assert.Equal(t, []byte("uno"), got)
	assert.Equal(t, 1, c.Size())
}
