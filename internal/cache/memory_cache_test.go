package cache

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewInMemoryCache(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	assert.NotNil(t, cache)
	assert.NotNil(t, cache.cache)
}

func TestInMemoryCache_SetAndGet(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)

	err := cache.Set("test:key", []byte("test value"), 1*time.Minute)
	require.NoError(t, err)

	retrieved, err := cache.Get("test:key")
	require.NoError(t, err)
	assert.Equal(t, []byte("test value"), retrieved)
}

func TestInMemoryCache_GetNonExistent(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)

	_, err := cache.Get("non:existent")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestInMemoryCache_Expiration(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)

	require.NoError(t, cache.Set("short", []byte("v"), 20*time.Millisecond))
	assert.True(t, cache.Exists("short"))

	time.Sleep(40 * time.Millisecond)

	assert.False(t, cache.Exists("short"))
	_, err := cache.Get("short")
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestInMemoryCache_DeleteAndClear(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)

	require.NoError(t, cache.Set("a", []byte("1"), time.Minute))
	require.NoError(t, cache.Set("b", []byte("2"), time.Minute))
	assert.Equal(t, 2, cache.ItemCount())

	require.NoError(t, cache.Delete("a"))
	assert.False(t, cache.Exists("a"))
	assert.True(t, cache.Exists("b"))

	require.NoError(t, cache.Clear())
	assert.Equal(t, 0, cache.ItemCount())
}

func TestInMemoryCache_Increment(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)

	n, err := cache.Increment("counter:hits", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	n, err = cache.Increment("counter:hits", time.Minute)
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)

	raw, err := cache.Get("counter:hits")
	require.NoError(t, err)
	assert.Equal(t, "2", string(raw))
}

func TestInMemoryCache_IncrementRestartsExpiry(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)

	_, err := cache.Increment("counter:short", 300*time.Millisecond)
	require.NoError(t, err)

	time.Sleep(200 * time.Millisecond)
	_, err = cache.Increment("counter:short", 300*time.Millisecond)
	require.NoError(t, err)

	// past the first increment's expiry, inside the second's
	time.Sleep(150 * time.Millisecond)
	raw, err := cache.Get("counter:short")
	require.NoError(t, err)
	assert.Equal(t, "2", string(raw))

	time.Sleep(200 * time.Millisecond)
	assert.False(t, cache.Exists("counter:short"))
}

func TestInMemoryCache_IncrementNonCounter(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)

	require.NoError(t, cache.Set("not-a-counter", []byte("x"), time.Minute))

	_, err := cache.Increment("not-a-counter", time.Minute)
	assert.ErrorIs(t, err, ErrInvalidValue)
}

func TestInMemoryCache_ConcurrentIncrement(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)

	const workers = 50
	const perWorker = 40

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				_, _ = cache.Increment("counter:fresh", time.Minute)
			}
		}()
	}
	wg.Wait()

	raw, err := cache.Get("counter:fresh")
	require.NoError(t, err)
	assert.Equal(t, "2000", string(raw))
}

func TestInMemoryCache_SetNX(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)

	ok, err := cache.SetNX("lock:key", []byte("owner-1"), time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = cache.SetNX("lock:key", []byte("owner-2"), time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	value, err := cache.Get("lock:key")
	require.NoError(t, err)
	assert.Equal(t, "owner-1", string(value))
}

func TestInMemoryCache_Ping(t *testing.T) {
	assert.NoError(t, NewInMemoryCache(time.Minute, time.Minute).Ping())
}

func TestInMemoryCache_CompareAndDelete(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)

	ok, err := cache.CompareAndDelete("lock:key", []byte("owner-1"))
	require.NoError(t, err)
	assert.False(t, ok)

	_, err = cache.SetNX("lock:key", []byte("owner-1"), time.Minute)
	require.NoError(t, err)

	ok, err = cache.CompareAndDelete("lock:key", []byte("owner-2"))
	require.NoError(t, err)
	assert.False(t, ok)
	assert.True(t, cache.Exists("lock:key"))

	ok, err = cache.CompareAndDelete("lock:key", []byte("owner-1"))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.False(t, cache.Exists("lock:key"))
}
