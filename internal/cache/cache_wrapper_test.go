package cache

import (
	"encoding/json"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeClock struct {
	mu  sync.Mutex
	now time.Time
}

func newFakeClock() *fakeClock {
	return &fakeClock{now: time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)}
}

func (c *fakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *fakeClock) Advance(d time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = c.now.Add(d)
}

type testData struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

func TestNewCacheWrapper(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	wrapper := NewCacheWrapper(cache, 1*time.Minute)

	assert.NotNil(t, wrapper)
	assert.Equal(t, cache, wrapper.Store())
	assert.Equal(t, 1*time.Minute, wrapper.defaultTTL)
	assert.Zero(t, wrapper.lockTTL)
}

func TestCacheWrapper_GetOrSetTyped_CacheHit(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	wrapper := NewCacheWrapper(cache, 1*time.Minute)

	require.NoError(t, wrapper.SetJSON("test:key", testData{Name: "test", Value: 42}, time.Minute))

	var result testData
	fetcherCalled := false
	hit, err := wrapper.GetOrSetTyped("test:key", 1*time.Minute, &result, func() (interface{}, error) {
		fetcherCalled = true
		return nil, errors.New("fetcher should not be called")
	})

	require.NoError(t, err)
	assert.True(t, hit)
	assert.False(t, fetcherCalled, "Fetcher should not be called on cache hit")
	assert.Equal(t, testData{Name: "test", Value: 42}, result)
}

func TestCacheWrapper_GetOrSetTyped_CacheMiss(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	wrapper := NewCacheWrapper(cache, 1*time.Minute)

	var result testData
	fetcherCalled := false
	hit, err := wrapper.GetOrSetTyped("test:key", 1*time.Minute, &result, func() (interface{}, error) {
		fetcherCalled = true
		return &testData{Name: "fetched", Value: 99}, nil
	})

	require.NoError(t, err)
	assert.False(t, hit)
	assert.True(t, fetcherCalled, "Fetcher should be called on cache miss")
	assert.Equal(t, "fetched", result.Name)

	raw, err := cache.Get("test:key")
	require.NoError(t, err)
	var envelope CachedValue
	require.NoError(t, json.Unmarshal(raw, &envelope))
	assert.Equal(t, time.Minute, envelope.TTL)
	assert.JSONEq(t, `{"name":"fetched","value":99}`, string(envelope.Value))
}

func TestCacheWrapper_GetOrSetTyped_FetcherErrorNotCached(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	wrapper := NewCacheWrapper(cache, 1*time.Minute)

	expectedErr := errors.New("upstream unavailable")

	var result testData
	_, err := wrapper.GetOrSetTyped("test:key", 1*time.Minute, &result, func() (interface{}, error) {
		return nil, expectedErr
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, expectedErr)
	assert.False(t, cache.Exists("test:key"))

	calls := 0
	_, err = wrapper.GetOrSetTyped("test:key", 1*time.Minute, &result, func() (interface{}, error) {
		calls++
		return &testData{Name: "second"}, nil
	})
	require.NoError(t, err)
	assert.Equal(t, 1, calls)
}

func TestCacheWrapper_EmptySliceIsCached(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	wrapper := NewCacheWrapper(cache, 1*time.Minute)

	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return []testData{}, nil
	}

	var first, second []testData
	_, err := wrapper.GetOrSetTyped("empty:list", time.Minute, &first, fetch)
	require.NoError(t, err)
	hit, err := wrapper.GetOrSetTyped("empty:list", time.Minute, &second, fetch)
	require.NoError(t, err)

	assert.True(t, hit)
	assert.Equal(t, 1, calls)
	assert.Empty(t, second)
}

func TestCacheWrapper_CorruptedCache(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	wrapper := NewCacheWrapper(cache, 1*time.Minute)

	require.NoError(t, cache.Set("test:key", []byte("not valid json"), 1*time.Minute))

	var result testData
	fetcherCalled := false
	_, err := wrapper.GetOrSetTyped("test:key", 1*time.Minute, &result, func() (interface{}, error) {
		fetcherCalled = true
		return &testData{Name: "recovered", Value: 77}, nil
	})

	require.NoError(t, err)
	assert.True(t, fetcherCalled, "Fetcher should be called when cache is corrupted")
	assert.Equal(t, "recovered", result.Name)
}

func TestCacheWrapper_TTLUsesInjectedClock(t *testing.T) {
	clock := newFakeClock()
	cache := NewInMemoryCache(time.Hour, time.Hour)
	wrapper := NewCacheWrapper(cache, time.Minute, WithClock(clock.Now))

	calls := 0
	fetch := func() (interface{}, error) {
		calls++
		return calls, nil
	}

	var v int
	_, err := wrapper.GetOrSetTyped("listing", 60*time.Second, &v, fetch)
	require.NoError(t, err)

	clock.Advance(59 * time.Second)
	hit, err := wrapper.GetOrSetTyped("listing", 60*time.Second, &v, fetch)
	require.NoError(t, err)
	assert.True(t, hit)
	assert.Equal(t, 1, calls)

	clock.Advance(2 * time.Second)
	assert.False(t, wrapper.Exists("listing"))

	hit, err = wrapper.GetOrSetTyped("listing", 60*time.Second, &v, fetch)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.Equal(t, 2, calls)
	assert.Equal(t, 2, v)
}

func TestCacheWrapper_ExpiresAt(t *testing.T) {
	clock := newFakeClock()
	wrapper := NewCacheWrapper(NewInMemoryCache(time.Hour, time.Hour), time.Minute, WithClock(clock.Now))

	_, ok := wrapper.ExpiresAt("token")
	assert.False(t, ok)

	require.NoError(t, wrapper.SetJSON("token", "abc", time.Hour))

	expiresAt, ok := wrapper.ExpiresAt("token")
	assert.True(t, ok)
	assert.Equal(t, clock.Now().Add(time.Hour), expiresAt)
}

func TestCacheWrapper_GetJSON_NotFound(t *testing.T) {
	wrapper := NewCacheWrapper(NewInMemoryCache(5*time.Minute, 10*time.Minute), 1*time.Minute)

	var result testData
	err := wrapper.GetJSON("nonexistent:key", &result)
	assert.ErrorIs(t, err, ErrKeyNotFound)
}

func TestCacheWrapper_Delete(t *testing.T) {
	wrapper := NewCacheWrapper(NewInMemoryCache(5*time.Minute, 10*time.Minute), 1*time.Minute)

	require.NoError(t, wrapper.SetJSON("test:key", "value", time.Minute))
	assert.True(t, wrapper.Exists("test:key"))

	require.NoError(t, wrapper.Delete("test:key"))
	assert.False(t, wrapper.Exists("test:key"))
}

func TestCacheWrapper_ConcurrentMissSingleFetch(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	wrapper := NewCacheWrapper(cache, 1*time.Minute)

	var calls int32
	var hits int32
	release := make(chan struct{})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			var result testData
			hit, err := wrapper.GetOrSetTyped("stampede", time.Minute, &result, func() (interface{}, error) {
				atomic.AddInt32(&calls, 1)
				<-release
				return &testData{Name: "once"}, nil
			})
			assert.NoError(t, err)
			assert.Equal(t, "once", result.Name)
			if hit {
				atomic.AddInt32(&hits, 1)
			}
		}()
	}

	time.Sleep(50 * time.Millisecond)
	close(release)
	wg.Wait()

	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
	assert.Equal(t, int32(19), atomic.LoadInt32(&hits))
}

func TestCacheWrapper_LockHeldByAnotherProcess(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	other := NewCacheWrapper(cache, time.Minute)
	wrapper := NewCacheWrapper(cache, time.Minute,
		WithLocking(time.Second, time.Second),
		WithPollInterval(5*time.Millisecond))

	ok, err := cache.SetNX(LockKey("token"), []byte("other-process"), time.Second)
	require.NoError(t, err)
	require.True(t, ok)

	go func() {
		time.Sleep(30 * time.Millisecond)
		_ = other.SetJSON("token", "from-other", time.Minute)
	}()

	var token string
	called := false
	hit, err := wrapper.GetOrSetTyped("token", time.Minute, &token, func() (interface{}, error) {
		called = true
		return "from-self", nil
	})

	require.NoError(t, err)
	assert.True(t, hit)
	assert.False(t, called)
	assert.Equal(t, "from-other", token)
}

func TestCacheWrapper_LockWaitTimeout(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	wrapper := NewCacheWrapper(cache, time.Minute,
		WithLocking(time.Second, 30*time.Millisecond),
		WithPollInterval(5*time.Millisecond))

	_, err := cache.SetNX(LockKey("token"), []byte("stuck"), time.Second)
	require.NoError(t, err)

	_, _, err = wrapper.GetOrSet("token", time.Minute, func() (interface{}, error) {
		return "never", nil
	})
	assert.ErrorIs(t, err, ErrLockTimeout)
	assert.False(t, wrapper.Exists("token"))
}

func TestCacheWrapper_LockReleasedAfterPopulate(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	wrapper := NewCacheWrapper(cache, time.Minute, WithLocking(time.Second, time.Second))

	_, _, err := wrapper.GetOrSet("token", time.Minute, func() (interface{}, error) {
		return "abc", nil
	})
	require.NoError(t, err)
	assert.False(t, cache.Exists(LockKey("token")))

	_, _, err = wrapper.GetOrSet("failing", time.Minute, func() (interface{}, error) {
		return nil, errors.New("boom")
	})
	require.Error(t, err)
	assert.False(t, cache.Exists(LockKey("failing")))
}

func TestCacheWrapper_ExpiredLockDoesNotReleaseNewHolder(t *testing.T) {
	cache := NewInMemoryCache(5*time.Minute, 10*time.Minute)
	wrapper := NewCacheWrapper(cache, time.Minute, WithLocking(20*time.Millisecond, time.Second))

	_, _, err := wrapper.GetOrSet("health", time.Minute, func() (interface{}, error) {
		time.Sleep(40 * time.Millisecond)
		// our lock has expired; another process takes it over
		ok, err := cache.SetNX(LockKey("health"), []byte("other-process"), time.Minute)
		require.NoError(t, err)
		require.True(t, ok)
		return "snapshot", nil
	})
	require.NoError(t, err)

	owner, err := cache.Get(LockKey("health"))
	require.NoError(t, err)
	assert.Equal(t, "other-process", string(owner))
}

func BenchmarkCacheWrapper_GetOrSetTyped_CacheHit(b *testing.B) {
	wrapper := NewCacheWrapper(NewInMemoryCache(5*time.Minute, 10*time.Minute), 1*time.Minute)
	_ = wrapper.SetJSON("bench:key", testData{Name: "test", Value: 42}, time.Minute)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		var result testData
		_, _ = wrapper.GetOrSetTyped("bench:key", 1*time.Minute, &result, func() (interface{}, error) {
			return &testData{Name: "test", Value: 42}, nil
		})
	}
}
