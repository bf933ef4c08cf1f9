package service_test

import (
	"sync"
	"time"

	"news-portal-backend/internal/cache"
	"news-portal-backend/internal/counters"
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

type testEnv struct {
	clock    *fakeClock
	store    *cache.InMemoryCache
	wrapper  *cache.CacheWrapper
	counters *counters.Counters
}

func newTestEnv() *testEnv {
	clock := newFakeClock()
	store := cache.NewInMemoryCache(time.Hour, time.Hour)
	return &testEnv{
		clock:   clock,
		store:   store,
		wrapper: cache.NewCacheWrapper(store, time.Minute, cache.WithClock(clock.Now)),
		counters: counters.NewCounters(store,
			counters.WithClock(clock.Now),
			counters.WithLocation(time.UTC)),
	}
}
