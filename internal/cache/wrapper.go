package cache

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"

	"news-portal-backend/internal/logger"
)

// CachedValue is the envelope stored for every read-through entry.
// An entry whose TTL has elapsed is a miss even if the store still holds it.
type CachedValue struct {
	Value    json.RawMessage `json:"value"`
	CachedAt time.Time       `json:"cached_at"`
	TTL      time.Duration   `json:"ttl"`
}

// ExpiresAt returns the instant the entry stops being served
func (v CachedValue) ExpiresAt() time.Time {
	return v.CachedAt.Add(v.TTL)
}

// Expired reports whether the entry is stale at now
func (v CachedValue) Expired(now time.Time) bool {
	return !now.Before(v.ExpiresAt())
}

// CacheWrapper provides higher-level caching abstractions with automatic logging and error handling
type CacheWrapper struct {
	cache        CacheService
	defaultTTL   time.Duration
	now          func() time.Time
	group        singleflight.Group
	lockTTL      time.Duration
	lockWait     time.Duration
	pollInterval time.Duration
}

// WrapperOption configures a CacheWrapper
type WrapperOption func(*CacheWrapper)

// WithClock replaces time.Now for TTL bookkeeping
func WithClock(now func() time.Time) WrapperOption {
	return func(w *CacheWrapper) {
		if now != nil {
			w.now = now
		}
	}
}

// WithLocking enables the cross-process "lock:<key>" advisory lock around population.
// A zero ttl disables it.
func WithLocking(ttl, wait time.Duration) WrapperOption {
	return func(w *CacheWrapper) {
		w.lockTTL = ttl
		w.lockWait = wait
	}
}

// WithPollInterval sets how often lock waiters re-read the key
func WithPollInterval(d time.Duration) WrapperOption {
	return func(w *CacheWrapper) {
		if d > 0 {
			w.pollInterval = d
		}
	}
}

// NewCacheWrapper creates a new cache wrapper
func NewCacheWrapper(cache CacheService, defaultTTL time.Duration, opts ...WrapperOption) *CacheWrapper {
	w := &CacheWrapper{
		cache:        cache,
		defaultTTL:   defaultTTL,
		now:          time.Now,
		pollInterval: 50 * time.Millisecond,
	}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Now returns the wrapper's notion of the current time
func (w *CacheWrapper) Now() time.Time {
	return w.now()
}

// Store exposes the underlying store
func (w *CacheWrapper) Store() CacheService {
	return w.cache
}

type populateResult struct {
	data []byte
	hit  bool
}

// GetOrSet retrieves from cache or executes fetcher function.
// Concurrent misses on the same key within this process share one fetcher call; with locking
// enabled, misses across processes sharing the store are serialised on "lock:<key>".
// The boolean reports whether the caller was served without running its own fetch.
// Fetcher errors are returned and nothing is stored.
func (w *CacheWrapper) GetOrSet(key string, ttl time.Duration, fetcher func() (interface{}, error)) ([]byte, bool, error) {
	if ttl <= 0 {
		ttl = w.defaultTTL
	}

	if v, ok := w.lookup(key); ok {
		logger.New().WithField("cache_key", key).Debug("Cache hit")
		return v.Value, true, nil
	}

	leader := false
	res, err, _ := w.group.Do(key, func() (interface{}, error) {
		leader = true
		return w.populate(key, ttl, fetcher)
	})
	if err != nil {
		return nil, false, err
	}

	r := res.(populateResult)
	return r.data, r.hit || !leader, nil
}

// GetOrSetTyped decodes the cached or fetched value into out
func (w *CacheWrapper) GetOrSetTyped(key string, ttl time.Duration, out interface{}, fetcher func() (interface{}, error)) (bool, error) {
	data, hit, err := w.GetOrSet(key, ttl, fetcher)
	if err != nil {
		return false, err
	}

	if err := json.Unmarshal(data, out); err != nil {
		logger.New().WithField("cache_key", key).WithError(err).Warn("Failed to unmarshal cached data")
		return false, err
	}

	return hit, nil
}

// GetJSON retrieves and unmarshals JSON from cache (without fetcher)
// Use this when you only want to check cache, not fetch on miss
func (w *CacheWrapper) GetJSON(key string, out interface{}) error {
	v, ok := w.lookup(key)
	if !ok {
		return ErrKeyNotFound
	}

	if err := json.Unmarshal(v.Value, out); err != nil {
		logger.New().WithField("cache_key", key).WithError(err).Debug("Cache data corrupted")
		return err
	}

	return nil
}

// SetJSON marshals and stores JSON in cache
func (w *CacheWrapper) SetJSON(key string, value interface{}, ttl time.Duration) error {
	if ttl <= 0 {
		ttl = w.defaultTTL
	}

	data, err := json.Marshal(value)
	if err != nil {
		logger.New().WithField("cache_key", key).WithError(err).Error("Failed to marshal for cache")
		return err
	}

	return w.store(key, data, ttl)
}

// Delete removes a key from cache
func (w *CacheWrapper) Delete(key string) error {
	return w.cache.Delete(key)
}

// Exists reports whether a fresh entry is stored under key
func (w *CacheWrapper) Exists(key string) bool {
	_, ok := w.lookup(key)
	return ok
}

// ExpiresAt returns the expiry of a fresh entry
func (w *CacheWrapper) ExpiresAt(key string) (time.Time, bool) {
	v, ok := w.lookup(key)
	if !ok {
		return time.Time{}, false
	}
	return v.ExpiresAt(), true
}

func (w *CacheWrapper) lookup(key string) (CachedValue, bool) {
	data, err := w.cache.Get(key)
	if err != nil {
		return CachedValue{}, false
	}

	var v CachedValue
	if err := json.Unmarshal(data, &v); err != nil || v.CachedAt.IsZero() {
		logger.New().WithField("cache_key", key).Warn("Cached data is corrupted, treating as cache miss")
		return CachedValue{}, false
	}
	if v.Expired(w.now()) {
		return CachedValue{}, false
	}
	return v, true
}

func (w *CacheWrapper) store(key string, data []byte, ttl time.Duration) error {
	envelope, err := json.Marshal(CachedValue{Value: data, CachedAt: w.now(), TTL: ttl})
	if err != nil {
		return err
	}

	if err := w.cache.Set(key, envelope, ttl); err != nil {
		logger.New().WithField("cache_key", key).WithError(err).Warn("Failed to cache response")
		return err
	}

	logger.New().WithField("cache_key", key).Debug("Cached response")
	return nil
}

func (w *CacheWrapper) populate(key string, ttl time.Duration, fetcher func() (interface{}, error)) (populateResult, error) {
	// another caller may have stored the value after our first lookup
	if v, ok := w.lookup(key); ok {
		return populateResult{data: v.Value, hit: true}, nil
	}

	if w.lockTTL > 0 {
		release, v, ok, err := w.acquire(key)
		if err != nil {
			return populateResult{}, err
		}
		if ok {
			return populateResult{data: v.Value, hit: true}, nil
		}
		defer release()

		if v, ok := w.lookup(key); ok {
			return populateResult{data: v.Value, hit: true}, nil
		}
	}

	logger.New().WithField("cache_key", key).Debug("Cache miss")

	result, err := fetcher()
	if err != nil {
		return populateResult{}, fmt.Errorf("fetcher failed: %w", err)
	}

	data, err := json.Marshal(result)
	if err != nil {
		return populateResult{}, fmt.Errorf("failed to marshal result: %w", err)
	}

	// a failed write still serves the fetched value to this caller
	_ = w.store(key, data, ttl)

	return populateResult{data: data}, nil
}

// acquire takes the advisory lock for key. If another holder populates the key while we
// wait, its value is returned instead with ok set.
func (w *CacheWrapper) acquire(key string) (release func(), v CachedValue, ok bool, err error) {
	lockKey := LockKey(key)
	owner := []byte(uuid.NewString())

	timer := time.NewTimer(w.lockWait)
	defer timer.Stop()
	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	for {
		acquired, err := w.cache.SetNX(lockKey, owner, w.lockTTL)
		if err != nil {
			logger.New().WithField("cache_key", key).WithError(err).Warn("Failed to acquire population lock, continuing without it")
			return func() {}, CachedValue{}, false, nil
		}
		if acquired {
			return func() { w.unlock(lockKey, owner) }, CachedValue{}, false, nil
		}

		select {
		case <-timer.C:
			logger.New().WithField("cache_key", key).Warn("Timed out waiting for population lock")
			return nil, CachedValue{}, false, ErrLockTimeout
		case <-ticker.C:
		}

		if v, ok := w.lookup(key); ok {
			return nil, v, true, nil
		}
	}
}

func (w *CacheWrapper) unlock(lockKey string, owner []byte) {
	if releaser, ok := w.cache.(LockReleaser); ok {
		if _, err := releaser.CompareAndDelete(lockKey, owner); err != nil {
			logger.New().WithField("cache_key", lockKey).WithError(err).Warn("Failed to release population lock")
		}
		return
	}

	current, err := w.cache.Get(lockKey)
	if err != nil {
		if !errors.Is(err, ErrKeyNotFound) && !errors.Is(err, ErrCacheDisabled) {
			logger.New().WithField("cache_key", lockKey).WithError(err).Warn("Failed to read population lock")
		}
		return
	}
	if string(current) != string(owner) {
		return
	}
	if err := w.cache.Delete(lockKey); err != nil {
		logger.New().WithField("cache_key", lockKey).WithError(err).Warn("Failed to release population lock")
	}
}
