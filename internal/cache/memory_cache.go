package cache

import (
	"bytes"
	"strconv"
	"sync"
	"time"

	gocache "github.com/patrickmn/go-cache"
)

// InMemoryCache implements CacheService using go-cache
type InMemoryCache struct {
	cache *gocache.Cache
	// mu serialises the read-modify-write operations: Increment, SetNX and CompareAndDelete
	mu sync.Mutex
}

// NewInMemoryCache creates a new in-memory cache instance
func NewInMemoryCache(defaultTTL, cleanupInterval time.Duration) *InMemoryCache {
	return &InMemoryCache{
		cache: gocache.New(defaultTTL, cleanupInterval),
	}
}

// Get retrieves a value from cache by key. Counters are returned in decimal form.
func (c *InMemoryCache) Get(key string) ([]byte, error) {
	value, found := c.cache.Get(key)
	if !found {
		return nil, ErrKeyNotFound
	}

	switch v := value.(type) {
	case []byte:
		return v, nil
	case int64:
		return []byte(strconv.FormatInt(v, 10)), nil
	default:
		return nil, ErrInvalidValue
	}
}

// Set stores a value in cache with the specified TTL
func (c *InMemoryCache) Set(key string, value []byte, ttl time.Duration) error {
	c.cache.Set(key, value, ttl)
	return nil
}

// Delete removes a key from cache
func (c *InMemoryCache) Delete(key string) error {
	c.cache.Delete(key)
	return nil
}

// Exists checks if a key exists in cache
func (c *InMemoryCache) Exists(key string) bool {
	_, found := c.cache.Get(key)
	return found
}

// Clear removes all keys from cache
func (c *InMemoryCache) Clear() error {
	c.cache.Flush()
	return nil
}

// Increment adds one to the counter at key and restarts its expiration at ttl
func (c *InMemoryCache) Increment(key string, ttl time.Duration) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	var n int64
	if value, found := c.cache.Get(key); found {
		current, ok := value.(int64)
		if !ok {
			return 0, ErrInvalidValue
		}
		n = current
	}
	n++

	c.cache.Set(key, n, ttl)
	return n, nil
}

// SetNX stores value only if key is absent or expired
func (c *InMemoryCache) SetNX(key string, value []byte, ttl time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if err := c.cache.Add(key, value, ttl); err != nil {
		return false, nil
	}
	return true, nil
}

// CompareAndDelete removes key only while it still holds value
func (c *InMemoryCache) CompareAndDelete(key string, value []byte) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	current, found := c.cache.Get(key)
	if !found {
		return false, nil
	}
	if b, ok := current.([]byte); !ok || !bytes.Equal(b, value) {
		return false, nil
	}
	c.cache.Delete(key)
	return true, nil
}

// Ping always succeeds for the in-process store
func (c *InMemoryCache) Ping() error {
	return nil
}

// ItemCount returns the number of items in the cache
func (c *InMemoryCache) ItemCount() int {
	return c.cache.ItemCount()
}
