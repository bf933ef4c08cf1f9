package cache

import "time"

//go:generate mockgen -source=interface.go -destination=../mocks/cache_mocks.go -package=mocks

// CacheService defines the interface for cache operations.
// It is the only shared mutable resource of the application: tokens, listings,
// health snapshots, analytics views and counters all live behind it.
type CacheService interface {
	Get(key string) ([]byte, error)
	Set(key string, value []byte, ttl time.Duration) error
	Delete(key string) error
	Exists(key string) bool
	Clear() error
	// Increment atomically adds one to the integer stored at key, creating it when
	// absent. Every increment restarts the key's expiration at ttl.
	Increment(key string, ttl time.Duration) (int64, error)
	// SetNX stores value only when key is absent and reports whether it did.
	SetNX(key string, value []byte, ttl time.Duration) (bool, error)
	Ping() error
}

// LockReleaser is implemented by stores that can delete a key only while it
// still holds a given value. CacheWrapper releases population locks through it.
type LockReleaser interface {
	CompareAndDelete(key string, value []byte) (bool, error)
}

// Backend names accepted by NewCacheService
const (
	BackendMemory = "memory"
	BackendRedis  = "redis"
	BackendNone   = "none"
)

// CacheConfig holds configuration for cache implementations
type CacheConfig struct {
	Backend         string
	DefaultTTL      time.Duration
	CleanupInterval time.Duration
	RedisURL        string
	KeyPrefix       string
	OpTimeout       time.Duration
}

// DefaultCacheConfig returns a sensible default configuration
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Backend:         BackendMemory,
		DefaultTTL:      5 * time.Minute,
		CleanupInterval: 10 * time.Minute,
		KeyPrefix:       "newsportal:",
		OpTimeout:       2 * time.Second,
	}
}
