package cache

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	apperrors "news-portal-backend/internal/errors"
)

// Common cache errors
var (
	ErrKeyNotFound   = errors.New("key not found in cache")
	ErrInvalidValue  = errors.New("invalid cached value type")
	ErrCacheDisabled = errors.New("cache is disabled")
	ErrLockTimeout   = errors.New("timed out waiting for cache population lock")
)

// NewCacheService builds the store selected by config.Backend
func NewCacheService(ctx context.Context, config CacheConfig) (CacheService, error) {
	switch strings.ToLower(strings.TrimSpace(config.Backend)) {
	case "", BackendMemory:
		return NewInMemoryCache(config.DefaultTTL, config.CleanupInterval), nil
	case BackendRedis:
		if strings.TrimSpace(config.RedisURL) == "" {
			return nil, apperrors.ErrRedisURLMissing
		}
		client, err := ConnectRedis(ctx, config.RedisURL)
		if err != nil {
			return nil, err
		}
		return NewRedisCache(client, config.KeyPrefix, config.OpTimeout), nil
	case BackendNone:
		return NewNoOpCache(), nil
	default:
		return nil, fmt.Errorf("%w: %q", apperrors.ErrUnknownCacheBackend, config.Backend)
	}
}

// NoOpCache implements CacheService but does nothing (useful for testing or when cache is disabled).
// Every read misses, so every caller goes to the upstream API.
type NoOpCache struct{}

// NewNoOpCache creates a new no-op cache instance
func NewNoOpCache() *NoOpCache {
	return &NoOpCache{}
}

// Get always returns cache miss
func (c *NoOpCache) Get(key string) ([]byte, error) {
	return nil, ErrCacheDisabled
}

// Set does nothing
func (c *NoOpCache) Set(key string, value []byte, ttl time.Duration) error {
	return nil
}

// Delete does nothing
func (c *NoOpCache) Delete(key string) error {
	return nil
}

// Exists always reports false
func (c *NoOpCache) Exists(key string) bool {
	return false
}

// Clear does nothing
func (c *NoOpCache) Clear() error {
	return nil
}

// Increment counts nothing
func (c *NoOpCache) Increment(key string, ttl time.Duration) (int64, error) {
	return 0, ErrCacheDisabled
}

// SetNX always grants the lock
func (c *NoOpCache) SetNX(key string, value []byte, ttl time.Duration) (bool, error) {
	return true, nil
}

// Ping always succeeds
func (c *NoOpCache) Ping() error {
	return nil
}
