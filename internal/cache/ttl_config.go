package cache

import "time"

// TTLConfig defines cache TTL durations for the upstream token, the news listing
// and the admin dashboard views.
type TTLConfig struct {
	Token     time.Duration
	Listing   time.Duration
	Health    time.Duration
	Analytics time.Duration
	Summary   time.Duration

	// Default TTL for unspecified entries
	Default time.Duration
}

// DefaultTTLConfig returns default TTL configuration
// These values can be overridden via environment variables or config file
func DefaultTTLConfig() TTLConfig {
	return TTLConfig{
		Token:     1 * time.Hour,
		Listing:   60 * time.Second, // articles change often relative to the token lifetime
		Health:    30 * time.Second,
		Analytics: 5 * time.Minute,
		Summary:   60 * time.Second,

		Default: 5 * time.Minute,
	}
}

// CacheKeyPrefix defines prefixes for cache keys to organize cached data
type CacheKeyPrefix string

const (
	// Upstream API cache key prefixes
	KeyPrefixAPIKey         CacheKeyPrefix = "upstream:api_key"
	KeyPrefixNewsCollection CacheKeyPrefix = "upstream:news_collection"

	// Admin dashboard cache key prefixes
	KeyPrefixHealthStatus  CacheKeyPrefix = "admin:api_health_status"
	KeyPrefixAnalyticsData CacheKeyPrefix = "admin:analytics_data"
	KeyPrefixQuickSummary  CacheKeyPrefix = "admin:quick_summary"

	KeyPrefixCounter CacheKeyPrefix = "counter"
	KeyPrefixLock    CacheKeyPrefix = "lock"
)

// BuildKey constructs a cache key from prefix and identifiers
func BuildKey(prefix CacheKeyPrefix, parts ...string) string {
	key := string(prefix)
	for _, part := range parts {
		key += ":" + part
	}
	return key
}
