package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"news-portal-backend/internal/cache"
	apperrors "news-portal-backend/internal/errors"
)

// Config holds the runtime configuration of the portal backend
type Config struct {
	Environment        string   `mapstructure:"environment" validate:"required"`
	Port               string   `mapstructure:"port" validate:"required,numeric"`
	LogLevel           string   `mapstructure:"log_level" validate:"oneof=trace debug info warn warning error fatal panic"`
	LogFormat          string   `mapstructure:"log_format" validate:"oneof=text json"`
	Timezone           string   `mapstructure:"timezone"`
	CORSAllowedOrigins []string `mapstructure:"cors_allowed_origins"`

	NewsAPIBaseURL        string        `mapstructure:"news_api_base_url" validate:"required,url"`
	NewsAPIEmail          string        `mapstructure:"news_api_email"`
	NewsAPIPassword       string        `mapstructure:"news_api_password"`
	NewsAPIRequestTimeout time.Duration `mapstructure:"news_api_request_timeout" validate:"gt=0"`
	NewsAPIHealthTimeout  time.Duration `mapstructure:"news_api_health_timeout" validate:"gt=0"`
	NewsAPIRetryMax       int           `mapstructure:"news_api_retry_max" validate:"gte=0,lte=5"`

	CacheBackend         string        `mapstructure:"cache_backend" validate:"oneof=memory redis none"`
	CacheRedisURL        string        `mapstructure:"cache_redis_url" validate:"required_if=CacheBackend redis"`
	CacheKeyPrefix       string        `mapstructure:"cache_key_prefix"`
	CacheCleanupInterval time.Duration `mapstructure:"cache_cleanup_interval"`
	CacheLockTTL         time.Duration `mapstructure:"cache_lock_ttl" validate:"gte=0"`
	CacheLockWait        time.Duration `mapstructure:"cache_lock_wait" validate:"gte=0"`
	CacheTokenSecret     string        `mapstructure:"cache_token_secret" validate:"omitempty,base64"`

	CacheTTLToken     time.Duration `mapstructure:"cache_ttl_token" validate:"gt=0"`
	CacheTTLListing   time.Duration `mapstructure:"cache_ttl_listing" validate:"gt=0"`
	CacheTTLHealth    time.Duration `mapstructure:"cache_ttl_health" validate:"gt=0"`
	CacheTTLAnalytics time.Duration `mapstructure:"cache_ttl_analytics" validate:"gt=0"`
	CacheTTLSummary   time.Duration `mapstructure:"cache_ttl_summary" validate:"gt=0"`

	AnalyticsCategories []string `mapstructure:"analytics_categories"`
	AnalyticsDemoSeed   bool     `mapstructure:"analytics_demo_seed"`
}

// Load reads configuration from .env, an optional YAML file and the environment.
// Environment variables win over the file, which wins over defaults.
func Load(configPath string) (*Config, error) {
	// a missing .env is normal outside local development
	_ = godotenv.Load()

	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("error reading config file: %w", err)
			}
		}
	}

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("error unmarshaling config: %w", err)
	}
	cfg.normalize()

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("environment", "development")
	v.SetDefault("port", "8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("log_format", "text")
	v.SetDefault("timezone", "Local")
	v.SetDefault("cors_allowed_origins", []string{"*"})

	v.SetDefault("news_api_base_url", "https://winnicode.com/api")
	v.SetDefault("news_api_email", "")
	v.SetDefault("news_api_password", "")
	v.SetDefault("news_api_request_timeout", 10*time.Second)
	v.SetDefault("news_api_health_timeout", 5*time.Second)
	v.SetDefault("news_api_retry_max", 0)

	ttl := cache.DefaultTTLConfig()
	v.SetDefault("cache_backend", cache.BackendMemory)
	v.SetDefault("cache_redis_url", "")
	v.SetDefault("cache_key_prefix", "newsportal:")
	v.SetDefault("cache_cleanup_interval", 10*time.Minute)
	v.SetDefault("cache_lock_ttl", 20*time.Second)
	v.SetDefault("cache_lock_wait", 16*time.Second)
	v.SetDefault("cache_token_secret", "")
	v.SetDefault("cache_ttl_token", ttl.Token)
	v.SetDefault("cache_ttl_listing", ttl.Listing)
	v.SetDefault("cache_ttl_health", ttl.Health)
	v.SetDefault("cache_ttl_analytics", ttl.Analytics)
	v.SetDefault("cache_ttl_summary", ttl.Summary)

	v.SetDefault("analytics_categories", []string{"Politik", "Teknologi", "Olahraga", "Ekonomi", "Hiburan", "Kesehatan"})
	v.SetDefault("analytics_demo_seed", false)
}

func (c *Config) normalize() {
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))
	c.LogFormat = strings.ToLower(strings.TrimSpace(c.LogFormat))
	c.CacheBackend = strings.ToLower(strings.TrimSpace(c.CacheBackend))
	c.NewsAPIBaseURL = strings.TrimRight(strings.TrimSpace(c.NewsAPIBaseURL), "/")
	c.CORSAllowedOrigins = trimAll(c.CORSAllowedOrigins)
	c.AnalyticsCategories = trimAll(c.AnalyticsCategories)
}

func trimAll(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	return out
}

// Validate checks the configuration. Missing upstream credentials are reported
// as apperrors.ErrCredentialsMissing.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.NewsAPIEmail) == "" || strings.TrimSpace(c.NewsAPIPassword) == "" {
		return apperrors.ErrCredentialsMissing
	}
	if err := validator.New().Struct(c); err != nil {
		return err
	}
	if _, err := c.Location(); err != nil {
		return apperrors.NewConfigurationError(fmt.Sprintf("invalid TIMEZONE %q: %v", c.Timezone, err))
	}
	// the health snapshot holds its lock across a login and a probe
	if worst := c.NewsAPIRequestTimeout + c.NewsAPIHealthTimeout; c.CacheLockTTL > 0 && c.CacheLockTTL <= worst {
		return apperrors.NewConfigurationError(fmt.Sprintf("CACHE_LOCK_TTL %s must exceed NEWS_API_REQUEST_TIMEOUT + NEWS_API_HEALTH_TIMEOUT (%s)", c.CacheLockTTL, worst))
	}
	return nil
}

// Location resolves Timezone; empty and "Local" mean the process zone
func (c *Config) Location() (*time.Location, error) {
	tz := strings.TrimSpace(c.Timezone)
	if tz == "" || strings.EqualFold(tz, "local") {
		return time.Local, nil
	}
	return time.LoadLocation(tz)
}

// CacheConfig returns the store settings
func (c *Config) CacheConfig() cache.CacheConfig {
	cfg := cache.DefaultCacheConfig()
	cfg.Backend = c.CacheBackend
	cfg.RedisURL = c.CacheRedisURL
	cfg.KeyPrefix = c.CacheKeyPrefix
	if c.CacheCleanupInterval > 0 {
		cfg.CleanupInterval = c.CacheCleanupInterval
	}
	return cfg
}

// TTLConfig returns the per-view cache lifetimes
func (c *Config) TTLConfig() cache.TTLConfig {
	ttl := cache.DefaultTTLConfig()
	ttl.Token = c.CacheTTLToken
	ttl.Listing = c.CacheTTLListing
	ttl.Health = c.CacheTTLHealth
	ttl.Analytics = c.CacheTTLAnalytics
	ttl.Summary = c.CacheTTLSummary
	return ttl
}

// IsProduction reports whether the server runs in production mode
func (c *Config) IsProduction() bool {
	return strings.EqualFold(c.Environment, "production")
}
