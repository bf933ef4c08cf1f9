package service

import (
	"context"
	"fmt"
	"math"
	"net/http"
	"strconv"
	"strings"
	"time"

	"news-portal-backend/internal/cache"
	"news-portal-backend/internal/client"
	apperrors "news-portal-backend/internal/errors"
	"news-portal-backend/internal/logger"
)

const (
	clockLayout = "15:04:05"

	credentialsHint = "Failed to authenticate with API. Please check API credentials (NEWS_API_EMAIL, NEWS_API_PASSWORD)"

	apiKeyValid   = "Valid"
	apiKeyInvalid = "Invalid"
)

// FailureKind tells the dashboard why the last check was unhealthy
type FailureKind string

const (
	FailureNone           FailureKind = "none"
	FailureAuthentication FailureKind = "authentication"
	FailureTransport      FailureKind = "transport"
	FailureUpstreamStatus FailureKind = "upstream_status"
)

// HealthStatus is a snapshot of the last upstream probe
type HealthStatus struct {
	IsHealthy          bool        `json:"is_healthy"`
	LatencyMs          float64     `json:"latency_ms"`
	LastStatusCode     *int        `json:"last_status_code"`
	LastError          *string     `json:"last_error"`
	FailureKind        FailureKind `json:"failure_kind"`
	APIKeyExpiresAt    *string     `json:"api_key_expires_at"`
	RateLimitRemaining *int        `json:"rate_limit_remaining"`
	RateLimitTotal     *int        `json:"rate_limit_total"`
	RateLimitResetTime *string     `json:"rate_limit_reset_time"`
	CheckedAt          string      `json:"checked_at"`
	NextRefreshTime    string      `json:"next_refresh_time"`
}

// ConnectionTestResult is returned by the interactive connection test
type ConnectionTestResult struct {
	Success      bool    `json:"success"`
	Latency      float64 `json:"latency"`
	Status       *int    `json:"status"`
	Error        *string `json:"error"`
	APIKeyStatus string  `json:"api_key_status"`
}

// RefreshKeyResult is returned by a forced API key refresh
type RefreshKeyResult struct {
	Success   bool   `json:"success"`
	ExpiresAt string `json:"expires_at,omitempty"`
	Message   string `json:"message,omitempty"`
	Error     string `json:"error,omitempty"`
}

// HealthService probes the upstream API and caches the result briefly
type HealthService struct {
	api      NewsAPIClient
	tokens   TokenProvider
	cache    *cache.CacheWrapper
	ttl      time.Duration
	tokenTTL time.Duration
	loc      *time.Location
	key      string
}

// NewHealthService creates a new health service. baseURL only scopes the snapshot cache key.
func NewHealthService(api NewsAPIClient, tokens TokenProvider, cacheWrapper *cache.CacheWrapper, ttlConfig cache.TTLConfig, baseURL string, loc *time.Location) *HealthService {
	if loc == nil {
		loc = time.Local
	}
	defaults := cache.DefaultTTLConfig()
	if ttlConfig.Health <= 0 {
		ttlConfig.Health = defaults.Health
	}
	if ttlConfig.Token <= 0 {
		ttlConfig.Token = defaults.Token
	}
	return &HealthService{
		api:      api,
		tokens:   tokens,
		cache:    cacheWrapper,
		ttl:      ttlConfig.Health,
		tokenTTL: ttlConfig.Token,
		loc:      loc,
		key:      cache.ProbeCacheKey(baseURL),
	}
}

// GetStatus returns the cached snapshot or probes the API once to build a new one
func (s *HealthService) GetStatus(ctx context.Context) HealthStatus {
	var status HealthStatus
	_, err := s.cache.GetOrSetTyped(s.key, s.ttl, &status, func() (interface{}, error) {
		return s.check(ctx), nil
	})
	if err != nil {
		logger.New().WithError(err).Warn("Health snapshot unavailable from cache, probing directly")
		return s.check(ctx)
	}
	return status
}

// TestConnection drops the cached key and snapshot, then runs a fresh check
func (s *HealthService) TestConnection(ctx context.Context) ConnectionTestResult {
	start := time.Now()
	s.evict()

	if _, ok := s.tokens.GetToken(ctx); !ok {
		code := http.StatusUnauthorized
		msg := credentialsHint
		return ConnectionTestResult{
			Success:      false,
			Latency:      elapsedMs(start),
			Status:       &code,
			Error:        &msg,
			APIKeyStatus: apiKeyInvalid,
		}
	}

	status := s.GetStatus(ctx)
	return ConnectionTestResult{
		Success:      status.IsHealthy,
		Latency:      status.LatencyMs,
		Status:       status.LastStatusCode,
		Error:        status.LastError,
		APIKeyStatus: apiKeyValid,
	}
}

// RefreshAPIKey drops the cached key and snapshot and logs in again
func (s *HealthService) RefreshAPIKey(ctx context.Context) RefreshKeyResult {
	s.evict()

	if _, ok := s.tokens.GetToken(ctx); !ok {
		return RefreshKeyResult{Success: false, Error: "Failed to obtain new API key"}
	}

	expiresAt, ok := s.tokens.ExpiresAt()
	if !ok {
		expiresAt = s.cache.Now().Add(s.tokenTTL)
	}
	return RefreshKeyResult{
		Success:   true,
		ExpiresAt: expiresAt.In(s.loc).Format(clockLayout),
		Message:   "API key refreshed successfully",
	}
}

func (s *HealthService) evict() {
	if err := s.tokens.Invalidate(); err != nil {
		logger.New().WithError(err).Warn("Failed to evict cached API key")
	}
	if err := s.cache.Delete(s.key); err != nil {
		logger.New().WithError(err).Warn("Failed to evict health snapshot")
	}
}

func (s *HealthService) check(ctx context.Context) HealthStatus {
	start := time.Now()
	now := s.cache.Now().In(s.loc)

	status := HealthStatus{
		FailureKind:     FailureNone,
		CheckedAt:       now.Format(clockLayout),
		NextRefreshTime: now.Add(s.ttl).Format(clockLayout),
	}

	token, ok := s.tokens.GetToken(ctx)
	if !ok {
		code := http.StatusUnauthorized
		msg := apperrors.ErrTokenUnavailable.Error()
		status.LatencyMs = elapsedMs(start)
		status.LastStatusCode = &code
		status.LastError = &msg
		status.FailureKind = FailureAuthentication
		return status
	}

	if expiresAt, ok := s.tokens.ExpiresAt(); ok {
		formatted := expiresAt.In(s.loc).Format(clockLayout)
		status.APIKeyExpiresAt = &formatted
	}

	res, err := s.api.Probe(ctx, token)
	status.LatencyMs = elapsedMs(start)
	if err != nil {
		msg := err.Error()
		status.LastError = &msg
		status.FailureKind = FailureTransport
		logger.New().WithError(err).Warn("API health check failed")
		return status
	}

	code := res.StatusCode
	status.LastStatusCode = &code
	if !res.Success() {
		msg := fmt.Sprintf("HTTP %d", code)
		status.LastError = &msg
		status.FailureKind = FailureUpstreamStatus
		return status
	}

	status.IsHealthy = true
	rl := client.RateLimitFromHeader(res.Header)
	status.RateLimitRemaining = rl.Remaining
	status.RateLimitTotal = rl.Limit
	if rl.Reset != "" {
		reset := ParseRateLimitReset(rl.Reset, s.loc)
		status.RateLimitResetTime = &reset
	}
	return status
}

// ParseRateLimitReset renders an X-RateLimit-Reset value as HH:mm:ss in loc.
// Integers above 1e11 are Unix milliseconds, other integers Unix seconds; HTTP dates
// are accepted too. Anything else is returned unchanged.
func ParseRateLimitReset(raw string, loc *time.Location) string {
	if loc == nil {
		loc = time.Local
	}
	value := strings.TrimSpace(raw)

	if n, err := strconv.ParseInt(value, 10, 64); err == nil && n >= 0 {
		var t time.Time
		if n > 1e11 {
			t = time.UnixMilli(n)
		} else {
			t = time.Unix(n, 0)
		}
		return t.In(loc).Format(clockLayout)
	}

	if t, err := http.ParseTime(value); err == nil {
		return t.In(loc).Format(clockLayout)
	}

	return raw
}

func elapsedMs(start time.Time) float64 {
	ms := float64(time.Since(start).Microseconds()) / 1000
	return math.Round(ms*100) / 100
}
