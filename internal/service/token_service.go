package service

import (
	"context"
	"time"

	"news-portal-backend/internal/cache"
	"news-portal-backend/internal/counters"
	"news-portal-backend/internal/logger"
	"news-portal-backend/internal/secure"
)

// Credentials are the static login credentials for the upstream API
type Credentials struct {
	Email    string
	Password string
}

// TokenService caches the upstream API key. Concurrent misses result in a single login call.
type TokenService struct {
	api      NewsAPIClient
	cache    *cache.CacheWrapper
	counters *counters.Counters
	cipher   *secure.TokenCipher
	creds    Credentials
	ttl      time.Duration
	key      string
}

// NewTokenService creates a new token service. A nil cipher stores the key unencrypted.
func NewTokenService(api NewsAPIClient, cacheWrapper *cache.CacheWrapper, ctrs *counters.Counters, creds Credentials, ttl time.Duration, cipher *secure.TokenCipher) *TokenService {
	if ttl <= 0 {
		ttl = cache.DefaultTTLConfig().Token
	}
	return &TokenService{
		api:      api,
		cache:    cacheWrapper,
		counters: ctrs,
		cipher:   cipher,
		creds:    creds,
		ttl:      ttl,
		key:      cache.BuildKey(cache.KeyPrefixAPIKey),
	}
}

// GetToken returns the cached API key or logs in once to obtain it.
// Failures are logged and reported as ok=false; nothing is cached for them.
func (s *TokenService) GetToken(ctx context.Context) (string, bool) {
	var sealed string
	hit, err := s.cache.GetOrSetTyped(s.key, s.ttl, &sealed, func() (interface{}, error) {
		recordExternalRequest(s.counters)

		token, err := s.api.Login(ctx, s.creds.Email, s.creds.Password)
		if err != nil {
			s.counters.Increment(counters.APIErrors)
			logger.New().WithError(err).Error("API login failed")
			return nil, err
		}
		return s.cipher.Seal(token)
	})
	recordCacheResult(s.counters, hit)
	if err != nil {
		return "", false
	}

	token, err := s.cipher.Open(sealed)
	if err != nil {
		logger.New().WithError(err).Warn("Cached API key could not be decrypted, discarding it")
		_ = s.cache.Delete(s.key)
		return "", false
	}
	return token, true
}

// ExpiresAt reports when the cached key expires
func (s *TokenService) ExpiresAt() (time.Time, bool) {
	return s.cache.ExpiresAt(s.key)
}

// Invalidate evicts the cached key so the next GetToken logs in again
func (s *TokenService) Invalidate() error {
	return s.cache.Delete(s.key)
}

func recordCacheResult(ctrs *counters.Counters, hit bool) {
	if hit {
		ctrs.Increment(counters.CacheHit)
		return
	}
	ctrs.Increment(counters.CacheMiss)
}

func recordExternalRequest(ctrs *counters.Counters) {
	ctrs.Increment(counters.ExternalRequests)
	ctrs.Increment(counters.APIRequests)
}
