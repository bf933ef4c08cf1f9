package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"

	"news-portal-backend/internal/cache"
	"news-portal-backend/internal/client"
	apperrors "news-portal-backend/internal/errors"
	"news-portal-backend/internal/mocks"
	"news-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// HealthServiceTestSuite defines the test suite for HealthService
type HealthServiceTestSuite struct {
	suite.Suite
	ctrl       *gomock.Controller
	mockAPI    *mocks.MockNewsAPIClient
	mockTokens *mocks.MockTokenProvider
	env        *testEnv
	health     *service.HealthService
	ctx        context.Context
}

func (suite *HealthServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockAPI = mocks.NewMockNewsAPIClient(suite.ctrl)
	suite.mockTokens = mocks.NewMockTokenProvider(suite.ctrl)
	suite.env = newTestEnv()
	suite.health = service.NewHealthService(suite.mockAPI, suite.mockTokens, suite.env.wrapper,
		cache.DefaultTTLConfig(), "https://winnicode.com/api", time.UTC)
	suite.ctx = context.Background()
}

func (suite *HealthServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func okProbe(headers map[string]string) *client.ProbeResult {
	h := http.Header{}
	for k, v := range headers {
		h.Set(k, v)
	}
	return &client.ProbeResult{StatusCode: http.StatusOK, Header: h}
}

func (suite *HealthServiceTestSuite) TestGetStatus_MissingTokenSkipsProbe() {
	suite.mockTokens.EXPECT().GetToken(gomock.Any()).Return("", false)
	// no Probe expectation: a probe without a token fails the test

	status := suite.health.GetStatus(suite.ctx)

	suite.False(status.IsHealthy)
	suite.Require().NotNil(status.LastStatusCode)
	suite.Equal(http.StatusUnauthorized, *status.LastStatusCode)
	suite.Require().NotNil(status.LastError)
	suite.Contains(*status.LastError, "authentication")
	suite.Equal(service.FailureAuthentication, status.FailureKind)
	suite.Equal("14:30:00", status.CheckedAt)
	suite.Equal("14:30:30", status.NextRefreshTime)
}

func (suite *HealthServiceTestSuite) TestGetStatus_HealthyWithRateLimit() {
	suite.mockTokens.EXPECT().GetToken(gomock.Any()).Return("tok", true)
	suite.mockTokens.EXPECT().ExpiresAt().Return(time.Date(2024, 5, 1, 15, 10, 0, 0, time.UTC), true)
	suite.mockAPI.EXPECT().Probe(gomock.Any(), "tok").Return(okProbe(map[string]string{
		"X-RateLimit-Remaining": "57",
		"X-RateLimit-Limit":     "60",
		"X-RateLimit-Reset":     "1700000000",
	}), nil)

	status := suite.health.GetStatus(suite.ctx)

	suite.True(status.IsHealthy)
	suite.Equal(service.FailureNone, status.FailureKind)
	suite.Nil(status.LastError)
	suite.Equal(http.StatusOK, *status.LastStatusCode)
	suite.Equal(57, *status.RateLimitRemaining)
	suite.Equal(60, *status.RateLimitTotal)
	suite.Equal("22:13:20", *status.RateLimitResetTime)
	suite.Equal("15:10:00", *status.APIKeyExpiresAt)
	suite.GreaterOrEqual(status.LatencyMs, 0.0)
}

func (suite *HealthServiceTestSuite) TestGetStatus_CachedFor30Seconds() {
	suite.mockTokens.EXPECT().GetToken(gomock.Any()).Return("tok", true).Times(2)
	suite.mockTokens.EXPECT().ExpiresAt().Return(time.Time{}, false).Times(2)
	suite.mockAPI.EXPECT().Probe(gomock.Any(), "tok").Return(okProbe(nil), nil).Times(2)

	first := suite.health.GetStatus(suite.ctx)
	suite.env.clock.Advance(29 * time.Second)
	second := suite.health.GetStatus(suite.ctx)
	suite.Equal(first, second)

	suite.env.clock.Advance(2 * time.Second)
	third := suite.health.GetStatus(suite.ctx)
	suite.Equal("14:30:31", third.CheckedAt)
	suite.Nil(third.RateLimitRemaining)
	suite.Nil(third.RateLimitResetTime)
}

func (suite *HealthServiceTestSuite) TestGetStatus_UpstreamStatus() {
	suite.mockTokens.EXPECT().GetToken(gomock.Any()).Return("tok", true)
	suite.mockTokens.EXPECT().ExpiresAt().Return(time.Time{}, false)
	suite.mockAPI.EXPECT().Probe(gomock.Any(), "tok").Return(&client.ProbeResult{StatusCode: http.StatusServiceUnavailable, Header: http.Header{}}, nil)

	status := suite.health.GetStatus(suite.ctx)

	suite.False(status.IsHealthy)
	suite.Equal(http.StatusServiceUnavailable, *status.LastStatusCode)
	suite.Equal("HTTP 503", *status.LastError)
	suite.Equal(service.FailureUpstreamStatus, status.FailureKind)
}

func (suite *HealthServiceTestSuite) TestGetStatus_TransportErrorIsRecorded() {
	suite.mockTokens.EXPECT().GetToken(gomock.Any()).Return("tok", true)
	suite.mockTokens.EXPECT().ExpiresAt().Return(time.Time{}, false)
	suite.mockAPI.EXPECT().Probe(gomock.Any(), "tok").Return(nil, apperrors.NewUpstreamTransportError("probe", context.DeadlineExceeded))

	status := suite.health.GetStatus(suite.ctx)

	suite.False(status.IsHealthy)
	suite.Nil(status.LastStatusCode)
	suite.Contains(*status.LastError, "deadline exceeded")
	suite.Equal(service.FailureTransport, status.FailureKind)
}

func (suite *HealthServiceTestSuite) TestTestConnection_EvictsAndProbes() {
	gomock.InOrder(
		suite.mockTokens.EXPECT().Invalidate().Return(nil),
		suite.mockTokens.EXPECT().GetToken(gomock.Any()).Return("tok", true),
		suite.mockTokens.EXPECT().GetToken(gomock.Any()).Return("tok", true),
	)
	suite.mockTokens.EXPECT().ExpiresAt().Return(time.Time{}, false)
	suite.mockAPI.EXPECT().Probe(gomock.Any(), "tok").Return(okProbe(nil), nil)

	result := suite.health.TestConnection(suite.ctx)

	suite.True(result.Success)
	suite.Equal("Valid", result.APIKeyStatus)
	suite.Equal(http.StatusOK, *result.Status)
	suite.Nil(result.Error)
}

func (suite *HealthServiceTestSuite) TestTestConnection_AuthenticationFailure() {
	suite.mockTokens.EXPECT().Invalidate().Return(nil)
	suite.mockTokens.EXPECT().GetToken(gomock.Any()).Return("", false)

	result := suite.health.TestConnection(suite.ctx)

	suite.False(result.Success)
	suite.Equal("Invalid", result.APIKeyStatus)
	suite.Equal(http.StatusUnauthorized, *result.Status)
	suite.Contains(*result.Error, "credentials")
}

func (suite *HealthServiceTestSuite) TestRefreshAPIKey() {
	expires := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC)
	suite.mockTokens.EXPECT().Invalidate().Return(nil)
	suite.mockTokens.EXPECT().GetToken(gomock.Any()).Return("tok", true)
	suite.mockTokens.EXPECT().ExpiresAt().Return(expires, true)

	result := suite.health.RefreshAPIKey(suite.ctx)

	suite.True(result.Success)
	suite.Equal("15:30:00", result.ExpiresAt)
	suite.Equal("API key refreshed successfully", result.Message)
	suite.Empty(result.Error)
}

func (suite *HealthServiceTestSuite) TestRefreshAPIKey_FallbackExpiry() {
	suite.mockTokens.EXPECT().Invalidate().Return(nil)
	suite.mockTokens.EXPECT().GetToken(gomock.Any()).Return("tok", true)
	suite.mockTokens.EXPECT().ExpiresAt().Return(time.Time{}, false)

	result := suite.health.RefreshAPIKey(suite.ctx)

	suite.True(result.Success)
	suite.Equal("15:30:00", result.ExpiresAt)
}

func (suite *HealthServiceTestSuite) TestRefreshAPIKey_Failure() {
	suite.mockTokens.EXPECT().Invalidate().Return(nil)
	suite.mockTokens.EXPECT().GetToken(gomock.Any()).Return("", false)

	result := suite.health.RefreshAPIKey(suite.ctx)

	suite.False(result.Success)
	suite.Equal("Failed to obtain new API key", result.Error)
	suite.Empty(result.ExpiresAt)
}

func TestHealthServiceTestSuite(t *testing.T) {
	suite.Run(t, new(HealthServiceTestSuite))
}

func TestParseRateLimitReset(t *testing.T) {
	seconds := service.ParseRateLimitReset("1700000000", time.UTC)
	millis := service.ParseRateLimitReset("1700000000000", time.UTC)

	assert.Equal(t, "22:13:20", seconds)
	assert.Equal(t, seconds, millis)
	assert.Regexp(t, `^\d{2}:\d{2}:\d{2}$`, service.ParseRateLimitReset("1700000000", time.Local))

	assert.Equal(t, "22:13:20", service.ParseRateLimitReset("Tue, 14 Nov 2023 22:13:20 GMT", time.UTC))
	assert.Equal(t, "garbage", service.ParseRateLimitReset("garbage", time.UTC))
	assert.Equal(t, "-5", service.ParseRateLimitReset("-5", time.UTC))
}
