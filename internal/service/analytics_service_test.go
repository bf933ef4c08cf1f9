package service_test

import (
	"testing"
	"time"

	"news-portal-backend/internal/counters"
	"news-portal-backend/internal/mocks"
	"news-portal-backend/internal/news"
	"news-portal-backend/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

// AnalyticsServiceTestSuite defines the test suite for AnalyticsService
type AnalyticsServiceTestSuite struct {
	suite.Suite
	ctrl         *gomock.Controller
	mockListings *mocks.MockListingProvider
	env          *testEnv
	analytics    *service.AnalyticsService
}

func (suite *AnalyticsServiceTestSuite) SetupTest() {
	suite.ctrl = gomock.NewController(suite.T())
	suite.mockListings = mocks.NewMockListingProvider(suite.ctrl)
	suite.env = newTestEnv()
	suite.analytics = suite.newService(false)
}

func (suite *AnalyticsServiceTestSuite) TearDownTest() {
	suite.ctrl.Finish()
}

func (suite *AnalyticsServiceTestSuite) newService(demo bool) *service.AnalyticsService {
	return service.NewAnalyticsService(suite.env.wrapper, suite.env.counters, suite.mockListings, service.AnalyticsConfig{
		Categories: []string{"Politik", "Teknologi", "Olahraga"},
		DemoSeed:   demo,
	})
}

func (suite *AnalyticsServiceTestSuite) bump(m counters.Metric, n int) {
	for i := 0; i < n; i++ {
		suite.env.counters.Increment(m)
	}
}

func (suite *AnalyticsServiceTestSuite) TestCacheStats() {
	suite.bump(counters.CacheHit, 7)
	suite.bump(counters.CacheMiss, 3)

	stats := suite.analytics.CacheStats()

	suite.Equal(int64(7), stats.Hits)
	suite.Equal(int64(3), stats.Misses)
	suite.Equal(int64(10), stats.Total)
	suite.Equal(70.0, stats.HitRate)
}

func (suite *AnalyticsServiceTestSuite) TestCacheStats_Empty() {
	stats := suite.analytics.CacheStats()

	suite.Zero(stats.Total)
	suite.Equal(0.0, stats.HitRate)
}

func (suite *AnalyticsServiceTestSuite) TestHourlyRequests() {
	suite.bump(counters.APIRequests, 2)
	suite.env.clock.Advance(-2 * time.Hour)
	suite.bump(counters.APIRequests, 1)
	suite.env.clock.Advance(2 * time.Hour)

	series := suite.analytics.HourlyRequests()

	suite.Len(series.Labels, 24)
	suite.Len(series.Data, 24)
	suite.Equal("15:00", series.Labels[0])
	suite.Equal("12:00", series.Labels[21])
	suite.Equal("14:00", series.Labels[23])
	suite.Equal(int64(1), series.Data[21])
	suite.Equal(int64(0), series.Data[22])
	suite.Equal(int64(2), series.Data[23])
}

func (suite *AnalyticsServiceTestSuite) TestExternalRequests() {
	suite.env.clock.Advance(-3 * 24 * time.Hour)
	suite.bump(counters.ExternalRequests, 1)
	suite.env.clock.Advance(2 * 24 * time.Hour)
	suite.bump(counters.ExternalRequests, 3)
	suite.env.clock.Advance(24 * time.Hour)
	suite.bump(counters.ExternalRequests, 2)

	stats := suite.analytics.ExternalRequests()

	suite.Equal(int64(2), stats.Today)
	suite.Equal(int64(3), stats.Yesterday)
	suite.Equal(int64(6), stats.TotalThisWeek)
}

func (suite *AnalyticsServiceTestSuite) TestTopCategories_SortedWithZeros() {
	suite.bump(counters.CategoryHits("olahraga"), 3)
	suite.bump(counters.CategoryHits("teknologi"), 1)

	series := suite.analytics.TopCategories()

	suite.Equal([]string{"Olahraga", "Teknologi", "Politik"}, series.Labels)
	suite.Equal([]int64{3, 1, 0}, series.Data)
}

func (suite *AnalyticsServiceTestSuite) TestTopCategories_DemoSeed() {
	suite.bump(counters.CategoryHits("olahraga"), 2)
	analytics := suite.newService(true)

	series := analytics.TopCategories()

	suite.Len(series.Data, 3)
	values := map[string]int64{}
	for i, label := range series.Labels {
		values[label] = series.Data[i]
	}
	suite.Equal(int64(2), values["Olahraga"])
	suite.GreaterOrEqual(values["Politik"], int64(45))
	suite.LessOrEqual(values["Politik"], int64(120))
	suite.GreaterOrEqual(values["Teknologi"], int64(35))
	suite.LessOrEqual(values["Teknologi"], int64(95))
	for i := 1; i < len(series.Data); i++ {
		suite.GreaterOrEqual(series.Data[i-1], series.Data[i])
	}

	// placeholders are never written back
	suite.Zero(suite.env.counters.Current(counters.CategoryHits("politik")))
}

func (suite *AnalyticsServiceTestSuite) TestQuickSummary_Cached() {
	listing := news.Listing{{ID: "1"}, {ID: "2"}, {ID: "3"}}
	suite.mockListings.EXPECT().CachedListing().Return(listing, true).Times(2)
	suite.bump(counters.CacheHit, 3)
	suite.bump(counters.CacheMiss, 1)
	suite.bump(counters.ExternalRequests, 2)
	suite.bump(counters.APIErrors, 1)

	summary := suite.analytics.QuickSummary()

	suite.Equal(3, summary.TotalArticles)
	suite.Equal(int64(6), summary.TrafficToday)
	suite.Equal(int64(1), summary.APIErrors24h)
	suite.Equal(75.0, summary.CacheEfficiency)
	suite.Equal("14:30:00", summary.LastUpdated)

	suite.bump(counters.CacheHit, 5)
	suite.env.clock.Advance(59 * time.Second)
	suite.Equal(summary, suite.analytics.QuickSummary())

	suite.env.clock.Advance(2 * time.Second)
	refreshed := suite.analytics.QuickSummary()
	suite.Equal(int64(11), refreshed.TrafficToday)
	suite.Equal("14:31:01", refreshed.LastUpdated)
}

func (suite *AnalyticsServiceTestSuite) TestQuickSummary_NoListingCached() {
	suite.mockListings.EXPECT().CachedListing().Return(nil, false)

	summary := suite.analytics.QuickSummary()

	suite.Zero(summary.TotalArticles)
	suite.Zero(summary.TrafficToday)
	suite.Equal(0.0, summary.CacheEfficiency)
}

func (suite *AnalyticsServiceTestSuite) TestAnalyticsData_CachedForFiveMinutes() {
	suite.bump(counters.CacheHit, 1)

	first := suite.analytics.AnalyticsData()
	suite.Equal(int64(1), first.CacheStats.Hits)

	suite.bump(counters.CacheHit, 1)
	suite.env.clock.Advance(4 * time.Minute)
	suite.Equal(first, suite.analytics.AnalyticsData())

	suite.env.clock.Advance(time.Minute)
	suite.Equal(int64(2), suite.analytics.AnalyticsData().CacheStats.Hits)
}

func (suite *AnalyticsServiceTestSuite) TestCacheStatus() {
	suite.bump(counters.CacheHit, 1)
	suite.bump(counters.CacheMiss, 2)

	status := suite.analytics.CacheStatus()

	suite.True(status.Success)
	suite.Equal(int64(3), status.Total)
	suite.Equal(33.3, status.HitRate)
	suite.Equal(status.HitRate, status.Efficiency)
}

func (suite *AnalyticsServiceTestSuite) TestDashboard() {
	suite.mockListings.EXPECT().CachedListing().Return(news.Listing{{ID: "1"}}, true)
	suite.bump(counters.APIRequests, 4)

	dashboard := suite.analytics.Dashboard()

	suite.Equal(1, dashboard.QuickSummary.TotalArticles)
	suite.Len(dashboard.HourlyRequests.Labels, 24)
	suite.Equal(int64(4), dashboard.HourlyRequests.Data[23])
	suite.Len(dashboard.TopCategories.Labels, 3)
}

func TestAnalyticsServiceTestSuite(t *testing.T) {
	suite.Run(t, new(AnalyticsServiceTestSuite))
}

func TestHitRate(t *testing.T) {
	assert.Equal(t, 70.0, service.HitRate(7, 3))
	assert.Equal(t, 0.0, service.HitRate(0, 0))
	assert.Equal(t, 66.7, service.HitRate(2, 1))
	assert.Equal(t, 100.0, service.HitRate(5, 0))
}
