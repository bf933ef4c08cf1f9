package service

import (
	"context"
	"time"

	"news-portal-backend/internal/client"
	"news-portal-backend/internal/news"
)

//go:generate mockgen -source=interfaces.go -destination=../mocks/service_mocks.go -package=mocks

// NewsAPIClient is the upstream news API
type NewsAPIClient interface {
	Login(ctx context.Context, email, password string) (string, error)
	ListArticles(ctx context.Context, token string) (news.Listing, error)
	Probe(ctx context.Context, token string) (*client.ProbeResult, error)
}

// TokenProvider hands out the cached upstream API key
type TokenProvider interface {
	// GetToken returns the current key, logging in on a miss. ok is false when no key could be obtained.
	GetToken(ctx context.Context) (token string, ok bool)
	// ExpiresAt reports when the cached key stops being served
	ExpiresAt() (time.Time, bool)
	Invalidate() error
}

// ListingProvider hands out the cached article listing
type ListingProvider interface {
	GetListing(ctx context.Context, token string) news.Listing
	// CachedListing returns the cached listing without calling upstream
	CachedListing() (news.Listing, bool)
	Invalidate() error
}

// NewsServiceInterface defines the public news operations used by the handlers
type NewsServiceInterface interface {
	FrontPage(ctx context.Context) (*FrontPage, error)
	Article(ctx context.Context, id string) (*ArticlePage, error)
	Category(ctx context.Context, slug string) (*CategoryPage, error)
	Search(ctx context.Context, query string) (*SearchResult, error)
	Lookup(ctx context.Context, ids []string) (map[news.ArticleID]news.Article, error)
	Invalidate() error
}

// HealthServiceInterface defines the upstream health operations used by the admin handlers
type HealthServiceInterface interface {
	GetStatus(ctx context.Context) HealthStatus
	TestConnection(ctx context.Context) ConnectionTestResult
	RefreshAPIKey(ctx context.Context) RefreshKeyResult
}

// AnalyticsServiceInterface defines the dashboard analytics used by the admin handlers
type AnalyticsServiceInterface interface {
	CacheStats() CacheStats
	HourlyRequests() Series
	ExternalRequests() ExternalRequestStats
	TopCategories() Series
	QuickSummary() QuickSummary
	AnalyticsData() AnalyticsData
	Dashboard() Dashboard
	CacheStatus() CacheStatusResult
}
