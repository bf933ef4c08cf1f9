package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"news-portal-backend/internal/cache"
	"news-portal-backend/internal/counters"
	apperrors "news-portal-backend/internal/errors"
	"news-portal-backend/internal/logger"
	"news-portal-backend/internal/news"
)

const emptyCategoryNotice = "Tidak ada berita yang tersedia dari API."

// FrontPage is the index view: the newest article and the rest grouped by category
type FrontPage struct {
	Headline   *news.Summary        `json:"headline"`
	Groups     []news.CategoryGroup `json:"grouped_news"`
	Categories []string             `json:"available_categories"`
}

// ArticlePage is one article with related articles from its category
type ArticlePage struct {
	Article news.Article `json:"news"`
	Related news.Listing `json:"other_news"`
}

// CategoryPage lists the articles of one category
type CategoryPage struct {
	Kategori   string         `json:"kategori"`
	Slug       string         `json:"slug"`
	Articles   []news.Summary `json:"filtered_news"`
	Categories []string       `json:"available_categories"`
	Notice     string         `json:"error,omitempty"`
}

// SearchResult holds the matches for a query
type SearchResult struct {
	Query   string         `json:"query"`
	Results []news.Summary `json:"results"`
}

// NewsService caches the article listing and serves the public news views over it
type NewsService struct {
	api          NewsAPIClient
	tokens       TokenProvider
	cache        *cache.CacheWrapper
	counters     *counters.Counters
	ttl          time.Duration
	relatedLimit int
	key          string
}

// NewNewsService creates a new news service
func NewNewsService(api NewsAPIClient, tokens TokenProvider, cacheWrapper *cache.CacheWrapper, ctrs *counters.Counters, ttl time.Duration) *NewsService {
	if ttl <= 0 {
		ttl = cache.DefaultTTLConfig().Listing
	}
	return &NewsService{
		api:          api,
		tokens:       tokens,
		cache:        cacheWrapper,
		counters:     ctrs,
		ttl:          ttl,
		relatedLimit: news.RelatedLimit,
		key:          cache.BuildKey(cache.KeyPrefixNewsCollection),
	}
}

// GetListing returns the cached listing, fetching it with token on a miss.
// An empty token, a failed request or a malformed payload yield an empty listing that is not cached.
func (s *NewsService) GetListing(ctx context.Context, token string) news.Listing {
	if token == "" {
		return news.Listing{}
	}

	var listing news.Listing
	hit, err := s.cache.GetOrSetTyped(s.key, s.ttl, &listing, func() (interface{}, error) {
		recordExternalRequest(s.counters)

		fetched, err := s.api.ListArticles(ctx, token)
		if err != nil {
			if errors.Is(err, apperrors.ErrMalformedPayload) {
				logger.New().WithError(err).Warn("Unexpected news payload structure")
			} else {
				s.counters.Increment(counters.APIErrors)
				logger.New().WithError(err).Error("Failed to fetch news")
			}
			return nil, err
		}
		if fetched == nil {
			fetched = news.Listing{}
		}
		return fetched, nil
	})
	recordCacheResult(s.counters, hit)
	if err != nil || listing == nil {
		return news.Listing{}
	}
	return listing
}

// CachedListing returns the listing currently cached, without calling upstream
func (s *NewsService) CachedListing() (news.Listing, bool) {
	var listing news.Listing
	if err := s.cache.GetJSON(s.key, &listing); err != nil {
		return nil, false
	}
	return listing, true
}

// Invalidate evicts the cached listing
func (s *NewsService) Invalidate() error {
	return s.cache.Delete(s.key)
}

func (s *NewsService) currentListing(ctx context.Context) (news.Listing, error) {
	token, ok := s.tokens.GetToken(ctx)
	if !ok {
		return nil, apperrors.ErrTokenUnavailable
	}
	return s.GetListing(ctx, token), nil
}

// FrontPage returns the headline and the remaining articles grouped by category
func (s *NewsService) FrontPage(ctx context.Context) (*FrontPage, error) {
	listing, err := s.currentListing(ctx)
	if err != nil {
		return nil, err
	}

	page := &FrontPage{
		Groups:     listing.GroupByCategory(),
		Categories: listing.AvailableCategories(),
	}
	if headline, ok := listing.Headline(); ok {
		summary := headline.Summarize(news.ExcerptLength)
		page.Headline = &summary
	}
	return page, nil
}

// Article returns one article and up to four related articles
func (s *NewsService) Article(ctx context.Context, id string) (*ArticlePage, error) {
	listing, err := s.currentListing(ctx)
	if err != nil {
		return nil, err
	}

	articleID := news.ArticleID(strings.TrimSpace(id))
	article, ok := listing.FindByID(articleID)
	if !ok {
		return nil, apperrors.ErrArticleNotFound
	}

	return &ArticlePage{
		Article: article,
		Related: listing.RelatedArticles(article, articleID, s.relatedLimit),
	}, nil
}

// Category returns the articles of a category slug and records the access
func (s *NewsService) Category(ctx context.Context, slug string) (*CategoryPage, error) {
	listing, err := s.currentListing(ctx)
	if err != nil {
		return nil, err
	}

	normalized := news.Slugify(slug)
	if len(listing) == 0 {
		return &CategoryPage{
			Kategori:   news.FormatCategoryName(slug),
			Slug:       normalized,
			Articles:   []news.Summary{},
			Categories: []string{},
			Notice:     emptyCategoryNotice,
		}, nil
	}

	filtered := listing.FilterByCategory(normalized)
	if len(filtered) > 0 {
		s.TrackCategoryAccess(normalized)
	}

	return &CategoryPage{
		Kategori:   listing.CategoryTitle(slug),
		Slug:       normalized,
		Articles:   filtered.Summaries(news.ExcerptLength),
		Categories: listing.AvailableCategories(),
	}, nil
}

// TrackCategoryAccess counts one visit of a category for this week
func (s *NewsService) TrackCategoryAccess(slug string) {
	s.counters.Increment(counters.CategoryHits(news.Slugify(slug)))
}

// Search returns the articles matching query. A blank query is a validation error.
func (s *NewsService) Search(ctx context.Context, query string) (*SearchResult, error) {
	if strings.TrimSpace(query) == "" {
		return nil, apperrors.ErrMissingSearchQuery
	}

	listing, err := s.currentListing(ctx)
	if err != nil {
		return nil, err
	}

	return &SearchResult{Query: query, Results: listing.Search(query).Summaries(news.ExcerptLength)}, nil
}

// Lookup returns the listed articles among ids, keyed by id
func (s *NewsService) Lookup(ctx context.Context, ids []string) (map[news.ArticleID]news.Article, error) {
	wanted := make([]news.ArticleID, 0, len(ids))
	for _, id := range ids {
		if id = strings.TrimSpace(id); id != "" {
			wanted = append(wanted, news.ArticleID(id))
		}
	}
	if len(wanted) == 0 {
		return nil, apperrors.ErrMissingArticleIDs
	}

	listing, err := s.currentListing(ctx)
	if err != nil {
		return nil, err
	}
	return listing.ArticlesByIDs(wanted), nil
}
