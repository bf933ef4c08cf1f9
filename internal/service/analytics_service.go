package service

import (
	"math"
	"math/rand"
	"sort"
	"strings"
	"time"

	"news-portal-backend/internal/cache"
	"news-portal-backend/internal/counters"
	"news-portal-backend/internal/logger"
	"news-portal-backend/internal/news"
)

// DefaultCategories are the categories charted on the dashboard
var DefaultCategories = []string{"Politik", "Teknologi", "Olahraga", "Ekonomi", "Hiburan", "Kesehatan"}

// demoRanges are the placeholder ranges used when demo seeding is on
var demoRanges = map[string][2]int64{
	"politik":   {45, 120},
	"teknologi": {35, 95},
	"olahraga":  {25, 80},
	"ekonomi":   {20, 70},
	"hiburan":   {15, 65},
	"kesehatan": {10, 50},
}

var defaultDemoRange = [2]int64{5, 40}

// CacheStats summarises today's cache hits and misses
type CacheStats struct {
	Hits    int64   `json:"hits"`
	Misses  int64   `json:"misses"`
	HitRate float64 `json:"hit_rate"`
	Total   int64   `json:"total"`
}

// Series is a chart series with parallel labels and values
type Series struct {
	Labels []string `json:"labels"`
	Data   []int64  `json:"data"`
}

// ExternalRequestStats counts calls made to the upstream API
type ExternalRequestStats struct {
	Today         int64 `json:"today"`
	Yesterday     int64 `json:"yesterday"`
	TotalThisWeek int64 `json:"total_this_week"`
}

// QuickSummary is the headline numbers of the dashboard
type QuickSummary struct {
	TotalArticles   int     `json:"total_articles"`
	TrafficToday    int64   `json:"traffic_today"`
	APIErrors24h    int64   `json:"api_errors_24h"`
	CacheEfficiency float64 `json:"cache_efficiency"`
	LastUpdated     string  `json:"last_updated"`
}

// AnalyticsData bundles the dashboard charts
type AnalyticsData struct {
	CacheStats       CacheStats           `json:"cache_stats"`
	ExternalRequests ExternalRequestStats `json:"external_requests"`
	TopCategories    Series               `json:"top_categories"`
	HourlyRequests   Series               `json:"hourly_requests"`
}

// Dashboard is the analytics bundle plus the quick summary
type Dashboard struct {
	AnalyticsData
	QuickSummary QuickSummary `json:"quick_summary"`
}

// CacheStatusResult is returned by the cache status admin action
type CacheStatusResult struct {
	Success    bool    `json:"success"`
	HitRate    float64 `json:"hit_rate"`
	Total      int64   `json:"total"`
	Hits       int64   `json:"hits"`
	Misses     int64   `json:"misses"`
	Efficiency float64 `json:"efficiency"`
}

// AnalyticsConfig configures the analytics service
type AnalyticsConfig struct {
	Categories   []string
	DemoSeed     bool
	AnalyticsTTL time.Duration
	SummaryTTL   time.Duration
}

// AnalyticsService derives dashboard views from the time-window counters
type AnalyticsService struct {
	cache      *cache.CacheWrapper
	counters   *counters.Counters
	listings   ListingProvider
	categories []string
	demoSeed   bool
	ttl        AnalyticsConfig
}

// NewAnalyticsService creates a new analytics service
func NewAnalyticsService(cacheWrapper *cache.CacheWrapper, ctrs *counters.Counters, listings ListingProvider, cfg AnalyticsConfig) *AnalyticsService {
	defaults := cache.DefaultTTLConfig()
	if cfg.AnalyticsTTL <= 0 {
		cfg.AnalyticsTTL = defaults.Analytics
	}
	if cfg.SummaryTTL <= 0 {
		cfg.SummaryTTL = defaults.Summary
	}
	categories := cfg.Categories
	if len(categories) == 0 {
		categories = DefaultCategories
	}

	return &AnalyticsService{
		cache:      cacheWrapper,
		counters:   ctrs,
		listings:   listings,
		categories: categories,
		demoSeed:   cfg.DemoSeed,
		ttl:        cfg,
	}
}

// HitRate returns hits as a percentage of hits+misses rounded to one decimal, 0 when both are 0
func HitRate(hits, misses int64) float64 {
	total := hits + misses
	if total <= 0 {
		return 0
	}
	return math.Round(float64(hits)/float64(total)*1000) / 10
}

// CacheStats returns today's hit/miss totals
func (s *AnalyticsService) CacheStats() CacheStats {
	hits := s.counters.Current(counters.CacheHit)
	misses := s.counters.Current(counters.CacheMiss)
	return CacheStats{
		Hits:    hits,
		Misses:  misses,
		HitRate: HitRate(hits, misses),
		Total:   hits + misses,
	}
}

// HourlyRequests returns the upstream requests of the last 24 hours, oldest first
func (s *AnalyticsService) HourlyRequests() Series {
	window := s.counters.Window(counters.Hourly, 24)
	series := Series{
		Labels: make([]string, 0, len(window)),
		Data:   make([]int64, 0, len(window)),
	}
	for _, hour := range window {
		series.Labels = append(series.Labels, hour.Format("15:04"))
		series.Data = append(series.Data, s.counters.ReadAt(counters.APIRequests, hour))
	}
	return series
}

// ExternalRequests returns upstream request totals for today, yesterday and the last 7 days
func (s *AnalyticsService) ExternalRequests() ExternalRequestStats {
	now := s.counters.Now()
	return ExternalRequestStats{
		Today:         s.counters.ReadAt(counters.ExternalRequests, now),
		Yesterday:     s.counters.ReadAt(counters.ExternalRequests, now.AddDate(0, 0, -1)),
		TotalThisWeek: s.counters.Sum(counters.ExternalRequests, 7),
	}
}

// TopCategories returns this week's category hits, highest first
func (s *AnalyticsService) TopCategories() Series {
	type entry struct {
		label string
		value int64
	}

	entries := make([]entry, 0, len(s.categories))
	for _, label := range s.categories {
		slug := news.Slugify(label)
		value := s.counters.Current(counters.CategoryHits(slug))
		if value == 0 && s.demoSeed {
			value = s.placeholder(slug)
		}
		entries = append(entries, entry{label: label, value: value})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].value > entries[j].value
	})

	series := Series{
		Labels: make([]string, 0, len(entries)),
		Data:   make([]int64, 0, len(entries)),
	}
	for _, e := range entries {
		series.Labels = append(series.Labels, e.label)
		series.Data = append(series.Data, e.value)
	}
	return series
}

func (s *AnalyticsService) placeholder(slug string) int64 {
	r, ok := demoRanges[strings.ToLower(slug)]
	if !ok {
		r = defaultDemoRange
	}
	return r[0] + rand.Int63n(r[1]-r[0]+1)
}

// QuickSummary returns the summary numbers, cached for the summary TTL
func (s *AnalyticsService) QuickSummary() QuickSummary {
	var summary QuickSummary
	_, err := s.cache.GetOrSetTyped(cache.BuildKey(cache.KeyPrefixQuickSummary), s.ttl.SummaryTTL, &summary, func() (interface{}, error) {
		return s.buildQuickSummary(), nil
	})
	if err != nil {
		logger.New().WithError(err).Warn("Quick summary unavailable from cache, computing directly")
		return s.buildQuickSummary()
	}
	return summary
}

func (s *AnalyticsService) buildQuickSummary() QuickSummary {
	totalArticles := 0
	if listing, ok := s.listings.CachedListing(); ok {
		totalArticles = len(listing)
	}

	hits := s.counters.Current(counters.CacheHit)
	misses := s.counters.Current(counters.CacheMiss)

	return QuickSummary{
		TotalArticles:   totalArticles,
		TrafficToday:    s.counters.Current(counters.ExternalRequests) + hits + misses,
		APIErrors24h:    s.counters.Sum(counters.APIErrors, 24),
		CacheEfficiency: HitRate(hits, misses),
		LastUpdated:     s.counters.Now().Format(clockLayout),
	}
}

// AnalyticsData returns the chart bundle, cached for the analytics TTL
func (s *AnalyticsService) AnalyticsData() AnalyticsData {
	var data AnalyticsData
	_, err := s.cache.GetOrSetTyped(cache.BuildKey(cache.KeyPrefixAnalyticsData), s.ttl.AnalyticsTTL, &data, func() (interface{}, error) {
		return s.buildAnalyticsData(), nil
	})
	if err != nil {
		logger.New().WithError(err).Warn("Analytics data unavailable from cache, computing directly")
		return s.buildAnalyticsData()
	}
	return data
}

func (s *AnalyticsService) buildAnalyticsData() AnalyticsData {
	return AnalyticsData{
		CacheStats:       s.CacheStats(),
		ExternalRequests: s.ExternalRequests(),
		TopCategories:    s.TopCategories(),
		HourlyRequests:   s.HourlyRequests(),
	}
}

// Dashboard returns the analytics bundle together with the quick summary
func (s *AnalyticsService) Dashboard() Dashboard {
	return Dashboard{
		AnalyticsData: s.AnalyticsData(),
		QuickSummary:  s.QuickSummary(),
	}
}

// CacheStatus reports the cache statistics of the cached analytics bundle
func (s *AnalyticsService) CacheStatus() CacheStatusResult {
	stats := s.AnalyticsData().CacheStats
	return CacheStatusResult{
		Success:    true,
		HitRate:    stats.HitRate,
		Total:      stats.Total,
		Hits:       stats.Hits,
		Misses:     stats.Misses,
		Efficiency: stats.HitRate,
	}
}
