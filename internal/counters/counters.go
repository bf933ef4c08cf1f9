// Package counters keeps integer counters bucketed by calendar hour, day or ISO week.
// Buckets expire on their own; nothing ever decrements a counter.
package counters

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"news-portal-backend/internal/cache"
	"news-portal-backend/internal/logger"
)

// Granularity is the width of a counter bucket
type Granularity int

const (
	Hourly Granularity = iota
	Daily
	Weekly
)

func (g Granularity) String() string {
	switch g {
	case Hourly:
		return "hourly"
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	default:
		return "unknown"
	}
}

// Step returns the distance between two consecutive buckets
func (g Granularity) Step() time.Duration {
	switch g {
	case Hourly:
		return time.Hour
	case Weekly:
		return 7 * 24 * time.Hour
	default:
		return 24 * time.Hour
	}
}

// Metric names a counter and how it is bucketed and retained
type Metric struct {
	Name        string
	Granularity Granularity
	TTL         time.Duration
}

var (
	CacheHit         = Metric{Name: "cache_hit", Granularity: Daily, TTL: 24 * time.Hour}
	CacheMiss        = Metric{Name: "cache_miss", Granularity: Daily, TTL: 24 * time.Hour}
	ExternalRequests = Metric{Name: "external_requests", Granularity: Daily, TTL: 24 * time.Hour}
	APIRequests      = Metric{Name: "api_requests", Granularity: Hourly, TTL: time.Hour}
	// APIErrors is kept for a full day so the 24 hour error total can be read back
	APIErrors = Metric{Name: "api_errors", Granularity: Hourly, TTL: 24 * time.Hour}
)

// CategoryHits returns the weekly access counter for a category slug
func CategoryHits(slug string) Metric {
	return Metric{
		Name:        "category_hits_" + strings.ToLower(slug),
		Granularity: Weekly,
		TTL:         7 * 24 * time.Hour,
	}
}

// Counters increments and reads time-bucketed counters in a cache store
type Counters struct {
	store cache.CacheService
	now   func() time.Time
	loc   *time.Location
}

// Option configures Counters
type Option func(*Counters)

// WithClock replaces time.Now
func WithClock(now func() time.Time) Option {
	return func(c *Counters) {
		if now != nil {
			c.now = now
		}
	}
}

// WithLocation sets the zone calendar buckets are computed in
func WithLocation(loc *time.Location) Option {
	return func(c *Counters) {
		if loc != nil {
			c.loc = loc
		}
	}
}

// NewCounters creates counters backed by store
func NewCounters(store cache.CacheService, opts ...Option) *Counters {
	c := &Counters{
		store: store,
		now:   time.Now,
		loc:   time.Local,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Now returns the current time in the counters' location
func (c *Counters) Now() time.Time {
	return c.now().In(c.loc)
}

// Location returns the zone buckets are computed in
func (c *Counters) Location() *time.Location {
	return c.loc
}

// Bucket formats the bucket containing t
func (c *Counters) Bucket(m Metric, t time.Time) string {
	return FormatBucket(m.Granularity, t.In(c.loc))
}

// FormatBucket renders t as "2006-01-02-15", "2006-01-02" or "2006-W01"
func FormatBucket(g Granularity, t time.Time) string {
	switch g {
	case Hourly:
		return t.Format("2006-01-02-15")
	case Weekly:
		year, week := t.ISOWeek()
		return fmt.Sprintf("%04d-W%02d", year, week)
	default:
		return t.Format("2006-01-02")
	}
}

// Increment adds one to the current bucket of m
func (c *Counters) Increment(m Metric) int64 {
	return c.IncrementBucket(m, c.Bucket(m, c.now()))
}

// IncrementBucket adds one to an explicit bucket. Failures are logged and reported as 0;
// analytics never fail the request that produced them.
func (c *Counters) IncrementBucket(m Metric, bucket string) int64 {
	n, err := c.store.Increment(cache.CounterKey(m.Name, bucket), m.TTL)
	if err != nil {
		if !errors.Is(err, cache.ErrCacheDisabled) {
			logger.New().WithError(err).WithField("metric", m.Name).Warn("Failed to increment counter")
		}
		return 0
	}
	return n
}

// Read returns the value of one bucket, 0 when absent or expired
func (c *Counters) Read(m Metric, bucket string) int64 {
	raw, err := c.store.Get(cache.CounterKey(m.Name, bucket))
	if err != nil {
		return 0
	}

	n, err := strconv.ParseInt(strings.TrimSpace(string(raw)), 10, 64)
	if err != nil {
		logger.New().WithError(err).WithField("metric", m.Name).Warn("Counter holds a non-numeric value")
		return 0
	}
	return n
}

// ReadAt returns the value of the bucket containing t
func (c *Counters) ReadAt(m Metric, t time.Time) int64 {
	return c.Read(m, c.Bucket(m, t))
}

// Current returns the value of the bucket containing now
func (c *Counters) Current(m Metric) int64 {
	return c.ReadAt(m, c.now())
}

// Sum adds the last n buckets of m, the current one included
func (c *Counters) Sum(m Metric, n int) int64 {
	var total int64
	for _, t := range c.Window(m.Granularity, n) {
		total += c.ReadAt(m, t)
	}
	return total
}

// Window returns the start instants of the last n buckets, oldest first
func (c *Counters) Window(g Granularity, n int) []time.Time {
	if n <= 0 {
		return nil
	}

	now := c.Now()
	out := make([]time.Time, n)
	for i := 0; i < n; i++ {
		back := n - 1 - i
		switch g {
		case Hourly:
			out[i] = startOfHour(now).Add(-time.Duration(back) * time.Hour)
		case Weekly:
			out[i] = startOfDay(now).AddDate(0, 0, -7*back)
		default:
			out[i] = startOfDay(now).AddDate(0, 0, -back)
		}
	}
	return out
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfHour(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, t.Hour(), 0, 0, 0, t.Location())
}
