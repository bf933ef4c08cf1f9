package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/oauth2"

	apperrors "news-portal-backend/internal/errors"
	"news-portal-backend/internal/logger"
	"news-portal-backend/internal/news"
)

const (
	loginPath   = "/login"
	listingPath = "/publikasi-berita"

	// maxErrorBody bounds how much of an error response is kept for logs
	maxErrorBody = 4 << 10
)

// Options tunes the upstream client
type Options struct {
	RequestTimeout time.Duration
	ProbeTimeout   time.Duration
	// RetryMax is the number of retries per call; 0 means exactly one attempt
	RetryMax int
}

// DefaultOptions mirrors the upstream contract: 10s for login and listing, 5s for probes, no retries
func DefaultOptions() Options {
	return Options{
		RequestTimeout: 10 * time.Second,
		ProbeTimeout:   5 * time.Second,
		RetryMax:       0,
	}
}

// NewsAPIClient handles communication with the external news API
type NewsAPIClient struct {
	BaseURL        string
	HTTPClient     *retryablehttp.Client
	requestTimeout time.Duration
	probeTimeout   time.Duration
}

// NewNewsAPIClient creates a new news API client
func NewNewsAPIClient(baseURL string, opts Options) *NewsAPIClient {
	defaults := DefaultOptions()
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = defaults.RequestTimeout
	}
	if opts.ProbeTimeout <= 0 {
		opts.ProbeTimeout = defaults.ProbeTimeout
	}
	if opts.RetryMax < 0 {
		opts.RetryMax = 0
	}

	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = opts.RetryMax
	httpClient.Logger = logger.NewLeveledLogger()
	// hand non-2xx responses back to the caller instead of a generic "giving up" error
	httpClient.ErrorHandler = retryablehttp.PassthroughErrorHandler
	httpClient.RequestLogHook = func(_ retryablehttp.Logger, req *http.Request, attempt int) {
		if attempt > 0 {
			logger.New().WithFields(map[string]interface{}{
				"url":     req.URL.String(),
				"attempt": attempt,
			}).Warn("Retrying upstream request")
		}
	}

	return &NewsAPIClient{
		BaseURL:        strings.TrimSuffix(baseURL, "/"),
		HTTPClient:     httpClient,
		requestTimeout: opts.RequestTimeout,
		probeTimeout:   opts.ProbeTimeout,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginResponse struct {
	APIKey string `json:"api_key"`
}

// Login exchanges the static credentials for an API key
func (c *NewsAPIClient) Login(ctx context.Context, email, password string) (string, error) {
	const op = "login"

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	payload, err := json.Marshal(loginRequest{Email: email, Password: password})
	if err != nil {
		return "", fmt.Errorf("failed to marshal login request: %w", err)
	}

	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+loginPath, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("failed to create login request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return "", apperrors.NewUpstreamTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", apperrors.NewUpstreamStatusError(op, resp.StatusCode, readErrorBody(resp.Body))
	}

	var result loginResponse
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return "", fmt.Errorf("%s: %w: %v", op, apperrors.ErrMalformedPayload, err)
	}
	if result.APIKey == "" {
		return "", fmt.Errorf("%s: %w", op, apperrors.ErrAPIKeyMissing)
	}

	return result.APIKey, nil
}

// ListArticles fetches the full article listing. The body may be a JSON array or an
// object of articles; anything else yields ErrMalformedPayload.
func (c *NewsAPIClient) ListArticles(ctx context.Context, token string) (news.Listing, error) {
	const op = "list articles"

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	req, err := c.newListingRequest(ctx, token)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamTransportError(op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, apperrors.NewUpstreamStatusError(op, resp.StatusCode, readErrorBody(resp.Body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperrors.NewUpstreamTransportError(op, err)
	}

	listing, err := decodeListing(body)
	if err != nil {
		return nil, fmt.Errorf("%s: %w: %v", op, apperrors.ErrMalformedPayload, err)
	}

	return listing, nil
}

// decodeListing accepts a JSON array of articles or a JSON object whose values are
// articles. Object values keep the upstream key order.
func decodeListing(body []byte) (news.Listing, error) {
	trimmed := bytes.TrimSpace(body)
	listing := make(news.Listing, 0)
	if len(trimmed) == 0 {
		return nil, fmt.Errorf("empty body")
	}

	switch trimmed[0] {
	case '[':
		if err := json.Unmarshal(trimmed, &listing); err != nil {
			return nil, err
		}
		return listing, nil
	case '{':
	default:
		return nil, fmt.Errorf("expected a JSON array or object")
	}

	dec := json.NewDecoder(bytes.NewReader(trimmed))
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	for dec.More() {
		key, err := dec.Token()
		if err != nil {
			return nil, err
		}
		var a news.Article
		if err := dec.Decode(&a); err != nil {
			return nil, fmt.Errorf("value %v: %w", key, err)
		}
		listing = append(listing, a)
	}
	if _, err := dec.Token(); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, fmt.Errorf("trailing data after object")
	}
	return listing, nil
}

// ProbeResult is the outcome of one authenticated listing request made for health checks
type ProbeResult struct {
	StatusCode int
	Header     http.Header
}

// Success reports a 2xx status
func (r *ProbeResult) Success() bool {
	return r.StatusCode >= 200 && r.StatusCode < 300
}

// Probe performs one authenticated GET of the listing with the short probe timeout.
// Non-2xx responses are returned as results; only transport failures are errors.
func (c *NewsAPIClient) Probe(ctx context.Context, token string) (*ProbeResult, error) {
	ctx, cancel := context.WithTimeout(ctx, c.probeTimeout)
	defer cancel()

	req, err := c.newListingRequest(ctx, token)
	if err != nil {
		return nil, err
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, apperrors.NewUpstreamTransportError("probe", err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	return &ProbeResult{StatusCode: resp.StatusCode, Header: resp.Header.Clone()}, nil
}

func (c *NewsAPIClient) newListingRequest(ctx context.Context, token string) (*retryablehttp.Request, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+listingPath, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create listing request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	(&oauth2.Token{AccessToken: token, TokenType: "Bearer"}).SetAuthHeader(req.Request)
	return req, nil
}

// RateLimit holds the upstream rate-limit headers. Nil fields were absent.
type RateLimit struct {
	Remaining *int
	Limit     *int
	Reset     string
}

// RateLimitFromHeader reads X-RateLimit-Remaining, X-RateLimit-Limit and X-RateLimit-Reset
func RateLimitFromHeader(h http.Header) RateLimit {
	return RateLimit{
		Remaining: headerInt(h, "X-RateLimit-Remaining"),
		Limit:     headerInt(h, "X-RateLimit-Limit"),
		Reset:     strings.TrimSpace(h.Get("X-RateLimit-Reset")),
	}
}

func headerInt(h http.Header, name string) *int {
	raw := strings.TrimSpace(h.Get(name))
	if raw == "" {
		return nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return nil
	}
	return &n
}

func readErrorBody(r io.Reader) string {
	body, _ := io.ReadAll(io.LimitReader(r, maxErrorBody))
	return strings.TrimSpace(string(body))
}
