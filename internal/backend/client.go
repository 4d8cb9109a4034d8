// Package backend provides the HTTP client for the chatbot backend API.
//
// Read traffic for the analytics overview is served through a short-TTL
// cache, and can silently degrade to synthetic data when the backend is
// unreachable. Every other operation propagates failures to the caller.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/Sabharishraja/Multilinguistic-chatbot/internal/cache"
	"github.com/Sabharishraja/Multilinguistic-chatbot/pkg/model"
)

// Default client settings.
const (
	DefaultTimeout  = 30 * time.Second
	DefaultCacheTTL = 30 * time.Second

	cacheCleanupInterval = 5 * time.Minute
)

// TokenSource yields the current bearer token, or "" when no session exists.
type TokenSource interface {
	Token() string
}

// StaticToken is a TokenSource holding a fixed token.
type StaticToken string

// Token implements TokenSource.
func (t StaticToken) Token() string { return string(t) }

// FallbackSource supplies synthetic analytics when the backend is unavailable.
type FallbackSource interface {
	Overview() model.AnalyticsOverview
}

// Client talks to the chatbot backend.
type Client struct {
	baseURL    string
	httpClient *http.Client
	tokens     TokenSource
	fallback   FallbackSource
	cache      *cache.TTLCache[string, model.AnalyticsOverview]
	logger     *slog.Logger
}

// Option configures optional Client dependencies.
type Option func(*Client)

// WithTokenSource sets the bearer token source for authenticated requests.
func WithTokenSource(ts TokenSource) Option {
	return func(c *Client) { c.tokens = ts }
}

// WithFallback enables the synthetic-data degraded path for the analytics
// overview. Without it, analytics failures propagate like any other error.
func WithFallback(fb FallbackSource) Option {
	return func(c *Client) { c.fallback = fb }
}

// WithHTTPClient overrides the underlying HTTP client (tests, custom transports).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithCacheTTL overrides the response cache TTL.
func WithCacheTTL(ttl time.Duration) Option {
	return func(c *Client) {
		c.cache.Close()
		c.cache = cache.New[string, model.AnalyticsOverview](ttl, cacheCleanupInterval)
	}
}

// New creates a backend client with connection pooling and a fresh
// response cache. Call Close when the client is no longer needed.
func New(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	transport := &http.Transport{
		MaxIdleConns:        100,
		MaxIdleConnsPerHost: 10,
		IdleConnTimeout:     90 * time.Second,
	}

	c := &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout:   DefaultTimeout,
			Transport: transport,
		},
		cache:  cache.New[string, model.AnalyticsOverview](DefaultCacheTTL, cacheCleanupInterval),
		logger: logger.With("component", "backend"),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a shallow copy of the client bound to a fixed bearer
// token. The HTTP client and response cache are shared with the original.
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.tokens = StaticToken(token)
	return &clone
}

// Close releases the response cache's background resources.
func (c *Client) Close() {
	c.cache.Close()
}

// do issues a request and returns the raw response.
// The bearer token is attached only when authed is set and a token exists.
func (c *Client) do(ctx context.Context, method, path string, body any, authed bool) (*http.Response, error) {
	var bodyReader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("marshal request: %w", err)
		}
		bodyReader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, bodyReader)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if authed && c.tokens != nil {
		if tok := c.tokens.Token(); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	return resp, nil
}

// getJSON issues an authenticated GET and decodes a 2xx JSON response into out.
// Non-2xx responses become *HTTPError with the given category.
func (c *Client) getJSON(ctx context.Context, path, category string, out any) error {
	resp, err := c.do(ctx, http.MethodGet, path, nil, true)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return &HTTPError{Category: category, StatusCode: resp.StatusCode, Body: string(body)}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("parse response: %w", err)
	}
	return nil
}
