// Package scrape refreshes the bundled datasets from the league website.
//
// Each page's first <table> is read with goquery and written in the
// column-oriented JSON layout internal/dataset loads. Pages are fetched
// through an in-memory HTTP cache whose TTL is enforced client side, so
// repeated refreshes inside the window do not hit the site.
package scrape

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/gregjones/httpcache"
	"golang.org/x/time/rate"
)

const userAgent = "wer-standings/1.0 (+https://github.com/albapepper/wer-standings)"

// Client fetches pages through a TTL-enforced memory cache.
type Client struct {
	httpClient *http.Client
	limiter    *rate.Limiter
	logger     *slog.Logger
}

// NewClient creates a cached client. Responses are kept for maxAge
// regardless of what the origin says; requestsPerMinute bounds traffic
// to the site.
func NewClient(maxAge time.Duration, requestsPerMinute int, logger *slog.Logger) *Client {
	return newClient(http.DefaultTransport, maxAge, requestsPerMinute, logger)
}

func newClient(base http.RoundTripper, maxAge time.Duration, requestsPerMinute int, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if requestsPerMinute <= 0 {
		requestsPerMinute = 30
	}

	hc := httpcache.NewMemoryCacheTransport()
	// Origin headers are replaced so the site cannot opt out of caching.
	hc.Transport = &HeaderOverrideTransport{
		wrappedRT: base,
		Request: func(req *http.Request) {
			req.Header.Set("User-Agent", userAgent)
		},
		Response: func(resp *http.Response) error {
			resp.Header.Del("Pragma")
			resp.Header.Del("Expires")
			resp.Header.Del("Cache-Control")
			resp.Header.Set("Cache-Control", fmt.Sprintf("public, max-age=%d", int(maxAge/time.Second)))
			return nil
		},
	}

	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Transport: hc, Timeout: 30 * time.Second},
		limiter:    rate.NewLimiter(rate.Limit(rps), 2),
		logger:     logger,
	}
}

// HeaderOverrideTransport runs Request and Response hooks around an
// underlying RoundTripper.
type HeaderOverrideTransport struct {
	Request  func(req *http.Request)
	Response func(resp *http.Response) error

	wrappedRT http.RoundTripper
}

// RoundTrip applies the hooks to a clone of req.
func (t *HeaderOverrideTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req2 := req.Clone(req.Context())
	if t.Request != nil {
		t.Request(req2)
	}

	resp, err := t.wrappedRT.RoundTrip(req2)
	if err != nil {
		return nil, err
	}

	if t.Response != nil {
		if err := t.Response(resp); err != nil {
			resp.Body.Close()
			return nil, err
		}
	}
	return resp, nil
}

// Get returns the body of url.
func (c *Client) Get(ctx context.Context, url string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request %s: %w", url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%s returned %d: %s", url, resp.StatusCode, truncate(body, 200))
	}

	c.logger.Debug("Fetched page",
		"url", url,
		"bytes", len(body),
		"cached", resp.Header.Get(httpcache.XFromCache) == "1")
	return body, nil
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
