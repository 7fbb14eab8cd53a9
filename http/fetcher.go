// Package http provides the network-facing implementations: the page
// fetcher, the Shopify store detector, and the feed services for products,
// policy pages, and FAQs.
package http

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/fwojciec/shopsight"
)

// DefaultFetchTimeout is the default timeout for HTTP requests.
const DefaultFetchTimeout = 30 * time.Second

// defaultHeaders mimic a desktop browser; some storefront themes serve
// reduced markup to unknown agents.
var defaultHeaders = map[string]string{
	"User-Agent":      "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
	"Connection":      "keep-alive",
}

// Ensure Fetcher implements shopsight.Fetcher at compile time.
var _ shopsight.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves response bodies over HTTP. One Fetcher holds one
// connection pool and is safe for concurrent use across extraction requests.
type Fetcher struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures a Fetcher.
type Option func(*Fetcher)

// WithTimeout sets the timeout for HTTP requests.
// Defaults to DefaultFetchTimeout (30s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(f *Fetcher) {
		f.timeout = d
	}
}

// NewFetcher creates a new HTTP Fetcher.
func NewFetcher(opts ...Option) *Fetcher {
	f := &Fetcher{
		timeout: DefaultFetchTimeout,
	}
	for _, opt := range opts {
		opt(f)
	}

	f.client = &http.Client{
		Timeout: f.timeout,
	}

	return f
}

// Client returns the underlying HTTP client so other components (such as
// the Detector) can share the connection pool.
func (f *Fetcher) Client() *http.Client {
	return f.client
}

// Fetch performs a single GET of the URL and returns the response body.
// Non-200 responses are errors. There are no retries.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	applyHeaders(req)

	resp, err := f.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("HTTP %d for %s", resp.StatusCode, url)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", err
	}

	return string(body), nil
}

// Close releases pooled connections.
func (f *Fetcher) Close() error {
	f.client.CloseIdleConnections()
	return nil
}

func applyHeaders(req *http.Request) {
	for k, v := range defaultHeaders {
		req.Header.Set(k, v)
	}
}

// buildEndpoint joins a base URL and endpoint path:
// {base without trailing "/"}/{endpoint without leading "/"}.
func buildEndpoint(baseURL, endpoint string) string {
	return strings.TrimRight(baseURL, "/") + "/" + strings.TrimLeft(endpoint, "/")
}
