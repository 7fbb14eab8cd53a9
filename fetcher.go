package shopsight

import "context"

// Fetcher retrieves raw response bodies from URLs.
// Implementations share one connection pool and must be safe for concurrent
// use across simultaneous extraction requests.
type Fetcher interface {
	// Fetch performs a single GET of the URL and returns the response body.
	// Non-200 responses are errors. There are no retries; a failed fetch is
	// final for that attempt. The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) (body string, err error)

	// Close releases pooled connections.
	// Must be called when the Fetcher is no longer needed.
	Close() error
}

// DomainLimiter provides per-domain pacing of outbound requests.
type DomainLimiter interface {
	// Wait blocks until the limiter allows a request to the domain.
	// Returns an error if the context is canceled.
	Wait(ctx context.Context, domain string) error
}
