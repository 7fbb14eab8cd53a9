package extract

import (
	"context"
	"sync"

	"github.com/fwojciec/shopsight"
	"golang.org/x/time/rate"
)

var _ shopsight.DomainLimiter = (*DomainLimiter)(nil)

// DomainLimiter paces extraction admission per storefront host using token
// buckets. The extractor takes one token per run before its first fetch, so
// repeated extractions of the same store stay spaced out while extractions
// of different stores never block each other.
type DomainLimiter struct {
	mu      sync.Mutex
	buckets map[string]*rate.Limiter
	limit   rate.Limit
	burst   int
}

// NewDomainLimiter creates a limiter admitting rps extractions per second
// per host, with burst back-to-back admissions allowed. A non-positive rps
// disables pacing entirely.
func NewDomainLimiter(rps float64, burst int) *DomainLimiter {
	limit := rate.Limit(rps)
	if rps <= 0 {
		limit = rate.Inf
	}
	if burst < 1 {
		burst = 1
	}
	return &DomainLimiter{
		buckets: make(map[string]*rate.Limiter),
		limit:   limit,
		burst:   burst,
	}
}

// Wait blocks until the host's bucket allows another request, or the
// context is canceled.
func (l *DomainLimiter) Wait(ctx context.Context, domain string) error {
	l.mu.Lock()
	bucket, ok := l.buckets[domain]
	if !ok {
		bucket = rate.NewLimiter(l.limit, l.burst)
		l.buckets[domain] = bucket
	}
	l.mu.Unlock()

	return bucket.Wait(ctx)
}
