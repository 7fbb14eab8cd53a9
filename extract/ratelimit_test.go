package extract_test

import (
	"context"
	"testing"
	"time"

	"github.com/fwojciec/shopsight/extract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("first request per host is immediate", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(10, 1)

		start := time.Now()
		err := limiter.Wait(context.Background(), "acme.example.com")
		require.NoError(t, err)
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("requests to the same host are paced", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(10, 1) // 100ms between requests

		require.NoError(t, limiter.Wait(context.Background(), "acme.example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "acme.example.com"))
		assert.GreaterOrEqual(t, time.Since(start), 80*time.Millisecond)
	})

	t.Run("hosts are paced independently", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(10, 1)

		require.NoError(t, limiter.Wait(context.Background(), "acme.example.com"))

		start := time.Now()
		require.NoError(t, limiter.Wait(context.Background(), "other.example.com"))
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("burst allows a batch of immediate requests", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(1, 3)

		start := time.Now()
		for range 3 {
			require.NoError(t, limiter.Wait(context.Background(), "acme.example.com"))
		}
		assert.Less(t, time.Since(start), 100*time.Millisecond)
	})

	t.Run("non-positive rate disables pacing", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(0, 1)

		start := time.Now()
		for range 10 {
			require.NoError(t, limiter.Wait(context.Background(), "acme.example.com"))
		}
		assert.Less(t, time.Since(start), 50*time.Millisecond)
	})

	t.Run("respects context cancellation", func(t *testing.T) {
		t.Parallel()

		limiter := extract.NewDomainLimiter(1, 1)
		require.NoError(t, limiter.Wait(context.Background(), "acme.example.com"))

		ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
		defer cancel()

		assert.Error(t, limiter.Wait(ctx, "acme.example.com"))
	})
}
