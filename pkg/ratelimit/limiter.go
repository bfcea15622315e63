// Package ratelimit implements request gating against the Scryfall API:
// a minimum-interval rate limiter and a circuit breaker. Scryfall asks
// clients to insert 50-100ms between requests; the limiter guarantees no
// two upstream calls are admitted closer together than the configured
// interval, regardless of how many goroutines contend for a slot.
package ratelimit

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"golang.org/x/time/rate"
)

// DefaultInterval is the default minimum spacing between upstream requests.
const DefaultInterval = 100 * time.Millisecond

// Prometheus metrics for rate limiting.
var (
	rateLimitWaitSeconds = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "scryfall_rate_limit_wait_seconds",
		Help:    "Time spent waiting for a rate limit slot",
		Buckets: []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2.5},
	})

	rateLimitAcquiresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Name: "scryfall_rate_limit_acquires_total",
		Help: "Total number of rate limit slots acquired",
	})
)

// Limiter enforces a minimum interval between permitted calls.
// It is safe for concurrent use; waiters are admitted in order.
type Limiter struct {
	limiter *rate.Limiter
}

// NewLimiter creates a limiter admitting one call per interval.
// A non-positive interval falls back to DefaultInterval.
func NewLimiter(interval time.Duration) *Limiter {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Limiter{
		// Burst 1: exactly one caller wins each time slot.
		limiter: rate.NewLimiter(rate.Every(interval), 1),
	}
}

// Acquire blocks until a request slot is available or the context is
// cancelled. It never fails for any other reason; it only delays.
func (l *Limiter) Acquire(ctx context.Context) error {
	start := time.Now()
	if err := l.limiter.Wait(ctx); err != nil {
		return err
	}
	rateLimitWaitSeconds.Observe(time.Since(start).Seconds())
	rateLimitAcquiresTotal.Inc()
	return nil
}
