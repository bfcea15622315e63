package client

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/rs/zerolog"
)

// Prometheus metrics for retry operations.
var (
	retriesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scryfall_retries_total",
		Help: "Total number of retry attempts by error class",
	}, []string{"error_class"})

	retryBackoffSeconds = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "scryfall_retry_backoff_seconds",
		Help:    "Backoff duration for retries by error class",
		Buckets: []float64{0.5, 1, 2, 5, 10, 30, 60},
	}, []string{"error_class"})

	retryExhaustedTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "scryfall_retry_exhausted_total",
		Help: "Total number of times retry attempts were exhausted by error class",
	}, []string{"error_class"})
)

// RetryConfig holds the configuration for retry logic.
type RetryConfig struct {
	// MaxAttempts is the maximum number of attempts (including the initial request).
	MaxAttempts int

	// InitialBackoff is the backoff before the first retry.
	InitialBackoff time.Duration

	// MaxBackoff caps the exponential backoff.
	MaxBackoff time.Duration

	// BackoffMultiplier is the exponential growth factor.
	BackoffMultiplier float64
}

// DefaultRetryConfig returns the default retry configuration.
func DefaultRetryConfig() RetryConfig {
	return RetryConfig{
		MaxAttempts:       3,
		InitialBackoff:    1 * time.Second,
		MaxBackoff:        30 * time.Second,
		BackoffMultiplier: 2.0,
	}
}

// backoffFor returns the base backoff before retry number attempt
// (1-based), a pure function of the attempt count and configuration.
func backoffFor(attempt int, cfg RetryConfig) time.Duration {
	backoff := cfg.InitialBackoff
	for i := 1; i < attempt; i++ {
		backoff = time.Duration(float64(backoff) * cfg.BackoffMultiplier)
		if backoff >= cfg.MaxBackoff {
			return cfg.MaxBackoff
		}
	}
	if backoff > cfg.MaxBackoff {
		return cfg.MaxBackoff
	}
	return backoff
}

// withJitter spreads a backoff by ±20% to avoid thundering herds.
func withJitter(d time.Duration) time.Duration {
	return time.Duration(float64(d) * (0.8 + rand.Float64()*0.4))
}

// sleepFunc delays for d or fails when ctx is cancelled first.
// Injected so tests can run the retry schedule without waiting.
type sleepFunc func(ctx context.Context, d time.Duration) error

func defaultSleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}

// retryWithBackoff executes fn until it succeeds, fails permanently, or
// the attempt ceiling is reached. Only *APIError values reporting
// Transient() are retried; a 429 Retry-After hint overrides the computed
// backoff. Cancellation is checked between attempts.
func retryWithBackoff(ctx context.Context, cfg RetryConfig, sleep sleepFunc, logger zerolog.Logger, fn func() error) error {
	var lastErr error

	for attempt := 1; attempt <= cfg.MaxAttempts; attempt++ {
		err := fn()
		if err == nil {
			if attempt > 1 {
				logger.Info().Int("attempt", attempt).Msg("Request succeeded after retry")
			}
			return nil
		}
		lastErr = err

		var apiErr *APIError
		if !errors.As(err, &apiErr) || !apiErr.Transient() {
			return err
		}

		if attempt >= cfg.MaxAttempts {
			break
		}

		retriesTotal.WithLabelValues(string(apiErr.Class)).Inc()

		delay := withJitter(backoffFor(attempt, cfg))
		if apiErr.RetryAfter > 0 {
			// Honor the server's wait hint over our own schedule.
			delay = apiErr.RetryAfter
		}
		retryBackoffSeconds.WithLabelValues(string(apiErr.Class)).Observe(delay.Seconds())

		logger.Warn().
			Str("error_class", string(apiErr.Class)).
			Int("attempt", attempt).
			Dur("backoff", delay).
			Msg("Retrying request after backoff")

		if err := sleep(ctx, delay); err != nil {
			logger.Warn().Int("attempt", attempt).Msg("Context cancelled during retry backoff")
			return fmt.Errorf("%w: %v", ErrContextCancelled, err)
		}
	}

	var apiErr *APIError
	if errors.As(lastErr, &apiErr) {
		retryExhaustedTotal.WithLabelValues(string(apiErr.Class)).Inc()
	}

	logger.Warn().Int("max_attempts", cfg.MaxAttempts).Msg("Retry attempts exhausted")

	return fmt.Errorf("%w after %d attempts: %w", ErrRetryExhausted, cfg.MaxAttempts, lastErr)
}
