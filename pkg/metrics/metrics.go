// Package metrics provides the centralized Prometheus registry reference
// for the Scryfall pipeline. All metrics are defined in their respective
// packages (client, cache, ratelimit) to maintain modularity and avoid
// circular dependencies.
//
// This package provides documentation and reference for all available
// metrics.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Registry is the default Prometheus registry used by the pipeline.
// All metrics are automatically registered via promauto in their
// respective packages.
var Registry = prometheus.DefaultRegisterer

// Metrics Documentation
//
// Rate Limit Metrics (pkg/ratelimit):
//   - scryfall_rate_limit_wait_seconds (Histogram): Time spent waiting for a request slot
//   - scryfall_rate_limit_acquires_total (Counter): Request slots granted
//   - scryfall_breaker_transitions_total{to} (Counter): Circuit breaker state transitions
//   - scryfall_breaker_rejections_total (Counter): Requests rejected while the circuit is open
//
// Cache Metrics (pkg/cache):
//   - scryfall_cache_hits_total{tier} (Counter): Cache hits by tier (memory, redis)
//   - scryfall_cache_misses_total (Counter): Cache misses across both tiers
//   - scryfall_cache_evictions_total (Counter): L1 capacity evictions
//   - scryfall_cache_errors_total{operation} (Counter): L2 operation errors
//
// Request Metrics (pkg/client):
//   - scryfall_requests_total{endpoint, status} (Counter): Requests by endpoint and HTTP status
//   - scryfall_request_duration_seconds{endpoint} (Histogram): Request duration by endpoint
//   - scryfall_errors_total{class} (Counter): Errors by class (client, server, rate_limit, network)
//
// Retry Metrics (pkg/client):
//   - scryfall_retries_total{error_class} (Counter): Retry attempts by error class
//   - scryfall_retry_backoff_seconds{error_class} (Histogram): Backoff duration by error class
//   - scryfall_retry_exhausted_total{error_class} (Counter): Requests that exhausted max retries
//
// Example Prometheus Queries:
//
//   # Cache Hit Rate
//   sum(rate(scryfall_cache_hits_total[5m])) /
//   (sum(rate(scryfall_cache_hits_total[5m])) + sum(rate(scryfall_cache_misses_total[5m])))
//
//   # Circuit Health
//   rate(scryfall_breaker_rejections_total[5m])
//
//   # Request Error Rate
//   rate(scryfall_errors_total[5m])
//
//   # P95 Request Latency
//   histogram_quantile(0.95, rate(scryfall_request_duration_seconds_bucket[5m]))
