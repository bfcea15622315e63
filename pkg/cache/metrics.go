package cache

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// CacheHits tracks cache hits by tier (memory, redis)
	CacheHits = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scryfall_cache_hits_total",
			Help: "Total number of cache hits",
		},
		[]string{"tier"},
	)

	// CacheMisses tracks total cache misses (both tiers missed)
	CacheMisses = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scryfall_cache_misses_total",
			Help: "Total number of cache misses",
		},
	)

	// CacheEvictions tracks L1 capacity evictions
	CacheEvictions = promauto.NewCounter(
		prometheus.CounterOpts{
			Name: "scryfall_cache_evictions_total",
			Help: "Total number of L1 entries evicted under capacity pressure",
		},
	)

	// CacheErrors tracks L2 operation errors
	CacheErrors = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "scryfall_cache_errors_total",
			Help: "Total number of cache backend operation errors",
		},
		[]string{"operation"}, // "get", "set", "delete"
	)
)
