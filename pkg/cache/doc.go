// Package cache provides a two-tier result cache for Scryfall responses:
// a bounded in-process LRU (L1) and an optional shared Redis tier (L2).
//
// Entries carry their own expiry, derived from a fixed TTL class at write
// time, so expiry is enforced identically in both tiers. The L1 tier also
// evicts the least-recently-used entry under capacity pressure; the L2 tier
// relies on Redis TTL expiry only.
//
// # Basic Usage
//
//	// L1-only manager
//	manager := cache.NewManager(cache.NewMemoryCache(1000), nil, logger)
//
//	// Two-tier manager with a shared Redis backend
//	redisClient := redis.NewClient(&redis.Options{Addr: "localhost:6379"})
//	manager = cache.NewManager(
//		cache.NewMemoryCache(1000),
//		cache.NewRedisCache(redisClient),
//		logger,
//	)
//
//	key := cache.Key{
//		Namespace: "search",
//		Query:     "c:w t:creature",
//		Locale:    "ja",
//		PageSize:  20,
//	}
//
//	entry, err := manager.Get(ctx, key)
//	if errors.Is(err, cache.ErrCacheMiss) {
//		// fetch from upstream, then:
//		_ = manager.Set(ctx, key, payload, cache.ClassSearch)
//	}
//
// A Redis outage never fails a request: L2 read errors are reported as
// misses and L2 write errors are logged, leaving the entry in L1 only.
//
// # Metrics
//
//   - scryfall_cache_hits_total{tier} - cache hits by tier (memory, redis)
//   - scryfall_cache_misses_total - total cache misses
//   - scryfall_cache_evictions_total - L1 capacity evictions
//   - scryfall_cache_errors_total{operation} - L2 operation errors
package cache
