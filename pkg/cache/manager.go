package cache

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
)

var (
	// ErrCacheMiss indicates the requested key was not found in any tier.
	ErrCacheMiss = errors.New("cache miss")

	// ErrInvalidEntry indicates a stored entry is corrupted.
	ErrInvalidEntry = errors.New("invalid cache entry")
)

// Manager is the two-tier cache front. Reads check L1 then L2, backfilling
// L1 on an L2 hit. Writes go to both tiers; an unreachable L2 degrades the
// write to L1-only and never fails the operation.
type Manager struct {
	memory *MemoryCache
	redis  *RedisCache
	logger zerolog.Logger
}

// NewManager creates a cache manager. The redis tier is optional; pass nil
// for an L1-only cache.
func NewManager(memory *MemoryCache, redis *RedisCache, logger zerolog.Logger) *Manager {
	if memory == nil {
		panic("memory cache cannot be nil")
	}
	return &Manager{
		memory: memory,
		redis:  redis,
		logger: logger,
	}
}

// Get retrieves an entry by key, checking L1 then L2. On an L2 hit the
// entry is backfilled into L1. Returns ErrCacheMiss when both tiers miss;
// L2 backend failures are logged and reported as a miss.
func (m *Manager) Get(ctx context.Context, key Key) (*Entry, error) {
	cacheKey := key.String()

	if entry, ok := m.memory.Get(cacheKey); ok {
		CacheHits.WithLabelValues(TierMemory).Inc()
		return entry, nil
	}

	if m.redis != nil {
		entry, err := m.redis.Get(ctx, cacheKey)
		switch {
		case err == nil:
			m.memory.Set(cacheKey, entry)
			CacheHits.WithLabelValues(TierRedis).Inc()
			return entry, nil
		case errors.Is(err, ErrCacheMiss):
			// fall through to total miss
		default:
			m.logger.Warn().Err(err).Str("key", cacheKey).Msg("L2 cache read failed, treating as miss")
		}
	}

	CacheMisses.Inc()
	return nil, ErrCacheMiss
}

// Set stores a payload under key in both tiers, with the expiry fixed by
// the TTL class. An L2 write failure is logged and otherwise ignored.
func (m *Manager) Set(ctx context.Context, key Key, data []byte, class TTLClass) error {
	entry := NewEntry(data, class)
	cacheKey := key.String()

	m.memory.Set(cacheKey, entry)

	if m.redis != nil {
		if err := m.redis.Set(ctx, cacheKey, entry); err != nil {
			m.logger.Warn().Err(err).Str("key", cacheKey).Msg("L2 cache write failed, entry kept in L1 only")
		}
	}

	return nil
}

// Delete removes an entry from both tiers.
func (m *Manager) Delete(ctx context.Context, key Key) {
	cacheKey := key.String()
	m.memory.Delete(cacheKey)
	if m.redis != nil {
		if err := m.redis.Delete(ctx, cacheKey); err != nil {
			m.logger.Warn().Err(err).Str("key", cacheKey).Msg("L2 cache delete failed")
		}
	}
}
