package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

// RedisCache is the shared L2 tier. Entries are JSON blobs with a Redis
// TTL matching the entry expiry, so Redis reclaims stale entries on its
// own; no capacity bound is enforced locally.
type RedisCache struct {
	redis *redis.Client
}

// NewRedisCache creates an L2 cache over the given Redis client.
func NewRedisCache(redisClient *redis.Client) *RedisCache {
	if redisClient == nil {
		panic("redis client cannot be nil")
	}
	return &RedisCache{redis: redisClient}
}

// Get retrieves an entry by key. Returns ErrCacheMiss when the key does
// not exist or the stored entry has expired. Backend failures are returned
// as errors for the manager to degrade on.
func (r *RedisCache) Get(ctx context.Context, key string) (*Entry, error) {
	data, err := r.redis.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, ErrCacheMiss
		}
		CacheErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("redis get: %w", err)
	}

	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		CacheErrors.WithLabelValues("get").Inc()
		return nil, fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}

	// Redis TTL and entry expiry can drift slightly; the entry wins.
	if entry.IsExpired() {
		_ = r.Delete(ctx, key)
		return nil, ErrCacheMiss
	}

	entry.Tier = TierRedis
	return &entry, nil
}

// Set stores an entry with a Redis TTL derived from the entry expiry.
// Already-expired entries are dropped silently.
func (r *RedisCache) Set(ctx context.Context, key string, entry *Entry) error {
	if entry == nil {
		return fmt.Errorf("cache entry cannot be nil")
	}

	ttl := entry.TTL()
	if ttl <= 0 {
		return nil
	}

	data, err := json.Marshal(entry)
	if err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("marshal cache entry: %w", err)
	}

	if err := r.redis.Set(ctx, key, data, ttl).Err(); err != nil {
		CacheErrors.WithLabelValues("set").Inc()
		return fmt.Errorf("redis set: %w", err)
	}

	return nil
}

// Delete removes an entry.
func (r *RedisCache) Delete(ctx context.Context, key string) error {
	if err := r.redis.Del(ctx, key).Err(); err != nil {
		CacheErrors.WithLabelValues("delete").Inc()
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}
