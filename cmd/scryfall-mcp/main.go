// scryfall-mcp is an MCP server exposing natural-language Magic card
// search over the rate-limited Scryfall API, with a two-tier cache.
package main

import (
	"context"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/redis/go-redis/v9"

	"github.com/reonyanarticle/scryfall-mcp/internal/mcp"
	"github.com/reonyanarticle/scryfall-mcp/pkg/cache"
	"github.com/reonyanarticle/scryfall-mcp/pkg/client"
	"github.com/reonyanarticle/scryfall-mcp/pkg/logging"
	"github.com/reonyanarticle/scryfall-mcp/pkg/pipeline"
)

func main() {
	// Configuration from environment
	userAgent := getEnv("SCRYFALL_USER_AGENT", "scryfall-mcp/0.1.0 (github.com/reonyanarticle/scryfall-mcp)")
	redisURL := os.Getenv("REDIS_URL") // optional; empty means L1-only
	logLevel := getEnv("LOG_LEVEL", "info")
	cacheSize := getEnvInt("CACHE_SIZE", cache.DefaultMemoryCapacity)

	// Logs go to stderr; stdout carries the MCP stdio protocol.
	logging.Setup(logging.Config{Level: logging.LogLevel(logLevel), Output: os.Stderr})
	logger := logging.NewLogger("main")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis is optional. An unreachable L2 degrades to L1-only rather
	// than refusing to start.
	var redisCache *cache.RedisCache
	if redisURL != "" {
		redisClient := redis.NewClient(&redis.Options{Addr: redisURL})
		if err := redisClient.Ping(ctx).Err(); err != nil {
			logger.Warn().Err(err).Str("redis_url", redisURL).Msg("Redis unreachable, running with memory cache only")
		} else {
			redisCache = cache.NewRedisCache(redisClient)
			logger.Info().Str("redis_url", redisURL).Msg("Connected to Redis")
		}
	}

	scryfall, err := client.New(client.DefaultConfig(userAgent))
	if err != nil {
		logger.Fatal().Err(err).Msg("Failed to create Scryfall client")
	}

	cm := cache.NewManager(cache.NewMemoryCache(cacheSize), redisCache, logging.NewLogger("cache"))
	p := pipeline.New(scryfall, cm)

	logger.Info().
		Str("user_agent", userAgent).
		Bool("redis", redisCache != nil).
		Int("cache_size", cacheSize).
		Msg("Starting MCP server on stdio")

	if err := mcp.NewServer(p).Run(ctx); err != nil && ctx.Err() == nil {
		logger.Fatal().Err(err).Msg("MCP server failed")
	}

	logger.Info().Msg("Shutdown complete")
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if n, err := strconv.Atoi(value); err == nil && n > 0 {
			return n
		}
	}
	return defaultValue
}
