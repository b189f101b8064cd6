package config

// Redis backs the short-TTL availability response cache. The client is
// optional: when no server is reachable at startup the app runs without
// caching.

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
)

var Redis *redis.Client

// ConnectRedis builds a client from REDIS_ADDR (or REDIS_HOST/REDIS_PORT) and
// pings it. Leaves Redis nil when the server cannot be reached so callers
// degrade to uncached reads.
func ConnectRedis() {
	addr := os.Getenv("REDIS_ADDR")
	if host, port := os.Getenv("REDIS_HOST"), os.Getenv("REDIS_PORT"); host != "" && port != "" {
		addr = host + ":" + port
	}
	if addr == "" {
		return
	}

	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: os.Getenv("REDIS_PASSWORD"),
	})

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return
	}
	Redis = client
}

// AvailabilityCacheTTL reads AVAILABILITY_CACHE_TTL, defaulting to 30s.
func AvailabilityCacheTTL() time.Duration {
	if v := os.Getenv("AVAILABILITY_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return 30 * time.Second
}
