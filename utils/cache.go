// File: utils/cache.go
package utils

import (
	"context"
	"fmt"
	"time"

	"doctorsportal/config"

	"github.com/go-redis/redis/v8"
)

// NewCacheClient connects the Redis client used for role caching and
// verifies it with a ping. It returns nil, nil when Redis is not configured.
func NewCacheClient(ctx context.Context, cfg *config.Config) (*redis.Client, error) {
	if !cfg.RedisEnabled() {
		return nil, nil
	}
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisCacheDB,
	})
	pingCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis (cache): %w", err)
	}
	return client, nil
}
