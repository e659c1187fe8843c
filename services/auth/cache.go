package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"doctorsportal/models"
	"doctorsportal/utils"

	"github.com/go-redis/redis/v8"
)

// RoleCache remembers the role of an email for a bounded time. A miss is
// reported as ok=false with a nil error.
type RoleCache interface {
	Get(ctx context.Context, email string) (role models.Role, ok bool, err error)
	Set(ctx context.Context, email string, role models.Role) error
	Delete(ctx context.Context, email string) error
}

// RedisRoleCache stores roles as plain string keys with a TTL.
type RedisRoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRoleCache(client *redis.Client, ttl time.Duration) *RedisRoleCache {
	if ttl <= 0 {
		ttl = utils.RoleCacheTTL
	}
	return &RedisRoleCache{client: client, ttl: ttl}
}

func (c *RedisRoleCache) Get(ctx context.Context, email string) (models.Role, bool, error) {
	val, err := c.client.Get(ctx, utils.RoleCachePrefix+email).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("role cache get %s: %w", email, err)
	}
	return models.Role(val).Normalize(), true, nil
}

func (c *RedisRoleCache) Set(ctx context.Context, email string, role models.Role) error {
	if err := c.client.Set(ctx, utils.RoleCachePrefix+email, string(role), c.ttl).Err(); err != nil {
		return fmt.Errorf("role cache set %s: %w", email, err)
	}
	return nil
}

func (c *RedisRoleCache) Delete(ctx context.Context, email string) error {
	if err := c.client.Del(ctx, utils.RoleCachePrefix+email).Err(); err != nil {
		return fmt.Errorf("role cache delete %s: %w", email, err)
	}
	return nil
}

// NoopRoleCache is used when Redis is not configured; every lookup misses.
type NoopRoleCache struct{}

func (NoopRoleCache) Get(context.Context, string) (models.Role, bool, error) {
	return "", false, nil
}

func (NoopRoleCache) Set(context.Context, string, models.Role) error {
	return nil
}

func (NoopRoleCache) Delete(context.Context, string) error {
	return nil
}
