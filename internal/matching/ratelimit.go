// internal/matching/ratelimit.go
// Fixed-window request limiter backed by Redis

package matching

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

// Limiter decides whether a matchmaker may run another match request.
type Limiter interface {
	Allow(ctx context.Context, matchmakerID string) (allowed bool, retryAfter time.Duration, err error)
}

// RedisLimiter counts requests per matchmaker in fixed windows.
type RedisLimiter struct {
	client *redis.Client
	limit  int64
	window time.Duration
	prefix string
}

// NewRedisLimiter allows limit requests per window for each matchmaker.
func NewRedisLimiter(client *redis.Client, limit int, window time.Duration) *RedisLimiter {
	return &RedisLimiter{
		client: client,
		limit:  int64(limit),
		window: window,
		prefix: "ratelimit:matches:",
	}
}

func (l *RedisLimiter) Allow(ctx context.Context, matchmakerID string) (bool, time.Duration, error) {
	if l.client == nil {
		return false, 0, fmt.Errorf("redis client is nil")
	}
	if matchmakerID == "" || l.window <= 0 {
		return false, 0, fmt.Errorf("invalid rate window payload")
	}

	key := l.prefix + matchmakerID
	count, err := l.client.Incr(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("increment rate key: %w", err)
	}
	if count == 1 {
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("set rate key ttl: %w", err)
		}
	}

	if count <= l.limit {
		return true, 0, nil
	}

	ttl, err := l.client.TTL(ctx, key).Result()
	if err != nil {
		return false, 0, fmt.Errorf("read rate key ttl: %w", err)
	}
	if ttl <= 0 {
		// Key lost its expiry; restore it so the window eventually resets.
		if err := l.client.Expire(ctx, key, l.window).Err(); err != nil {
			return false, 0, fmt.Errorf("set rate key ttl: %w", err)
		}
		ttl = l.window
	}

	return false, ttl, nil
}
