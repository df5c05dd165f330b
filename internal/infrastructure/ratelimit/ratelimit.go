package ratelimit

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "rewardwallet:ratelimit:"

// RedisLimiter is a fixed-window counter: INCR the key and set its expiry on the first hit
type RedisLimiter struct {
	client redis.UniversalClient
}

func NewRedisLimiter(client redis.UniversalClient) *RedisLimiter {
	return &RedisLimiter{client: client}
}

// Allow reports whether the hit is within limit for the current window of key
func (l *RedisLimiter) Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error) {
	k := keyPrefix + key

	count, err := l.client.Incr(ctx, k).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check rate limit: %w", err)
	}

	if count == 1 {
		if err := l.client.Expire(ctx, k, window).Err(); err != nil {
			return false, fmt.Errorf("failed to set rate limit window: %w", err)
		}
	}

	return count <= int64(limit), nil
}

// NoopLimiter allows everything. Used when redis is disabled.
type NoopLimiter struct{}

func (NoopLimiter) Allow(context.Context, string, int, time.Duration) (bool, error) {
	return true, nil
}
