package app

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/ratelimit"
	"go.uber.org/fx"
)

// InitRedis connects to redis when enabled. A nil client means redis is off.
func (a *application) InitRedis(lc fx.Lifecycle) (redis.UniversalClient, error) {
	if !a.config.Redis.Enabled {
		return nil, nil
	}

	client := redis.NewClient(&redis.Options{
		Addr:     a.config.Redis.Addr,
		Password: a.config.Redis.Password,
		DB:       a.config.Redis.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return client.Close()
		},
	})
	return client, nil
}

func (a *application) InitRateLimiter(client redis.UniversalClient) domain.RateLimiter {
	if client == nil {
		return ratelimit.NoopLimiter{}
	}
	return ratelimit.NewRedisLimiter(client)
}
