package app

import (
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/lock"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
)

// InitUserLocker picks the per-user lock by lock.driver
func (a *application) InitUserLocker(client redis.UniversalClient, log *logger.Logger) (domain.UserLocker, error) {
	cfg := a.config.Lock
	switch cfg.Driver {
	case "", "memory":
		return lock.NewUserLockManager(cfg.WaitTimeout, log), nil
	case "redis":
		if client == nil {
			return nil, fmt.Errorf("lock driver redis needs redis.enabled")
		}
		return lock.NewRedisUserLocker(client, cfg.TTL, cfg.WaitTimeout, log), nil
	default:
		return nil, fmt.Errorf("unknown lock driver %q", cfg.Driver)
	}
}
