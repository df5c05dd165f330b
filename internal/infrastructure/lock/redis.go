package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	redisKeyPrefix   = "rewardwallet:lock:user:"
	redisRetryPeriod = 25 * time.Millisecond
)

var releaseScript = redis.NewScript(`
	if redis.call("get", KEYS[1]) == ARGV[1] then
		return redis.call("del", KEYS[1])
	else
		return 0
	end
`)

// RedisUserLocker serializes mutations per user across replicas with SET NX and an owner token
type RedisUserLocker struct {
	client      redis.UniversalClient
	ttl         time.Duration
	waitTimeout time.Duration
	logger      *logger.Logger

	mu     sync.Mutex
	owners map[int64]string
}

// NewRedisUserLocker creates a distributed locker. ttl bounds how long a crashed holder keeps a user locked.
func NewRedisUserLocker(client redis.UniversalClient, ttl, waitTimeout time.Duration, log *logger.Logger) *RedisUserLocker {
	if waitTimeout <= 0 {
		waitTimeout = DefaultWaitTimeout
	}
	if ttl <= 0 {
		ttl = 10 * time.Second
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &RedisUserLocker{
		client:      client,
		ttl:         ttl,
		waitTimeout: waitTimeout,
		logger:      log,
		owners:      make(map[int64]string),
	}
}

func redisKey(userID int64) string {
	return fmt.Sprintf("%s%d", redisKeyPrefix, userID)
}

// Lock polls SET NX until it wins, ctx is done or the wait timeout passes
func (l *RedisUserLocker) Lock(ctx context.Context, userID int64) error {
	token := uuid.NewString()
	key := redisKey(userID)
	deadline := time.Now().Add(l.waitTimeout)

	for {
		ok, err := l.client.SetNX(ctx, key, token, l.ttl).Result()
		if err != nil {
			l.logger.Error("Failed to acquire redis lock", zap.Int64("user_id", userID), zap.Error(err))
			return lockError(userID, err)
		}
		if ok {
			l.mu.Lock()
			l.owners[userID] = token
			l.mu.Unlock()
			l.logger.Debug("Redis lock acquired", zap.Int64("user_id", userID))
			return nil
		}
		if time.Now().After(deadline) {
			l.logger.Warn("Failed to acquire redis lock: timeout", zap.Int64("user_id", userID))
			return lockError(userID, fmt.Errorf("timeout after %s", l.waitTimeout))
		}

		select {
		case <-ctx.Done():
			return lockError(userID, ctx.Err())
		case <-time.After(redisRetryPeriod):
		}
	}
}

// Unlock deletes the key only if this process still owns it
func (l *RedisUserLocker) Unlock(userID int64) {
	l.mu.Lock()
	token, ok := l.owners[userID]
	delete(l.owners, userID)
	l.mu.Unlock()

	if !ok {
		l.logger.Warn("No redis lock owned during unlock", zap.Int64("user_id", userID))
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := releaseScript.Run(ctx, l.client, []string{redisKey(userID)}, token).Err(); err != nil {
		l.logger.Error("Failed to release redis lock", zap.Int64("user_id", userID), zap.Error(err))
	}
}
