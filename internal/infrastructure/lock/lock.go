package lock

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// DefaultWaitTimeout bounds how long Lock waits for a busy user
const DefaultWaitTimeout = 5 * time.Second

// UserLockManager serializes mutations per user inside one process
type UserLockManager struct {
	locks       sync.Map // map[int64]chan struct{}
	waitTimeout time.Duration
	logger      *logger.Logger
}

// NewUserLockManager creates a lock manager. A zero waitTimeout uses DefaultWaitTimeout.
func NewUserLockManager(waitTimeout time.Duration, log *logger.Logger) *UserLockManager {
	if waitTimeout <= 0 {
		waitTimeout = DefaultWaitTimeout
	}
	if log == nil {
		log = logger.NewNop()
	}
	return &UserLockManager{
		waitTimeout: waitTimeout,
		logger:      log,
	}
}

// Lock acquires the lock of userID, giving up when ctx is done or the wait timeout passes
func (m *UserLockManager) Lock(ctx context.Context, userID int64) error {
	m.logger.Debug("Attempting to acquire lock", zap.Int64("user_id", userID))
	slot := m.slot(userID)

	timer := time.NewTimer(m.waitTimeout)
	defer timer.Stop()

	select {
	case slot <- struct{}{}:
		m.logger.Debug("Lock acquired", zap.Int64("user_id", userID))
		return nil
	case <-ctx.Done():
		m.logger.Warn("Failed to acquire lock: context done", zap.Int64("user_id", userID), zap.Error(ctx.Err()))
		return lockError(userID, ctx.Err())
	case <-timer.C:
		m.logger.Warn("Failed to acquire lock: timeout", zap.Int64("user_id", userID), zap.Duration("timeout", m.waitTimeout))
		return lockError(userID, fmt.Errorf("timeout after %s", m.waitTimeout))
	}
}

// Unlock releases the lock of userID
func (m *UserLockManager) Unlock(userID int64) {
	v, ok := m.locks.Load(userID)
	if !ok {
		m.logger.Warn("No lock found during unlock", zap.Int64("user_id", userID))
		return
	}
	select {
	case <-v.(chan struct{}):
		m.logger.Debug("Lock released", zap.Int64("user_id", userID))
	default:
		m.logger.Warn("Unlock of a lock that is not held", zap.Int64("user_id", userID))
	}
}

func (m *UserLockManager) slot(userID int64) chan struct{} {
	if v, ok := m.locks.Load(userID); ok {
		return v.(chan struct{})
	}
	actual, _ := m.locks.LoadOrStore(userID, make(chan struct{}, 1))
	return actual.(chan struct{})
}

func lockError(userID int64, err error) error {
	return domain.NewAppError(
		domain.ErrCodeLockTimeout,
		"Another request for this account is in progress, please try again",
		409,
		fmt.Errorf("failed to acquire lock for user %d: %w", userID, err),
	)
}
