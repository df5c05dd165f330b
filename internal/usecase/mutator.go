package usecase

import (
	"context"
	"errors"

	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// UserMutator runs read-modify-write cycles on one user with the user locked
// and the row held FOR UPDATE for the whole transaction.
type UserMutator struct {
	userRepo  domain.UserRepository
	locker    domain.UserLocker
	txManager domain.TxManager
	logger    *logger.Logger
}

// NewUserMutator creates a new user mutator
func NewUserMutator(userRepo domain.UserRepository, locker domain.UserLocker, txManager domain.TxManager, logger *logger.Logger) *UserMutator {
	return &UserMutator{
		userRepo:  userRepo,
		locker:    locker,
		txManager: txManager,
		logger:    logger,
	}
}

// Mutate loads the user, calls fn and saves the user when fn succeeds.
// Anything fn writes through ctx joins the same transaction.
func (m *UserMutator) Mutate(ctx context.Context, userID int64, fn func(ctx context.Context, user *domain.User) error) error {
	if err := m.locker.Lock(ctx, userID); err != nil {
		return err
	}
	defer m.locker.Unlock(userID)

	err := m.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		user, err := m.userRepo.GetByIDForUpdate(ctx, userID)
		if err != nil {
			m.logger.WithContext(ctx).Error("Failed to load user for update",
				zap.Int64("user_id", userID),
				zap.Error(err))
			return domain.NewDatabaseError("load user", err)
		}
		if user == nil {
			return domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User")
		}

		if err := fn(ctx, user); err != nil {
			return err
		}

		if err := m.userRepo.Update(ctx, user); err != nil {
			m.logger.WithContext(ctx).Error("Failed to save user",
				zap.Int64("user_id", userID),
				zap.Error(err))
			return domain.NewDatabaseError("save user", err)
		}
		return nil
	})
	if err != nil {
		return DatabaseError("user transaction", err)
	}
	return nil
}

// DatabaseError wraps a raw repository error, leaving AppErrors untouched
func DatabaseError(op string, err error) error {
	var appErr *domain.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return domain.NewDatabaseError(op, err)
}
