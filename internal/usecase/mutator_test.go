package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/domain/mocks"
	"github.com/saradorri/rewardwallet/internal/infrastructure/lock"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func passThroughTx(ctrl *gomock.Controller) *mocks.MockTxManager {
	tx := mocks.NewMockTxManager(ctrl)
	tx.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()
	return tx
}

func TestUserMutator_Mutate(t *testing.T) {
	ctx := context.Background()

	t.Run("saves_after_fn", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		user := &domain.User{ID: 1}
		userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil)
		userRepo.EXPECT().Update(ctx, user).Return(nil)

		m := NewUserMutator(userRepo, lock.NewUserLockManager(time.Second, nil), passThroughTx(ctrl), logger.NewNop())
		err := m.Mutate(ctx, 1, func(ctx context.Context, u *domain.User) error {
			u.ApplyEarnings(25, domain.CategoryBonus)
			return nil
		})
		require.NoError(t, err)
		assert.Equal(t, int64(25), user.BonusBalance)
	})

	t.Run("fn_error_skips_save", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(&domain.User{ID: 1}, nil)

		m := NewUserMutator(userRepo, lock.NewUserLockManager(time.Second, nil), passThroughTx(ctrl), logger.NewNop())
		err := m.Mutate(ctx, 1, func(ctx context.Context, u *domain.User) error {
			return domain.NewBusinessError(domain.ErrCodeInsufficientBalance, "Insufficient balance")
		})
		assert.True(t, domain.HasCode(err, domain.ErrCodeInsufficientBalance))
	})

	t.Run("missing_user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetByIDForUpdate(ctx, int64(9)).Return(nil, nil)

		m := NewUserMutator(userRepo, lock.NewUserLockManager(time.Second, nil), passThroughTx(ctrl), logger.NewNop())
		err := m.Mutate(ctx, 9, func(ctx context.Context, u *domain.User) error {
			t.Fatal("fn must not run")
			return nil
		})
		assert.True(t, domain.HasCode(err, domain.ErrCodeUserNotFound))
	})

	t.Run("raw_error_becomes_database_error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		userRepo := mocks.NewMockUserRepository(ctrl)
		userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(&domain.User{ID: 1}, nil)

		m := NewUserMutator(userRepo, lock.NewUserLockManager(time.Second, nil), passThroughTx(ctrl), logger.NewNop())
		err := m.Mutate(ctx, 1, func(ctx context.Context, u *domain.User) error {
			return errors.New("insert failed")
		})
		assert.True(t, domain.HasCode(err, domain.ErrCodeDatabase))
	})

	t.Run("lock_held_elsewhere", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		locks := lock.NewUserLockManager(20*time.Millisecond, nil)
		require.NoError(t, locks.Lock(ctx, 1))
		defer locks.Unlock(1)

		m := NewUserMutator(mocks.NewMockUserRepository(ctrl), locks, mocks.NewMockTxManager(ctrl), logger.NewNop())
		err := m.Mutate(ctx, 1, func(ctx context.Context, u *domain.User) error { return nil })
		assert.True(t, domain.HasCode(err, domain.ErrCodeLockTimeout))
	})
}
