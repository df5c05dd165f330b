package game

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
	"github.com/saradorri/rewardwallet/internal/usecase"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC)

type gameFixture struct {
	uc       *GameUseCase
	userRepo *mocks.MockUserRepository
	gameRepo *mocks.MockGameHistoryRepository
	spinRepo *mocks.MockSpinHistoryRepository
	random   *mocks.MockRandomSource
}

func newGameFixture(ctrl *gomock.Controller) *gameFixture {
	userRepo := mocks.NewMockUserRepository(ctrl)
	gameRepo := mocks.NewMockGameHistoryRepository(ctrl)
	spinRepo := mocks.NewMockSpinHistoryRepository(ctrl)
	random := mocks.NewMockRandomSource(ctrl)
	txManager := mocks.NewMockTxManager(ctrl)
	txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	newLogger := logger.NewLogger("test", "debug")
	uc := &GameUseCase{
		mutator:  usecase.NewUserMutator(userRepo, lock.NewUserLockManager(time.Second, nil), txManager, newLogger),
		gameRepo: gameRepo,
		spinRepo: spinRepo,
		random:   random,
		logger:   newLogger,
		now:      func() time.Time { return fixedNow },
	}
	return &gameFixture{uc: uc, userRepo: userRepo, gameRepo: gameRepo, spinRepo: spinRepo, random: random}
}

func TestPlayNumberGuess(t *testing.T) {
	ctx := context.Background()

	t.Run("win_records_history", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newGameFixture(ctrl)

		user := &domain.User{ID: 1, TotalEarnings: 20, BonusBalance: 20}
		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil)
		f.random.EXPECT().IntN(10).Return(6)
		f.gameRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, h *domain.GameHistory) error {
			assert.Equal(t, domain.GameModeEasy, h.GameMode)
			assert.Equal(t, 7, h.UserGuess)
			assert.Equal(t, 7, h.CorrectNumber)
			assert.True(t, h.IsWinner)
			assert.Equal(t, int64(80), h.AmountWon)
			assert.Equal(t, int64(90), h.FinalBalance)
			return nil
		})
		f.userRepo.EXPECT().Update(ctx, user).Return(nil)

		outcome, err := f.uc.PlayNumberGuess(ctx, 1, domain.GameModeEasy, 7)
		require.NoError(t, err)
		assert.True(t, outcome.IsWinner)
		assert.Equal(t, int64(90), outcome.NewBalance)
		assert.Equal(t, int64(8), outcome.PayoutMultiplier)
		assert.Equal(t, int64(80), user.WinningBalance)
		require.NotNil(t, user.LastPlayedAt)
		assert.Equal(t, fixedNow, *user.LastPlayedAt)
	})

	t.Run("rejects_bad_guess_before_locking", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newGameFixture(ctrl)

		_, err := f.uc.PlayNumberGuess(ctx, 1, domain.GameModeMedium, 51)
		assert.True(t, domain.HasCode(err, domain.ErrCodeGuessOutOfRange))
	})

	t.Run("insufficient_balance_writes_nothing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newGameFixture(ctrl)

		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(&domain.User{ID: 1, TotalEarnings: 10, BonusBalance: 10}, nil)
		f.random.EXPECT().IntN(100).Return(0)

		_, err := f.uc.PlayNumberGuess(ctx, 1, domain.GameModeHard, 1)
		assert.True(t, domain.HasCode(err, domain.ErrCodeInsufficientBalance))
	})

	t.Run("history_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newGameFixture(ctrl)

		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(&domain.User{ID: 1, TotalEarnings: 20, BonusBalance: 20}, nil)
		f.random.EXPECT().IntN(10).Return(0)
		f.gameRepo.EXPECT().Create(ctx, gomock.Any()).Return(errors.New("insert failed"))

		_, err := f.uc.PlayNumberGuess(ctx, 1, domain.GameModeEasy, 3)
		assert.True(t, domain.HasCode(err, domain.ErrCodeDatabase))
	})
}

func TestSpin(t *testing.T) {
	ctx := context.Background()

	t.Run("first_spin_is_free", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newGameFixture(ctrl)

		user := domain.NewPendingUser("Asha", "asha@example.com", "", fixedNow)
		user.ID = 1
		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil)
		f.random.EXPECT().Float64().Return(0.75)
		f.spinRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, h *domain.SpinHistory) error {
			assert.True(t, h.WasFreeSpin)
			assert.Zero(t, h.SpinCost)
			assert.Equal(t, domain.RewardFifty, h.RewardType)
			assert.Equal(t, int64(50), h.FinalBalance)
			return nil
		})
		f.userRepo.EXPECT().Update(ctx, user).Return(nil)

		outcome, err := f.uc.Spin(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, 2, outcome.SegmentIndex)
		assert.True(t, outcome.WasFreeSpin)
		assert.False(t, user.HasFreeSpin)
		require.NotNil(t, user.LastSpinAt)
	})

	t.Run("second_spin_needs_balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newGameFixture(ctrl)

		user := &domain.User{ID: 1, TotalEarnings: 40, WinningBalance: 40, MultiplierValue: 1}
		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil)
		f.random.EXPECT().Float64().Return(0.5).AnyTimes()

		_, err := f.uc.Spin(ctx, 1)
		assert.True(t, domain.HasCode(err, domain.ErrCodeInsufficientBalance))
		assert.Equal(t, int64(40), user.TotalEarnings)
	})
}

func TestGameHistoryAndStats(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newGameFixture(ctrl)

	f.gameRepo.EXPECT().ListByUser(ctx, int64(1), 10, 10).Return([]*domain.GameHistory{{ID: 11}}, int64(21), nil)
	games, pagination, err := f.uc.GameHistory(ctx, 1, domain.PageRequest{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, games, 1)
	assert.Equal(t, domain.Pagination{Page: 2, Limit: 10, Total: 21, Pages: 3}, pagination)

	f.gameRepo.EXPECT().StatsByMode(ctx, int64(1)).Return(nil, errors.New("boom"))
	_, err = f.uc.GameStats(ctx, 1)
	assert.True(t, domain.HasCode(err, domain.ErrCodeDatabase))

	f.spinRepo.EXPECT().ListByUser(ctx, int64(1), SpinHistoryLimit).Return([]*domain.SpinHistory{}, nil)
	spins, err := f.uc.SpinHistory(ctx, 1)
	require.NoError(t, err)
	assert.Empty(t, spins)
}
