package withdrawal

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/domain/mocks"
	"github.com/saradorri/rewardwallet/internal/infrastructure/lock"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/saradorri/rewardwallet/internal/usecase"
	"github.com/saradorri/rewardwallet/internal/usecase/game"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	ist      = time.FixedZone("IST", 5*3600+1800)
	fixedNow = time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC)
	bank     = domain.BankDetails{AccountHolderName: "Dev", AccountNumber: "1234567890", IFSCCode: "HDFC0001234", BankName: "HDFC"}
)

type withdrawalFixture struct {
	uc             *WithdrawalUseCase
	userRepo       *mocks.MockUserRepository
	withdrawalRepo *mocks.MockWithdrawalRepository
}

func newWithdrawalFixture(ctrl *gomock.Controller) *withdrawalFixture {
	userRepo := mocks.NewMockUserRepository(ctrl)
	withdrawalRepo := mocks.NewMockWithdrawalRepository(ctrl)
	txManager := mocks.NewMockTxManager(ctrl)
	txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	newLogger := logger.NewLogger("test", "debug")
	uc := &WithdrawalUseCase{
		withdrawalRepo: withdrawalRepo,
		mutator:        usecase.NewUserMutator(userRepo, lock.NewUserLockManager(time.Second, nil), txManager, newLogger),
		txManager:      txManager,
		location:       ist,
		logger:         newLogger,
		now:            func() time.Time { return fixedNow },
	}
	return &withdrawalFixture{uc: uc, userRepo: userRepo, withdrawalRepo: withdrawalRepo}
}

func TestDayWindow(t *testing.T) {
	from, to := dayWindow(fixedNow, ist)
	assert.Equal(t, time.Date(2026, 3, 15, 0, 0, 0, 0, ist), from)
	assert.Equal(t, 24*time.Hour, to.Sub(from))
	assert.True(t, !fixedNow.Before(from) && fixedNow.Before(to))
}

func TestRequestWithdrawal_Validation(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWithdrawalFixture(ctrl)

	tests := []struct {
		name    string
		amount  int64
		bank    domain.BankDetails
		code    string
		message string
	}{
		{"below_minimum", 99, bank, domain.ErrCodeInvalidAmount, "Minimum withdrawal amount is ₹100"},
		{"above_maximum", 50001, bank, domain.ErrCodeInvalidAmount, "Maximum withdrawal amount is ₹50,000 per day"},
		{"missing_bank", 500, domain.BankDetails{AccountHolderName: "Dev"}, domain.ErrCodeRequiredField, "All bank details are required"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := f.uc.RequestWithdrawal(ctx, 1, tt.amount, tt.bank)
			require.True(t, domain.HasCode(err, tt.code))
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestRequestWithdrawal(t *testing.T) {
	ctx := context.Background()

	t.Run("holds_winning_balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWithdrawalFixture(ctrl)

		user := &domain.User{ID: 1, TotalEarnings: 1500, WinningBalance: 1000, BonusBalance: 500}
		from, to := dayWindow(fixedNow, ist)
		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil)
		f.withdrawalRepo.EXPECT().SumAmountInWindow(ctx, int64(1), from, to, domain.DailyQuotaStatuses).Return(int64(0), nil)
		f.withdrawalRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.WithdrawalRequest) error {
			assert.Equal(t, domain.WithdrawalStatusPending, r.Status)
			assert.Equal(t, bank, r.BankDetails)
			r.ID = 9
			return nil
		})
		f.userRepo.EXPECT().Update(ctx, user).Return(nil)

		res, err := f.uc.RequestWithdrawal(ctx, 1, 600, bank)
		require.NoError(t, err)
		assert.Equal(t, int64(9), res.Request.ID)
		assert.Equal(t, int64(400), res.NewWinningBalance)
		assert.Equal(t, int64(900), user.TotalEarnings)
		assert.Equal(t, int64(500), user.BonusBalance)
		assert.Zero(t, user.LedgerDrift())
	})

	t.Run("more_than_winnings", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWithdrawalFixture(ctrl)

		user := &domain.User{ID: 1, TotalEarnings: 10000, DepositBalance: 9900, WinningBalance: 100}
		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil)

		_, err := f.uc.RequestWithdrawal(ctx, 1, 200, bank)
		assert.True(t, domain.HasCode(err, domain.ErrCodeInsufficientWinningBalance))
		assert.Equal(t, int64(100), user.WinningBalance)
	})

	t.Run("winnings_staked_back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWithdrawalFixture(ctrl)

		user := &domain.User{ID: 1, TotalEarnings: 1020, BonusBalance: 20, DepositBalance: 1000}
		hard := domain.GameModes[domain.GameModeHard]
		_, err := game.PlayGuess(user, domain.GameModeHard, hard, 7, 7)
		require.NoError(t, err)
		require.Equal(t, int64(2500), user.WinningBalance)
		for user.TotalEarnings >= hard.Cost+20 {
			_, err := game.PlayGuess(user, domain.GameModeHard, hard, 7, 8)
			require.NoError(t, err)
		}
		require.Equal(t, int64(20), user.TotalEarnings)

		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil)

		_, err = f.uc.RequestWithdrawal(ctx, 1, 2500, bank)
		assert.True(t, domain.HasCode(err, domain.ErrCodeInsufficientWinningBalance))
		assert.Equal(t, int64(20), user.TotalEarnings)
		assert.Equal(t, int64(2500), user.WinningBalance)
	})

	t.Run("second_request_hits_daily_limit", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWithdrawalFixture(ctrl)

		user := &domain.User{ID: 1, TotalEarnings: 80000, WinningBalance: 80000}
		var filed int64
		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil).Times(2)
		f.withdrawalRepo.EXPECT().SumAmountInWindow(ctx, int64(1), gomock.Any(), gomock.Any(), domain.DailyQuotaStatuses).
			DoAndReturn(func(context.Context, int64, time.Time, time.Time, []domain.WithdrawalStatus) (int64, error) {
				return filed, nil
			}).Times(2)
		f.withdrawalRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, r *domain.WithdrawalRequest) error {
			filed += r.Amount
			return nil
		})
		f.userRepo.EXPECT().Update(ctx, user).Return(nil)

		_, err := f.uc.RequestWithdrawal(ctx, 1, 30000, bank)
		require.NoError(t, err)

		_, err = f.uc.RequestWithdrawal(ctx, 1, 30000, bank)
		require.True(t, domain.HasCode(err, domain.ErrCodeDailyLimitExceeded))
		assert.Equal(t, "Daily withdrawal limit exceeded. You can withdraw ₹20000 more today.", err.Error())
		assert.Equal(t, int64(50000), user.WinningBalance)
	})
}

func TestProcessRequest(t *testing.T) {
	ctx := context.Background()

	t.Run("reject_refunds_hold", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWithdrawalFixture(ctrl)

		request := &domain.WithdrawalRequest{ID: 9, UserID: 1, Amount: 600, Status: domain.WithdrawalStatusPending}
		user := &domain.User{ID: 1, TotalEarnings: 400, WinningBalance: 400}
		f.withdrawalRepo.EXPECT().GetByIDForUpdate(ctx, int64(9)).Return(request, nil)
		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil)
		f.userRepo.EXPECT().Update(ctx, user).Return(nil)
		f.withdrawalRepo.EXPECT().Update(ctx, request).Return(nil)

		res, err := f.uc.ProcessRequest(ctx, 77, 9, domain.WithdrawalStatusRejected, "name mismatch")
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusRejected, res.Status)
		assert.Equal(t, "name mismatch", res.AdminNotes)
		assert.Equal(t, int64(77), *res.ProcessedBy)
		assert.Equal(t, fixedNow, *res.ProcessedAt)
		assert.Equal(t, int64(1000), user.WinningBalance)
		assert.Equal(t, int64(1000), user.TotalEarnings)
	})

	t.Run("approve_leaves_balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWithdrawalFixture(ctrl)

		request := &domain.WithdrawalRequest{ID: 9, UserID: 1, Amount: 600, Status: domain.WithdrawalStatusPending}
		f.withdrawalRepo.EXPECT().GetByIDForUpdate(ctx, int64(9)).Return(request, nil)
		f.withdrawalRepo.EXPECT().Update(ctx, request).Return(nil)

		res, err := f.uc.ProcessRequest(ctx, 77, 9, domain.WithdrawalStatusApproved, "")
		require.NoError(t, err)
		assert.Equal(t, domain.WithdrawalStatusApproved, res.Status)
	})

	t.Run("invalid_transition", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWithdrawalFixture(ctrl)

		f.withdrawalRepo.EXPECT().GetByIDForUpdate(ctx, int64(9)).
			Return(&domain.WithdrawalRequest{ID: 9, Status: domain.WithdrawalStatusRejected}, nil)

		_, err := f.uc.ProcessRequest(ctx, 77, 9, domain.WithdrawalStatusApproved, "")
		assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidStatusTransition))
	})

	t.Run("not_found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWithdrawalFixture(ctrl)

		f.withdrawalRepo.EXPECT().GetByIDForUpdate(ctx, int64(9)).Return(nil, nil)

		_, err := f.uc.ProcessRequest(ctx, 77, 9, domain.WithdrawalStatusCompleted, "")
		assert.True(t, domain.HasCode(err, domain.ErrCodeWithdrawalNotFound))
	})

	t.Run("pending_is_not_a_target", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWithdrawalFixture(ctrl)

		_, err := f.uc.ProcessRequest(ctx, 77, 9, domain.WithdrawalStatusPending, "")
		assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidFormat))
	})
}

func TestListRequests(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWithdrawalFixture(ctrl)

	f.withdrawalRepo.EXPECT().ListByStatus(ctx, domain.WithdrawalStatusPending, 20, 0).Return([]*domain.WithdrawalRequest{{ID: 1}}, int64(1), nil)
	requests, pagination, err := f.uc.ListRequests(ctx, "", domain.PageRequest{Page: 1, Limit: 20})
	require.NoError(t, err)
	assert.Len(t, requests, 1)
	assert.Equal(t, int64(1), pagination.Total)

	_, _, err = f.uc.ListRequests(ctx, "lost", domain.PageRequest{Page: 1, Limit: 20})
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidFormat))

	f.withdrawalRepo.EXPECT().ListByUser(ctx, int64(1), 10, 10).Return(nil, int64(11), nil)
	_, pagination, err = f.uc.History(ctx, 1, domain.PageRequest{Page: 2, Limit: 10})
	require.NoError(t, err)
	assert.Equal(t, 2, pagination.Pages)
}
