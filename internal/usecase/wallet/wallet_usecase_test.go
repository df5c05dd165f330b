package wallet

import (
	"context"
	"errors"
	"net/http"
	"strings"
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

var kolkata = time.FixedZone("IST", 5*3600+1800)

type walletFixture struct {
	uc          *WalletUseCase
	userRepo    *mocks.MockUserRepository
	gameRepo    *mocks.MockGameHistoryRepository
	paymentRepo *mocks.MockPaymentRepository
	gateway     *mocks.MockPaymentGateway
	now         time.Time
}

func newWalletFixture(ctrl *gomock.Controller) *walletFixture {
	f := &walletFixture{
		userRepo:    mocks.NewMockUserRepository(ctrl),
		gameRepo:    mocks.NewMockGameHistoryRepository(ctrl),
		paymentRepo: mocks.NewMockPaymentRepository(ctrl),
		gateway:     mocks.NewMockPaymentGateway(ctrl),
		now:         time.Date(2026, 3, 14, 20, 0, 0, 0, time.UTC),
	}
	txManager := mocks.NewMockTxManager(ctrl)
	txManager.EXPECT().WithinTransaction(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context) error) error {
			return fn(ctx)
		}).AnyTimes()

	newLogger := logger.NewLogger("test", "debug")
	f.uc = &WalletUseCase{
		userRepo:    f.userRepo,
		gameRepo:    f.gameRepo,
		paymentRepo: f.paymentRepo,
		gateway:     f.gateway,
		mutator:     usecase.NewUserMutator(f.userRepo, lock.NewUserLockManager(time.Second, nil), txManager, newLogger),
		currency:    "INR",
		location:    kolkata,
		logger:      newLogger,
		now:         func() time.Time { return f.now },
	}
	return f
}

func TestProfile(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWalletFixture(ctrl)

	user := &domain.User{ID: 1, Name: "Asha"}
	f.userRepo.EXPECT().GetByID(ctx, int64(1)).Return(user, nil)
	f.gameRepo.EXPECT().ListByUser(ctx, int64(1), RecentGamesLimit, 0).Return([]*domain.GameHistory{{ID: 3}}, int64(1), nil)

	profile, err := f.uc.Profile(ctx, 1)
	require.NoError(t, err)
	assert.Same(t, user, profile.User)
	assert.Len(t, profile.RecentGames, 1)

	f.userRepo.EXPECT().GetByID(ctx, int64(2)).Return(nil, nil)
	_, err = f.uc.Profile(ctx, 2)
	assert.True(t, domain.HasCode(err, domain.ErrCodeUserNotFound))
}

func TestClaimBonus(t *testing.T) {
	ctx := context.Background()

	t.Run("credits_once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWalletFixture(ctrl)

		user := &domain.User{ID: 1, TotalEarnings: 5, WinningBalance: 5}
		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil)
		f.userRepo.EXPECT().Update(ctx, user).Return(nil)

		res, err := f.uc.ClaimBonus(ctx, 1)
		require.NoError(t, err)
		assert.Equal(t, int64(20), res.Amount)
		assert.Equal(t, int64(25), res.NewBalance)
		assert.Equal(t, int64(20), user.BonusBalance)
	})

	t.Run("rejected_with_bonus_balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWalletFixture(ctrl)

		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(&domain.User{ID: 1, TotalEarnings: 1, BonusBalance: 1}, nil)

		_, err := f.uc.ClaimBonus(ctx, 1)
		assert.True(t, domain.HasCode(err, domain.ErrCodeBonusAlreadyClaimed))
	})
}

func TestClaimDailyBonus(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		last    *time.Time
		wantErr bool
	}{
		{"never_claimed", nil, false},
		// 20:00 UTC on the 14th is 01:30 on the 15th in IST
		{"claimed_yesterday_local", ptr(time.Date(2026, 3, 14, 18, 0, 0, 0, time.UTC)), false},
		{"claimed_today_local", ptr(time.Date(2026, 3, 14, 19, 0, 0, 0, time.UTC)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()
			f := newWalletFixture(ctrl)

			user := &domain.User{ID: 1, LastDailyBonus: tt.last}
			f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil)
			if !tt.wantErr {
				f.userRepo.EXPECT().Update(ctx, user).Return(nil)
			}

			res, err := f.uc.ClaimDailyBonus(ctx, 1)
			if tt.wantErr {
				require.True(t, domain.HasCode(err, domain.ErrCodeBonusAlreadyClaimed))
				assert.Equal(t, "Daily bonus already claimed today", err.Error())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, int64(25), res.Amount)
			assert.Equal(t, int64(25), user.BonusBalance)
			assert.Equal(t, f.now, *user.LastDailyBonus)
		})
	}
}

func TestReceiptFor(t *testing.T) {
	assert.Equal(t, "rcpt_42_"+"1", receiptFor(42, 1))
	r := receiptFor(1234567890123, 1773500000000)
	assert.True(t, strings.HasPrefix(r, "rcpt_67890123_"))
	assert.LessOrEqual(t, len(r), 40)
}

func TestCreateDepositOrder(t *testing.T) {
	ctx := context.Background()

	t.Run("bounds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWalletFixture(ctrl)

		_, err := f.uc.CreateDepositOrder(ctx, 1, 99)
		require.True(t, domain.HasCode(err, domain.ErrCodeInvalidAmount))
		assert.Equal(t, "Minimum deposit amount is ₹100", err.Error())

		_, err = f.uc.CreateDepositOrder(ctx, 1, 50001)
		require.True(t, domain.HasCode(err, domain.ErrCodeInvalidAmount))
		assert.Equal(t, "Maximum deposit amount is ₹50,000", err.Error())
	})

	t.Run("creates_order_in_paise", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWalletFixture(ctrl)

		f.gateway.EXPECT().CreateOrder(ctx, int64(50000), "INR", gomock.Any(), map[string]string{"userId": "1", "purpose": "wallet_recharge"}).
			Return(&domain.GatewayOrder{ID: "order_1", Amount: 50000, Currency: "INR"}, nil)
		f.paymentRepo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, p *domain.PaymentHistory) error {
			assert.Equal(t, "order_1", p.OrderID)
			assert.Equal(t, int64(500), p.Amount)
			assert.Equal(t, domain.PaymentStatusPending, p.Status)
			assert.True(t, strings.HasPrefix(p.Receipt, "rcpt_1_"))
			return nil
		})
		f.gateway.EXPECT().KeyID().Return("rzp_test_key")

		order, err := f.uc.CreateDepositOrder(ctx, 1, 500)
		require.NoError(t, err)
		assert.Equal(t, &domain.DepositOrder{OrderID: "order_1", Amount: 50000, Currency: "INR", Key: "rzp_test_key"}, order)
	})

	t.Run("gateway_rejection_is_400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWalletFixture(ctrl)

		f.gateway.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, &domain.PaymentGatewayError{StatusCode: 400, Code: "BAD_REQUEST_ERROR", Description: "Authentication failed"})

		_, err := f.uc.CreateDepositOrder(ctx, 1, 500)
		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusBadRequest, appErr.HTTPStatus)
		assert.Equal(t, "Authentication failed", appErr.Message)
	})

	t.Run("gateway_outage_is_opaque", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWalletFixture(ctrl)

		f.gateway.EXPECT().CreateOrder(ctx, gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(nil, errors.New("dial tcp: timeout"))

		_, err := f.uc.CreateDepositOrder(ctx, 1, 500)
		appErr, ok := domain.IsAppError(err)
		require.True(t, ok)
		assert.Equal(t, http.StatusInternalServerError, appErr.HTTPStatus)
		assert.Equal(t, domain.ErrCodeExternalService, appErr.Code)
	})
}

func TestVerifyDeposit(t *testing.T) {
	ctx := context.Background()

	t.Run("credits_deposit_balance", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWalletFixture(ctrl)

		user := &domain.User{ID: 1, TotalEarnings: 20, BonusBalance: 20}
		payment := &domain.PaymentHistory{ID: 4, UserID: 1, OrderID: "order_1", Amount: 500, Status: domain.PaymentStatusPending}

		f.gateway.EXPECT().VerifySignature("order_1", "pay_1", "sig").Return(true)
		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(user, nil)
		f.paymentRepo.EXPECT().GetByOrderIDForUpdate(ctx, "order_1", int64(1)).Return(payment, nil)
		f.paymentRepo.EXPECT().Update(ctx, payment).Return(nil)
		f.userRepo.EXPECT().Update(ctx, user).Return(nil)

		res, err := f.uc.VerifyDeposit(ctx, 1, "order_1", "pay_1", "sig")
		require.NoError(t, err)
		assert.Equal(t, int64(500), res.Amount)
		assert.Equal(t, int64(520), res.User.TotalEarnings)
		assert.Equal(t, int64(500), res.User.DepositBalance)
		assert.Equal(t, domain.PaymentStatusCompleted, payment.Status)
		assert.Equal(t, "pay_1", *payment.PaymentID)
		assert.Zero(t, user.LedgerDrift())
	})

	t.Run("bad_signature", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWalletFixture(ctrl)

		f.gateway.EXPECT().VerifySignature("order_1", "pay_1", "forged").Return(false)

		_, err := f.uc.VerifyDeposit(ctx, 1, "order_1", "pay_1", "forged")
		assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidSignature))
	})

	t.Run("second_verification_rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWalletFixture(ctrl)

		f.gateway.EXPECT().VerifySignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		f.paymentRepo.EXPECT().GetByOrderIDForUpdate(ctx, "order_1", int64(1)).
			Return(&domain.PaymentHistory{OrderID: "order_1", Status: domain.PaymentStatusCompleted}, nil)

		_, err := f.uc.VerifyDeposit(ctx, 1, "order_1", "pay_1", "sig")
		assert.True(t, domain.HasCode(err, domain.ErrCodePaymentAlreadyCompleted))
	})

	t.Run("unknown_order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		f := newWalletFixture(ctrl)

		f.gateway.EXPECT().VerifySignature(gomock.Any(), gomock.Any(), gomock.Any()).Return(true)
		f.userRepo.EXPECT().GetByIDForUpdate(ctx, int64(1)).Return(&domain.User{ID: 1}, nil)
		f.paymentRepo.EXPECT().GetByOrderIDForUpdate(ctx, "order_x", int64(1)).Return(nil, nil)

		_, err := f.uc.VerifyDeposit(ctx, 1, "order_x", "pay_1", "sig")
		assert.True(t, domain.HasCode(err, domain.ErrCodePaymentNotFound))
	})
}

func TestPaymentHistory(t *testing.T) {
	ctx := context.Background()
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	f := newWalletFixture(ctrl)

	f.paymentRepo.EXPECT().ListByUser(ctx, int64(1), 10, 0).Return([]*domain.PaymentHistory{{ID: 1}}, int64(1), nil)
	payments, pagination, err := f.uc.PaymentHistory(ctx, 1, domain.PageRequest{Page: 1, Limit: 10})
	require.NoError(t, err)
	assert.Len(t, payments, 1)
	assert.Equal(t, 1, pagination.Pages)
}

func ptr(t time.Time) *time.Time {
	return &t
}
