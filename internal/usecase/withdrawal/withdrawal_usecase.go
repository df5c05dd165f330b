package withdrawal

import (
	"context"
	"time"

	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/saradorri/rewardwallet/internal/usecase"
	"go.uber.org/zap"
)

// WithdrawalUseCase implements domain.WithdrawalUseCase
type WithdrawalUseCase struct {
	withdrawalRepo domain.WithdrawalRepository
	mutator        *usecase.UserMutator
	txManager      domain.TxManager
	location       *time.Location
	logger         *logger.Logger
	now            func() time.Time
}

// NewWithdrawalUseCase creates a new withdrawal usecase. The daily limit resets at midnight in location.
func NewWithdrawalUseCase(
	withdrawalRepo domain.WithdrawalRepository,
	mutator *usecase.UserMutator,
	txManager domain.TxManager,
	location *time.Location,
	logger *logger.Logger,
) domain.WithdrawalUseCase {
	if location == nil {
		location = time.Local
	}
	logger.Info("WithdrawalUseCase initialized successfully",
		zap.Int64("daily_limit", domain.DailyWithdrawalLimit),
		zap.String("location", location.String()))
	return &WithdrawalUseCase{
		withdrawalRepo: withdrawalRepo,
		mutator:        mutator,
		txManager:      txManager,
		location:       location,
		logger:         logger,
		now:            time.Now,
	}
}

// dayWindow returns [local midnight, next local midnight) around t
func dayWindow(t time.Time, loc *time.Location) (time.Time, time.Time) {
	local := t.In(loc)
	start := time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
	return start, start.AddDate(0, 0, 1)
}

// History returns one page of the user's withdrawal requests
func (uc *WithdrawalUseCase) History(ctx context.Context, userID int64, page domain.PageRequest) ([]*domain.WithdrawalRequest, domain.Pagination, error) {
	requests, total, err := uc.withdrawalRepo.ListByUser(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list withdrawals", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.Pagination{}, domain.NewDatabaseError("list withdrawals", err)
	}
	return requests, domain.NewPagination(page.Page, page.Limit, total), nil
}
