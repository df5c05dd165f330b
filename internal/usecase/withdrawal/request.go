package withdrawal

import (
	"context"
	"fmt"
	"strings"

	"github.com/saradorri/rewardwallet/internal/domain"
	"go.uber.org/zap"
)

func validateRequest(amount int64, bank domain.BankDetails) error {
	if amount < domain.MinWithdrawal {
		return domain.NewValidationError(domain.ErrCodeInvalidAmount, "Minimum withdrawal amount is ₹100")
	}
	if amount > domain.MaxWithdrawal {
		return domain.NewValidationError(domain.ErrCodeInvalidAmount, "Maximum withdrawal amount is ₹50,000 per day")
	}
	if strings.TrimSpace(bank.AccountHolderName) == "" ||
		strings.TrimSpace(bank.AccountNumber) == "" ||
		strings.TrimSpace(bank.IFSCCode) == "" {
		return domain.NewValidationError(domain.ErrCodeRequiredField, "All bank details are required")
	}
	return nil
}

// RequestWithdrawal holds amount from the winning balance and files a pending request.
// Pending and approved requests of the current local day count against the daily limit.
func (uc *WithdrawalUseCase) RequestWithdrawal(ctx context.Context, userID int64, amount int64, bank domain.BankDetails) (*domain.WithdrawalResult, error) {
	log := uc.logger.WithContext(ctx)
	log.Info("Starting withdrawal request", zap.Int64("user_id", userID), zap.Int64("amount", amount))

	if err := validateRequest(amount, bank); err != nil {
		return nil, err
	}

	var result *domain.WithdrawalResult
	err := uc.mutator.Mutate(ctx, userID, func(ctx context.Context, user *domain.User) error {
		if user.WithdrawableBalance() < amount {
			return domain.NewBusinessError(domain.ErrCodeInsufficientWinningBalance,
				"Insufficient winning balance. You can only withdraw from your winnings.")
		}

		now := uc.now()
		from, to := dayWindow(now, uc.location)
		used, err := uc.withdrawalRepo.SumAmountInWindow(ctx, userID, from, to, domain.DailyQuotaStatuses)
		if err != nil {
			return domain.NewDatabaseError("sum daily withdrawals", err)
		}
		if used+amount > domain.DailyWithdrawalLimit {
			remaining := domain.DailyWithdrawalLimit - used
			if remaining < 0 {
				remaining = 0
			}
			return domain.NewBusinessError(domain.ErrCodeDailyLimitExceeded,
				fmt.Sprintf("Daily withdrawal limit exceeded. You can withdraw ₹%d more today.", remaining))
		}

		request := &domain.WithdrawalRequest{
			UserID:      userID,
			Amount:      amount,
			BankDetails: bank,
			Status:      domain.WithdrawalStatusPending,
			CreatedAt:   now,
		}
		if err := uc.withdrawalRepo.Create(ctx, request); err != nil {
			return domain.NewDatabaseError("create withdrawal", err)
		}

		user.ApplyEarnings(-amount, domain.CategoryWinning)
		result = &domain.WithdrawalResult{Request: request, NewWinningBalance: user.WinningBalance}
		return nil
	})
	if err != nil {
		log.Warn("Withdrawal request rejected", zap.Int64("user_id", userID), zap.Int64("amount", amount), zap.Error(err))
		return nil, err
	}

	log.Info("Withdrawal requested",
		zap.Int64("user_id", userID),
		zap.Int64("request_id", result.Request.ID),
		zap.Int64("new_winning_balance", result.NewWinningBalance))
	return result, nil
}
