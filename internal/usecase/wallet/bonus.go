package wallet

import (
	"context"
	"time"

	"github.com/saradorri/rewardwallet/internal/domain"
	"go.uber.org/zap"
)

// ClaimBonus credits the one-time bonus while the bonus balance is empty
func (uc *WalletUseCase) ClaimBonus(ctx context.Context, userID int64) (*domain.BonusResult, error) {
	log := uc.logger.WithContext(ctx)

	var result *domain.BonusResult
	err := uc.mutator.Mutate(ctx, userID, func(ctx context.Context, user *domain.User) error {
		if user.BonusBalance > 0 {
			return domain.NewBusinessError(domain.ErrCodeBonusAlreadyClaimed, "Bonus already claimed")
		}
		user.ApplyEarnings(domain.ClaimBonus, domain.CategoryBonus)
		result = &domain.BonusResult{Amount: domain.ClaimBonus, NewBalance: user.TotalEarnings}
		return nil
	})
	if err != nil {
		log.Warn("Claim bonus failed", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	log.Info("Bonus claimed", zap.Int64("user_id", userID), zap.Int64("new_balance", result.NewBalance))
	return result, nil
}

// ClaimDailyBonus credits the daily bonus once per calendar day
func (uc *WalletUseCase) ClaimDailyBonus(ctx context.Context, userID int64) (*domain.BonusResult, error) {
	log := uc.logger.WithContext(ctx)

	var result *domain.BonusResult
	err := uc.mutator.Mutate(ctx, userID, func(ctx context.Context, user *domain.User) error {
		now := uc.now()
		if user.LastDailyBonus != nil && sameDay(*user.LastDailyBonus, now, uc.location) {
			return domain.NewBusinessError(domain.ErrCodeBonusAlreadyClaimed, "Daily bonus already claimed today")
		}
		user.ApplyEarnings(domain.DailyBonus, domain.CategoryBonus)
		user.LastDailyBonus = &now
		result = &domain.BonusResult{Amount: domain.DailyBonus, NewBalance: user.TotalEarnings}
		return nil
	})
	if err != nil {
		log.Warn("Daily bonus failed", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	log.Info("Daily bonus claimed", zap.Int64("user_id", userID), zap.Int64("new_balance", result.NewBalance))
	return result, nil
}

func sameDay(a, b time.Time, loc *time.Location) bool {
	ay, am, ad := a.In(loc).Date()
	by, bm, bd := b.In(loc).Date()
	return ay == by && am == bm && ad == bd
}
