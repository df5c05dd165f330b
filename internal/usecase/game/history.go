package game

import (
	"context"

	"github.com/saradorri/rewardwallet/internal/domain"
	"go.uber.org/zap"
)

// GameHistory returns one page of the user's number-guess plays
func (uc *GameUseCase) GameHistory(ctx context.Context, userID int64, page domain.PageRequest) ([]*domain.GameHistory, domain.Pagination, error) {
	games, total, err := uc.gameRepo.ListByUser(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list game history", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.Pagination{}, domain.NewDatabaseError("list game history", err)
	}
	return games, domain.NewPagination(page.Page, page.Limit, total), nil
}

// GameStats aggregates the user's plays per mode
func (uc *GameUseCase) GameStats(ctx context.Context, userID int64) ([]*domain.GameModeStats, error) {
	stats, err := uc.gameRepo.StatsByMode(ctx, userID)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to aggregate game stats", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.NewDatabaseError("game stats", err)
	}
	return stats, nil
}

// SpinHistory returns the user's latest spins
func (uc *GameUseCase) SpinHistory(ctx context.Context, userID int64) ([]*domain.SpinHistory, error) {
	spins, err := uc.spinRepo.ListByUser(ctx, userID, SpinHistoryLimit)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list spin history", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.NewDatabaseError("list spin history", err)
	}
	return spins, nil
}
