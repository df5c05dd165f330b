package leaderboard

import (
	"context"

	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	// TopEarnersLimit is the size of the earnings board
	TopEarnersLimit = 10
	// RecentWinnersLimit is the size of the recent winners feed
	RecentWinnersLimit = 10
	// RecentWinnerMinAmount is the smallest spin win shown in the feed
	RecentWinnerMinAmount = 150
)

// LeaderboardUseCase implements domain.LeaderboardUseCase
type LeaderboardUseCase struct {
	userRepo domain.UserRepository
	spinRepo domain.SpinHistoryRepository
	logger   *logger.Logger
}

// NewLeaderboardUseCase creates a new leaderboard usecase
func NewLeaderboardUseCase(userRepo domain.UserRepository, spinRepo domain.SpinHistoryRepository, logger *logger.Logger) domain.LeaderboardUseCase {
	logger.Info("LeaderboardUseCase initialized successfully")
	return &LeaderboardUseCase{
		userRepo: userRepo,
		spinRepo: spinRepo,
		logger:   logger,
	}
}

// TopEarners ranks verified users by total earnings, starting at 1
func (uc *LeaderboardUseCase) TopEarners(ctx context.Context) ([]*domain.LeaderboardEntry, error) {
	users, err := uc.userRepo.TopEarners(ctx, TopEarnersLimit)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to load top earners", zap.Error(err))
		return nil, domain.NewDatabaseError("top earners", err)
	}

	entries := make([]*domain.LeaderboardEntry, 0, len(users))
	for i, u := range users {
		entries = append(entries, &domain.LeaderboardEntry{
			Rank:          i + 1,
			Name:          u.Name,
			TotalEarnings: u.TotalEarnings,
			BonusBalance:  u.BonusBalance,
			Joined:        u.CreatedAt,
		})
	}
	return entries, nil
}

func (uc *LeaderboardUseCase) RecentWinners(ctx context.Context) ([]*domain.RecentWinner, error) {
	winners, err := uc.spinRepo.RecentWinners(ctx, RecentWinnerMinAmount, RecentWinnersLimit)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to load recent winners", zap.Error(err))
		return nil, domain.NewDatabaseError("recent winners", err)
	}
	if winners == nil {
		winners = []*domain.RecentWinner{}
	}
	return winners, nil
}
