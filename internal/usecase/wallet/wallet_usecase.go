package wallet

import (
	"context"
	"time"

	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/saradorri/rewardwallet/internal/usecase"
	"go.uber.org/zap"
)

// RecentGamesLimit is the number of games shown on the profile
const RecentGamesLimit = 10

// WalletUseCase implements domain.WalletUseCase
type WalletUseCase struct {
	userRepo    domain.UserRepository
	gameRepo    domain.GameHistoryRepository
	paymentRepo domain.PaymentRepository
	gateway     domain.PaymentGateway
	mutator     *usecase.UserMutator
	currency    string
	location    *time.Location
	logger      *logger.Logger
	now         func() time.Time
}

// NewWalletUseCase creates a new wallet usecase. Calendar days are evaluated in location.
func NewWalletUseCase(
	userRepo domain.UserRepository,
	gameRepo domain.GameHistoryRepository,
	paymentRepo domain.PaymentRepository,
	gateway domain.PaymentGateway,
	mutator *usecase.UserMutator,
	currency string,
	location *time.Location,
	logger *logger.Logger,
) domain.WalletUseCase {
	if location == nil {
		location = time.Local
	}
	logger.Info("WalletUseCase initialized successfully",
		zap.String("currency", currency),
		zap.String("location", location.String()))
	return &WalletUseCase{
		userRepo:    userRepo,
		gameRepo:    gameRepo,
		paymentRepo: paymentRepo,
		gateway:     gateway,
		mutator:     mutator,
		currency:    currency,
		location:    location,
		logger:      logger,
		now:         time.Now,
	}
}

// Profile returns the user with their latest games
func (uc *WalletUseCase) Profile(ctx context.Context, userID int64) (*domain.Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to get user", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.NewDatabaseError("get user", err)
	}
	if user == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User")
	}

	games, _, err := uc.gameRepo.ListByUser(ctx, userID, RecentGamesLimit, 0)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list recent games", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.NewDatabaseError("list recent games", err)
	}

	return &domain.Profile{User: user, RecentGames: games}, nil
}
