package game

import (
	"context"
	"time"

	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/saradorri/rewardwallet/internal/usecase"
	"go.uber.org/zap"
)

// SpinHistoryLimit is the number of spins returned by SpinHistory
const SpinHistoryLimit = 20

// GameUseCase implements domain.GameUseCase
type GameUseCase struct {
	mutator  *usecase.UserMutator
	gameRepo domain.GameHistoryRepository
	spinRepo domain.SpinHistoryRepository
	random   domain.RandomSource
	logger   *logger.Logger
	now      func() time.Time
}

// NewGameUseCase creates a new game usecase
func NewGameUseCase(
	mutator *usecase.UserMutator,
	gameRepo domain.GameHistoryRepository,
	spinRepo domain.SpinHistoryRepository,
	random domain.RandomSource,
	logger *logger.Logger,
) domain.GameUseCase {
	logger.Info("GameUseCase initialized successfully")
	return &GameUseCase{
		mutator:  mutator,
		gameRepo: gameRepo,
		spinRepo: spinRepo,
		random:   random,
		logger:   logger,
		now:      time.Now,
	}
}

// PlayNumberGuess plays one round of the number-guess game
func (uc *GameUseCase) PlayNumberGuess(ctx context.Context, userID int64, mode domain.GameMode, guess int) (*domain.GuessOutcome, error) {
	log := uc.logger.WithContext(ctx)
	log.Info("Starting number guess",
		zap.Int64("user_id", userID),
		zap.String("mode", string(mode)),
		zap.Int("guess", guess))

	cfg, err := ValidateGuess(mode, guess)
	if err != nil {
		return nil, err
	}

	var outcome *domain.GuessOutcome
	err = uc.mutator.Mutate(ctx, userID, func(ctx context.Context, user *domain.User) error {
		correct := uc.random.IntN(cfg.Range) + 1
		res, err := PlayGuess(user, mode, cfg, guess, correct)
		if err != nil {
			return err
		}

		now := uc.now()
		user.LastPlayedAt = &now

		history := &domain.GameHistory{
			UserID:        user.ID,
			GameMode:      mode,
			UserGuess:     guess,
			CorrectNumber: correct,
			AmountWon:     res.AmountWon,
			GameCost:      res.GameCost,
			IsWinner:      res.IsWinner,
			FinalBalance:  res.NewBalance,
			CreatedAt:     now,
		}
		if err := uc.gameRepo.Create(ctx, history); err != nil {
			log.Error("Failed to record game history", zap.Int64("user_id", userID), zap.Error(err))
			return domain.NewDatabaseError("create game history", err)
		}

		outcome = res
		return nil
	})
	if err != nil {
		log.Warn("Number guess failed", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	log.Info("Number guess completed",
		zap.Int64("user_id", userID),
		zap.Bool("is_winner", outcome.IsWinner),
		zap.Int64("amount_won", outcome.AmountWon),
		zap.Int64("new_balance", outcome.NewBalance))
	return outcome, nil
}

// Spin spins the wheel once
func (uc *GameUseCase) Spin(ctx context.Context, userID int64) (*domain.SpinOutcome, error) {
	log := uc.logger.WithContext(ctx)
	log.Info("Starting spin", zap.Int64("user_id", userID))

	var outcome *domain.SpinOutcome
	err := uc.mutator.Mutate(ctx, userID, func(ctx context.Context, user *domain.User) error {
		res, err := PlaySpin(user, uc.random.Float64())
		if err != nil {
			return err
		}

		now := uc.now()
		user.LastSpinAt = &now

		history := &domain.SpinHistory{
			UserID:       user.ID,
			RewardType:   res.Reward,
			AmountWon:    res.AmountWon,
			WasFreeSpin:  res.WasFreeSpin,
			SpinCost:     res.SpinCost,
			FinalBalance: res.NewBalance,
			CreatedAt:    now,
		}
		if err := uc.spinRepo.Create(ctx, history); err != nil {
			log.Error("Failed to record spin history", zap.Int64("user_id", userID), zap.Error(err))
			return domain.NewDatabaseError("create spin history", err)
		}

		outcome = res
		return nil
	})
	if err != nil {
		log.Warn("Spin failed", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	log.Info("Spin completed",
		zap.Int64("user_id", userID),
		zap.String("reward", string(outcome.Reward)),
		zap.Int64("amount_won", outcome.AmountWon),
		zap.Bool("free_spin", outcome.WasFreeSpin),
		zap.Bool("multiplier_active", outcome.MultiplierActive))
	return outcome, nil
}
