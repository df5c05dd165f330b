package game

import (
	"fmt"

	"github.com/saradorri/rewardwallet/internal/domain"
)

// Spin wheel parameters
const (
	SpinPrice        int64 = 50
	MultiplierFactor int64 = 2
)

type wheelSegment struct {
	upperBound float64
	reward     domain.SpinReward
	cash       int64
}

// wheel holds cumulative probability bounds over one uniform [0,1) sample
var wheel = []wheelSegment{
	{upperBound: 0.30, reward: domain.RewardNoWin},
	{upperBound: 0.70, reward: domain.RewardTen, cash: 10},
	{upperBound: 0.95, reward: domain.RewardFifty, cash: 50},
	{upperBound: 1.00, reward: domain.RewardMultiplier},
}

// ResolveSpin maps a sample in [0,1) to its wheel segment
func ResolveSpin(sample float64) (index int, reward domain.SpinReward, cash int64) {
	for i, seg := range wheel {
		if sample < seg.upperBound {
			return i, seg.reward, seg.cash
		}
	}
	last := len(wheel) - 1
	return last, wheel[last].reward, wheel[last].cash
}

// ValidateGuess checks mode and guess before any balance is touched
func ValidateGuess(mode domain.GameMode, guess int) (domain.GameModeConfig, error) {
	cfg, ok := domain.GameModes[mode]
	if !ok {
		return domain.GameModeConfig{}, domain.NewValidationError(domain.ErrCodeInvalidMode, "Invalid game mode. Choose easy, medium or hard.")
	}
	if guess < 1 || guess > cfg.Range {
		return domain.GameModeConfig{}, domain.NewValidationError(domain.ErrCodeGuessOutOfRange,
			fmt.Sprintf("Please guess a number between 1 and %d", cfg.Range))
	}
	return cfg, nil
}

// PlayGuess settles one number-guess play on user. correct is the drawn number.
func PlayGuess(user *domain.User, mode domain.GameMode, cfg domain.GameModeConfig, guess, correct int) (*domain.GuessOutcome, error) {
	if user.TotalEarnings < cfg.Cost {
		return nil, domain.NewBusinessError(domain.ErrCodeInsufficientBalance,
			fmt.Sprintf("Insufficient balance. You need at least ₹%d to play %s mode.", cfg.Cost, mode))
	}

	user.ApplyEarnings(-cfg.Cost, domain.CategoryStake)

	outcome := &domain.GuessOutcome{
		UserGuess:        guess,
		CorrectNumber:    correct,
		IsWinner:         guess == correct,
		GameCost:         cfg.Cost,
		PayoutMultiplier: cfg.PayoutMultiplier,
		Mode:             mode,
	}
	if outcome.IsWinner {
		outcome.AmountWon = cfg.Cost * cfg.PayoutMultiplier
		user.ApplyEarnings(outcome.AmountWon, domain.CategoryWinning)
	}
	outcome.NewBalance = user.TotalEarnings
	return outcome, nil
}

// PlaySpin settles one spin on user for the given sample.
// A pending multiplier is consumed only by a cash prize.
func PlaySpin(user *domain.User, sample float64) (*domain.SpinOutcome, error) {
	free := user.HasFreeSpin
	outcome := &domain.SpinOutcome{WasFreeSpin: free}

	if !free {
		if user.TotalEarnings < SpinPrice {
			return nil, domain.NewBusinessError(domain.ErrCodeInsufficientBalance,
				fmt.Sprintf("Insufficient balance. You need at least ₹%d to spin.", SpinPrice))
		}
		user.ApplyEarnings(-SpinPrice, domain.CategoryStake)
		outcome.SpinCost = SpinPrice
	}

	index, reward, cash := ResolveSpin(sample)
	outcome.SegmentIndex = index
	outcome.Reward = reward

	switch {
	case reward == domain.RewardMultiplier:
		user.HasMultiplier = true
		user.MultiplierValue = MultiplierFactor
		outcome.MultiplierWon = true
	case cash > 0:
		amount := cash
		if user.MultiplierActive() {
			amount *= user.MultiplierValue
			user.HasMultiplier = false
			user.MultiplierValue = 1
		}
		user.ApplyEarnings(amount, domain.CategoryWinning)
		outcome.AmountWon = amount
	}

	user.HasFreeSpin = false
	outcome.NewBalance = user.TotalEarnings
	outcome.MultiplierActive = user.MultiplierActive()
	outcome.MultiplierValue = user.MultiplierValue
	return outcome, nil
}
