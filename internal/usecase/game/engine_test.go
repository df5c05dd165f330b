package game

import (
	"testing"

	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/random"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSpin(t *testing.T) {
	tests := []struct {
		sample float64
		index  int
		reward domain.SpinReward
		cash   int64
	}{
		{0, 0, domain.RewardNoWin, 0},
		{0.2999, 0, domain.RewardNoWin, 0},
		{0.30, 1, domain.RewardTen, 10},
		{0.6999, 1, domain.RewardTen, 10},
		{0.70, 2, domain.RewardFifty, 50},
		{0.9499, 2, domain.RewardFifty, 50},
		{0.95, 3, domain.RewardMultiplier, 0},
		{0.9999, 3, domain.RewardMultiplier, 0},
	}

	for _, tt := range tests {
		index, reward, cash := ResolveSpin(tt.sample)
		assert.Equal(t, tt.index, index, "sample %v", tt.sample)
		assert.Equal(t, tt.reward, reward, "sample %v", tt.sample)
		assert.Equal(t, tt.cash, cash, "sample %v", tt.sample)
		assert.Equal(t, domain.SpinRewards[index], reward)
	}
}

func TestResolveSpin_Frequencies(t *testing.T) {
	const draws = 200000
	src := random.NewSource()
	counts := make([]int, len(domain.SpinRewards))
	for i := 0; i < draws; i++ {
		index, _, _ := ResolveSpin(src.Float64())
		counts[index]++
	}

	expected := []float64{0.30, 0.40, 0.25, 0.05}
	for i, want := range expected {
		got := float64(counts[i]) / draws
		assert.InDelta(t, want, got, 0.01, "segment %d", i)
	}
}

func TestValidateGuess(t *testing.T) {
	_, err := ValidateGuess("impossible", 3)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInvalidMode))

	_, err = ValidateGuess(domain.GameModeEasy, 11)
	require.True(t, domain.HasCode(err, domain.ErrCodeGuessOutOfRange))
	assert.Contains(t, err.Error(), "between 1 and 10")

	_, err = ValidateGuess(domain.GameModeHard, 0)
	assert.True(t, domain.HasCode(err, domain.ErrCodeGuessOutOfRange))

	cfg, err := ValidateGuess(domain.GameModeMedium, 50)
	require.NoError(t, err)
	assert.Equal(t, int64(25), cfg.Cost)
}

func TestPlayGuess(t *testing.T) {
	tests := []struct {
		name    string
		mode    domain.GameMode
		guess   int
		correct int
		start   int64
		won     int64
	}{
		{"easy_win", domain.GameModeEasy, 4, 4, 100, 80},
		{"easy_loss", domain.GameModeEasy, 4, 5, 100, 0},
		{"medium_win", domain.GameModeMedium, 17, 17, 25, 625},
		{"hard_win", domain.GameModeHard, 99, 99, 60, 2500},
		{"hard_loss", domain.GameModeHard, 99, 1, 60, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := domain.GameModes[tt.mode]
			user := &domain.User{}
			user.ApplyEarnings(tt.start, domain.CategoryDeposit)

			outcome, err := PlayGuess(user, tt.mode, cfg, tt.guess, tt.correct)
			require.NoError(t, err)

			assert.Equal(t, tt.won, outcome.AmountWon)
			assert.Equal(t, tt.won > 0, outcome.IsWinner)
			assert.Equal(t, tt.start-cfg.Cost+tt.won, outcome.NewBalance)
			assert.Equal(t, outcome.NewBalance, user.TotalEarnings)
			assert.Equal(t, tt.won, user.WinningBalance)
			assert.Equal(t, -cfg.Cost, user.LedgerDrift())
		})
	}
}

func TestPlayGuess_InsufficientBalance(t *testing.T) {
	user := &domain.User{TotalEarnings: 49, BonusBalance: 49}
	_, err := PlayGuess(user, domain.GameModeHard, domain.GameModes[domain.GameModeHard], 5, 5)
	assert.True(t, domain.HasCode(err, domain.ErrCodeInsufficientBalance))
	assert.Equal(t, int64(49), user.TotalEarnings)
}

func TestPlaySpin(t *testing.T) {
	const (
		noWin      = 0.1
		ten        = 0.5
		fifty      = 0.8
		multiplier = 0.97
	)

	t.Run("free_spin_costs_nothing", func(t *testing.T) {
		user := domain.NewPendingUser("Asha", "asha@example.com", "", fixedNow)
		outcome, err := PlaySpin(user, ten)
		require.NoError(t, err)
		assert.True(t, outcome.WasFreeSpin)
		assert.Zero(t, outcome.SpinCost)
		assert.Equal(t, int64(10), outcome.AmountWon)
		assert.False(t, user.HasFreeSpin)
		assert.Equal(t, int64(10), user.WinningBalance)
		assert.Zero(t, user.LedgerDrift())
	})

	t.Run("paid_spin_needs_fifty", func(t *testing.T) {
		user := &domain.User{TotalEarnings: 49, BonusBalance: 49, MultiplierValue: 1}
		_, err := PlaySpin(user, ten)
		require.True(t, domain.HasCode(err, domain.ErrCodeInsufficientBalance))
		assert.Contains(t, err.Error(), "₹50")
		assert.Equal(t, int64(49), user.TotalEarnings)
	})

	t.Run("paid_spin_deducts_stake", func(t *testing.T) {
		user := &domain.User{TotalEarnings: 50, BonusBalance: 50, MultiplierValue: 1}
		outcome, err := PlaySpin(user, noWin)
		require.NoError(t, err)
		assert.Equal(t, SpinPrice, outcome.SpinCost)
		assert.Zero(t, outcome.NewBalance)
		assert.Equal(t, -SpinPrice, user.LedgerDrift())
	})

	t.Run("multiplier_applies_to_next_cash_prize", func(t *testing.T) {
		user := &domain.User{TotalEarnings: 500, DepositBalance: 500, MultiplierValue: 1}

		outcome, err := PlaySpin(user, multiplier)
		require.NoError(t, err)
		assert.True(t, outcome.MultiplierWon)
		assert.True(t, outcome.MultiplierActive)
		assert.Equal(t, int64(2), outcome.MultiplierValue)
		assert.Zero(t, outcome.AmountWon)

		outcome, err = PlaySpin(user, ten)
		require.NoError(t, err)
		assert.Equal(t, int64(20), outcome.AmountWon)
		assert.False(t, user.HasMultiplier)
		assert.Equal(t, int64(1), user.MultiplierValue)
		assert.False(t, outcome.MultiplierActive)
	})

	t.Run("multiplier_survives_no_win_and_repeat", func(t *testing.T) {
		user := &domain.User{TotalEarnings: 500, DepositBalance: 500, MultiplierValue: 1}

		_, err := PlaySpin(user, multiplier)
		require.NoError(t, err)

		outcome, err := PlaySpin(user, noWin)
		require.NoError(t, err)
		assert.Zero(t, outcome.AmountWon)
		assert.True(t, outcome.MultiplierActive)

		outcome, err = PlaySpin(user, multiplier)
		require.NoError(t, err)
		assert.Equal(t, int64(2), user.MultiplierValue)

		outcome, err = PlaySpin(user, fifty)
		require.NoError(t, err)
		assert.Equal(t, int64(100), outcome.AmountWon)
		assert.False(t, user.MultiplierActive())
	})

	t.Run("only_stakes_move_drift", func(t *testing.T) {
		src := random.NewSource()
		user := &domain.User{MultiplierValue: 1, HasFreeSpin: true}
		user.ApplyEarnings(100000, domain.CategoryDeposit)

		var staked int64
		for i := 0; i < 500; i++ {
			outcome, err := PlaySpin(user, src.Float64())
			require.NoError(t, err)
			staked += outcome.SpinCost
		}
		assert.Equal(t, -staked, user.LedgerDrift())
	})
}
