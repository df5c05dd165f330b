package domain

import (
	"context"
	"time"
)

// GameMode represents a number-guess difficulty
type GameMode string

const (
	GameModeEasy   GameMode = "easy"
	GameModeMedium GameMode = "medium"
	GameModeHard   GameMode = "hard"
)

// GameModeConfig holds the fixed parameters of one mode
type GameModeConfig struct {
	Range            int   `json:"range"`
	PayoutMultiplier int64 `json:"payoutMultiplier"`
	Cost             int64 `json:"cost"`
}

// GameModes is the fixed number-guess table
var GameModes = map[GameMode]GameModeConfig{
	GameModeEasy:   {Range: 10, PayoutMultiplier: 8, Cost: 10},
	GameModeMedium: {Range: 50, PayoutMultiplier: 25, Cost: 25},
	GameModeHard:   {Range: 100, PayoutMultiplier: 50, Cost: 50},
}

// GameHistory is the immutable record of one number-guess play
type GameHistory struct {
	ID            int64     `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        int64     `json:"userId" gorm:"not null;index"`
	GameMode      GameMode  `json:"gameMode" gorm:"type:varchar(10);not null"`
	UserGuess     int       `json:"userGuess" gorm:"not null"`
	CorrectNumber int       `json:"correctNumber" gorm:"not null"`
	AmountWon     int64     `json:"amountWon" gorm:"type:bigint;not null"`
	GameCost      int64     `json:"gameCost" gorm:"type:bigint;not null"`
	IsWinner      bool      `json:"isWinner" gorm:"not null"`
	FinalBalance  int64     `json:"finalBalance" gorm:"type:bigint;not null"`
	CreatedAt     time.Time `json:"createdAt" gorm:"not null;index"`
}

// TableName specifies the table name for GameHistory
func (GameHistory) TableName() string {
	return "game_histories"
}

// GameModeStats aggregates a user's plays of one mode
type GameModeStats struct {
	Mode          GameMode `json:"mode" gorm:"column:game_mode"`
	TotalGames    int64    `json:"totalGames" gorm:"column:total_games"`
	TotalWins     int64    `json:"totalWins" gorm:"column:total_wins"`
	TotalWinnings int64    `json:"totalWinnings" gorm:"column:total_winnings"`
	TotalCost     int64    `json:"totalCost" gorm:"column:total_cost"`
}

// GameHistoryRepository defines the interface for number-guess history
type GameHistoryRepository interface {
	Create(ctx context.Context, history *GameHistory) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*GameHistory, int64, error)
	StatsByMode(ctx context.Context, userID int64) ([]*GameModeStats, error)
}

// SpinReward is one slot of the wheel
type SpinReward string

const (
	RewardNoWin      SpinReward = "Better luck next time"
	RewardTen        SpinReward = "₹10"
	RewardFifty      SpinReward = "₹50"
	RewardMultiplier SpinReward = "2X"
)

// SpinRewards lists the wheel segments in display order
var SpinRewards = []SpinReward{RewardNoWin, RewardTen, RewardFifty, RewardMultiplier}

// SpinHistory is the immutable record of one spin
type SpinHistory struct {
	ID           int64      `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID       int64      `json:"userId" gorm:"not null;index"`
	RewardType   SpinReward `json:"rewardType" gorm:"type:varchar(32);not null"`
	AmountWon    int64      `json:"amountWon" gorm:"type:bigint;not null"`
	WasFreeSpin  bool       `json:"wasFreeSpin" gorm:"not null"`
	SpinCost     int64      `json:"spinCost" gorm:"type:bigint;not null"`
	FinalBalance int64      `json:"finalBalance" gorm:"type:bigint;not null"`
	CreatedAt    time.Time  `json:"createdAt" gorm:"not null;index"`
}

// TableName specifies the table name for SpinHistory
func (SpinHistory) TableName() string {
	return "spin_histories"
}

// RecentWinner is a public view of a large spin win
type RecentWinner struct {
	UserName    string    `json:"userName"`
	AmountWon   int64     `json:"amountWon"`
	WasFreeSpin bool      `json:"wasFreeSpin"`
	CreatedAt   time.Time `json:"createdAt"`
}

// SpinHistoryRepository defines the interface for spin history
type SpinHistoryRepository interface {
	Create(ctx context.Context, history *SpinHistory) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]*SpinHistory, error)
	RecentWinners(ctx context.Context, minAmount int64, limit int) ([]*RecentWinner, error)
}
