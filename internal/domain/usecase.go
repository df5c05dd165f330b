package domain

import (
	"context"
	"time"
)

// Pagination describes one page of a listing
type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination builds the pagination block for a listing of total items
func NewPagination(page, limit int, total int64) Pagination {
	pages := 0
	if limit > 0 {
		pages = int((total + int64(limit) - 1) / int64(limit))
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// PageRequest is a 1-based page selection
type PageRequest struct {
	Page  int
	Limit int
}

// Offset returns the number of rows to skip
func (p PageRequest) Offset() int {
	return (p.Page - 1) * p.Limit
}

// OTPDispatch is returned after an OTP was issued
type OTPDispatch struct {
	Email     string    `json:"email"`
	ExpiresAt time.Time `json:"expiresAt"`
	// OTP is only filled when codes are exposed in responses
	OTP string `json:"otp,omitempty"`
}

// AuthResult is returned after a successful OTP verification
type AuthResult struct {
	Token      string
	User       *User
	BonusAdded int64
}

// AuthUseCase is the OTP verification flow
type AuthUseCase interface {
	SendSignupOTP(ctx context.Context, name, email string) (*OTPDispatch, error)
	VerifySignupOTP(ctx context.Context, email, otp string) (*AuthResult, error)
	SendLoginOTP(ctx context.Context, email string) (*OTPDispatch, error)
	VerifyLoginOTP(ctx context.Context, email, otp string) (*AuthResult, error)
}

// GuessOutcome is the result of one number-guess play
type GuessOutcome struct {
	UserGuess        int      `json:"userGuess"`
	CorrectNumber    int      `json:"correctNumber"`
	IsWinner         bool     `json:"isWinner"`
	AmountWon        int64    `json:"amountWon"`
	GameCost         int64    `json:"gameCost"`
	PayoutMultiplier int64    `json:"payoutMultiplier"`
	Mode             GameMode `json:"mode"`
	NewBalance       int64    `json:"-"`
}

// SpinOutcome is the result of one spin
type SpinOutcome struct {
	Reward       SpinReward
	SegmentIndex int
	AmountWon    int64
	WasFreeSpin  bool
	SpinCost     int64
	NewBalance   int64
	// MultiplierWon is set when this spin drew the multiplier
	MultiplierWon    bool
	MultiplierActive bool
	MultiplierValue  int64
}

// GameUseCase plays the games and reads their history
type GameUseCase interface {
	PlayNumberGuess(ctx context.Context, userID int64, mode GameMode, guess int) (*GuessOutcome, error)
	Spin(ctx context.Context, userID int64) (*SpinOutcome, error)
	GameHistory(ctx context.Context, userID int64, page PageRequest) ([]*GameHistory, Pagination, error)
	GameStats(ctx context.Context, userID int64) ([]*GameModeStats, error)
	SpinHistory(ctx context.Context, userID int64) ([]*SpinHistory, error)
}

// Profile is a user with their latest games
type Profile struct {
	User        *User
	RecentGames []*GameHistory
}

// BonusResult is returned by the bonus endpoints
type BonusResult struct {
	Amount     int64
	NewBalance int64
}

// DepositOrder is returned when a deposit order is created
type DepositOrder struct {
	OrderID  string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Key      string `json:"key"`
}

// DepositResult is returned after a deposit was verified and credited
type DepositResult struct {
	Amount int64
	User   *User
}

// WalletUseCase covers the profile, bonuses and deposits
type WalletUseCase interface {
	Profile(ctx context.Context, userID int64) (*Profile, error)
	ClaimBonus(ctx context.Context, userID int64) (*BonusResult, error)
	ClaimDailyBonus(ctx context.Context, userID int64) (*BonusResult, error)
	CreateDepositOrder(ctx context.Context, userID int64, amount int64) (*DepositOrder, error)
	VerifyDeposit(ctx context.Context, userID int64, orderID, paymentID, signature string) (*DepositResult, error)
	PaymentHistory(ctx context.Context, userID int64, page PageRequest) ([]*PaymentHistory, Pagination, error)
}

// WithdrawalResult is returned after a withdrawal request was accepted
type WithdrawalResult struct {
	Request           *WithdrawalRequest
	NewWinningBalance int64
}

// WithdrawalUseCase requests and reviews withdrawals
type WithdrawalUseCase interface {
	RequestWithdrawal(ctx context.Context, userID int64, amount int64, bank BankDetails) (*WithdrawalResult, error)
	History(ctx context.Context, userID int64, page PageRequest) ([]*WithdrawalRequest, Pagination, error)
	ListRequests(ctx context.Context, status WithdrawalStatus, page PageRequest) ([]*WithdrawalRequest, Pagination, error)
	ProcessRequest(ctx context.Context, adminID, requestID int64, status WithdrawalStatus, notes string) (*WithdrawalRequest, error)
}

// LeaderboardEntry is one ranked user
type LeaderboardEntry struct {
	Rank          int       `json:"rank"`
	Name          string    `json:"name"`
	TotalEarnings int64     `json:"totalEarnings"`
	BonusBalance  int64     `json:"bonusBalance"`
	Joined        time.Time `json:"joined"`
}

// LeaderboardUseCase exposes public rankings
type LeaderboardUseCase interface {
	TopEarners(ctx context.Context) ([]*LeaderboardEntry, error)
	RecentWinners(ctx context.Context) ([]*RecentWinner, error)
}
