package domain

import (
	"context"
	"time"
)

// TxManager runs fn inside one database transaction carried by ctx
type TxManager interface {
	WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// UserLocker serializes balance mutations of one user
type UserLocker interface {
	Lock(ctx context.Context, userID int64) error
	Unlock(userID int64)
}

// OTPSender delivers a one-time passcode
type OTPSender interface {
	SendOTP(ctx context.Context, email, name, code string) error
}

// OTPHasher one-way hashes OTPs at rest
type OTPHasher interface {
	Hash(code string) (string, error)
	Verify(hash, code string) bool
}

// TokenIssuer mints session tokens
type TokenIssuer interface {
	GenerateToken(userID int64, email string) (string, error)
}

// RandomSource draws game outcomes
type RandomSource interface {
	// IntN returns a uniform int in [0, n)
	IntN(n int) int
	// Float64 returns a uniform float in [0, 1)
	Float64() float64
}

// RateLimiter counts hits of key in a fixed window
type RateLimiter interface {
	Allow(ctx context.Context, key string, limit int, window time.Duration) (bool, error)
}
