package domain

import (
	"context"
	"time"
)

// Reward constants shared by the bonus flows
const (
	SignupBonus  int64 = 20
	ClaimBonus   int64 = 20
	DailyBonus   int64 = 25
	OTPLength          = 6
	NameMinChars       = 2
	NameMaxChars       = 50
)

// User represents a player and owns all of its balances
type User struct {
	ID         int64  `json:"id" gorm:"primaryKey;column:id;type:bigint;autoIncrement"`
	Name       string `json:"name" gorm:"type:varchar(50);not null"`
	Email      string `json:"email" gorm:"uniqueIndex;type:varchar(255);not null"`
	IsVerified bool   `json:"isVerified" gorm:"not null"`
	IsAdmin    bool   `json:"-" gorm:"not null"`

	OTPHash      *string    `json:"-" gorm:"column:otp_hash;type:varchar(128)"`
	OTPExpiresAt *time.Time `json:"-" gorm:"column:otp_expires_at"`

	TotalEarnings  int64 `json:"totalEarnings" gorm:"type:bigint;not null"`
	BonusBalance   int64 `json:"bonusBalance" gorm:"type:bigint;not null"`
	DepositBalance int64 `json:"depositBalance" gorm:"type:bigint;not null"`
	WinningBalance int64 `json:"winningBalance" gorm:"type:bigint;not null"`

	HasFreeSpin     bool  `json:"hasFreeSpin" gorm:"not null"`
	HasMultiplier   bool  `json:"hasMultiplier" gorm:"not null"`
	MultiplierValue int64 `json:"multiplierValue" gorm:"type:bigint;not null"`

	LastSpinAt     *time.Time `json:"lastSpinAt,omitempty"`
	LastPlayedAt   *time.Time `json:"lastPlayedAt,omitempty"`
	LastDailyBonus *time.Time `json:"lastDailyBonus,omitempty"`
	CreatedAt      time.Time  `json:"createdAt" gorm:"not null"`
	UpdatedAt      time.Time  `json:"updatedAt" gorm:"not null"`
}

// TableName specifies the table name for User
func (u User) TableName() string {
	return "users"
}

// NewPendingUser creates an unverified account holding a fresh OTP
func NewPendingUser(name, email, otpHash string, expiresAt time.Time) *User {
	return &User{
		Name:            name,
		Email:           email,
		OTPHash:         &otpHash,
		OTPExpiresAt:    &expiresAt,
		HasFreeSpin:     true,
		MultiplierValue: 1,
	}
}

// SetOTP stores a hashed OTP with its expiry
func (u *User) SetOTP(otpHash string, expiresAt time.Time) {
	u.OTPHash = &otpHash
	u.OTPExpiresAt = &expiresAt
}

// ClearOTP removes any pending OTP
func (u *User) ClearOTP() {
	u.OTPHash = nil
	u.OTPExpiresAt = nil
}

// OTPExpired reports whether the pending OTP is missing or past its expiry
func (u *User) OTPExpired(now time.Time) bool {
	return u.OTPExpiresAt == nil || now.After(*u.OTPExpiresAt)
}

// MultiplierActive reports whether a pending multiplier will apply to the next cash win
func (u *User) MultiplierActive() bool {
	return u.HasMultiplier && u.MultiplierValue > 1
}

// UserRepository defines the interface for user data
type UserRepository interface {
	GetByID(ctx context.Context, id int64) (*User, error)
	GetByIDForUpdate(ctx context.Context, id int64) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	Create(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, id int64) error
	TopEarners(ctx context.Context, limit int) ([]*User, error)
}
