package domain

import (
	"context"
	"time"
)

// WithdrawalStatus represents the review state of a withdrawal
type WithdrawalStatus string

const (
	WithdrawalStatusPending   WithdrawalStatus = "pending"
	WithdrawalStatusApproved  WithdrawalStatus = "approved"
	WithdrawalStatusRejected  WithdrawalStatus = "rejected"
	WithdrawalStatusCompleted WithdrawalStatus = "completed"
)

// Withdrawal bounds in whole currency units
const (
	MinWithdrawal        int64 = 100
	MaxWithdrawal        int64 = 50000
	DailyWithdrawalLimit int64 = 50000
)

// DailyQuotaStatuses are the statuses counted against the daily withdrawal ceiling.
// Completed requests are not counted.
var DailyQuotaStatuses = []WithdrawalStatus{WithdrawalStatusPending, WithdrawalStatusApproved}

var withdrawalTransitions = map[WithdrawalStatus][]WithdrawalStatus{
	WithdrawalStatusPending:  {WithdrawalStatusApproved, WithdrawalStatusRejected},
	WithdrawalStatusApproved: {WithdrawalStatusCompleted},
}

// CanTransitionTo reports whether an admin may move a request from s to next
func (s WithdrawalStatus) CanTransitionTo(next WithdrawalStatus) bool {
	for _, allowed := range withdrawalTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// BankDetails is the payout destination of a withdrawal
type BankDetails struct {
	AccountHolderName string `json:"accountHolderName" gorm:"type:varchar(100);not null"`
	AccountNumber     string `json:"accountNumber" gorm:"type:varchar(34);not null"`
	IFSCCode          string `json:"ifscCode" gorm:"column:ifsc_code;type:varchar(11);not null"`
	BankName          string `json:"bankName,omitempty" gorm:"type:varchar(100)"`
}

// WithdrawalRequest is one request to pay out winnings
type WithdrawalRequest struct {
	ID          int64            `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID      int64            `json:"userId" gorm:"not null;index"`
	User        *User            `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Amount      int64            `json:"amount" gorm:"type:bigint;not null"`
	BankDetails BankDetails      `json:"bankDetails" gorm:"embedded"`
	Status      WithdrawalStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	AdminNotes  string           `json:"adminNotes,omitempty" gorm:"type:text"`
	ProcessedAt *time.Time       `json:"processedAt,omitempty"`
	ProcessedBy *int64           `json:"processedBy,omitempty"`
	CreatedAt   time.Time        `json:"createdAt" gorm:"not null;index"`
	UpdatedAt   time.Time        `json:"updatedAt" gorm:"not null"`
}

// TableName specifies the table name for WithdrawalRequest
func (WithdrawalRequest) TableName() string {
	return "withdrawal_requests"
}

// WithdrawalRepository defines the interface for withdrawal requests
type WithdrawalRepository interface {
	Create(ctx context.Context, request *WithdrawalRequest) error
	GetByIDForUpdate(ctx context.Context, id int64) (*WithdrawalRequest, error)
	Update(ctx context.Context, request *WithdrawalRequest) error
	SumAmountInWindow(ctx context.Context, userID int64, from, to time.Time, statuses []WithdrawalStatus) (int64, error)
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*WithdrawalRequest, int64, error)
	ListByStatus(ctx context.Context, status WithdrawalStatus, limit, offset int) ([]*WithdrawalRequest, int64, error)
}
