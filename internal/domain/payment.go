package domain

import (
	"context"
	"fmt"
	"time"
)

// PaymentStatus represents the state of a deposit attempt
type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
)

// Deposit bounds in whole currency units
const (
	MinDeposit int64 = 100
	MaxDeposit int64 = 50000
)

// PaymentHistory is one deposit attempt through the gateway
type PaymentHistory struct {
	ID            int64         `json:"id" gorm:"primaryKey;autoIncrement"`
	UserID        int64         `json:"userId" gorm:"not null;index"`
	OrderID       string        `json:"orderId" gorm:"type:varchar(64);uniqueIndex;not null"`
	Receipt       string        `json:"receipt" gorm:"type:varchar(40);not null"`
	Amount        int64         `json:"amount" gorm:"type:bigint;not null"`
	Currency      string        `json:"currency" gorm:"type:varchar(3);not null"`
	Status        PaymentStatus `json:"status" gorm:"type:varchar(20);not null"`
	PaymentMethod string        `json:"paymentMethod" gorm:"type:varchar(20);not null"`
	PaymentID     *string       `json:"paymentId,omitempty" gorm:"type:varchar(64)"`
	Signature     *string       `json:"-" gorm:"type:varchar(128)"`
	CompletedAt   *time.Time    `json:"completedAt,omitempty"`
	CreatedAt     time.Time     `json:"createdAt" gorm:"not null"`
	UpdatedAt     time.Time     `json:"updatedAt" gorm:"not null"`
}

// TableName specifies the table name for PaymentHistory
func (PaymentHistory) TableName() string {
	return "payment_histories"
}

// MarkCompleted records the gateway payment on a pending record
func (p *PaymentHistory) MarkCompleted(paymentID, signature string, at time.Time) {
	p.PaymentID = &paymentID
	p.Signature = &signature
	p.Status = PaymentStatusCompleted
	p.CompletedAt = &at
}

// GatewayOrder is the order created at the payment gateway. Amount is in minor units.
type GatewayOrder struct {
	ID       string `json:"id"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Receipt  string `json:"receipt"`
	Status   string `json:"status"`
}

// PaymentGatewayError is a non-2xx answer from the payment gateway
type PaymentGatewayError struct {
	StatusCode  int
	Code        string
	Description string
}

// Error implements the error interface
func (e *PaymentGatewayError) Error() string {
	return fmt.Sprintf("payment gateway error %d %s: %s", e.StatusCode, e.Code, e.Description)
}

// Is4xxError checks if the gateway rejected the request itself
func (e *PaymentGatewayError) Is4xxError() bool {
	return e.StatusCode >= 400 && e.StatusCode < 500
}

// PaymentGateway creates orders and checks payment signatures
type PaymentGateway interface {
	CreateOrder(ctx context.Context, amountMinor int64, currency, receipt string, notes map[string]string) (*GatewayOrder, error)
	VerifySignature(orderID, paymentID, signature string) bool
	KeyID() string
}

// PaymentRepository defines the interface for deposit records
type PaymentRepository interface {
	Create(ctx context.Context, payment *PaymentHistory) error
	GetByOrderIDForUpdate(ctx context.Context, orderID string, userID int64) (*PaymentHistory, error)
	Update(ctx context.Context, payment *PaymentHistory) error
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*PaymentHistory, int64, error)
}
