package repository

import (
	"context"
	"errors"
	"time"

	"github.com/saradorri/rewardwallet/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// PaymentRepository implements domain.PaymentRepository
type PaymentRepository struct {
	db *gorm.DB
}

// NewPaymentRepository creates a new payment repository
func NewPaymentRepository(db *gorm.DB) domain.PaymentRepository {
	return &PaymentRepository{db: db}
}

// Create creates a new payment record
func (r *PaymentRepository) Create(ctx context.Context, payment *domain.PaymentHistory) error {
	now := time.Now()
	payment.CreatedAt = now
	payment.UpdatedAt = now
	return translate(conn(ctx, r.db).Create(payment).Error)
}

// GetByOrderIDForUpdate retrieves the user's record of orderID and row-locks it
func (r *PaymentRepository) GetByOrderIDForUpdate(ctx context.Context, orderID string, userID int64) (*domain.PaymentHistory, error) {
	var payment domain.PaymentHistory
	result := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("order_id = ? AND user_id = ?", orderID, userID).
		First(&payment)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &payment, nil
}

// Update updates an existing payment record
func (r *PaymentRepository) Update(ctx context.Context, payment *domain.PaymentHistory) error {
	payment.UpdatedAt = time.Now()
	return conn(ctx, r.db).Save(payment).Error
}

// ListByUser returns one page of the user's payments, newest first
func (r *PaymentRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.PaymentHistory, int64, error) {
	var (
		payments []*domain.PaymentHistory
		total    int64
	)
	q := conn(ctx, r.db).Model(&domain.PaymentHistory{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").Order("id DESC").Limit(limit).Offset(offset).Find(&payments).Error; err != nil {
		return nil, 0, err
	}
	return payments, total, nil
}
