package repository

import (
	"context"
	"errors"
	"time"

	"github.com/saradorri/rewardwallet/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// WithdrawalRepository implements domain.WithdrawalRepository
type WithdrawalRepository struct {
	db *gorm.DB
}

// NewWithdrawalRepository creates a new withdrawal repository
func NewWithdrawalRepository(db *gorm.DB) domain.WithdrawalRepository {
	return &WithdrawalRepository{db: db}
}

// Create creates a new withdrawal request
func (r *WithdrawalRepository) Create(ctx context.Context, request *domain.WithdrawalRequest) error {
	now := time.Now()
	if request.CreatedAt.IsZero() {
		request.CreatedAt = now
	}
	request.UpdatedAt = now
	return conn(ctx, r.db).Omit(clause.Associations).Create(request).Error
}

// GetByIDForUpdate retrieves a request by ID and row-locks it
func (r *WithdrawalRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.WithdrawalRequest, error) {
	var request domain.WithdrawalRequest
	result := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&request)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &request, nil
}

// Update updates an existing withdrawal request
func (r *WithdrawalRepository) Update(ctx context.Context, request *domain.WithdrawalRequest) error {
	request.UpdatedAt = time.Now()
	return conn(ctx, r.db).Omit(clause.Associations).Save(request).Error
}

// SumAmountInWindow sums the user's requests created in [from, to) having one of statuses
func (r *WithdrawalRepository) SumAmountInWindow(ctx context.Context, userID int64, from, to time.Time, statuses []domain.WithdrawalStatus) (int64, error) {
	var total int64
	err := conn(ctx, r.db).
		Model(&domain.WithdrawalRequest{}).
		Select("COALESCE(SUM(amount), 0)").
		Where("user_id = ? AND created_at >= ? AND created_at < ? AND status IN ?", userID, from, to, statuses).
		Scan(&total).Error
	if err != nil {
		return 0, err
	}
	return total, nil
}

// ListByUser returns one page of the user's requests, newest first
func (r *WithdrawalRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.WithdrawalRequest, int64, error) {
	var (
		requests []*domain.WithdrawalRequest
		total    int64
	)
	q := conn(ctx, r.db).Model(&domain.WithdrawalRequest{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").Order("id DESC").Limit(limit).Offset(offset).Find(&requests).Error; err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}

// ListByStatus returns one page of requests in status with their owner loaded
func (r *WithdrawalRepository) ListByStatus(ctx context.Context, status domain.WithdrawalStatus, limit, offset int) ([]*domain.WithdrawalRequest, int64, error) {
	var (
		requests []*domain.WithdrawalRequest
		total    int64
	)
	q := conn(ctx, r.db).Model(&domain.WithdrawalRequest{}).Where("status = ?", status)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	err := q.Preload("User", func(db *gorm.DB) *gorm.DB {
		return db.Select("id", "name", "email")
	}).Order("created_at DESC").Order("id DESC").Limit(limit).Offset(offset).Find(&requests).Error
	if err != nil {
		return nil, 0, err
	}
	return requests, total, nil
}
