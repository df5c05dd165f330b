package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/saradorri/rewardwallet/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// UserRepository implements domain.UserRepository
type UserRepository struct {
	db *gorm.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepository{db: db}
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	result := conn(ctx, r.db).Where("id = ?", id).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// GetByIDForUpdate retrieves a user by ID and row-locks it until the transaction ends
func (r *UserRepository) GetByIDForUpdate(ctx context.Context, id int64) (*domain.User, error) {
	var user domain.User
	result := conn(ctx, r.db).
		Clauses(clause.Locking{Strength: "UPDATE"}).
		Where("id = ?", id).
		First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// GetByEmail retrieves a user by email, ignoring case
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	result := conn(ctx, r.db).Where("email = ?", strings.ToLower(email)).First(&user)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, result.Error
	}
	return &user, nil
}

// Create creates a new user
func (r *UserRepository) Create(ctx context.Context, user *domain.User) error {
	now := time.Now()
	user.Email = strings.ToLower(user.Email)
	user.CreatedAt = now
	user.UpdatedAt = now
	return translate(conn(ctx, r.db).Create(user).Error)
}

// Update saves every column of an existing user
func (r *UserRepository) Update(ctx context.Context, user *domain.User) error {
	user.UpdatedAt = time.Now()
	return conn(ctx, r.db).Save(user).Error
}

// Delete removes a user
func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	return conn(ctx, r.db).Delete(&domain.User{}, id).Error
}

// TopEarners returns verified users ordered by total earnings
func (r *UserRepository) TopEarners(ctx context.Context, limit int) ([]*domain.User, error) {
	var users []*domain.User
	result := conn(ctx, r.db).
		Where("is_verified = ?", true).
		Order("total_earnings DESC").
		Order("id ASC").
		Limit(limit).
		Find(&users)
	if result.Error != nil {
		return nil, result.Error
	}
	return users, nil
}
