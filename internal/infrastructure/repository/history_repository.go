package repository

import (
	"context"
	"time"

	"github.com/saradorri/rewardwallet/internal/domain"

	"gorm.io/gorm"
)

// GameHistoryRepository implements domain.GameHistoryRepository
type GameHistoryRepository struct {
	db *gorm.DB
}

func NewGameHistoryRepository(db *gorm.DB) domain.GameHistoryRepository {
	return &GameHistoryRepository{db: db}
}

func (r *GameHistoryRepository) Create(ctx context.Context, history *domain.GameHistory) error {
	if history.CreatedAt.IsZero() {
		history.CreatedAt = time.Now()
	}
	return conn(ctx, r.db).Create(history).Error
}

// ListByUser returns one page of plays, newest first, and the total count
func (r *GameHistoryRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.GameHistory, int64, error) {
	var (
		histories []*domain.GameHistory
		total     int64
	)
	q := conn(ctx, r.db).Model(&domain.GameHistory{}).Where("user_id = ?", userID)
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}
	if err := q.Order("created_at DESC").Order("id DESC").Limit(limit).Offset(offset).Find(&histories).Error; err != nil {
		return nil, 0, err
	}
	return histories, total, nil
}

// StatsByMode groups a user's plays by mode
func (r *GameHistoryRepository) StatsByMode(ctx context.Context, userID int64) ([]*domain.GameModeStats, error) {
	var stats []*domain.GameModeStats
	err := conn(ctx, r.db).
		Model(&domain.GameHistory{}).
		Select(`game_mode,
			COUNT(*) AS total_games,
			COALESCE(SUM(CASE WHEN is_winner THEN 1 ELSE 0 END), 0) AS total_wins,
			COALESCE(SUM(amount_won), 0) AS total_winnings,
			COALESCE(SUM(game_cost), 0) AS total_cost`).
		Where("user_id = ?", userID).
		Group("game_mode").
		Order("game_mode").
		Scan(&stats).Error
	if err != nil {
		return nil, err
	}
	return stats, nil
}

// SpinHistoryRepository implements domain.SpinHistoryRepository
type SpinHistoryRepository struct {
	db *gorm.DB
}

func NewSpinHistoryRepository(db *gorm.DB) domain.SpinHistoryRepository {
	return &SpinHistoryRepository{db: db}
}

func (r *SpinHistoryRepository) Create(ctx context.Context, history *domain.SpinHistory) error {
	if history.CreatedAt.IsZero() {
		history.CreatedAt = time.Now()
	}
	return conn(ctx, r.db).Create(history).Error
}

func (r *SpinHistoryRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*domain.SpinHistory, error) {
	var histories []*domain.SpinHistory
	err := conn(ctx, r.db).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Order("id DESC").
		Limit(limit).
		Find(&histories).Error
	if err != nil {
		return nil, err
	}
	return histories, nil
}

// RecentWinners returns the latest spins that won at least minAmount, with the winner's name
func (r *SpinHistoryRepository) RecentWinners(ctx context.Context, minAmount int64, limit int) ([]*domain.RecentWinner, error) {
	var winners []*domain.RecentWinner
	err := conn(ctx, r.db).
		Table("spin_histories AS s").
		Select("u.name AS user_name, s.amount_won, s.was_free_spin, s.created_at").
		Joins("JOIN users u ON u.id = s.user_id").
		Where("s.amount_won >= ?", minAmount).
		Order("s.created_at DESC").
		Order("s.id DESC").
		Limit(limit).
		Scan(&winners).Error
	if err != nil {
		return nil, err
	}
	return winners, nil
}
