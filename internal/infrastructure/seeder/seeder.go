package seeder

import (
	"context"
	"fmt"
	"strings"

	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// Seeder handles database seeding operations
type Seeder struct {
	userRepo domain.UserRepository
	logger   *logger.Logger
}

// NewSeeder creates a new seeder instance
func NewSeeder(userRepo domain.UserRepository, log *logger.Logger) *Seeder {
	return &Seeder{
		userRepo: userRepo,
		logger:   log,
	}
}

// SeedAdmin makes sure the configured admin account exists and carries the admin flag.
// Admins sign in through the normal OTP flow.
func (s *Seeder) SeedAdmin(ctx context.Context, cfg config.AdminConfig) error {
	email := strings.ToLower(strings.TrimSpace(cfg.Email))
	if email == "" {
		return fmt.Errorf("admin email is not configured")
	}
	name := strings.TrimSpace(cfg.Name)
	if name == "" {
		name = "Admin"
	}

	existing, err := s.userRepo.GetByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("failed to look up admin: %w", err)
	}

	if existing != nil {
		if existing.IsAdmin && existing.IsVerified {
			s.logger.Info("Admin already exists, skipping", zap.String("email", email))
			return nil
		}
		existing.IsAdmin = true
		existing.IsVerified = true
		if err := s.userRepo.Update(ctx, existing); err != nil {
			return fmt.Errorf("failed to promote admin: %w", err)
		}
		s.logger.Info("Promoted existing user to admin", zap.String("email", email), zap.Int64("user_id", existing.ID))
		return nil
	}

	admin := &domain.User{
		Name:            name,
		Email:           email,
		IsVerified:      true,
		IsAdmin:         true,
		MultiplierValue: 1,
	}
	if err := s.userRepo.Create(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin: %w", err)
	}

	s.logger.Info("Admin seeded", zap.String("email", email), zap.Int64("user_id", admin.ID))
	return nil
}
