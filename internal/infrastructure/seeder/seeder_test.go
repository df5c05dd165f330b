package seeder

import (
	"context"
	"errors"
	"testing"

	"github.com/golang/mock/gomock"
	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/domain/mocks"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/stretchr/testify/assert"
)

func TestSeeder_SeedAdmin(t *testing.T) {
	ctx := context.Background()
	cfg := config.AdminConfig{Email: " Admin@Example.com ", Name: "Ops"}

	t.Run("creates_missing_admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().GetByEmail(ctx, "admin@example.com").Return(nil, nil)
		repo.EXPECT().Create(ctx, gomock.Any()).DoAndReturn(func(_ context.Context, u *domain.User) error {
			assert.Equal(t, "Ops", u.Name)
			assert.True(t, u.IsAdmin)
			assert.True(t, u.IsVerified)
			assert.Nil(t, u.OTPHash)
			u.ID = 1
			return nil
		})

		err := NewSeeder(repo, logger.NewNop()).SeedAdmin(ctx, cfg)
		assert.NoError(t, err)
	})

	t.Run("promotes_existing_user", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		existing := &domain.User{ID: 7, Email: "admin@example.com"}
		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().GetByEmail(ctx, "admin@example.com").Return(existing, nil)
		repo.EXPECT().Update(ctx, existing).Return(nil)

		err := NewSeeder(repo, logger.NewNop()).SeedAdmin(ctx, cfg)
		assert.NoError(t, err)
		assert.True(t, existing.IsAdmin)
		assert.True(t, existing.IsVerified)
	})

	t.Run("skips_existing_admin", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().GetByEmail(ctx, "admin@example.com").Return(&domain.User{ID: 7, IsAdmin: true, IsVerified: true}, nil)

		err := NewSeeder(repo, logger.NewNop()).SeedAdmin(ctx, cfg)
		assert.NoError(t, err)
	})

	t.Run("missing_email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		err := NewSeeder(mocks.NewMockUserRepository(ctrl), logger.NewNop()).SeedAdmin(ctx, config.AdminConfig{})
		assert.Error(t, err)
	})

	t.Run("lookup_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		repo := mocks.NewMockUserRepository(ctrl)
		repo.EXPECT().GetByEmail(ctx, "admin@example.com").Return(nil, errors.New("db down"))

		err := NewSeeder(repo, logger.NewNop()).SeedAdmin(ctx, cfg)
		assert.Error(t, err)
	})
}
