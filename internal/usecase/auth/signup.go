package auth

import (
	"context"
	"errors"
	"strings"

	"github.com/saradorri/rewardwallet/internal/domain"
	"go.uber.org/zap"
)

// SendSignupOTP creates a pending account, or refreshes the OTP of one that was never verified
func (uc *AuthUseCase) SendSignupOTP(ctx context.Context, name, email string) (*domain.OTPDispatch, error) {
	name = strings.TrimSpace(name)
	email = normalizeEmail(email)
	log := uc.logger.WithContext(ctx)

	log.Info("Starting signup OTP", zap.String("email", email))

	if err := validateName(name); err != nil {
		return nil, err
	}

	existing, err := uc.lookup(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.IsVerified {
		log.Warn("Signup attempt for verified email", zap.String("email", email))
		return nil, domain.NewBusinessError(domain.ErrCodeUserAlreadyExists, "User already exists. Please login instead.")
	}

	code, hash, expiresAt, err := uc.issueOTP()
	if err != nil {
		return nil, err
	}

	var created *domain.User
	if existing != nil {
		err = uc.mutator.Mutate(ctx, existing.ID, func(ctx context.Context, user *domain.User) error {
			if user.IsVerified {
				return domain.NewBusinessError(domain.ErrCodeUserAlreadyExists, "User already exists. Please login instead.")
			}
			user.Name = name
			user.SetOTP(hash, expiresAt)
			return nil
		})
		if err != nil {
			return nil, err
		}
		log.Debug("Refreshed OTP of pending user", zap.Int64("user_id", existing.ID))
	} else {
		created = domain.NewPendingUser(name, email, hash, expiresAt)
		if err := uc.userRepo.Create(ctx, created); err != nil {
			if errors.Is(err, domain.ErrDuplicateKey) {
				return nil, domain.NewBusinessError(domain.ErrCodeUserAlreadyExists, "User already exists. Please login instead.")
			}
			log.Error("Failed to create pending user", zap.String("email", email), zap.Error(err))
			return nil, domain.NewDatabaseError("create user", err)
		}
		log.Debug("Created pending user", zap.Int64("user_id", created.ID))
	}

	if err := uc.sender.SendOTP(ctx, email, name, code); err != nil {
		log.Error("Failed to deliver signup OTP", zap.String("email", email), zap.Error(err))
		if created != nil {
			if delErr := uc.userRepo.Delete(ctx, created.ID); delErr != nil {
				log.Error("Failed to remove pending user after delivery failure",
					zap.Int64("user_id", created.ID),
					zap.Error(delErr))
			}
		}
		return nil, otpDeliveryError(err)
	}

	log.Info("Signup OTP sent", zap.String("email", email))
	return uc.dispatch(email, code, expiresAt), nil
}

// VerifySignupOTP activates the account and awards the signup bonus on the first verification
func (uc *AuthUseCase) VerifySignupOTP(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
	email = normalizeEmail(email)
	log := uc.logger.WithContext(ctx)

	if err := validateOTPFormat(otp); err != nil {
		return nil, err
	}

	existing, err := uc.lookup(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, domain.NewNotFoundError(domain.ErrCodeUserNotFound, "User")
	}

	var (
		verified *domain.User
		bonus    int64
	)
	err = uc.mutator.Mutate(ctx, existing.ID, func(ctx context.Context, user *domain.User) error {
		if err := uc.checkOTP(user, otp); err != nil {
			return err
		}
		user.IsVerified = true
		if user.TotalEarnings == 0 && user.BonusBalance == 0 {
			user.ApplyEarnings(domain.SignupBonus, domain.CategoryBonus)
			bonus = domain.SignupBonus
		}
		verified = user
		return nil
	})
	if err != nil {
		log.Warn("Signup OTP verification failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	token, err := uc.token(ctx, verified)
	if err != nil {
		return nil, err
	}

	log.Info("User verified",
		zap.Int64("user_id", verified.ID),
		zap.Int64("bonus_added", bonus))
	return &domain.AuthResult{Token: token, User: verified, BonusAdded: bonus}, nil
}
