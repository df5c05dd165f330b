package auth

import (
	"context"
	"net/http"

	"github.com/saradorri/rewardwallet/internal/domain"
	"go.uber.org/zap"
)

func loginUserNotFound() error {
	return domain.NewAppError(domain.ErrCodeUserNotFound, "User not found. Please sign up first.", http.StatusNotFound, nil)
}

// SendLoginOTP issues a login OTP to an existing account
func (uc *AuthUseCase) SendLoginOTP(ctx context.Context, email string) (*domain.OTPDispatch, error) {
	email = normalizeEmail(email)
	log := uc.logger.WithContext(ctx)

	log.Info("Starting login OTP", zap.String("email", email))

	existing, err := uc.lookup(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, loginUserNotFound()
	}

	code, hash, expiresAt, err := uc.issueOTP()
	if err != nil {
		return nil, err
	}

	var name string
	err = uc.mutator.Mutate(ctx, existing.ID, func(ctx context.Context, user *domain.User) error {
		user.SetOTP(hash, expiresAt)
		name = user.Name
		return nil
	})
	if err != nil {
		return nil, err
	}

	if err := uc.sender.SendOTP(ctx, email, name, code); err != nil {
		log.Error("Failed to deliver login OTP", zap.Int64("user_id", existing.ID), zap.Error(err))
		return nil, otpDeliveryError(err)
	}

	log.Info("Login OTP sent", zap.Int64("user_id", existing.ID))
	return uc.dispatch(email, code, expiresAt), nil
}

// VerifyLoginOTP consumes a login OTP and issues a session token
func (uc *AuthUseCase) VerifyLoginOTP(ctx context.Context, email, otp string) (*domain.AuthResult, error) {
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
		return nil, loginUserNotFound()
	}

	var loggedIn *domain.User
	err = uc.mutator.Mutate(ctx, existing.ID, func(ctx context.Context, user *domain.User) error {
		if err := uc.checkOTP(user, otp); err != nil {
			return err
		}
		loggedIn = user
		return nil
	})
	if err != nil {
		log.Warn("Login OTP verification failed", zap.String("email", email), zap.Error(err))
		return nil, err
	}

	token, err := uc.token(ctx, loggedIn)
	if err != nil {
		return nil, err
	}

	log.Info("User logged in", zap.Int64("user_id", loggedIn.ID))
	return &domain.AuthResult{Token: token, User: loggedIn}, nil
}
