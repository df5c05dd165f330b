package auth

import (
	"context"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/saradorri/rewardwallet/internal/usecase"
	"go.uber.org/zap"
)

// DefaultOTPTTL is used when no TTL is configured
const DefaultOTPTTL = 10 * time.Minute

// AuthUseCase implements domain.AuthUseCase
type AuthUseCase struct {
	userRepo  domain.UserRepository
	mutator   *usecase.UserMutator
	hasher    domain.OTPHasher
	sender    domain.OTPSender
	tokens    domain.TokenIssuer
	random    domain.RandomSource
	otpTTL    time.Duration
	exposeOTP bool
	logger    *logger.Logger
	now       func() time.Time
}

// NewAuthUseCase creates a new auth usecase
func NewAuthUseCase(
	userRepo domain.UserRepository,
	mutator *usecase.UserMutator,
	hasher domain.OTPHasher,
	sender domain.OTPSender,
	tokens domain.TokenIssuer,
	random domain.RandomSource,
	cfg config.OTPConfig,
	logger *logger.Logger,
) domain.AuthUseCase {
	ttl := cfg.TTL
	if ttl <= 0 {
		ttl = DefaultOTPTTL
	}
	logger.Info("AuthUseCase initialized successfully",
		zap.Duration("otp_ttl", ttl),
		zap.Bool("expose_otp", cfg.ExposeInResponse))
	return &AuthUseCase{
		userRepo:  userRepo,
		mutator:   mutator,
		hasher:    hasher,
		sender:    sender,
		tokens:    tokens,
		random:    random,
		otpTTL:    ttl,
		exposeOTP: cfg.ExposeInResponse,
		logger:    logger,
		now:       time.Now,
	}
}

// generateOTP draws a zero-padded numeric code
func (uc *AuthUseCase) generateOTP() string {
	space := 1
	for i := 0; i < domain.OTPLength; i++ {
		space *= 10
	}
	return fmt.Sprintf("%0*d", domain.OTPLength, uc.random.IntN(space))
}

// issueOTP returns a fresh code, its hash and its expiry
func (uc *AuthUseCase) issueOTP() (code, hash string, expiresAt time.Time, err error) {
	code = uc.generateOTP()
	hash, err = uc.hasher.Hash(code)
	if err != nil {
		return "", "", time.Time{}, domain.NewInternalError("Failed to generate OTP", err)
	}
	return code, hash, uc.now().Add(uc.otpTTL), nil
}

func (uc *AuthUseCase) dispatch(email, code string, expiresAt time.Time) *domain.OTPDispatch {
	d := &domain.OTPDispatch{Email: email, ExpiresAt: expiresAt}
	if uc.exposeOTP {
		d.OTP = code
	}
	return d
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func validateName(name string) error {
	n := utf8.RuneCountInString(name)
	if n < domain.NameMinChars || n > domain.NameMaxChars {
		return domain.NewValidationError(domain.ErrCodeInvalidFormat,
			fmt.Sprintf("Name must be between %d and %d characters", domain.NameMinChars, domain.NameMaxChars))
	}
	return nil
}

func validateOTPFormat(otp string) error {
	if len(otp) != domain.OTPLength {
		return domain.NewValidationError(domain.ErrCodeInvalidFormat, fmt.Sprintf("OTP must be %d digits", domain.OTPLength))
	}
	for _, r := range otp {
		if r < '0' || r > '9' {
			return domain.NewValidationError(domain.ErrCodeInvalidFormat, fmt.Sprintf("OTP must be %d digits", domain.OTPLength))
		}
	}
	return nil
}

func otpDeliveryError(err error) error {
	return domain.NewAppError(domain.ErrCodeOTPDeliveryFailed, "Failed to send OTP. Please try again.", 500, err)
}

// checkOTP validates code against the pending OTP of user and consumes it
func (uc *AuthUseCase) checkOTP(user *domain.User, code string) error {
	if user.OTPHash == nil || user.OTPExpired(uc.now()) {
		return domain.NewBusinessError(domain.ErrCodeOTPExpired, "OTP has expired. Please request a new one.")
	}
	if !uc.hasher.Verify(*user.OTPHash, code) {
		return domain.NewBusinessError(domain.ErrCodeInvalidOTP, "Invalid OTP")
	}
	user.ClearOTP()
	return nil
}

func (uc *AuthUseCase) lookup(ctx context.Context, email string) (*domain.User, error) {
	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to get user by email",
			zap.String("email", email),
			zap.Error(err))
		return nil, domain.NewDatabaseError("get user by email", err)
	}
	return user, nil
}

func (uc *AuthUseCase) token(ctx context.Context, user *domain.User) (string, error) {
	token, err := uc.tokens.GenerateToken(user.ID, user.Email)
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to generate JWT token",
			zap.Int64("user_id", user.ID),
			zap.Error(err))
		return "", domain.NewInternalError("Token generation failed", err)
	}
	return token, nil
}
