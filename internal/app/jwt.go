package app

import (
	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/auth"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/saradorri/rewardwallet/internal/infrastructure/mailer"
	"github.com/saradorri/rewardwallet/internal/infrastructure/random"
)

func (a *application) InitJWTService() auth.JWTService {
	cfg := &config.JWTConfig{
		Secret: a.config.JWT.Secret,
		Expiry: a.config.JWT.Expiry,
	}
	return auth.NewJWTService(cfg)
}

func (a *application) InitTokenIssuer(jwt auth.JWTService) domain.TokenIssuer {
	return jwt
}

func (a *application) InitOTPHasher() domain.OTPHasher {
	return auth.NewBcryptHasher(a.config.OTP.BcryptCost)
}

// InitOTPSender picks the OTP delivery by otp.sender
func (a *application) InitOTPSender(log *logger.Logger) (domain.OTPSender, error) {
	if a.config.OTP.Sender == "smtp" {
		sender, err := mailer.NewSMTPSender(a.config.SMTP, int(a.config.OTP.TTL.Minutes()), log)
		if err != nil {
			return nil, err
		}
		return sender, nil
	}
	return mailer.NewLogSender(log), nil
}

func (a *application) InitRandomSource() domain.RandomSource {
	return random.NewSource()
}
