package app

import (
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/external/razorpay"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
)

func (a *application) InitPaymentGateway(log *logger.Logger) domain.PaymentGateway {
	return razorpay.NewClient(a.config.Razorpay, log)
}
