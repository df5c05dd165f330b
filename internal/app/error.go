package app

import (
	"github.com/saradorri/rewardwallet/internal/http/middleware"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
)

func (a *application) InitErrorHandler(log *logger.Logger) *middleware.ErrorHandler {
	return middleware.NewErrorHandler(log)
}
