package app

import (
	"time"

	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
)

// InitLogger creates a new logger instance
func (a *application) InitLogger() *logger.Logger {
	return logger.NewLogger(config.GetEnvironment(), a.config.Log.Level)
}

// InitLocation resolves the timezone of daily bonus and withdrawal windows
func (a *application) InitLocation() (*time.Location, error) {
	return a.config.Location()
}
