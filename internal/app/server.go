package app

import (
	"context"

	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/http"
	"github.com/saradorri/rewardwallet/internal/http/middleware"
	"github.com/saradorri/rewardwallet/internal/infrastructure/auth"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

// InitHTTPServer initializes the HTTP server with all dependencies
func (a *application) InitHTTPServer(
	cfg *config.Config,
	jwtService auth.JWTService,
	userRepo domain.UserRepository,
	limiter domain.RateLimiter,
	h http.Handlers,
	errorHandler *middleware.ErrorHandler,
	log *logger.Logger,
) *http.Server {
	if cfg.Server.Port == "" {
		cfg.Server.Port = "8080" // default port
	}
	return http.NewServer(cfg, jwtService, userRepo, limiter, h, errorHandler, log)
}

// RegisterHTTPServer ties the server to the fx lifecycle
func (a *application) RegisterHTTPServer(lc fx.Lifecycle, shutdowner fx.Shutdowner, server *http.Server, log *logger.Logger) {
	lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := server.Start(); err != nil {
					log.Error("HTTP server stopped", zap.Error(err))
					_ = shutdowner.Shutdown()
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info("Shutting down HTTP server")
			defer func() { _ = log.Sync() }()
			return server.Shutdown(ctx)
		},
	})
}
