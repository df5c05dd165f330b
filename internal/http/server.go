package http

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/http/handlers"
	"github.com/saradorri/rewardwallet/internal/http/middleware"
	"github.com/saradorri/rewardwallet/internal/infrastructure/auth"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

const (
	otpRateLimitScope       = "otp"
	otpVerifyRateLimitScope = "otp-verify"
)

// Handlers groups the route handlers
type Handlers struct {
	Auth        *handlers.AuthHandler
	User        *handlers.UserHandler
	Game        *handlers.GameHandler
	Payment     *handlers.PaymentHandler
	Withdrawal  *handlers.WithdrawalHandler
	Leaderboard *handlers.LeaderboardHandler
}

// Server represents the HTTP server
type Server struct {
	router       *gin.Engine
	httpServer   *http.Server
	jwtService   auth.JWTService
	userRepo     domain.UserRepository
	limiter      domain.RateLimiter
	handlers     Handlers
	errorHandler *middleware.ErrorHandler
	cfg          *config.Config
	logger       *logger.Logger
}

// NewServer creates a new HTTP server
func NewServer(
	cfg *config.Config,
	jwtService auth.JWTService,
	userRepo domain.UserRepository,
	limiter domain.RateLimiter,
	h Handlers,
	errorHandler *middleware.ErrorHandler,
	logger *logger.Logger,
) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()

	timeout := cfg.Server.RequestTimeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}

	router.Use(errorHandler.RequestIDMiddleware())
	router.Use(middleware.LoggerMiddleware(logger))
	router.Use(middleware.CORSMiddleware(cfg.Server.AllowedOrigins))
	router.Use(errorHandler.ErrorHandlerMiddleware())
	router.Use(errorHandler.TimeoutMiddleware(timeout))
	router.NoRoute(errorHandler.NoRoute)

	server := &Server{
		router:       router,
		jwtService:   jwtService,
		userRepo:     userRepo,
		limiter:      limiter,
		handlers:     h,
		errorHandler: errorHandler,
		cfg:          cfg,
		logger:       logger,
	}

	server.setupRoutes()
	server.httpServer = &http.Server{
		Addr:              cfg.GetServerAddress(),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return server
}

// setupRoutes configures all the routes
func (s *Server) setupRoutes() {
	s.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	v1 := s.router.Group("/api/v1")
	{
		v1.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"success": true, "status": "ok", "timestamp": time.Now().UTC()})
		})

		otpLimit := middleware.RateLimitMiddleware(s.limiter, otpRateLimitScope,
			s.cfg.RateLimit.OTPRequests, s.cfg.RateLimit.Window, s.logger)
		verifyLimit := middleware.RateLimitMiddleware(s.limiter, otpVerifyRateLimitScope,
			s.cfg.RateLimit.OTPVerifyAttempts, s.cfg.RateLimit.Window, s.logger)

		authRoutes := v1.Group("/auth")
		{
			authRoutes.POST("/signup", otpLimit, s.handlers.Auth.Signup)
			authRoutes.POST("/verify-signup", verifyLimit, s.handlers.Auth.VerifySignup)
			authRoutes.POST("/login", otpLimit, s.handlers.Auth.Login)
			authRoutes.POST("/verify-login", verifyLimit, s.handlers.Auth.VerifyLogin)
		}

		v1.GET("/leaderboard", s.handlers.Leaderboard.TopEarners)
		v1.GET("/recent-winners", s.handlers.Leaderboard.RecentWinners)

		protected := v1.Group("/")
		protected.Use(middleware.JWTMiddleware(s.jwtService))
		{
			userRoutes := protected.Group("/user")
			{
				userRoutes.GET("/profile", s.handlers.User.GetProfile)
				userRoutes.POST("/claim-bonus", s.handlers.User.ClaimBonus)
				userRoutes.POST("/daily-bonus", s.handlers.User.ClaimDailyBonus)
			}

			guessRoutes := protected.Group("/number-guess")
			{
				guessRoutes.POST("/play", s.handlers.Game.PlayNumberGuess)
				guessRoutes.GET("/history", s.handlers.Game.GameHistory)
				guessRoutes.GET("/stats", s.handlers.Game.GameStats)
			}

			protected.POST("/spin", s.handlers.Game.Spin)
			protected.GET("/spin/history", s.handlers.Game.SpinHistory)

			paymentRoutes := protected.Group("/payment")
			{
				paymentRoutes.POST("/create-order", s.handlers.Payment.CreateOrder)
				paymentRoutes.POST("/verify-payment", s.handlers.Payment.VerifyPayment)
				paymentRoutes.GET("/history", s.handlers.Payment.PaymentHistory)
			}

			withdrawalRoutes := protected.Group("/withdrawal")
			{
				withdrawalRoutes.POST("/request", s.handlers.Withdrawal.RequestWithdrawal)
				withdrawalRoutes.GET("/history", s.handlers.Withdrawal.History)

				admin := withdrawalRoutes.Group("/requests")
				admin.Use(middleware.AdminMiddleware(s.userRepo))
				{
					admin.GET("", s.handlers.Withdrawal.ListRequests)
					admin.POST("/:id/process", s.handlers.Withdrawal.ProcessRequest)
				}
			}
		}
	}
}

// Handler exposes the router
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start serves until Shutdown is called
func (s *Server) Start() error {
	s.logger.Info("HTTP server listening", zap.String("addr", s.httpServer.Addr))
	if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops accepting requests and waits for in-flight ones
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
