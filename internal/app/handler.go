package app

import (
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/http"
	"github.com/saradorri/rewardwallet/internal/http/handlers"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
)

func (a *application) InitHandlers(
	authUC domain.AuthUseCase,
	gameUC domain.GameUseCase,
	walletUC domain.WalletUseCase,
	withdrawalUC domain.WithdrawalUseCase,
	leaderboardUC domain.LeaderboardUseCase,
	log *logger.Logger,
) http.Handlers {
	return http.Handlers{
		Auth:        handlers.NewAuthHandler(authUC, log),
		User:        handlers.NewUserHandler(walletUC),
		Game:        handlers.NewGameHandler(gameUC),
		Payment:     handlers.NewPaymentHandler(walletUC, log),
		Withdrawal:  handlers.NewWithdrawalHandler(withdrawalUC),
		Leaderboard: handlers.NewLeaderboardHandler(leaderboardUC),
	}
}
