package app

import (
	"time"

	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/saradorri/rewardwallet/internal/usecase"
	"github.com/saradorri/rewardwallet/internal/usecase/auth"
	"github.com/saradorri/rewardwallet/internal/usecase/game"
	"github.com/saradorri/rewardwallet/internal/usecase/leaderboard"
	"github.com/saradorri/rewardwallet/internal/usecase/wallet"
	"github.com/saradorri/rewardwallet/internal/usecase/withdrawal"
)

func (a *application) InitUserMutator(
	ur domain.UserRepository,
	locker domain.UserLocker,
	tx domain.TxManager,
	log *logger.Logger,
) *usecase.UserMutator {
	return usecase.NewUserMutator(ur, locker, tx, log)
}

func (a *application) InitAuthUseCase(
	ur domain.UserRepository,
	mutator *usecase.UserMutator,
	hasher domain.OTPHasher,
	sender domain.OTPSender,
	tokens domain.TokenIssuer,
	random domain.RandomSource,
	log *logger.Logger,
) domain.AuthUseCase {
	return auth.NewAuthUseCase(ur, mutator, hasher, sender, tokens, random, a.config.OTP, log)
}

func (a *application) InitGameUseCase(
	mutator *usecase.UserMutator,
	gr domain.GameHistoryRepository,
	sr domain.SpinHistoryRepository,
	random domain.RandomSource,
	log *logger.Logger,
) domain.GameUseCase {
	return game.NewGameUseCase(mutator, gr, sr, random, log)
}

func (a *application) InitWalletUseCase(
	ur domain.UserRepository,
	gr domain.GameHistoryRepository,
	pr domain.PaymentRepository,
	gateway domain.PaymentGateway,
	mutator *usecase.UserMutator,
	location *time.Location,
	log *logger.Logger,
) domain.WalletUseCase {
	return wallet.NewWalletUseCase(ur, gr, pr, gateway, mutator, a.config.Razorpay.Currency, location, log)
}

func (a *application) InitWithdrawalUseCase(
	wr domain.WithdrawalRepository,
	mutator *usecase.UserMutator,
	tx domain.TxManager,
	location *time.Location,
	log *logger.Logger,
) domain.WithdrawalUseCase {
	return withdrawal.NewWithdrawalUseCase(wr, mutator, tx, location, log)
}

func (a *application) InitLeaderboardUseCase(
	ur domain.UserRepository,
	sr domain.SpinHistoryRepository,
	log *logger.Logger,
) domain.LeaderboardUseCase {
	return leaderboard.NewLeaderboardUseCase(ur, sr, log)
}
