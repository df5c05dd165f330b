package app

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/saradorri/rewardwallet/internal/config"
	"go.uber.org/fx"
)

// Application provides application level setup
type Application interface {
	Setup()
	GetContext() context.Context
}

// application represents context and configure file
type application struct {
	ctx    context.Context
	config *config.Config
}

// NewApplication creates a new application
func NewApplication(ctx context.Context) Application {
	return &application{ctx: ctx}
}

// GetContext returns application context
func (a *application) GetContext() context.Context {
	return a.ctx
}

// Setup creates a new fx application with all modules
func (a *application) Setup() {
	fmt.Println("[x] Starting Reward Wallet Service...")

	path := flag.String("e", "./config", "config file directory")
	flag.Parse()

	cfg, err := config.Load(*path, config.GetEnvironment())
	if err != nil {
		log.Panic(err.Error())
	}
	a.config = cfg
	fmt.Println("[x] Config loaded successfully")

	app := fx.New(
		fx.NopLogger,
		fx.Provide(
			a.InitConfig,
			a.InitLogger,
			a.InitLocation,
			a.InitDatabase,
			a.InitRedis,
			a.InitTxManager,
			a.InitUserRepository,
			a.InitGameHistoryRepository,
			a.InitSpinHistoryRepository,
			a.InitPaymentRepository,
			a.InitWithdrawalRepository,
			a.InitUserLocker,
			a.InitRateLimiter,
			a.InitJWTService,
			a.InitTokenIssuer,
			a.InitOTPHasher,
			a.InitOTPSender,
			a.InitRandomSource,
			a.InitPaymentGateway,
			a.InitUserMutator,
			a.InitAuthUseCase,
			a.InitGameUseCase,
			a.InitWalletUseCase,
			a.InitWithdrawalUseCase,
			a.InitLeaderboardUseCase,
			a.InitHandlers,
			a.InitErrorHandler,
			a.InitHTTPServer,
		),
		fx.Invoke(a.RegisterHTTPServer),
	)

	app.Run()
}

// InitConfig exposes the loaded configuration to the graph
func (a *application) InitConfig() *config.Config {
	return a.config
}
