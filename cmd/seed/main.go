package main

import (
	"context"
	"flag"
	"log"
	"time"

	"github.com/saradorri/rewardwallet/internal/config"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"github.com/saradorri/rewardwallet/internal/infrastructure/repository"
	"github.com/saradorri/rewardwallet/internal/infrastructure/seeder"
	"go.uber.org/zap"
)

func main() {
	var (
		configPath = flag.String("config", "./config", "Path to config directory")
		env        = flag.String("env", config.GetEnvironment(), "Environment")
		email      = flag.String("email", "", "Admin email, overrides admin.email")
	)
	flag.Parse()

	cfg, err := config.Load(*configPath, *env)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *email != "" {
		cfg.Admin.Email = *email
	}

	appLogger := logger.NewLogger(*env, cfg.Log.Level)
	defer func() { _ = appLogger.Sync() }()

	db, err := repository.NewDatabase(cfg.GetDSN(), cfg.Database)
	if err != nil {
		appLogger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() { _ = repository.Close(db) }()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	newSeeder := seeder.NewSeeder(repository.NewUserRepository(db), appLogger)

	appLogger.Info("Starting database seeding...")
	if err := newSeeder.SeedAdmin(ctx, cfg.Admin); err != nil {
		appLogger.Fatal("Failed to seed admin", zap.Error(err))
	}
	appLogger.Info("Database seeding completed successfully")
}
