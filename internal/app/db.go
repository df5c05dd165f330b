package app

import (
	"context"

	"github.com/saradorri/rewardwallet/internal/infrastructure/repository"
	"go.uber.org/fx"
	"gorm.io/gorm"
)

func (a *application) InitDatabase(lc fx.Lifecycle) (*gorm.DB, error) {
	db, err := repository.NewDatabase(a.config.GetDSN(), a.config.Database)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.Hook{
		OnStop: func(context.Context) error {
			return repository.Close(db)
		},
	})
	return db, nil
}
