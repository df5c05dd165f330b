package app

import (
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/repository"
	"gorm.io/gorm"
)

func (a *application) InitTxManager(db *gorm.DB) domain.TxManager {
	return repository.NewTxManager(db)
}

func (a *application) InitUserRepository(db *gorm.DB) domain.UserRepository {
	return repository.NewUserRepository(db)
}

func (a *application) InitGameHistoryRepository(db *gorm.DB) domain.GameHistoryRepository {
	return repository.NewGameHistoryRepository(db)
}

func (a *application) InitSpinHistoryRepository(db *gorm.DB) domain.SpinHistoryRepository {
	return repository.NewSpinHistoryRepository(db)
}

func (a *application) InitPaymentRepository(db *gorm.DB) domain.PaymentRepository {
	return repository.NewPaymentRepository(db)
}

func (a *application) InitWithdrawalRepository(db *gorm.DB) domain.WithdrawalRepository {
	return repository.NewWithdrawalRepository(db)
}
