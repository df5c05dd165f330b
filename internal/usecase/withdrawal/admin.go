package withdrawal

import (
	"context"
	"fmt"

	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/usecase"
	"go.uber.org/zap"
)

func validStatus(s domain.WithdrawalStatus) bool {
	switch s {
	case domain.WithdrawalStatusPending, domain.WithdrawalStatusApproved,
		domain.WithdrawalStatusRejected, domain.WithdrawalStatusCompleted:
		return true
	}
	return false
}

// ListRequests returns one page of requests in status, pending by default
func (uc *WithdrawalUseCase) ListRequests(ctx context.Context, status domain.WithdrawalStatus, page domain.PageRequest) ([]*domain.WithdrawalRequest, domain.Pagination, error) {
	if status == "" {
		status = domain.WithdrawalStatusPending
	}
	if !validStatus(status) {
		return nil, domain.Pagination{}, domain.NewValidationError(domain.ErrCodeInvalidFormat, "Invalid withdrawal status")
	}

	requests, total, err := uc.withdrawalRepo.ListByStatus(ctx, status, page.Limit, page.Offset())
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list withdrawal requests", zap.String("status", string(status)), zap.Error(err))
		return nil, domain.Pagination{}, domain.NewDatabaseError("list withdrawal requests", err)
	}
	return requests, domain.NewPagination(page.Page, page.Limit, total), nil
}

// ProcessRequest moves a request to status on behalf of adminID. Rejection returns the held
// amount to the owner's winning balance.
func (uc *WithdrawalUseCase) ProcessRequest(ctx context.Context, adminID, requestID int64, status domain.WithdrawalStatus, notes string) (*domain.WithdrawalRequest, error) {
	log := uc.logger.WithContext(ctx)
	log.Info("Processing withdrawal request",
		zap.Int64("admin_id", adminID),
		zap.Int64("request_id", requestID),
		zap.String("status", string(status)))

	if !validStatus(status) || status == domain.WithdrawalStatusPending {
		return nil, domain.NewValidationError(domain.ErrCodeInvalidFormat, "Status must be approved, rejected or completed")
	}

	var processed *domain.WithdrawalRequest
	err := uc.txManager.WithinTransaction(ctx, func(ctx context.Context) error {
		request, err := uc.withdrawalRepo.GetByIDForUpdate(ctx, requestID)
		if err != nil {
			return domain.NewDatabaseError("get withdrawal", err)
		}
		if request == nil {
			return domain.NewNotFoundError(domain.ErrCodeWithdrawalNotFound, "Withdrawal request")
		}
		if !request.Status.CanTransitionTo(status) {
			return domain.NewBusinessError(domain.ErrCodeInvalidStatusTransition,
				fmt.Sprintf("Cannot change status from %s to %s", request.Status, status))
		}

		if status == domain.WithdrawalStatusRejected {
			err := uc.mutator.Mutate(ctx, request.UserID, func(ctx context.Context, user *domain.User) error {
				user.ApplyEarnings(request.Amount, domain.CategoryWinning)
				return nil
			})
			if err != nil {
				return err
			}
		}

		now := uc.now()
		request.Status = status
		request.AdminNotes = notes
		request.ProcessedAt = &now
		request.ProcessedBy = &adminID
		if err := uc.withdrawalRepo.Update(ctx, request); err != nil {
			return domain.NewDatabaseError("update withdrawal", err)
		}

		processed = request
		return nil
	})
	if err != nil {
		log.Warn("Withdrawal processing failed", zap.Int64("request_id", requestID), zap.Error(err))
		return nil, usecase.DatabaseError("process withdrawal", err)
	}

	log.Info("Withdrawal request processed",
		zap.Int64("request_id", requestID),
		zap.Int64("user_id", processed.UserID),
		zap.String("status", string(processed.Status)))
	return processed, nil
}
