package wallet

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"github.com/saradorri/rewardwallet/internal/domain"
	"go.uber.org/zap"
)

const (
	maxReceiptLength = 40
	paymentMethod    = "razorpay"
)

// receiptFor builds the gateway receipt id of a new order
func receiptFor(userID int64, unixMilli int64) string {
	id := strconv.FormatInt(userID, 10)
	if len(id) > 8 {
		id = id[len(id)-8:]
	}
	receipt := "rcpt_" + id + "_" + strconv.FormatInt(unixMilli, 36)
	if len(receipt) > maxReceiptLength {
		receipt = receipt[:maxReceiptLength]
	}
	return receipt
}

// gatewayError maps a gateway failure. Rejections by the gateway are shown to the client.
func gatewayError(op string, err error) error {
	var gwErr *domain.PaymentGatewayError
	if errors.As(err, &gwErr) && gwErr.Is4xxError() && gwErr.Description != "" {
		return domain.NewAppError(domain.ErrCodeExternalService, gwErr.Description, http.StatusBadRequest, err)
	}
	return domain.NewExternalServiceError("razorpay", op, err)
}

// CreateDepositOrder opens a gateway order and records it as a pending payment
func (uc *WalletUseCase) CreateDepositOrder(ctx context.Context, userID int64, amount int64) (*domain.DepositOrder, error) {
	log := uc.logger.WithContext(ctx)
	log.Info("Creating deposit order", zap.Int64("user_id", userID), zap.Int64("amount", amount))

	if amount < domain.MinDeposit {
		return nil, domain.NewValidationError(domain.ErrCodeInvalidAmount, "Minimum deposit amount is ₹100")
	}
	if amount > domain.MaxDeposit {
		return nil, domain.NewValidationError(domain.ErrCodeInvalidAmount, "Maximum deposit amount is ₹50,000")
	}

	receipt := receiptFor(userID, uc.now().UnixMilli())
	notes := map[string]string{
		"userId":  strconv.FormatInt(userID, 10),
		"purpose": "wallet_recharge",
	}

	order, err := uc.gateway.CreateOrder(ctx, amount*100, uc.currency, receipt, notes)
	if err != nil {
		log.Error("Failed to create gateway order",
			zap.Int64("user_id", userID),
			zap.String("receipt", receipt),
			zap.Error(err))
		return nil, gatewayError("create order", err)
	}

	if order.Currency == "" {
		order.Currency = uc.currency
	}

	payment := &domain.PaymentHistory{
		UserID:        userID,
		OrderID:       order.ID,
		Receipt:       receipt,
		Amount:        amount,
		Currency:      order.Currency,
		Status:        domain.PaymentStatusPending,
		PaymentMethod: paymentMethod,
	}
	if err := uc.paymentRepo.Create(ctx, payment); err != nil {
		log.Error("Failed to record payment",
			zap.Int64("user_id", userID),
			zap.String("order_id", order.ID),
			zap.Error(err))
		return nil, domain.NewDatabaseError("create payment", err)
	}

	log.Info("Deposit order created", zap.Int64("user_id", userID), zap.String("order_id", order.ID))
	return &domain.DepositOrder{
		OrderID:  order.ID,
		Amount:   order.Amount,
		Currency: order.Currency,
		Key:      uc.gateway.KeyID(),
	}, nil
}

// VerifyDeposit checks the gateway signature, then completes the payment and credits
// the deposit balance in one transaction
func (uc *WalletUseCase) VerifyDeposit(ctx context.Context, userID int64, orderID, paymentID, signature string) (*domain.DepositResult, error) {
	log := uc.logger.WithContext(ctx)
	log.Info("Verifying deposit",
		zap.Int64("user_id", userID),
		zap.String("order_id", orderID),
		zap.String("payment_id", paymentID))

	if !uc.gateway.VerifySignature(orderID, paymentID, signature) {
		log.Warn("Invalid payment signature", zap.Int64("user_id", userID), zap.String("order_id", orderID))
		return nil, domain.NewBusinessError(domain.ErrCodeInvalidSignature, "Payment verification failed")
	}

	var result *domain.DepositResult
	err := uc.mutator.Mutate(ctx, userID, func(ctx context.Context, user *domain.User) error {
		payment, err := uc.paymentRepo.GetByOrderIDForUpdate(ctx, orderID, userID)
		if err != nil {
			return domain.NewDatabaseError("get payment", err)
		}
		if payment == nil {
			return domain.NewNotFoundError(domain.ErrCodePaymentNotFound, "Payment record")
		}
		if payment.Status == domain.PaymentStatusCompleted {
			return domain.NewBusinessError(domain.ErrCodePaymentAlreadyCompleted, "Payment already verified")
		}

		payment.MarkCompleted(paymentID, signature, uc.now())
		if err := uc.paymentRepo.Update(ctx, payment); err != nil {
			return domain.NewDatabaseError("complete payment", err)
		}

		user.ApplyEarnings(payment.Amount, domain.CategoryDeposit)
		result = &domain.DepositResult{Amount: payment.Amount, User: user}
		return nil
	})
	if err != nil {
		log.Warn("Deposit verification failed",
			zap.Int64("user_id", userID),
			zap.String("order_id", orderID),
			zap.Error(err))
		return nil, err
	}

	log.Info("Deposit credited",
		zap.Int64("user_id", userID),
		zap.Int64("amount", result.Amount),
		zap.Int64("new_balance", result.User.TotalEarnings))
	return result, nil
}

// PaymentHistory returns one page of the user's payments
func (uc *WalletUseCase) PaymentHistory(ctx context.Context, userID int64, page domain.PageRequest) ([]*domain.PaymentHistory, domain.Pagination, error) {
	payments, total, err := uc.paymentRepo.ListByUser(ctx, userID, page.Limit, page.Offset())
	if err != nil {
		uc.logger.WithContext(ctx).Error("Failed to list payments", zap.Int64("user_id", userID), zap.Error(err))
		return nil, domain.Pagination{}, domain.NewDatabaseError("list payments", err)
	}
	return payments, domain.NewPagination(page.Page, page.Limit, total), nil
}
