package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// PaymentHandler serves the deposit endpoints
type PaymentHandler struct {
	walletUseCase domain.WalletUseCase
	logger        *logger.Logger
}

// NewPaymentHandler creates a new payment handler
func NewPaymentHandler(walletUseCase domain.WalletUseCase, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		walletUseCase: walletUseCase,
		logger:        logger,
	}
}

// CreateOrderRequest represents a deposit order request
type CreateOrderRequest struct {
	Amount int64 `json:"amount" binding:"required" example:"500"`
}

// CreateOrderResponse carries the gateway order used by the checkout
type CreateOrderResponse struct {
	Success bool                `json:"success" example:"true"`
	Order   domain.DepositOrder `json:"order"`
}

// VerifyPaymentRequest carries the gateway checkout result
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id" binding:"required" example:"order_N5xYz"`
	PaymentID string `json:"razorpay_payment_id" binding:"required" example:"pay_N5xZa"`
	Signature string `json:"razorpay_signature" binding:"required" example:"9f86d081884c7d65..."`
}

// VerifyPaymentResponse is returned after the deposit was credited
type VerifyPaymentResponse struct {
	Success bool     `json:"success" example:"true"`
	Message string   `json:"message" example:"Payment verified successfully"`
	Amount  int64    `json:"amount" example:"500"`
	User    UserInfo `json:"user"`
}

// PaymentHistoryResponse is one page of deposits
type PaymentHistoryResponse struct {
	Success    bool                     `json:"success" example:"true"`
	Payments   []*domain.PaymentHistory `json:"payments"`
	Pagination domain.Pagination        `json:"pagination"`
}

// CreateOrder handles deposit order creation
// @Summary Create deposit order
// @Description Create a gateway order for 100 to 50000
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body CreateOrderRequest true "Amount"
// @Success 200 {object} CreateOrderResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 500 {object} domain.ErrorResponse
// @Router /payment/create-order [post]
func (h *PaymentHandler) CreateOrder(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req CreateOrderRequest
	if !bindJSON(c, &req, "Amount is required") {
		return
	}

	order, err := h.walletUseCase.CreateDepositOrder(c.Request.Context(), userID, req.Amount)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, CreateOrderResponse{Success: true, Order: *order})
}

// VerifyPayment handles the checkout callback
// @Summary Verify deposit
// @Description Check the gateway signature and credit the deposit balance
// @Tags payments
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body VerifyPaymentRequest true "Checkout result"
// @Success 200 {object} VerifyPaymentResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /payment/verify-payment [post]
func (h *PaymentHandler) VerifyPayment(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req VerifyPaymentRequest
	if !bindJSON(c, &req, "Missing payment verification details") {
		return
	}

	result, err := h.walletUseCase.VerifyDeposit(c.Request.Context(), userID, req.OrderID, req.PaymentID, req.Signature)
	if err != nil {
		h.logger.WithContext(c.Request.Context()).Warn("Payment verification failed",
			zap.String("order_id", req.OrderID),
			zap.Error(err))
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, VerifyPaymentResponse{
		Success: true,
		Message: "Payment verified successfully",
		Amount:  result.Amount,
		User:    newUserInfo(result.User),
	})
}

// PaymentHistory handles the paginated deposit history
// @Summary Payment history
// @Tags payments
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} PaymentHistoryResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /payment/history [get]
func (h *PaymentHandler) PaymentHistory(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	payments, pagination, err := h.walletUseCase.PaymentHistory(c.Request.Context(), userID, pageRequest(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	if payments == nil {
		payments = []*domain.PaymentHistory{}
	}
	c.JSON(http.StatusOK, PaymentHistoryResponse{Success: true, Payments: payments, Pagination: pagination})
}
