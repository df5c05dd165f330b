package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rewardwallet/internal/domain"
)

// WithdrawalHandler serves user withdrawals and the admin review queue
type WithdrawalHandler struct {
	withdrawalUseCase domain.WithdrawalUseCase
}

// NewWithdrawalHandler creates a new withdrawal handler
func NewWithdrawalHandler(withdrawalUseCase domain.WithdrawalUseCase) *WithdrawalHandler {
	return &WithdrawalHandler{withdrawalUseCase: withdrawalUseCase}
}

// WithdrawRequest represents a withdrawal request body
type WithdrawRequest struct {
	Amount      int64              `json:"amount" binding:"required" example:"500"`
	BankDetails domain.BankDetails `json:"bankDetails"`
}

// WithdrawResponse is returned after the request was filed
type WithdrawResponse struct {
	Success           bool                      `json:"success" example:"true"`
	Message           string                    `json:"message" example:"Withdrawal request submitted successfully"`
	Request           *domain.WithdrawalRequest `json:"request"`
	NewWinningBalance int64                     `json:"newWinningBalance" example:"250"`
}

// WithdrawalListResponse is one page of withdrawal requests
type WithdrawalListResponse struct {
	Success    bool                        `json:"success" example:"true"`
	Requests   []*domain.WithdrawalRequest `json:"requests"`
	Pagination domain.Pagination           `json:"pagination"`
}

// ProcessWithdrawalRequest is the admin decision on a request
type ProcessWithdrawalRequest struct {
	Status     string `json:"status" binding:"required" example:"approved"`
	AdminNotes string `json:"adminNotes" example:"Paid via NEFT"`
}

// ProcessWithdrawalResponse is the processed request
type ProcessWithdrawalResponse struct {
	Success bool                      `json:"success" example:"true"`
	Message string                    `json:"message" example:"Withdrawal request approved"`
	Request *domain.WithdrawalRequest `json:"request"`
}

func listResponse(requests []*domain.WithdrawalRequest, pagination domain.Pagination) WithdrawalListResponse {
	if requests == nil {
		requests = []*domain.WithdrawalRequest{}
	}
	return WithdrawalListResponse{Success: true, Requests: requests, Pagination: pagination}
}

// RequestWithdrawal handles a withdrawal request
// @Summary Request withdrawal
// @Description Hold the amount from the winning balance, at most 50000 per day
// @Tags withdrawals
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body WithdrawRequest true "Amount and bank details"
// @Success 200 {object} WithdrawResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /withdrawal/request [post]
func (h *WithdrawalHandler) RequestWithdrawal(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	var req WithdrawRequest
	if !bindJSON(c, &req, "Amount and bank details are required") {
		return
	}

	result, err := h.withdrawalUseCase.RequestWithdrawal(c.Request.Context(), userID, req.Amount, req.BankDetails)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, WithdrawResponse{
		Success:           true,
		Message:           "Withdrawal request submitted successfully",
		Request:           result.Request,
		NewWinningBalance: result.NewWinningBalance,
	})
}

// History handles the user's withdrawal history
// @Summary Withdrawal history
// @Tags withdrawals
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} WithdrawalListResponse
// @Failure 401 {object} domain.ErrorResponse
// @Router /withdrawal/history [get]
func (h *WithdrawalHandler) History(c *gin.Context) {
	userID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	requests, pagination, err := h.withdrawalUseCase.History(c.Request.Context(), userID, pageRequest(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listResponse(requests, pagination))
}

// ListRequests handles the admin review queue
// @Summary List withdrawal requests (admin)
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status" Enums(pending, approved, rejected, completed) default(pending)
// @Param page query int false "Page" default(1)
// @Param limit query int false "Page size" default(10)
// @Success 200 {object} WithdrawalListResponse
// @Failure 401 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse
// @Router /withdrawal/requests [get]
func (h *WithdrawalHandler) ListRequests(c *gin.Context) {
	status := domain.WithdrawalStatus(c.Query("status"))
	requests, pagination, err := h.withdrawalUseCase.ListRequests(c.Request.Context(), status, pageRequest(c))
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, listResponse(requests, pagination))
}

// ProcessRequest handles an admin decision
// @Summary Process withdrawal request (admin)
// @Description pending to approved or rejected, approved to completed. Rejection refunds the winning balance.
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path int true "Withdrawal request ID"
// @Param request body ProcessWithdrawalRequest true "Decision"
// @Success 200 {object} ProcessWithdrawalResponse
// @Failure 400 {object} domain.ErrorResponse
// @Failure 403 {object} domain.ErrorResponse
// @Failure 404 {object} domain.ErrorResponse
// @Router /withdrawal/requests/{id}/process [post]
func (h *WithdrawalHandler) ProcessRequest(c *gin.Context) {
	adminID, ok := getAuthenticatedUserID(c)
	if !ok {
		return
	}

	requestID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || requestID <= 0 {
		_ = c.Error(domain.NewValidationError(domain.ErrCodeInvalidFormat, "Invalid withdrawal request id"))
		return
	}

	var req ProcessWithdrawalRequest
	if !bindJSON(c, &req, "Status is required") {
		return
	}

	processed, err := h.withdrawalUseCase.ProcessRequest(c.Request.Context(), adminID, requestID,
		domain.WithdrawalStatus(req.Status), req.AdminNotes)
	if err != nil {
		_ = c.Error(err)
		return
	}
	c.JSON(http.StatusOK, ProcessWithdrawalResponse{
		Success: true,
		Message: "Withdrawal request " + string(processed.Status),
		Request: processed,
	})
}
