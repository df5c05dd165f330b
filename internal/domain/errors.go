package domain

import (
	"errors"
	"fmt"
	"net/http"
	"time"
)

// ErrDuplicateKey is returned by repositories when a unique constraint is violated
var ErrDuplicateKey = errors.New("duplicate key")

// AppError represents an application error
type AppError struct {
	Code       string    `json:"code"`
	Message    string    `json:"message"`
	HTTPStatus int       `json:"-"`
	Timestamp  time.Time `json:"timestamp"`
	Err        error     `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s", e.Message, e.Err.Error())
	}
	return e.Message
}

// Unwrap returns the underlying error
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewAppError creates a new application error
func NewAppError(code, message string, httpStatus int, err error) *AppError {
	return &AppError{
		Code:       code,
		Message:    message,
		HTTPStatus: httpStatus,
		Timestamp:  time.Now(),
		Err:        err,
	}
}

// NewValidationError creates a validation error
func NewValidationError(code, message string) *AppError {
	return NewAppError(code, message, http.StatusBadRequest, nil)
}

// NewBusinessError creates a business rule violation. Nothing was mutated when it is returned.
func NewBusinessError(code, message string) *AppError {
	return NewAppError(code, message, http.StatusBadRequest, nil)
}

// NewNotFoundError creates a not found error
func NewNotFoundError(code, resource string) *AppError {
	return NewAppError(code, fmt.Sprintf("%s not found", resource), http.StatusNotFound, nil)
}

// NewUnauthorizedError creates an unauthorized error
func NewUnauthorizedError(message string) *AppError {
	if message == "" {
		message = "Unauthorized access"
	}
	return NewAppError(ErrCodeUnauthorized, message, http.StatusUnauthorized, nil)
}

// NewForbiddenError creates a forbidden error
func NewForbiddenError(message string) *AppError {
	if message == "" {
		message = "Access forbidden"
	}
	return NewAppError(ErrCodeForbidden, message, http.StatusForbidden, nil)
}

// NewInternalError creates an internal server error
func NewInternalError(message string, err error) *AppError {
	if message == "" {
		message = "Internal server error"
	}
	return NewAppError(ErrCodeInternal, message, http.StatusInternalServerError, err)
}

// NewDatabaseError creates a database error. The operation is kept for the logs only.
func NewDatabaseError(operation string, err error) *AppError {
	return NewAppError(
		ErrCodeDatabase,
		"Something went wrong, please try again",
		http.StatusInternalServerError,
		fmt.Errorf("%s: %w", operation, err),
	)
}

// NewExternalServiceError creates an external service error
func NewExternalServiceError(service, operation string, err error) *AppError {
	return NewAppError(
		ErrCodeExternalService,
		"Something went wrong, please try again",
		http.StatusInternalServerError,
		fmt.Errorf("external service '%s' operation '%s' failed: %w", service, operation, err),
	)
}

// ErrorResponse represents the standard error envelope
type ErrorResponse struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Code      string `json:"code,omitempty"`
	RequestID string `json:"requestId,omitempty"`
}

// NewErrorResponse creates a new error response
func NewErrorResponse(err *AppError, requestID string) ErrorResponse {
	return ErrorResponse{
		Success:   false,
		Error:     err.Message,
		Code:      err.Code,
		RequestID: requestID,
	}
}

// IsAppError checks if an error is an AppError
func IsAppError(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// HasCode reports whether err is an AppError carrying code.
func HasCode(err error, code string) bool {
	appErr, ok := IsAppError(err)
	return ok && appErr.Code == code
}

// Error codes for different categories of errors
const (
	ErrCodeUnauthorized = "UNAUTHORIZED"
	ErrCodeForbidden    = "FORBIDDEN"
	ErrCodeTokenInvalid = "TOKEN_INVALID"
	ErrCodeTokenMissing = "TOKEN_MISSING"
	ErrCodeRateLimited  = "RATE_LIMITED"
	ErrCodeTimeout      = "TIMEOUT"

	ErrCodeUserNotFound      = "USER_NOT_FOUND"
	ErrCodeUserAlreadyExists = "USER_ALREADY_EXISTS"
	ErrCodeOTPExpired        = "OTP_EXPIRED"
	ErrCodeInvalidOTP        = "INVALID_OTP"
	ErrCodeOTPDeliveryFailed = "OTP_DELIVERY_FAILED"

	ErrCodeInvalidMode                = "INVALID_MODE"
	ErrCodeGuessOutOfRange            = "GUESS_OUT_OF_RANGE"
	ErrCodeInsufficientBalance        = "INSUFFICIENT_BALANCE"
	ErrCodeInsufficientWinningBalance = "INSUFFICIENT_WINNING_BALANCE"
	ErrCodeDailyLimitExceeded         = "DAILY_LIMIT_EXCEEDED"
	ErrCodeBonusAlreadyClaimed        = "BONUS_ALREADY_CLAIMED"

	ErrCodeInvalidAmount           = "INVALID_AMOUNT"
	ErrCodeInvalidSignature        = "INVALID_SIGNATURE"
	ErrCodePaymentNotFound         = "PAYMENT_NOT_FOUND"
	ErrCodePaymentAlreadyCompleted = "PAYMENT_ALREADY_COMPLETED"

	ErrCodeWithdrawalNotFound      = "WITHDRAWAL_NOT_FOUND"
	ErrCodeInvalidStatusTransition = "INVALID_STATUS_TRANSITION"

	ErrCodeRequiredField = "REQUIRED_FIELD"
	ErrCodeInvalidFormat = "INVALID_FORMAT"
	ErrCodeRouteNotFound = "ROUTE_NOT_FOUND"

	ErrCodeInternal        = "INTERNAL_ERROR"
	ErrCodeDatabase        = "DATABASE_ERROR"
	ErrCodeExternalService = "EXTERNAL_SERVICE_ERROR"
	ErrCodeLockTimeout     = "LOCK_TIMEOUT"
)
