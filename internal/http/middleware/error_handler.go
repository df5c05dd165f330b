package middleware

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"runtime/debug"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"go.uber.org/zap"
)

const (
	// RequestIDHeader carries the request id in and out
	RequestIDHeader = "X-Request-ID"

	requestIDKey = "request_id"
	userIDKey    = "user_id"
)

// ErrorHandler provides centralized error handling
type ErrorHandler struct {
	logger *logger.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler(logger *logger.Logger) *ErrorHandler {
	return &ErrorHandler{
		logger: logger,
	}
}

// ErrorHandlerMiddleware recovers panics and renders the last error pushed with c.Error
func (h *ErrorHandler) ErrorHandlerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if recovered := recover(); recovered != nil {
				h.handlePanic(c, recovered)
			}
		}()

		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}
		h.render(c, c.Errors.Last().Err)
	}
}

// NoRoute renders unknown paths in the error envelope
func (h *ErrorHandler) NoRoute(c *gin.Context) {
	err := domain.NewAppError(domain.ErrCodeRouteNotFound,
		fmt.Sprintf("Route %s %s not found", c.Request.Method, c.Request.URL.Path), http.StatusNotFound, nil)
	c.JSON(http.StatusNotFound, domain.NewErrorResponse(err, getRequestID(c)))
}

func (h *ErrorHandler) render(c *gin.Context, err error) {
	log := h.logger.WithContext(c.Request.Context())

	appErr, ok := domain.IsAppError(err)
	if !ok {
		appErr = domain.NewInternalError("Something went wrong, please try again", err)
	}

	if appErr.HTTPStatus >= http.StatusInternalServerError {
		log.Error("Request failed",
			zap.String("code", appErr.Code),
			zap.String("path", c.Request.URL.Path),
			zap.String("method", c.Request.Method),
			zap.Error(err))
	} else {
		log.Debug("Request rejected",
			zap.String("code", appErr.Code),
			zap.String("path", c.Request.URL.Path),
			zap.String("message", appErr.Message))
	}

	c.JSON(appErr.HTTPStatus, domain.NewErrorResponse(appErr, getRequestID(c)))
}

// handlePanic handles panic recovery
func (h *ErrorHandler) handlePanic(c *gin.Context, recovered interface{}) {
	h.logger.WithContext(c.Request.Context()).Error("Panic recovered",
		zap.String("path", c.Request.URL.Path),
		zap.String("method", c.Request.Method),
		zap.Any("panic", recovered),
		zap.String("stack", string(debug.Stack())))

	err := domain.NewInternalError("Something went wrong, please try again", fmt.Errorf("panic: %v", recovered))
	c.AbortWithStatusJSON(http.StatusInternalServerError, domain.NewErrorResponse(err, getRequestID(c)))
}

// RequestIDMiddleware adds a unique request ID to each request
func (h *ErrorHandler) RequestIDMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(requestIDKey, requestID)
		c.Header(RequestIDHeader, requestID)
		c.Request = c.Request.WithContext(logger.ContextWithRequestID(c.Request.Context(), requestID))
		c.Next()
	}
}

// TimeoutMiddleware bounds the request context. Handlers that run past the deadline
// without writing a response get a TIMEOUT error.
func (h *ErrorHandler) TimeoutMiddleware(timeout time.Duration) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), timeout)
		defer cancel()

		c.Request = c.Request.WithContext(ctx)
		c.Next()

		if errors.Is(ctx.Err(), context.DeadlineExceeded) && !c.Writer.Written() {
			h.logger.WithContext(ctx).Warn("Request timed out",
				zap.String("path", c.Request.URL.Path),
				zap.String("method", c.Request.Method),
				zap.Duration("timeout", timeout))

			err := domain.NewAppError(domain.ErrCodeTimeout, "Request timeout", http.StatusGatewayTimeout, ctx.Err())
			c.AbortWithStatusJSON(http.StatusGatewayTimeout, domain.NewErrorResponse(err, getRequestID(c)))
		}
	}
}

func getRequestID(c *gin.Context) string {
	return c.GetString(requestIDKey)
}

// UserID returns the authenticated user id set by JWTMiddleware
func UserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok && id > 0
}
