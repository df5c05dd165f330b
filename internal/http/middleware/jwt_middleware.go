package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/auth"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
)

// JWTMiddleware creates JWT authentication middleware
func JWTMiddleware(jwtService auth.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			abort(c, domain.NewAppError(domain.ErrCodeTokenMissing, "Access denied. No token provided.", 401, nil))
			return
		}

		if !strings.HasPrefix(authHeader, "Bearer ") {
			abort(c, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid authorization header format", 401, nil))
			return
		}

		claims, err := jwtService.ValidateToken(strings.TrimPrefix(authHeader, "Bearer "))
		if err != nil {
			abort(c, domain.NewAppError(domain.ErrCodeTokenInvalid, "Invalid token", 401, err))
			return
		}

		c.Set(userIDKey, claims.UserID)
		c.Set("email", claims.Email)
		c.Request = c.Request.WithContext(logger.ContextWithUserID(c.Request.Context(), claims.UserID))
		c.Next()
	}
}

// AdminMiddleware lets only admin accounts through. It must run after JWTMiddleware.
func AdminMiddleware(userRepo domain.UserRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID, ok := UserID(c)
		if !ok {
			abort(c, domain.NewUnauthorizedError("User not authenticated"))
			return
		}

		user, err := userRepo.GetByID(c.Request.Context(), userID)
		if err != nil {
			abort(c, domain.NewDatabaseError("get admin", err))
			return
		}
		if user == nil || !user.IsAdmin {
			abort(c, domain.NewForbiddenError("Admin access required"))
			return
		}
		c.Next()
	}
}

// abort stops the chain and leaves rendering to ErrorHandlerMiddleware
func abort(c *gin.Context, err *domain.AppError) {
	_ = c.Error(err)
	c.Abort()
}
