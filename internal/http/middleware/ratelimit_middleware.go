package middleware

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rewardwallet/internal/domain"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
	"go.uber.org/zap"
)

// RateLimitMiddleware allows limit requests per client IP and window under scope.
// Limiter failures let the request through.
func RateLimitMiddleware(limiter domain.RateLimiter, scope string, limit int, window time.Duration, log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if limit <= 0 {
			c.Next()
			return
		}

		key := scope + ":" + c.ClientIP()
		allowed, err := limiter.Allow(c.Request.Context(), key, limit, window)
		if err != nil {
			log.WithContext(c.Request.Context()).Warn("Rate limiter unavailable", zap.String("key", key), zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			abort(c, domain.NewAppError(domain.ErrCodeRateLimited,
				"Too many requests. Please try again later.", http.StatusTooManyRequests, nil))
			return
		}
		c.Next()
	}
}
