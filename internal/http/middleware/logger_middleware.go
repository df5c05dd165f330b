package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/saradorri/rewardwallet/internal/infrastructure/logger"
)

// LoggerMiddleware creates a middleware that logs HTTP requests in structured format
func LoggerMiddleware(log *logger.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		entry := log.WithRequest(
			c.Request.Context(),
			c.Request.Method,
			c.Request.URL.Path,
			c.ClientIP(),
			c.Writer.Status(),
			time.Since(start).String(),
			c.Writer.Size(),
		)
		if c.Writer.Status() >= 500 {
			entry.Warn("HTTP Request Processed")
			return
		}
		entry.Info("HTTP Request Processed")
	}
}
