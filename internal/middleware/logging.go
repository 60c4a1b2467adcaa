package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"rentorbuy/internal/logger"
	"rentorbuy/internal/uuid"
)

// RequestIDKey is the gin context key holding the current request ID.
const RequestIDKey = "requestID"

const requestIDHeader = "X-Request-ID"

// RequestLogging returns a Gin middleware that tags each request with an ID,
// stores a request-scoped logger in the request context, and logs method,
// path, status code, latency, and client IP using Zap. A valid X-Request-ID
// header from the caller is reused.
func RequestLogging() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		requestID := uuid.RequestID(c.GetHeader(requestIDHeader))
		c.Set(RequestIDKey, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		log := logger.Get().With("request_id", requestID)
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), log))

		c.Next()

		log.Infow("request",
			"method", c.Request.Method,
			"path", c.Request.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		)
	}
}

// GetRequestID returns the ID assigned by RequestLogging, or "".
func GetRequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}
