package middleware

import (
	"crypto/subtle"

	"github.com/gin-gonic/gin"

	apperrors "rentorbuy/internal/errors"
)

// AdminAPIKey creates a Gin middleware that validates the X-API-Key header
// against the configured admin API key. An empty key disables the routes.
func AdminAPIKey(apiKey string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if apiKey == "" {
			abortWith(c, apperrors.ErrAdminNotConfigured)
			return
		}
		key := c.GetHeader("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(key), []byte(apiKey)) != 1 {
			abortWith(c, apperrors.ErrInvalidAPIKey)
			return
		}
		c.Next()
	}
}

func abortWith(c *gin.Context, err *apperrors.AppError) {
	c.AbortWithStatusJSON(err.StatusCode, err.Body())
}
