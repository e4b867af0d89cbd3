package middleware

import (
	"runtime/debug"

	"megaferia-backend/internal/shared/response"
	"megaferia-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Recovery turns a panic in a later handler into a 500 envelope.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				logger.FromContext(c.Request.Context()).Error().
					Interface("panic", err).
					Bytes("stack", debug.Stack()).
					Msg("Panic recovered")

				response.InternalError(c)
			}
		}()

		c.Next()
	}
}
