package middleware

import (
	"time"

	"github.com/Karthikeya51/DreamSync-Backend/application/ports/outbound"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const ContextRequestIDKey = "requestID"

func RequestLogger(logger outbound.LoggerPort) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		requestID := uuid.NewString()
		c.Set(ContextRequestIDKey, requestID)

		c.Next()

		logger.InfoWithFields("request completed", map[string]interface{}{
			"request_id":  requestID,
			"method":      c.Request.Method,
			"path":        c.Request.URL.Path,
			"status":      c.Writer.Status(),
			"duration_ms": time.Since(start).Milliseconds(),
		})
	}
}
