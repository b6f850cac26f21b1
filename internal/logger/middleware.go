package logger

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDKey is the gin context key under which the request id is stored.
const RequestIDKey = "request_id"

// RequestID returns the correlation id assigned to the current request.
func RequestID(c *gin.Context) string {
	return c.GetString(RequestIDKey)
}

// Middleware assigns a correlation id to every request and logs its
// completion with method, path, status and duration.
func Middleware(c *gin.Context) {
	requestID := uuid.NewString()
	c.Set(RequestIDKey, requestID)
	c.Header("X-Request-ID", requestID)

	start := time.Now()
	c.Next()

	Log.Info("request completed",
		zap.String("request_id", requestID),
		zap.String("method", c.Request.Method),
		zap.String("path", c.Request.URL.Path),
		zap.Int("status", c.Writer.Status()),
		zap.Int64("duration_ms", time.Since(start).Milliseconds()),
		zap.String("ip", c.ClientIP()),
	)
}
