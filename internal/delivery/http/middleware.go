// Package http is the RL gateway: a thin gin wrapper over internal/session
// with no game logic of its own (spec.md §6 "Session control surface").
package http

import (
	"time"

	"mtgsim/internal/logger"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// LoggingMiddleware logs every request through the shared zap logger,
// adapted from the teacher's net/http LoggingMiddleware for gin's handler
// chain.
func LoggingMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		duration := time.Since(start)

		fields := []zap.Field{
			zap.Int("status", c.Writer.Status()),
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.String("remote_addr", c.Request.RemoteAddr),
			zap.Duration("duration", duration),
			zap.Int("size", c.Writer.Size()),
		}
		if c.Request.URL.RawQuery != "" {
			fields = append(fields, zap.String("query", c.Request.URL.RawQuery))
		}

		status := c.Writer.Status()
		msg := "HTTP request"
		switch {
		case status >= 500:
			logger.Get().Error(msg, fields...)
		case status >= 400:
			logger.Get().Warn(msg, fields...)
		default:
			logger.Get().Info(msg, fields...)
		}
	}
}

// Recovery logs a panic as an error response instead of crashing the
// process, mirroring the teacher's Recovery middleware contract.
func Recovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if r := recover(); r != nil {
				logger.Get().Error("panic recovered in HTTP handler", zap.Any("panic", r))
				c.JSON(500, gin.H{"error": "internal error"})
				c.Abort()
			}
		}()
		c.Next()
	}
}
