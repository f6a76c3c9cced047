// Package middleware provides gin middleware for the admin gateway:
// request logging, request IDs and Prometheus instrumentation.
package middleware

import (
	"log/slog"
	"time"

	"github.com/gin-gonic/gin"
)

// SlogRequestLogger logs every request before dispatch (protocol, method, URI)
// and its outcome at debug level once the handler chain returns.
func SlogRequestLogger(logger *slog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		if logger == nil {
			c.Next()
			return
		}

		start := time.Now()
		req := c.Request
		requestID := c.GetString(RequestIDKey)

		logger.Info("admin request",
			"proto", req.Proto,
			"method", req.Method,
			"uri", req.RequestURI,
			"request_id", requestID,
		)

		c.Next()

		logger.Debug("admin response",
			"method", req.Method,
			"path", req.URL.Path,
			"status", c.Writer.Status(),
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
			"request_id", requestID,
		)
	}
}
