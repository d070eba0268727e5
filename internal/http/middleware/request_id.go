package middleware

import (
	"time"

	"project_tracker/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	RequestIDHeader = "X-Request-ID"
	RequestIDKey    = "request_id"
)

// RequestID reuses a sane incoming X-Request-ID or generates one, echoes it in
// the response and attaches a request scoped logger to the request context.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		c.Set(RequestIDKey, id)
		c.Header(RequestIDHeader, id)

		l := logger.Get().With("request_id", id)
		c.Request = c.Request.WithContext(logger.NewContext(c.Request.Context(), l))

		c.Next()
	}
}

// AccessLog writes one line per request. It must run after RequestID.
func AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path

		c.Next()

		status := c.Writer.Status()
		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"latency_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if uid, ok := c.Get(UserIDKey); ok {
			args = append(args, "user_id", uid)
		}
		if len(c.Errors) > 0 {
			args = append(args, "errors", c.Errors.String())
		}

		l := logger.WithContext(c.Request.Context())
		switch {
		case status >= 500:
			l.Error("request", args...)
		case status >= 400:
			l.Warn("request", args...)
		default:
			l.Info("request", args...)
		}
	}
}
