package middleware

import (
	"context"
	"net/http"
	"strconv"
	"sync"
	"time"

	"project_tracker/internal/logger"

	"github.com/gin-gonic/gin"
)

// Limiter counts hits for key inside a fixed window and returns the count
// including this hit.
type Limiter interface {
	Hit(ctx context.Context, key string, window time.Duration) (int64, error)
}

type clientInfo struct {
	start time.Time
	count int64
}

// MemoryLimiter is a per-process fixed-window limiter used when Redis is not
// configured.
type MemoryLimiter struct {
	mu      sync.Mutex
	clients map[string]*clientInfo
	now     func() time.Time
}

func NewMemoryLimiter() *MemoryLimiter {
	return &MemoryLimiter{clients: make(map[string]*clientInfo), now: time.Now}
}

func (l *MemoryLimiter) Hit(_ context.Context, key string, window time.Duration) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	ci, ok := l.clients[key]
	if !ok || now.Sub(ci.start) >= window {
		l.clients[key] = &clientInfo{start: now, count: 1}
		l.sweep(now, window)
		return 1, nil
	}
	ci.count++
	return ci.count, nil
}

// sweep drops windows that ended long ago so idle clients do not pile up.
func (l *MemoryLimiter) sweep(now time.Time, window time.Duration) {
	if len(l.clients) < 1024 {
		return
	}
	for k, ci := range l.clients {
		if now.Sub(ci.start) >= 2*window {
			delete(l.clients, k)
		}
	}
}

// RateLimit blocks a client ip that sends more than maxRequests per window.
// Limiter errors let the request through.
func RateLimit(l Limiter, scope string, maxRequests int, window time.Duration) gin.HandlerFunc {
	windowSecs := strconv.FormatInt(int64(window.Seconds()), 10)
	return func(c *gin.Context) {
		key := "rl:" + scope + ":" + windowSecs + ":" + c.ClientIP()

		val, err := l.Hit(c.Request.Context(), key, window)
		if err != nil {
			logger.WithContext(c.Request.Context()).Warn("rate limiter unavailable", "error", err)
			c.Header("X-RateLimit-Error", "limiter-error")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(maxRequests))
		c.Header("X-RateLimit-Remaining", strconv.FormatInt(max(0, int64(maxRequests)-val), 10))

		if val > int64(maxRequests) {
			RLBlocked.WithLabelValues(scope).Inc()
			c.Header("Retry-After", windowSecs)
			c.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"error":   "rate_limited",
				"message": "rate limit exceeded",
			})
			return
		}

		RLRequests.WithLabelValues(scope).Inc()
		c.Next()
	}
}
