package handlers

import (
	"context"
	"fmt"
	"net/http"
	"runtime"
	"time"

	"github.com/gin-gonic/gin"
)

// Pinger is satisfied by *pgxpool.Pool.
type Pinger interface {
	Ping(ctx context.Context) error
}

// HealthHandler serves the unauthenticated liveness and readiness endpoints.
type HealthHandler struct {
	db      Pinger
	started time.Time
	version string
}

func NewHealthHandler(db Pinger, version string) *HealthHandler {
	return &HealthHandler{db: db, started: time.Now(), version: version}
}

type HealthResponse struct {
	Status    string            `json:"status"`
	Version   string            `json:"version,omitempty"`
	Uptime    string            `json:"uptime,omitempty"`
	Timestamp string            `json:"timestamp"`
	Checks    map[string]string `json:"checks,omitempty"`
}

func (h *HealthHandler) pingDB(ctx context.Context, timeout time.Duration) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return h.db.Ping(ctx)
}

// Liveness only proves the process serves HTTP.
func (h *HealthHandler) Liveness(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Health answers 503 when the database does not respond.
func (h *HealthHandler) Health(c *gin.Context) {
	if err := h.pingDB(c.Request.Context(), 3*time.Second); err != nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy", "error": "database unavailable"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok", "version": h.version})
}

// Readiness adds uptime, memory and per-dependency detail.
func (h *HealthHandler) Readiness(c *gin.Context) {
	resp := HealthResponse{
		Status:    "healthy",
		Version:   h.version,
		Uptime:    time.Since(h.started).Round(time.Second).String(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
		Checks:    map[string]string{"database": "healthy"},
	}
	code := http.StatusOK

	if err := h.pingDB(c.Request.Context(), 5*time.Second); err != nil {
		resp.Status = "unhealthy"
		resp.Checks["database"] = "unhealthy: " + err.Error()
		code = http.StatusServiceUnavailable
	}

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	resp.Checks["memory_alloc_mb"] = fmt.Sprintf("%.2f", float64(m.Alloc)/1024/1024)

	c.JSON(code, resp)
}
