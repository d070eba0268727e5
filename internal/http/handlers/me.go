package handlers

import (
	"net/http"

	"project_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

func (h *Handler) Me(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	user, err := h.Auth.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, user)
}

// MyActivity lists the caller's own audit entries, newest first.
func (h *Handler) MyActivity(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	limit := queryInt(c, "limit", service.DefaultActivityLimit)
	logs, err := h.Audit.RecentActivity(c.Request.Context(), userID, limit)
	if err != nil {
		writeError(c, err)
		return
	}

	c.JSON(http.StatusOK, logs)
}
