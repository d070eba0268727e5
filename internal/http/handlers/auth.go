package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// Login exchanges email and password for a session token.
func (h *Handler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	res, err := h.Auth.Login(ctx, req.Email, req.Password)
	if err != nil {
		writeError(c, err)
		return
	}

	h.Audit.LogLogin(ctx, res.User.ID, c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, res)
}
