package handlers

import (
	"net/http"

	"project_tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

// ListProjects serves GET /projects?page=&limit=.
func (h *Handler) ListProjects(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	page := queryInt(c, "page", 1)
	limit := queryInt(c, "limit", domain.DefaultPageSize)

	res, err := h.Projects.ListProjects(c.Request.Context(), userID, page, limit)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func (h *Handler) GetProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	details, err := h.Projects.GetProjectDetails(c.Request.Context(), projectID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, details)
}

func (h *Handler) CreateProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	p, err := h.Projects.CreateProject(ctx, userID, req.input())
	if err != nil {
		writeError(c, err)
		return
	}

	h.Audit.LogProject(ctx, userID, domain.AuditActionProjectCreate, p.ID)
	c.JSON(http.StatusCreated, p)
}

func (h *Handler) UpdateProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req projectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	p, err := h.Projects.UpdateProject(ctx, projectID, userID, req.input())
	if err != nil {
		writeError(c, err)
		return
	}

	h.Audit.LogProject(ctx, userID, domain.AuditActionProjectUpdate, p.ID)
	c.JSON(http.StatusOK, p)
}

func (h *Handler) DeleteProject(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	ctx := c.Request.Context()
	deleted, err := h.Projects.DeleteProject(ctx, projectID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !deleted {
		writeError(c, domain.ErrNotFound)
		return
	}

	h.Audit.LogProject(ctx, userID, domain.AuditActionProjectDelete, projectID)
	c.Status(http.StatusNoContent)
}

func (h *Handler) ProjectProgress(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	projectID, ok := pathID(c, "id")
	if !ok {
		return
	}

	progress, err := h.Projects.GetProjectProgress(c.Request.Context(), projectID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, progress)
}
