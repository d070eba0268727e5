package handlers

import (
	"net/http"
	"strconv"

	"project_tracker/internal/domain"

	"github.com/gin-gonic/gin"
)

// queryProjectID reads the required ?projectId= of the flat task routes.
func queryProjectID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Query("projectId"), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, "projectId must be a positive integer")
		return 0, false
	}
	return id, true
}

// taskPath reads /:projectId/:taskId.
func taskPath(c *gin.Context) (projectID, taskID int64, ok bool) {
	if projectID, ok = pathID(c, "projectId"); !ok {
		return 0, 0, false
	}
	if taskID, ok = pathID(c, "taskId"); !ok {
		return 0, 0, false
	}
	return projectID, taskID, true
}

// ListTasks serves GET /tasks?projectId=. A missing projectId or a project
// the caller does not own yields an empty list; a malformed one is a 400.
func (h *Handler) ListTasks(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	if c.Query("projectId") == "" {
		c.JSON(http.StatusOK, []domain.Task{})
		return
	}
	projectID, ok := queryProjectID(c)
	if !ok {
		return
	}

	tasks, err := h.Tasks.ListTasks(c.Request.Context(), projectID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, tasks)
}

// CreateTask serves POST /tasks/:projectId and POST /tasks?projectId=.
func (h *Handler) CreateTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	var projectID int64
	switch {
	case c.Param("projectId") != "":
		if projectID, ok = pathID(c, "projectId"); !ok {
			return
		}
	case c.Query("projectId") == "" && req.ProjectID > 0:
		projectID = req.ProjectID
	default:
		if projectID, ok = queryProjectID(c); !ok {
			return
		}
	}

	ctx := c.Request.Context()
	task, err := h.Tasks.CreateTask(ctx, projectID, userID, req.input())
	if err != nil {
		writeError(c, err)
		return
	}

	h.Audit.LogTask(ctx, userID, domain.AuditActionTaskCreate, projectID, task.ID)
	c.JSON(http.StatusCreated, task)
}

func (h *Handler) GetTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	projectID, taskID, ok := taskPath(c)
	if !ok {
		return
	}

	task, err := h.Tasks.GetTask(c.Request.Context(), taskID, projectID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, task)
}

func (h *Handler) UpdateTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	projectID, taskID, ok := taskPath(c)
	if !ok {
		return
	}

	var req taskRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err)
		return
	}

	ctx := c.Request.Context()
	task, err := h.Tasks.UpdateTask(ctx, taskID, projectID, userID, req.input())
	if err != nil {
		writeError(c, err)
		return
	}

	h.Audit.LogTask(ctx, userID, domain.AuditActionTaskUpdate, projectID, taskID)
	c.JSON(http.StatusOK, task)
}

// ToggleTask flips completion. Mounted on both .../toggle and .../complete.
func (h *Handler) ToggleTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	projectID, taskID, ok := taskPath(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	task, err := h.Tasks.ToggleTaskCompletion(ctx, taskID, projectID, userID)
	if err != nil {
		writeError(c, err)
		return
	}

	action := domain.AuditActionTaskReopen
	if task.IsCompleted {
		action = domain.AuditActionTaskComplete
	}
	h.Audit.LogTask(ctx, userID, action, projectID, taskID)
	c.JSON(http.StatusOK, task)
}

func (h *Handler) DeleteTask(c *gin.Context) {
	userID, ok := requireUser(c)
	if !ok {
		return
	}
	projectID, taskID, ok := taskPath(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	deleted, err := h.Tasks.DeleteTask(ctx, taskID, projectID, userID)
	if err != nil {
		writeError(c, err)
		return
	}
	if !deleted {
		writeError(c, domain.ErrNotFound)
		return
	}

	h.Audit.LogTask(ctx, userID, domain.AuditActionTaskDelete, projectID, taskID)
	c.Status(http.StatusNoContent)
}
