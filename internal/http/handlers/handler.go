package handlers

import (
	"context"
	"strconv"

	"project_tracker/internal/domain"
	"project_tracker/internal/service"

	"github.com/gin-gonic/gin"
)

// AuthService is the login and identity side used by the handlers.
type AuthService interface {
	Login(ctx context.Context, email, password string) (*service.LoginResult, error)
	CurrentUser(ctx context.Context, userID int64) (*domain.PublicUser, error)
}

type ProjectService interface {
	ListProjects(ctx context.Context, userID int64, page, limit int) (domain.Paginated[domain.ProjectSummary], error)
	GetProjectDetails(ctx context.Context, projectID, userID int64) (*domain.ProjectDetails, error)
	CreateProject(ctx context.Context, userID int64, in service.ProjectInput) (*domain.ProjectSummary, error)
	UpdateProject(ctx context.Context, projectID, userID int64, in service.ProjectInput) (*domain.ProjectSummary, error)
	DeleteProject(ctx context.Context, projectID, userID int64) (bool, error)
	GetProjectProgress(ctx context.Context, projectID, userID int64) (domain.Progress, error)
}

type TaskService interface {
	ListTasks(ctx context.Context, projectID, userID int64) ([]*domain.Task, error)
	GetTask(ctx context.Context, taskID, projectID, userID int64) (*domain.Task, error)
	CreateTask(ctx context.Context, projectID, userID int64, in service.TaskInput) (*domain.Task, error)
	UpdateTask(ctx context.Context, taskID, projectID, userID int64, in service.TaskInput) (*domain.Task, error)
	ToggleTaskCompletion(ctx context.Context, taskID, projectID, userID int64) (*domain.Task, error)
	DeleteTask(ctx context.Context, taskID, projectID, userID int64) (bool, error)
}

type AuditService interface {
	LogLogin(ctx context.Context, userID int64, ip, userAgent string)
	LogProject(ctx context.Context, userID int64, action string, projectID int64)
	LogTask(ctx context.Context, userID int64, action string, projectID, taskID int64)
	RecentActivity(ctx context.Context, userID int64, limit int) ([]*domain.AuditLog, error)
}

type Handler struct {
	Auth     AuthService
	Projects ProjectService
	Tasks    TaskService
	Audit    AuditService
}

func NewHandler(auth AuthService, projects ProjectService, tasks TaskService, audit AuditService) *Handler {
	return &Handler{Auth: auth, Projects: projects, Tasks: tasks, Audit: audit}
}

// getUserID извлекает user_id из контекста Gin
func getUserID(c interface{ Get(string) (any, bool) }) (int64, bool) {
	uidVal, ok := c.Get("user_id")
	if !ok {
		return 0, false
	}
	uid, ok := uidVal.(int64)
	return uid, ok
}

// requireUser returns the authenticated user id or answers 401.
func requireUser(c *gin.Context) (int64, bool) {
	uid, ok := getUserID(c)
	if !ok {
		writeError(c, domain.ErrUnauthorized)
		return 0, false
	}
	return uid, true
}

// pathID parses a positive integer path parameter or answers 400.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		badRequest(c, name+" must be a positive integer")
		return 0, false
	}
	return id, true
}

// queryInt reads an optional integer query parameter; absent or malformed
// values yield def.
func queryInt(c *gin.Context, name string, def int) int {
	v, ok := c.GetQuery(name)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}
