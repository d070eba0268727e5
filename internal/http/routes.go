package http

import (
	"project_tracker/internal/config"
	"project_tracker/internal/http/handlers"
	"project_tracker/internal/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Deps is everything the router needs from main.
type Deps struct {
	Handler *handlers.Handler
	Health  *handlers.HealthHandler
	Tokens  middleware.TokenParser
	Limiter middleware.Limiter
	Config  *config.Config
}

// NewRouter builds the gin engine with the global middleware chain and all routes.
func NewRouter(d Deps) *gin.Engine {
	r := gin.New()
	r.Use(
		gin.Recovery(),
		middleware.RequestID(),
		middleware.AccessLog(),
		middleware.Metrics(),
		middleware.CORS(d.Config.CORSAllowOrigin),
	)
	RegisterRoutes(r, d)
	return r
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	// Health checks and metrics (no rate limiting)
	r.GET("/health", d.Health.Health)
	r.GET("/healthz", d.Health.Liveness)
	r.GET("/readyz", d.Health.Readiness)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	cfg := d.Config

	// API v1 routes
	v1 := r.Group("/api/v1")
	v1.Use(middleware.RateLimit(d.Limiter, "api", cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(v1, d)

	// Unversioned /api kept for existing clients
	api := r.Group("/api")
	api.Use(middleware.RateLimit(d.Limiter, "api", cfg.APIRateLimit, cfg.APIRateWindow))
	registerAPIRoutes(api, d)
}

func registerAPIRoutes(api *gin.RouterGroup, d Deps) {
	h := d.Handler
	cfg := d.Config

	// Auth
	api.POST("/auth/login", middleware.RateLimit(d.Limiter, "auth", cfg.AuthRateLimit, cfg.AuthRateWindow), h.Login)

	authed := api.Group("")
	authed.Use(middleware.JWT(d.Tokens))

	// Current user
	authed.GET("/me", h.Me)
	authed.GET("/me/activity", h.MyActivity)

	// Projects
	projects := authed.Group("/projects")
	{
		projects.GET("", h.ListProjects)
		projects.POST("", h.CreateProject)
		projects.GET("/:id", h.GetProject)
		projects.PUT("/:id", h.UpdateProject)
		projects.DELETE("/:id", h.DeleteProject)
		projects.GET("/:id/progress", h.ProjectProgress)
	}

	// Tasks
	tasks := authed.Group("/tasks")
	{
		tasks.GET("", h.ListTasks)
		tasks.POST("", h.CreateTask)
		tasks.POST("/:projectId", h.CreateTask)
		tasks.GET("/:projectId/:taskId", h.GetTask)
		tasks.PUT("/:projectId/:taskId", h.UpdateTask)
		tasks.DELETE("/:projectId/:taskId", h.DeleteTask)
		tasks.PATCH("/:projectId/:taskId/toggle", h.ToggleTask)
		tasks.PATCH("/:projectId/:taskId/complete", h.ToggleTask)
	}
}
