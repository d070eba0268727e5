package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"project_tracker/internal/config"
	"project_tracker/internal/db"
	httpServer "project_tracker/internal/http"
	"project_tracker/internal/http/handlers"
	"project_tracker/internal/http/middleware"
	"project_tracker/internal/logger"
	"project_tracker/internal/repository"
	"project_tracker/internal/service"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"
)

var version = "dev"

func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbPool := db.Connect(cfg.DatabaseURL)
	defer dbPool.Close()

	if cfg.AutoMigrate {
		if err := db.Migrate(ctx, dbPool, "up"); err != nil {
			logger.Fatal("migrations failed", "error", err)
		}
		logger.Info("migrations applied")
	}

	users := repository.NewUserRepository(dbPool)
	projects := repository.NewProjectRepository(dbPool)
	tasks := repository.NewTaskRepository(dbPool)
	audits := repository.NewAuditRepository(dbPool)

	hasher := service.NewBcryptHasher(cfg.BcryptCost)
	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)

	if cfg.SeedDemoUsers {
		n, err := service.SeedDemoUsers(ctx, users, hasher, service.DemoUsers)
		if err != nil {
			logger.Fatal("seeding demo users failed", "error", err)
		}
		logger.Info("demo users seeded", "created", n)
	}

	var limiter middleware.Limiter = middleware.NewMemoryLimiter()
	if cfg.RedisAddr != "" {
		client, err := middleware.NewRedisClient(ctx, cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
		if err != nil {
			logger.Warn("redis unavailable, using in-memory rate limiter", "error", err)
		} else {
			defer client.Close()
			limiter = middleware.NewRedisLimiter(client)
			logger.Info("redis rate limiter enabled", "addr", cfg.RedisAddr)
		}
	}

	h := handlers.NewHandler(
		service.NewAuthService(users, hasher, tokens),
		service.NewProjectService(projects, tasks),
		service.NewTaskService(projects, tasks),
		service.NewAuditService(audits),
	)

	gin.SetMode(gin.ReleaseMode)
	r := httpServer.NewRouter(httpServer.Deps{
		Handler: h,
		Health:  handlers.NewHealthHandler(dbPool, version),
		Tokens:  tokens,
		Limiter: limiter,
		Config:  cfg,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.AppPort,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server started", "port", cfg.AppPort, "version", version)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("server stopped with error", "error", err)
		os.Exit(1)
	}
	logger.Info("server exited")
}
