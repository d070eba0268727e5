package main

import (
	"context"
	"fmt"

	"project_tracker/internal/config"
	"project_tracker/internal/db"
	"project_tracker/internal/logger"
	"project_tracker/internal/repository"
	"project_tracker/internal/service"
)

// Seeds the demo accounts and prints a token for the first one, handy for
// curl sessions against a local server.
func main() {
	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	ctx := context.Background()
	users := repository.NewUserRepository(pool)
	hasher := service.NewBcryptHasher(cfg.BcryptCost)

	n, err := service.SeedDemoUsers(ctx, users, hasher, service.DemoUsers)
	if err != nil {
		logger.Fatal("seed failed", "error", err)
	}
	logger.Info("demo users seeded", "created", n)

	first := service.DemoUsers[0]
	u, err := users.GetByEmail(ctx, first.Email)
	if err != nil {
		logger.Fatal("demo user missing after seed", "email", first.Email, "error", err)
	}

	tokens := service.NewTokenIssuer(cfg.JWTSecret, cfg.JWTIssuer, cfg.JWTAudience)
	token, exp, err := tokens.Issue(u)
	if err != nil {
		logger.Fatal("failed to generate token", "error", err)
	}

	fmt.Printf("user id=%d email=%s password=%s\n", u.ID, u.Email, first.Password)
	fmt.Printf("token (expires %s):\n%s\n", exp.Format("2006-01-02 15:04:05 MST"), token)
}
