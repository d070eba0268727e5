package main

import (
	"context"
	"flag"
	"os"
	"os/signal"

	"project_tracker/internal/config"
	"project_tracker/internal/db"
	"project_tracker/internal/logger"
)

func main() {
	command := flag.String("command", "up", "goose command: up, down, status, redo, reset, version")
	flag.Parse()

	cfg := config.Load()
	logger.Init(cfg.LogLevel, cfg.LogJSON)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool := db.Connect(cfg.DatabaseURL)
	defer pool.Close()

	if err := db.Migrate(ctx, pool, *command); err != nil {
		logger.Fatal("migration failed", "command", *command, "error", err)
	}
	logger.Info("migration finished", "command", *command)
}
