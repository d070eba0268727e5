package db

import (
	"context"
	"fmt"
	"time"

	"project_tracker/internal/logger"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Open creates a pool for dsn and verifies it with a ping.
func Open(ctx context.Context, dsn string) (*pgxpool.Pool, error) {
	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := pool.Ping(pingCtx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}
	return pool, nil
}

// Connect is Open for main packages.
func Connect(dsn string) *pgxpool.Pool {
	pool, err := Open(context.Background(), dsn)
	if err != nil {
		logger.Fatal("failed to connect database", "error", err)
	}

	logger.Info("database connected")
	return pool
}
