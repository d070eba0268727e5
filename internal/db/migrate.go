package db

import (
	"context"
	"fmt"

	"project_tracker/internal/migrations"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies goose command ("up", "down", "status", ...) with the
// embedded migrations against the pool.
func Migrate(ctx context.Context, pool *pgxpool.Pool, command string) error {
	sqlDB := stdlib.OpenDBFromPool(pool)
	defer sqlDB.Close()

	goose.SetBaseFS(migrations.FS)
	if err := goose.SetDialect("postgres"); err != nil {
		return err
	}

	if err := goose.RunContext(ctx, command, sqlDB, "."); err != nil {
		return fmt.Errorf("goose %s: %w", command, err)
	}
	return nil
}
