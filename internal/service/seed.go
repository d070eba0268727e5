package service

import (
	"context"
	"errors"
	"fmt"

	"project_tracker/internal/domain"
	"project_tracker/internal/logger"
)

// DemoUser is an account created by SeedDemoUsers.
type DemoUser struct {
	Email    string
	Name     string
	Password string
}

var DemoUsers = []DemoUser{
	{Email: "alice@example.com", Name: "Alice Johnson", Password: "password123"},
	{Email: "bob@example.com", Name: "Bob Smith", Password: "password123"},
	{Email: "carol@example.com", Name: "Carol Davis", Password: "password123"},
}

// SeedDemoUsers creates the given accounts when the users table is empty and
// returns how many were created.
func SeedDemoUsers(ctx context.Context, users UserStore, hasher PasswordHasher, demo []DemoUser) (int, error) {
	n, err := users.Count(ctx)
	if err != nil {
		return 0, fmt.Errorf("count users: %w", err)
	}
	if n > 0 {
		logger.Debug("users present, skipping demo seed", "count", n)
		return 0, nil
	}

	created := 0
	for _, d := range demo {
		hash, err := hasher.Hash(d.Password)
		if err != nil {
			return created, fmt.Errorf("hash password: %w", err)
		}
		u := &domain.User{Email: d.Email, Name: d.Name, PasswordHash: hash}
		if err := users.Create(ctx, u); err != nil {
			if errors.Is(err, domain.ErrEmailTaken) {
				continue
			}
			return created, fmt.Errorf("create %s: %w", d.Email, err)
		}
		logger.Info("demo user created", "email", d.Email, "user_id", u.ID)
		created++
	}
	return created, nil
}
