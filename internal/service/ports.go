package service

import (
	"context"
	"time"

	"project_tracker/internal/domain"
)

// The service layer depends on these; internal/repository implements them
// over pgx and the tests implement them in memory.

type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	GetByID(ctx context.Context, id int64) (*domain.User, error)
	Create(ctx context.Context, u *domain.User) error
	Count(ctx context.Context) (int, error)
}

type ProjectStore interface {
	ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.ProjectWithCounts, int, error)
	GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.Project, error)
	Exists(ctx context.Context, id, userID int64) (bool, error)
	Create(ctx context.Context, p *domain.Project) error
	Update(ctx context.Context, p *domain.Project) error
	Delete(ctx context.Context, id, userID int64) (bool, error)
}

type TaskStore interface {
	ListByProject(ctx context.Context, projectID int64) ([]*domain.Task, error)
	GetForUser(ctx context.Context, taskID, projectID, userID int64) (*domain.Task, error)
	Create(ctx context.Context, t *domain.Task) error
	UpdateFields(ctx context.Context, t *domain.Task, userID int64) error
	Toggle(ctx context.Context, taskID, projectID, userID int64, now time.Time) (*domain.Task, error)
	Delete(ctx context.Context, taskID, projectID, userID int64) (bool, error)
}

type AuditStore interface {
	Create(ctx context.Context, log *domain.AuditLog) error
	ListByUser(ctx context.Context, userID int64, limit int) ([]*domain.AuditLog, error)
}

type PasswordHasher interface {
	Hash(password string) (string, error)
	Verify(password, hash string) bool
}
