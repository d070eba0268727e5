package repository

import (
	"context"
	"errors"
	"fmt"

	"project_tracker/internal/db"
	"project_tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type ProjectRepository struct {
	db *pgxpool.Pool
}

func NewProjectRepository(db *pgxpool.Pool) *ProjectRepository {
	return &ProjectRepository{db: db}
}

// ListByUser returns one page of the user's projects, newest first, with the
// live task counters of each, and the user's total project count.
func (r *ProjectRepository) ListByUser(ctx context.Context, userID int64, limit, offset int) ([]*domain.ProjectWithCounts, int, error) {
	var total int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM projects WHERE user_id = $1`, userID).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count projects: %w", err)
	}
	if total == 0 {
		return nil, 0, nil
	}

	rows, err := r.db.Query(ctx, `
		SELECT p.id, p.user_id, p.title, p.description, p.created_at,
		       COUNT(t.id) AS total_tasks,
		       COUNT(t.id) FILTER (WHERE t.is_completed) AS completed_tasks
		FROM projects p
		LEFT JOIN tasks t ON t.project_id = p.id
		WHERE p.user_id = $1
		GROUP BY p.id
		ORDER BY p.created_at DESC, p.id DESC
		LIMIT $2 OFFSET $3`,
		userID, limit, offset,
	)
	if err != nil {
		return nil, 0, fmt.Errorf("list projects: %w", err)
	}
	defer rows.Close()

	var res []*domain.ProjectWithCounts
	for rows.Next() {
		var pc domain.ProjectWithCounts
		if err := rows.Scan(&pc.ID, &pc.UserID, &pc.Title, &pc.Description, &pc.CreatedAt,
			&pc.TotalTasks, &pc.CompletedTasks); err != nil {
			return nil, 0, fmt.Errorf("scan project: %w", err)
		}
		res = append(res, &pc)
	}
	return res, total, rows.Err()
}

// GetByIDAndUser returns domain.ErrNotFound when the project is missing or
// belongs to another user.
func (r *ProjectRepository) GetByIDAndUser(ctx context.Context, id, userID int64) (*domain.Project, error) {
	var p domain.Project
	err := r.db.QueryRow(ctx,
		`SELECT id, user_id, title, description, created_at
		 FROM projects
		 WHERE id = $1 AND user_id = $2`,
		id, userID,
	).Scan(&p.ID, &p.UserID, &p.Title, &p.Description, &p.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, fmt.Errorf("get project: %w", err)
	}
	return &p, nil
}

func (r *ProjectRepository) Exists(ctx context.Context, id, userID int64) (bool, error) {
	var ok bool
	err := r.db.QueryRow(ctx,
		`SELECT EXISTS (SELECT 1 FROM projects WHERE id = $1 AND user_id = $2)`,
		id, userID,
	).Scan(&ok)
	if err != nil {
		return false, fmt.Errorf("project exists: %w", err)
	}
	return ok, nil
}

func (r *ProjectRepository) Create(ctx context.Context, p *domain.Project) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO projects (user_id, title, description, created_at)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		p.UserID, p.Title, p.Description, p.CreatedAt,
	).Scan(&p.ID)
	if err != nil {
		return fmt.Errorf("insert project: %w", err)
	}
	return nil
}

// Update overwrites title and description of an owned project.
func (r *ProjectRepository) Update(ctx context.Context, p *domain.Project) error {
	tag, err := r.db.Exec(ctx,
		`UPDATE projects SET title = $1, description = $2
		 WHERE id = $3 AND user_id = $4`,
		p.Title, p.Description, p.ID, p.UserID,
	)
	if err != nil {
		return fmt.Errorf("update project: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// Delete removes an owned project together with its tasks in one transaction.
// It reports false when there was nothing owned to delete.
func (r *ProjectRepository) Delete(ctx context.Context, id, userID int64) (bool, error) {
	deleted := false
	err := db.WithTx(ctx, r.db, func(tx pgx.Tx) error {
		var locked int64
		err := tx.QueryRow(ctx,
			`SELECT id FROM projects WHERE id = $1 AND user_id = $2 FOR UPDATE`,
			id, userID,
		).Scan(&locked)
		if errors.Is(err, pgx.ErrNoRows) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("lock project: %w", err)
		}

		if _, err := tx.Exec(ctx, `DELETE FROM tasks WHERE project_id = $1`, id); err != nil {
			return fmt.Errorf("delete project tasks: %w", err)
		}
		if _, err := tx.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id); err != nil {
			return fmt.Errorf("delete project: %w", err)
		}
		deleted = true
		return nil
	})
	if err != nil {
		return false, err
	}
	return deleted, nil
}
