package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"project_tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const taskColumns = `t.id, t.project_id, t.title, t.description, t.due_date, t.is_completed, t.created_at, t.completed_at`

type TaskRepository struct {
	db *pgxpool.Pool
}

func NewTaskRepository(db *pgxpool.Pool) *TaskRepository {
	return &TaskRepository{db: db}
}

// ListByProject returns the project's tasks, newest first.
func (r *TaskRepository) ListByProject(ctx context.Context, projectID int64) ([]*domain.Task, error) {
	rows, err := r.db.Query(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks t
		 WHERE t.project_id = $1
		 ORDER BY t.created_at DESC, t.id DESC`,
		projectID,
	)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	defer rows.Close()

	res := []*domain.Task{}
	for rows.Next() {
		t, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		res = append(res, t)
	}
	return res, rows.Err()
}

// GetForUser loads a task through its parent project's owner.
func (r *TaskRepository) GetForUser(ctx context.Context, taskID, projectID, userID int64) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`SELECT `+taskColumns+`
		 FROM tasks t
		 JOIN projects p ON p.id = t.project_id
		 WHERE t.id = $1 AND t.project_id = $2 AND p.user_id = $3`,
		taskID, projectID, userID,
	)
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	return t, err
}

func (r *TaskRepository) Create(ctx context.Context, t *domain.Task) error {
	err := r.db.QueryRow(ctx,
		`INSERT INTO tasks (project_id, title, description, due_date, is_completed, created_at, completed_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)
		 RETURNING id`,
		t.ProjectID, t.Title, t.Description, t.DueDate, t.IsCompleted, t.CreatedAt, t.CompletedAt,
	).Scan(&t.ID)
	if err != nil {
		return fmt.Errorf("insert task: %w", err)
	}
	return nil
}

// UpdateFields rewrites title, description and due date of a task still owned
// by userID and reloads the row. Completion columns are left alone.
func (r *TaskRepository) UpdateFields(ctx context.Context, t *domain.Task, userID int64) error {
	row := r.db.QueryRow(ctx,
		`UPDATE tasks t
		 SET title = $1, description = $2, due_date = $3
		 FROM projects p
		 WHERE t.id = $4 AND t.project_id = $5 AND p.id = t.project_id AND p.user_id = $6
		 RETURNING `+taskColumns,
		t.Title, t.Description, t.DueDate,
		t.ID, t.ProjectID, userID,
	)
	updated, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return domain.ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("update task: %w", err)
	}
	*t = *updated
	return nil
}

// Toggle flips is_completed in a single statement. Completing stamps
// completed_at with now, reopening clears it.
func (r *TaskRepository) Toggle(ctx context.Context, taskID, projectID, userID int64, now time.Time) (*domain.Task, error) {
	row := r.db.QueryRow(ctx,
		`UPDATE tasks t
		 SET is_completed = NOT t.is_completed,
		     completed_at = CASE WHEN t.is_completed THEN NULL ELSE $4::timestamptz END
		 FROM projects p
		 WHERE t.id = $1 AND t.project_id = $2 AND p.id = t.project_id AND p.user_id = $3
		 RETURNING `+taskColumns,
		taskID, projectID, userID, now,
	)
	t, err := scanTask(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("toggle task: %w", err)
	}
	return t, nil
}

func (r *TaskRepository) Delete(ctx context.Context, taskID, projectID, userID int64) (bool, error) {
	tag, err := r.db.Exec(ctx,
		`DELETE FROM tasks t
		 USING projects p
		 WHERE t.id = $1 AND t.project_id = $2 AND p.id = t.project_id AND p.user_id = $3`,
		taskID, projectID, userID,
	)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

func scanTask(row pgx.Row) (*domain.Task, error) {
	var t domain.Task
	if err := row.Scan(&t.ID, &t.ProjectID, &t.Title, &t.Description, &t.DueDate,
		&t.IsCompleted, &t.CreatedAt, &t.CompletedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("scan task: %w", err)
	}
	return &t, nil
}
