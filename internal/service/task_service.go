package service

import (
	"context"
	"fmt"
	"time"

	"project_tracker/internal/domain"
)

// TaskInput carries the writable fields of a task.
type TaskInput struct {
	Title       string
	Description *string
	DueDate     *time.Time
}

func (in TaskInput) normalize() (TaskInput, error) {
	title, err := domain.NormalizeTitle(in.Title)
	if err != nil {
		return in, err
	}
	desc, err := domain.NormalizeDescription(in.Description)
	if err != nil {
		return in, err
	}
	return TaskInput{Title: title, Description: desc, DueDate: in.DueDate}, nil
}

// TaskService manages tasks inside projects owned by the requesting user.
// A task in someone else's project is reported as domain.ErrNotFound.
type TaskService struct {
	projects ProjectStore
	tasks    TaskStore
	now      func() time.Time
}

func NewTaskService(projects ProjectStore, tasks TaskStore) *TaskService {
	return &TaskService{projects: projects, tasks: tasks, now: time.Now}
}

// ListTasks returns the project's tasks, newest first. A missing or foreign
// project yields an empty list.
func (s *TaskService) ListTasks(ctx context.Context, projectID, userID int64) ([]*domain.Task, error) {
	owned, err := s.projects.Exists(ctx, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}
	if !owned {
		return []*domain.Task{}, nil
	}
	tasks, err := s.tasks.ListByProject(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return tasks, nil
}

func (s *TaskService) GetTask(ctx context.Context, taskID, projectID, userID int64) (*domain.Task, error) {
	return s.tasks.GetForUser(ctx, taskID, projectID, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, projectID, userID int64, in TaskInput) (*domain.Task, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	owned, err := s.projects.Exists(ctx, projectID, userID)
	if err != nil {
		return nil, fmt.Errorf("check project: %w", err)
	}
	if !owned {
		return nil, domain.ErrNotFound
	}

	t := &domain.Task{
		ProjectID:   projectID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.tasks.Create(ctx, t); err != nil {
		return nil, fmt.Errorf("create task: %w", err)
	}
	return t, nil
}

// UpdateTask replaces title, description and due date. Completion state is
// only changed by ToggleTaskCompletion.
func (s *TaskService) UpdateTask(ctx context.Context, taskID, projectID, userID int64, in TaskInput) (*domain.Task, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	t := &domain.Task{
		ID:          taskID,
		ProjectID:   projectID,
		Title:       in.Title,
		Description: in.Description,
		DueDate:     in.DueDate,
	}
	if err := s.tasks.UpdateFields(ctx, t, userID); err != nil {
		return nil, err
	}
	return t, nil
}

func (s *TaskService) ToggleTaskCompletion(ctx context.Context, taskID, projectID, userID int64) (*domain.Task, error) {
	return s.tasks.Toggle(ctx, taskID, projectID, userID, s.now().UTC())
}

// DeleteTask reports false when the task is missing or outside the user's
// projects.
func (s *TaskService) DeleteTask(ctx context.Context, taskID, projectID, userID int64) (bool, error) {
	ok, err := s.tasks.Delete(ctx, taskID, projectID, userID)
	if err != nil {
		return false, fmt.Errorf("delete task: %w", err)
	}
	return ok, nil
}
