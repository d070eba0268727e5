package service

import (
	"context"
	"fmt"
	"time"

	"project_tracker/internal/domain"
)

// ProjectInput carries the writable fields of a project.
type ProjectInput struct {
	Title       string
	Description *string
}

func (in ProjectInput) normalize() (ProjectInput, error) {
	title, err := domain.NormalizeTitle(in.Title)
	if err != nil {
		return in, err
	}
	desc, err := domain.NormalizeDescription(in.Description)
	if err != nil {
		return in, err
	}
	return ProjectInput{Title: title, Description: desc}, nil
}

// ProjectService scopes every project operation to the requesting user.
// Progress is always derived from the current tasks, never stored.
type ProjectService struct {
	projects ProjectStore
	tasks    TaskStore
	now      func() time.Time
}

func NewProjectService(projects ProjectStore, tasks TaskStore) *ProjectService {
	return &ProjectService{projects: projects, tasks: tasks, now: time.Now}
}

// ListProjects returns one page of the user's projects, newest first.
func (s *ProjectService) ListProjects(ctx context.Context, userID int64, page, limit int) (domain.Paginated[domain.ProjectSummary], error) {
	req := domain.NewPageRequest(page, limit)

	rows, total, err := s.projects.ListByUser(ctx, userID, req.Limit, req.Offset())
	if err != nil {
		return domain.Paginated[domain.ProjectSummary]{}, fmt.Errorf("list projects: %w", err)
	}

	items := make([]domain.ProjectSummary, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.Summary())
	}
	return domain.NewPaginated(items, total, req), nil
}

func (s *ProjectService) GetProjectDetails(ctx context.Context, projectID, userID int64) (*domain.ProjectDetails, error) {
	p, err := s.projects.GetByIDAndUser(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	tasks, err := s.tasks.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return domain.NewProjectDetails(p, tasks), nil
}

func (s *ProjectService) CreateProject(ctx context.Context, userID int64, in ProjectInput) (*domain.ProjectSummary, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	p := &domain.Project{
		UserID:      userID,
		Title:       in.Title,
		Description: in.Description,
		CreatedAt:   s.now().UTC(),
	}
	if err := s.projects.Create(ctx, p); err != nil {
		return nil, fmt.Errorf("create project: %w", err)
	}
	return &domain.ProjectSummary{Project: *p, Stats: domain.NewProgress(0, 0)}, nil
}

// UpdateProject replaces title and description and returns the project with
// fresh stats.
func (s *ProjectService) UpdateProject(ctx context.Context, projectID, userID int64, in ProjectInput) (*domain.ProjectSummary, error) {
	in, err := in.normalize()
	if err != nil {
		return nil, err
	}

	p, err := s.projects.GetByIDAndUser(ctx, projectID, userID)
	if err != nil {
		return nil, err
	}
	p.Title = in.Title
	p.Description = in.Description
	if err := s.projects.Update(ctx, p); err != nil {
		return nil, err
	}

	tasks, err := s.tasks.ListByProject(ctx, p.ID)
	if err != nil {
		return nil, fmt.Errorf("list tasks: %w", err)
	}
	return &domain.ProjectSummary{Project: *p, Stats: domain.ProgressOf(tasks)}, nil
}

// DeleteProject removes the project and all of its tasks. It reports false
// when the project is missing or not owned by userID.
func (s *ProjectService) DeleteProject(ctx context.Context, projectID, userID int64) (bool, error) {
	ok, err := s.projects.Delete(ctx, projectID, userID)
	if err != nil {
		return false, fmt.Errorf("delete project: %w", err)
	}
	return ok, nil
}

func (s *ProjectService) GetProjectProgress(ctx context.Context, projectID, userID int64) (domain.Progress, error) {
	details, err := s.GetProjectDetails(ctx, projectID, userID)
	if err != nil {
		return domain.Progress{}, err
	}
	return details.Stats, nil
}
