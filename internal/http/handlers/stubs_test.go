package handlers

import (
	"context"
	"sync"
	"time"

	"project_tracker/internal/domain"
	"project_tracker/internal/service"
)

// Stubs keep only what the handler tests assert on; ownership and
// validation rules themselves are tested in the service package.

type stubAuth struct {
	result *service.LoginResult
	err    error
	user   *domain.PublicUser
}

func (s *stubAuth) Login(context.Context, string, string) (*service.LoginResult, error) {
	return s.result, s.err
}

func (s *stubAuth) CurrentUser(_ context.Context, userID int64) (*domain.PublicUser, error) {
	if s.user == nil || s.user.ID != userID {
		return nil, domain.ErrNotFound
	}
	return s.user, nil
}

// stubProjects answers for a single project owned by owner.
type stubProjects struct {
	owner    int64
	project  domain.Project
	tasks    []*domain.Task
	lastPage [2]int
	err      error
}

func (s *stubProjects) ListProjects(_ context.Context, userID int64, page, limit int) (domain.Paginated[domain.ProjectSummary], error) {
	s.lastPage = [2]int{page, limit}
	req := domain.NewPageRequest(page, limit)
	if s.err != nil {
		return domain.Paginated[domain.ProjectSummary]{}, s.err
	}
	if userID != s.owner {
		return domain.NewPaginated[domain.ProjectSummary](nil, 0, req), nil
	}
	item := domain.ProjectSummary{Project: s.project, Stats: domain.ProgressOf(s.tasks)}
	return domain.NewPaginated([]domain.ProjectSummary{item}, 1, req), nil
}

func (s *stubProjects) GetProjectDetails(_ context.Context, projectID, userID int64) (*domain.ProjectDetails, error) {
	if projectID != s.project.ID || userID != s.owner {
		return nil, domain.ErrNotFound
	}
	return domain.NewProjectDetails(&s.project, s.tasks), nil
}

func (s *stubProjects) CreateProject(_ context.Context, userID int64, in service.ProjectInput) (*domain.ProjectSummary, error) {
	title, err := domain.NormalizeTitle(in.Title)
	if err != nil {
		return nil, err
	}
	return &domain.ProjectSummary{Project: domain.Project{ID: 99, UserID: userID, Title: title, CreatedAt: time.Now()}}, nil
}

func (s *stubProjects) UpdateProject(_ context.Context, projectID, userID int64, in service.ProjectInput) (*domain.ProjectSummary, error) {
	if projectID != s.project.ID || userID != s.owner {
		return nil, domain.ErrNotFound
	}
	p := s.project
	p.Title = in.Title
	return &domain.ProjectSummary{Project: p}, nil
}

func (s *stubProjects) DeleteProject(_ context.Context, projectID, userID int64) (bool, error) {
	return projectID == s.project.ID && userID == s.owner, s.err
}

func (s *stubProjects) GetProjectProgress(_ context.Context, projectID, userID int64) (domain.Progress, error) {
	if projectID != s.project.ID || userID != s.owner {
		return domain.Progress{}, domain.ErrNotFound
	}
	return domain.ProgressOf(s.tasks), nil
}

// stubTasks holds tasks of project projectID owned by owner.
type stubTasks struct {
	owner     int64
	projectID int64
	tasks     map[int64]*domain.Task
	created   *service.TaskInput
}

func (s *stubTasks) owns(projectID, userID int64) bool {
	return projectID == s.projectID && userID == s.owner
}

func (s *stubTasks) ListTasks(_ context.Context, projectID, userID int64) ([]*domain.Task, error) {
	out := []*domain.Task{}
	if !s.owns(projectID, userID) {
		return out, nil
	}
	for _, t := range s.tasks {
		out = append(out, t)
	}
	return out, nil
}

func (s *stubTasks) GetTask(_ context.Context, taskID, projectID, userID int64) (*domain.Task, error) {
	t, ok := s.tasks[taskID]
	if !ok || !s.owns(projectID, userID) {
		return nil, domain.ErrNotFound
	}
	return t, nil
}

func (s *stubTasks) CreateTask(_ context.Context, projectID, userID int64, in service.TaskInput) (*domain.Task, error) {
	if _, err := domain.NormalizeTitle(in.Title); err != nil {
		return nil, err
	}
	if !s.owns(projectID, userID) {
		return nil, domain.ErrNotFound
	}
	s.created = &in
	return &domain.Task{ID: 500, ProjectID: projectID, Title: in.Title, DueDate: in.DueDate}, nil
}

func (s *stubTasks) UpdateTask(ctx context.Context, taskID, projectID, userID int64, in service.TaskInput) (*domain.Task, error) {
	t, err := s.GetTask(ctx, taskID, projectID, userID)
	if err != nil {
		return nil, err
	}
	t.Title = in.Title
	return t, nil
}

func (s *stubTasks) ToggleTaskCompletion(ctx context.Context, taskID, projectID, userID int64) (*domain.Task, error) {
	t, err := s.GetTask(ctx, taskID, projectID, userID)
	if err != nil {
		return nil, err
	}
	t.Toggle(time.Now())
	return t, nil
}

func (s *stubTasks) DeleteTask(_ context.Context, taskID, projectID, userID int64) (bool, error) {
	if _, ok := s.tasks[taskID]; !ok || !s.owns(projectID, userID) {
		return false, nil
	}
	delete(s.tasks, taskID)
	return true, nil
}

type auditEntry struct {
	userID int64
	action string
}

type stubAudit struct {
	mu      sync.Mutex
	entries []auditEntry
}

func (s *stubAudit) add(userID int64, action string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries, auditEntry{userID, action})
}

func (s *stubAudit) actions() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]string, 0, len(s.entries))
	for _, e := range s.entries {
		out = append(out, e.action)
	}
	return out
}

func (s *stubAudit) LogLogin(_ context.Context, userID int64, _, _ string) {
	s.add(userID, domain.AuditActionLogin)
}

func (s *stubAudit) LogProject(_ context.Context, userID int64, action string, _ int64) {
	s.add(userID, action)
}

func (s *stubAudit) LogTask(_ context.Context, userID int64, action string, _, _ int64) {
	s.add(userID, action)
}

func (s *stubAudit) RecentActivity(_ context.Context, userID int64, limit int) ([]*domain.AuditLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.AuditLog{}
	for i := len(s.entries) - 1; i >= 0 && len(out) < limit; i-- {
		if s.entries[i].userID == userID {
			out = append(out, &domain.AuditLog{UserID: userID, Action: s.entries[i].action})
		}
	}
	return out, nil
}
