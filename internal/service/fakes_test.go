package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"project_tracker/internal/domain"
)

// memDB backs the in-memory stores used by the service tests.
type memDB struct {
	mu       sync.Mutex
	nextID   int64
	users    map[int64]*domain.User
	projects map[int64]*domain.Project
	tasks    map[int64]*domain.Task
	audit    []*domain.AuditLog
	auditErr error
}

func newMemDB() *memDB {
	return &memDB{
		users:    map[int64]*domain.User{},
		projects: map[int64]*domain.Project{},
		tasks:    map[int64]*domain.Task{},
	}
}

func (m *memDB) id() int64 {
	m.nextID++
	return m.nextID
}

type memUsers struct{ *memDB }

func (s memUsers) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (s memUsers) GetByID(_ context.Context, id int64) (*domain.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (s memUsers) Create(_ context.Context, u *domain.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Email == u.Email {
			return domain.ErrEmailTaken
		}
	}
	u.ID = s.id()
	u.CreatedAt = time.Now()
	cp := *u
	s.users[u.ID] = &cp
	return nil
}

func (s memUsers) Count(context.Context) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.users), nil
}

type memProjects struct{ *memDB }

func (s memProjects) ListByUser(_ context.Context, userID int64, limit, offset int) ([]*domain.ProjectWithCounts, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var owned []*domain.Project
	for _, p := range s.projects {
		if p.UserID == userID {
			owned = append(owned, p)
		}
	}
	sort.Slice(owned, func(i, j int) bool {
		if !owned[i].CreatedAt.Equal(owned[j].CreatedAt) {
			return owned[i].CreatedAt.After(owned[j].CreatedAt)
		}
		return owned[i].ID > owned[j].ID
	})

	total := len(owned)
	if offset >= total {
		return []*domain.ProjectWithCounts{}, total, nil
	}
	end := min(offset+limit, total)

	out := make([]*domain.ProjectWithCounts, 0, end-offset)
	for _, p := range owned[offset:end] {
		row := &domain.ProjectWithCounts{Project: *p}
		for _, t := range s.tasks {
			if t.ProjectID == p.ID {
				row.TotalTasks++
				if t.IsCompleted {
					row.CompletedTasks++
				}
			}
		}
		out = append(out, row)
	}
	return out, total, nil
}

func (s memProjects) GetByIDAndUser(_ context.Context, id, userID int64) (*domain.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok || p.UserID != userID {
		return nil, domain.ErrNotFound
	}
	cp := *p
	return &cp, nil
}

func (s memProjects) Exists(_ context.Context, id, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	return ok && p.UserID == userID, nil
}

func (s memProjects) Create(_ context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	p.ID = s.id()
	cp := *p
	s.projects[p.ID] = &cp
	return nil
}

func (s memProjects) Update(_ context.Context, p *domain.Project) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	existing, ok := s.projects[p.ID]
	if !ok || existing.UserID != p.UserID {
		return domain.ErrNotFound
	}
	cp := *p
	s.projects[p.ID] = &cp
	return nil
}

func (s memProjects) Delete(_ context.Context, id, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.projects[id]
	if !ok || p.UserID != userID {
		return false, nil
	}
	for tid, t := range s.tasks {
		if t.ProjectID == id {
			delete(s.tasks, tid)
		}
	}
	delete(s.projects, id)
	return true, nil
}

type memTasks struct{ *memDB }

func (s memTasks) ListByProject(_ context.Context, projectID int64) ([]*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.Task{}
	for _, t := range s.tasks {
		if t.ProjectID == projectID {
			cp := *t
			out = append(out, &cp)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].CreatedAt.After(out[j].CreatedAt)
		}
		return out[i].ID > out[j].ID
	})
	return out, nil
}

func (s memTasks) owned(taskID, projectID, userID int64) (*domain.Task, bool) {
	t, ok := s.tasks[taskID]
	if !ok || t.ProjectID != projectID {
		return nil, false
	}
	p, ok := s.projects[projectID]
	if !ok || p.UserID != userID {
		return nil, false
	}
	return t, true
}

func (s memTasks) GetForUser(_ context.Context, taskID, projectID, userID int64) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	t, ok := s.owned(taskID, projectID, userID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *t
	return &cp, nil
}

func (s memTasks) Create(_ context.Context, t *domain.Task) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.id()
	cp := *t
	s.tasks[t.ID] = &cp
	return nil
}

func (s memTasks) UpdateFields(_ context.Context, t *domain.Task, userID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.owned(t.ID, t.ProjectID, userID)
	if !ok {
		return domain.ErrNotFound
	}
	stored.Title = t.Title
	stored.Description = t.Description
	stored.DueDate = t.DueDate
	*t = *stored
	return nil
}

func (s memTasks) Toggle(_ context.Context, taskID, projectID, userID int64, now time.Time) (*domain.Task, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	stored, ok := s.owned(taskID, projectID, userID)
	if !ok {
		return nil, domain.ErrNotFound
	}
	stored.Toggle(now)
	cp := *stored
	return &cp, nil
}

func (s memTasks) Delete(_ context.Context, taskID, projectID, userID int64) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.owned(taskID, projectID, userID); !ok {
		return false, nil
	}
	delete(s.tasks, taskID)
	return true, nil
}

type memAudit struct{ *memDB }

func (s memAudit) Create(_ context.Context, log *domain.AuditLog) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.auditErr != nil {
		return s.auditErr
	}
	log.ID = s.id()
	log.CreatedAt = time.Now()
	s.audit = append(s.audit, log)
	return nil
}

func (s memAudit) ListByUser(_ context.Context, userID int64, limit int) ([]*domain.AuditLog, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := []*domain.AuditLog{}
	for i := len(s.audit) - 1; i >= 0 && len(out) < limit; i-- {
		if s.audit[i].UserID == userID {
			out = append(out, s.audit[i])
		}
	}
	return out, nil
}

// plainHasher keeps tests fast; bcrypt itself is covered in password_test.go.
type plainHasher struct{ verifies int }

func (h *plainHasher) Hash(password string) (string, error) {
	if password == "" {
		return "", errors.New("empty password")
	}
	return "plain:" + password, nil
}

func (h *plainHasher) Verify(password, hash string) bool {
	h.verifies++
	return hash == "plain:"+password
}

// fixedClock returns a clock that advances one second per call.
func fixedClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	cur := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		cur = cur.Add(time.Second)
		return cur
	}
}
