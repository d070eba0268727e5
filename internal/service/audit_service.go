package service

import (
	"context"

	"project_tracker/internal/domain"
	"project_tracker/internal/logger"
)

const (
	DefaultActivityLimit = 50
	MaxActivityLimit     = 100
)

// AuditService records user actions. Writing an entry never fails the
// request that triggered it.
type AuditService struct {
	repo AuditStore
}

func NewAuditService(repo AuditStore) *AuditService {
	return &AuditService{repo: repo}
}

// Log creates a new audit log entry
func (s *AuditService) Log(ctx context.Context, userID int64, action, category string, details map[string]any) {
	s.LogWithRequest(ctx, userID, action, category, "", "", details)
}

// LogWithRequest creates an audit log with request info (IP, User-Agent)
func (s *AuditService) LogWithRequest(ctx context.Context, userID int64, action, category, ip, userAgent string, details map[string]any) {
	entry := &domain.AuditLog{
		UserID:    userID,
		Action:    action,
		Category:  category,
		Details:   details,
		IP:        ip,
		UserAgent: userAgent,
	}

	if err := s.repo.Create(ctx, entry); err != nil {
		logger.WithContext(ctx).Error("failed to create audit log", "error", err, "action", action, "user_id", userID)
	}
}

func (s *AuditService) LogLogin(ctx context.Context, userID int64, ip, userAgent string) {
	s.LogWithRequest(ctx, userID, domain.AuditActionLogin, domain.AuditCategoryAuth, ip, userAgent, nil)
}

func (s *AuditService) LogProject(ctx context.Context, userID int64, action string, projectID int64) {
	s.Log(ctx, userID, action, domain.AuditCategoryProject, map[string]any{"project_id": projectID})
}

func (s *AuditService) LogTask(ctx context.Context, userID int64, action string, projectID, taskID int64) {
	s.Log(ctx, userID, action, domain.AuditCategoryTask, map[string]any{
		"project_id": projectID,
		"task_id":    taskID,
	})
}

// RecentActivity returns the user's latest entries. limit is clamped to
// [1, MaxActivityLimit]; zero or negative selects DefaultActivityLimit.
func (s *AuditService) RecentActivity(ctx context.Context, userID int64, limit int) ([]*domain.AuditLog, error) {
	if limit <= 0 {
		limit = DefaultActivityLimit
	}
	if limit > MaxActivityLimit {
		limit = MaxActivityLimit
	}
	return s.repo.ListByUser(ctx, userID, limit)
}
