package domain

import "time"

// AuditLog records an action a user performed, shown back to them as activity.
type AuditLog struct {
	ID        int64          `db:"id" json:"id"`
	UserID    int64          `db:"user_id" json:"-"`
	Action    string         `db:"action" json:"action"`
	Category  string         `db:"category" json:"category"`
	Details   map[string]any `db:"details" json:"details"`
	IP        string         `db:"ip" json:"ip,omitempty"`
	UserAgent string         `db:"user_agent" json:"userAgent,omitempty"`
	CreatedAt time.Time      `db:"created_at" json:"createdAt"`
}

const (
	AuditCategoryAuth    = "auth"
	AuditCategoryProject = "project"
	AuditCategoryTask    = "task"
)

const (
	AuditActionLogin = "login"

	AuditActionProjectCreate = "project_create"
	AuditActionProjectUpdate = "project_update"
	AuditActionProjectDelete = "project_delete"

	AuditActionTaskCreate   = "task_create"
	AuditActionTaskUpdate   = "task_update"
	AuditActionTaskComplete = "task_complete"
	AuditActionTaskReopen   = "task_reopen"
	AuditActionTaskDelete   = "task_delete"
)
