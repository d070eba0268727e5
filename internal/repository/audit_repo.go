package repository

import (
	"context"
	"encoding/json"
	"fmt"

	"project_tracker/internal/domain"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// AuditRepository handles audit log database operations
type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) *AuditRepository {
	return &AuditRepository{db: db}
}

func (r *AuditRepository) Create(ctx context.Context, log *domain.AuditLog) error {
	details := log.Details
	if details == nil {
		details = map[string]any{}
	}
	detailsJSON, err := json.Marshal(details)
	if err != nil {
		detailsJSON = []byte("{}")
	}

	err = r.db.QueryRow(ctx, `
		INSERT INTO audit_logs (user_id, action, category, details, ip, user_agent)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, created_at
	`, log.UserID, log.Action, log.Category, detailsJSON, log.IP, log.UserAgent).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		return fmt.Errorf("insert audit log: %w", err)
	}
	return nil
}

// ListByUser returns the user's entries, newest first.
func (r *AuditRepository) ListByUser(ctx context.Context, userID int64, limit int) ([]*domain.AuditLog, error) {
	rows, err := r.db.Query(ctx, `
		SELECT id, user_id, action, category, details, ip, user_agent, created_at
		FROM audit_logs
		WHERE user_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2
	`, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("list audit logs: %w", err)
	}
	defer rows.Close()

	return scanAuditLogs(rows)
}

func scanAuditLogs(rows pgx.Rows) ([]*domain.AuditLog, error) {
	logs := []*domain.AuditLog{}
	for rows.Next() {
		var log domain.AuditLog
		var detailsJSON []byte
		if err := rows.Scan(&log.ID, &log.UserID, &log.Action, &log.Category, &detailsJSON, &log.IP, &log.UserAgent, &log.CreatedAt); err != nil {
			return nil, err
		}
		if err := json.Unmarshal(detailsJSON, &log.Details); err != nil {
			log.Details = map[string]any{}
		}
		logs = append(logs, &log)
	}
	return logs, rows.Err()
}
