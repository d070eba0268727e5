package service

import (
	"context"
	"errors"
	"testing"

	"project_tracker/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuditService_LogAndList(t *testing.T) {
	db := newMemDB()
	svc := NewAuditService(memAudit{db})
	ctx := context.Background()

	svc.LogLogin(ctx, 1, "10.0.0.1", "curl/8")
	svc.LogProject(ctx, 1, domain.AuditActionProjectCreate, 5)
	svc.LogTask(ctx, 1, domain.AuditActionTaskComplete, 5, 9)
	svc.LogProject(ctx, 2, domain.AuditActionProjectCreate, 6)

	logs, err := svc.RecentActivity(ctx, 1, 0)
	require.NoError(t, err)
	require.Len(t, logs, 3)
	assert.Equal(t, domain.AuditActionTaskComplete, logs[0].Action)
	assert.Equal(t, int64(9), logs[0].Details["task_id"])
	assert.Equal(t, "10.0.0.1", logs[2].IP)

	limited, err := svc.RecentActivity(ctx, 1, 1)
	require.NoError(t, err)
	assert.Len(t, limited, 1)
}

func TestAuditService_StoreFailureIsSwallowed(t *testing.T) {
	db := newMemDB()
	db.auditErr = errors.New("db down")
	svc := NewAuditService(memAudit{db})

	assert.NotPanics(t, func() {
		svc.LogProject(context.Background(), 1, domain.AuditActionProjectDelete, 1)
	})
}
