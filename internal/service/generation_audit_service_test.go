package service

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"brandkit-admin-be/internal/pkg/logger"
	"brandkit-admin-be/pkg/events"
	pktNats "brandkit-admin-be/pkg/nats"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturingSubscriber struct {
	subject string
	durable string
	handler pktNats.EventHandler
}

func (c *capturingSubscriber) Subscribe(_ context.Context, subject, durableName string, handler pktNats.EventHandler) error {
	c.subject = subject
	c.durable = durableName
	c.handler = handler
	return nil
}

func TestGenerationAudit_LogsOnlyGenerationEvents(t *testing.T) {
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "audit.log"))
	sub := &capturingSubscriber{}
	svc := &GenerationAuditService{subscriber: sub, logger: log}

	svc.Start(context.Background())
	assert.Equal(t, "events.>", sub.subject)
	assert.Equal(t, "generation-audit", sub.durable)
	require.NotNil(t, sub.handler)

	occurred := time.Date(2026, 5, 1, 9, 0, 0, 0, time.UTC)
	require.NoError(t, sub.handler(context.Background(), events.BaseEvent{
		Type:       "GENERATION_STATUS_CHANGED",
		Data:       map[string]interface{}{"entity_product_id": float64(7), "status": "succeeded"},
		OccurredAt: occurred,
	}))
	require.NoError(t, sub.handler(context.Background(), events.BaseEvent{Type: "TOPIC_CREATED"}))

	logSvc := NewSystemLogService(log)
	entries, err := logSvc.GetLogs(context.Background(), 1, 20, "")
	require.NoError(t, err)

	var audited int
	for _, e := range entries {
		if e.Module == "GENERATION_AUDIT" && e.Message == "Generation event" {
			audited++
			detail, err := logSvc.GetLogDetail(context.Background(), e.Id)
			require.NoError(t, err)
			assert.Equal(t, "GENERATION_STATUS_CHANGED", detail.Details["event_type"])
			assert.Equal(t, "succeeded", detail.Details["status"])
		}
	}
	assert.Equal(t, 1, audited)
}

func TestGenerationAudit_NilSubscriberIsDisabled(t *testing.T) {
	svc := NewGenerationAuditService(nil, nil, logger.NewNopLogger())

	assert.NotPanics(t, func() { svc.Start(context.Background()) })
}

func TestSystemLogService_PagingAndDetail(t *testing.T) {
	log := logger.NewIsolatedLogger(filepath.Join(t.TempDir(), "app.log"))
	for i := 0; i < 5; i++ {
		log.Info("TEST", "info line", map[string]interface{}{"n": i})
	}
	log.Error("TEST", "error line", map[string]interface{}{"error": "boom"})

	svc := NewSystemLogService(log)
	ctx := context.Background()

	page, err := svc.GetLogs(ctx, 1, 2, "")
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, "error line", page[0].Message)
	assert.False(t, page[0].CreatedAt.IsZero())

	errorsOnly, err := svc.GetLogs(ctx, 1, 20, "ERROR")
	require.NoError(t, err)
	require.Len(t, errorsOnly, 1)

	last, err := svc.GetLogs(ctx, 3, 2, "")
	require.NoError(t, err)
	require.Len(t, last, 2)
	assert.Equal(t, "info line", last[1].Message)

	detail, err := svc.GetLogDetail(ctx, errorsOnly[0].Id)
	require.NoError(t, err)
	assert.Equal(t, "boom", detail.Details["error"])

	_, err = svc.GetLogDetail(ctx, "missing")
	assert.ErrorIs(t, err, ErrLogNotFound)
}
