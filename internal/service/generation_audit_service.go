package service

import (
	"context"
	"strings"

	"brandkit-admin-be/internal/pkg/logger"
	"brandkit-admin-be/internal/pkg/metrics"
	"brandkit-admin-be/pkg/events"
	pktNats "brandkit-admin-be/pkg/nats"
)

const (
	auditModule      = "GENERATION_AUDIT"
	auditDurableName = "generation-audit"
)

type eventSubscriber interface {
	Subscribe(ctx context.Context, subject, durableName string, handler pktNats.EventHandler) error
}

// GenerationAuditService records every generation domain event coming back
// from the bus in the system log, where /api/admin/logs exposes it.
type GenerationAuditService struct {
	subscriber eventSubscriber
	metrics    *metrics.GenerationMetrics
	logger     logger.ILogger
}

func NewGenerationAuditService(sub *pktNats.Subscriber, m *metrics.GenerationMetrics, log logger.ILogger) *GenerationAuditService {
	s := &GenerationAuditService{metrics: m, logger: log}
	if sub != nil {
		s.subscriber = sub
	}
	return s
}

func (s *GenerationAuditService) Start(ctx context.Context) {
	if s.subscriber == nil {
		s.logger.Warn(auditModule, "No event subscriber, generation audit disabled", nil)
		return
	}

	subject := pktNats.Subject(">")
	if err := s.subscriber.Subscribe(ctx, subject, auditDurableName, s.handleEvent); err != nil {
		s.logger.Error(auditModule, "Failed to start generation audit subscriber", map[string]interface{}{"error": err.Error()})
		return
	}
	s.logger.Info(auditModule, "Generation audit listening", map[string]interface{}{"subject": subject})
}

func (s *GenerationAuditService) handleEvent(_ context.Context, event events.Event) error {
	if !strings.HasPrefix(event.EventType(), "GENERATION_") {
		return nil
	}
	s.metrics.ObserveAuditedEvent(event.EventType())

	details := make(map[string]interface{}, len(event.Payload())+2)
	for k, v := range event.Payload() {
		details[k] = v
	}
	details["event_type"] = event.EventType()
	details["occurred_at"] = event.Timestamp()

	s.logger.Info(auditModule, "Generation event", details)
	return nil
}
