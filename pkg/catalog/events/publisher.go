package events

import (
	"context"
	"time"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/pkg/logger"
	pkgEvents "brandkit-admin-be/pkg/events"
	pktNats "brandkit-admin-be/pkg/nats"
)

const (
	TypeGenerationRequested     = "GENERATION_REQUESTED"
	TypeGenerationStatusChanged = "GENERATION_STATUS_CHANGED"
)

// Publisher emits catalog domain events. Implementations never fail the
// caller: delivery problems are logged.
type Publisher interface {
	PublishGenerationRequested(ctx context.Context, ep *entity.EntityProduct, jobId, prompt string)
	PublishGenerationStatusChanged(ctx context.Context, ep *entity.EntityProduct, previous entity.GenerationStatus)
}

type eventSink interface {
	Publish(ctx context.Context, event pkgEvents.Event) error
}

type NatsPublisher struct {
	publisher eventSink
	logger    logger.ILogger
}

// NewNatsPublisher accepts a nil publisher, in which case every call is dropped.
func NewNatsPublisher(publisher *pktNats.Publisher, log logger.ILogger) *NatsPublisher {
	p := &NatsPublisher{logger: log}
	if publisher != nil {
		p.publisher = publisher
	}
	return p
}

func (p *NatsPublisher) PublishGenerationRequested(ctx context.Context, ep *entity.EntityProduct, jobId, prompt string) {
	p.publish(ctx, pkgEvents.BaseEvent{
		Type: TypeGenerationRequested,
		Data: map[string]interface{}{
			"job_id":            jobId,
			"entity_product_id": ep.Id,
			"entity_id":         ep.EntityId,
			"product_type_id":   ep.ProductTypeId,
			"status":            ep.Status.String(),
			"prompt":            prompt,
		},
		OccurredAt: time.Now(),
	})
}

func (p *NatsPublisher) PublishGenerationStatusChanged(ctx context.Context, ep *entity.EntityProduct, previous entity.GenerationStatus) {
	data := map[string]interface{}{
		"entity_product_id": ep.Id,
		"entity_id":         ep.EntityId,
		"product_type_id":   ep.ProductTypeId,
		"previous_status":   previous.String(),
		"status":            ep.Status.String(),
		"image_generated":   ep.ImageGenerated,
		"terminal":          ep.Status.IsTerminal(),
	}
	if ep.GeneratedImageUrl != nil {
		data["generated_image_url"] = *ep.GeneratedImageUrl
	}

	p.publish(ctx, pkgEvents.BaseEvent{
		Type:       TypeGenerationStatusChanged,
		Data:       data,
		OccurredAt: ep.UpdatedAt,
	})
}

func (p *NatsPublisher) publish(ctx context.Context, evt pkgEvents.BaseEvent) {
	if p.publisher == nil {
		return
	}
	if err := p.publisher.Publish(ctx, evt); err != nil {
		p.logger.Error("CATALOG_EVENTS", "Failed to publish "+evt.Type+" event", map[string]interface{}{"error": err.Error()})
	}
}
