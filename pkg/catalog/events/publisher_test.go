package events

import (
	"context"
	"errors"
	"testing"
	"time"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/pkg/logger"
	pkgEvents "brandkit-admin-be/pkg/events"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSink struct {
	events []pkgEvents.Event
	err    error
}

func (s *recordingSink) Publish(_ context.Context, event pkgEvents.Event) error {
	s.events = append(s.events, event)
	return s.err
}

func TestNatsPublisher_NilPublisherDropsEvents(t *testing.T) {
	p := NewNatsPublisher(nil, logger.NewNopLogger())

	assert.NotPanics(t, func() {
		p.PublishGenerationRequested(context.Background(), &entity.EntityProduct{Id: 1}, "job", "prompt")
	})
}

func TestNatsPublisher_StatusChangedPayload(t *testing.T) {
	sink := &recordingSink{}
	p := &NatsPublisher{publisher: sink, logger: logger.NewNopLogger()}
	url := "https://img.example/1.png"
	ep := &entity.EntityProduct{
		Id:                5,
		EntityId:          7,
		ProductTypeId:     3,
		Status:            entity.GenerationStatusSucceeded,
		ImageGenerated:    true,
		GeneratedImageUrl: &url,
		UpdatedAt:         time.Now(),
	}

	p.PublishGenerationStatusChanged(context.Background(), ep, entity.GenerationStatusGenerating)

	require.Len(t, sink.events, 1)
	evt := sink.events[0]
	assert.Equal(t, TypeGenerationStatusChanged, evt.EventType())
	assert.Equal(t, "generating", evt.Payload()["previous_status"])
	assert.Equal(t, "succeeded", evt.Payload()["status"])
	assert.Equal(t, url, evt.Payload()["generated_image_url"])
	assert.Equal(t, true, evt.Payload()["terminal"])
}

func TestNatsPublisher_SwallowsPublishErrors(t *testing.T) {
	sink := &recordingSink{err: errors.New("nats down")}
	p := &NatsPublisher{publisher: sink, logger: logger.NewNopLogger()}

	assert.NotPanics(t, func() {
		p.PublishGenerationRequested(context.Background(), &entity.EntityProduct{Id: 1}, "job", "prompt")
	})
	assert.Len(t, sink.events, 1)
}
