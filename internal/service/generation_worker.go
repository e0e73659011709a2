package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/pkg/logger"
	"brandkit-admin-be/internal/pkg/metrics"
	"brandkit-admin-be/pkg/imagegen"

	"github.com/ThreeDotsLabs/watermill/message"
)

const workerModule = "GENERATION_WORKER"

type IGenerationWorker interface {
	Consume(ctx context.Context) error
}

type generationWorker struct {
	subscriber message.Subscriber
	topicName  string
	generation IGenerationService
	generator  imagegen.Generator
	metrics    *metrics.GenerationMetrics
	logger     logger.ILogger
	now        func() time.Time
}

func NewGenerationWorker(
	subscriber message.Subscriber,
	topicName string,
	generation IGenerationService,
	generator imagegen.Generator,
	m *metrics.GenerationMetrics,
	log logger.ILogger,
) IGenerationWorker {
	return &generationWorker{
		subscriber: subscriber,
		topicName:  topicName,
		generation: generation,
		generator:  generator,
		metrics:    m,
		logger:     log,
		now:        time.Now,
	}
}

// Consume subscribes to the job topic and processes messages on a background
// goroutine until ctx is cancelled.
func (w *generationWorker) Consume(ctx context.Context) error {
	messages, err := w.subscriber.Subscribe(ctx, w.topicName)
	if err != nil {
		return err
	}

	go func() {
		for msg := range messages {
			w.processMessage(ctx, msg)
		}
	}()

	w.logger.Info(workerModule, "Generation worker started", map[string]interface{}{"topic": w.topicName})
	return nil
}

// processMessage drives one job through generating to succeeded or failed.
// Every status write goes through AdvanceStatus, so the worker never moves a
// row the transition table forbids.
func (w *generationWorker) processMessage(ctx context.Context, msg *message.Message) {
	var job dto.GenerationJobMessage
	if err := json.Unmarshal(msg.Payload, &job); err != nil || job.EntityProductId == 0 {
		w.logger.Warn(workerModule, "Dropping malformed generation job", map[string]interface{}{"message_uuid": msg.UUID})
		w.metrics.ObserveWorkerOutcome(metrics.OutcomeSkipped)
		msg.Ack()
		return
	}

	details := map[string]interface{}{
		"job_id":            job.JobId,
		"entity_product_id": job.EntityProductId,
	}

	_, err := w.generation.AdvanceStatus(ctx, &dto.UpdateEntityProductRequest{
		Id:     job.EntityProductId,
		Status: dto.Some("generating"),
	})
	if err != nil {
		if errors.Is(err, ErrEntityProductNotFound) || errors.Is(err, ErrInvalidTransition) {
			details["reason"] = err.Error()
			w.logger.Warn(workerModule, "Skipping generation job", details)
			w.metrics.ObserveWorkerOutcome(metrics.OutcomeSkipped)
			msg.Ack()
			return
		}
		details["error"] = err.Error()
		w.logger.Error(workerModule, "Failed to claim generation job", details)
		msg.Nack()
		return
	}

	imageUrl, genErr := w.generator.Generate(ctx, job.Prompt)
	if genErr != nil {
		w.finish(ctx, msg, job, &dto.UpdateEntityProductRequest{
			Id:          job.EntityProductId,
			Status:      dto.Some("failed"),
			DesignNotes: dto.Some("generation failed: " + genErr.Error()),
		}, metrics.OutcomeFailed)
		return
	}

	w.finish(ctx, msg, job, &dto.UpdateEntityProductRequest{
		Id:                job.EntityProductId,
		Status:            dto.Some("succeeded"),
		ImageGenerated:    dto.Some(true),
		GeneratedImageUrl: dto.Some(imageUrl),
		GeneratedAt:       dto.Some(w.now()),
	}, metrics.OutcomeSucceeded)
}

func (w *generationWorker) finish(ctx context.Context, msg *message.Message, job dto.GenerationJobMessage, update *dto.UpdateEntityProductRequest, outcome string) {
	details := map[string]interface{}{
		"job_id":            job.JobId,
		"entity_product_id": job.EntityProductId,
		"outcome":           outcome,
	}

	if _, err := w.generation.AdvanceStatus(ctx, update); err != nil {
		details["error"] = err.Error()
		// The operator moved the row while we were generating; their write wins.
		if errors.Is(err, ErrInvalidTransition) || errors.Is(err, ErrEntityProductNotFound) {
			w.logger.Warn(workerModule, "Discarding generation result", details)
			w.metrics.ObserveWorkerOutcome(metrics.OutcomeSkipped)
			msg.Ack()
			return
		}
		w.logger.Error(workerModule, "Failed to record generation result", details)
		msg.Nack()
		return
	}

	w.metrics.ObserveWorkerOutcome(outcome)
	w.logger.Info(workerModule, "Generation job finished", details)
	msg.Ack()
}
