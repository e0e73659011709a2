package service

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/pkg/logger"
	"brandkit-admin-be/internal/pkg/metrics"
	"brandkit-admin-be/internal/repository/specification"
	"brandkit-admin-be/internal/repository/unitofwork"
	catalogEvents "brandkit-admin-be/pkg/catalog/events"

	"github.com/google/uuid"
)

const generationModule = "GENERATION"

const generationQueuedMessage = "Generation queued. The worker will pick it up."

// StatusBroadcaster pushes entity product changes to connected operators.
type StatusBroadcaster interface {
	BroadcastStatus(ep *dto.EntityProductResponse)
}

type IGenerationService interface {
	// RequestGeneration resets the pair's lifecycle and queues a job. It is a
	// re-request, so the transition table does not apply.
	RequestGeneration(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error)

	// UpdateStatus applies an operator's partial update over the generation fields.
	UpdateStatus(ctx context.Context, req *dto.UpdateEntityProductRequest) (*dto.EntityProductResponse, error)

	// AdvanceStatus is UpdateStatus with the status enumeration and transition
	// table always enforced. The worker records progress through it.
	AdvanceStatus(ctx context.Context, req *dto.UpdateEntityProductRequest) (*dto.EntityProductResponse, error)
}

type generationService struct {
	uowFactory  unitofwork.RepositoryFactory
	jobs        IPublisherService
	events      catalogEvents.Publisher
	broadcaster StatusBroadcaster
	metrics     *metrics.GenerationMetrics
	logger      logger.ILogger
	now         func() time.Time

	enforceTransitions bool
}

func NewGenerationService(
	uowFactory unitofwork.RepositoryFactory,
	jobs IPublisherService,
	events catalogEvents.Publisher,
	broadcaster StatusBroadcaster,
	m *metrics.GenerationMetrics,
	log logger.ILogger,
	enforceTransitions bool,
) IGenerationService {
	return &generationService{
		uowFactory:  uowFactory,
		jobs:        jobs,
		events:      events,
		broadcaster: broadcaster,
		metrics:     m,
		logger:      log,
		now:         time.Now,

		enforceTransitions: enforceTransitions,
	}
}

func (s *generationService) RequestGeneration(ctx context.Context, req *dto.GenerateRequest) (*dto.GenerateResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	e, err := uow.EntityRepository().FindOne(ctx, specification.ByID{ID: req.EntityId})
	if err != nil {
		return nil, fmt.Errorf("load entity: %w", err)
	}
	if e == nil {
		return nil, ErrEntityNotFound
	}

	productType, err := uow.ProductTypeRepository().FindOne(ctx, specification.ByID{ID: req.ProductTypeId})
	if err != nil {
		return nil, fmt.Errorf("load product type: %w", err)
	}
	if productType == nil {
		return nil, ErrProductTypeNotFound
	}

	if err := uow.Begin(ctx); err != nil {
		return nil, fmt.Errorf("begin transaction: %w", err)
	}
	defer uow.Rollback()

	repo := uow.EntityProductRepository()

	claimed, err := repo.UpsertStatus(ctx, req.EntityId, req.ProductTypeId, entity.GenerationStatusGenerating, s.now())
	if err != nil {
		return nil, fmt.Errorf("upsert entity product: %w", err)
	}

	if _, err := repo.UpdateFields(ctx, claimed.Id, map[string]interface{}{
		"status":     entity.GenerationStatusPending.String(),
		"updated_at": s.now(),
	}); err != nil {
		return nil, fmt.Errorf("queue entity product: %w", err)
	}

	ep, err := repo.FindOne(ctx, specification.ByID{ID: claimed.Id})
	if err != nil {
		return nil, fmt.Errorf("reload entity product: %w", err)
	}
	if ep == nil {
		return nil, ErrEntityProductNotFound
	}

	if err := uow.Commit(); err != nil {
		return nil, fmt.Errorf("commit generation request: %w", err)
	}

	prompt := strings.TrimSpace(req.Prompt)
	if prompt == "" {
		prompt = BuildPrompt(e, productType)
	}

	jobId := uuid.NewString()
	s.enqueue(ctx, ep, jobId, prompt)

	s.metrics.ObserveRequest()
	s.metrics.ObserveTransition(entity.GenerationStatusGenerating.String(), ep.Status.String())
	s.events.PublishGenerationRequested(ctx, ep, jobId, prompt)

	res := toEntityProductResponse(ep)
	if s.broadcaster != nil {
		s.broadcaster.BroadcastStatus(res)
	}

	s.logger.Info(generationModule, "Generation requested", map[string]interface{}{
		"entity_product_id": ep.Id,
		"entity_id":         ep.EntityId,
		"product_type_id":   ep.ProductTypeId,
		"job_id":            jobId,
	})

	return &dto.GenerateResponse{
		Ok:      true,
		Message: generationQueuedMessage,
		Ep:      res,
		Prompt:  prompt,
	}, nil
}

// enqueue hands the job to the worker. The persisted pending row is the source
// of truth, so a failed hand-off is logged and the request still succeeds.
func (s *generationService) enqueue(ctx context.Context, ep *entity.EntityProduct, jobId, prompt string) {
	payload, err := json.Marshal(dto.GenerationJobMessage{
		JobId:           jobId,
		EntityProductId: ep.Id,
		EntityId:        ep.EntityId,
		ProductTypeId:   ep.ProductTypeId,
		Prompt:          prompt,
		RequestedAt:     ep.UpdatedAt,
	})
	if err != nil {
		s.logger.Error(generationModule, "Failed to encode generation job", map[string]interface{}{"error": err.Error(), "job_id": jobId})
		return
	}

	if err := s.jobs.Publish(ctx, payload); err != nil {
		s.logger.Error(generationModule, "Failed to publish generation job", map[string]interface{}{"error": err.Error(), "job_id": jobId})
	}
}

// UpdateStatus writes the operator's fields. status is free text unless
// transition enforcement is on, in which case it behaves like AdvanceStatus.
func (s *generationService) UpdateStatus(ctx context.Context, req *dto.UpdateEntityProductRequest) (*dto.EntityProductResponse, error) {
	return s.applyUpdate(ctx, req, s.enforceTransitions)
}

func (s *generationService) AdvanceStatus(ctx context.Context, req *dto.UpdateEntityProductRequest) (*dto.EntityProductResponse, error) {
	return s.applyUpdate(ctx, req, true)
}

func (s *generationService) applyUpdate(ctx context.Context, req *dto.UpdateEntityProductRequest, strict bool) (*dto.EntityProductResponse, error) {
	if !req.HasFields() {
		return nil, ErrNoFieldsToUpdate
	}

	fields, target, err := generationUpdateFields(req, strict)
	if err != nil {
		return nil, err
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)
	repo := uow.EntityProductRepository()

	current, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, fmt.Errorf("load entity product: %w", err)
	}
	if current == nil {
		return nil, ErrEntityProductNotFound
	}

	var guards []specification.Specification
	if strict && target != nil {
		if !current.Status.CanTransitionTo(*target) {
			return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, *target)
		}
		// Conditional on the status we validated against; a concurrent change
		// leaves zero rows affected.
		guards = append(guards, specification.ByStatus{Status: current.Status.String()})
	}

	fields["updated_at"] = s.now()

	rows, err := repo.UpdateFields(ctx, req.Id, fields, guards...)
	if err != nil {
		return nil, fmt.Errorf("update entity product: %w", err)
	}
	if rows == 0 {
		if len(guards) > 0 {
			return nil, fmt.Errorf("%w: status of entity product %d changed concurrently", ErrInvalidTransition, req.Id)
		}
		return nil, ErrEntityProductNotFound
	}

	updated, err := repo.FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, fmt.Errorf("reload entity product: %w", err)
	}
	if updated == nil {
		return nil, ErrEntityProductNotFound
	}

	res := toEntityProductResponse(updated)
	if target != nil && *target != current.Status {
		s.metrics.ObserveTransition(statusLabel(current.Status), statusLabel(*target))
		s.events.PublishGenerationStatusChanged(ctx, updated, current.Status)
		s.logger.Info(generationModule, "Generation status changed", map[string]interface{}{
			"entity_product_id": updated.Id,
			"from":              current.Status.String(),
			"to":                target.String(),
		})
	}
	if s.broadcaster != nil {
		s.broadcaster.BroadcastStatus(res)
	}

	return res, nil
}

// generationUpdateFields maps the recognized request keys onto columns. The
// returned status is nil when the request leaves status untouched. Outside
// strict mode status is stored as sent.
func generationUpdateFields(req *dto.UpdateEntityProductRequest, strict bool) (map[string]interface{}, *entity.GenerationStatus, error) {
	fields := make(map[string]interface{})
	var target *entity.GenerationStatus

	if req.ImageGenerated.Set {
		if req.ImageGenerated.Value == nil {
			return nil, nil, fmt.Errorf("%w: image_generated cannot be null", ErrInvalidField)
		}
		fields["image_generated"] = *req.ImageGenerated.Value
	}
	if req.GeneratedImageUrl.Set {
		fields["generated_image_url"] = nullable(req.GeneratedImageUrl.Value)
	}
	if req.Status.Set {
		// The column is NOT NULL.
		if req.Status.Value == nil {
			return nil, nil, fmt.Errorf("%w: status cannot be null", ErrInvalidStatus)
		}
		status := entity.GenerationStatus(*req.Status.Value)
		if strict {
			parsed, ok := entity.ParseGenerationStatus(*req.Status.Value)
			if !ok {
				return nil, nil, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status.Value)
			}
			status = parsed
		}
		fields["status"] = status.String()
		target = &status
	}
	if req.DesignNotes.Set {
		fields["design_notes"] = nullable(req.DesignNotes.Value)
	}
	if req.GeneratedAt.Set {
		fields["generated_at"] = nullable(req.GeneratedAt.Value)
	}

	return fields, target, nil
}

// statusLabel keeps free-text statuses from widening the metric label set.
func statusLabel(status entity.GenerationStatus) string {
	if status.IsValid() {
		return status.String()
	}
	return "other"
}

// BuildPrompt derives a generation prompt from the entity's brand attributes
// and the product it is destined for.
func BuildPrompt(e *entity.Entity, productType *entity.ProductType) string {
	style := "neutral"
	if e.Style != nil && strings.TrimSpace(*e.Style) != "" {
		style = strings.TrimSpace(*e.Style)
	}
	colors := "none"
	if e.Colors != nil && strings.TrimSpace(*e.Colors) != "" {
		colors = strings.TrimSpace(*e.Colors)
	}

	return fmt.Sprintf(
		"Generate logo for %s. Style: %s. Colors: %s. Use: %s. Vector, high resolution, transparent background.",
		e.Name, style, colors, productType.Name,
	)
}
