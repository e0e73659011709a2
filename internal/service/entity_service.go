package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/repository/specification"
	"brandkit-admin-be/internal/repository/unitofwork"

	"github.com/gosimple/slug"
)

type IEntityService interface {
	GetBySubtopic(ctx context.Context, subtopicId int64) ([]*dto.EntityResponse, error)
	Show(ctx context.Context, id int64) (*dto.EntityResponse, error)
	Create(ctx context.Context, req *dto.CreateEntityRequest) (*dto.EntityResponse, error)
	Update(ctx context.Context, req *dto.UpdateEntityRequest) (*dto.EntityResponse, error)
	GetImages(ctx context.Context, entityId int64) ([]*dto.EntityImageResponse, error)
	CreateImage(ctx context.Context, req *dto.CreateEntityImageRequest) (*dto.EntityImageResponse, error)
}

type entityService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEntityService(uowFactory unitofwork.RepositoryFactory) IEntityService {
	return &entityService{
		uowFactory: uowFactory,
	}
}

func (s *entityService) GetBySubtopic(ctx context.Context, subtopicId int64) ([]*dto.EntityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	subtopic, err := uow.SubtopicRepository().FindOne(ctx, specification.ByID{ID: subtopicId})
	if err != nil {
		return nil, fmt.Errorf("load subtopic: %w", err)
	}
	if subtopic == nil {
		return nil, ErrSubtopicNotFound
	}

	entities, err := uow.EntityRepository().FindAll(ctx,
		specification.BySubtopicID{SubtopicID: subtopicId},
		specification.OrderByName,
	)
	if err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}

	result := make([]*dto.EntityResponse, 0, len(entities))
	for _, e := range entities {
		result = append(result, toEntityResponse(e))
	}
	return result, nil
}

func (s *entityService) Show(ctx context.Context, id int64) (*dto.EntityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	e, err := uow.EntityRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("load entity: %w", err)
	}
	if e == nil {
		return nil, ErrEntityNotFound
	}
	return toEntityResponse(e), nil
}

func (s *entityService) Create(ctx context.Context, req *dto.CreateEntityRequest) (*dto.EntityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidField)
	}

	subtopic, err := uow.SubtopicRepository().FindOne(ctx, specification.ByID{ID: req.SubtopicId})
	if err != nil {
		return nil, fmt.Errorf("load subtopic: %w", err)
	}
	if subtopic == nil {
		return nil, ErrSubtopicNotFound
	}

	entitySlug := slug.Make(name)
	if req.Slug != nil && strings.TrimSpace(*req.Slug) != "" {
		entitySlug = slug.Make(*req.Slug)
	}

	now := time.Now()
	e := entity.Entity{
		SubtopicId:  req.SubtopicId,
		Name:        name,
		Description: req.Description,
		Keywords:    req.Keywords,
		Colors:      req.Colors,
		Style:       req.Style,
		Slug:        &entitySlug,
		LogoUrl:     req.LogoUrl,
		CreatedAt:   now,
		UpdatedAt:   &now,
	}
	if err := uow.EntityRepository().Create(ctx, &e); err != nil {
		return nil, fmt.Errorf("create entity: %w", err)
	}

	return toEntityResponse(&e), nil
}

// Update writes only the keys present in the request. Explicit nulls clear
// optional columns; name and subtopic_id cannot be cleared.
func (s *entityService) Update(ctx context.Context, req *dto.UpdateEntityRequest) (*dto.EntityResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	fields, err := s.entityUpdateFields(req)
	if err != nil {
		return nil, err
	}
	if len(fields) == 0 {
		return nil, ErrNoFieldsToUpdate
	}

	current, err := uow.EntityRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, fmt.Errorf("load entity: %w", err)
	}
	if current == nil {
		return nil, ErrEntityNotFound
	}

	if req.SubtopicId.Set {
		subtopic, err := uow.SubtopicRepository().FindOne(ctx, specification.ByID{ID: *req.SubtopicId.Value})
		if err != nil {
			return nil, fmt.Errorf("load subtopic: %w", err)
		}
		if subtopic == nil {
			return nil, ErrSubtopicNotFound
		}
	}

	fields["updated_at"] = time.Now()
	if _, err := uow.EntityRepository().UpdateFields(ctx, req.Id, fields); err != nil {
		return nil, fmt.Errorf("update entity: %w", err)
	}

	updated, err := uow.EntityRepository().FindOne(ctx, specification.ByID{ID: req.Id})
	if err != nil {
		return nil, fmt.Errorf("reload entity: %w", err)
	}
	if updated == nil {
		return nil, ErrEntityNotFound
	}
	return toEntityResponse(updated), nil
}

func (s *entityService) entityUpdateFields(req *dto.UpdateEntityRequest) (map[string]interface{}, error) {
	fields := make(map[string]interface{})

	if req.Name.Set {
		if req.Name.Value == nil || strings.TrimSpace(*req.Name.Value) == "" {
			return nil, fmt.Errorf("%w: name cannot be empty", ErrInvalidField)
		}
		fields["name"] = strings.TrimSpace(*req.Name.Value)
	}
	if req.SubtopicId.Set {
		if req.SubtopicId.Value == nil {
			return nil, fmt.Errorf("%w: subtopic_id cannot be null", ErrInvalidField)
		}
		fields["subtopic_id"] = *req.SubtopicId.Value
	}
	if req.Slug.Set {
		if req.Slug.Value == nil {
			fields["slug"] = nil
		} else {
			fields["slug"] = slug.Make(*req.Slug.Value)
		}
	}

	optional := map[string]dto.Field[string]{
		"description": req.Description,
		"keywords":    req.Keywords,
		"colors":      req.Colors,
		"style":       req.Style,
		"logo_url":    req.LogoUrl,
	}
	for column, f := range optional {
		if f.Set {
			fields[column] = nullable(f.Value)
		}
	}

	return fields, nil
}

func (s *entityService) GetImages(ctx context.Context, entityId int64) ([]*dto.EntityImageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	e, err := uow.EntityRepository().FindOne(ctx, specification.ByID{ID: entityId})
	if err != nil {
		return nil, fmt.Errorf("load entity: %w", err)
	}
	if e == nil {
		return nil, ErrEntityNotFound
	}

	images, err := uow.EntityImageRepository().FindAll(ctx,
		specification.ByEntityID{EntityID: entityId},
		specification.OrderBy{Field: "created_at", Desc: true},
		specification.OrderBy{Field: "id", Desc: true},
	)
	if err != nil {
		return nil, fmt.Errorf("list entity images: %w", err)
	}

	result := make([]*dto.EntityImageResponse, 0, len(images))
	for _, img := range images {
		result = append(result, toEntityImageResponse(img))
	}
	return result, nil
}

func (s *entityService) CreateImage(ctx context.Context, req *dto.CreateEntityImageRequest) (*dto.EntityImageResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	if strings.TrimSpace(req.ImageUrl) == "" {
		return nil, fmt.Errorf("%w: image_url is required", ErrInvalidField)
	}

	e, err := uow.EntityRepository().FindOne(ctx, specification.ByID{ID: req.EntityId})
	if err != nil {
		return nil, fmt.Errorf("load entity: %w", err)
	}
	if e == nil {
		return nil, ErrEntityNotFound
	}

	img := entity.EntityImage{
		EntityId:  req.EntityId,
		ImageUrl:  strings.TrimSpace(req.ImageUrl),
		Prompt:    req.Prompt,
		Type:      req.Type,
		Metadata:  req.Metadata,
		CreatedAt: time.Now(),
	}
	if err := uow.EntityImageRepository().Create(ctx, &img); err != nil {
		return nil, fmt.Errorf("create entity image: %w", err)
	}

	return toEntityImageResponse(&img), nil
}

// nullable turns a nil pointer into an untyped nil so the column is written as NULL.
func nullable[T any](v *T) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
