package service

import (
	"context"
	"errors"
	"fmt"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/repository/specification"
	"brandkit-admin-be/internal/repository/unitofwork"

	"gorm.io/gorm"
)

type IEntityProductService interface {
	GetByEntity(ctx context.Context, entityId int64) ([]*dto.EntityProductListingResponse, error)
	Show(ctx context.Context, id int64) (*dto.EntityProductResponse, error)
	Create(ctx context.Context, req *dto.CreateEntityProductRequest) (*dto.EntityProductResponse, error)
}

type entityProductService struct {
	uowFactory unitofwork.RepositoryFactory
}

func NewEntityProductService(uowFactory unitofwork.RepositoryFactory) IEntityProductService {
	return &entityProductService{
		uowFactory: uowFactory,
	}
}

// GetByEntity lists the entity's product rows with their product type name,
// ordered by that name.
func (s *entityProductService) GetByEntity(ctx context.Context, entityId int64) ([]*dto.EntityProductListingResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	e, err := uow.EntityRepository().FindOne(ctx, specification.ByID{ID: entityId})
	if err != nil {
		return nil, fmt.Errorf("load entity: %w", err)
	}
	if e == nil {
		return nil, ErrEntityNotFound
	}

	listings, err := uow.EntityProductRepository().FindAllWithProductName(ctx, entityId)
	if err != nil {
		return nil, fmt.Errorf("list entity products: %w", err)
	}

	result := make([]*dto.EntityProductListingResponse, 0, len(listings))
	for _, l := range listings {
		result = append(result, toEntityProductListingResponse(l))
	}
	return result, nil
}

func (s *entityProductService) Show(ctx context.Context, id int64) (*dto.EntityProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	ep, err := uow.EntityProductRepository().FindOne(ctx, specification.ByID{ID: id})
	if err != nil {
		return nil, fmt.Errorf("load entity product: %w", err)
	}
	if ep == nil {
		return nil, ErrEntityProductNotFound
	}
	return toEntityProductResponse(ep), nil
}

// Create inserts the association directly with column defaults. It does not
// go through the generation upsert, so an existing pair is a conflict.
func (s *entityProductService) Create(ctx context.Context, req *dto.CreateEntityProductRequest) (*dto.EntityProductResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	e, err := uow.EntityRepository().FindOne(ctx, specification.ByID{ID: req.EntityId})
	if err != nil {
		return nil, fmt.Errorf("load entity: %w", err)
	}
	if e == nil {
		return nil, ErrEntityNotFound
	}

	pt, err := uow.ProductTypeRepository().FindOne(ctx, specification.ByID{ID: req.ProductTypeId})
	if err != nil {
		return nil, fmt.Errorf("load product type: %w", err)
	}
	if pt == nil {
		return nil, ErrProductTypeNotFound
	}

	existing, err := uow.EntityProductRepository().Count(ctx, specification.ByEntityProductPair{
		EntityID:      req.EntityId,
		ProductTypeID: req.ProductTypeId,
	})
	if err != nil {
		return nil, fmt.Errorf("check entity product: %w", err)
	}
	if existing > 0 {
		return nil, ErrEntityProductExists
	}

	ep := entity.EntityProduct{
		EntityId:      req.EntityId,
		ProductTypeId: req.ProductTypeId,
	}
	if err := uow.EntityProductRepository().Create(ctx, &ep); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEntityProductExists
		}
		return nil, fmt.Errorf("create entity product: %w", err)
	}

	return toEntityProductResponse(&ep), nil
}
