package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/repository/memory"
	"brandkit-admin-be/internal/repository/specification"
	"brandkit-admin-be/internal/repository/unitofwork"
)

type IProductTypeService interface {
	GetAll(ctx context.Context) ([]*dto.ProductTypeResponse, error)
	Create(ctx context.Context, req *dto.CreateProductTypeRequest) (*dto.ProductTypeResponse, error)
}

type productTypeService struct {
	uowFactory unitofwork.RepositoryFactory
	cache      *memory.ProductTypeCache
}

func NewProductTypeService(uowFactory unitofwork.RepositoryFactory, cache *memory.ProductTypeCache) IProductTypeService {
	return &productTypeService{
		uowFactory: uowFactory,
		cache:      cache,
	}
}

func (s *productTypeService) GetAll(ctx context.Context) ([]*dto.ProductTypeResponse, error) {
	productTypes, ok := s.cache.GetAll()
	if !ok {
		uow := s.uowFactory.NewUnitOfWork(ctx)

		var err error
		productTypes, err = uow.ProductTypeRepository().FindAll(ctx, specification.OrderByName)
		if err != nil {
			return nil, fmt.Errorf("list product types: %w", err)
		}
		s.cache.SaveAll(productTypes)
	}

	result := make([]*dto.ProductTypeResponse, 0, len(productTypes))
	for _, pt := range productTypes {
		result = append(result, toProductTypeResponse(pt))
	}
	return result, nil
}

func (s *productTypeService) Create(ctx context.Context, req *dto.CreateProductTypeRequest) (*dto.ProductTypeResponse, error) {
	uow := s.uowFactory.NewUnitOfWork(ctx)

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidField)
	}

	now := time.Now()
	pt := entity.ProductType{
		Name:        name,
		Description: req.Description,
		CreatedAt:   now,
		UpdatedAt:   &now,
	}
	if err := uow.ProductTypeRepository().Create(ctx, &pt); err != nil {
		return nil, fmt.Errorf("create product type: %w", err)
	}
	s.cache.Invalidate()

	return toProductTypeResponse(&pt), nil
}
