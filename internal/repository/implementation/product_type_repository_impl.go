package implementation

import (
	"context"
	"errors"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/mapper"
	"brandkit-admin-be/internal/model"
	"brandkit-admin-be/internal/repository/contract"
	"brandkit-admin-be/internal/repository/specification"

	"gorm.io/gorm"
)

type ProductTypeRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.ProductTypeMapper
}

func NewProductTypeRepository(db *gorm.DB) contract.ProductTypeRepository {
	return &ProductTypeRepositoryImpl{
		db:     db,
		mapper: mapper.NewProductTypeMapper(),
	}
}

func (r *ProductTypeRepositoryImpl) Create(ctx context.Context, productType *entity.ProductType) error {
	m := r.mapper.ToModel(productType)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*productType = *r.mapper.ToEntity(m)
	return nil
}

func (r *ProductTypeRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductType, error) {
	var m model.ProductType
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *ProductTypeRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductType, error) {
	var models []*model.ProductType
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *ProductTypeRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.ProductType{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
