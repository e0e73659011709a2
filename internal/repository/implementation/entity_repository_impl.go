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

type EntityRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EntityMapper
}

func NewEntityRepository(db *gorm.DB) contract.EntityRepository {
	return &EntityRepositoryImpl{
		db:     db,
		mapper: mapper.NewEntityMapper(),
	}
}

func (r *EntityRepositoryImpl) Create(ctx context.Context, e *entity.Entity) error {
	m := r.mapper.ToModel(e)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*e = *r.mapper.ToEntity(m)
	return nil
}

func (r *EntityRepositoryImpl) UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&model.Entity{}).
		Where("id = ?", id).
		Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *EntityRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Entity, error) {
	var m model.Entity
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EntityRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Entity, error) {
	var models []*model.Entity
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EntityRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Entity{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type EntityImageRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EntityImageMapper
}

func NewEntityImageRepository(db *gorm.DB) contract.EntityImageRepository {
	return &EntityImageRepositoryImpl{
		db:     db,
		mapper: mapper.NewEntityImageMapper(),
	}
}

func (r *EntityImageRepositoryImpl) Create(ctx context.Context, image *entity.EntityImage) error {
	m := r.mapper.ToModel(image)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*image = *r.mapper.ToEntity(m)
	return nil
}

func (r *EntityImageRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EntityImage, error) {
	var models []*model.EntityImage
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}
