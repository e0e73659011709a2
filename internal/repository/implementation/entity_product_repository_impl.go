package implementation

import (
	"context"
	"errors"
	"time"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/mapper"
	"brandkit-admin-be/internal/model"
	"brandkit-admin-be/internal/repository/contract"
	"brandkit-admin-be/internal/repository/specification"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EntityProductRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.EntityProductMapper
}

func NewEntityProductRepository(db *gorm.DB) contract.EntityProductRepository {
	return &EntityProductRepositoryImpl{
		db:     db,
		mapper: mapper.NewEntityProductMapper(),
	}
}

func (r *EntityProductRepositoryImpl) Create(ctx context.Context, ep *entity.EntityProduct) error {
	m := &model.EntityProduct{
		EntityId:      ep.EntityId,
		ProductTypeId: ep.ProductTypeId,
	}
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	// Re-read so column defaults (status, image_generated) are reflected.
	created, err := r.FindOne(ctx, specification.ByID{ID: m.Id})
	if err != nil {
		return err
	}
	if created == nil {
		return gorm.ErrRecordNotFound
	}
	*ep = *created
	return nil
}

func (r *EntityProductRepositoryImpl) UpsertStatus(
	ctx context.Context,
	entityId, productTypeId int64,
	status entity.GenerationStatus,
	now time.Time,
) (*entity.EntityProduct, error) {
	m := &model.EntityProduct{
		EntityId:       entityId,
		ProductTypeId:  productTypeId,
		ImageGenerated: false,
		Status:         string(status),
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "entity_id"}, {Name: "product_type_id"}},
			DoUpdates: clause.Assignments(map[string]interface{}{
				"status":     string(status),
				"updated_at": now,
			}),
		}).
		Create(m).Error
	if err != nil {
		return nil, err
	}

	// The id gorm reports after an upsert depends on the driver, so resolve the
	// row through its unique key.
	ep, err := r.FindOne(ctx, specification.ByEntityProductPair{EntityID: entityId, ProductTypeID: productTypeId})
	if err != nil {
		return nil, err
	}
	if ep == nil {
		return nil, gorm.ErrRecordNotFound
	}
	return ep, nil
}

func (r *EntityProductRepositoryImpl) UpdateFields(
	ctx context.Context,
	id int64,
	fields map[string]interface{},
	specs ...specification.Specification,
) (int64, error) {
	query := r.db.WithContext(ctx).Model(&model.EntityProduct{}).Where("id = ?", id)
	query = applySpecifications(query, specs...)
	result := query.Updates(fields)
	return result.RowsAffected, result.Error
}

func (r *EntityProductRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EntityProduct, error) {
	var m model.EntityProduct
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *EntityProductRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EntityProduct, error) {
	var models []*model.EntityProduct
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *EntityProductRepositoryImpl) FindAllWithProductName(ctx context.Context, entityId int64) ([]*entity.EntityProductListing, error) {
	var rows []*model.EntityProductWithName
	err := r.db.WithContext(ctx).
		Table("entity_products AS ep").
		Select("ep.*, pt.name AS product_name").
		Joins("JOIN product_types pt ON pt.id = ep.product_type_id").
		Where("ep.entity_id = ?", entityId).
		Order("pt.name ASC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return r.mapper.ToListings(rows), nil
}

func (r *EntityProductRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.EntityProduct{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
