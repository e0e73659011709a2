package mapper

import (
	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/model"
)

type EntityProductMapper struct{}

func NewEntityProductMapper() *EntityProductMapper {
	return &EntityProductMapper{}
}

func (m *EntityProductMapper) ToEntity(ep *model.EntityProduct) *entity.EntityProduct {
	if ep == nil {
		return nil
	}
	return &entity.EntityProduct{
		Id:                ep.Id,
		EntityId:          ep.EntityId,
		ProductTypeId:     ep.ProductTypeId,
		ImageGenerated:    ep.ImageGenerated,
		GeneratedImageUrl: ep.GeneratedImageUrl,
		Status:            entity.GenerationStatus(ep.Status),
		DesignNotes:       ep.DesignNotes,
		CreatedAt:         ep.CreatedAt,
		UpdatedAt:         ep.UpdatedAt,
		GeneratedAt:       ep.GeneratedAt,
	}
}

func (m *EntityProductMapper) ToModel(ep *entity.EntityProduct) *model.EntityProduct {
	if ep == nil {
		return nil
	}
	return &model.EntityProduct{
		Id:                ep.Id,
		EntityId:          ep.EntityId,
		ProductTypeId:     ep.ProductTypeId,
		ImageGenerated:    ep.ImageGenerated,
		GeneratedImageUrl: ep.GeneratedImageUrl,
		Status:            string(ep.Status),
		DesignNotes:       ep.DesignNotes,
		CreatedAt:         ep.CreatedAt,
		UpdatedAt:         ep.UpdatedAt,
		GeneratedAt:       ep.GeneratedAt,
	}
}

func (m *EntityProductMapper) ToEntities(rows []*model.EntityProduct) []*entity.EntityProduct {
	result := make([]*entity.EntityProduct, len(rows))
	for i, ep := range rows {
		result[i] = m.ToEntity(ep)
	}
	return result
}

func (m *EntityProductMapper) ToListings(rows []*model.EntityProductWithName) []*entity.EntityProductListing {
	result := make([]*entity.EntityProductListing, len(rows))
	for i, row := range rows {
		result[i] = &entity.EntityProductListing{
			EntityProduct: *m.ToEntity(&row.EntityProduct),
			ProductName:   row.ProductName,
		}
	}
	return result
}
