package mapper

import (
	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/model"

	"gorm.io/datatypes"
)

type EntityMapper struct{}

func NewEntityMapper() *EntityMapper {
	return &EntityMapper{}
}

func (m *EntityMapper) ToEntity(e *model.Entity) *entity.Entity {
	if e == nil {
		return nil
	}
	return &entity.Entity{
		Id:          e.Id,
		SubtopicId:  e.SubtopicId,
		Name:        e.Name,
		Description: e.Description,
		Keywords:    e.Keywords,
		Colors:      e.Colors,
		Style:       e.Style,
		Slug:        e.Slug,
		LogoUrl:     e.LogoUrl,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   updatedAtPtr(e.UpdatedAt),
	}
}

func (m *EntityMapper) ToModel(e *entity.Entity) *model.Entity {
	if e == nil {
		return nil
	}
	return &model.Entity{
		Id:          e.Id,
		SubtopicId:  e.SubtopicId,
		Name:        e.Name,
		Description: e.Description,
		Keywords:    e.Keywords,
		Colors:      e.Colors,
		Style:       e.Style,
		Slug:        e.Slug,
		LogoUrl:     e.LogoUrl,
		CreatedAt:   e.CreatedAt,
		UpdatedAt:   updatedAtValue(e.UpdatedAt),
	}
}

func (m *EntityMapper) ToEntities(entities []*model.Entity) []*entity.Entity {
	result := make([]*entity.Entity, len(entities))
	for i, e := range entities {
		result[i] = m.ToEntity(e)
	}
	return result
}

type EntityImageMapper struct{}

func NewEntityImageMapper() *EntityImageMapper {
	return &EntityImageMapper{}
}

func (m *EntityImageMapper) ToEntity(img *model.EntityImage) *entity.EntityImage {
	if img == nil {
		return nil
	}
	var metadata map[string]interface{}
	if len(img.Metadata) > 0 {
		metadata = map[string]interface{}(img.Metadata)
	}
	return &entity.EntityImage{
		Id:        img.Id,
		EntityId:  img.EntityId,
		ImageUrl:  img.ImageUrl,
		Prompt:    img.Prompt,
		Type:      img.Type,
		Metadata:  metadata,
		CreatedAt: img.CreatedAt,
	}
}

func (m *EntityImageMapper) ToModel(img *entity.EntityImage) *model.EntityImage {
	if img == nil {
		return nil
	}
	var metadata datatypes.JSONMap
	if img.Metadata != nil {
		metadata = datatypes.JSONMap(img.Metadata)
	}
	return &model.EntityImage{
		Id:        img.Id,
		EntityId:  img.EntityId,
		ImageUrl:  img.ImageUrl,
		Prompt:    img.Prompt,
		Type:      img.Type,
		Metadata:  metadata,
		CreatedAt: img.CreatedAt,
	}
}

func (m *EntityImageMapper) ToEntities(images []*model.EntityImage) []*entity.EntityImage {
	result := make([]*entity.EntityImage, len(images))
	for i, img := range images {
		result[i] = m.ToEntity(img)
	}
	return result
}
