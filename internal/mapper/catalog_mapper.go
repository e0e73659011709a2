package mapper

import (
	"time"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/model"
)

func updatedAtPtr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

func updatedAtValue(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}

type TopicMapper struct{}

func NewTopicMapper() *TopicMapper {
	return &TopicMapper{}
}

func (m *TopicMapper) ToEntity(t *model.Topic) *entity.Topic {
	if t == nil {
		return nil
	}
	return &entity.Topic{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   updatedAtPtr(t.UpdatedAt),
	}
}

func (m *TopicMapper) ToModel(t *entity.Topic) *model.Topic {
	if t == nil {
		return nil
	}
	return &model.Topic{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   updatedAtValue(t.UpdatedAt),
	}
}

func (m *TopicMapper) ToEntities(topics []*model.Topic) []*entity.Topic {
	entities := make([]*entity.Topic, len(topics))
	for i, t := range topics {
		entities[i] = m.ToEntity(t)
	}
	return entities
}

type SubtopicMapper struct{}

func NewSubtopicMapper() *SubtopicMapper {
	return &SubtopicMapper{}
}

func (m *SubtopicMapper) ToEntity(s *model.Subtopic) *entity.Subtopic {
	if s == nil {
		return nil
	}
	return &entity.Subtopic{
		Id:          s.Id,
		TopicId:     s.TopicId,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAtPtr(s.UpdatedAt),
	}
}

func (m *SubtopicMapper) ToModel(s *entity.Subtopic) *model.Subtopic {
	if s == nil {
		return nil
	}
	return &model.Subtopic{
		Id:          s.Id,
		TopicId:     s.TopicId,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   updatedAtValue(s.UpdatedAt),
	}
}

func (m *SubtopicMapper) ToEntities(subtopics []*model.Subtopic) []*entity.Subtopic {
	entities := make([]*entity.Subtopic, len(subtopics))
	for i, s := range subtopics {
		entities[i] = m.ToEntity(s)
	}
	return entities
}

type ProductTypeMapper struct{}

func NewProductTypeMapper() *ProductTypeMapper {
	return &ProductTypeMapper{}
}

func (m *ProductTypeMapper) ToEntity(p *model.ProductType) *entity.ProductType {
	if p == nil {
		return nil
	}
	return &entity.ProductType{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAtPtr(p.UpdatedAt),
	}
}

func (m *ProductTypeMapper) ToModel(p *entity.ProductType) *model.ProductType {
	if p == nil {
		return nil
	}
	return &model.ProductType{
		Id:          p.Id,
		Name:        p.Name,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   updatedAtValue(p.UpdatedAt),
	}
}

func (m *ProductTypeMapper) ToEntities(productTypes []*model.ProductType) []*entity.ProductType {
	entities := make([]*entity.ProductType, len(productTypes))
	for i, p := range productTypes {
		entities[i] = m.ToEntity(p)
	}
	return entities
}
