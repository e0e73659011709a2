package service

import (
	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/entity"
)

func toTopicResponse(t *entity.Topic) *dto.TopicResponse {
	return &dto.TopicResponse{
		Id:          t.Id,
		Name:        t.Name,
		Description: t.Description,
		CreatedAt:   t.CreatedAt,
		UpdatedAt:   t.UpdatedAt,
	}
}

func toSubtopicResponse(s *entity.Subtopic) *dto.SubtopicResponse {
	return &dto.SubtopicResponse{
		Id:          s.Id,
		TopicId:     s.TopicId,
		Name:        s.Name,
		Description: s.Description,
		CreatedAt:   s.CreatedAt,
		UpdatedAt:   s.UpdatedAt,
	}
}

func toEntityResponse(e *entity.Entity) *dto.EntityResponse {
	return &dto.EntityResponse{
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
		UpdatedAt:   e.UpdatedAt,
	}
}

func toEntityImageResponse(img *entity.EntityImage) *dto.EntityImageResponse {
	return &dto.EntityImageResponse{
		Id:        img.Id,
		EntityId:  img.EntityId,
		ImageUrl:  img.ImageUrl,
		Prompt:    img.Prompt,
		Type:      img.Type,
		Metadata:  img.Metadata,
		CreatedAt: img.CreatedAt,
	}
}

func toProductTypeResponse(pt *entity.ProductType) *dto.ProductTypeResponse {
	return &dto.ProductTypeResponse{
		Id:          pt.Id,
		Name:        pt.Name,
		Description: pt.Description,
		CreatedAt:   pt.CreatedAt,
		UpdatedAt:   pt.UpdatedAt,
	}
}

func toEntityProductResponse(ep *entity.EntityProduct) *dto.EntityProductResponse {
	return &dto.EntityProductResponse{
		Id:                ep.Id,
		EntityId:          ep.EntityId,
		ProductTypeId:     ep.ProductTypeId,
		ImageGenerated:    ep.ImageGenerated,
		GeneratedImageUrl: ep.GeneratedImageUrl,
		Status:            ep.Status.String(),
		DesignNotes:       ep.DesignNotes,
		CreatedAt:         ep.CreatedAt,
		UpdatedAt:         ep.UpdatedAt,
		GeneratedAt:       ep.GeneratedAt,
	}
}

func toEntityProductListingResponse(l *entity.EntityProductListing) *dto.EntityProductListingResponse {
	return &dto.EntityProductListingResponse{
		EntityProductResponse: *toEntityProductResponse(&l.EntityProduct),
		ProductName:           l.ProductName,
	}
}
