package dto

import "time"

type CreateTopicRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type TopicResponse struct {
	Id          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type CreateSubtopicRequest struct {
	TopicId     int64   `json:"topic_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type SubtopicResponse struct {
	Id          int64      `json:"id"`
	TopicId     int64      `json:"topic_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type CreateEntityRequest struct {
	SubtopicId  int64   `json:"subtopic_id" validate:"required"`
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
	Keywords    *string `json:"keywords"`
	Colors      *string `json:"colors"`
	Style       *string `json:"style"`
	Slug        *string `json:"slug"`
	LogoUrl     *string `json:"logo_url"`
}

// UpdateEntityRequest is a partial update; only keys present in the body are written.
type UpdateEntityRequest struct {
	Id          int64         `json:"-"`
	Name        Field[string] `json:"name"`
	Description Field[string] `json:"description"`
	Keywords    Field[string] `json:"keywords"`
	Colors      Field[string] `json:"colors"`
	Style       Field[string] `json:"style"`
	Slug        Field[string] `json:"slug"`
	LogoUrl     Field[string] `json:"logo_url"`
	SubtopicId  Field[int64]  `json:"subtopic_id"`
}

type EntityResponse struct {
	Id          int64      `json:"id"`
	SubtopicId  int64      `json:"subtopic_id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	Keywords    *string    `json:"keywords"`
	Colors      *string    `json:"colors"`
	Style       *string    `json:"style"`
	Slug        *string    `json:"slug"`
	LogoUrl     *string    `json:"logo_url"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}

type CreateEntityImageRequest struct {
	EntityId int64                  `json:"-"`
	ImageUrl string                 `json:"image_url" validate:"required"`
	Prompt   *string                `json:"prompt"`
	Type     *string                `json:"type"`
	Metadata map[string]interface{} `json:"metadata"`
}

type EntityImageResponse struct {
	Id        int64                  `json:"id"`
	EntityId  int64                  `json:"entity_id"`
	ImageUrl  string                 `json:"image_url"`
	Prompt    *string                `json:"prompt"`
	Type      *string                `json:"type"`
	Metadata  map[string]interface{} `json:"metadata"`
	CreatedAt time.Time              `json:"created_at"`
}

type CreateProductTypeRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description"`
}

type ProductTypeResponse struct {
	Id          int64      `json:"id"`
	Name        string     `json:"name"`
	Description *string    `json:"description"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   *time.Time `json:"updated_at"`
}
