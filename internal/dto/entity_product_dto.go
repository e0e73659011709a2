package dto

import "time"

type CreateEntityProductRequest struct {
	EntityId      int64 `json:"entity_id" validate:"required"`
	ProductTypeId int64 `json:"product_type_id" validate:"required"`
}

// UpdateEntityProductRequest carries the fixed set of generation fields an
// operator (or the worker) may overwrite.
type UpdateEntityProductRequest struct {
	Id                int64            `json:"-" validate:"required,gt=0"`
	ImageGenerated    Field[bool]      `json:"image_generated"`
	GeneratedImageUrl Field[string]    `json:"generated_image_url"`
	Status            Field[string]    `json:"status"`
	DesignNotes       Field[string]    `json:"design_notes"`
	GeneratedAt       Field[time.Time] `json:"generated_at"`
}

func (r *UpdateEntityProductRequest) HasFields() bool {
	return r.ImageGenerated.Set ||
		r.GeneratedImageUrl.Set ||
		r.Status.Set ||
		r.DesignNotes.Set ||
		r.GeneratedAt.Set
}

type EntityProductResponse struct {
	Id                int64      `json:"id"`
	EntityId          int64      `json:"entity_id"`
	ProductTypeId     int64      `json:"product_type_id"`
	ImageGenerated    bool       `json:"image_generated"`
	GeneratedImageUrl *string    `json:"generated_image_url"`
	Status            string     `json:"status"`
	DesignNotes       *string    `json:"design_notes"`
	CreatedAt         time.Time  `json:"created_at"`
	UpdatedAt         time.Time  `json:"updated_at"`
	GeneratedAt       *time.Time `json:"generated_at"`
}

type EntityProductListingResponse struct {
	EntityProductResponse
	ProductName string `json:"product_name"`
}
