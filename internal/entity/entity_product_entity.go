package entity

import "time"

type EntityProduct struct {
	Id                int64
	EntityId          int64
	ProductTypeId     int64
	ImageGenerated    bool
	GeneratedImageUrl *string
	Status            GenerationStatus
	DesignNotes       *string
	CreatedAt         time.Time
	UpdatedAt         time.Time
	GeneratedAt       *time.Time
}

// EntityProductListing is an EntityProduct joined with its product type name.
type EntityProductListing struct {
	EntityProduct
	ProductName string
}
