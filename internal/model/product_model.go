package model

import "time"

type ProductType struct {
	Id          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (ProductType) TableName() string {
	return "product_types"
}

// EntityProduct tracks image generation for one (entity, product type) pair.
// ux_entity_products_pair is the conflict target of the generation upsert.
type EntityProduct struct {
	Id                int64     `gorm:"primaryKey;autoIncrement"`
	EntityId          int64     `gorm:"not null;uniqueIndex:ux_entity_products_pair,priority:1"`
	ProductTypeId     int64     `gorm:"not null;uniqueIndex:ux_entity_products_pair,priority:2;index"`
	ImageGenerated    bool      `gorm:"not null;default:false"`
	GeneratedImageUrl *string   `gorm:"column:generated_image_url;type:text"`
	Status            string    `gorm:"type:text;not null;default:'pending'"`
	DesignNotes       *string   `gorm:"type:text"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
	GeneratedAt       *time.Time
}

func (EntityProduct) TableName() string {
	return "entity_products"
}

// EntityProductWithName is the row shape of the entity product listing joined
// with its product type.
type EntityProductWithName struct {
	EntityProduct
	ProductName string
}
