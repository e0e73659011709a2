package model

import (
	"time"

	"gorm.io/datatypes"
)

// Entity is the branded subject (a team, a band, a school) assets are generated for.
type Entity struct {
	Id          int64     `gorm:"primaryKey;autoIncrement"`
	SubtopicId  int64     `gorm:"not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	Keywords    *string   `gorm:"type:text"`
	Colors      *string   `gorm:"type:text"`
	Style       *string   `gorm:"type:text"`
	Slug        *string   `gorm:"type:varchar(255);index"`
	LogoUrl     *string   `gorm:"column:logo_url;type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Entity) TableName() string {
	return "entities"
}

type EntityImage struct {
	Id        int64             `gorm:"primaryKey;autoIncrement"`
	EntityId  int64             `gorm:"not null;index"`
	ImageUrl  string            `gorm:"column:image_url;type:text;not null"`
	Prompt    *string           `gorm:"type:text"`
	Type      *string           `gorm:"type:varchar(64)"`
	Metadata  datatypes.JSONMap `gorm:"type:jsonb"`
	CreatedAt time.Time         `gorm:"autoCreateTime"`
}

func (EntityImage) TableName() string {
	return "entity_images"
}
