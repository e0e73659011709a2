package entity

import "time"

type Topic struct {
	Id          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Subtopic struct {
	Id          int64
	TopicId     int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type Entity struct {
	Id          int64
	SubtopicId  int64
	Name        string
	Description *string
	Keywords    *string
	Colors      *string
	Style       *string
	Slug        *string
	LogoUrl     *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}

type EntityImage struct {
	Id        int64
	EntityId  int64
	ImageUrl  string
	Prompt    *string
	Type      *string
	Metadata  map[string]interface{}
	CreatedAt time.Time
}

type ProductType struct {
	Id          int64
	Name        string
	Description *string
	CreatedAt   time.Time
	UpdatedAt   *time.Time
}
