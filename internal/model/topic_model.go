package model

import "time"

type Topic struct {
	Id          int64     `gorm:"primaryKey;autoIncrement"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Topic) TableName() string {
	return "topics"
}

type Subtopic struct {
	Id          int64     `gorm:"primaryKey;autoIncrement"`
	TopicId     int64     `gorm:"not null;index"`
	Name        string    `gorm:"type:varchar(255);not null"`
	Description *string   `gorm:"type:text"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

func (Subtopic) TableName() string {
	return "subtopics"
}
