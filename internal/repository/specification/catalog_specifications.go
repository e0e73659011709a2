package specification

import "gorm.io/gorm"

type ByTopicID struct {
	TopicID int64
}

func (s ByTopicID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("topic_id = ?", s.TopicID)
}

type BySubtopicID struct {
	SubtopicID int64
}

func (s BySubtopicID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("subtopic_id = ?", s.SubtopicID)
}

type ByEntityID struct {
	EntityID int64
}

func (s ByEntityID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entity_id = ?", s.EntityID)
}

// ByEntityProductPair matches the unique (entity_id, product_type_id) key.
type ByEntityProductPair struct {
	EntityID      int64
	ProductTypeID int64
}

func (s ByEntityProductPair) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("entity_id = ? AND product_type_id = ?", s.EntityID, s.ProductTypeID)
}

// ByStatus guards conditional updates: the write only lands while the row
// still holds the status it was read with.
type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

var OrderByName = OrderBy{Field: "name"}
