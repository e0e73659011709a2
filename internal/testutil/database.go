// Package testutil builds throwaway databases for package tests.
package testutil

import (
	"fmt"
	"testing"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewDB opens a private in-memory SQLite database with every catalog table
// migrated. A single connection serializes access, which keeps transactions
// and the in-memory database consistent.
func NewDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, db.AutoMigrate(model.All()...))
	return db
}

// Fixture is a minimal catalog: one topic, one subtopic, one entity and one
// product type.
type Fixture struct {
	Topic       model.Topic
	Subtopic    model.Subtopic
	Entity      model.Entity
	ProductType model.ProductType
}

func Seed(t *testing.T, db *gorm.DB) *Fixture {
	t.Helper()

	f := &Fixture{}
	f.Topic = model.Topic{Name: "Sports"}
	require.NoError(t, db.Create(&f.Topic).Error)

	f.Subtopic = model.Subtopic{TopicId: f.Topic.Id, Name: "Football"}
	require.NoError(t, db.Create(&f.Subtopic).Error)

	colors, style := "navy, gold", "classic crest"
	f.Entity = model.Entity{SubtopicId: f.Subtopic.Id, Name: "Riverside Rovers", Colors: &colors, Style: &style}
	require.NoError(t, db.Create(&f.Entity).Error)

	f.ProductType = model.ProductType{Name: "Mug"}
	require.NoError(t, db.Create(&f.ProductType).Error)

	return f
}

// InsertEntityProduct writes a row directly, bypassing the services.
func InsertEntityProduct(t *testing.T, db *gorm.DB, entityId, productTypeId int64, status entity.GenerationStatus) model.EntityProduct {
	t.Helper()

	ep := model.EntityProduct{EntityId: entityId, ProductTypeId: productTypeId, Status: status.String()}
	require.NoError(t, db.Create(&ep).Error)
	return ep
}
