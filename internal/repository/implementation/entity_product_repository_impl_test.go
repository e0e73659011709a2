package implementation

import (
	"context"
	"testing"
	"time"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/model"
	"brandkit-admin-be/internal/repository/specification"
	"brandkit-admin-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntityProductRepository_UpsertStatus(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewEntityProductRepository(db)
	ctx := context.Background()

	first, err := repo.UpsertStatus(ctx, f.Entity.Id, f.ProductType.Id, entity.GenerationStatusGenerating, time.Now())
	require.NoError(t, err)
	assert.Equal(t, entity.GenerationStatusGenerating, first.Status)

	_, err = repo.UpdateFields(ctx, first.Id, map[string]interface{}{"image_generated": true, "status": "succeeded"})
	require.NoError(t, err)

	later := time.Now().Add(time.Minute)
	second, err := repo.UpsertStatus(ctx, f.Entity.Id, f.ProductType.Id, entity.GenerationStatusPending, later)
	require.NoError(t, err)

	assert.Equal(t, first.Id, second.Id)
	assert.Equal(t, entity.GenerationStatusPending, second.Status)
	assert.True(t, second.ImageGenerated)
	assert.WithinDuration(t, later, second.UpdatedAt, time.Millisecond)

	count, err := repo.Count(ctx, specification.ByEntityProductPair{EntityID: f.Entity.Id, ProductTypeID: f.ProductType.Id})
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)
}

func TestEntityProductRepository_UpdateFieldsGuardedByStatus(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewEntityProductRepository(db)
	ctx := context.Background()
	ep := testutil.InsertEntityProduct(t, db, f.Entity.Id, f.ProductType.Id, entity.GenerationStatusPending)

	rows, err := repo.UpdateFields(ctx, ep.Id, map[string]interface{}{"status": "failed"}, specification.ByStatus{Status: "generating"})
	require.NoError(t, err)
	assert.Equal(t, int64(0), rows)

	rows, err = repo.UpdateFields(ctx, ep.Id, map[string]interface{}{"status": "generating"}, specification.ByStatus{Status: "pending"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), rows)

	var stored model.EntityProduct
	require.NoError(t, db.First(&stored, ep.Id).Error)
	assert.Equal(t, "generating", stored.Status)
}

func TestEntityProductRepository_ListingOrderedByProductName(t *testing.T) {
	db := testutil.NewDB(t)
	f := testutil.Seed(t, db)
	repo := NewEntityProductRepository(db)

	apron := model.ProductType{Name: "Apron"}
	require.NoError(t, db.Create(&apron).Error)
	testutil.InsertEntityProduct(t, db, f.Entity.Id, f.ProductType.Id, entity.GenerationStatusPending)
	testutil.InsertEntityProduct(t, db, f.Entity.Id, apron.Id, entity.GenerationStatusFailed)

	listings, err := repo.FindAllWithProductName(context.Background(), f.Entity.Id)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "Apron", listings[0].ProductName)
	assert.Equal(t, entity.GenerationStatusFailed, listings[0].Status)
	assert.Equal(t, "Mug", listings[1].ProductName)

	empty, err := repo.FindAllWithProductName(context.Background(), f.Entity.Id+100)
	require.NoError(t, err)
	assert.Empty(t, empty)
}

func TestEntityProductRepository_FindOneMissing(t *testing.T) {
	db := testutil.NewDB(t)
	repo := NewEntityProductRepository(db)

	ep, err := repo.FindOne(context.Background(), specification.ByID{ID: 1})
	require.NoError(t, err)
	assert.Nil(t, ep)
}
