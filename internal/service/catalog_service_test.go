package service

import (
	"context"
	"testing"
	"time"

	"brandkit-admin-be/internal/dto"
	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/model"
	"brandkit-admin-be/internal/repository/memory"
	"brandkit-admin-be/internal/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTopicService_GetAllOrdersByName(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTopicService(env.uowFactory)
	ctx := context.Background()

	_, err := svc.Create(ctx, &dto.CreateTopicRequest{Name: "Music"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, &dto.CreateTopicRequest{Name: "Art"})
	require.NoError(t, err)

	topics, err := svc.GetAll(ctx)
	require.NoError(t, err)

	names := make([]string, 0, len(topics))
	for _, topic := range topics {
		names = append(names, topic.Name)
	}
	assert.Equal(t, []string{"Art", "Music", "Sports"}, names)
}

func TestTopicService_CreateRejectsBlankName(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTopicService(env.uowFactory)

	_, err := svc.Create(context.Background(), &dto.CreateTopicRequest{Name: "   "})

	assert.ErrorIs(t, err, ErrInvalidField)
}

func TestTopicService_Subtopics(t *testing.T) {
	env := newTestEnv(t)
	svc := NewTopicService(env.uowFactory)
	ctx := context.Background()

	created, err := svc.CreateSubtopic(ctx, &dto.CreateSubtopicRequest{TopicId: env.fixture.Topic.Id, Name: "Basketball"})
	require.NoError(t, err)
	assert.Equal(t, env.fixture.Topic.Id, created.TopicId)

	subtopics, err := svc.GetSubtopics(ctx, env.fixture.Topic.Id)
	require.NoError(t, err)
	require.Len(t, subtopics, 2)
	assert.Equal(t, "Basketball", subtopics[0].Name)
	assert.Equal(t, "Football", subtopics[1].Name)

	_, err = svc.GetSubtopics(ctx, env.fixture.Topic.Id+100)
	assert.ErrorIs(t, err, ErrTopicNotFound)

	_, err = svc.CreateSubtopic(ctx, &dto.CreateSubtopicRequest{TopicId: env.fixture.Topic.Id + 100, Name: "Tennis"})
	assert.ErrorIs(t, err, ErrTopicNotFound)
}

func TestEntityService_CreateDerivesSlug(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEntityService(env.uowFactory)

	res, err := svc.Create(context.Background(), &dto.CreateEntityRequest{
		SubtopicId: env.fixture.Subtopic.Id,
		Name:       "  Northgate United FC ",
	})
	require.NoError(t, err)

	assert.Equal(t, "Northgate United FC", res.Name)
	require.NotNil(t, res.Slug)
	assert.Equal(t, "northgate-united-fc", *res.Slug)

	_, err = svc.Create(context.Background(), &dto.CreateEntityRequest{
		SubtopicId: env.fixture.Subtopic.Id + 100,
		Name:       "Orphan",
	})
	assert.ErrorIs(t, err, ErrSubtopicNotFound)
}

func TestEntityService_GetBySubtopic(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEntityService(env.uowFactory)

	entities, err := svc.GetBySubtopic(context.Background(), env.fixture.Subtopic.Id)
	require.NoError(t, err)
	require.Len(t, entities, 1)
	assert.Equal(t, "Riverside Rovers", entities[0].Name)

	_, err = svc.GetBySubtopic(context.Background(), env.fixture.Subtopic.Id+100)
	assert.ErrorIs(t, err, ErrSubtopicNotFound)
}

func TestEntityService_UpdateIsPartial(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEntityService(env.uowFactory)
	ctx := context.Background()

	res, err := svc.Update(ctx, &dto.UpdateEntityRequest{
		Id:       env.fixture.Entity.Id,
		Keywords: dto.Some("river, rovers"),
		Colors:   dto.Null[string](),
	})
	require.NoError(t, err)

	assert.Equal(t, "Riverside Rovers", res.Name)
	require.NotNil(t, res.Keywords)
	assert.Equal(t, "river, rovers", *res.Keywords)
	assert.Nil(t, res.Colors)
	require.NotNil(t, res.Style)
	assert.Equal(t, "classic crest", *res.Style)
}

func TestEntityService_UpdateErrors(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEntityService(env.uowFactory)
	ctx := context.Background()
	id := env.fixture.Entity.Id

	_, err := svc.Update(ctx, &dto.UpdateEntityRequest{Id: id})
	assert.ErrorIs(t, err, ErrNoFieldsToUpdate)

	_, err = svc.Update(ctx, &dto.UpdateEntityRequest{Id: id, Name: dto.Null[string]()})
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = svc.Update(ctx, &dto.UpdateEntityRequest{Id: id, SubtopicId: dto.Null[int64]()})
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = svc.Update(ctx, &dto.UpdateEntityRequest{Id: id, SubtopicId: dto.Some(int64(999))})
	assert.ErrorIs(t, err, ErrSubtopicNotFound)

	_, err = svc.Update(ctx, &dto.UpdateEntityRequest{Id: id + 100, Style: dto.Some("flat")})
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestEntityService_ImagesNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEntityService(env.uowFactory)
	ctx := context.Background()
	entityId := env.fixture.Entity.Id

	older := model.EntityImage{EntityId: entityId, ImageUrl: "https://cdn.example.com/a.png", CreatedAt: time.Now().Add(-time.Hour)}
	require.NoError(t, env.db.Create(&older).Error)

	created, err := svc.CreateImage(ctx, &dto.CreateEntityImageRequest{
		EntityId: entityId,
		ImageUrl: "https://cdn.example.com/b.png",
		Metadata: map[string]interface{}{"width": float64(1024)},
	})
	require.NoError(t, err)
	assert.Equal(t, float64(1024), created.Metadata["width"])

	images, err := svc.GetImages(ctx, entityId)
	require.NoError(t, err)
	require.Len(t, images, 2)
	assert.Equal(t, created.Id, images[0].Id)
	assert.Equal(t, older.Id, images[1].Id)
	assert.Equal(t, float64(1024), images[0].Metadata["width"])

	_, err = svc.CreateImage(ctx, &dto.CreateEntityImageRequest{EntityId: entityId, ImageUrl: " "})
	assert.ErrorIs(t, err, ErrInvalidField)

	_, err = svc.GetImages(ctx, entityId+100)
	assert.ErrorIs(t, err, ErrEntityNotFound)
}

func TestProductTypeService_CacheInvalidatedOnCreate(t *testing.T) {
	env := newTestEnv(t)
	svc := NewProductTypeService(env.uowFactory, memory.NewProductTypeCache(time.Minute))
	ctx := context.Background()

	first, err := svc.GetAll(ctx)
	require.NoError(t, err)
	require.Len(t, first, 1)

	// A row written behind the service stays invisible while cached.
	require.NoError(t, env.db.Create(&model.ProductType{Name: "Hoodie"}).Error)
	cached, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, cached, 1)

	_, err = svc.Create(ctx, &dto.CreateProductTypeRequest{Name: "Cap"})
	require.NoError(t, err)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	names := make([]string, 0, len(all))
	for _, pt := range all {
		names = append(names, pt.Name)
	}
	assert.Equal(t, []string{"Cap", "Hoodie", "Mug"}, names)
}

func TestEntityProductService_CreateAndList(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEntityProductService(env.uowFactory)
	ctx := context.Background()

	poster := model.ProductType{Name: "Poster"}
	require.NoError(t, env.db.Create(&poster).Error)

	created, err := svc.Create(ctx, &dto.CreateEntityProductRequest{EntityId: env.fixture.Entity.Id, ProductTypeId: poster.Id})
	require.NoError(t, err)
	assert.Equal(t, "pending", created.Status)
	assert.False(t, created.ImageGenerated)

	_, err = svc.Create(ctx, &dto.CreateEntityProductRequest{EntityId: env.fixture.Entity.Id, ProductTypeId: poster.Id})
	assert.ErrorIs(t, err, ErrEntityProductExists)

	testutil.InsertEntityProduct(t, env.db, env.fixture.Entity.Id, env.fixture.ProductType.Id, entity.GenerationStatusFailed)

	listings, err := svc.GetByEntity(ctx, env.fixture.Entity.Id)
	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "Mug", listings[0].ProductName)
	assert.Equal(t, "failed", listings[0].Status)
	assert.Equal(t, "Poster", listings[1].ProductName)

	shown, err := svc.Show(ctx, created.Id)
	require.NoError(t, err)
	assert.Equal(t, poster.Id, shown.ProductTypeId)
}

func TestEntityProductService_NotFound(t *testing.T) {
	env := newTestEnv(t)
	svc := NewEntityProductService(env.uowFactory)
	ctx := context.Background()

	_, err := svc.Show(ctx, 404)
	assert.ErrorIs(t, err, ErrEntityProductNotFound)

	_, err = svc.GetByEntity(ctx, 404)
	assert.ErrorIs(t, err, ErrEntityNotFound)

	_, err = svc.Create(ctx, &dto.CreateEntityProductRequest{EntityId: 404, ProductTypeId: env.fixture.ProductType.Id})
	assert.ErrorIs(t, err, ErrEntityNotFound)

	_, err = svc.Create(ctx, &dto.CreateEntityProductRequest{EntityId: env.fixture.Entity.Id, ProductTypeId: 404})
	assert.ErrorIs(t, err, ErrProductTypeNotFound)
}
