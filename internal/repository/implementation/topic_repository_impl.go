package implementation

import (
	"context"
	"errors"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/mapper"
	"brandkit-admin-be/internal/model"
	"brandkit-admin-be/internal/repository/contract"
	"brandkit-admin-be/internal/repository/specification"

	"gorm.io/gorm"
)

func applySpecifications(db *gorm.DB, specs ...specification.Specification) *gorm.DB {
	for _, spec := range specs {
		db = spec.Apply(db)
	}
	return db
}

type TopicRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.TopicMapper
}

func NewTopicRepository(db *gorm.DB) contract.TopicRepository {
	return &TopicRepositoryImpl{
		db:     db,
		mapper: mapper.NewTopicMapper(),
	}
}

func (r *TopicRepositoryImpl) Create(ctx context.Context, topic *entity.Topic) error {
	m := r.mapper.ToModel(topic)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*topic = *r.mapper.ToEntity(m)
	return nil
}

func (r *TopicRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error) {
	var m model.Topic
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *TopicRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Topic, error) {
	var models []*model.Topic
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *TopicRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Topic{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

type SubtopicRepositoryImpl struct {
	db     *gorm.DB
	mapper *mapper.SubtopicMapper
}

func NewSubtopicRepository(db *gorm.DB) contract.SubtopicRepository {
	return &SubtopicRepositoryImpl{
		db:     db,
		mapper: mapper.NewSubtopicMapper(),
	}
}

func (r *SubtopicRepositoryImpl) Create(ctx context.Context, subtopic *entity.Subtopic) error {
	m := r.mapper.ToModel(subtopic)
	if err := r.db.WithContext(ctx).Create(m).Error; err != nil {
		return err
	}
	*subtopic = *r.mapper.ToEntity(m)
	return nil
}

func (r *SubtopicRepositoryImpl) FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subtopic, error) {
	var m model.Subtopic
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return r.mapper.ToEntity(&m), nil
}

func (r *SubtopicRepositoryImpl) FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subtopic, error) {
	var models []*model.Subtopic
	query := applySpecifications(r.db.WithContext(ctx), specs...)
	if err := query.Find(&models).Error; err != nil {
		return nil, err
	}
	return r.mapper.ToEntities(models), nil
}

func (r *SubtopicRepositoryImpl) Count(ctx context.Context, specs ...specification.Specification) (int64, error) {
	var count int64
	query := applySpecifications(r.db.WithContext(ctx).Model(&model.Subtopic{}), specs...)
	if err := query.Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}
