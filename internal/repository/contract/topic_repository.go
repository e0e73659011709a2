package contract

import (
	"context"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/repository/specification"
)

type TopicRepository interface {
	Create(ctx context.Context, topic *entity.Topic) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Topic, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Topic, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type SubtopicRepository interface {
	Create(ctx context.Context, subtopic *entity.Subtopic) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Subtopic, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Subtopic, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
