package contract

import (
	"context"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/repository/specification"
)

type EntityRepository interface {
	Create(ctx context.Context, e *entity.Entity) error
	// UpdateFields writes only the given columns and returns the number of rows touched.
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}) (int64, error)
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.Entity, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.Entity, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}

type EntityImageRepository interface {
	Create(ctx context.Context, image *entity.EntityImage) error
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EntityImage, error)
}
