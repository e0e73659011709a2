package contract

import (
	"context"
	"time"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/repository/specification"
)

type EntityProductRepository interface {
	// Create inserts a bare association row and lets column defaults fill the rest.
	Create(ctx context.Context, ep *entity.EntityProduct) error

	// UpsertStatus inserts the (entity, product type) row with the given status,
	// or on conflict with the unique pair overwrites only status and updated_at.
	UpsertStatus(ctx context.Context, entityId, productTypeId int64, status entity.GenerationStatus, now time.Time) (*entity.EntityProduct, error)

	// UpdateFields writes the given columns on row id. Extra specs narrow the
	// WHERE clause so callers can make the write conditional.
	UpdateFields(ctx context.Context, id int64, fields map[string]interface{}, specs ...specification.Specification) (int64, error)

	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.EntityProduct, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.EntityProduct, error)
	FindAllWithProductName(ctx context.Context, entityId int64) ([]*entity.EntityProductListing, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
