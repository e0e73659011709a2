package contract

import (
	"context"

	"brandkit-admin-be/internal/entity"
	"brandkit-admin-be/internal/repository/specification"
)

type ProductTypeRepository interface {
	Create(ctx context.Context, productType *entity.ProductType) error
	FindOne(ctx context.Context, specs ...specification.Specification) (*entity.ProductType, error)
	FindAll(ctx context.Context, specs ...specification.Specification) ([]*entity.ProductType, error)
	Count(ctx context.Context, specs ...specification.Specification) (int64, error)
}
