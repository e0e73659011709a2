package unitofwork

import (
	"context"

	"brandkit-admin-be/internal/repository/contract"
)

type UnitOfWork interface {
	Begin(ctx context.Context) error
	Commit() error
	Rollback() error

	TopicRepository() contract.TopicRepository
	SubtopicRepository() contract.SubtopicRepository
	EntityRepository() contract.EntityRepository
	EntityImageRepository() contract.EntityImageRepository
	ProductTypeRepository() contract.ProductTypeRepository
	EntityProductRepository() contract.EntityProductRepository
}
