package unitofwork

import (
	"context"
	"fmt"

	"brandkit-admin-be/internal/repository/contract"
	"brandkit-admin-be/internal/repository/implementation"

	"gorm.io/gorm"
)

type UnitOfWorkImpl struct {
	db *gorm.DB
	tx *gorm.DB // active transaction, nil outside Begin/Commit
}

func NewUnitOfWork(db *gorm.DB) UnitOfWork {
	return &UnitOfWorkImpl{
		db: db,
	}
}

func (u *UnitOfWorkImpl) getDB() *gorm.DB {
	if u.tx != nil {
		return u.tx
	}
	return u.db
}

func (u *UnitOfWorkImpl) Begin(ctx context.Context) error {
	if u.tx != nil {
		return fmt.Errorf("transaction already started")
	}
	tx := u.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return tx.Error
	}
	u.tx = tx
	return nil
}

func (u *UnitOfWorkImpl) Commit() error {
	if u.tx == nil {
		return fmt.Errorf("no transaction to commit")
	}
	err := u.tx.Commit().Error
	u.tx = nil
	return err
}

// Rollback is a no-op once the transaction has been committed, so it is safe to defer.
func (u *UnitOfWorkImpl) Rollback() error {
	if u.tx == nil {
		return nil
	}
	err := u.tx.Rollback().Error
	u.tx = nil
	return err
}

// Repository Accessors

func (u *UnitOfWorkImpl) TopicRepository() contract.TopicRepository {
	return implementation.NewTopicRepository(u.getDB())
}

func (u *UnitOfWorkImpl) SubtopicRepository() contract.SubtopicRepository {
	return implementation.NewSubtopicRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EntityRepository() contract.EntityRepository {
	return implementation.NewEntityRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EntityImageRepository() contract.EntityImageRepository {
	return implementation.NewEntityImageRepository(u.getDB())
}

func (u *UnitOfWorkImpl) ProductTypeRepository() contract.ProductTypeRepository {
	return implementation.NewProductTypeRepository(u.getDB())
}

func (u *UnitOfWorkImpl) EntityProductRepository() contract.EntityProductRepository {
	return implementation.NewEntityProductRepository(u.getDB())
}
