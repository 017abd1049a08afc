// Package postgres contains the concrete implementation of the persistence layer using GORM and PostgreSQL.
package postgres

import (
	"context"

	"lodging/internal/domain/repository"
	"lodging/internal/errors"

	"gorm.io/gorm"
)

// gormTransactionManager implements the domain's TransactionManager interface using GORM.
type gormTransactionManager struct {
	db *gorm.DB
}

// gormRepositoryFactory hands out repositories bound to one transaction.
type gormRepositoryFactory struct {
	tx *gorm.DB // In GORM, a transaction object is also a *gorm.DB
}

func (f *gormRepositoryFactory) NewCustomerRepository() repository.CustomerRepository {
	return NewCustomerRepository(f.tx)
}

func (f *gormRepositoryFactory) NewLodgingRepository() repository.LodgingRepository {
	return NewLodgingRepository(f.tx)
}

func (f *gormRepositoryFactory) NewReservationRepository() repository.ReservationRepository {
	return NewReservationRepository(f.tx)
}

// NewTransactionManager is the constructor for gormTransactionManager.
func NewTransactionManager(db *gorm.DB) repository.TransactionManager {
	return &gormTransactionManager{db: db}
}

// Execute runs the given function within a single database transaction.
func (tm *gormTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	tx := tm.db.WithContext(ctx).Begin()
	if tx.Error != nil {
		return errors.Wrap(tx.Error, "failed to begin transaction")
	}

	// Roll back on panic, then re-panic so Echo's Recover middleware still sees it.
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
			panic(r)
		}
	}()

	if err := fn(&gormRepositoryFactory{tx: tx}); err != nil {
		if rbErr := tx.Rollback().Error; rbErr != nil {
			return errors.Wrapf(err, "transaction rollback failed: %v", rbErr)
		}

		return err
	}

	if err := tx.Commit().Error; err != nil {
		return errors.Wrap(err, "failed to commit transaction")
	}

	return nil
}
