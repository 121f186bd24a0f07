// Package postgres provides the GORM-based implementation of the Unit of
// Work pattern. A unit of work spans one business transaction: every
// repository handed out by it runs on the same database transaction, so an
// order row and its line items always change together.
package postgres

import (
	"context"

	"pickpoint/internal/adapters/out/postgres/orderrepo"
	"pickpoint/internal/adapters/out/postgres/postautomatrepo"
	"pickpoint/internal/adapters/out/postgres/productrepo"
	"pickpoint/internal/adapters/out/postgres/statusrepo"
	"pickpoint/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	Number    int
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances over a shared GORM
// connection. Each business operation gets a fresh instance with its own
// transaction state.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory for GORM-based unit of work instances.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for one business transaction.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates a database transaction across the repositories
// of one business operation. Repositories obtained from it run inside the
// current transaction when one is active, and on the main connection
// otherwise.
//
// Example:
//
//	uow := factory.Create()
//	if err := uow.Begin(ctx); err != nil {
//	    return err
//	}
//	defer func() { _ = uow.Rollback(ctx) }()
//
//	if err := uow.OrderRepository().Add(ctx, o); err != nil {
//	    return err
//	}
//	return uow.Commit(ctx)
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Calling Begin again on an
// instance with an active transaction is a no-op, not a nested transaction.
func (uow *GormUnitOfWork) Begin(ctx context.Context) error {
	if uow.tx != nil {
		return nil
	}

	uow.tx = uow.db.WithContext(ctx).Begin()
	if uow.tx.Error != nil {
		return uow.tx.Error
	}

	return nil
}

// Commit finalizes all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns gorm.ErrInvalidTransaction if no transaction is active, which is
// the normal outcome of the deferred rollback after a successful commit.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// OrderRepository returns an order repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// PostautomatRepository returns a locker repository bound to the current transaction.
func (uow *GormUnitOfWork) PostautomatRepository() ports.PostautomatRepository {
	return postautomatrepo.NewGormPostautomatRepository(uow.conn())
}

// ProductRepository returns a catalog repository bound to the current transaction.
func (uow *GormUnitOfWork) ProductRepository() ports.ProductRepository {
	return productrepo.NewGormProductRepository(uow.conn())
}

// OrderStatusRepository returns a status repository bound to the current transaction.
func (uow *GormUnitOfWork) OrderStatusRepository() ports.OrderStatusRepository {
	return statusrepo.NewGormOrderStatusRepository(uow.conn())
}

// TrackAggregate registers an aggregate as modified within this unit of
// work. Called by repository implementations on writes.
func (uow *GormUnitOfWork) TrackAggregate(number int, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		Number:    number,
		Aggregate: aggregate,
	})
}
