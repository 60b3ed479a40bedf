// Package postgres provides the GORM-based implementation of the Unit of Work
// pattern. A unit of work spans one business transaction: every mutating use
// case creates a fresh instance, performs its repository operations inside the
// transaction, and commits or rolls back as a whole. No caller observes a
// partially applied assignment pass or a half-written manual move.
package postgres

import (
	"context"

	"flowtrack/internal/adapters/out/postgres/auditrepo"
	"flowtrack/internal/adapters/out/postgres/mappingrepo"
	"flowtrack/internal/adapters/out/postgres/moderepo"
	"flowtrack/internal/adapters/out/postgres/orderrepo"
	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/ports"

	"gorm.io/gorm"
)

// trackedAggregate represents an aggregate modified during the unit of work.
type trackedAggregate struct {
	ID        kernel.UUID
	Aggregate interface{}
}

// GormUnitOfWorkFactory creates UnitOfWork instances using a GORM database
// connection. Each business operation gets a fresh unit of work instance with
// proper isolation from other concurrent operations.
type GormUnitOfWorkFactory struct {
	db *gorm.DB
}

// NewGormUnitOfWorkFactory creates a factory bound to the given connection.
func NewGormUnitOfWorkFactory(db *gorm.DB) *GormUnitOfWorkFactory {
	return &GormUnitOfWorkFactory{db: db}
}

// Create produces a new UnitOfWork ready for transaction management.
func (f *GormUnitOfWorkFactory) Create() ports.UnitOfWork {
	return &GormUnitOfWork{
		db:                f.db,
		trackedAggregates: make([]trackedAggregate, 0),
	}
}

// GormUnitOfWork coordinates one database transaction across the repositories.
// Repository accessors return instances bound to the active transaction, so all
// operations between Begin and Commit share one consistent snapshot.
type GormUnitOfWork struct {
	db                *gorm.DB
	tx                *gorm.DB
	trackedAggregates []trackedAggregate
}

// Begin initiates a new database transaction. Repeated calls on the same
// instance are safe and do not create nested transactions.
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
// Returns an error if no active transaction exists or the commit fails.
func (uow *GormUnitOfWork) Commit(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Commit().Error
	uow.tx = nil
	return err
}

// Rollback discards all changes made within the current transaction.
// Returns an error if no active transaction exists or the rollback fails.
func (uow *GormUnitOfWork) Rollback(_ context.Context) error {
	if uow.tx == nil {
		return gorm.ErrInvalidTransaction
	}

	err := uow.tx.Rollback().Error
	uow.tx = nil
	return err
}

// OrderRepository returns an order repository bound to the current transaction,
// or to the main connection when no transaction is active.
func (uow *GormUnitOfWork) OrderRepository() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(uow.conn(), uow)
}

// StatusMappingRepository returns a mapping table repository bound to the
// current transaction.
func (uow *GormUnitOfWork) StatusMappingRepository() ports.StatusMappingRepository {
	return mappingrepo.NewGormStatusMappingRepository(uow.conn())
}

// AreaModeRepository returns a mode configuration repository bound to the
// current transaction.
func (uow *GormUnitOfWork) AreaModeRepository() ports.AreaModeRepository {
	return moderepo.NewGormAreaModeRepository(uow.conn())
}

// MoveAuditRepository returns a move audit repository bound to the current
// transaction.
func (uow *GormUnitOfWork) MoveAuditRepository() ports.MoveAuditRepository {
	return auditrepo.NewGormMoveAuditRepository(uow.conn())
}

func (uow *GormUnitOfWork) conn() *gorm.DB {
	if uow.tx != nil {
		return uow.tx
	}
	return uow.db
}

// TrackAggregate registers a domain aggregate as modified within this unit of
// work. Repository implementations call it on Add and Update; the tracked set
// is the hook point for post-commit processing such as event publication.
func (uow *GormUnitOfWork) TrackAggregate(id kernel.UUID, aggregate interface{}) {
	uow.trackedAggregates = append(uow.trackedAggregates, trackedAggregate{
		ID:        id,
		Aggregate: aggregate,
	})
}
