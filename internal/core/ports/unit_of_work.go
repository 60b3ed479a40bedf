package ports

import (
	"context"
)

// UnitOfWorkFactory creates new UnitOfWork instances for each request/command.
// This ensures proper isolation between concurrent operations.
type UnitOfWorkFactory interface {
	Create() UnitOfWork
}

// UnitOfWork represents a business transaction boundary.
// It provides transaction control and repository access bound to the
// transaction. Client code must explicitly manage the transaction lifecycle.
type UnitOfWork interface {
	// Begin starts a new database transaction.
	Begin(ctx context.Context) error

	// Commit commits the current transaction.
	// Returns error if no active transaction or commit fails.
	Commit(ctx context.Context) error

	// Rollback rolls back the current transaction.
	// Returns error if no active transaction or rollback fails.
	Rollback(ctx context.Context) error

	// OrderRepository returns an OrderRepository bound to the current transaction.
	OrderRepository() OrderRepository

	// StatusMappingRepository returns a StatusMappingRepository bound to the
	// current transaction.
	StatusMappingRepository() StatusMappingRepository

	// AreaModeRepository returns an AreaModeRepository bound to the current
	// transaction.
	AreaModeRepository() AreaModeRepository

	// MoveAuditRepository returns a MoveAuditRepository bound to the current
	// transaction.
	MoveAuditRepository() MoveAuditRepository
}
