// Package commands contains business operations that modify system state.
// Implements the Command pattern for write operations in the CQRS architecture.
// All commands follow a consistent pattern: validation, transaction management,
// and persistence.
package commands

import (
	"context"

	"flowtrack/internal/core/ports"
)

// Unit of Work interfaces provide transaction management for command handlers.
// Each command depends only on the narrow slice of repositories it touches.
type (
	// TxManager handles database transaction lifecycle.
	// Ensures atomic operations across multiple repository calls.
	TxManager interface {
		Begin(ctx context.Context) error
		Commit(ctx context.Context) error
		Rollback(ctx context.Context) error
	}

	// OrderRepoFactory provides access to the order repository within a transaction.
	OrderRepoFactory interface {
		OrderRepository() ports.OrderRepository
	}

	// MappingRepoFactory provides access to the status mapping repository within a transaction.
	MappingRepoFactory interface {
		StatusMappingRepository() ports.StatusMappingRepository
	}

	// ModeRepoFactory provides access to the area mode repository within a transaction.
	ModeRepoFactory interface {
		AreaModeRepository() ports.AreaModeRepository
	}

	// AuditRepoFactory provides access to the move audit repository within a transaction.
	AuditRepoFactory interface {
		MoveAuditRepository() ports.MoveAuditRepository
	}

	// AssignmentUoW manages transactions for assignment passes: every order is
	// recomputed against the active mapping table.
	AssignmentUoW interface {
		TxManager
		OrderRepoFactory
		MappingRepoFactory
	}

	// AssignmentUoWFactory creates new assignment unit of work instances.
	AssignmentUoWFactory interface {
		Create() AssignmentUoW
	}

	// MoveUoW manages transactions for manual moves: the order mutation and its
	// audit entry commit together.
	MoveUoW interface {
		TxManager
		OrderRepoFactory
		MappingRepoFactory
		AuditRepoFactory
	}

	// MoveUoWFactory creates new move unit of work instances.
	MoveUoWFactory interface {
		Create() MoveUoW
	}

	// ModeUoW manages transactions for area mode configuration changes.
	ModeUoW interface {
		TxManager
		ModeRepoFactory
	}

	// ModeUoWFactory creates new mode unit of work instances.
	ModeUoWFactory interface {
		Create() ModeUoW
	}
)
