package ports

import (
	"context"
	"time"

	"flowtrack/internal/core/domain/model/kernel"
)

// MoveAuditEntry is one row of the append-only manual move log. Entries are
// written exclusively by the move use case and never mutated or deleted.
type MoveAuditEntry struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	FromArea      kernel.Area
	ToArea        kernel.Area
	Justification string
	MovedAt       time.Time
	Actor         string
}

// MoveAuditRepository defines the persistence contract for the move audit
// trail. The interface deliberately exposes no update or delete.
type MoveAuditRepository interface {
	// Add appends one audit entry.
	Add(ctx context.Context, entry MoveAuditEntry) error

	// GetByOrder retrieves the audit trail of one order, newest first.
	GetByOrder(ctx context.Context, orderID kernel.UUID) ([]MoveAuditEntry, error)
}
