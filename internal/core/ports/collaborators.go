package ports

import (
	"context"

	"flowtrack/internal/core/domain/model/kernel"
)

// IssueTracker exposes the issue-tracking collaborator. Open issues block the
// forward move out of the Warehouse area.
type IssueTracker interface {
	// OpenIssueCount returns the number of OPEN issues attached to the order.
	OpenIssueCount(ctx context.Context, orderID kernel.UUID) (int, error)
}

// ProductionStatusProvider exposes the production-status collaborator. Only
// completed production allows the forward move out of the Production area.
type ProductionStatusProvider interface {
	// Status returns the order's production status. Orders unknown to the
	// collaborator report Pending.
	Status(ctx context.Context, orderID kernel.UUID) (kernel.ProductionStatus, error)
}
