package queries

import (
	"errors"
	"time"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/pkg/guard"
)

var (
	ErrGetMoveAuditQueryIsNotConstructed = errors.New(
		"GetMoveAuditQuery must be created via NewGetMoveAuditQuery constructor",
	)
)

// GetMoveAuditQuery retrieves the manual move history of one order.
type GetMoveAuditQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetMoveAuditQuery creates a query for the given order's audit trail.
func NewGetMoveAuditQuery(orderID kernel.UUID) (GetMoveAuditQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetMoveAuditQuery{}, err
	}

	return GetMoveAuditQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetMoveAuditQuery) Validate() error {
	return q.guard.Validate(ErrGetMoveAuditQueryIsNotConstructed)
}

// OrderID returns the identifier of the order whose history is requested.
func (q GetMoveAuditQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetMoveAuditQueryResponse is one manual move, newest first in the result list.
type GetMoveAuditQueryResponse struct {
	ID            kernel.UUID
	OrderID       kernel.UUID
	FromArea      kernel.Area
	ToArea        kernel.Area
	Justification string
	MovedAt       time.Time
	Actor         string
}
