// Package queries contains read-only operations that retrieve system state.
// Implements the Query pattern for read operations in the CQRS architecture.
// Query handlers read directly from the database for optimal performance,
// bypassing the domain model where the read model does not need its behavior.
package queries

import (
	"errors"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrdersQueryIsNotConstructed = errors.New(
		"GetOrdersQuery must be created via NewGetOrdersQuery constructor",
	)
)

// GetOrdersQuery retrieves manufacturing orders, optionally filtered to a single
// pipeline area.
//
// Example:
//
//	query := NewGetOrdersQuery()                                // all orders
//	query = query.InArea(kernel.AreaWarehouse)                  // one area
//	orders, err := handler.Handle(ctx, query)
type GetOrdersQuery struct {
	area       kernel.Area
	filterArea bool

	guard guard.ConstructorGuard
}

// NewGetOrdersQuery creates a query retrieving every order.
func NewGetOrdersQuery() GetOrdersQuery {
	return GetOrdersQuery{guard: guard.NewConstructorGuard()}
}

// InArea narrows the query to orders currently placed in the given area.
func (q GetOrdersQuery) InArea(area kernel.Area) GetOrdersQuery {
	q.area = area
	q.filterArea = true
	return q
}

// Validate ensures the query was created through the constructor and any area
// filter names a valid area.
func (q GetOrdersQuery) Validate() error {
	if err := q.guard.Validate(ErrGetOrdersQueryIsNotConstructed); err != nil {
		return err
	}
	if q.filterArea {
		return q.area.Validate()
	}
	return nil
}

// Area returns the area filter and whether one is set.
func (q GetOrdersQuery) Area() (kernel.Area, bool) {
	return q.area, q.filterArea
}

// GetOrdersQueryResponse is the order read model served to display surfaces.
type GetOrdersQueryResponse struct {
	ID                kernel.UUID
	Number            string
	Plant             string
	Material          string
	StartDate         string
	FinishDate        string
	OrderQuantity     decimal.Decimal
	DeliveredQuantity decimal.Decimal
	RawStatus         string
	CurrentArea       kernel.Area
	SapArea           kernel.Area
	Source            kernel.PlacementSource
	Discrepancy       bool
	HasChanges        bool
}
