package queries

import (
	"errors"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/pkg/guard"
)

var (
	ErrGetStatusMappingsQueryIsNotConstructed = errors.New(
		"GetStatusMappingsQuery must be created via NewGetStatusMappingsQuery constructor",
	)
)

// GetStatusMappingsQuery retrieves the full mapping table, active and inactive
// rows alike, in resolution order.
type GetStatusMappingsQuery struct {
	guard guard.ConstructorGuard
}

// NewGetStatusMappingsQuery creates a query for the stored mapping table.
func NewGetStatusMappingsQuery() GetStatusMappingsQuery {
	return GetStatusMappingsQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetStatusMappingsQuery) Validate() error {
	return q.guard.Validate(ErrGetStatusMappingsQueryIsNotConstructed)
}

// GetStatusMappingsQueryResponse is one mapping table row.
type GetStatusMappingsQueryResponse struct {
	StatusValue string
	Area        kernel.Area
	Label       string
	SortOrder   int
	IsActive    bool
}
