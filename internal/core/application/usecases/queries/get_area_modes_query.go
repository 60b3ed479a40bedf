package queries

import (
	"errors"

	"flowtrack/internal/core/domain/model/areamode"
	"flowtrack/internal/pkg/guard"
)

var (
	ErrGetAreaModesQueryIsNotConstructed = errors.New(
		"GetAreaModesQuery must be created via NewGetAreaModesQuery constructor",
	)
)

// GetAreaModesQuery retrieves the per-area placement mode configuration.
// Areas without a stored mode report AUTO.
type GetAreaModesQuery struct {
	guard guard.ConstructorGuard
}

// NewGetAreaModesQuery creates a query for the current mode configuration.
func NewGetAreaModesQuery() GetAreaModesQuery {
	return GetAreaModesQuery{guard: guard.NewConstructorGuard()}
}

// Validate ensures the query was created through the constructor.
func (q GetAreaModesQuery) Validate() error {
	return q.guard.Validate(ErrGetAreaModesQueryIsNotConstructed)
}

// GetAreaModesQueryResponse carries the default-filled mode set.
type GetAreaModesQueryResponse struct {
	Modes areamode.ModeSet
}
