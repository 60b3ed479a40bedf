package queries

import (
	"errors"

	"flowtrack/internal/core/domain/services"
	"flowtrack/internal/pkg/guard"
)

var (
	ErrGetFlowErrorsQueryIsNotConstructed = errors.New(
		"GetFlowErrorsQuery must be created via NewGetFlowErrorsQuery constructor",
	)
)

// GetFlowErrorsQuery recomputes the categorized flow error list.
// Findings are ephemeral: every execution classifies the current order set
// against the current active mapping table.
type GetFlowErrorsQuery struct {
	category       services.FlowErrorCategory
	filterCategory bool

	guard guard.ConstructorGuard
}

// NewGetFlowErrorsQuery creates a query computing findings in every category.
func NewGetFlowErrorsQuery() GetFlowErrorsQuery {
	return GetFlowErrorsQuery{guard: guard.NewConstructorGuard()}
}

// InCategory narrows the query to findings of one category.
func (q GetFlowErrorsQuery) InCategory(category services.FlowErrorCategory) GetFlowErrorsQuery {
	q.category = category
	q.filterCategory = true
	return q
}

// Validate ensures the query was created through the constructor.
func (q GetFlowErrorsQuery) Validate() error {
	return q.guard.Validate(ErrGetFlowErrorsQueryIsNotConstructed)
}

// Category returns the category filter and whether one is set.
func (q GetFlowErrorsQuery) Category() (services.FlowErrorCategory, bool) {
	return q.category, q.filterCategory
}
