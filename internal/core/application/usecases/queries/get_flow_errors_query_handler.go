package queries

import (
	"context"

	"flowtrack/internal/core/domain/services"
	"flowtrack/internal/core/ports"
)

// GetFlowErrorsQueryHandler computes flow errors against live state.
//
// Unlike the SQL read models in this package, the classifier needs full order
// aggregates and the domain resolution rules, so the handler loads them through
// the repositories instead of scanning rows.
type GetFlowErrorsQueryHandler struct {
	orders     ports.OrderRepository
	mappings   ports.StatusMappingRepository
	classifier services.FlowErrorClassifier
}

// NewGetFlowErrorsQueryHandler creates a handler for flow error queries.
func NewGetFlowErrorsQueryHandler(
	orders ports.OrderRepository,
	mappings ports.StatusMappingRepository,
) GetFlowErrorsQueryHandler {
	return GetFlowErrorsQueryHandler{
		orders:     orders,
		mappings:   mappings,
		classifier: services.NewFlowErrorClassifier(),
	}
}

// Handle classifies every order against the active mapping table.
func (h GetFlowErrorsQueryHandler) Handle(
	ctx context.Context,
	query GetFlowErrorsQuery,
) ([]services.FlowError, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	all, err := h.orders.GetAll(ctx)
	if err != nil {
		return nil, err
	}

	active, err := h.mappings.GetActive(ctx)
	if err != nil {
		return nil, err
	}

	findings := h.classifier.ComputeFlowErrors(all, active)

	category, ok := query.Category()
	if !ok {
		return findings, nil
	}

	filtered := make([]services.FlowError, 0, len(findings))
	for _, finding := range findings {
		if finding.Category == category {
			filtered = append(filtered, finding)
		}
	}
	return filtered, nil
}
