package services

import (
	"fmt"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/domain/model/order"
	"flowtrack/internal/core/domain/model/statusmap"

	"github.com/shopspring/decimal"
)

// FlowErrorCategory classifies a detected data or flow problem.
type FlowErrorCategory string

const (
	// CategoryDiscrepancy (E1) marks a manually placed order whose area diverges
	// from the area the current mapping table derives.
	CategoryDiscrepancy FlowErrorCategory = "E1_DISCREPANCY"

	// CategoryRegress (E2) marks an order whose upstream system status changed
	// according to the ingestion change report.
	CategoryRegress FlowErrorCategory = "E2_REGRESS"

	// CategoryMissing (E3) marks orders present in a previous snapshot but absent
	// from the current one. The ingestion collaborator does not supply the
	// previous snapshot, so this category is a documented always-empty slot,
	// kept so callers see the category rather than a silent omission.
	CategoryMissing FlowErrorCategory = "E3_MISSING"

	// CategoryInvalid (E4) marks orders violating basic data rules: inverted
	// date range, non-positive order quantity, over-delivery.
	CategoryInvalid FlowErrorCategory = "E4_INVALID"
)

// FlowError is an ephemeral, recomputed finding. It is never persisted.
// CurrentArea and SapArea are populated for discrepancy findings only.
type FlowError struct {
	Category    FlowErrorCategory
	OrderID     kernel.UUID
	OrderNumber string
	Description string
	CurrentArea kernel.Area
	SapArea     kernel.Area
}

// FlowErrorClassifier scans the order set against the mapping table and emits
// categorized findings.
//
// The classifier is read-only: it never mutates orders or mappings, and it
// derives areas fresh from the passed mapping table rather than trusting the
// cached reference area, so findings cannot go stale against mapping edits.
// Output order is unspecified; callers sort and filter as needed.
type FlowErrorClassifier struct{}

// NewFlowErrorClassifier creates a FlowErrorClassifier instance.
func NewFlowErrorClassifier() FlowErrorClassifier {
	return FlowErrorClassifier{}
}

// ComputeFlowErrors returns every finding across all four categories.
// An order may yield multiple findings, one per violated rule.
func (c FlowErrorClassifier) ComputeFlowErrors(
	orders []*order.ManufacturingOrder,
	mappings []statusmap.StatusMapping,
) []FlowError {
	flowErrors := make([]FlowError, 0)

	for _, o := range orders {
		flowErrors = append(flowErrors, c.classifyDiscrepancy(o, mappings)...)
		flowErrors = append(flowErrors, c.classifyRegress(o)...)
		flowErrors = append(flowErrors, c.classifyInvalid(o)...)
	}

	// E3_MISSING stays empty: computing it needs the previous ingestion
	// snapshot, which no collaborator supplies.

	return flowErrors
}

func (c FlowErrorClassifier) classifyDiscrepancy(
	o *order.ManufacturingOrder,
	mappings []statusmap.StatusMapping,
) []FlowError {
	if o.Source() != kernel.SourceManual {
		return nil
	}

	derived := statusmap.DeriveArea(o.RawStatus(), mappings)
	if derived == o.CurrentArea() {
		return nil
	}

	return []FlowError{{
		Category:    CategoryDiscrepancy,
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		Description: fmt.Sprintf(
			"manually placed in %s while the mapping table derives %s",
			o.CurrentArea(), derived,
		),
		CurrentArea: o.CurrentArea(),
		SapArea:     derived,
	}}
}

func (c FlowErrorClassifier) classifyRegress(o *order.ManufacturingOrder) []FlowError {
	if !o.HasChanges() || !o.FieldChanged(order.FieldSystemStatus) {
		return nil
	}

	return []FlowError{{
		Category:    CategoryRegress,
		OrderID:     o.ID(),
		OrderNumber: o.Number(),
		Description: "upstream system status changed since the previous ingestion",
	}}
}

func (c FlowErrorClassifier) classifyInvalid(o *order.ManufacturingOrder) []FlowError {
	findings := make([]FlowError, 0)

	// ISO YYYY-MM-DD dates compare lexicographically.
	if o.StartDate() != "" && o.FinishDate() != "" && o.StartDate() > o.FinishDate() {
		findings = append(findings, FlowError{
			Category:    CategoryInvalid,
			OrderID:     o.ID(),
			OrderNumber: o.Number(),
			Description: fmt.Sprintf(
				"start date %s is later than finish date %s",
				o.StartDate(), o.FinishDate(),
			),
		})
	}

	if o.OrderQuantity().LessThanOrEqual(decimal.Zero) {
		findings = append(findings, FlowError{
			Category:    CategoryInvalid,
			OrderID:     o.ID(),
			OrderNumber: o.Number(),
			Description: fmt.Sprintf("order quantity %s is not positive", o.OrderQuantity()),
		})
	}

	if o.DeliveredQuantity().GreaterThan(o.OrderQuantity()) {
		findings = append(findings, FlowError{
			Category:    CategoryInvalid,
			OrderID:     o.ID(),
			OrderNumber: o.Number(),
			Description: fmt.Sprintf(
				"delivered quantity %s exceeds order quantity %s",
				o.DeliveredQuantity(), o.OrderQuantity(),
			),
		})
	}

	return findings
}
