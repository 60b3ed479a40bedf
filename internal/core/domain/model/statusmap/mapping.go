package statusmap

import (
	"errors"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/pkg/errs"
	"flowtrack/internal/pkg/guard"
)

// ErrStatusMappingIsNotConstructed is returned when a StatusMapping instance was
// not created through the NewStatusMapping factory method.
var ErrStatusMappingIsNotConstructed = errors.New(
	"StatusMapping must be created via NewStatusMapping constructor",
)

// StatusMapping is a value object binding one upstream status code to a pipeline
// area. Multiple active rows may map to the same area. Rows with a higher sort
// order represent more advanced stages and win effective-status resolution.
//
// Uniqueness of the status value among active rows is not enforced here; the
// resolver's first-wins tie break makes duplicates harmless.
type StatusMapping struct {
	statusValue string
	area        kernel.Area
	label       string
	sortOrder   int
	isActive    bool

	guard guard.ConstructorGuard
}

// NewStatusMapping creates a validated mapping row.
// The status value must be non-empty and the area must be a valid pipeline stage.
// The label is display-only and may be empty.
func NewStatusMapping(
	statusValue string,
	area kernel.Area,
	label string,
	sortOrder int,
	isActive bool,
) (StatusMapping, error) {
	if statusValue == "" {
		return StatusMapping{}, errs.NewValueIsRequiredError("statusValue")
	}
	if err := area.Validate(); err != nil {
		return StatusMapping{}, err
	}

	return StatusMapping{
		statusValue: statusValue,
		area:        area,
		label:       label,
		sortOrder:   sortOrder,
		isActive:    isActive,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the mapping was created through the constructor.
func (m StatusMapping) Validate() error {
	return m.guard.Validate(ErrStatusMappingIsNotConstructed)
}

// StatusValue returns the upstream status code this row matches.
func (m StatusMapping) StatusValue() string {
	return m.statusValue
}

// Area returns the pipeline area the status code maps to.
func (m StatusMapping) Area() kernel.Area {
	return m.area
}

// Label returns the display label of the mapping row.
func (m StatusMapping) Label() string {
	return m.label
}

// SortOrder returns the pipeline advancement rank of the status code.
func (m StatusMapping) SortOrder() int {
	return m.sortOrder
}

// IsActive reports whether the row participates in resolution.
func (m StatusMapping) IsActive() bool {
	return m.isActive
}
