package order

import (
	"errors"
	"fmt"
	"time"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

// ErrOrderIsNotConstructed is returned when a ManufacturingOrder instance was not
// created through NewManufacturingOrder or RestoreManufacturingOrder.
var ErrOrderIsNotConstructed = errors.New(
	"ManufacturingOrder must be created via NewManufacturingOrder or RestoreManufacturingOrder",
)

// FieldSystemStatus is the change-report field name whose presence marks an
// upstream status regression.
const FieldSystemStatus = "System_Status"

// dateLayout is the ISO day format used for start and finish dates. Dates are
// kept as strings because the format is lexicographically comparable and the
// upstream system delivers them as text.
const dateLayout = "2006-01-02"

// ManufacturingOrder is the aggregate root tracking one order's position in the
// pipeline.
//
// Invariants maintained across every mutation:
//   - source == system implies currentArea == sapArea
//   - source == manual implies currentArea is never changed by ApplyMapping
//   - discrepancy == (source == manual && sapArea != currentArea)
//
// Business-rule violations in quantities and dates (negative quantity,
// over-delivery, inverted date range) are deliberately representable: they are
// data errors reported by the flow error classifier, not construction failures.
type ManufacturingOrder struct {
	// id is the internal unique identifier
	id kernel.UUID

	// number is the external order number supplied by the upstream system
	number string

	plant    string
	material string

	// startDate and finishDate are ISO YYYY-MM-DD strings, possibly empty
	startDate  string
	finishDate string

	orderQuantity     decimal.Decimal
	deliveredQuantity decimal.Decimal

	// rawStatus is the space-separated upstream status token string
	rawStatus string

	// currentArea is the effective pipeline placement
	currentArea kernel.Area

	// sapArea caches the area last derived from the mapping table
	sapArea kernel.Area

	source      kernel.PlacementSource
	discrepancy bool

	// changedFields and hasChanges mirror the ingestion change report
	changedFields map[string]struct{}
	hasChanges    bool

	// version is the optimistic concurrency token checked on update
	version int

	// isConstructed ensures the order was created via a factory function
	isConstructed bool
}

// NewManufacturingOrder creates an order as the ingestion edge sees it for the
// first time: system-tracked, placed in the area derived from its raw status.
//
// Only structural attributes are validated. Quantities and date ordering are
// accepted as-is so the classifier can report them.
func NewManufacturingOrder(
	id kernel.UUID,
	number string,
	plant string,
	material string,
	startDate string,
	finishDate string,
	orderQuantity decimal.Decimal,
	deliveredQuantity decimal.Decimal,
	rawStatus string,
	sapArea kernel.Area,
) (*ManufacturingOrder, error) {
	o := &ManufacturingOrder{
		source:        kernel.SourceSystem,
		changedFields: make(map[string]struct{}),
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setDates(startDate, finishDate),
		o.setSapArea(sapArea),
	); err != nil {
		return nil, err
	}

	o.plant = plant
	o.material = material
	o.orderQuantity = orderQuantity
	o.deliveredQuantity = deliveredQuantity
	o.rawStatus = rawStatus
	o.currentArea = sapArea

	return o, nil
}

// RestoreManufacturingOrder rebuilds an order from persistence, including its
// placement state, change report, and version token.
func RestoreManufacturingOrder(
	id kernel.UUID,
	number string,
	plant string,
	material string,
	startDate string,
	finishDate string,
	orderQuantity decimal.Decimal,
	deliveredQuantity decimal.Decimal,
	rawStatus string,
	currentArea kernel.Area,
	sapArea kernel.Area,
	source kernel.PlacementSource,
	discrepancy bool,
	changedFields []string,
	hasChanges bool,
	version int,
) (*ManufacturingOrder, error) {
	o := &ManufacturingOrder{
		changedFields: make(map[string]struct{}),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setNumber(number),
		o.setDates(startDate, finishDate),
		o.setSapArea(sapArea),
		currentArea.Validate(),
		source.Validate(),
	); err != nil {
		return nil, err
	}

	if version < 1 {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"version",
			fmt.Errorf("%d is not a valid version", version),
		)
	}

	o.plant = plant
	o.material = material
	o.orderQuantity = orderQuantity
	o.deliveredQuantity = deliveredQuantity
	o.rawStatus = rawStatus
	o.currentArea = currentArea
	o.source = source
	o.discrepancy = discrepancy
	o.hasChanges = hasChanges
	o.version = version
	for _, field := range changedFields {
		o.changedFields[field] = struct{}{}
	}

	return o, nil
}

// Validate ensures the order was created through a factory function.
func (o *ManufacturingOrder) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *ManufacturingOrder) IsEqual(other *ManufacturingOrder) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the internal unique identifier.
func (o *ManufacturingOrder) ID() kernel.UUID {
	return o.id
}

// Number returns the external order number.
func (o *ManufacturingOrder) Number() string {
	return o.number
}

// Plant returns the producing plant code.
func (o *ManufacturingOrder) Plant() string {
	return o.plant
}

// Material returns the material number.
func (o *ManufacturingOrder) Material() string {
	return o.material
}

// StartDate returns the ISO basic start date, possibly empty.
func (o *ManufacturingOrder) StartDate() string {
	return o.startDate
}

// FinishDate returns the ISO basic finish date, possibly empty.
func (o *ManufacturingOrder) FinishDate() string {
	return o.finishDate
}

// OrderQuantity returns the ordered quantity.
func (o *ManufacturingOrder) OrderQuantity() decimal.Decimal {
	return o.orderQuantity
}

// DeliveredQuantity returns the delivered quantity.
func (o *ManufacturingOrder) DeliveredQuantity() decimal.Decimal {
	return o.deliveredQuantity
}

// RawStatus returns the space-separated upstream status token string.
func (o *ManufacturingOrder) RawStatus() string {
	return o.rawStatus
}

// CurrentArea returns the effective pipeline placement.
func (o *ManufacturingOrder) CurrentArea() kernel.Area {
	return o.currentArea
}

// SapArea returns the area last derived from the mapping table.
func (o *ManufacturingOrder) SapArea() kernel.Area {
	return o.sapArea
}

// Source returns how the current placement came about.
func (o *ManufacturingOrder) Source() kernel.PlacementSource {
	return o.source
}

// Discrepancy reports whether a manual placement diverges from the derived area.
func (o *ManufacturingOrder) Discrepancy() bool {
	return o.discrepancy
}

// HasChanges reports whether the last ingestion pass detected field changes.
func (o *ManufacturingOrder) HasChanges() bool {
	return o.hasChanges
}

// ChangedFields returns the names of the fields the last ingestion pass changed.
func (o *ManufacturingOrder) ChangedFields() []string {
	fields := make([]string, 0, len(o.changedFields))
	for field := range o.changedFields {
		fields = append(fields, field)
	}
	return fields
}

// FieldChanged reports whether the named field is part of the change report.
func (o *ManufacturingOrder) FieldChanged(name string) bool {
	_, ok := o.changedFields[name]
	return ok
}

// Version returns the optimistic concurrency token as loaded.
func (o *ManufacturingOrder) Version() int {
	return o.version
}

// ApplyMapping applies one assignment-pass step with the freshly derived area.
//
// System-tracked orders follow the derived area; manually placed orders keep
// their area and only refresh the derived reference and the discrepancy flag.
// The method is idempotent for an unchanged derived area.
func (o *ManufacturingOrder) ApplyMapping(sapArea kernel.Area) error {
	if err := sapArea.Validate(); err != nil {
		return err
	}

	o.sapArea = sapArea
	if o.source == kernel.SourceSystem {
		o.currentArea = sapArea
		o.discrepancy = false
		return nil
	}

	o.discrepancy = sapArea != o.currentArea
	return nil
}

// MoveTo places the order in the target area as an operator decision.
// The placement becomes manual and sticky; the freshly derived area is cached
// for discrepancy detection.
func (o *ManufacturingOrder) MoveTo(target kernel.Area, sapArea kernel.Area) error {
	if err := errors.Join(target.Validate(), sapArea.Validate()); err != nil {
		return err
	}

	o.currentArea = target
	o.source = kernel.SourceManual
	o.sapArea = sapArea
	o.discrepancy = sapArea != target
	return nil
}

// RefreshFromUpstream updates the business attributes from a new ingestion
// record while keeping the placement state untouched.
func (o *ManufacturingOrder) RefreshFromUpstream(
	plant string,
	material string,
	startDate string,
	finishDate string,
	orderQuantity decimal.Decimal,
	deliveredQuantity decimal.Decimal,
	rawStatus string,
) error {
	if err := o.setDates(startDate, finishDate); err != nil {
		return err
	}

	o.plant = plant
	o.material = material
	o.orderQuantity = orderQuantity
	o.deliveredQuantity = deliveredQuantity
	o.rawStatus = rawStatus
	return nil
}

// ReportChanges records the ingestion change report for this order.
// An empty report clears the flag.
func (o *ManufacturingOrder) ReportChanges(fields []string) {
	o.changedFields = make(map[string]struct{}, len(fields))
	for _, field := range fields {
		o.changedFields[field] = struct{}{}
	}
	o.hasChanges = len(o.changedFields) > 0
}

func (o *ManufacturingOrder) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

func (o *ManufacturingOrder) setNumber(number string) error {
	if number == "" {
		return errs.NewValueIsRequiredError("number")
	}
	o.number = number
	return nil
}

func (o *ManufacturingOrder) setDates(startDate, finishDate string) error {
	if err := validateDate("startDate", startDate); err != nil {
		return err
	}
	if err := validateDate("finishDate", finishDate); err != nil {
		return err
	}
	o.startDate = startDate
	o.finishDate = finishDate
	return nil
}

// validateDate accepts the empty string; a set date must be a real ISO day.
func validateDate(paramName, value string) error {
	if value == "" {
		return nil
	}
	if _, err := time.Parse(dateLayout, value); err != nil {
		return errs.NewValueIsInvalidErrorWithCause(paramName, err)
	}
	return nil
}

func (o *ManufacturingOrder) setSapArea(sapArea kernel.Area) error {
	if err := sapArea.Validate(); err != nil {
		return err
	}
	o.sapArea = sapArea
	return nil
}
