package kernel

import (
	"fmt"

	"flowtrack/internal/pkg/errs"
)

// Area represents a pipeline stage a manufacturing order can occupy.
// Orders flow downstream through the stages in a fixed sequence:
//
//	Orders ──> Warehouse ──> Production ──> Logistics
//
// Area is a value object that validates stage values, resolves adjacency for
// manual moves, and provides string representations for persistence and display.
type Area int

const (
	// UnknownArea represents an invalid or undefined area.
	// This value (0) helps catch uninitialized Area values.
	UnknownArea Area = iota

	// AreaOrders is the entry stage. Orders with no recognizable status land here,
	// and the stage is always automatically governed.
	AreaOrders

	// AreaWarehouse is the material staging stage.
	AreaWarehouse

	// AreaProduction is the manufacturing stage.
	AreaProduction

	// AreaLogistics is the final shipping stage.
	AreaLogistics
)

// pipeline lists the areas in downstream order. Adjacency for NextStep/MoveBack
// transitions is derived from this sequence.
var pipeline = []Area{AreaOrders, AreaWarehouse, AreaProduction, AreaLogistics}

func getAreaStrings() map[Area]string {
	return map[Area]string{
		UnknownArea:    "Unknown",
		AreaOrders:     "Orders",
		AreaWarehouse:  "Warehouse",
		AreaProduction: "Production",
		AreaLogistics:  "Logistics",
	}
}

func getValidAreaStrings() map[Area]string {
	//nolint:exhaustive // UnknownArea is intentionally excluded as it's invalid
	return map[Area]string{
		AreaOrders:     "Orders",
		AreaWarehouse:  "Warehouse",
		AreaProduction: "Production",
		AreaLogistics:  "Logistics",
	}
}

// AreaFromString resolves an area by its persisted name.
// Returns an error for names that do not match a valid area.
func AreaFromString(s string) (Area, error) {
	for area, name := range getValidAreaStrings() {
		if name == s {
			return area, nil
		}
	}
	return UnknownArea, errs.NewValueIsInvalidErrorWithCause(
		"area",
		fmt.Errorf("%q is not a valid area", s),
	)
}

// Validate checks if the Area value is one of the four pipeline stages.
func (a Area) Validate() error {
	if _, ok := getValidAreaStrings()[a]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("area", fmt.Errorf("%d is not a valid area", a))
	}
	return nil
}

// String returns the human-readable name of the area, "Unknown" for invalid values.
func (a Area) String() string {
	if str, ok := getAreaStrings()[a]; ok {
		return str
	}
	return "Unknown"
}

// Next returns the adjacent downstream area.
// Returns an error for Logistics (no downstream stage) and invalid areas.
func (a Area) Next() (Area, error) {
	if err := a.Validate(); err != nil {
		return UnknownArea, err
	}
	for i, stage := range pipeline {
		if stage == a {
			if i == len(pipeline)-1 {
				return UnknownArea, errs.NewValueIsInvalidErrorWithCause(
					"area",
					fmt.Errorf("%s has no downstream area", a),
				)
			}
			return pipeline[i+1], nil
		}
	}
	return UnknownArea, errs.NewValueIsInvalidError("area")
}

// Prev returns the adjacent upstream area.
// Returns an error for Orders (no upstream stage) and invalid areas.
func (a Area) Prev() (Area, error) {
	if err := a.Validate(); err != nil {
		return UnknownArea, err
	}
	for i, stage := range pipeline {
		if stage == a {
			if i == 0 {
				return UnknownArea, errs.NewValueIsInvalidErrorWithCause(
					"area",
					fmt.Errorf("%s has no upstream area", a),
				)
			}
			return pipeline[i-1], nil
		}
	}
	return UnknownArea, errs.NewValueIsInvalidError("area")
}

// IsDownstreamOf reports whether a lies strictly downstream of other in the pipeline.
func (a Area) IsDownstreamOf(other Area) bool {
	return a.position() > other.position()
}

func (a Area) position() int {
	for i, stage := range pipeline {
		if stage == a {
			return i
		}
	}
	return -1
}
