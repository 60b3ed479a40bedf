package kernel

import (
	"fmt"

	"flowtrack/internal/pkg/errs"
)

// PlacementSource records how an order came to occupy its current area:
// through automatic status-mapping placement or through an operator move.
//
// Manual placement is sticky: automatic reassignment passes refresh only the
// derived reference area and never overwrite a manually chosen one.
type PlacementSource int

const (
	// UnknownSource represents an invalid or undefined source.
	UnknownSource PlacementSource = iota

	// SourceSystem means the order area is continuously derived from the
	// status mapping table.
	SourceSystem

	// SourceManual means an operator explicitly placed the order; the derived
	// area is kept only as a reference for discrepancy detection.
	SourceManual
)

func getSourceStrings() map[PlacementSource]string {
	return map[PlacementSource]string{
		UnknownSource: "Unknown",
		SourceSystem:  "system",
		SourceManual:  "manual",
	}
}

// SourceFromString resolves a placement source by its persisted name.
func SourceFromString(s string) (PlacementSource, error) {
	switch s {
	case "system":
		return SourceSystem, nil
	case "manual":
		return SourceManual, nil
	default:
		return UnknownSource, errs.NewValueIsInvalidErrorWithCause(
			"source",
			fmt.Errorf("%q is not a valid placement source", s),
		)
	}
}

// Validate checks if the PlacementSource value is valid.
func (s PlacementSource) Validate() error {
	if s != SourceSystem && s != SourceManual {
		return errs.NewValueIsInvalidErrorWithCause(
			"source",
			fmt.Errorf("%d is not a valid placement source", s),
		)
	}
	return nil
}

// String returns the persisted name of the source, "Unknown" for invalid values.
func (s PlacementSource) String() string {
	if str, ok := getSourceStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
