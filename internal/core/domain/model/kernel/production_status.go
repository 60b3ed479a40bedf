package kernel

import (
	"fmt"

	"flowtrack/internal/pkg/errs"
)

// ProductionStatus is the per-order state reported by the production-status
// collaborator. It gates the forward move out of the Production area.
type ProductionStatus int

const (
	// UnknownProductionStatus represents an invalid or undefined status.
	UnknownProductionStatus ProductionStatus = iota

	// ProductionPending means work has not started.
	ProductionPending

	// ProductionInProgress means work is under way.
	ProductionInProgress

	// ProductionCompleted means work is finished; only then may the order
	// move forward out of Production.
	ProductionCompleted
)

func getProductionStatusStrings() map[ProductionStatus]string {
	return map[ProductionStatus]string{
		UnknownProductionStatus: "Unknown",
		ProductionPending:       "PENDING",
		ProductionInProgress:    "IN_PROGRESS",
		ProductionCompleted:     "COMPLETED",
	}
}

// ProductionStatusFromString resolves a collaborator-reported status by name.
func ProductionStatusFromString(s string) (ProductionStatus, error) {
	for status, name := range getProductionStatusStrings() {
		if status != UnknownProductionStatus && name == s {
			return status, nil
		}
	}
	return UnknownProductionStatus, errs.NewValueIsInvalidErrorWithCause(
		"production status",
		fmt.Errorf("%q is not a valid production status", s),
	)
}

// Validate checks if the ProductionStatus value is valid.
func (s ProductionStatus) Validate() error {
	switch s {
	case ProductionPending, ProductionInProgress, ProductionCompleted:
		return nil
	default:
		return errs.NewValueIsInvalidErrorWithCause(
			"production status",
			fmt.Errorf("%d is not a valid production status", s),
		)
	}
}

// String returns the collaborator wire name of the status, "Unknown" for invalid values.
func (s ProductionStatus) String() string {
	if str, ok := getProductionStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
