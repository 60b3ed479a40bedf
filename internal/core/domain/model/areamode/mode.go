// Package areamode models the per-area placement mode configuration.
//
// Warehouse, Production, and Logistics can each be governed automatically (the
// status mapping table continuously recomputes order placement) or manually
// (operators move orders explicitly). The Orders entry stage is always
// automatic and is deliberately not represented in the mode set.
package areamode

import (
	"errors"
	"fmt"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/pkg/errs"
	"flowtrack/internal/pkg/guard"
)

// ErrModeSetIsNotConstructed is returned when a ModeSet instance was not created
// through one of the factory functions.
var ErrModeSetIsNotConstructed = errors.New(
	"ModeSet must be created via NewModeSet, DefaultModeSet, or RestoreModeSet",
)

// Mode is the placement governance of a single area.
type Mode int

const (
	// UnknownMode represents an invalid or undefined mode.
	UnknownMode Mode = iota

	// ModeAuto means order placement in the area is recomputed from the status
	// mapping table.
	ModeAuto

	// ModeManual means operators place orders in the area explicitly.
	ModeManual
)

func getModeStrings() map[Mode]string {
	return map[Mode]string{
		UnknownMode: "Unknown",
		ModeAuto:    "AUTO",
		ModeManual:  "MANUAL",
	}
}

// ModeFromString resolves a persisted mode name.
func ModeFromString(s string) (Mode, error) {
	switch s {
	case "AUTO":
		return ModeAuto, nil
	case "MANUAL":
		return ModeManual, nil
	default:
		return UnknownMode, errs.NewValueIsInvalidErrorWithCause(
			"mode",
			fmt.Errorf("%q is not a valid mode", s),
		)
	}
}

// Validate checks if the Mode value is valid.
func (m Mode) Validate() error {
	if m != ModeAuto && m != ModeManual {
		return errs.NewValueIsInvalidErrorWithCause("mode", fmt.Errorf("%d is not a valid mode", m))
	}
	return nil
}

// String returns the persisted name of the mode, "Unknown" for invalid values.
func (m Mode) String() string {
	if str, ok := getModeStrings()[m]; ok {
		return str
	}
	return "Unknown"
}

// configurableAreas lists the areas that carry a mode. Orders is excluded: the
// entry stage is implicitly always AUTO.
func configurableAreas() []kernel.Area {
	return []kernel.Area{kernel.AreaWarehouse, kernel.AreaProduction, kernel.AreaLogistics}
}

// ModeSet is a value object holding the mode of every configurable area.
type ModeSet struct {
	modes map[kernel.Area]Mode

	guard guard.ConstructorGuard
}

// NewModeSet creates a mode set from an explicit area-to-mode map. The key set
// must be exactly {Warehouse, Production, Logistics} and every mode must be
// valid; no other validation is performed.
func NewModeSet(modes map[kernel.Area]Mode) (ModeSet, error) {
	if len(modes) != len(configurableAreas()) {
		return ModeSet{}, errs.NewValueIsInvalidErrorWithCause(
			"modes",
			fmt.Errorf("expected exactly %d areas, got %d", len(configurableAreas()), len(modes)),
		)
	}

	copied := make(map[kernel.Area]Mode, len(modes))
	for _, area := range configurableAreas() {
		mode, ok := modes[area]
		if !ok {
			return ModeSet{}, errs.NewValueIsInvalidErrorWithCause(
				"modes",
				fmt.Errorf("mode for area %s is missing", area),
			)
		}
		if err := mode.Validate(); err != nil {
			return ModeSet{}, err
		}
		copied[area] = mode
	}

	return ModeSet{modes: copied, guard: guard.NewConstructorGuard()}, nil
}

// DefaultModeSet returns the all-AUTO mode set used when nothing is configured.
func DefaultModeSet() ModeSet {
	modes := make(map[kernel.Area]Mode, len(configurableAreas()))
	for _, area := range configurableAreas() {
		modes[area] = ModeAuto
	}
	return ModeSet{modes: modes, guard: guard.NewConstructorGuard()}
}

// RestoreModeSet rebuilds a mode set from persistence. Missing areas default to
// AUTO; unknown areas and invalid modes are rejected.
func RestoreModeSet(stored map[kernel.Area]Mode) (ModeSet, error) {
	modes := make(map[kernel.Area]Mode, len(configurableAreas()))
	for _, area := range configurableAreas() {
		modes[area] = ModeAuto
	}

	for area, mode := range stored {
		if _, ok := modes[area]; !ok {
			return ModeSet{}, errs.NewValueIsInvalidErrorWithCause(
				"modes",
				fmt.Errorf("area %s does not carry a mode", area),
			)
		}
		if err := mode.Validate(); err != nil {
			return ModeSet{}, err
		}
		modes[area] = mode
	}

	return ModeSet{modes: modes, guard: guard.NewConstructorGuard()}, nil
}

// Validate ensures the mode set was created through a factory function.
func (s ModeSet) Validate() error {
	return s.guard.Validate(ErrModeSetIsNotConstructed)
}

// ModeOf returns the mode of the given area. The Orders entry stage and any
// unknown area report AUTO, matching the missing-key default.
func (s ModeSet) ModeOf(area kernel.Area) Mode {
	if mode, ok := s.modes[area]; ok {
		return mode
	}
	return ModeAuto
}

// All returns a copy of the area-to-mode map.
func (s ModeSet) All() map[kernel.Area]Mode {
	copied := make(map[kernel.Area]Mode, len(s.modes))
	for area, mode := range s.modes {
		copied[area] = mode
	}
	return copied
}
