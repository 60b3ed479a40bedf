package commands

import (
	"errors"

	"flowtrack/internal/core/domain/model/areamode"
	"flowtrack/internal/pkg/guard"
)

var (
	ErrSetAreaModesCommandIsNotConstructed = errors.New(
		"SetAreaModesCommand must be created via NewSetAreaModesCommand constructor",
	)
)

// SetAreaModesCommand persists a new AUTO/MANUAL configuration for the
// configurable areas.
//
// Flipping an area back to AUTO does not clear manual placement on orders
// already moved by operators; they stay sticky until explicitly moved again.
type SetAreaModesCommand struct { //nolint:recvcheck //using for validation
	modes areamode.ModeSet

	guard guard.ConstructorGuard
}

// NewSetAreaModesCommand creates a command carrying the new mode set.
// The mode set must have been created through one of its factory functions,
// which guarantees the key set is exactly the three configurable areas.
func NewSetAreaModesCommand(modes areamode.ModeSet) (SetAreaModesCommand, error) {
	if err := modes.Validate(); err != nil {
		return SetAreaModesCommand{}, err
	}

	return SetAreaModesCommand{
		modes: modes,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSetAreaModesCommandIsNotConstructed if validation fails.
func (c SetAreaModesCommand) Validate() error {
	return c.guard.Validate(ErrSetAreaModesCommandIsNotConstructed)
}

// Modes returns the mode set to persist.
func (c SetAreaModesCommand) Modes() areamode.ModeSet {
	return c.modes
}
