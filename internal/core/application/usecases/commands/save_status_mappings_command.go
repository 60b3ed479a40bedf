package commands

import (
	"errors"

	"flowtrack/internal/core/domain/model/statusmap"
	"flowtrack/internal/pkg/guard"
)

var (
	ErrSaveStatusMappingsCommandIsNotConstructed = errors.New(
		"SaveStatusMappingsCommand must be created via NewSaveStatusMappingsCommand constructor",
	)
)

// SaveStatusMappingsCommand replaces the whole status mapping table.
// Saving and the subsequent reassignment of every order happen in one
// transaction, so placements can never lag behind the table.
//
// An empty mapping list is valid: resolution then derives the entry stage for
// every order.
type SaveStatusMappingsCommand struct { //nolint:recvcheck //using for validation
	mappings []statusmap.StatusMapping

	guard guard.ConstructorGuard
}

// NewSaveStatusMappingsCommand creates a command carrying the replacement rows.
// Every row must have been created through its constructor.
func NewSaveStatusMappingsCommand(mappings []statusmap.StatusMapping) (SaveStatusMappingsCommand, error) {
	for _, m := range mappings {
		if err := m.Validate(); err != nil {
			return SaveStatusMappingsCommand{}, err
		}
	}

	copied := make([]statusmap.StatusMapping, len(mappings))
	copy(copied, mappings)

	return SaveStatusMappingsCommand{
		mappings: copied,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrSaveStatusMappingsCommandIsNotConstructed if validation fails.
func (c SaveStatusMappingsCommand) Validate() error {
	return c.guard.Validate(ErrSaveStatusMappingsCommandIsNotConstructed)
}

// Mappings returns the replacement rows.
func (c SaveStatusMappingsCommand) Mappings() []statusmap.StatusMapping {
	return c.mappings
}
