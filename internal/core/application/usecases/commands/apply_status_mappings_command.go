package commands

import (
	"errors"

	"flowtrack/internal/pkg/guard"
)

var (
	ErrApplyStatusMappingsCommandIsNotConstructed = errors.New(
		"ApplyStatusMappingsCommand must be created via NewApplyStatusMappingsCommand constructor",
	)
)

// ApplyStatusMappingsCommand triggers one atomic assignment pass: every order's
// area is recomputed from the active status mapping table.
//
// Example:
//
//	cmd := NewApplyStatusMappingsCommand()
//	handler := NewApplyStatusMappingsCommandHandler(uowFactory)
//
//	// Run after mapping edits or periodically from a scheduler.
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    log.Printf("Assignment pass failed: %v", err)
//	}
type ApplyStatusMappingsCommand struct {
	guard guard.ConstructorGuard
}

// NewApplyStatusMappingsCommand creates a command to trigger an assignment pass.
// This is a parameterless command that processes all orders.
func NewApplyStatusMappingsCommand() ApplyStatusMappingsCommand {
	return ApplyStatusMappingsCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
// Returns ErrApplyStatusMappingsCommandIsNotConstructed if validation fails.
func (c *ApplyStatusMappingsCommand) Validate() error {
	return c.guard.Validate(ErrApplyStatusMappingsCommandIsNotConstructed)
}
