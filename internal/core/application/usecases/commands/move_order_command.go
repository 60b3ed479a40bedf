package commands

import (
	"errors"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/pkg/errs"
	"flowtrack/internal/pkg/guard"
)

var (
	ErrMoveOrderCommandIsNotConstructed = errors.New(
		"MoveOrderCommand must be created via NewMoveOrderCommand constructor",
	)
)

// MoveOrderCommand represents an operator's request to place an order in a
// different pipeline area.
//
// A forward move (towards Logistics) is a NextStep and needs no justification.
// A backward move (towards Orders) is a MoveBack and requires a justification
// of at least five characters after trimming; the direction is resolved by the
// handler against the order's current area.
//
// Example:
//
//	cmd, err := NewMoveOrderCommand(orderID, kernel.AreaProduction, "", "j.smith")
//	if err != nil {
//	    return fmt.Errorf("invalid move request: %w", err)
//	}
//	response, err := handler.Handle(ctx, cmd)
type MoveOrderCommand struct { //nolint:recvcheck //using for validation
	orderID       kernel.UUID
	targetArea    kernel.Area
	justification string
	actor         string

	guard guard.ConstructorGuard
}

// NewMoveOrderCommand creates a command to move an order to the target area.
// Validates that the order ID and target area are valid and the actor is not
// empty. Justification length is checked by the handler because only the
// order's current area determines whether the move is backward.
func NewMoveOrderCommand(
	orderID kernel.UUID,
	targetArea kernel.Area,
	justification string,
	actor string,
) (MoveOrderCommand, error) {
	cmd := MoveOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setOrderID(orderID),
		cmd.setTargetArea(targetArea),
		cmd.setActor(actor),
	); err != nil {
		return MoveOrderCommand{}, err
	}

	cmd.justification = justification
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrMoveOrderCommandIsNotConstructed if validation fails.
func (c MoveOrderCommand) Validate() error {
	return c.guard.Validate(ErrMoveOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to move.
func (c MoveOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// TargetArea returns the area the operator wants the order placed in.
func (c MoveOrderCommand) TargetArea() kernel.Area {
	return c.targetArea
}

// Justification returns the operator's reason for the move, possibly empty.
func (c MoveOrderCommand) Justification() string {
	return c.justification
}

// Actor returns the operator performing the move.
func (c MoveOrderCommand) Actor() string {
	return c.actor
}

func (c *MoveOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	c.orderID = orderID
	return nil
}

func (c *MoveOrderCommand) setTargetArea(targetArea kernel.Area) error {
	if err := targetArea.Validate(); err != nil {
		return err
	}
	c.targetArea = targetArea
	return nil
}

func (c *MoveOrderCommand) setActor(actor string) error {
	if actor == "" {
		return errs.NewValueIsRequiredError("actor")
	}
	c.actor = actor
	return nil
}
