package commands

import (
	"context"
)

// SetAreaModesCommandHandler persists area mode configuration changes.
type SetAreaModesCommandHandler struct {
	uowFactory ModeUoWFactory
}

// NewSetAreaModesCommandHandler creates a handler for mode configuration changes.
func NewSetAreaModesCommandHandler(uowFactory ModeUoWFactory) SetAreaModesCommandHandler {
	return SetAreaModesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle persists the new mode set.
func (h *SetAreaModesCommandHandler) Handle(ctx context.Context, cmd SetAreaModesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if err := uow.AreaModeRepository().Save(ctx, cmd.Modes()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
