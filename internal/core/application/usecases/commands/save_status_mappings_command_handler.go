package commands

import (
	"context"
)

// SaveStatusMappingsCommandHandler replaces the mapping table and reassigns all
// orders in the same transaction.
type SaveStatusMappingsCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewSaveStatusMappingsCommandHandler creates a handler for mapping table replacement.
func NewSaveStatusMappingsCommandHandler(uowFactory AssignmentUoWFactory) SaveStatusMappingsCommandHandler {
	return SaveStatusMappingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle replaces the table, then runs the assignment pass against the new
// active rows. Either both survive or neither does.
func (h *SaveStatusMappingsCommandHandler) Handle(ctx context.Context, cmd SaveStatusMappingsCommand) error {
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

	if err := uow.StatusMappingRepository().ReplaceAll(ctx, cmd.Mappings()); err != nil {
		return err
	}

	active, err := uow.StatusMappingRepository().GetActive(ctx)
	if err != nil {
		return err
	}

	if err = reassignOrders(ctx, uow.OrderRepository(), active); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
