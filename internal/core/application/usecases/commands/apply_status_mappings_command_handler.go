package commands

import (
	"context"

	"flowtrack/internal/core/domain/model/statusmap"
	"flowtrack/internal/core/ports"
)

// ApplyStatusMappingsCommandHandler recomputes every order's placement from the
// active mapping table as one atomic pass.
//
// System-tracked orders follow the freshly derived area; manually placed orders
// keep their area and only get their derived reference and discrepancy flag
// refreshed. Re-running the pass with unchanged inputs yields an identical
// order snapshot.
type ApplyStatusMappingsCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewApplyStatusMappingsCommandHandler creates a handler for assignment passes.
func NewApplyStatusMappingsCommandHandler(uowFactory AssignmentUoWFactory) ApplyStatusMappingsCommandHandler {
	return ApplyStatusMappingsCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the assignment pass command. All updates occur within a
// single transaction; no caller observes a partially applied pass.
func (h *ApplyStatusMappingsCommandHandler) Handle(ctx context.Context, cmd ApplyStatusMappingsCommand) error {
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

	mappings, err := uow.StatusMappingRepository().GetActive(ctx)
	if err != nil {
		return err
	}

	if err = reassignOrders(ctx, uow.OrderRepository(), mappings); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// reassignOrders applies the mapping table to every order, persisting only the
// ones whose placement state actually changed. Shared with the mapping-table
// replacement handler so a table edit and its reassignment commit together.
func reassignOrders(
	ctx context.Context,
	orders ports.OrderRepository,
	mappings []statusmap.StatusMapping,
) error {
	all, err := orders.GetAll(ctx)
	if err != nil {
		return err
	}

	for _, aggregate := range all {
		beforeArea := aggregate.CurrentArea()
		beforeSap := aggregate.SapArea()
		beforeDiscrepancy := aggregate.Discrepancy()

		sapArea := statusmap.DeriveArea(aggregate.RawStatus(), mappings)
		if err = aggregate.ApplyMapping(sapArea); err != nil {
			return err
		}

		unchanged := aggregate.CurrentArea() == beforeArea &&
			aggregate.SapArea() == beforeSap &&
			aggregate.Discrepancy() == beforeDiscrepancy
		if unchanged {
			continue
		}

		if err = orders.Update(ctx, aggregate); err != nil {
			return err
		}
	}

	return nil
}
