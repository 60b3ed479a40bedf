package commands

import (
	"context"
	"errors"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/domain/model/order"
	"flowtrack/internal/core/domain/model/statusmap"
	"flowtrack/internal/pkg/errs"
)

// IngestOrdersCommandHandler upserts upstream order records as one transaction.
type IngestOrdersCommandHandler struct {
	uowFactory AssignmentUoWFactory
}

// NewIngestOrdersCommandHandler creates a handler for upstream order ingestion.
func NewIngestOrdersCommandHandler(uowFactory AssignmentUoWFactory) IngestOrdersCommandHandler {
	return IngestOrdersCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle upserts every record. The whole batch commits or none of it does.
func (h *IngestOrdersCommandHandler) Handle(ctx context.Context, cmd IngestOrdersCommand) error {
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

	for _, record := range cmd.Records() {
		if err = h.upsertRecord(ctx, uow, record, mappings); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

func (h *IngestOrdersCommandHandler) upsertRecord(
	ctx context.Context,
	uow AssignmentUoW,
	record OrderIngestRecord,
	mappings []statusmap.StatusMapping,
) error {
	sapArea := statusmap.DeriveArea(record.RawStatus, mappings)

	existing, err := uow.OrderRepository().GetByNumber(ctx, record.Number)
	switch {
	case err == nil:
		if err = existing.RefreshFromUpstream(
			record.Plant,
			record.Material,
			record.StartDate,
			record.FinishDate,
			record.OrderQuantity,
			record.DeliveredQuantity,
			record.RawStatus,
		); err != nil {
			return err
		}
		existing.ReportChanges(record.ChangedFields)
		if err = existing.ApplyMapping(sapArea); err != nil {
			return err
		}
		return uow.OrderRepository().Update(ctx, existing)

	case errors.Is(err, errs.ErrObjectNotFound):
		aggregate, newErr := order.NewManufacturingOrder(
			kernel.NewUUID(),
			record.Number,
			record.Plant,
			record.Material,
			record.StartDate,
			record.FinishDate,
			record.OrderQuantity,
			record.DeliveredQuantity,
			record.RawStatus,
			sapArea,
		)
		if newErr != nil {
			return newErr
		}
		aggregate.ReportChanges(record.ChangedFields)
		return uow.OrderRepository().Add(ctx, aggregate)

	default:
		return err
	}
}
