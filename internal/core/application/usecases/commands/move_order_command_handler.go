package commands

import (
	"context"
	"fmt"
	"strings"
	"time"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/domain/model/statusmap"
	"flowtrack/internal/core/ports"
	"flowtrack/internal/pkg/errs"
)

// minJustificationLength is the minimum trimmed length of a MoveBack justification.
const minJustificationLength = 5

// MoveOrderResponse describes the order's placement after a successful move.
type MoveOrderResponse struct {
	OrderID      kernel.UUID
	PreviousArea kernel.Area
	CurrentArea  kernel.Area
	Source       kernel.PlacementSource
	MovedAt      time.Time
	MovedBy      string
}

// MoveOrderCommandHandler executes operator-initiated area moves.
//
// The handler validates eligibility preconditions itself by querying the
// issue-tracker and production-status collaborators rather than trusting a
// caller-supplied advisory flag. The order mutation and its audit entry commit
// in one transaction; any failure leaves both untouched.
type MoveOrderCommandHandler struct {
	uowFactory MoveUoWFactory
	issues     ports.IssueTracker
	production ports.ProductionStatusProvider
}

// NewMoveOrderCommandHandler creates a handler for manual move operations.
func NewMoveOrderCommandHandler(
	uowFactory MoveUoWFactory,
	issues ports.IssueTracker,
	production ports.ProductionStatusProvider,
) MoveOrderCommandHandler {
	return MoveOrderCommandHandler{
		uowFactory: uowFactory,
		issues:     issues,
		production: production,
	}
}

// Handle processes the move command.
//
// Failure modes, all without mutation:
//   - the order is unknown (ObjectNotFoundError)
//   - the target equals the current area (ValueIsInvalidError)
//   - a backward move lacks a sufficient justification (ValueIsInvalidError)
//   - a forward-move precondition does not hold (PreconditionBlockedError)
func (h *MoveOrderCommandHandler) Handle(
	ctx context.Context,
	cmd MoveOrderCommand,
) (MoveOrderResponse, error) {
	if err := cmd.Validate(); err != nil {
		return MoveOrderResponse{}, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return MoveOrderResponse{}, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := uow.OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return MoveOrderResponse{}, err
	}

	from := aggregate.CurrentArea()
	target := cmd.TargetArea()

	if target == from {
		return MoveOrderResponse{}, errs.NewValueIsInvalidErrorWithCause(
			"targetArea",
			fmt.Errorf("order is already in %s", from),
		)
	}

	if from.IsDownstreamOf(target) {
		// MoveBack: the operator must explain the regression.
		if len(strings.TrimSpace(cmd.Justification())) < minJustificationLength {
			return MoveOrderResponse{}, errs.NewValueIsInvalidErrorWithCause(
				"justification",
				fmt.Errorf("a move back to %s requires a justification of at least %d characters",
					target, minJustificationLength),
			)
		}
	} else {
		if err = h.checkForwardPreconditions(ctx, aggregate.ID(), from); err != nil {
			return MoveOrderResponse{}, err
		}
	}

	mappings, err := uow.StatusMappingRepository().GetActive(ctx)
	if err != nil {
		return MoveOrderResponse{}, err
	}

	sapArea := statusmap.DeriveArea(aggregate.RawStatus(), mappings)
	if err = aggregate.MoveTo(target, sapArea); err != nil {
		return MoveOrderResponse{}, err
	}

	if err = uow.OrderRepository().Update(ctx, aggregate); err != nil {
		return MoveOrderResponse{}, err
	}

	movedAt := time.Now().UTC()
	entry := ports.MoveAuditEntry{
		ID:            kernel.NewUUID(),
		OrderID:       aggregate.ID(),
		FromArea:      from,
		ToArea:        target,
		Justification: strings.TrimSpace(cmd.Justification()),
		MovedAt:       movedAt,
		Actor:         cmd.Actor(),
	}
	if err = uow.MoveAuditRepository().Add(ctx, entry); err != nil {
		return MoveOrderResponse{}, err
	}

	if err = uow.Commit(ctx); err != nil {
		return MoveOrderResponse{}, err
	}

	return MoveOrderResponse{
		OrderID:      aggregate.ID(),
		PreviousArea: from,
		CurrentArea:  target,
		Source:       kernel.SourceManual,
		MovedAt:      movedAt,
		MovedBy:      cmd.Actor(),
	}, nil
}

// checkForwardPreconditions validates the area-specific eligibility rules for a
// forward move out of the given area by querying the collaborators directly.
func (h *MoveOrderCommandHandler) checkForwardPreconditions(
	ctx context.Context,
	orderID kernel.UUID,
	from kernel.Area,
) error {
	switch from {
	case kernel.AreaWarehouse:
		count, err := h.issues.OpenIssueCount(ctx, orderID)
		if err != nil {
			return err
		}
		if count > 0 {
			return errs.NewPreconditionBlockedError(
				"order",
				fmt.Sprintf("%d open issue(s) must be resolved before the order can leave Warehouse", count),
			)
		}
	case kernel.AreaProduction:
		status, err := h.production.Status(ctx, orderID)
		if err != nil {
			return err
		}
		if status != kernel.ProductionCompleted {
			return errs.NewPreconditionBlockedError(
				"order",
				fmt.Sprintf("production status is %s; it must be %s before the order can leave Production",
					status, kernel.ProductionCompleted),
			)
		}
	default:
		// Orders and Logistics carry no forward preconditions.
	}

	return nil
}
