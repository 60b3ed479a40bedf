package queries

import (
	"context"

	"flowtrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetMoveAuditQueryHandler retrieves the append-only move log of one order.
type GetMoveAuditQueryHandler struct {
	db *gorm.DB
}

// NewGetMoveAuditQueryHandler creates a handler for move history queries.
func NewGetMoveAuditQueryHandler(db *gorm.DB) GetMoveAuditQueryHandler {
	return GetMoveAuditQueryHandler{db: db}
}

// Handle executes the query. Entries come back newest first.
func (h GetMoveAuditQueryHandler) Handle(
	ctx context.Context,
	query GetMoveAuditQuery,
) ([]GetMoveAuditQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			order_id,
			from_area,
			to_area,
			justification,
			moved_at,
			actor
		FROM move_audit_entries
		WHERE order_id = ?
		ORDER BY moved_at DESC
	`, query.OrderID().Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	entries := make([]GetMoveAuditQueryResponse, 0)
	for rows.Next() {
		var resp GetMoveAuditQueryResponse
		var id, orderID uuid.UUID
		var fromArea, toArea string

		err = rows.Scan(
			&id,
			&orderID,
			&fromArea,
			&toArea,
			&resp.Justification,
			&resp.MovedAt,
			&resp.Actor,
		)
		if err != nil {
			return nil, err
		}

		if resp.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		if resp.OrderID, err = kernel.UUIDFromBytes(orderID[:]); err != nil {
			return nil, err
		}
		if resp.FromArea, err = kernel.AreaFromString(fromArea); err != nil {
			return nil, err
		}
		if resp.ToArea, err = kernel.AreaFromString(toArea); err != nil {
			return nil, err
		}

		entries = append(entries, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return entries, nil
}
