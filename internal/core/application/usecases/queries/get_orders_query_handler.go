package queries

import (
	"context"

	"flowtrack/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetOrdersQueryHandler retrieves order read models from the database.
// Uses direct SQL for read performance; the domain aggregate is not rebuilt.
type GetOrdersQueryHandler struct {
	db *gorm.DB
}

// NewGetOrdersQueryHandler creates a handler for order retrieval queries.
// Requires a GORM database connection for query execution.
func NewGetOrdersQueryHandler(db *gorm.DB) GetOrdersQueryHandler {
	return GetOrdersQueryHandler{db: db}
}

// Handle executes the query. Results are sorted by order number for consistent
// output.
func (h GetOrdersQueryHandler) Handle(
	ctx context.Context,
	query GetOrdersQuery,
) ([]GetOrdersQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	sql := `
		SELECT
			id,
			number,
			plant,
			material,
			start_date,
			finish_date,
			order_quantity,
			delivered_quantity,
			raw_status,
			current_area,
			sap_area,
			source,
			discrepancy,
			has_changes
		FROM orders
	`
	args := make([]any, 0, 1)
	if area, ok := query.Area(); ok {
		sql += ` WHERE current_area = ?`
		args = append(args, area.String())
	}
	sql += ` ORDER BY number`

	rows, err := h.db.WithContext(ctx).Raw(sql, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := make([]GetOrdersQueryResponse, 0)
	for rows.Next() {
		var resp GetOrdersQueryResponse
		var id uuid.UUID
		var currentArea, sapArea, source string

		err = rows.Scan(
			&id,
			&resp.Number,
			&resp.Plant,
			&resp.Material,
			&resp.StartDate,
			&resp.FinishDate,
			&resp.OrderQuantity,
			&resp.DeliveredQuantity,
			&resp.RawStatus,
			&currentArea,
			&sapArea,
			&source,
			&resp.Discrepancy,
			&resp.HasChanges,
		)
		if err != nil {
			return nil, err
		}

		orderID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		resp.ID = orderID

		if resp.CurrentArea, err = kernel.AreaFromString(currentArea); err != nil {
			return nil, err
		}
		if resp.SapArea, err = kernel.AreaFromString(sapArea); err != nil {
			return nil, err
		}
		if resp.Source, err = kernel.SourceFromString(source); err != nil {
			return nil, err
		}

		orders = append(orders, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}
