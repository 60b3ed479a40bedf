package queries

import (
	"context"

	"flowtrack/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetStatusMappingsQueryHandler retrieves the mapping table from the database.
type GetStatusMappingsQueryHandler struct {
	db *gorm.DB
}

// NewGetStatusMappingsQueryHandler creates a handler for mapping table queries.
func NewGetStatusMappingsQueryHandler(db *gorm.DB) GetStatusMappingsQueryHandler {
	return GetStatusMappingsQueryHandler{db: db}
}

// Handle executes the query. Rows come back in resolution order, highest
// sort order first.
func (h GetStatusMappingsQueryHandler) Handle(
	ctx context.Context,
	query GetStatusMappingsQuery,
) ([]GetStatusMappingsQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			status_value,
			area,
			label,
			sort_order,
			is_active
		FROM status_mappings
		ORDER BY sort_order DESC, status_value
	`).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	mappings := make([]GetStatusMappingsQueryResponse, 0)
	for rows.Next() {
		var resp GetStatusMappingsQueryResponse
		var area string

		err = rows.Scan(
			&resp.StatusValue,
			&area,
			&resp.Label,
			&resp.SortOrder,
			&resp.IsActive,
		)
		if err != nil {
			return nil, err
		}

		if resp.Area, err = kernel.AreaFromString(area); err != nil {
			return nil, err
		}

		mappings = append(mappings, resp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return mappings, nil
}
