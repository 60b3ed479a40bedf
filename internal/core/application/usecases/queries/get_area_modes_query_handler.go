package queries

import (
	"context"

	"flowtrack/internal/core/domain/model/areamode"
	"flowtrack/internal/core/domain/model/kernel"

	"gorm.io/gorm"
)

// GetAreaModesQueryHandler retrieves the mode configuration from the database.
type GetAreaModesQueryHandler struct {
	db *gorm.DB
}

// NewGetAreaModesQueryHandler creates a handler for mode configuration queries.
func NewGetAreaModesQueryHandler(db *gorm.DB) GetAreaModesQueryHandler {
	return GetAreaModesQueryHandler{db: db}
}

// Handle executes the query. Missing rows default to AUTO, so an empty table
// yields the all-AUTO configuration.
func (h GetAreaModesQueryHandler) Handle(
	ctx context.Context,
	query GetAreaModesQuery,
) (GetAreaModesQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAreaModesQueryResponse{}, err
	}

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			area,
			mode
		FROM area_modes
	`).Rows()
	if err != nil {
		return GetAreaModesQueryResponse{}, err
	}
	defer rows.Close()

	stored := make(map[kernel.Area]areamode.Mode)
	for rows.Next() {
		var areaName, modeName string
		if err = rows.Scan(&areaName, &modeName); err != nil {
			return GetAreaModesQueryResponse{}, err
		}

		area, areaErr := kernel.AreaFromString(areaName)
		if areaErr != nil {
			return GetAreaModesQueryResponse{}, areaErr
		}
		mode, modeErr := areamode.ModeFromString(modeName)
		if modeErr != nil {
			return GetAreaModesQueryResponse{}, modeErr
		}
		stored[area] = mode
	}

	if err = rows.Err(); err != nil {
		return GetAreaModesQueryResponse{}, err
	}

	modes, err := areamode.RestoreModeSet(stored)
	if err != nil {
		return GetAreaModesQueryResponse{}, err
	}

	return GetAreaModesQueryResponse{Modes: modes}, nil
}
