package ports

import (
	"context"

	"flowtrack/internal/core/domain/model/statusmap"
)

// StatusMappingRepository defines the persistence contract for the status
// mapping table.
type StatusMappingRepository interface {
	// GetActive retrieves the active mapping rows ordered by sort order.
	GetActive(ctx context.Context) ([]statusmap.StatusMapping, error)

	// GetAll retrieves every mapping row, active or not.
	GetAll(ctx context.Context) ([]statusmap.StatusMapping, error)

	// ReplaceAll atomically replaces the whole mapping table with the given rows.
	ReplaceAll(ctx context.Context, mappings []statusmap.StatusMapping) error
}
