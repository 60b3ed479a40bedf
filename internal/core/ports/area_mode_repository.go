package ports

import (
	"context"

	"flowtrack/internal/core/domain/model/areamode"
)

// AreaModeRepository defines the persistence contract for the per-area
// placement mode configuration.
type AreaModeRepository interface {
	// Get retrieves the current mode set. Areas without a stored mode default
	// to AUTO; an empty store yields the all-AUTO default.
	Get(ctx context.Context) (areamode.ModeSet, error)

	// Save persists the mode set.
	Save(ctx context.Context, modes areamode.ModeSet) error
}
