package ports

import (
	"context"

	"flowtrack/internal/core/domain/model/kernel"
	"flowtrack/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for manufacturing order
// aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	Add(ctx context.Context, aggregate *order.ManufacturingOrder) error

	// Update persists changes to an existing order aggregate. The stored
	// version must match the aggregate's loaded version; on success the stored
	// version is incremented. A mismatch fails with a version error and
	// signals a lost update between concurrent writers.
	Update(ctx context.Context, aggregate *order.ManufacturingOrder) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.ManufacturingOrder, error)

	// GetByNumber retrieves an order aggregate by its external order number.
	GetByNumber(ctx context.Context, number string) (*order.ManufacturingOrder, error)

	// GetAll retrieves every order. Assignment passes and the classifier
	// operate on the full set.
	GetAll(ctx context.Context) ([]*order.ManufacturingOrder, error)
}
