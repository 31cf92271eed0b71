package ports

import (
	"context"

	"bakehouse/internal/core/domain/model/kernel"
	"bakehouse/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Provides methods for storing, retrieving, and querying orders by their
// delivery date, which is the axis all capacity accounting runs on.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate.
	// The order must exist in the repository and be valid.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetByDateRange retrieves all orders with a delivery date in
	// [from, to] inclusive, ordered by delivery date.
	GetByDateRange(ctx context.Context, from, to kernel.Date) ([]*order.Order, error)

	// SumActiveUnits returns the total item units booked on the given
	// delivery date across all non-cancelled orders. When excludeID is
	// non-nil that order's own units are left out of the tally, so a
	// revision is never counted against itself.
	SumActiveUnits(ctx context.Context, date kernel.Date, excludeID *kernel.UUID) (int, error)
}
