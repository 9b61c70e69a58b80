package ports

import (
	"context"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// The store owns identifier assignment and is the only shared mutable
// resource; single-row writes rely on its native atomicity.
type OrderRepository interface {
	// Add persists a new order and attaches the store-assigned id to the
	// aggregate. One durable write; a rejected order must not leave a
	// partial row behind.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order. Status and the archived
	// flag are written together so the completion auto-archive stays atomic.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order by its identifier.
	Get(ctx context.Context, id kernel.OrderID) (*order.Order, error)

	// GetActive retrieves all non-archived orders, unordered.
	GetActive(ctx context.Context) ([]*order.Order, error)

	// GetArchived retrieves all archived orders.
	GetArchived(ctx context.Context) ([]*order.Order, error)

	// GetActiveByTable retrieves a table's non-archived orders ordered by
	// order date descending, most recent first. The ordering is part of the
	// contract, not incidental.
	GetActiveByTable(ctx context.Context, tableID kernel.TableID) ([]*order.Order, error)

	// ArchiveCompleted archives every order that is Completed and not yet
	// archived, as a single statement, and returns how many rows changed.
	ArchiveCompleted(ctx context.Context) (int64, error)
}
