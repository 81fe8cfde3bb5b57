// Package ports defines the contracts between the ordering core and its adapters:
// persistence, notification delivery and the operator directory.
package ports

import (
	"context"

	"ordering/internal/core/domain/model/kernel"
	"ordering/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists the order only if the stored version still equals
	// aggregate.Version(), then bumps the version. It returns
	// errs.ConcurrentModificationError when another writer committed first and
	// errs.ObjectNotFoundError when the order is gone.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate with its items by its unique identifier.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)
}
