package ports

import (
	"context"
	"errors"

	"pickpoint/internal/core/domain/model/order"
)

// ErrNothingSaved is returned by write operations when the store reports
// zero rows affected for a write that was expected to affect rows.
var ErrNothingSaved = errors.New("no rows affected")

// OrderRepository defines the persistence contract for order aggregates.
// Orders are stored together with their line items; all multi-row mutations
// happen inside the transaction of the owning unit of work.
type OrderRepository interface {
	// Add persists a new order aggregate together with all its line items.
	// The order must be valid and not already exist in the repository.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate, reconciling
	// the stored line items with the aggregate's current composition.
	// Returns ErrNothingSaved if the order row no longer exists.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order and, by cascade, all its line items.
	// Returns ErrNothingSaved if the order row no longer exists.
	Delete(ctx context.Context, number int) error

	// GetByNumber retrieves an order with its line items resolved to product
	// names. Returns errs.ObjectNotFoundError if the order is absent.
	GetByNumber(ctx context.Context, number int) (*order.Order, error)

	// Exists reports whether an order with the given number is stored.
	Exists(ctx context.Context, number int) (bool, error)
}
