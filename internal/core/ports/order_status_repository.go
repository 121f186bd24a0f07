package ports

import (
	"context"

	"pickpoint/internal/core/domain/model/order"
)

// OrderStatusRepository defines read access to the order-status reference
// table. The table holds the six fixed states; lookups exist so that status
// changes can be validated against the store, matching the original service.
type OrderStatusRepository interface {
	// GetByID retrieves a status by its numeric identifier.
	// Returns errs.ObjectNotFoundError if the status is absent.
	GetByID(ctx context.Context, id int) (order.Status, error)
}
