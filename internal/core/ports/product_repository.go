package ports

import (
	"context"

	"pickpoint/internal/core/domain/model/product"
)

// ProductRepository defines read access to the product catalog.
type ProductRepository interface {
	// GetByNames resolves a composition array to products by exact name
	// match. Names with no matching product are silently dropped; duplicate
	// names resolve to a single product.
	GetByNames(ctx context.Context, names []string) ([]*product.Product, error)
}
