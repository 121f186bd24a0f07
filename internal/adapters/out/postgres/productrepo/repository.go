package productrepo

import (
	"context"

	"pickpoint/internal/core/domain/model/product"

	"gorm.io/gorm"
)

// GormProductRepository implements ports.ProductRepository using GORM.
type GormProductRepository struct {
	db *gorm.DB
}

// NewGormProductRepository creates a new GORM catalog repository.
func NewGormProductRepository(db *gorm.DB) *GormProductRepository {
	return &GormProductRepository{db: db}
}

// GetByNames resolves composition names to catalog products. Unknown names
// are dropped, duplicates collapse to a single row; results are sorted by
// name for deterministic item ordering.
func (r *GormProductRepository) GetByNames(
	ctx context.Context, names []string,
) ([]*product.Product, error) {
	if len(names) == 0 {
		return []*product.Product{}, nil
	}

	var dtos []ProductDTO
	if err := r.db.WithContext(ctx).
		Where("name IN ?", names).
		Order("name").
		Find(&dtos).Error; err != nil {
		return nil, err
	}

	products := make([]*product.Product, 0, len(dtos))
	for _, dto := range dtos {
		p, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		products = append(products, p)
	}

	return products, nil
}
