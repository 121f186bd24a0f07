// Package productrepo provides read access to the product catalog.
package productrepo

import (
	"pickpoint/internal/core/domain/model/product"

	"github.com/shopspring/decimal"
)

// ProductDTO represents the database structure for catalog rows. Identifiers
// come from the catalog feed, not a sequence; names are unique so that
// composition arrays resolve unambiguously.
type ProductDTO struct {
	ID     int64  `gorm:"primaryKey;autoIncrement:false"`
	Name   string `gorm:"type:varchar(100);uniqueIndex"`
	Amount int
	Cost   decimal.Decimal `gorm:"type:numeric(12,2)"`
}

// TableName specifies the database table name for catalog entities.
func (ProductDTO) TableName() string {
	return "products"
}

// FromDomain converts a product entity to its database representation.
// Exported for test fixtures; production code never writes the catalog.
func FromDomain(p *product.Product) ProductDTO {
	return ProductDTO{
		ID:     p.ID(),
		Name:   p.Name(),
		Amount: p.Amount(),
		Cost:   p.Cost(),
	}
}

func toDomain(dto ProductDTO) (*product.Product, error) {
	return product.NewProduct(dto.ID, dto.Name, dto.Amount, dto.Cost)
}
