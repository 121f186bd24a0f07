// Package product contains the Product reference entity.
// Products are catalog data: they are seeded out-of-band and are read-only
// from the order service's perspective. Orders reference products by name,
// which is the external-facing key of the catalog.
package product

import (
	"errors"

	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	// ErrProductIsNotConstructed is returned when a Product instance was not
	// created through the NewProduct factory method.
	ErrProductIsNotConstructed = errors.New("Product must be created via NewProduct constructor")
)

// Product represents a catalog item that can appear in an order composition.
// Identified by a positive numeric ID; the name is unique and is the key
// used in composition arrays.
type Product struct {
	id     int64
	name   string
	amount int
	cost   decimal.Decimal

	guard guard.ConstructorGuard
}

// NewProduct creates a Product with validation.
// ID must be positive, name must be non-empty, the quantity on hand and the
// unit cost must not be negative.
func NewProduct(id int64, name string, amount int, cost decimal.Decimal) (*Product, error) {
	p := &Product{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setID(id),
		p.setName(name),
		p.setAmount(amount),
		p.setCost(cost),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Product was created via NewProduct.
func (p *Product) Validate() error {
	if p == nil {
		return ErrProductIsNotConstructed
	}
	return p.guard.Validate(ErrProductIsNotConstructed)
}

// ID returns the product's numeric identifier.
func (p *Product) ID() int64 {
	return p.id
}

// Name returns the unique product name used as the composition key.
func (p *Product) Name() string {
	return p.name
}

// Amount returns the quantity on hand.
func (p *Product) Amount() int {
	return p.amount
}

// Cost returns the unit cost.
func (p *Product) Cost() decimal.Decimal {
	return p.cost
}

func (p *Product) setID(id int64) error {
	if id <= 0 {
		return errs.NewValueIsInvalidError("product id")
	}
	p.id = id
	return nil
}

func (p *Product) setName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("product name")
	}
	p.name = name
	return nil
}

func (p *Product) setAmount(amount int) error {
	if amount < 0 {
		return errs.NewValueIsInvalidError("product amount")
	}
	p.amount = amount
	return nil
}

func (p *Product) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("product cost")
	}
	p.cost = cost
	return nil
}
