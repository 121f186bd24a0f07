package queries

import (
	"errors"

	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order by its number.
//
// Example:
//
//	query, err := NewGetOrderQuery(42)
//	if err != nil {
//	    return err
//	}
//
//	handler := NewGetOrderQueryHandler(db)
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//
//	fmt.Printf("Order %d for %s, %d products\n", resp.Number, resp.Recipient, len(resp.Composition))
type GetOrderQuery struct {
	number int

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order.
func NewGetOrderQuery(number int) (GetOrderQuery, error) {
	if number <= 0 {
		return GetOrderQuery{}, errs.NewValueIsInvalidError("order number")
	}

	return GetOrderQuery{
		number: number,
		guard:  guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// Number returns the requested order number.
func (q GetOrderQuery) Number() int {
	return q.number
}

// GetOrderQueryResponse is the read model for a stored order. Composition
// holds the product names of the order's line items sorted alphabetically.
type GetOrderQueryResponse struct {
	Number      int
	Status      int
	Composition []string
	Cost        decimal.Decimal
	Postautomat string
	Phone       string
	Recipient   string
}
