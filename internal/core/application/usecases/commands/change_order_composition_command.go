package commands

import (
	"errors"

	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrChangeOrderCompositionCommandIsNotConstructed = errors.New(
		"ChangeOrderCompositionCommand must be created via NewChangeOrderCompositionCommand constructor",
	)
)

// ChangeOrderCompositionCommand represents a request to replace an order's
// product composition with a new target set and update its cost.
type ChangeOrderCompositionCommand struct { //nolint:recvcheck //using for validation
	number      int
	composition []string
	cost        decimal.Decimal

	guard guard.ConstructorGuard
}

// NewChangeOrderCompositionCommand creates a command to reconcile an order's
// composition. The composition length and cost sign are validated up front;
// unknown product names are not an error and are dropped during resolution.
func NewChangeOrderCompositionCommand(
	number int,
	composition []string,
	cost decimal.Decimal,
) (ChangeOrderCompositionCommand, error) {
	cmd := ChangeOrderCompositionCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setComposition(composition),
		cmd.setCost(cost),
	); err != nil {
		return ChangeOrderCompositionCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderCompositionCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderCompositionCommandIsNotConstructed)
}

// Number returns the number of the order to change.
func (c ChangeOrderCompositionCommand) Number() int {
	return c.number
}

// Composition returns the target product names.
func (c ChangeOrderCompositionCommand) Composition() []string {
	return c.composition
}

// Cost returns the new total cost.
func (c ChangeOrderCompositionCommand) Cost() decimal.Decimal {
	return c.cost
}

func (c *ChangeOrderCompositionCommand) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("order number")
	}
	c.number = number
	return nil
}

func (c *ChangeOrderCompositionCommand) setComposition(composition []string) error {
	if len(composition) > order.MaxComposition {
		return errs.NewValueIsOutOfRangeError("composition", len(composition), 0, order.MaxComposition)
	}
	c.composition = composition
	return nil
}

func (c *ChangeOrderCompositionCommand) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("cost")
	}
	c.cost = cost
	return nil
}
