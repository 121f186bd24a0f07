package commands

import (
	"errors"

	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"
)

var (
	ErrDeleteOrderCommandIsNotConstructed = errors.New(
		"DeleteOrderCommand must be created via NewDeleteOrderCommand constructor",
	)
)

// DeleteOrderCommand represents a request to remove an order together with
// all its line items.
type DeleteOrderCommand struct { //nolint:recvcheck //using for validation
	number int

	guard guard.ConstructorGuard
}

// NewDeleteOrderCommand creates a command to delete an order.
func NewDeleteOrderCommand(number int) (DeleteOrderCommand, error) {
	cmd := DeleteOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setNumber(number); err != nil {
		return DeleteOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}

// Number returns the number of the order to delete.
func (c DeleteOrderCommand) Number() int {
	return c.number
}

func (c *DeleteOrderCommand) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("order number")
	}
	c.number = number
	return nil
}
