package commands

import (
	"errors"

	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"
)

var (
	ErrChangeOrderStatusCommandIsNotConstructed = errors.New(
		"ChangeOrderStatusCommand must be created via NewChangeOrderStatusCommand constructor",
	)
)

// ChangeOrderStatusCommand represents a request to move an order to a new
// delivery status. The status is carried as a raw identifier and resolved
// against the reference table by the handler.
type ChangeOrderStatusCommand struct { //nolint:recvcheck //using for validation
	number   int
	statusID int

	guard guard.ConstructorGuard
}

// NewChangeOrderStatusCommand creates a command to change an order's status.
func NewChangeOrderStatusCommand(number int, statusID int) (ChangeOrderStatusCommand, error) {
	cmd := ChangeOrderStatusCommand{
		statusID: statusID,
		guard:    guard.NewConstructorGuard(),
	}

	if err := cmd.setNumber(number); err != nil {
		return ChangeOrderStatusCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c ChangeOrderStatusCommand) Validate() error {
	return c.guard.Validate(ErrChangeOrderStatusCommandIsNotConstructed)
}

// Number returns the number of the order to change.
func (c ChangeOrderStatusCommand) Number() int {
	return c.number
}

// StatusID returns the raw target status identifier.
func (c ChangeOrderStatusCommand) StatusID() int {
	return c.statusID
}

func (c *ChangeOrderStatusCommand) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("order number")
	}
	c.number = number
	return nil
}
