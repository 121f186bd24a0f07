package commands

import (
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/order"
	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to register a new order for locker
// delivery. Carries everything the original service accepted in the order
// body: number, status, product composition, cost, target locker, recipient
// phone and name.
//
// Example:
//
//	phone, _ := kernel.NewPhone("+79991234567")
//	locker, _ := kernel.NewLockerNumber("1111-1111")
//	cmd, err := NewCreateOrderCommand(42, 1, []string{"prod1"}, cost, locker, phone, "Ivan Petrov")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	number      int
	statusID    int
	composition []string
	cost        decimal.Decimal
	postautomat kernel.LockerNumber
	phone       kernel.Phone
	recipient   string

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates the order number, the composition length, the cost sign, and
// that the phone and locker number were properly constructed. The status is
// carried as a raw identifier and resolved against the reference table by
// the handler, so an unknown status fails with "status not found" rather
// than a range error.
func NewCreateOrderCommand(
	number int,
	statusID int,
	composition []string,
	cost decimal.Decimal,
	postautomat kernel.LockerNumber,
	phone kernel.Phone,
	recipient string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{
		statusID: statusID,
		guard:    guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setNumber(number),
		cmd.setComposition(composition),
		cmd.setCost(cost),
		cmd.setPostautomat(postautomat),
		cmd.setPhone(phone),
		cmd.setRecipient(recipient),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// Number returns the order number to register.
func (c CreateOrderCommand) Number() int {
	return c.number
}

// StatusID returns the raw status identifier from the request.
func (c CreateOrderCommand) StatusID() int {
	return c.statusID
}

// Composition returns the product names of the requested composition.
func (c CreateOrderCommand) Composition() []string {
	return c.composition
}

// Cost returns the order's total cost.
func (c CreateOrderCommand) Cost() decimal.Decimal {
	return c.cost
}

// Postautomat returns the number of the target locker.
func (c CreateOrderCommand) Postautomat() kernel.LockerNumber {
	return c.postautomat
}

// Phone returns the recipient's phone number.
func (c CreateOrderCommand) Phone() kernel.Phone {
	return c.phone
}

// Recipient returns the recipient's name.
func (c CreateOrderCommand) Recipient() string {
	return c.recipient
}

func (c *CreateOrderCommand) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("order number")
	}
	c.number = number
	return nil
}

func (c *CreateOrderCommand) setComposition(composition []string) error {
	if len(composition) > order.MaxComposition {
		return errs.NewValueIsOutOfRangeError("composition", len(composition), 0, order.MaxComposition)
	}
	c.composition = composition
	return nil
}

func (c *CreateOrderCommand) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("cost")
	}
	c.cost = cost
	return nil
}

func (c *CreateOrderCommand) setPostautomat(number kernel.LockerNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	c.postautomat = number
	return nil
}

func (c *CreateOrderCommand) setPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	c.phone = phone
	return nil
}

func (c *CreateOrderCommand) setRecipient(recipient string) error {
	if recipient == "" {
		return errs.NewValueIsRequiredError("recipient")
	}
	c.recipient = recipient
	return nil
}
