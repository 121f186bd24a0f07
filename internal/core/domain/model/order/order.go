package order

import (
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/core/domain/model/product"
	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

// MaxComposition is the maximum number of line items an order may carry.
const MaxComposition = 10

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created
	// through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a line item linking the order to one catalog product.
// Items are value objects identified by their product: an order never holds
// two items for the same product.
type Item struct { //nolint:recvcheck //using for validation
	productID   int64
	productName string

	guard guard.ConstructorGuard
}

// NewItem creates a line item for the given product identity.
func NewItem(productID int64, productName string) (Item, error) {
	if productID <= 0 {
		return Item{}, errs.NewValueIsInvalidError("product id")
	}
	if productName == "" {
		return Item{}, errs.NewValueIsRequiredError("product name")
	}

	return Item{
		productID:   productID,
		productName: productName,
		guard:       guard.NewConstructorGuard(),
	}, nil
}

// NewItemFromProduct creates a line item referencing the given product.
func NewItemFromProduct(p *product.Product) (Item, error) {
	if err := p.Validate(); err != nil {
		return Item{}, err
	}
	return NewItem(p.ID(), p.Name())
}

// Validate ensures the Item was created via NewItem.
func (i Item) Validate() error {
	return i.guard.Validate(ErrItemIsNotConstructed)
}

// ProductID returns the identifier of the referenced product.
func (i Item) ProductID() int64 {
	return i.productID
}

// ProductName returns the name of the referenced product, the key used in
// composition arrays.
func (i Item) ProductName() string {
	return i.productName
}

// Order is the aggregate root of the order lifecycle.
//
// Order maintains these invariants:
//   - Number is a positive integer, unique within the store
//   - Status is one of the six known states
//   - Cost is never negative
//   - Recipient phone matches +7XXXXXXXXXX
//   - Postautomat number matches XXXX-XXXX
//   - At most MaxComposition line items, one per product
//
// Line items live and die with the order: they are created through the
// aggregate and removed when the order is deleted.
type Order struct {
	number         int
	status         Status
	cost           decimal.Decimal
	recipientName  string
	recipientPhone kernel.Phone
	postautomat    kernel.LockerNumber
	items          []Item

	isConstructed bool
}

// NewOrder creates a new Order instance with validation. This is the only way
// to create a valid Order, ensuring all invariants listed on the type hold.
//
// Example:
//
//	phone, _ := kernel.NewPhone("+79991234567")
//	locker, _ := kernel.NewLockerNumber("1111-1111")
//	o, err := order.NewOrder(42, order.Registered, cost, "J. Doe", phone, locker, items)
//	if err != nil {
//	    // handle validation error
//	}
func NewOrder(
	number int,
	status Status,
	cost decimal.Decimal,
	recipientName string,
	recipientPhone kernel.Phone,
	postautomat kernel.LockerNumber,
	items []Item,
) (*Order, error) {
	o := &Order{
		isConstructed: true,
	}

	if err := errors.Join(
		o.setNumber(number),
		o.setStatus(status),
		o.setCost(cost),
		o.setRecipientName(recipientName),
		o.setRecipientPhone(recipientPhone),
		o.setPostautomat(postautomat),
		o.setItems(items),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an Order from persistence.
// Applies the same validation as NewOrder to reject corrupted rows.
func RestoreOrder(
	number int,
	status Status,
	cost decimal.Decimal,
	recipientName string,
	recipientPhone kernel.Phone,
	postautomat kernel.LockerNumber,
	items []Item,
) (*Order, error) {
	return NewOrder(number, status, cost, recipientName, recipientPhone, postautomat, items)
}

// Validate ensures the Order instance was properly constructed through
// NewOrder or RestoreOrder.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their numbers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.number == other.number
}

// Number returns the order's unique number.
func (o *Order) Number() int {
	return o.number
}

// Status returns the current delivery status.
func (o *Order) Status() Status {
	return o.status
}

// Cost returns the order's total cost.
func (o *Order) Cost() decimal.Decimal {
	return o.cost
}

// RecipientName returns the recipient's name.
func (o *Order) RecipientName() string {
	return o.recipientName
}

// RecipientPhone returns the recipient's phone number.
func (o *Order) RecipientPhone() kernel.Phone {
	return o.recipientPhone
}

// Postautomat returns the number of the locker assigned to the order.
func (o *Order) Postautomat() kernel.LockerNumber {
	return o.postautomat
}

// Items returns a copy of the order's line items.
func (o *Order) Items() []Item {
	items := make([]Item, len(o.items))
	copy(items, o.items)
	return items
}

// Composition returns the product names of the order's line items.
func (o *Order) Composition() []string {
	names := make([]string, len(o.items))
	for i, item := range o.items {
		names[i] = item.ProductName()
	}
	return names
}

// ChangeStatus moves the order to the given status.
// Any known status may be set; only unknown values are rejected.
func (o *Order) ChangeStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}

	o.status = status
	return nil
}

// ChangeComposition reconciles the order's line items against a new target
// set of products and updates the cost.
//
// The reconciliation is a set difference by product identity, not a
// positional diff: items whose product is absent from the new set are
// removed, products absent from the current items are appended as fresh
// items, and items present in both are left untouched. Duplicate products in
// the input collapse to a single line item.
func (o *Order) ChangeComposition(products []*product.Product, cost decimal.Decimal) error {
	targetSet := make(map[int64]*product.Product, len(products))
	for _, p := range products {
		if err := p.Validate(); err != nil {
			return err
		}
		targetSet[p.ID()] = p
	}

	kept := make([]Item, 0, len(targetSet))
	current := make(map[int64]struct{}, len(o.items))
	for _, item := range o.items {
		current[item.ProductID()] = struct{}{}
		if _, ok := targetSet[item.ProductID()]; ok {
			kept = append(kept, item)
		}
	}

	for _, p := range products {
		if _, ok := current[p.ID()]; ok {
			continue
		}
		// Duplicates in the input resolve to the same product; skip the
		// ones already appended.
		appended := false
		for _, item := range kept {
			if item.ProductID() == p.ID() {
				appended = true
				break
			}
		}
		if appended {
			continue
		}

		item, err := NewItemFromProduct(p)
		if err != nil {
			return err
		}
		kept = append(kept, item)
	}

	// Validate before assigning so a rejected reconciliation leaves the
	// aggregate untouched.
	if len(kept) > MaxComposition {
		return errs.NewValueIsOutOfRangeError("composition", len(kept), 0, MaxComposition)
	}
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("cost")
	}

	o.items = kept
	o.cost = cost
	return nil
}

func (o *Order) setNumber(number int) error {
	if number <= 0 {
		return errs.NewValueIsInvalidError("order number")
	}
	o.number = number
	return nil
}

func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

func (o *Order) setCost(cost decimal.Decimal) error {
	if cost.IsNegative() {
		return errs.NewValueIsInvalidError("cost")
	}
	o.cost = cost
	return nil
}

func (o *Order) setRecipientName(name string) error {
	if name == "" {
		return errs.NewValueIsRequiredError("recipient name")
	}
	o.recipientName = name
	return nil
}

func (o *Order) setRecipientPhone(phone kernel.Phone) error {
	if err := phone.Validate(); err != nil {
		return err
	}
	o.recipientPhone = phone
	return nil
}

func (o *Order) setPostautomat(number kernel.LockerNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	o.postautomat = number
	return nil
}

func (o *Order) setItems(items []Item) error {
	if len(items) > MaxComposition {
		return errs.NewValueIsOutOfRangeError("composition", len(items), 0, MaxComposition)
	}

	seen := make(map[int64]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.ProductID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("composition",
				errors.New("duplicate product in composition"))
		}
		seen[item.ProductID()] = struct{}{}
	}

	o.items = items
	return nil
}
