// Package postautomat contains the Postautomat (parcel locker) entity.
// Postautomats are reference data owned outside the order service: orders
// reference them by their formatted number but never modify them.
package postautomat

import (
	"errors"

	"pickpoint/internal/core/domain/model/kernel"
	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"
)

var (
	// ErrPostautomatIsNotConstructed is returned when a Postautomat instance
	// was not created through the NewPostautomat factory method.
	ErrPostautomatIsNotConstructed = errors.New("Postautomat must be created via NewPostautomat constructor")
)

// Postautomat represents a physical parcel pickup terminal.
// Identified by a formatted XXXX-XXXX number; carries an address and an
// open/closed availability flag.
type Postautomat struct {
	number kernel.LockerNumber
	address string
	isOpen  bool

	guard guard.ConstructorGuard
}

// NewPostautomat creates a Postautomat with validation.
// The number must be a constructed LockerNumber and the address must be
// non-empty.
func NewPostautomat(number kernel.LockerNumber, address string, isOpen bool) (*Postautomat, error) {
	p := &Postautomat{
		isOpen: isOpen,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		p.setNumber(number),
		p.setAddress(address),
	); err != nil {
		return nil, err
	}

	return p, nil
}

// Validate ensures the Postautomat was created via NewPostautomat.
func (p *Postautomat) Validate() error {
	if p == nil {
		return ErrPostautomatIsNotConstructed
	}
	return p.guard.Validate(ErrPostautomatIsNotConstructed)
}

// Number returns the locker's formatted number.
func (p *Postautomat) Number() kernel.LockerNumber {
	return p.number
}

// Address returns the locker's street address.
func (p *Postautomat) Address() string {
	return p.address
}

// IsOpen reports whether the locker currently accepts deliveries.
func (p *Postautomat) IsOpen() bool {
	return p.isOpen
}

func (p *Postautomat) setNumber(number kernel.LockerNumber) error {
	if err := number.Validate(); err != nil {
		return err
	}
	p.number = number
	return nil
}

func (p *Postautomat) setAddress(address string) error {
	if address == "" {
		return errs.NewValueIsRequiredError("address")
	}
	p.address = address
	return nil
}
