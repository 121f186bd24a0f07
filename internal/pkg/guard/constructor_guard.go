// Package guard provides the ConstructorGuard pattern used by domain objects
// to ensure they are only created through their designated constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error
// is provided and the guarded object was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard distinguishes objects created through their constructor
// from zero-value instances. Embed it in a value object or command and set it
// with NewConstructorGuard inside the constructor; the object's Validate
// method then rejects any zero-value instance.
//
// Example:
//
//	var ErrPhoneNotConstructed = errors.New("Phone must be created via NewPhone")
//
//	type Phone struct {
//	    value string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewPhone(value string) (Phone, error) {
//	    // ... validation ...
//	    return Phone{value: value, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (p Phone) Validate() error {
//	    return p.guard.Validate(ErrPhoneNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a properly constructed object. For a zero-value
// guard it returns validationError, or ErrDefaultConstructorGuard when
// validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
