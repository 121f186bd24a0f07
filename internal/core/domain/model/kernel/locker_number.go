package kernel

import (
	"regexp"

	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"
)

// LockerNumberLength is the exact length of a valid locker number:
// four digits, a dash, four digits.
const LockerNumberLength = 9

// ErrLockerNumberIsNotConstructed is returned when validating a zero-value
// LockerNumber. Locker numbers must be created via NewLockerNumber.
var ErrLockerNumberIsNotConstructed = errs.NewValueIsRequiredError(
	"locker number must be created via NewLockerNumber constructor")

// ErrLockerNumberIsInvalid is returned when a locker number does not match
// the XXXX-XXXX format.
var ErrLockerNumberIsInvalid = errs.NewValueIsInvalidError("locker number format: XXXX-XXXX")

// The pattern is prefix-anchored only; together with the exact length check
// it accepts the same set of values the original service accepted.
var lockerNumberPattern = regexp.MustCompile(`^[0-9]{4}-[0-9]{4}`)

// IsValidLockerNumber reports whether number is exactly LockerNumberLength
// characters long and starts with four digits, a dash, and four digits.
func IsValidLockerNumber(number string) bool {
	return len(number) == LockerNumberLength && lockerNumberPattern.MatchString(number)
}

// LockerNumber is an immutable value object identifying a postautomat by its
// formatted number. The zero value is invalid; use NewLockerNumber.
//
// Example:
//
//	number, err := kernel.NewLockerNumber("1111-1111")
//	if err != nil {
//	    // reject the request with the format hint
//	}
type LockerNumber struct { //nolint:recvcheck //using for validation
	value string

	guard guard.ConstructorGuard
}

// NewLockerNumber creates a LockerNumber from its string form.
// Returns ErrLockerNumberIsInvalid if the value does not match XXXX-XXXX.
func NewLockerNumber(value string) (LockerNumber, error) {
	if !IsValidLockerNumber(value) {
		return LockerNumber{}, ErrLockerNumberIsInvalid
	}

	return LockerNumber{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the LockerNumber was created via NewLockerNumber.
func (n LockerNumber) Validate() error {
	return n.guard.Validate(ErrLockerNumberIsNotConstructed)
}

// String returns the locker number in its wire form.
func (n LockerNumber) String() string {
	return n.value
}

// IsEqual compares two locker numbers by value.
func (n LockerNumber) IsEqual(other LockerNumber) bool {
	return n.value == other.value
}
