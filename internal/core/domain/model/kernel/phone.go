package kernel

import (
	"regexp"

	"pickpoint/internal/pkg/errs"
	"pickpoint/internal/pkg/guard"
)

// PhoneLength is the exact length of a valid recipient phone number:
// the +7 prefix followed by ten digits.
const PhoneLength = 12

// ErrPhoneIsNotConstructed is returned when validating a zero-value Phone.
// Phones must be created via the NewPhone constructor.
var ErrPhoneIsNotConstructed = errs.NewValueIsRequiredError("phone must be created via NewPhone constructor")

// ErrPhoneIsInvalid is returned when a phone number does not match the
// +7XXXXXXXXXX format.
var ErrPhoneIsInvalid = errs.NewValueIsInvalidError("phone number format: +7XXXXXXXXXX")

var phonePattern = regexp.MustCompile(`^\+7[0-9]{10}`)

// IsValidPhone reports whether phone is non-empty, starts with +7 followed by
// ten digits, and is exactly PhoneLength characters long.
func IsValidPhone(phone string) bool {
	if phone == "" {
		return false
	}
	return phonePattern.MatchString(phone) && len(phone) == PhoneLength
}

// Phone is an immutable value object holding a validated recipient phone
// number. The zero value is invalid; use NewPhone.
//
// Example:
//
//	phone, err := kernel.NewPhone("+79991234567")
//	if err != nil {
//	    // reject the request with the format hint
//	}
type Phone struct { //nolint:recvcheck //using for validation
	value string

	guard guard.ConstructorGuard
}

// NewPhone creates a Phone from its string form.
// Returns ErrPhoneIsInvalid if the value does not match +7XXXXXXXXXX.
func NewPhone(value string) (Phone, error) {
	if !IsValidPhone(value) {
		return Phone{}, ErrPhoneIsInvalid
	}

	return Phone{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the Phone was created via NewPhone.
func (p Phone) Validate() error {
	return p.guard.Validate(ErrPhoneIsNotConstructed)
}

// String returns the phone number in its wire form.
func (p Phone) String() string {
	return p.value
}

// IsEqual compares two phone numbers by value.
func (p Phone) IsEqual(other Phone) bool {
	return p.value == other.value
}
