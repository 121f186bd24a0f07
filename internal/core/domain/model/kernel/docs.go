// Package kernel contains shared value objects of the pickpoint domain.
//
// The package provides the primitives every aggregate builds on:
//   - Phone: a recipient phone number in the +7XXXXXXXXXX format
//   - LockerNumber: a parcel-locker number in the XXXX-XXXX format
//
// All value objects are immutable, validated on construction, and use the
// ConstructorGuard pattern to reject zero-value instances.
package kernel
