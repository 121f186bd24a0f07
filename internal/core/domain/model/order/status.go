package order

import (
	"pickpoint/internal/pkg/errs"
)

// Status represents the delivery state of an order.
// The six states mirror the reference rows of the order_statuses table; any
// state can be set at any time (the service does not restrict transitions),
// but the value itself must be one of the known states.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Registered is the initial status when an order is placed.
	Registered

	// ReceivedAtWarehouse indicates the parcel arrived at the warehouse.
	ReceivedAtWarehouse

	// HandedToCourier indicates the parcel was handed over for delivery.
	HandedToCourier

	// DeliveredToPostautomat indicates the parcel is waiting in the locker.
	DeliveredToPostautomat

	// DeliveredToRecipient indicates the recipient picked the parcel up.
	DeliveredToRecipient

	// Cancelled indicates the order was cancelled.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:                "Unknown",
		Registered:             "Registered",
		ReceivedAtWarehouse:    "ReceivedAtWarehouse",
		HandedToCourier:        "HandedToCourier",
		DeliveredToPostautomat: "DeliveredToPostautomat",
		DeliveredToRecipient:   "DeliveredToRecipient",
		Cancelled:              "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Registered:             "Registered",
		ReceivedAtWarehouse:    "ReceivedAtWarehouse",
		HandedToCourier:        "HandedToCourier",
		DeliveredToPostautomat: "DeliveredToPostautomat",
		DeliveredToRecipient:   "DeliveredToRecipient",
		Cancelled:              "Cancelled",
	}
}

// AllStatuses returns the valid statuses in ascending numeric order.
// Used to seed the order_statuses reference table.
func AllStatuses() []Status {
	return []Status{
		Registered,
		ReceivedAtWarehouse,
		HandedToCourier,
		DeliveredToPostautomat,
		DeliveredToRecipient,
		Cancelled,
	}
}

// Validate checks if the Status value is one of the six known states.
// Unknown (0) and any other values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsOutOfRangeError("status", int(s), int(Registered), int(Cancelled))
	}
	return nil
}

// String returns the human-readable name of the status.
// Returns "Unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}
