package order

import (
	"fmt"

	"shop/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
//
// The lifecycle nominally reads PROCESSING -> IN_DELIVERY -> COMPLETED, but
// no transition graph is enforced: ChangeStatus on the aggregate accepts any
// valid status from any valid status. Only values outside the enumeration
// are invalid.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Processing is the initial status assigned when an order is placed.
	Processing

	// InDelivery indicates the order has been handed over for delivery.
	InDelivery

	// Completed indicates the order has been delivered.
	Completed
)

// getStatusStrings returns a map of Status values to their wire names.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "UNKNOWN",
		Processing: "PROCESSING",
		InDelivery: "IN_DELIVERY",
		Completed:  "COMPLETED",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Unknown is excluded to support validation.
func getValidStatusStrings() map[Status]string {
	return map[Status]string{
		Processing: "PROCESSING",
		InDelivery: "IN_DELIVERY",
		Completed:  "COMPLETED",
	}
}

// AllStatuses returns every valid status in lifecycle order. Queries that
// report per-status results iterate this slice so that statuses with zero
// orders still appear in the output.
func AllStatuses() []Status {
	return []Status{Processing, InDelivery, Completed}
}

// StatusFromString resolves a wire name ("PROCESSING", "IN_DELIVERY",
// "COMPLETED") to its Status value. Unrecognized tokens fail with a
// ValueIsInvalidError; there is no fuzzy or case-insensitive matching.
func StatusFromString(s string) (Status, error) {
	for status, name := range getValidStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status value is a member of the enumeration.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%d is not a valid status", s),
		)
	}
	return nil
}

// String returns the wire name of the status. It implements fmt.Stringer
// and is safe to call on any Status value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "UNKNOWN"
}
