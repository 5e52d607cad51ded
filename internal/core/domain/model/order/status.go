package order

import (
	"fmt"

	"freightmatch/internal/pkg/errs"
)

// Status represents the lifecycle state of an order. It implements a
// strictly forward-moving state machine:
//
//	Pending ──> Accepted ──> Delivered
//
// There is no cancellation state and no transition out of Delivered.
// Status is a value object; transitions are validated and a rejected
// transition leaves the current value untouched.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status: the order is waiting for the
	// carrier to accept it.
	Pending

	// Accepted means the carrier has taken the order and is en route.
	// An order in this status is the carrier's active order.
	Accepted

	// Delivered means the order was completed, optionally with a
	// proof-of-delivery photo. This is a final state.
	Delivered
)

// getStatusStrings returns the string representation of every Status,
// including Unknown.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "unknown",
		Pending:   "pending",
		Accepted:  "accepted",
		Delivered: "delivered",
	}
}

// getValidStatusStrings returns only the statuses an order may hold.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:   "pending",
		Accepted:  "accepted",
		Delivered: "delivered",
	}
}

// StatusFromString parses a persisted or API-supplied status string.
// The lowercase forms "pending", "accepted" and "delivered" are the stable
// serialization used by the storage layer.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause(
		"status",
		fmt.Errorf("%q is not a valid status", s),
	)
}

// Validate checks that the Status is one of the valid lifecycle states.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the lowercase name of the status. It implements
// fmt.Stringer and is safe to call on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// ValidateCanHaveProof validates the consistency between order status and
// the presence of a proof-of-delivery photo. A proof photo is set at the
// transition into Delivered and never earlier.
func (s Status) ValidateCanHaveProof(hasProof bool) error {
	if hasProof && s != Delivered {
		return errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to carry a proof photo", s.String()),
		)
	}
	return nil
}

// Accept transitions the status to Accepted.
//
// The only valid prior state is Pending: an already accepted order cannot
// be accepted again and a delivered order never re-enters the lifecycle.
// Returns (0, error) when the transition is not allowed.
func (s Status) Accept() (Status, error) {
	if s != Pending {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to accept", s.String()),
		)
	}

	return Accepted, nil
}

// Deliver transitions the status to Delivered.
//
// The only valid prior state is Accepted: a pending order must be accepted
// first and Delivered is final. Returns (0, error) when the transition is
// not allowed.
func (s Status) Deliver() (Status, error) {
	if s != Accepted {
		return 0, errs.NewValueIsInvalidErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to deliver", s.String()),
		)
	}

	return Delivered, nil
}
