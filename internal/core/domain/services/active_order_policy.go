package services

import (
	"errors"

	"freightmatch/internal/core/domain/model/order"
)

// ErrActiveOrderExists is returned when the carrier tries to accept an
// order while another order is already accepted and not yet delivered.
var ErrActiveOrderExists = errors.New("carrier already has an active order")

// ActiveOrderPolicy is a domain service enforcing the single-active-order
// rule: the local carrier holds at most one order in accepted status at a
// time. The scope is the device's single carrier identity; the system does
// not model multiple carrier accounts.
type ActiveOrderPolicy struct{}

// NewActiveOrderPolicy creates a new ActiveOrderPolicy instance.
func NewActiveOrderPolicy() ActiveOrderPolicy {
	return ActiveOrderPolicy{}
}

// ValidateAccept checks whether the identified order may be accepted given
// the carrier's current active order (nil when there is none).
//
// Returns ErrActiveOrderExists when a different order is already active.
// The active order itself is not re-acceptable either, but that is the
// status machine's rejection, not this policy's.
func (p ActiveOrderPolicy) ValidateAccept(target *order.Order, active *order.Order) error {
	if err := target.Validate(); err != nil {
		return err
	}

	if active != nil && !active.IsEqual(target) {
		return ErrActiveOrderExists
	}

	return nil
}
