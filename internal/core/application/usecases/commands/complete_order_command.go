package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/pkg/guard"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New(
	"CompleteOrderCommand must be created via NewCompleteOrderCommand constructor",
)

// CompleteOrderCommand represents the carrier finishing a delivery,
// optionally attaching a proof-of-delivery photo reference captured by the
// camera collaborator. A nil photo records the delivery explicitly without
// proof.
type CompleteOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	proofPhoto *string

	guard guard.ConstructorGuard
}

// NewCompleteOrderCommand creates a command to complete the identified
// order. proofPhoto may be nil when no photo was captured.
func NewCompleteOrderCommand(orderID kernel.UUID, proofPhoto *string) (CompleteOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CompleteOrderCommand{}, err
	}

	return CompleteOrderCommand{
		orderID:    orderID,
		proofPhoto: proofPhoto,
		guard:      guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to complete.
func (c CompleteOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ProofPhoto returns the proof-of-delivery reference, or nil when the
// delivery is recorded without one.
func (c CompleteOrderCommand) ProofPhoto() *string {
	return c.proofPhoto
}
