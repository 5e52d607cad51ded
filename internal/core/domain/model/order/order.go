package order

import (
	"errors"
	"fmt"
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/vehicle"
	"freightmatch/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")
)

// Order is the aggregate root for a single delivery request. It owns the
// lifecycle from creation by a shipper through carrier acceptance to
// delivery confirmation.
//
// Order maintains these invariants:
//   - the identifier is valid, unique and stable for the order's lifetime
//   - the vehicle class is part of the catalog
//   - the destination text is non-empty
//   - the price is non-negative and fixed at creation
//   - status only advances forward (pending -> accepted -> delivered)
//   - the proof photo is set only at the transition into delivered
//
// Fields are private; all mutation goes through validated methods.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// vehicleClass is the vehicle class chosen by the shipper at creation
	vehicleClass vehicle.Class

	// destination is the free-form destination address text
	destination string

	// destinationPoint is the destination latitude/longitude pair
	destinationPoint kernel.GeoPoint

	// price is the freight price fixed at creation from the vehicle class
	price float64

	// status is the current state in the order lifecycle
	status Status

	// createdAt is the creation timestamp
	createdAt time.Time

	// proofPhoto is the proof-of-delivery image reference, present only
	// once the order is delivered and explicitly absent otherwise
	proofPhoto *string

	// isConstructed ensures the order was created via a constructor
	isConstructed bool
}

// NewOrder creates a pending order with a creation timestamp of now and no
// proof photo. This is the only way to create a fresh order; all inputs are
// validated and the returned aggregate holds every invariant.
func NewOrder(
	id kernel.UUID,
	vehicleClass vehicle.Class,
	destination string,
	destinationPoint kernel.GeoPoint,
	price float64,
) (*Order, error) {
	o := &Order{
		status:        Pending,
		createdAt:     time.Now(),
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setVehicleClass(vehicleClass),
		o.setDestination(destination),
		o.setDestinationPoint(destinationPoint),
		o.setPrice(price),
	); err != nil {
		return nil, err
	}

	return o, nil
}

// RestoreOrder reconstructs an order from persistence. Unlike NewOrder it
// accepts any valid lifecycle status and an optional proof photo, and it
// verifies the proof photo is consistent with the status.
func RestoreOrder(
	id kernel.UUID,
	vehicleClass vehicle.Class,
	destination string,
	destinationPoint kernel.GeoPoint,
	price float64,
	status Status,
	createdAt time.Time,
	proofPhoto *string,
) (*Order, error) {
	o := &Order{
		createdAt:     createdAt,
		isConstructed: true,
	}

	if err := errors.Join(
		o.setID(id),
		o.setVehicleClass(vehicleClass),
		o.setDestination(destination),
		o.setDestinationPoint(destinationPoint),
		o.setPrice(price),
		o.setStatus(status),
	); err != nil {
		return nil, err
	}

	if err := status.ValidateCanHaveProof(proofPhoto != nil); err != nil {
		return nil, err
	}
	o.proofPhoto = proofPhoto

	return o, nil
}

// Validate ensures the Order instance was properly constructed.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by identifier.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// VehicleClass returns the vehicle class chosen at creation.
func (o *Order) VehicleClass() vehicle.Class {
	return o.vehicleClass
}

// Destination returns the destination address text.
func (o *Order) Destination() string {
	return o.destination
}

// DestinationPoint returns the destination coordinates.
func (o *Order) DestinationPoint() kernel.GeoPoint {
	return o.destinationPoint
}

// Price returns the freight price fixed at creation.
func (o *Order) Price() float64 {
	return o.price
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// ProofPhoto returns the proof-of-delivery photo reference, or nil while
// the order has not been delivered (or was delivered without a photo).
func (o *Order) ProofPhoto() *string {
	return o.proofPhoto
}

// IsActive reports whether the order is the carrier's active order, i.e.
// accepted but not yet delivered.
func (o *Order) IsActive() bool {
	return o.status == Accepted
}

// Accept marks the order as taken by the carrier.
//
// The order must be pending; accepting an already accepted or delivered
// order is rejected and the aggregate is left unchanged.
func (o *Order) Accept() error {
	newStatus, err := o.status.Accept()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Deliver completes the order, recording the proof-of-delivery photo
// reference. A nil proofPhoto records the delivery as explicitly without
// proof; it is never coerced to an empty string.
//
// The order must be accepted; delivering a pending or already delivered
// order is rejected and the aggregate is left unchanged.
func (o *Order) Deliver(proofPhoto *string) error {
	newStatus, err := o.status.Deliver()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.proofPhoto = proofPhoto
	return nil
}

// setID validates and sets the order's unique identifier.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setVehicleClass validates and sets the vehicle class.
func (o *Order) setVehicleClass(class vehicle.Class) error {
	if err := class.Validate(); err != nil {
		return err
	}
	o.vehicleClass = class
	return nil
}

// setDestination validates and sets the destination text.
func (o *Order) setDestination(destination string) error {
	if destination == "" {
		return errs.NewValueIsRequiredError("destination")
	}
	o.destination = destination
	return nil
}

// setDestinationPoint validates and sets the destination coordinates.
func (o *Order) setDestinationPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}
	o.destinationPoint = point
	return nil
}

// setPrice validates and sets the price. Zero is allowed; the price only
// has to be non-negative.
func (o *Order) setPrice(price float64) error {
	if price < 0 {
		return errs.NewValueIsInvalidErrorWithCause("price", fmt.Errorf("%f is negative", price))
	}
	o.price = price
	return nil
}

// setStatus validates and sets the lifecycle status during restore.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}
