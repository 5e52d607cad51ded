package commands

import (
	"errors"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/vehicle"
	"freightmatch/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
	ErrDestinationIsRequired = errors.New("destination is required")
	ErrPriceIsNegative       = errors.New("price must not be negative")
)

// CreateOrderCommand represents a shipper's request for a new delivery.
// It carries the chosen vehicle class, the freight price fixed for that
// class, the free-form destination text and the destination coordinates.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	point, _ := kernel.NewGeoPoint(-8.05, -34.90)
//	cmd, err := NewCreateOrderCommand(orderID, vehicle.Van, "Av. Example, 100", point, vehicle.Van.BasePrice())
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID          kernel.UUID
	vehicleClass     vehicle.Class
	destination      string
	destinationPoint kernel.GeoPoint
	price            float64

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new delivery order.
// Validates that the order ID, vehicle class and coordinates are valid,
// the destination is not empty, and the price is non-negative. Destination
// validation lives here, at the boundary, not inside the store.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	vehicleClass vehicle.Class,
	destination string,
	destinationPoint kernel.GeoPoint,
	price float64,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setVehicleClass(vehicleClass),
		orderCommand.setDestination(destination),
		orderCommand.setDestinationPoint(destinationPoint),
		orderCommand.setPrice(price),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// VehicleClass returns the requested vehicle class.
func (c CreateOrderCommand) VehicleClass() vehicle.Class {
	return c.vehicleClass
}

// Destination returns the destination address text.
func (c CreateOrderCommand) Destination() string {
	return c.destination
}

// DestinationPoint returns the destination coordinates.
func (c CreateOrderCommand) DestinationPoint() kernel.GeoPoint {
	return c.destinationPoint
}

// Price returns the freight price to fix on the order.
func (c CreateOrderCommand) Price() float64 {
	return c.price
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setVehicleClass(class vehicle.Class) error {
	if err := class.Validate(); err != nil {
		return err
	}

	c.vehicleClass = class
	return nil
}

func (c *CreateOrderCommand) setDestination(destination string) error {
	if destination == "" {
		return ErrDestinationIsRequired
	}

	c.destination = destination
	return nil
}

func (c *CreateOrderCommand) setDestinationPoint(point kernel.GeoPoint) error {
	if err := point.Validate(); err != nil {
		return err
	}

	c.destinationPoint = point
	return nil
}

func (c *CreateOrderCommand) setPrice(price float64) error {
	if price < 0 {
		return ErrPriceIsNegative
	}

	c.price = price
	return nil
}
