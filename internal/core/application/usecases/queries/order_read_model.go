// Package queries contains the read operations of the application core.
// Queries never mutate state and have no side effects; they return read
// models shaped for the consuming screen rather than domain aggregates.
package queries

import (
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/order"
	"freightmatch/internal/core/domain/model/vehicle"
)

// OrderReadModel is the read-side representation of an order, shared by the
// order queries.
type OrderReadModel struct {
	ID               kernel.UUID
	VehicleClass     vehicle.Class
	Destination      string
	DestinationPoint kernel.GeoPoint
	Price            float64
	Status           order.Status
	CreatedAt        time.Time
	ProofPhoto       *string
}

// toOrderReadModel maps a domain aggregate onto the read model.
func toOrderReadModel(o *order.Order) OrderReadModel {
	return OrderReadModel{
		ID:               o.ID(),
		VehicleClass:     o.VehicleClass(),
		Destination:      o.Destination(),
		DestinationPoint: o.DestinationPoint(),
		Price:            o.Price(),
		Status:           o.Status(),
		CreatedAt:        o.CreatedAt(),
		ProofPhoto:       o.ProofPhoto(),
	}
}
