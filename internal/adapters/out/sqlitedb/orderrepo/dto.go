// Package orderrepo persists the order collection as a single JSON
// document under the orders record key. The wire shape mirrors the data
// model field for field: identifiers as UUID strings, status as its
// lowercase name, createdAt as epoch milliseconds, and proofPhoto as an
// explicit null while absent.
package orderrepo

import (
	"time"

	"freightmatch/internal/core/domain/model/kernel"
	"freightmatch/internal/core/domain/model/order"
	"freightmatch/internal/core/domain/model/vehicle"
)

// OrderDTO is the JSON representation of one order inside the orders
// record.
type OrderDTO struct {
	ID                string    `json:"id"`
	Vehicle           string    `json:"vehicle"`
	Destination       string    `json:"destination"`
	DestinationCoords CoordsDTO `json:"destinationCoords"`
	Price             float64   `json:"price"`
	Status            string    `json:"status"`
	CreatedAt         int64     `json:"createdAt"`
	ProofPhoto        *string   `json:"proofPhoto"`
}

// CoordsDTO is the JSON representation of a latitude/longitude pair.
type CoordsDTO struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// fromDomain converts an order aggregate to its stored representation.
func fromDomain(o *order.Order) OrderDTO {
	return OrderDTO{
		ID:          o.ID().String(),
		Vehicle:     o.VehicleClass().String(),
		Destination: o.Destination(),
		DestinationCoords: CoordsDTO{
			Latitude:  o.DestinationPoint().Latitude(),
			Longitude: o.DestinationPoint().Longitude(),
		},
		Price:      o.Price(),
		Status:     o.Status().String(),
		CreatedAt:  o.CreatedAt().UnixMilli(),
		ProofPhoto: o.ProofPhoto(),
	}
}

// toDomain reconstructs an order aggregate from its stored representation
// using RestoreOrder, so a corrupted record fails validation instead of
// producing a half-valid aggregate.
func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.UUIDFromString(dto.ID)
	if err != nil {
		return nil, err
	}

	class, err := vehicle.ClassFromString(dto.Vehicle)
	if err != nil {
		return nil, err
	}

	point, err := kernel.NewGeoPoint(dto.DestinationCoords.Latitude, dto.DestinationCoords.Longitude)
	if err != nil {
		return nil, err
	}

	status, err := order.StatusFromString(dto.Status)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		id,
		class,
		dto.Destination,
		point,
		dto.Price,
		status,
		time.UnixMilli(dto.CreatedAt),
		dto.ProofPhoto,
	)
}
