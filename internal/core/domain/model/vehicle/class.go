// Package vehicle defines the fixed catalog of vehicle classes a shipper
// can request for a delivery. Each class carries the base price that is
// fixed on the order at creation time.
package vehicle

import (
	"fmt"

	"freightmatch/internal/pkg/errs"
)

// Class identifies one of the supported vehicle classes.
type Class string

const (
	// Moto covers small volumes and documents.
	Moto Class = "moto"

	// Van covers medium boxes and appliances.
	Van Class = "van"

	// Truck covers house moves and large cargo.
	Truck Class = "truck"
)

// Spec describes a catalog entry for a vehicle class.
type Spec struct {
	Class       Class
	Title       string
	Description string
	BasePrice   float64
	Capacity    string
}

// catalog is the fixed set of classes offered to shippers. Prices are the
// base freight prices applied at order creation.
var catalog = map[Class]Spec{
	Moto: {
		Class:       Moto,
		Title:       "Moto Frete",
		Description: "Small volumes, documents",
		BasePrice:   15.00,
		Capacity:    "Up to 20kg",
	},
	Van: {
		Class:       Van,
		Title:       "Utility / Van",
		Description: "Medium boxes, appliances",
		BasePrice:   60.00,
		Capacity:    "Up to 600kg",
	},
	Truck: {
		Class:       Truck,
		Title:       "Straight Truck",
		Description: "House moves, large cargo",
		BasePrice:   150.00,
		Capacity:    "Up to 4 tons",
	},
}

// ClassFromString parses a class identifier coming from the API boundary
// or from persistence. Returns a ValueIsInvalidError for unknown classes.
func ClassFromString(s string) (Class, error) {
	c := Class(s)
	if err := c.Validate(); err != nil {
		return "", err
	}
	return c, nil
}

// Classes returns all catalog entries in display order.
func Classes() []Spec {
	return []Spec{catalog[Moto], catalog[Van], catalog[Truck]}
}

// Validate reports whether the class is part of the catalog.
func (c Class) Validate() error {
	if _, ok := catalog[c]; !ok {
		return errs.NewValueIsInvalidErrorWithCause(
			"vehicle class",
			fmt.Errorf("%q is not a known vehicle class", string(c)),
		)
	}
	return nil
}

// String returns the class identifier.
func (c Class) String() string {
	return string(c)
}

// Spec returns the catalog entry for the class. The zero Spec is returned
// for classes outside the catalog; callers validate first.
func (c Class) Spec() Spec {
	return catalog[c]
}

// BasePrice returns the price fixed on orders created with this class.
func (c Class) BasePrice() float64 {
	return catalog[c].BasePrice
}
