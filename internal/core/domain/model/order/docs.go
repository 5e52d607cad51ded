// Package order contains the Order aggregate and its lifecycle state
// machine. An order is created by a shipper in pending status, accepted by
// the carrier, and completed with an optional proof-of-delivery photo.
// Status moves strictly forward; there is no transition out of delivered.
package order
