// Package kernel provides the domain primitives shared across the
// freightmatch model.
//
// The package includes:
//   - UUID: a value object for unique identifiers with validation and comparison
//   - GeoPoint: a value object for geographic coordinates in floating-point degrees
//
// Both primitives are immutable value objects: the zero value is invalid and
// instances must be produced through the constructor functions, which enforce
// the validation rules.
package kernel
