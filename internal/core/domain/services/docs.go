// Package services provides domain services that implement business rules
// spanning the whole order collection rather than a single aggregate.
//
// The package includes:
//   - ActiveOrderPolicy: the rule that the carrier holds at most one
//     accepted order at a time
package services
