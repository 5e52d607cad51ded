// Package errs provides the standardized error types used across the
// freightmatch core.
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type carrying the error details
//   - constructor functions with and without an underlying cause
//   - an Error() method for formatting
//   - an Unwrap() method so errors.Is matches the sentinel
//
// Keeping the taxonomy small and uniform lets callers classify failures
// (missing value, invalid value, out of range, not found) without string
// matching.
package errs
