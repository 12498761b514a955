// Package errs provides standardized error types for the shop application.
// It implements a consistent pattern for error creation, formatting, and
// unwrapping that is used throughout the application.
//
// The package includes error types for the common failure scenarios:
//   - ObjectNotFoundError: for when an object cannot be found by id
//   - ValueIsInvalidError: for when a value fails validation
//   - ValueIsOutOfRangeError: for when a value falls outside its bounds
//   - ValueIsRequiredError: for when a required value is missing
//
// Each error type follows the same pattern:
//   - a sentinel error variable (e.g. ErrObjectNotFound)
//   - a struct type with fields for error details
//   - constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is works against the sentinel
//
// This keeps error classification uniform: callers decide behavior with
// errors.Is against the sentinels, while the structs carry the detail
// needed for diagnostics.
package errs
