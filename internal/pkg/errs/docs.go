// Package errs provides standardized error types for the flowtrack application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common failure scenarios:
//   - ValueIsRequiredError: for when a required value is missing
//   - ValueIsInvalidError: for when a value is invalid
//   - ObjectNotFoundError: for when an object cannot be found
//   - VersionIsInvalidError: for optimistic concurrency conflicts
//   - PreconditionBlockedError: for refused state transitions with an operator-facing reason
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach makes failures classifiable with errors.Is at the
// transport boundary without string matching.
package errs
