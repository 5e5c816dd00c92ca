// Package errs provides standardized error types for the coffee application.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is not one of the accepted values
//   - ValueIsOutOfRangeError: For when a value falls outside an inclusive range
//   - TypeIsInvalidError: For when a loosely typed value has the wrong type
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// Required, invalid and out-of-range values are grouped as invalid arguments
// (see IsInvalidArgument). Type mismatches are reported separately through
// ErrTypeIsInvalid.
package errs
