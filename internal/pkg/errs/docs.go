// Package errs provides standardized error types for the table-side ordering
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the application.
//
// The package includes error types for the failure modes the core cares about:
//   - ValueIsRequiredError: a required input is missing (table id, items, status)
//   - ValueIsInvalidError: an input is present but malformed
//   - ValueIsOutOfRangeError: a value falls outside its allowed bounds
//   - ObjectNotFoundError: the operation target does not exist in the store
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g. ErrObjectNotFound)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method so errors.Is can classify against the sentinel
//
// Transport layers map these classes onto status codes: required/invalid
// become 400 responses, not-found becomes 404, everything else is a 500.
package errs
