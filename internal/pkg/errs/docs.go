// Package errs provides standardized error types for the ordering service.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes error types for validation and lookup failures:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ValueIsOutOfRangeError: For when a value falls outside its allowed bounds
//   - ObjectNotFoundError: For when an object cannot be found
//
// and for the delivery-date negotiation protocol:
//   - ForbiddenError: The actor may not perform the action on the order
//   - InvalidTransitionError: The action is illegal for the order's current status
//   - OrderLockedError: The order is locked and the action is not an allowed override
//   - ConcurrentModificationError: Another writer committed first (optimistic concurrency)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method returning the sentinel, so errors.Is works across wrapping
package errs
