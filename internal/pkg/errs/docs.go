// Package errs provides standardized error types for the wand storefront.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used throughout the application.
//
// The package includes several error types for common error scenarios:
//   - ValueIsRequiredError: For when a required value is missing
//   - ValueIsInvalidError: For when a value is invalid
//   - ObjectNotFoundError: For when an object cannot be found
//   - ValueIsOutOfRangeError: For when a value falls outside its bounds
//
// Lifecycle errors classify order and inventory failures:
//   - InvalidStateError: a transition attempted from a state that forbids it
//   - AllocationConflictError: a wand was claimed concurrently (retryable)
//   - ContentRejectedError: moderation flagged submitted text
//   - ExternalServiceError: a collaborator such as the classifier failed
//   - ConcurrentModificationError: an optimistic version check lost a race
//
// ErrNoInventory and ErrSelectionFailed are plain sentinels returned by allocation.
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
//
// This standardized approach to error handling improves error reporting,
// makes error handling more consistent, and enables better error classification
// and handling throughout the application.
package errs
