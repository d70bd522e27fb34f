package errs

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidState           = errors.New("invalid state")
	ErrNoInventory            = errors.New("no inventory")
	ErrAllocationConflict     = errors.New("allocation conflict")
	ErrSelectionFailed        = errors.New("selection failed")
	ErrContentRejected        = errors.New("content rejected")
	ErrExternalService        = errors.New("external service error")
	ErrConcurrentModification = errors.New("concurrent modification")
)

// InvalidStateError reports a transition attempted from a state that does not permit it.
// State carries the entity's current state so callers can surface it.
type InvalidStateError struct {
	Entity string
	State  string
	Action string
}

func NewInvalidStateError(entity, state, action string) *InvalidStateError {
	return &InvalidStateError{
		Entity: entity,
		State:  state,
		Action: action,
	}
}

func (e *InvalidStateError) Error() string {
	return fmt.Sprintf("%s: cannot %s %s in %s state", ErrInvalidState, e.Action, e.Entity, e.State)
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// AllocationConflictError reports that a wand was claimed by someone else between
// selection and bind. Retryable.
type AllocationConflictError struct {
	WandID string
	Cause  error
}

func NewAllocationConflictError(wandID string, cause error) *AllocationConflictError {
	return &AllocationConflictError{
		WandID: wandID,
		Cause:  cause,
	}
}

func (e *AllocationConflictError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: wand %s (cause: %v)", ErrAllocationConflict, e.WandID, e.Cause)
	}
	return fmt.Sprintf("%s: wand %s", ErrAllocationConflict, e.WandID)
}

func (e *AllocationConflictError) Unwrap() error {
	return ErrAllocationConflict
}

// ContentRejectedError reports text that moderation flagged as unsafe.
type ContentRejectedError struct {
	Field string
}

func NewContentRejectedError(field string) *ContentRejectedError {
	return &ContentRejectedError{Field: field}
}

func (e *ContentRejectedError) Error() string {
	return fmt.Sprintf("%s: %s", ErrContentRejected, e.Field)
}

func (e *ContentRejectedError) Unwrap() error {
	return ErrContentRejected
}

// ExternalServiceError wraps a failure of a collaborator (classifier, storage, broker).
type ExternalServiceError struct {
	Service string
	Cause   error
}

func NewExternalServiceError(service string, cause error) *ExternalServiceError {
	return &ExternalServiceError{
		Service: service,
		Cause:   cause,
	}
}

func (e *ExternalServiceError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (cause: %v)", ErrExternalService, e.Service, e.Cause)
	}
	return fmt.Sprintf("%s: %s", ErrExternalService, e.Service)
}

func (e *ExternalServiceError) Unwrap() []error {
	if e.Cause == nil {
		return []error{ErrExternalService}
	}
	return []error{ErrExternalService, e.Cause}
}

// ConcurrentModificationError reports an optimistic version mismatch on update.
type ConcurrentModificationError struct {
	Entity string
	ID     string
}

func NewConcurrentModificationError(entity, id string) *ConcurrentModificationError {
	return &ConcurrentModificationError{
		Entity: entity,
		ID:     id,
	}
}

func (e *ConcurrentModificationError) Error() string {
	return fmt.Sprintf("%s: %s %s was changed by another operation", ErrConcurrentModification, e.Entity, e.ID)
}

func (e *ConcurrentModificationError) Unwrap() error {
	return ErrConcurrentModification
}
