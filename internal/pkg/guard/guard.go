// Package guard provides ConstructorGuard, a marker embedded in value objects and
// commands so that zero values built without their constructor fail validation.
package guard

import "errors"

// ErrNotConstructed is returned by Validate when the caller passes no specific error.
var ErrNotConstructed = errors.New("object must be created via its constructor")

// ConstructorGuard is set only by NewConstructorGuard. Its zero value is invalid.
type ConstructorGuard struct {
	isConstructed bool
}

func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrNotConstructed when nil) for a guard that
// was not produced by NewConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrNotConstructed
	}
	return validationError
}
