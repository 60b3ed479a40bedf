// Package guard implements a defensive-construction pattern for value objects,
// commands, and queries. Embedding a ConstructorGuard in a struct makes it possible
// to detect whether the struct was created through its designated constructor or
// left as a zero value, so validation cannot be bypassed by direct instantiation.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific validation
// error is provided for an object that was not properly constructed.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard tracks whether the embedding object went through its constructor.
// The zero value is intentionally invalid.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking an object as properly constructed.
// Call it inside the object's constructor:
//
//	func NewMoveOrderCommand(...) (MoveOrderCommand, error) {
//	    cmd := MoveOrderCommand{guard: guard.NewConstructorGuard()}
//	    ...
//	}
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the object was created via its constructor.
// For a zero-value guard it returns validationError, or
// ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
