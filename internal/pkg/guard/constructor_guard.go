// Package guard implements the constructor-guard pattern for value objects
// and entities. Embedding a ConstructorGuard in a struct makes it possible
// to detect whether the struct was built through its designated constructor
// or left as a zero value, so validation cannot be bypassed by direct
// struct initialization.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when the guard is a
// zero value and the caller did not supply its own error.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as properly constructed. The zero value
// is "not constructed"; only NewConstructorGuard produces a valid guard.
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard in the constructed state. Call it
// inside every designated constructor and store the result in the object.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the guard was produced by NewConstructorGuard.
// For a zero-value guard it returns notConstructedErr, falling back to
// ErrDefaultConstructorGuard when notConstructedErr is nil.
func (g ConstructorGuard) Validate(notConstructedErr error) error {
	if g.isConstructed {
		return nil
	}
	if notConstructedErr != nil {
		return notConstructedErr
	}
	return ErrDefaultConstructorGuard
}
