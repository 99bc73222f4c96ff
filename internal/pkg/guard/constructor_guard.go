// Package guard provides the constructor guard embedded by value objects,
// commands and queries so that zero values can be told apart from
// instances produced by their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error was supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard records whether the enclosing struct was built by its constructor.
//
// Example:
//
//	type Restaurant struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewRestaurant(id kernel.UUID) (*Restaurant, error) {
//	    return &Restaurant{id: id, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (r *Restaurant) Validate() error {
//	    return r.guard.Validate(ErrRestaurantIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns validationError (or ErrDefaultConstructorGuard when it is nil)
// if the guard is a zero value.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
