// Package guard provides the ConstructorGuard used by commands, queries and value
// objects to tell a properly constructed value apart from a zero value.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when no specific error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard is embedded in types that must only be created through their
// constructor. The zero value reports the type as not constructed.
//
// Example:
//
//	type ProposeDateCommand struct {
//	    window kernel.DeliveryWindow
//	    guard  guard.ConstructorGuard
//	}
//
//	func (c ProposeDateCommand) Validate() error {
//	    return c.guard.Validate(ErrProposeDateCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marked as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard and validationError otherwise.
// A nil validationError falls back to ErrDefaultConstructorGuard.
func (g ConstructorGuard) Validate(validationError error) error {
	if g.isConstructed {
		return nil
	}
	if validationError == nil {
		return ErrDefaultConstructorGuard
	}
	return validationError
}
