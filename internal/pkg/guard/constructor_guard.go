// Package guard provides the constructor-guard pattern used by domain objects
// and commands to reject zero-value instances that bypassed their constructors.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by Validate when a nil validation error
// is supplied for a zero-value guard.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its designated constructor.
// The zero value is invalid, so any struct embedding a guard and validated with it
// cannot be used when instantiated directly.
//
// Example:
//
//	type ApproveLoadingCommand struct {
//	    id    kernel.UUID
//	    guard guard.ConstructorGuard
//	}
//
//	func NewApproveLoadingCommand(id kernel.UUID) ApproveLoadingCommand {
//	    return ApproveLoadingCommand{id: id, guard: guard.NewConstructorGuard()}
//	}
//
//	func (c ApproveLoadingCommand) Validate() error {
//	    return c.guard.Validate(ErrApproveLoadingCommandIsNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard marking the enclosing object as constructed.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil for a constructed guard, the supplied error for a zero-value
// guard, or ErrDefaultConstructorGuard when the supplied error is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
