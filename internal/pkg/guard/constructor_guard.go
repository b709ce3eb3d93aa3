// Package guard provides the constructor guard pattern used by domain
// objects, commands, and queries to reject zero-value instances.
//
// A ConstructorGuard is embedded as a private field and set only by the
// designated constructor. Validate on a zero-value instance returns the
// error supplied by the owning type, which makes "forgot to call the
// constructor" a detectable programming error instead of a silent
// invalid state.
package guard

import "errors"

// ErrDefaultConstructorGuard is returned by ConstructorGuard.Validate()
// when the guarded object is a zero value and the caller passed a nil
// validation error. It guarantees validation never succeeds silently.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard marks an object as created through its constructor.
// The zero value is "not constructed" and fails Validate.
//
// Example usage:
//
//	var ErrStampNotConstructed = errors.New("Stamp must be created via NewStamp")
//
//	type Stamp struct {
//	    by    kernel.UUID
//	    notes string
//	    guard guard.ConstructorGuard
//	}
//
//	func NewStamp(by kernel.UUID, notes string) (Stamp, error) {
//	    if err := by.Validate(); err != nil {
//	        return Stamp{}, err
//	    }
//	    return Stamp{by: by, notes: notes, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (s Stamp) Validate() error {
//	    return s.guard.Validate(ErrStampNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard returns a guard marking the owning object as
// properly constructed. Call it only from constructors.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate returns nil when the owning object was built via its
// constructor. For a zero-value guard it returns validationError, or
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
