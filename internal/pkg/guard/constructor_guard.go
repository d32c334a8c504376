// Package guard provides the ConstructorGuard defensive pattern used by
// commands, queries, and value objects across the application.
package guard

import "errors"

// ErrDefaultConstructorGuard is the fallback error returned by
// ConstructorGuard.Validate when a nil validation error is supplied.
var ErrDefaultConstructorGuard = errors.New("object must be created via its constructor")

// ConstructorGuard ensures that structs embedding it were created through
// their designated constructor functions rather than as zero values.
//
// The guard holds an internal flag that is only set by NewConstructorGuard.
// A zero-value struct therefore carries a zero-value guard and fails
// validation, which lets domain objects detect bypassed constructors.
//
// Example usage:
//
//	var ErrMoneyNotConstructed = errors.New("Money must be created via NewMoney")
//
//	type Money struct {
//	    amount   int
//	    currency string
//	    guard    guard.ConstructorGuard
//	}
//
//	func NewMoney(amount int, currency string) (Money, error) {
//	    if amount < 0 {
//	        return Money{}, errors.New("amount cannot be negative")
//	    }
//	    return Money{amount: amount, currency: currency, guard: guard.NewConstructorGuard()}, nil
//	}
//
//	func (m Money) Validate() error {
//	    return m.guard.Validate(ErrMoneyNotConstructed)
//	}
type ConstructorGuard struct {
	isConstructed bool
}

// NewConstructorGuard creates a guard that marks the embedding object as
// properly constructed. Call it from the object's constructor.
func NewConstructorGuard() ConstructorGuard {
	return ConstructorGuard{isConstructed: true}
}

// Validate reports whether the guarded object went through its constructor.
// Returns nil for properly constructed objects. For zero values it returns
// validationError, or ErrDefaultConstructorGuard when validationError is nil.
func (g ConstructorGuard) Validate(validationError error) error {
	if validationError == nil {
		validationError = ErrDefaultConstructorGuard
	}
	if !g.isConstructed {
		return validationError
	}
	return nil
}
