package errs

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for classification via errors.Is. Each concrete error
// type below unwraps to exactly one of these.
var (
	ErrObjectNotFound      = errors.New("object not found")
	ErrValueIsInvalid      = errors.New("value is invalid")
	ErrValueIsOutOfRange   = errors.New("value is out of range")
	ErrValueIsRequired     = errors.New("value is required")
	ErrInvalidState        = errors.New("invalid state")
	ErrConcurrencyConflict = errors.New("concurrency conflict")
)

// sanitize strips newlines from values interpolated into error messages
// so a single log line stays a single line.
func sanitize(s string) string {
	return strings.ReplaceAll(strings.ReplaceAll(s, "\n", " "), "\r", " ")
}

// ObjectNotFoundError indicates that a referenced object does not exist.
type ObjectNotFoundError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewObjectNotFoundError creates an ObjectNotFoundError for the named
// parameter and identifier.
func NewObjectNotFoundError(paramName string, id any) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id}
}

// NewObjectNotFoundErrorWithCause creates an ObjectNotFoundError wrapping
// an underlying cause.
func NewObjectNotFoundErrorWithCause(paramName string, id any, cause error) *ObjectNotFoundError {
	return &ObjectNotFoundError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ObjectNotFoundError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrObjectNotFound, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrObjectNotFound, e.ID))
}

func (e *ObjectNotFoundError) Unwrap() error {
	return ErrObjectNotFound
}

// ValueIsInvalidError indicates that a supplied value violates a
// validation rule.
type ValueIsInvalidError struct {
	ParamName string
	Cause     error
}

// NewValueIsInvalidError creates a ValueIsInvalidError for the named parameter.
func NewValueIsInvalidError(paramName string) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName}
}

// NewValueIsInvalidErrorWithCause creates a ValueIsInvalidError wrapping
// an underlying cause.
func NewValueIsInvalidErrorWithCause(paramName string, cause error) *ValueIsInvalidError {
	return &ValueIsInvalidError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsInvalidError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsInvalid, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsInvalid, e.ParamName))
}

func (e *ValueIsInvalidError) Unwrap() error {
	return ErrValueIsInvalid
}

// ValueIsOutOfRangeError indicates that a numeric value falls outside its
// permitted range.
type ValueIsOutOfRangeError struct {
	ParamName string
	Value     any
	Min       any
	Max       any
	Cause     error
}

// NewValueIsOutOfRangeError creates a ValueIsOutOfRangeError with the
// offending value and permitted bounds.
func NewValueIsOutOfRangeError(paramName string, value, minValue, maxValue any) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue}
}

// NewValueIsOutOfRangeErrorWithCause creates a ValueIsOutOfRangeError
// wrapping an underlying cause.
func NewValueIsOutOfRangeErrorWithCause(
	paramName string, value, minValue, maxValue any, cause error,
) *ValueIsOutOfRangeError {
	return &ValueIsOutOfRangeError{ParamName: paramName, Value: value, Min: minValue, Max: maxValue, Cause: cause}
}

func (e *ValueIsOutOfRangeError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v (cause: %s)",
			ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %v is %s, min value is %v, max value is %v",
		ErrValueIsInvalid, e.Value, e.ParamName, e.Min, e.Max))
}

func (e *ValueIsOutOfRangeError) Unwrap() error {
	return ErrValueIsOutOfRange
}

// ValueIsRequiredError indicates that a required value is missing or empty.
type ValueIsRequiredError struct {
	ParamName string
	Cause     error
}

// NewValueIsRequiredError creates a ValueIsRequiredError for the named parameter.
func NewValueIsRequiredError(paramName string) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName}
}

// NewValueIsRequiredErrorWithCause creates a ValueIsRequiredError wrapping
// an underlying cause.
func NewValueIsRequiredErrorWithCause(paramName string, cause error) *ValueIsRequiredError {
	return &ValueIsRequiredError{ParamName: paramName, Cause: cause}
}

func (e *ValueIsRequiredError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrValueIsRequired, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrValueIsRequired, e.ParamName))
}

func (e *ValueIsRequiredError) Unwrap() error {
	return ErrValueIsRequired
}

// InvalidStateError indicates that an operation is not allowed in the
// object's current lifecycle state. Callers must not retry without
// changing the state first.
type InvalidStateError struct {
	ParamName string
	Cause     error
}

// NewInvalidStateError creates an InvalidStateError for the named parameter.
func NewInvalidStateError(paramName string) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName}
}

// NewInvalidStateErrorWithCause creates an InvalidStateError wrapping an
// underlying cause.
func NewInvalidStateErrorWithCause(paramName string, cause error) *InvalidStateError {
	return &InvalidStateError{ParamName: paramName, Cause: cause}
}

func (e *InvalidStateError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: %s (cause: %s)", ErrInvalidState, e.ParamName, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrInvalidState, e.ParamName))
}

func (e *InvalidStateError) Unwrap() error {
	return ErrInvalidState
}

// ConcurrencyConflictError indicates that an optimistic-concurrency check
// failed: the object changed between read and write. Callers should
// re-read and decide whether to retry with fresh state.
type ConcurrencyConflictError struct {
	ParamName string
	ID        any
	Cause     error
}

// NewConcurrencyConflictError creates a ConcurrencyConflictError for the
// named parameter and identifier.
func NewConcurrencyConflictError(paramName string, id any) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{ParamName: paramName, ID: id}
}

// NewConcurrencyConflictErrorWithCause creates a ConcurrencyConflictError
// wrapping an underlying cause.
func NewConcurrencyConflictErrorWithCause(paramName string, id any, cause error) *ConcurrencyConflictError {
	return &ConcurrencyConflictError{ParamName: paramName, ID: id, Cause: cause}
}

func (e *ConcurrencyConflictError) Error() string {
	if e.Cause != nil {
		return sanitize(fmt.Sprintf("%s: param is: %s, ID is: %s (cause: %s)",
			ErrConcurrencyConflict, e.ParamName, e.ID, e.Cause))
	}
	return sanitize(fmt.Sprintf("%s: %s", ErrConcurrencyConflict, e.ID))
}

func (e *ConcurrencyConflictError) Unwrap() error {
	return ErrConcurrencyConflict
}
