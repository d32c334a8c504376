package commands

// OrderActionResult is the closed set of expected business outcomes for
// lifecycle operations (confirm, cancel, remove item). These outcomes are
// ordinary control flow at call sites: handlers return them as values and
// reserve the error channel for infrastructure failures.
type OrderActionResult int

const (
	// ActionUnknown is the zero value; returned together with a non-nil
	// error when the operation did not reach a business outcome.
	ActionUnknown OrderActionResult = iota

	// ActionSuccess indicates the operation was applied and persisted.
	ActionSuccess

	// ActionNotFound indicates the referenced order (or item) does not exist.
	ActionNotFound

	// ActionInvalidState indicates the order's lifecycle state forbids the
	// operation, e.g. confirming an already-confirmed order.
	ActionInvalidState
)

// String returns the human-readable name of the result.
func (r OrderActionResult) String() string {
	switch r {
	case ActionSuccess:
		return "Success"
	case ActionNotFound:
		return "NotFound"
	case ActionInvalidState:
		return "InvalidState"
	case ActionUnknown:
		return "Unknown"
	}
	return "Unknown"
}
