package order

import (
	"fmt"

	"orders/internal/pkg/errs"
)

// Status represents the lifecycle state of an order.
// It implements a state machine with defined transitions to ensure
// orders follow the correct business workflow.
//
// State transitions:
//
//	Draft ──┬──> Confirmed
//	        │
//	        └──> Cancelled
//
// Confirmed and Cancelled are terminal: no transitions lead out of them,
// and the order's items and total become immutable.
//
// Status is a value object that validates state transitions
// and provides string representations for persistence and display.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Draft is the initial status when an order is first created.
	// Items can only be added or removed while the order is in Draft.
	Draft

	// Confirmed indicates the customer has confirmed the order.
	// This is a final state with no further transitions allowed.
	Confirmed

	// Cancelled indicates the order was cancelled before confirmation.
	// This is a final state with no further transitions allowed.
	Cancelled
)

// getStatusStrings returns a map of Status values to their string representations.
// All statuses are included for string conversion.
func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:   "Unknown",
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Cancelled: "Cancelled",
	}
}

// getValidStatusStrings returns a map of only valid Status values.
// Only valid statuses are included to support validation.
func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Draft:     "Draft",
		Confirmed: "Confirmed",
		Cancelled: "Cancelled",
	}
}

// Validate checks if the Status value is valid.
//
// Valid statuses are: Draft, Confirmed, Cancelled.
// Unknown (0) and any other values are invalid.
//
// This method is used to ensure Status values from external sources
// (e.g., database, API) are valid before use.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the human-readable name of the status.
//
// Returns "Draft", "Confirmed", or "Cancelled" for valid statuses and
// "Unknown" for invalid status values. Implements fmt.Stringer and is
// safe to call on any Status value.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// CanModifyItems reports whether the item set and totals may change in
// the current status. Only Draft orders are mutable.
func (s Status) CanModifyItems() bool {
	return s == Draft
}

// ValidateCanModifyItems checks that item mutations are allowed without
// performing any transition.
//
// Returns:
//   - nil if the order's items may be modified (status is Draft)
//   - an InvalidStateError for Confirmed, Cancelled, or Unknown
func (s Status) ValidateCanModifyItems() error {
	if !s.CanModifyItems() {
		return errs.NewInvalidStateErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to modify items", s.String()),
		)
	}
	return nil
}

// Confirm transitions the status to Confirmed.
//
// Valid transitions:
//   - Draft -> Confirmed
//
// Any other source status (including Confirmed itself) yields an
// InvalidStateError; confirming twice fails on the second call rather
// than silently succeeding.
//
// Returns:
//   - (Confirmed, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Confirm() (Status, error) {
	if s != Draft {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to confirm", s.String()),
		)
	}

	return Confirmed, nil
}

// Cancel transitions the status to Cancelled.
//
// Valid transitions:
//   - Draft -> Cancelled
//
// Confirmed orders cannot be cancelled and terminal states cannot be
// re-entered; both cases yield an InvalidStateError.
//
// Returns:
//   - (Cancelled, nil) on valid transition
//   - (0, error) if the transition is not allowed from the current status
func (s Status) Cancel() (Status, error) {
	if s != Draft {
		return 0, errs.NewInvalidStateErrorWithCause(
			"status",
			fmt.Errorf("%s is not a valid status to cancel", s.String()),
		)
	}

	return Cancelled, nil
}
