package commands

import (
	"errors"
	"fmt"
	"time"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCancelStaleDraftsCommandIsNotConstructed = errors.New(
		"CancelStaleDraftsCommand must be created via NewCancelStaleDraftsCommand constructor",
	)
)

// CancelStaleDraftsCommand represents a request to cancel every Draft order
// that has not been touched for longer than the given time-to-live.
// Typically issued by the background scheduler.
type CancelStaleDraftsCommand struct { //nolint:recvcheck //using for validation
	ttl time.Duration

	guard guard.ConstructorGuard
}

// NewCancelStaleDraftsCommand creates a command to expire abandoned drafts.
// Validates that the time-to-live is positive.
func NewCancelStaleDraftsCommand(ttl time.Duration) (CancelStaleDraftsCommand, error) {
	if ttl <= 0 {
		return CancelStaleDraftsCommand{}, errs.NewValueIsInvalidErrorWithCause(
			"ttl", fmt.Errorf("%s is not greater than 0", ttl))
	}

	return CancelStaleDraftsCommand{
		ttl:   ttl,
		guard: guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelStaleDraftsCommandIsNotConstructed if validation fails.
func (c CancelStaleDraftsCommand) Validate() error {
	return c.guard.Validate(ErrCancelStaleDraftsCommandIsNotConstructed)
}

// TTL returns how long a Draft may stay untouched before it is cancelled.
func (c CancelStaleDraftsCommand) TTL() time.Duration {
	return c.ttl
}
