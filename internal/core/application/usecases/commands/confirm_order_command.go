package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrConfirmOrderCommandIsNotConstructed = errors.New(
		"ConfirmOrderCommand must be created via NewConfirmOrderCommand constructor",
	)
)

// ConfirmOrderCommand represents a request to move a Draft order into the
// Confirmed status, locking its items and total.
type ConfirmOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewConfirmOrderCommand creates a command to confirm an order.
// Validates that the order ID is valid.
func NewConfirmOrderCommand(orderID kernel.UUID) (ConfirmOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return ConfirmOrderCommand{}, err
	}

	return ConfirmOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrConfirmOrderCommandIsNotConstructed if validation fails.
func (c ConfirmOrderCommand) Validate() error {
	return c.guard.Validate(ErrConfirmOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to confirm.
func (c ConfirmOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
