package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrCancelOrderCommandIsNotConstructed = errors.New(
		"CancelOrderCommand must be created via NewCancelOrderCommand constructor",
	)
)

// CancelOrderCommand represents a request to move a Draft order into the
// terminal Cancelled status.
type CancelOrderCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewCancelOrderCommand creates a command to cancel an order.
// Validates that the order ID is valid.
func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return CancelOrderCommand{}, err
	}

	return CancelOrderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCancelOrderCommandIsNotConstructed if validation fails.
func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to cancel.
func (c CancelOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}
