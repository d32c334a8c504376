package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrRemoveItemCommandIsNotConstructed = errors.New(
		"RemoveItemCommand must be created via NewRemoveItemCommand constructor",
	)
)

// RemoveItemCommand represents a request to delete a line item from a
// Draft order.
type RemoveItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	itemID  kernel.UUID

	guard guard.ConstructorGuard
}

// NewRemoveItemCommand creates a command to remove an item from an order.
// Validates that both identifiers are valid.
func NewRemoveItemCommand(orderID kernel.UUID, itemID kernel.UUID) (RemoveItemCommand, error) {
	removeItemCommand := RemoveItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		removeItemCommand.setOrderID(orderID),
		removeItemCommand.setItemID(itemID),
	); err != nil {
		return RemoveItemCommand{}, err
	}

	return removeItemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrRemoveItemCommandIsNotConstructed if validation fails.
func (c RemoveItemCommand) Validate() error {
	return c.guard.Validate(ErrRemoveItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c RemoveItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// ItemID returns the identifier of the line item to remove.
func (c RemoveItemCommand) ItemID() kernel.UUID {
	return c.itemID
}

func (c *RemoveItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *RemoveItemCommand) setItemID(itemID kernel.UUID) error {
	if err := itemID.Validate(); err != nil {
		return err
	}

	c.itemID = itemID
	return nil
}
