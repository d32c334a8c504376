package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"
)

var (
	ErrAddItemCommandIsNotConstructed = errors.New(
		"AddItemCommand must be created via NewAddItemCommand constructor",
	)
)

// AddItemCommand represents a request to append a line item to an existing
// Draft order.
type AddItemCommand struct { //nolint:recvcheck //using for validation
	orderID kernel.UUID
	item    ItemRequest

	guard guard.ConstructorGuard
}

// NewAddItemCommand creates a command to add an item to an order.
// Validates that the order ID and the item request are valid.
func NewAddItemCommand(orderID kernel.UUID, item ItemRequest) (AddItemCommand, error) {
	addItemCommand := AddItemCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		addItemCommand.setOrderID(orderID),
		addItemCommand.setItem(item),
	); err != nil {
		return AddItemCommand{}, err
	}

	return addItemCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrAddItemCommandIsNotConstructed if validation fails.
func (c AddItemCommand) Validate() error {
	return c.guard.Validate(ErrAddItemCommandIsNotConstructed)
}

// OrderID returns the identifier of the order to modify.
func (c AddItemCommand) OrderID() kernel.UUID {
	return c.orderID
}

// Item returns the line item to append.
func (c AddItemCommand) Item() ItemRequest {
	return c.item
}

func (c *AddItemCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *AddItemCommand) setItem(item ItemRequest) error {
	if err := item.Validate(); err != nil {
		return err
	}

	c.item = item
	return nil
}
