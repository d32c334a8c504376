package commands

import (
	"errors"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"
)

var (
	ErrCreateOrderCommandIsNotConstructed = errors.New(
		"CreateOrderCommand must be created via NewCreateOrderCommand constructor",
	)
)

// CreateOrderCommand represents a request to create a new customer order
// in Draft status with an initial set of line items.
//
// Example:
//
//	orderID := kernel.NewUUID()
//	item, _ := commands.NewItemRequest("X1", 2, decimal.RequireFromString("9.99"))
//	cmd, err := commands.NewCreateOrderCommand(orderID, "cust-1", []commands.ItemRequest{item})
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//
//	handler := commands.NewCreateOrderCommandHandler(uowFactory)
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return fmt.Errorf("failed to create order: %w", err)
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	customerID string
	items      []ItemRequest

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand creates a command to register a new order.
// Validates that the order ID is valid, the customer ID is not empty, and
// at least one valid item request is present.
func NewCreateOrderCommand(
	orderID kernel.UUID,
	customerID string,
	items []ItemRequest,
) (CreateOrderCommand, error) {
	orderCommand := CreateOrderCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		orderCommand.setOrderID(orderID),
		orderCommand.setCustomerID(customerID),
		orderCommand.setItems(items),
	); err != nil {
		return CreateOrderCommand{}, err
	}

	return orderCommand, nil
}

// Validate ensures the command was created through the constructor.
// Returns ErrCreateOrderCommandIsNotConstructed if validation fails.
func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

// OrderID returns the unique identifier for the new order.
func (c CreateOrderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// CustomerID returns the identifier of the customer placing the order.
func (c CreateOrderCommand) CustomerID() string {
	return c.customerID
}

// Items returns the requested initial line items.
func (c CreateOrderCommand) Items() []ItemRequest {
	return c.items
}

func (c *CreateOrderCommand) setOrderID(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}

	c.orderID = orderID
	return nil
}

func (c *CreateOrderCommand) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}

	c.customerID = customerID
	return nil
}

func (c *CreateOrderCommand) setItems(items []ItemRequest) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
