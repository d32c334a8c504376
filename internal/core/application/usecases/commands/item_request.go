package commands

import (
	"errors"
	"fmt"

	"orders/internal/pkg/errs"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrItemRequestIsNotConstructed = errors.New(
		"ItemRequest must be created via NewItemRequest constructor",
	)
)

// ItemRequest describes a line item to be added to an order: the product
// sku, the quantity, and the client-supplied unit price. It is shared by
// CreateOrderCommand and AddItemCommand.
//
// The request carries input data only; the item identifier is assigned by
// the handler when the domain item is created.
type ItemRequest struct { //nolint:recvcheck //using for validation
	sku       string
	quantity  int
	unitPrice decimal.Decimal

	guard guard.ConstructorGuard
}

// NewItemRequest creates a validated line-item request.
// Validates that sku is not empty, quantity is positive, and unitPrice is
// not negative. Returns an error naming the offending field otherwise.
func NewItemRequest(sku string, quantity int, unitPrice decimal.Decimal) (ItemRequest, error) {
	itemRequest := ItemRequest{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		itemRequest.setSku(sku),
		itemRequest.setQuantity(quantity),
		itemRequest.setUnitPrice(unitPrice),
	); err != nil {
		return ItemRequest{}, err
	}

	return itemRequest, nil
}

// Validate ensures the request was created through the constructor.
// Returns ErrItemRequestIsNotConstructed if validation fails.
func (r ItemRequest) Validate() error {
	return r.guard.Validate(ErrItemRequestIsNotConstructed)
}

// Sku returns the product identifier.
func (r ItemRequest) Sku() string {
	return r.sku
}

// Quantity returns the number of units requested.
func (r ItemRequest) Quantity() int {
	return r.quantity
}

// UnitPrice returns the client-supplied price per unit.
func (r ItemRequest) UnitPrice() decimal.Decimal {
	return r.unitPrice
}

func (r *ItemRequest) setSku(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}

	r.sku = sku
	return nil
}

func (r *ItemRequest) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}

	r.quantity = quantity
	return nil
}

func (r *ItemRequest) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}

	r.unitPrice = unitPrice
	return nil
}
