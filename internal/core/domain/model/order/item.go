package order

import (
	"errors"
	"fmt"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrItemIsNotConstructed is returned when an Item instance was not created
	// through the NewItem factory method.
	ErrItemIsNotConstructed = errors.New("Item must be created via NewItem constructor")
)

// Item is a line item inside an Order. It is owned exclusively by its
// order: it carries no reference back to the parent and is only ever
// created, persisted, or removed through the Order aggregate.
//
// Item invariants:
//   - sku is a non-empty product identifier
//   - quantity is greater than 0
//   - unitPrice is a non-negative decimal amount
type Item struct {
	// id is the unique identifier for the line item
	id kernel.UUID

	// sku is the product identifier
	sku string

	// quantity is the number of units ordered (must be positive)
	quantity int

	// unitPrice is the price per unit (must not be negative)
	unitPrice decimal.Decimal

	// isConstructed ensures the item was created via NewItem
	isConstructed bool
}

// NewItem creates a new line item with validation. This is the only way
// to create a valid Item.
//
// Parameters:
//   - id: Unique identifier for the item (must be valid UUID)
//   - sku: Product identifier (must not be empty)
//   - quantity: Number of units (must be greater than 0)
//   - unitPrice: Price per unit (must not be negative)
//
// Returns the created item, or a validation error naming the offending
// field.
func NewItem(id kernel.UUID, sku string, quantity int, unitPrice decimal.Decimal) (*Item, error) {
	item := &Item{
		isConstructed: true,
	}

	if err := errors.Join(
		item.setID(id),
		item.setSku(sku),
		item.setQuantity(quantity),
		item.setUnitPrice(unitPrice),
	); err != nil {
		return nil, err
	}

	return item, nil
}

// Validate ensures the Item instance was properly constructed through NewItem.
// Returns ErrItemIsNotConstructed otherwise.
func (i *Item) Validate() error {
	if i == nil || !i.isConstructed {
		return ErrItemIsNotConstructed
	}

	return nil
}

// IsEqual compares two items by their unique identifiers.
func (i *Item) IsEqual(other *Item) bool {
	return other != nil && i.id.IsEqual(other.id)
}

// ID returns the item's unique identifier.
func (i *Item) ID() kernel.UUID {
	return i.id
}

// Sku returns the product identifier.
func (i *Item) Sku() string {
	return i.sku
}

// Quantity returns the number of units ordered.
func (i *Item) Quantity() int {
	return i.quantity
}

// UnitPrice returns the price per unit.
func (i *Item) UnitPrice() decimal.Decimal {
	return i.unitPrice
}

// Subtotal returns quantity × unitPrice for this line item.
func (i *Item) Subtotal() decimal.Decimal {
	return i.unitPrice.Mul(decimal.NewFromInt(int64(i.quantity)))
}

// setID validates and sets the item's unique identifier.
// This is a private method used only during construction.
func (i *Item) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	i.id = id
	return nil
}

// setSku validates and sets the product identifier.
// This is a private method used only during construction.
func (i *Item) setSku(sku string) error {
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}
	i.sku = sku
	return nil
}

// setQuantity validates and sets the quantity.
// Quantity must be positive (greater than 0).
// This is a private method used only during construction.
func (i *Item) setQuantity(quantity int) error {
	if quantity <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("quantity", fmt.Errorf("%d is not greater than 0", quantity))
	}
	i.quantity = quantity
	return nil
}

// setUnitPrice validates and sets the unit price.
// Unit price must not be negative.
// This is a private method used only during construction.
func (i *Item) setUnitPrice(unitPrice decimal.Decimal) error {
	if unitPrice.IsNegative() {
		return errs.NewValueIsInvalidErrorWithCause("unitPrice", fmt.Errorf("%s is negative", unitPrice))
	}
	i.unitPrice = unitPrice
	return nil
}
