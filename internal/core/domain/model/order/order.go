package order

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not created through
	// the NewOrder or RestoreOrder factory methods. This ensures all orders are properly
	// validated.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order represents a customer order. It is the aggregate root that manages
// the order lifecycle from Draft through Confirmed or Cancelled, and is
// the consistency boundary for its line items: items are created, changed,
// and removed only through the order.
//
// Order follows these invariants:
//   - Must have a valid unique identifier and a non-empty customer identifier
//   - totalAmount always equals the sum of quantity × unitPrice over all items
//   - Items and totals change only while the status is Draft
//   - Status transitions follow the Draft → Confirmed/Cancelled state machine
//   - Can only be created through NewOrder or RestoreOrder
//
// The version field is an optimistic-concurrency token. The aggregate never
// changes it; the storage layer compares and advances it atomically on every
// successful write, so a save based on a stale read is rejected.
type Order struct {
	// id is the unique identifier for the order
	id kernel.UUID

	// customerID identifies the customer who placed the order
	customerID string

	// status represents the current state in the order lifecycle
	status Status

	// items are the line items owned by this order
	items []*Item

	// totalAmount is the derived sum of all item subtotals
	totalAmount decimal.Decimal

	// createdAt is when the order was created
	createdAt time.Time

	// updatedAt is refreshed on every successful mutation
	updatedAt time.Time

	// version is the concurrency token advanced by the storage layer
	version int64

	// isConstructed ensures the order was created via a factory method
	isConstructed bool
}

// ComputeTotal sums quantity × unitPrice over the given items.
// Defined for any item list, including nil or empty (total = 0).
func ComputeTotal(items []*Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// NewOrder creates a new Order in Draft status with validation. This is the
// only way to create a valid new Order.
//
// Parameters:
//   - id: Unique identifier for the order (must be valid UUID)
//   - customerID: Customer identifier (must not be empty)
//   - items: Initial line items (at least one, unique by id, each created via NewItem)
//   - now: Creation timestamp; recorded as both createdAt and updatedAt
//
// Returns:
//   - *Order: The created order if all validations pass
//   - error: Validation error if any parameter is invalid
//
// The initial totalAmount is computed from the given items and the version
// token starts at 1.
func NewOrder(id kernel.UUID, customerID string, items []*Item, now time.Time) (*Order, error) {
	order := &Order{
		status:        Draft,
		createdAt:     now,
		updatedAt:     now,
		version:       1,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setItems(items, true),
	); err != nil {
		return nil, err
	}

	order.recomputeTotal()
	return order, nil
}

// RestoreOrder reconstructs an Order from persistence without applying the
// creation rules (a persisted Draft may legitimately have zero items after
// removals). The status must be valid and the items must each have been
// constructed via NewItem. totalAmount is recomputed from the items so the
// total invariant holds by construction.
func RestoreOrder(
	id kernel.UUID,
	customerID string,
	status Status,
	items []*Item,
	createdAt time.Time,
	updatedAt time.Time,
	version int64,
) (*Order, error) {
	order := &Order{
		createdAt:     createdAt,
		updatedAt:     updatedAt,
		version:       version,
		isConstructed: true,
	}

	if err := errors.Join(
		order.setID(id),
		order.setCustomerID(customerID),
		order.setStatus(status),
		order.setItems(items, false),
	); err != nil {
		return nil, err
	}

	order.recomputeTotal()
	return order, nil
}

// Validate ensures the Order instance was properly constructed through a
// factory method. This prevents bypassing validation by directly
// instantiating the struct.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}

	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// CustomerID returns the identifier of the customer who placed the order.
func (o *Order) CustomerID() string {
	return o.customerID
}

// Status returns the current status of the order.
func (o *Order) Status() Status {
	return o.status
}

// Items returns the order's line items. The returned slice is a copy;
// mutating it does not affect the order.
func (o *Order) Items() []*Item {
	items := make([]*Item, len(o.items))
	copy(items, o.items)
	return items
}

// TotalAmount returns the derived order total.
func (o *Order) TotalAmount() decimal.Decimal {
	return o.totalAmount
}

// CreatedAt returns when the order was created.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// UpdatedAt returns when the order was last successfully mutated.
func (o *Order) UpdatedAt() time.Time {
	return o.updatedAt
}

// Version returns the optimistic-concurrency token the order was loaded with.
func (o *Order) Version() int64 {
	return o.version
}

// AddItem appends a new line item to the order.
//
// Business rules:
//   - The order must be in Draft status
//   - The item must be valid and its id must not collide with an existing item
//
// On success the total is recomputed and updatedAt is set to now.
// A non-Draft order yields an InvalidStateError.
func (o *Order) AddItem(item *Item, now time.Time) error {
	if err := o.status.ValidateCanModifyItems(); err != nil {
		return err
	}

	if err := item.Validate(); err != nil {
		return err
	}

	for _, existing := range o.items {
		if existing.IsEqual(item) {
			return errs.NewValueIsInvalidErrorWithCause("itemId",
				errors.New("item with the same id already exists in the order"))
		}
	}

	o.items = append(o.items, item)
	o.recomputeTotal()
	o.updatedAt = now
	return nil
}

// RemoveItem removes the named line item from the order.
//
// Business rules:
//   - The order must be in Draft status
//   - The item must exist within the order
//
// On success the total is recomputed and updatedAt is set to now.
// A non-Draft order yields an InvalidStateError; a missing item yields
// an ObjectNotFoundError.
func (o *Order) RemoveItem(itemID kernel.UUID, now time.Time) error {
	if err := o.status.ValidateCanModifyItems(); err != nil {
		return err
	}

	for idx, item := range o.items {
		if item.ID().IsEqual(itemID) {
			o.items = append(o.items[:idx], o.items[idx+1:]...)
			o.recomputeTotal()
			o.updatedAt = now
			return nil
		}
	}

	return errs.NewObjectNotFoundError("itemId", itemID.String())
}

// Confirm transitions the order from Draft to Confirmed.
//
// After confirmation the order is terminal: items, totals, and status can
// no longer change. Confirming a non-Draft order yields an
// InvalidStateError and leaves the order untouched.
func (o *Order) Confirm(now time.Time) error {
	newStatus, err := o.status.Confirm()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// Cancel transitions the order from Draft to Cancelled.
//
// After cancellation the order is terminal. Cancelling a non-Draft order
// yields an InvalidStateError and leaves the order untouched.
func (o *Order) Cancel(now time.Time) error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	o.updatedAt = now
	return nil
}

// recomputeTotal re-derives totalAmount from the current item set.
// Called after every item mutation so invariant 1 always holds.
func (o *Order) recomputeTotal() {
	o.totalAmount = ComputeTotal(o.items)
}

// setID validates and sets the order's unique identifier.
// This is a private method used only during construction.
func (o *Order) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	o.id = id
	return nil
}

// setCustomerID validates and sets the customer identifier.
// This is a private method used only during construction.
func (o *Order) setCustomerID(customerID string) error {
	if customerID == "" {
		return errs.NewValueIsRequiredError("customerId")
	}
	o.customerID = customerID
	return nil
}

// setStatus validates and sets the status during restoration.
func (o *Order) setStatus(status Status) error {
	if err := status.Validate(); err != nil {
		return err
	}
	o.status = status
	return nil
}

// setItems validates and sets the item collection. requireNonEmpty is true
// for new orders, which must carry at least one item; restored orders may
// be empty. Item ids must be unique within the order.
func (o *Order) setItems(items []*Item, requireNonEmpty bool) error {
	if requireNonEmpty && len(items) == 0 {
		return errs.NewValueIsRequiredError("items")
	}

	seen := make(map[kernel.UUID]struct{}, len(items))
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
		if _, ok := seen[item.ID()]; ok {
			return errs.NewValueIsInvalidErrorWithCause("items",
				errors.New("item ids must be unique within the order"))
		}
		seen[item.ID()] = struct{}{}
	}

	o.items = make([]*Item, len(items))
	copy(o.items, items)
	return nil
}
