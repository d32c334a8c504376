package queries

import (
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var (
	ErrGetOrderQueryIsNotConstructed = errors.New(
		"GetOrderQuery must be created via NewGetOrderQuery constructor",
	)
)

// GetOrderQuery retrieves a single order with its line items.
//
// Example:
//
//	query, _ := NewGetOrderQuery(orderID)
//	handler := NewGetOrderQueryHandler(db)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    return fmt.Errorf("failed to get order: %w", err)
//	}
//	if resp == nil {
//	    // order does not exist
//	}
type GetOrderQuery struct {
	orderID kernel.UUID

	guard guard.ConstructorGuard
}

// NewGetOrderQuery creates a query to retrieve an order by its identifier.
// Validates that the order ID is valid.
func NewGetOrderQuery(orderID kernel.UUID) (GetOrderQuery, error) {
	if err := orderID.Validate(); err != nil {
		return GetOrderQuery{}, err
	}

	return GetOrderQuery{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

// Validate ensures the query was created through the constructor.
// Returns ErrGetOrderQueryIsNotConstructed if validation fails.
func (q GetOrderQuery) Validate() error {
	return q.guard.Validate(ErrGetOrderQueryIsNotConstructed)
}

// OrderID returns the identifier of the order to retrieve.
func (q GetOrderQuery) OrderID() kernel.UUID {
	return q.orderID
}

// GetOrderQueryResponse represents a full order snapshot for read clients:
// header fields, the revision number, and every line item.
type GetOrderQueryResponse struct {
	ID          kernel.UUID
	CustomerID  string
	Status      string
	TotalAmount decimal.Decimal
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Version     int64
	Items       []GetOrderItemResponse
}

// GetOrderItemResponse represents a single line item within an order snapshot.
type GetOrderItemResponse struct {
	ID        kernel.UUID
	Sku       string
	Quantity  int
	UnitPrice decimal.Decimal
}
