package queries

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GetOrderQueryHandler retrieves a single order snapshot from the database.
// Reads bypass the domain model and query the tables directly.
//
// Example:
//
//	handler := NewGetOrderQueryHandler(db)
//	query, _ := NewGetOrderQuery(orderID)
//
//	resp, err := handler.Handle(ctx, query)
//	if err != nil {
//	    log.Printf("Failed to get order: %v", err)
//	    return err
//	}
//	if resp == nil {
//	    // respond 404
//	}
type GetOrderQueryHandler struct {
	db *gorm.DB
}

// NewGetOrderQueryHandler creates a handler for single-order queries.
// Requires a GORM database connection for query execution.
func NewGetOrderQueryHandler(db *gorm.DB) GetOrderQueryHandler {
	return GetOrderQueryHandler{db: db}
}

// Handle executes the query to retrieve an order with its line items.
// Returns nil without error when the order does not exist; absence is an
// expected outcome for read clients, not a failure.
func (h GetOrderQueryHandler) Handle(
	ctx context.Context,
	query GetOrderQuery,
) (*GetOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		id          uuid.UUID
		customerID  string
		status      int
		totalAmount decimal.Decimal
		createdAt   time.Time
		updatedAt   time.Time
		version     int64
	)

	row := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			customer_id,
			status,
			total_amount,
			created_at,
			updated_at,
			version
		FROM orders
		WHERE id = ?
	`, query.OrderID().Bytes()).Row()

	err := row.Scan(&id, &customerID, &status, &totalAmount, &createdAt, &updatedAt, &version)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	orderID, err := kernel.UUIDFromBytes(id[:])
	if err != nil {
		return nil, err
	}

	items, err := h.queryItems(ctx, query.OrderID())
	if err != nil {
		return nil, err
	}

	return &GetOrderQueryResponse{
		ID:          orderID,
		CustomerID:  customerID,
		Status:      order.Status(status).String(),
		TotalAmount: totalAmount,
		CreatedAt:   createdAt,
		UpdatedAt:   updatedAt,
		Version:     version,
		Items:       items,
	}, nil
}

func (h GetOrderQueryHandler) queryItems(
	ctx context.Context,
	orderID kernel.UUID,
) ([]GetOrderItemResponse, error) {
	items := make([]GetOrderItemResponse, 0)

	rows, err := h.db.WithContext(ctx).Raw(`
		SELECT
			id,
			sku,
			quantity,
			unit_price
		FROM order_items
		WHERE order_id = ?
		ORDER BY id
	`, orderID.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var itemResp GetOrderItemResponse
		var id uuid.UUID
		var sku string
		var quantity int
		var unitPrice decimal.Decimal

		err = rows.Scan(
			&id,
			&sku,
			&quantity,
			&unitPrice,
		)
		if err != nil {
			return nil, err
		}

		itemID, idErr := kernel.UUIDFromBytes(id[:])
		if idErr != nil {
			return nil, idErr
		}
		itemResp.ID = itemID
		itemResp.Sku = sku
		itemResp.Quantity = quantity
		itemResp.UnitPrice = unitPrice
		items = append(items, itemResp)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
