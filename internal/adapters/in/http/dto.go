package http

import (
	"time"

	"github.com/shopspring/decimal"
)

// ErrorResponse is the JSON error body returned by all endpoints.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// CreateOrderRequest is the request body for POST /api/v1/orders.
type CreateOrderRequest struct {
	CustomerID string            `json:"customerId"`
	Items      []ItemRequestBody `json:"items"`
}

// ItemRequestBody describes one line item in a create or add-item request.
type ItemRequestBody struct {
	Sku       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}

// CreateOrderResponse is the body returned on successful order creation.
type CreateOrderResponse struct {
	ID string `json:"id"`
}

// OrderResponse is the full order snapshot returned by GET /api/v1/orders/:id.
type OrderResponse struct {
	ID          string              `json:"id"`
	CustomerID  string              `json:"customerId"`
	Status      string              `json:"status"`
	TotalAmount decimal.Decimal     `json:"totalAmount"`
	CreatedAt   time.Time           `json:"createdAt"`
	UpdatedAt   time.Time           `json:"updatedAt"`
	Version     int64               `json:"version"`
	Items       []OrderItemResponse `json:"items"`
}

// OrderItemResponse is a single line item within an order snapshot.
type OrderItemResponse struct {
	ID        string          `json:"id"`
	Sku       string          `json:"sku"`
	Quantity  int             `json:"quantity"`
	UnitPrice decimal.Decimal `json:"unitPrice"`
}
