// Package orderrepo provides data transfer objects and mapping functions for order persistence.
// This package implements the repository pattern for the order domain aggregate, handling
// the conversion between domain entities and database representations.
package orderrepo

import (
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// OrderDTO represents the database structure for persisting order aggregates.
// Maps order domain entities to relational database tables. The version column
// carries the optimistic concurrency token; timestamps are managed by the
// domain layer, so GORM's automatic time tracking is disabled.
type OrderDTO struct {
	ID          uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CustomerID  string          `gorm:"type:varchar(255);not null;index"`
	Status      int             `gorm:"not null;index"`
	TotalAmount decimal.Decimal `gorm:"type:decimal(18,2);not null"`
	CreatedAt   time.Time       `gorm:"autoCreateTime:false"`
	UpdatedAt   time.Time       `gorm:"autoUpdateTime:false"`
	Version     int64           `gorm:"not null"`
	Items       []OrderItemDTO  `gorm:"foreignKey:OrderID;constraint:OnDelete:CASCADE"`
}

// TableName specifies the database table name for order entities.
// Overrides GORM's default naming convention to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// OrderItemDTO represents the database structure for persisting order line items.
// Links to its order via foreign key.
type OrderItemDTO struct {
	ID        uuid.UUID       `gorm:"type:uuid;primaryKey"`
	OrderID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Sku       string          `gorm:"type:varchar(255);not null"`
	Quantity  int             `gorm:"not null"`
	UnitPrice decimal.Decimal `gorm:"type:decimal(18,2);not null"`
}

// TableName specifies the database table name for line item entities.
// Overrides GORM's default naming convention to use "order_items".
func (OrderItemDTO) TableName() string {
	return "order_items"
}

// fromDomain converts an order domain aggregate to its database representation.
// Maps the order header and every line item.
func fromDomain(aggregate *order.Order) OrderDTO {
	orderID := aggregate.ID().Bytes()
	items := make([]OrderItemDTO, 0, len(aggregate.Items()))

	for _, item := range aggregate.Items() {
		items = append(items, OrderItemDTO{
			ID:        item.ID().Bytes(),
			OrderID:   orderID,
			Sku:       item.Sku(),
			Quantity:  item.Quantity(),
			UnitPrice: item.UnitPrice(),
		})
	}

	return OrderDTO{
		ID:          orderID,
		CustomerID:  aggregate.CustomerID(),
		Status:      int(aggregate.Status()),
		TotalAmount: aggregate.TotalAmount(),
		CreatedAt:   aggregate.CreatedAt(),
		UpdatedAt:   aggregate.UpdatedAt(),
		Version:     aggregate.Version(),
		Items:       items,
	}
}

// toDomain converts a database DTO to an order domain aggregate.
// Reconstructs the complete aggregate including line items using RestoreOrder.
func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]*order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		itemID, err := kernel.UUIDFromBytes(itemDTO.ID[:])
		if err != nil {
			return nil, err
		}

		item, err := order.NewItem(itemID, itemDTO.Sku, itemDTO.Quantity, itemDTO.UnitPrice)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	orderID, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(
		orderID,
		dto.CustomerID,
		order.Status(dto.Status),
		items,
		dto.CreatedAt,
		dto.UpdatedAt,
		dto.Version,
	)
}
