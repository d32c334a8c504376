package orderrepo

import (
	"context"
	"errors"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
	"orders/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormOrderRepository implements OrderRepository using GORM.
type GormOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

// aggregateTracker defines the interface for tracking aggregates.
type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

// NewGormOrderRepository creates a new GORM order repository.
func NewGormOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormOrderRepository {
	return &GormOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add saves a new order with its line items to the database.
func (r *GormOrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Update saves an existing order conditioned on the revision it was loaded at.
// The order row is overwritten only if its version column still matches the
// aggregate's version; the write also advances the version so any concurrent
// save of the same revision loses. When the condition fails the order is
// re-read to distinguish a stale revision from a deleted order.
func (r *GormOrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	dto := fromDomain(aggregate)
	result := r.db.WithContext(ctx).Model(&OrderDTO{}).
		Where("id = ? AND version = ?", dto.ID, dto.Version).
		Updates(map[string]any{
			"customer_id":  dto.CustomerID,
			"status":       dto.Status,
			"total_amount": dto.TotalAmount,
			"updated_at":   dto.UpdatedAt,
			"version":      gorm.Expr("version + 1"),
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := r.db.WithContext(ctx).Model(&OrderDTO{}).
			Where("id = ?", dto.ID).Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return errs.NewObjectNotFoundError("orderId", aggregate.ID().String())
		}
		return errs.NewConcurrencyConflictError("orderId", aggregate.ID().String())
	}

	if err := r.replaceItems(ctx, dto); err != nil {
		return err
	}

	r.tracker.TrackAggregate(aggregate.ID(), aggregate)
	return nil
}

// Get retrieves an order with its line items by ID.
func (r *GormOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto OrderDTO
	if err := r.db.WithContext(ctx).Preload("Items").First(&dto, "id = ?", id.Bytes()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("orderId", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// GetAllDraftsUpdatedBefore retrieves all Draft orders last updated before the cutoff.
// Used by the draft expiry job to find abandoned orders.
func (r *GormOrderRepository) GetAllDraftsUpdatedBefore(
	ctx context.Context,
	cutoff time.Time,
) ([]*order.Order, error) {
	var dtos []OrderDTO
	if err := r.db.WithContext(ctx).
		Preload("Items").
		Find(&dtos, "status = ? AND updated_at < ?", int(order.Draft), cutoff).Error; err != nil {
		return nil, err
	}

	orders := make([]*order.Order, 0, len(dtos))
	for _, dto := range dtos {
		o, err := toDomain(dto)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}

	return orders, nil
}

// replaceItems rewrites the order's line item rows to match the aggregate.
func (r *GormOrderRepository) replaceItems(ctx context.Context, dto OrderDTO) error {
	if err := r.db.WithContext(ctx).
		Where("order_id = ?", dto.ID).
		Delete(&OrderItemDTO{}).Error; err != nil {
		return err
	}

	if len(dto.Items) == 0 {
		return nil
	}

	return r.db.WithContext(ctx).Create(&dto.Items).Error
}
