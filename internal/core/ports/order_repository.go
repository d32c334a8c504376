// Package ports defines repository interfaces for the orders domain.
// These interfaces establish contracts between the domain layer and infrastructure,
// enabling dependency inversion and testability.
package ports

import (
	"context"
	"time"

	"orders/internal/core/domain/model/kernel"
	"orders/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
// Any durable store that can detect conflicting concurrent writes to the
// same order satisfies it; callers must never assume a specific storage
// technology.
type OrderRepository interface {
	// Add persists a new order aggregate to storage.
	// The order must be valid and not already exist in the repository.
	// No concurrency check applies: the aggregate does not exist yet.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes to an existing order aggregate as a full
	// overwrite of its mutable fields and items, conditioned on the
	// aggregate's in-memory version still matching the stored version.
	// On match the row is updated and the stored version advances
	// atomically. On mismatch nothing is applied and a
	// ConcurrencyConflictError is returned.
	Update(ctx context.Context, aggregate *order.Order) error

	// Get retrieves an order aggregate by its unique identifier together
	// with all of its items. Returns an ObjectNotFoundError if no such
	// order exists.
	Get(ctx context.Context, id kernel.UUID) (*order.Order, error)

	// GetAllDraftsUpdatedBefore retrieves Draft orders whose last
	// mutation happened before the cutoff. Used by the stale-draft
	// expiry job.
	GetAllDraftsUpdatedBefore(ctx context.Context, cutoff time.Time) ([]*order.Order, error)
}
