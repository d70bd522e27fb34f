// Package ports defines the contracts between the application core and its adapters:
// repositories, the unit of work and the outbound collaborators (moderation,
// deferred delivery, event publishing).
package ports

import (
	"context"
	"time"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
)

// OrderRepository defines the persistence contract for order aggregates.
type OrderRepository interface {
	Finder[*order.Order]

	// Add persists a new order. A second active order for the same wand is
	// rejected by storage.
	Add(ctx context.Context, aggregate *order.Order) error

	// Update persists changes guarded by the aggregate's version. A stale version
	// yields errs.ConcurrentModificationError and leaves storage untouched; on
	// success the aggregate's version is incremented.
	Update(ctx context.Context, aggregate *order.Order) error

	// Delete removes the order. Missing orders yield errs.ObjectNotFoundError.
	Delete(ctx context.Context, id kernel.UUID) error

	// GetAllByStatuses returns orders in any of the given statuses, oldest first.
	// An empty filter returns every order.
	GetAllByStatuses(ctx context.Context, statuses []order.Status) ([]*order.Order, error)

	// GetAllDispatchedBefore returns Dispatched orders whose dispatch time is before t.
	// Used to recover deliveries whose timers were lost.
	GetAllDispatchedBefore(ctx context.Context, t time.Time) ([]*order.Order, error)

	GetAllByWizard(ctx context.Context, wizardID kernel.UUID) ([]*order.Order, error)
}
