package ports

import (
	"context"

	"wandshop/internal/core/domain/model/wand"
)

// WandRepository defines the persistence contract for wand inventory records.
// It also serves as the allocator's services.Inventory.
type WandRepository interface {
	Finder[*wand.Wand]

	Add(ctx context.Context, aggregate *wand.Wand) error

	// Update is a conditional write on the aggregate's version, so two claims racing
	// for the same wand cannot both succeed. The loser gets
	// errs.ConcurrentModificationError.
	Update(ctx context.Context, aggregate *wand.Wand) error

	// CountAllocatable counts Available wands without a reservation.
	CountAllocatable(ctx context.Context) (int, error)

	// GetAllocatableAt returns the allocatable wand at the zero-based offset in
	// identifier order, or errs.ObjectNotFoundError.
	GetAllocatableAt(ctx context.Context, offset int) (*wand.Wand, error)
}
