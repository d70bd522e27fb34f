package services

import (
	"context"
	"errors"
	"fmt"

	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/pkg/errs"
)

// Inventory is the read side the allocator needs: the number of allocatable wands
// (Available and unreserved) and the one at a zero-based offset in identifier order.
// GetAllocatableAt returns an errs.ObjectNotFoundError when the offset is past the end.
type Inventory interface {
	CountAllocatable(ctx context.Context) (int, error)
	GetAllocatableAt(ctx context.Context, offset int) (*wand.Wand, error)
}

// WandAllocator deterministically selects a wand from a quiz score.
//
// The selected wand is the allocatable wand at offset (score mod N) in identifier
// order, where N is the number of allocatable wands. Selection takes no lock;
// callers bind the result with a conditional claim (wand.Reserve plus a versioned
// update) and treat a lost race as an AllocationConflict.
//
// Example:
//
//	allocator := services.NewWandAllocator()
//	w, err := allocator.Allocate(ctx, 7, uow.WandRepository())
//	if errors.Is(err, errs.ErrNoInventory) {
//	    // nothing left to sell
//	}
type WandAllocator struct{}

func NewWandAllocator() WandAllocator {
	return WandAllocator{}
}

// Offset maps a score onto [0, available).
func (WandAllocator) Offset(score, available int) (int, error) {
	if score < 0 {
		return 0, errs.NewValueIsInvalidErrorWithCause("score", fmt.Errorf("%d is negative", score))
	}
	if available <= 0 {
		return 0, errs.ErrNoInventory
	}
	return score % available, nil
}

// Allocate counts, computes the offset and fetches. A wand that disappears between
// the two reads yields ErrSelectionFailed, which callers may retry.
func (a WandAllocator) Allocate(ctx context.Context, score int, inventory Inventory) (*wand.Wand, error) {
	available, err := inventory.CountAllocatable(ctx)
	if err != nil {
		return nil, err
	}

	offset, err := a.Offset(score, available)
	if err != nil {
		return nil, err
	}

	selected, err := inventory.GetAllocatableAt(ctx, offset)
	if errors.Is(err, errs.ErrObjectNotFound) {
		return nil, fmt.Errorf("%w: no wand at offset %d of %d", errs.ErrSelectionFailed, offset, available)
	}
	if err != nil {
		return nil, err
	}
	return selected, nil
}
