package memory

import (
	"context"
	"fmt"
	"slices"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/pkg/errs"
)

type WandRepository struct {
	uow *UnitOfWork
}

func (r *WandRepository) Get(_ context.Context, id kernel.UUID) (*wand.Wand, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var rec wandRecord
	var ok bool
	r.uow.read(func(s *state) {
		rec, ok = s.wands[id]
	})
	if !ok {
		return nil, errs.NewObjectNotFoundError("wand", id.String())
	}
	return wand.RestoreWand(id, rec.details, rec.status, rec.reservedBy, rec.version)
}

func (r *WandRepository) Add(ctx context.Context, aggregate *wand.Wand) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(ctx, func(s *state) error {
		if _, exists := s.wands[aggregate.ID()]; exists {
			return errs.NewValueIsInvalidErrorWithCause("wand id", fmt.Errorf("wand %s already exists", aggregate.ID()))
		}
		s.wands[aggregate.ID()] = toRecord(aggregate, aggregate.Version())
		return nil
	})
}

func (r *WandRepository) Update(ctx context.Context, aggregate *wand.Wand) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	err := r.uow.write(ctx, func(s *state) error {
		current, ok := s.wands[aggregate.ID()]
		if !ok {
			return errs.NewObjectNotFoundError("wand", aggregate.ID().String())
		}
		if current.version != aggregate.Version() {
			return errs.NewConcurrentModificationError("wand", aggregate.ID().String())
		}
		s.wands[aggregate.ID()] = toRecord(aggregate, aggregate.Version()+1)
		return nil
	})
	if err != nil {
		return err
	}

	aggregate.IncrementVersion()
	return nil
}

func (r *WandRepository) CountAllocatable(_ context.Context) (int, error) {
	return len(r.allocatableIDs()), nil
}

func (r *WandRepository) GetAllocatableAt(ctx context.Context, offset int) (*wand.Wand, error) {
	ids := r.allocatableIDs()
	if offset < 0 || offset >= len(ids) {
		return nil, errs.NewObjectNotFoundError("wand", fmt.Sprintf("allocatable #%d", offset))
	}
	return r.Get(ctx, ids[offset])
}

func (r *WandRepository) allocatableIDs() []kernel.UUID {
	var ids []kernel.UUID
	r.uow.read(func(s *state) {
		for id, rec := range s.wands {
			if rec.status == wand.Available && rec.reservedBy == nil {
				ids = append(ids, id)
			}
		}
	})
	slices.SortFunc(ids, kernel.UUID.Compare)
	return ids
}

func toRecord(w *wand.Wand, version int) wandRecord {
	var reservedBy *kernel.UUID
	if id := w.ReservedBy(); id != nil {
		copied := *id
		reservedBy = &copied
	}
	return wandRecord{
		details:    w.Details(),
		status:     w.Status(),
		reservedBy: reservedBy,
		version:    version,
	}
}
