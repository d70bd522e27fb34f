package memory

import (
	"context"
	"fmt"
	"slices"
	"time"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/pkg/errs"
)

type OrderRepository struct {
	uow *UnitOfWork
}

func (r *OrderRepository) Get(_ context.Context, id kernel.UUID) (*order.Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var snap order.Snapshot
	var ok bool
	r.uow.read(func(s *state) {
		snap, ok = s.orders[id]
	})
	if !ok {
		return nil, errs.NewObjectNotFoundError("order", id.String())
	}
	return order.RestoreOrder(snap)
}

func (r *OrderRepository) Add(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snap := aggregate.Snapshot()
	err := r.uow.write(ctx, func(s *state) error {
		if _, exists := s.orders[snap.ID]; exists {
			return errs.NewValueIsInvalidErrorWithCause("order id", fmt.Errorf("order %s already exists", snap.ID))
		}
		if err := checkWandFree(s, snap); err != nil {
			return err
		}
		s.orders[snap.ID] = snap
		return nil
	})
	if err != nil {
		return err
	}

	r.uow.afterWrite(ctx, aggregate.ID(), aggregate)
	return nil
}

func (r *OrderRepository) Update(ctx context.Context, aggregate *order.Order) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	snap := aggregate.Snapshot()
	snap.Version++
	err := r.uow.write(ctx, func(s *state) error {
		current, ok := s.orders[snap.ID]
		if !ok {
			return errs.NewObjectNotFoundError("order", snap.ID.String())
		}
		if current.Version != aggregate.Version() {
			return errs.NewConcurrentModificationError("order", snap.ID.String())
		}
		if err := checkWandFree(s, snap); err != nil {
			return err
		}
		s.orders[snap.ID] = snap
		return nil
	})
	if err != nil {
		return err
	}

	aggregate.IncrementVersion()
	r.uow.afterWrite(ctx, aggregate.ID(), aggregate)
	return nil
}

func (r *OrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	return r.uow.write(ctx, func(s *state) error {
		if _, ok := s.orders[id]; !ok {
			return errs.NewObjectNotFoundError("order", id.String())
		}
		delete(s.orders, id)
		return nil
	})
}

func (r *OrderRepository) GetAllByStatuses(_ context.Context, statuses []order.Status) ([]*order.Order, error) {
	return r.find(func(snap order.Snapshot) bool {
		return len(statuses) == 0 || slices.Contains(statuses, snap.Status)
	})
}

func (r *OrderRepository) GetAllDispatchedBefore(_ context.Context, t time.Time) ([]*order.Order, error) {
	return r.find(func(snap order.Snapshot) bool {
		return snap.Status == order.Dispatched && snap.DispatchedAt != nil && snap.DispatchedAt.Before(t)
	})
}

func (r *OrderRepository) GetAllByWizard(_ context.Context, wizardID kernel.UUID) ([]*order.Order, error) {
	return r.find(func(snap order.Snapshot) bool {
		return snap.WizardID.IsEqual(wizardID)
	})
}

// find returns matching orders oldest first, ties broken by identifier.
func (r *OrderRepository) find(match func(order.Snapshot) bool) ([]*order.Order, error) {
	var snaps []order.Snapshot
	r.uow.read(func(s *state) {
		for _, snap := range s.orders {
			if match(snap) {
				snaps = append(snaps, snap)
			}
		}
	})

	slices.SortFunc(snaps, func(a, b order.Snapshot) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return a.ID.Compare(b.ID)
	})

	orders := make([]*order.Order, 0, len(snaps))
	for _, snap := range snaps {
		o, err := order.RestoreOrder(snap)
		if err != nil {
			return nil, err
		}
		orders = append(orders, o)
	}
	return orders, nil
}

// checkWandFree mirrors the partial unique index on orders.wand_id.
func checkWandFree(s *state, snap order.Snapshot) error {
	if !snap.Status.ClaimsWand() {
		return nil
	}
	for id, other := range s.orders {
		if id == snap.ID || !other.WandID.IsEqual(snap.WandID) {
			continue
		}
		if other.Status.ClaimsWand() {
			return errs.NewAllocationConflictError(snap.WandID.String(), fmt.Errorf("order %s already holds it", id))
		}
	}
	return nil
}
