package commands

import (
	"context"
	"errors"
	"time"

	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/core/domain/services"
	"wandshop/internal/pkg/errs"
)

// CreateOrderCommandHandler places Pending orders and claims their wand.
//
// For score-based orders the allocator picks the wand without locking; if another
// order claims it first the handler retries once with a fresh allocation before
// surfacing errs.ErrAllocationConflict. Inventory that was present when the
// request arrived but is gone once its transaction starts is reported the same way.
type CreateOrderCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.WandAllocator
	lifecycle  services.OrderLifecycle
}

func NewCreateOrderCommandHandler(uowFactory UoWFactory) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewWandAllocator(),
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	if _, fromScore := cmd.Score(); !fromScore {
		return h.create(ctx, cmd)
	}

	// committed inventory before our transaction; an empty view inside it
	// afterwards means a concurrent order took the last wand
	available, err := h.uowFactory.Create().WandRepository().CountAllocatable(ctx)
	if err != nil {
		return err
	}

	err = h.create(ctx, cmd)
	if errors.Is(err, errs.ErrNoInventory) && available > 0 {
		return errs.NewAllocationConflictError("", err)
	}
	if !isRetryableAllocation(err) {
		return err
	}

	err = h.create(ctx, cmd)
	if errors.Is(err, errs.ErrNoInventory) {
		// the wand we lost was the last one
		return errs.NewAllocationConflictError("", err)
	}
	return err
}

func (h CreateOrderCommandHandler) create(ctx context.Context, cmd CreateOrderCommand) error {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	if _, err := uow.WizardRepository().Get(ctx, cmd.WizardID()); err != nil {
		return err
	}

	wandRepo := uow.WandRepository()

	var target *wand.Wand
	var err error
	if wandID, ok := cmd.WandID(); ok {
		target, err = wandRepo.Get(ctx, wandID)
	} else {
		score, _ := cmd.Score()
		target, err = h.allocator.Allocate(ctx, score, wandRepo)
	}
	if err != nil {
		return err
	}

	o, err := h.lifecycle.Place(services.PlaceOrderParams{
		OrderID:    cmd.OrderID(),
		WizardID:   cmd.WizardID(),
		PaymentRef: cmd.PaymentRef(),
		Provider:   cmd.Provider(),
		Address:    cmd.Address(),
		CreatedAt:  time.Now(),
	}, target)
	if err != nil {
		return err
	}

	if err = wandRepo.Update(ctx, target); err != nil {
		return mapWandConflict(target.ID(), err)
	}

	if err = uow.OrderRepository().Add(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

func isRetryableAllocation(err error) bool {
	return errors.Is(err, errs.ErrAllocationConflict) || errors.Is(err, errs.ErrSelectionFailed)
}
