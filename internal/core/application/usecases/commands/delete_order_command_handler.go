package commands

import (
	"context"

	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/core/domain/services"
)

// DeleteOrderCommandHandler removes an order administratively. A Pending order's
// wand claim is released in the same transaction; a Refunded order whose wand is
// still Sold is kept.
type DeleteOrderCommandHandler struct {
	uowFactory OrderWandUoWFactory
	lifecycle  services.OrderLifecycle
}

func NewDeleteOrderCommandHandler(uowFactory OrderWandUoWFactory) DeleteOrderCommandHandler {
	return DeleteOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h DeleteOrderCommandHandler) Handle(ctx context.Context, cmd DeleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	wandRepo := uow.WandRepository()

	o, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	var w *wand.Wand
	if h.lifecycle.WandNeeded(o) {
		if w, err = wandRepo.Get(ctx, o.WandID()); err != nil {
			return err
		}
	}

	released, err := h.lifecycle.Delete(o, w)
	if err != nil {
		return err
	}

	if released != nil {
		if err = wandRepo.Update(ctx, released); err != nil {
			return err
		}
	}

	if err = orderRepo.Delete(ctx, o.ID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
