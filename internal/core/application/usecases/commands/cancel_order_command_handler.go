package commands

import (
	"context"

	"wandshop/internal/core/domain/services"
)

// CancelOrderCommandHandler cancels an in-flight order and returns its wand to stock
// in one transaction.
type CancelOrderCommandHandler struct {
	uowFactory OrderWandUoWFactory
	lifecycle  services.OrderLifecycle
}

func NewCancelOrderCommandHandler(uowFactory OrderWandUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	w, err := wandRepo.Get(ctx, o.WandID())
	if err != nil {
		return err
	}

	if err = h.lifecycle.Cancel(o, w); err != nil {
		return err
	}

	if err = wandRepo.Update(ctx, w); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
