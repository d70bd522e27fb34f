package commands

import (
	"context"

	"wandshop/internal/core/domain/services"
)

// PayOrderCommandHandler moves an order to Paid and its wand to Sold in one transaction.
type PayOrderCommandHandler struct {
	uowFactory OrderWandUoWFactory
	lifecycle  services.OrderLifecycle
}

func NewPayOrderCommandHandler(uowFactory OrderWandUoWFactory) PayOrderCommandHandler {
	return PayOrderCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h PayOrderCommandHandler) Handle(ctx context.Context, cmd PayOrderCommand) error {
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

	if err = h.lifecycle.Pay(o, w); err != nil {
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
