package commands

import (
	"context"

	"wandshop/internal/core/domain/model/order"
)

type UpdateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewUpdateOrderCommandHandler(uowFactory OrderUoWFactory) UpdateOrderCommandHandler {
	return UpdateOrderCommandHandler{uowFactory: uowFactory}
}

func (h UpdateOrderCommandHandler) Handle(ctx context.Context, cmd UpdateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyToOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.UpdateDetails(cmd.PaymentRef(), cmd.Address())
	})
}
