package commands

import (
	"context"

	"wandshop/internal/core/domain/model/order"
)

type CompleteOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewCompleteOrderCommandHandler(uowFactory OrderUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{uowFactory: uowFactory}
}

func (h CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return applyToOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Complete)
}
