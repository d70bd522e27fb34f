package commands

import (
	"context"

	"wandshop/internal/core/domain/model/order"
)

// RefundOrderCommandHandler refunds Cancelled or Completed orders. The wand is not
// touched: a cancelled order already returned it, a completed one keeps it Sold.
type RefundOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewRefundOrderCommandHandler(uowFactory OrderUoWFactory) RefundOrderCommandHandler {
	return RefundOrderCommandHandler{uowFactory: uowFactory}
}

func (h RefundOrderCommandHandler) Handle(ctx context.Context, cmd RefundOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}
	return applyToOrder(ctx, h.uowFactory, cmd.OrderID(), (*order.Order).Refund)
}
