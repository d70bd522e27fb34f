package commands

import (
	"context"

	"wandshop/internal/core/domain/model/order"
)

// DeliverOrderCommandHandler performs the automatic Dispatched -> Delivered step.
// An order that moved on in the meantime (cancelled, or delivered by a previous
// attempt) yields ErrOrderNotDispatched and is left untouched.
type DeliverOrderCommandHandler struct {
	uowFactory OrderUoWFactory
}

func NewDeliverOrderCommandHandler(uowFactory OrderUoWFactory) DeliverOrderCommandHandler {
	return DeliverOrderCommandHandler{uowFactory: uowFactory}
}

func (h DeliverOrderCommandHandler) Handle(ctx context.Context, cmd DeliverOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return applyToOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		if o.Status() != order.Dispatched {
			return ErrOrderNotDispatched
		}
		return o.Deliver()
	})
}
