package commands

import (
	"context"
	"log/slog"
	"time"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/core/ports"
)

// DispatchOrderCommandHandler ships a Paid order: it assigns a fresh tracking number,
// records the dispatch time and, once the transaction is committed, asks the
// scheduler to deliver the order after the configured delay.
//
// Scheduling failures do not fail the dispatch. They are logged, and the overdue
// sweep (DeliverOverdueOrdersCommandHandler) picks such orders up later.
type DispatchOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	scheduler  ports.DeliveryScheduler
	delay      time.Duration
	logger     *slog.Logger
}

func NewDispatchOrderCommandHandler(
	uowFactory OrderUoWFactory,
	scheduler ports.DeliveryScheduler,
	delay time.Duration,
	logger *slog.Logger,
) DispatchOrderCommandHandler {
	return DispatchOrderCommandHandler{
		uowFactory: uowFactory,
		scheduler:  scheduler,
		delay:      delay,
		logger:     logger.With("component", "dispatch_order"),
	}
}

func (h DispatchOrderCommandHandler) Handle(ctx context.Context, cmd DispatchOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	tracking, err := kernel.NewTrackingNumber()
	if err != nil {
		return err
	}

	err = applyToOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.Dispatch(tracking, time.Now())
	})
	if err != nil {
		return err
	}

	if err = h.scheduler.ScheduleDelivery(ctx, cmd.OrderID(), h.delay); err != nil {
		h.logger.ErrorContext(ctx, "failed to schedule delivery",
			"order_id", cmd.OrderID().String(),
			"delay", h.delay,
			"error", err,
		)
	}

	return nil
}
