package temporal

import (
	"context"
	"errors"

	"wandshop/internal/core/application/usecases/commands"
	"wandshop/internal/core/domain/model/kernel"

	"go.temporal.io/sdk/activity"
)

// DeliverOrderActivityName delivers one dispatched order.
const DeliverOrderActivityName = "orders.activities.DeliverOrder"

type DeliverOrderHandler interface {
	Handle(ctx context.Context, cmd commands.DeliverOrderCommand) error
}

type Activities struct {
	deliver DeliverOrderHandler
}

func NewActivities(deliver DeliverOrderHandler) *Activities {
	return &Activities{deliver: deliver}
}

// DeliverOrder re-reads the order and delivers it if it is still Dispatched.
// Any other state is a silent no-op.
func (a *Activities) DeliverOrder(ctx context.Context, orderID string) error {
	logger := activity.GetLogger(ctx)
	if a == nil || a.deliver == nil {
		return errors.New("deliver order activity not initialized")
	}

	id, err := kernel.UUIDFromString(orderID)
	if err != nil {
		return err
	}
	cmd, err := commands.NewDeliverOrderCommand(id)
	if err != nil {
		return err
	}

	err = a.deliver.Handle(ctx, cmd)
	switch {
	case errors.Is(err, commands.ErrOrderNotDispatched):
		logger.Info("order no longer dispatched; nothing to deliver", "orderId", orderID)
		return nil
	case err != nil:
		logger.Error("DeliverOrder activity failed", "orderId", orderID, "error", err)
		return err
	}

	logger.Info("order delivered", "orderId", orderID)
	return nil
}
