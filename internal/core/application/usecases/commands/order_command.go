package commands

import (
	"context"
	"errors"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/pkg/errs"
	"wandshop/internal/pkg/guard"
)

// ErrOrderNotDispatched is returned by DeliverOrderCommandHandler when the order has
// left Dispatched before the delivery fired. Callers treat it as a no-op.
var ErrOrderNotDispatched = errors.New("order is not dispatched")

// orderCommand is the common part of the commands that address a single order.
type orderCommand struct {
	orderID kernel.UUID
	guard   guard.ConstructorGuard
}

func newOrderCommand(orderID kernel.UUID) (orderCommand, error) {
	if err := orderID.Validate(); err != nil {
		return orderCommand{}, err
	}
	return orderCommand{
		orderID: orderID,
		guard:   guard.NewConstructorGuard(),
	}, nil
}

func (c orderCommand) OrderID() kernel.UUID {
	return c.orderID
}

// mapWandConflict turns a lost conditional update on a wand into an allocation conflict.
func mapWandConflict(wandID kernel.UUID, err error) error {
	if errors.Is(err, errs.ErrConcurrentModification) {
		return errs.NewAllocationConflictError(wandID.String(), err)
	}
	return err
}

// applyToOrder loads an order, applies a wand-independent transition and persists it.
func applyToOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	transition func(o *order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()

	o, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = transition(o); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, o); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
