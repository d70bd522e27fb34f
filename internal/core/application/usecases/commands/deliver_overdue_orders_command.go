package commands

import (
	"errors"
	"time"

	"wandshop/internal/pkg/errs"
	"wandshop/internal/pkg/guard"
)

var ErrDeliverOverdueOrdersCommandIsNotConstructed = errors.New(
	"DeliverOverdueOrdersCommand must be created via NewDeliverOverdueOrdersCommand constructor",
)

// DeliverOverdueOrdersCommand delivers every order dispatched before the cutoff.
// It recovers deliveries whose one-shot timer was lost, e.g. by a restart.
type DeliverOverdueOrdersCommand struct {
	dispatchedBefore time.Time
	guard            guard.ConstructorGuard
}

func NewDeliverOverdueOrdersCommand(dispatchedBefore time.Time) (DeliverOverdueOrdersCommand, error) {
	if dispatchedBefore.IsZero() {
		return DeliverOverdueOrdersCommand{}, errs.NewValueIsRequiredError("dispatched before")
	}
	return DeliverOverdueOrdersCommand{
		dispatchedBefore: dispatchedBefore,
		guard:            guard.NewConstructorGuard(),
	}, nil
}

func (c DeliverOverdueOrdersCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOverdueOrdersCommandIsNotConstructed)
}

func (c DeliverOverdueOrdersCommand) DispatchedBefore() time.Time {
	return c.dispatchedBefore
}
