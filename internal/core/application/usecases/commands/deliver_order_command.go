package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/kernel"
)

var ErrDeliverOrderCommandIsNotConstructed = errors.New("DeliverOrderCommand must be created via NewDeliverOrderCommand constructor")

// DeliverOrderCommand marks a Dispatched order Delivered. Issued by the delivery scheduler only.
type DeliverOrderCommand struct {
	orderCommand
}

func NewDeliverOrderCommand(orderID kernel.UUID) (DeliverOrderCommand, error) {
	base, err := newOrderCommand(orderID)
	if err != nil {
		return DeliverOrderCommand{}, err
	}
	return DeliverOrderCommand{orderCommand: base}, nil
}

func (c DeliverOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeliverOrderCommandIsNotConstructed)
}
