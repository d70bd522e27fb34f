package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/kernel"
)

var ErrDeleteOrderCommandIsNotConstructed = errors.New("DeleteOrderCommand must be created via NewDeleteOrderCommand constructor")

// DeleteOrderCommand removes a Pending, Cancelled or Refunded order. A Pending order's wand claim is released.
type DeleteOrderCommand struct {
	orderCommand
}

func NewDeleteOrderCommand(orderID kernel.UUID) (DeleteOrderCommand, error) {
	base, err := newOrderCommand(orderID)
	if err != nil {
		return DeleteOrderCommand{}, err
	}
	return DeleteOrderCommand{orderCommand: base}, nil
}

func (c DeleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrDeleteOrderCommandIsNotConstructed)
}
