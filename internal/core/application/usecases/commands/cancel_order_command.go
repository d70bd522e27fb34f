package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/kernel"
)

var ErrCancelOrderCommandIsNotConstructed = errors.New("CancelOrderCommand must be created via NewCancelOrderCommand constructor")

// CancelOrderCommand cancels a Paid, Dispatched or Delivered order and returns the wand to stock.
type CancelOrderCommand struct {
	orderCommand
}

func NewCancelOrderCommand(orderID kernel.UUID) (CancelOrderCommand, error) {
	base, err := newOrderCommand(orderID)
	if err != nil {
		return CancelOrderCommand{}, err
	}
	return CancelOrderCommand{orderCommand: base}, nil
}

func (c CancelOrderCommand) Validate() error {
	return c.guard.Validate(ErrCancelOrderCommandIsNotConstructed)
}
