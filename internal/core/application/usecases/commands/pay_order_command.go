package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/kernel"
)

var ErrPayOrderCommandIsNotConstructed = errors.New("PayOrderCommand must be created via NewPayOrderCommand constructor")

// PayOrderCommand confirms payment of a Pending order; the wand becomes Sold.
type PayOrderCommand struct {
	orderCommand
}

func NewPayOrderCommand(orderID kernel.UUID) (PayOrderCommand, error) {
	base, err := newOrderCommand(orderID)
	if err != nil {
		return PayOrderCommand{}, err
	}
	return PayOrderCommand{orderCommand: base}, nil
}

func (c PayOrderCommand) Validate() error {
	return c.guard.Validate(ErrPayOrderCommandIsNotConstructed)
}
