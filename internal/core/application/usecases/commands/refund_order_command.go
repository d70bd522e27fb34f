package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/kernel"
)

var ErrRefundOrderCommandIsNotConstructed = errors.New("RefundOrderCommand must be created via NewRefundOrderCommand constructor")

// RefundOrderCommand refunds a Cancelled or Completed order.
type RefundOrderCommand struct {
	orderCommand
}

func NewRefundOrderCommand(orderID kernel.UUID) (RefundOrderCommand, error) {
	base, err := newOrderCommand(orderID)
	if err != nil {
		return RefundOrderCommand{}, err
	}
	return RefundOrderCommand{orderCommand: base}, nil
}

func (c RefundOrderCommand) Validate() error {
	return c.guard.Validate(ErrRefundOrderCommandIsNotConstructed)
}
