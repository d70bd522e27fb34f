package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/kernel"
)

var ErrCompleteOrderCommandIsNotConstructed = errors.New("CompleteOrderCommand must be created via NewCompleteOrderCommand constructor")

// CompleteOrderCommand confirms receipt of a Delivered order.
type CompleteOrderCommand struct {
	orderCommand
}

func NewCompleteOrderCommand(orderID kernel.UUID) (CompleteOrderCommand, error) {
	base, err := newOrderCommand(orderID)
	if err != nil {
		return CompleteOrderCommand{}, err
	}
	return CompleteOrderCommand{orderCommand: base}, nil
}

func (c CompleteOrderCommand) Validate() error {
	return c.guard.Validate(ErrCompleteOrderCommandIsNotConstructed)
}
