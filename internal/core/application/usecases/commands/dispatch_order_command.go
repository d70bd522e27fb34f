package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/kernel"
)

var ErrDispatchOrderCommandIsNotConstructed = errors.New("DispatchOrderCommand must be created via NewDispatchOrderCommand constructor")

// DispatchOrderCommand hands a Paid order to shipping and schedules its automatic delivery.
type DispatchOrderCommand struct {
	orderCommand
}

func NewDispatchOrderCommand(orderID kernel.UUID) (DispatchOrderCommand, error) {
	base, err := newOrderCommand(orderID)
	if err != nil {
		return DispatchOrderCommand{}, err
	}
	return DispatchOrderCommand{orderCommand: base}, nil
}

func (c DispatchOrderCommand) Validate() error {
	return c.guard.Validate(ErrDispatchOrderCommandIsNotConstructed)
}
