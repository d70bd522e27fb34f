package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/errs"
)

var ErrUpdateOrderCommandIsNotConstructed = errors.New(
	"UpdateOrderCommand must be created via NewUpdateOrderCommand constructor",
)

// UpdateOrderCommand changes the payment reference and/or shipping address of a
// Pending order. Nil fields are left unchanged; at least one must be set.
type UpdateOrderCommand struct {
	orderCommand
	paymentRef *string
	address    *kernel.Address
}

func NewUpdateOrderCommand(orderID kernel.UUID, paymentRef, address *string) (UpdateOrderCommand, error) {
	base, err := newOrderCommand(orderID)
	if err != nil {
		return UpdateOrderCommand{}, err
	}
	if paymentRef == nil && address == nil {
		return UpdateOrderCommand{}, errs.NewValueIsRequiredError("payment reference or address")
	}

	cmd := UpdateOrderCommand{orderCommand: base, paymentRef: paymentRef}
	if address != nil {
		addr, addrErr := kernel.NewAddress(*address)
		if addrErr != nil {
			return UpdateOrderCommand{}, addrErr
		}
		cmd.address = &addr
	}
	return cmd, nil
}

func (c UpdateOrderCommand) Validate() error {
	return c.guard.Validate(ErrUpdateOrderCommandIsNotConstructed)
}

func (c UpdateOrderCommand) PaymentRef() *string {
	return c.paymentRef
}

func (c UpdateOrderCommand) Address() *kernel.Address {
	return c.address
}
