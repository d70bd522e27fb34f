package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/answer"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/pkg/guard"
)

var ErrCreateOrderCommandIsNotConstructed = errors.New(
	"CreateOrderCommand must be created via NewCreateOrderCommand or NewCreateOrderFromScoreCommand",
)

// CreateOrderCommand places a new Pending order either for an explicit wand or for
// the wand allocated from a quiz score.
//
// Example:
//
//	cmd, err := NewCreateOrderFromScoreCommand(kernel.NewUUID(), wizardID, 7, "pi_3Nf", "Stripe", "4 Privet Drive")
//	if err != nil {
//	    return fmt.Errorf("invalid order data: %w", err)
//	}
//	if err := handler.Handle(ctx, cmd); err != nil {
//	    return err
//	}
type CreateOrderCommand struct { //nolint:recvcheck //using for validation
	orderID    kernel.UUID
	wizardID   kernel.UUID
	wandID     *kernel.UUID
	score      *int
	paymentRef string
	provider   order.Provider
	address    kernel.Address

	guard guard.ConstructorGuard
}

// NewCreateOrderCommand targets a specific wand.
func NewCreateOrderCommand(
	orderID, wizardID, wandID kernel.UUID,
	paymentRef, provider, address string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setIDs(orderID, wizardID),
		cmd.setWandID(wandID),
		cmd.setPayment(paymentRef, provider),
		cmd.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	return cmd, nil
}

// NewCreateOrderFromScoreCommand lets the allocator pick the wand.
func NewCreateOrderFromScoreCommand(
	orderID, wizardID kernel.UUID,
	score int,
	paymentRef, provider, address string,
) (CreateOrderCommand, error) {
	cmd := CreateOrderCommand{guard: guard.NewConstructorGuard()}

	if err := errors.Join(
		cmd.setIDs(orderID, wizardID),
		cmd.setScore(score),
		cmd.setPayment(paymentRef, provider),
		cmd.setAddress(address),
	); err != nil {
		return CreateOrderCommand{}, err
	}
	return cmd, nil
}

func (c CreateOrderCommand) Validate() error {
	return c.guard.Validate(ErrCreateOrderCommandIsNotConstructed)
}

func (c CreateOrderCommand) OrderID() kernel.UUID     { return c.orderID }
func (c CreateOrderCommand) WizardID() kernel.UUID    { return c.wizardID }
func (c CreateOrderCommand) PaymentRef() string       { return c.paymentRef }
func (c CreateOrderCommand) Provider() order.Provider { return c.provider }
func (c CreateOrderCommand) Address() kernel.Address  { return c.address }

// WandID is set when the caller chose the wand.
func (c CreateOrderCommand) WandID() (kernel.UUID, bool) {
	if c.wandID == nil {
		return kernel.UUID{}, false
	}
	return *c.wandID, true
}

// Score is set when the wand is to be allocated.
func (c CreateOrderCommand) Score() (int, bool) {
	if c.score == nil {
		return 0, false
	}
	return *c.score, true
}

func (c *CreateOrderCommand) setIDs(orderID, wizardID kernel.UUID) error {
	if err := errors.Join(orderID.Validate(), wizardID.Validate()); err != nil {
		return err
	}
	c.orderID = orderID
	c.wizardID = wizardID
	return nil
}

func (c *CreateOrderCommand) setWandID(wandID kernel.UUID) error {
	if err := wandID.Validate(); err != nil {
		return err
	}
	c.wandID = &wandID
	return nil
}

func (c *CreateOrderCommand) setScore(score int) error {
	if err := answer.ValidateScore(score); err != nil {
		return err
	}
	c.score = &score
	return nil
}

func (c *CreateOrderCommand) setPayment(paymentRef, provider string) error {
	p, err := order.ParseProvider(provider)
	if err != nil {
		return err
	}
	c.paymentRef = paymentRef
	c.provider = p
	return nil
}

func (c *CreateOrderCommand) setAddress(address string) error {
	addr, err := kernel.NewAddress(address)
	if err != nil {
		return err
	}
	c.address = addr
	return nil
}
