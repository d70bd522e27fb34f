package services

import (
	"fmt"
	"time"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/pkg/errs"
)

// OrderLifecycle applies the order transitions that also change the wand, so the two
// aggregates always move in lockstep:
//
//	Place:  order created Pending, wand reserved (still Available)
//	Pay:    order Paid, wand Sold
//	Cancel: order Cancelled, wand Available with the reservation cleared
//	Delete: a Pending order's reservation is dropped
//
// Both aggregates are checked before either is mutated.
type OrderLifecycle struct{}

func NewOrderLifecycle() OrderLifecycle {
	return OrderLifecycle{}
}

// PlaceOrderParams carries the customer-provided order data.
type PlaceOrderParams struct {
	OrderID    kernel.UUID
	WizardID   kernel.UUID
	PaymentRef string
	Provider   order.Provider
	Address    kernel.Address
	CreatedAt  time.Time
}

// Place creates a Pending order for w and claims it. An already claimed wand yields
// an AllocationConflict; a Sold or Deactivated one an InvalidState.
func (OrderLifecycle) Place(p PlaceOrderParams, w *wand.Wand) (*order.Order, error) {
	if err := w.Validate(); err != nil {
		return nil, err
	}
	if w.Status() != wand.Available {
		return nil, errs.NewInvalidStateError("wand", w.Status().String(), "order")
	}
	if !w.IsAllocatable() {
		return nil, errs.NewAllocationConflictError(w.ID().String(), nil)
	}

	o, err := order.NewOrder(p.OrderID, p.WizardID, w.ID(), p.PaymentRef, p.Provider, p.Address, p.CreatedAt)
	if err != nil {
		return nil, err
	}
	if err := w.Reserve(o.ID()); err != nil {
		return nil, err
	}
	return o, nil
}

// Pay marks the order Paid and the wand Sold.
func (OrderLifecycle) Pay(o *order.Order, w *wand.Wand) error {
	if err := checkPair(o, w); err != nil {
		return err
	}
	if _, err := o.Status().Pay(); err != nil {
		return err
	}
	if _, err := w.Status().Sell(); err != nil {
		return err
	}

	if err := w.Sell(o.ID()); err != nil {
		return err
	}
	return o.Pay()
}

// Cancel marks the order Cancelled and returns the wand to stock.
func (OrderLifecycle) Cancel(o *order.Order, w *wand.Wand) error {
	if err := checkPair(o, w); err != nil {
		return err
	}
	if _, err := o.Status().Cancel(); err != nil {
		return err
	}
	if _, err := w.Status().Release(); err != nil {
		return err
	}

	if err := w.Release(o.ID()); err != nil {
		return err
	}
	return o.Cancel()
}

// Delete checks that the order may be removed administratively (Pending, Cancelled or
// Refunded) and frees the wand claim of a Pending order. The returned wand is nil
// when nothing about it changed.
func (l OrderLifecycle) Delete(o *order.Order, w *wand.Wand) (*wand.Wand, error) {
	if err := o.CanDelete(); err != nil {
		return nil, err
	}
	return l.Discard(o, w)
}

// Discard prepares an order for removal as part of a cascade. An order that a Sold
// wand still belongs to blocks the removal: Paid, Dispatched, Delivered and
// Completed orders always, Refunded ones while the wand stays Sold. w must be set
// whenever WandNeeded reports true.
func (OrderLifecycle) Discard(o *order.Order, w *wand.Wand) (*wand.Wand, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if o.Status().HoldsSale() {
		return nil, errs.NewInvalidStateError("order", o.Status().String(), "delete")
	}
	if w == nil {
		return nil, nil
	}
	if err := checkPair(o, w); err != nil {
		return nil, err
	}

	claimed := w.ReservedBy() != nil && w.ReservedBy().IsEqual(o.ID())
	if !claimed {
		return nil, nil
	}
	if w.Status() == wand.Sold {
		return nil, errs.NewInvalidStateError("order", o.Status().String(), "delete sold wand of")
	}
	if o.Status() != order.Pending {
		return nil, nil
	}
	if err := w.ReleaseReservation(o.ID()); err != nil {
		return nil, err
	}
	return w, nil
}

// WandNeeded reports whether Delete and Discard have to see the order's wand.
func (OrderLifecycle) WandNeeded(o *order.Order) bool {
	return o.Status() == order.Pending || o.Status() == order.Refunded
}

func checkPair(o *order.Order, w *wand.Wand) error {
	if err := o.Validate(); err != nil {
		return err
	}
	if err := w.Validate(); err != nil {
		return err
	}
	if !o.WandID().IsEqual(w.ID()) {
		return errs.NewValueIsInvalidErrorWithCause(
			"wand",
			fmt.Errorf("order %s references wand %s, got %s", o.ID(), o.WandID(), w.ID()),
		)
	}
	return nil
}
