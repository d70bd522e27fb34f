package wand

import (
	"errors"
	"fmt"
	"strings"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/errs"
	"wandshop/internal/pkg/guard"

	"github.com/shopspring/decimal"
)

var ErrWandIsNotConstructed = errors.New("Wand must be created via NewWand constructor")

// Details are the descriptive catalogue attributes of a wand.
type Details struct {
	Name        string
	Wood        string
	Core        string
	Length      decimal.Decimal // inches
	Flexibility string
	Price       decimal.Decimal
}

// Wand is the inventory record of a single physical wand.
//
// A wand is claimed (reserved) by exactly one order at creation while staying
// Available, becomes Sold when that order is paid, and returns to Available with
// the reservation cleared when the order is cancelled. Only the order lifecycle
// writes status and reservation.
type Wand struct {
	id         kernel.UUID
	details    Details
	status     Status
	reservedBy *kernel.UUID
	version    int
	guard      guard.ConstructorGuard
}

// NewWand creates an Available, unreserved wand.
func NewWand(id kernel.UUID, details Details) (*Wand, error) {
	w := &Wand{
		status: Available,
		guard:  guard.NewConstructorGuard(),
	}
	if err := errors.Join(w.setID(id), w.setDetails(details)); err != nil {
		return nil, err
	}
	return w, nil
}

// RestoreWand rebuilds a wand from storage.
func RestoreWand(
	id kernel.UUID,
	details Details,
	status Status,
	reservedBy *kernel.UUID,
	version int,
) (*Wand, error) {
	w := &Wand{
		version: version,
		guard:   guard.NewConstructorGuard(),
	}

	if err := errors.Join(w.setID(id), w.setDetails(details), status.Validate()); err != nil {
		return nil, err
	}
	if reservedBy != nil {
		if err := reservedBy.Validate(); err != nil {
			return nil, err
		}
	}
	if status == Sold && reservedBy == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause("reserved by", fmt.Errorf("a sold wand must reference its order"))
	}
	if status == Deactivated && reservedBy != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("reserved by", fmt.Errorf("a deactivated wand cannot be reserved"))
	}

	w.status = status
	w.reservedBy = reservedBy
	return w, nil
}

func (w *Wand) Validate() error {
	if w == nil {
		return ErrWandIsNotConstructed
	}
	return w.guard.Validate(ErrWandIsNotConstructed)
}

func (w *Wand) IsEqual(other *Wand) bool {
	return other != nil && w.id.IsEqual(other.id)
}

func (w *Wand) ID() kernel.UUID          { return w.id }
func (w *Wand) Details() Details         { return w.details }
func (w *Wand) Status() Status           { return w.status }
func (w *Wand) ReservedBy() *kernel.UUID { return w.reservedBy }
func (w *Wand) Version() int             { return w.version }

// IncrementVersion is called by repositories after a successful conditional update.
func (w *Wand) IncrementVersion() {
	w.version++
}

// IsAllocatable reports whether the wand can be claimed by a new order.
func (w *Wand) IsAllocatable() bool {
	return w.status == Available && w.reservedBy == nil
}

// Reserve claims the wand for a new order. A wand already claimed by another order
// yields an AllocationConflict so the caller may retry with a different wand.
func (w *Wand) Reserve(orderID kernel.UUID) error {
	if err := orderID.Validate(); err != nil {
		return err
	}
	if w.status != Available {
		return errs.NewInvalidStateError("wand", w.status.String(), "reserve")
	}
	if w.reservedBy != nil {
		return errs.NewAllocationConflictError(w.id.String(), nil)
	}
	w.reservedBy = &orderID
	return nil
}

// Sell marks the wand Sold for the order holding the reservation.
func (w *Wand) Sell(orderID kernel.UUID) error {
	if err := w.requireReservedBy(orderID, "sell"); err != nil {
		return err
	}
	next, err := w.status.Sell()
	if err != nil {
		return err
	}
	w.status = next
	return nil
}

// Release makes a sold wand Available again and clears the reservation.
func (w *Wand) Release(orderID kernel.UUID) error {
	if err := w.requireReservedBy(orderID, "release"); err != nil {
		return err
	}
	next, err := w.status.Release()
	if err != nil {
		return err
	}
	w.status = next
	w.reservedBy = nil
	return nil
}

// ReleaseReservation drops the claim of an unpaid order that is being deleted.
func (w *Wand) ReleaseReservation(orderID kernel.UUID) error {
	if err := w.requireReservedBy(orderID, "release reservation of"); err != nil {
		return err
	}
	if w.status != Available {
		return errs.NewInvalidStateError("wand", w.status.String(), "release reservation of")
	}
	w.reservedBy = nil
	return nil
}

func (w *Wand) requireReservedBy(orderID kernel.UUID, action string) error {
	if w.reservedBy == nil || !w.reservedBy.IsEqual(orderID) {
		return errs.NewInvalidStateError("wand", w.reservationState(), action)
	}
	return nil
}

func (w *Wand) reservationState() string {
	if w.reservedBy == nil {
		return w.status.String() + ", unreserved"
	}
	return w.status.String() + ", reserved by " + w.reservedBy.String()
}

func (w *Wand) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	w.id = id
	return nil
}

func (w *Wand) setDetails(d Details) error {
	d.Name = strings.TrimSpace(d.Name)
	if d.Name == "" {
		return errs.NewValueIsRequiredError("wand name")
	}
	if d.Price.IsNegative() {
		return errs.NewValueIsOutOfRangeError("wand price", d.Price.String(), 0, "unbounded")
	}
	if d.Length.IsNegative() {
		return errs.NewValueIsOutOfRangeError("wand length", d.Length.String(), 0, "unbounded")
	}
	w.details = d
	return nil
}
