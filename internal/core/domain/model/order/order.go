package order

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/errs"
	"wandshop/internal/pkg/guard"
)

const maxPaymentRefLength = 255

var (
	// ErrOrderIsNotConstructed is returned when an Order was not created through
	// NewOrder or RestoreOrder.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")
)

// Order is the aggregate root of the purchase lifecycle. It links one wizard to one
// wand and carries payment, shipping and review data.
//
// Invariants:
//   - Completed() is true iff the status is Completed
//   - a tracking number exists from Dispatch onwards and never before
//   - a review can be set once, only on a Completed order
//   - version grows by one with every persisted update
type Order struct {
	id       kernel.UUID
	wizardID kernel.UUID
	wandID   kernel.UUID

	paymentRef string
	provider   Provider
	address    kernel.Address

	tracking     *kernel.TrackingNumber
	createdAt    time.Time
	dispatchedAt *time.Time

	status  Status
	review  *Review
	version int

	events []ChangedEvent
	guard  guard.ConstructorGuard
}

// NewOrder creates a Pending order. The caller is responsible for claiming the wand
// in the same unit of work.
//
// Example:
//
//	addr, _ := kernel.NewAddress("4 Privet Drive, Little Whinging")
//	o, err := order.NewOrder(kernel.NewUUID(), wizardID, wandID, "pi_3Nf", order.Stripe, addr, time.Now())
//	if err != nil {
//	    return err
//	}
func NewOrder(
	id, wizardID, wandID kernel.UUID,
	paymentRef string,
	provider Provider,
	address kernel.Address,
	createdAt time.Time,
) (*Order, error) {
	o := &Order{
		status: Pending,
		guard:  guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		o.setIDs(id, wizardID, wandID),
		o.setPaymentRef(paymentRef),
		o.setProvider(provider),
		o.setAddress(address),
		o.setCreatedAt(createdAt),
	); err != nil {
		return nil, err
	}

	o.raise(Unknown)
	return o, nil
}

// Snapshot is the flat persisted form of an Order, used by storage adapters.
type Snapshot struct {
	ID             kernel.UUID
	WizardID       kernel.UUID
	WandID         kernel.UUID
	PaymentRef     string
	Provider       Provider
	Address        string
	TrackingNumber string
	CreatedAt      time.Time
	DispatchedAt   *time.Time
	Status         Status
	Completed      bool
	Review         string
	Version        int
}

// RestoreOrder rebuilds an order from storage and re-checks the cross-field invariants,
// so a corrupted row is reported instead of loaded.
func RestoreOrder(s Snapshot) (*Order, error) {
	o := &Order{
		status:       s.Status,
		version:      s.Version,
		dispatchedAt: s.DispatchedAt,
		guard:        guard.NewConstructorGuard(),
	}

	address, addrErr := kernel.NewAddress(s.Address)
	if addrErr == nil {
		addrErr = o.setAddress(address)
	}

	if err := errors.Join(
		o.setIDs(s.ID, s.WizardID, s.WandID),
		o.setPaymentRef(s.PaymentRef),
		o.setProvider(s.Provider),
		addrErr,
		o.setCreatedAt(s.CreatedAt),
		s.Status.Validate(),
	); err != nil {
		return nil, err
	}

	if s.Completed != (s.Status == Completed) {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"completed",
			fmt.Errorf("completed=%t is inconsistent with status %s", s.Completed, s.Status),
		)
	}

	if s.TrackingNumber != "" {
		tn, err := kernel.ParseTrackingNumber(s.TrackingNumber)
		if err != nil {
			return nil, err
		}
		o.tracking = &tn
	}
	if s.Status.HasTracking() && o.tracking == nil {
		return nil, errs.NewValueIsRequiredErrorWithCause(
			"tracking number",
			fmt.Errorf("status %s requires a tracking number", s.Status),
		)
	}
	if (s.Status == Pending || s.Status == Paid) && o.tracking != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause(
			"tracking number",
			fmt.Errorf("status %s cannot have a tracking number", s.Status),
		)
	}

	if s.Review != "" {
		if s.Status != Completed && s.Status != Refunded {
			return nil, errs.NewValueIsInvalidErrorWithCause(
				"review",
				fmt.Errorf("status %s cannot carry a review", s.Status),
			)
		}
		r, err := NewReview(s.Review)
		if err != nil {
			return nil, err
		}
		o.review = &r
	}

	return o, nil
}

// Snapshot returns the flat persisted form of the order.
func (o *Order) Snapshot() Snapshot {
	s := Snapshot{
		ID:           o.id,
		WizardID:     o.wizardID,
		WandID:       o.wandID,
		PaymentRef:   o.paymentRef,
		Provider:     o.provider,
		Address:      o.address.String(),
		CreatedAt:    o.createdAt,
		DispatchedAt: o.dispatchedAt,
		Status:       o.status,
		Completed:    o.Completed(),
		Version:      o.version,
	}
	if o.tracking != nil {
		s.TrackingNumber = o.tracking.String()
	}
	if o.review != nil {
		s.Review = o.review.String()
	}
	return s
}

func (o *Order) Validate() error {
	if o == nil {
		return ErrOrderIsNotConstructed
	}
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

func (o *Order) ID() kernel.UUID                        { return o.id }
func (o *Order) WizardID() kernel.UUID                  { return o.wizardID }
func (o *Order) WandID() kernel.UUID                    { return o.wandID }
func (o *Order) PaymentRef() string                     { return o.paymentRef }
func (o *Order) Provider() Provider                     { return o.provider }
func (o *Order) Address() kernel.Address                { return o.address }
func (o *Order) TrackingNumber() *kernel.TrackingNumber { return o.tracking }
func (o *Order) CreatedAt() time.Time                   { return o.createdAt }
func (o *Order) DispatchedAt() *time.Time               { return o.dispatchedAt }
func (o *Order) Status() Status                         { return o.status }
func (o *Order) Review() *Review                        { return o.review }
func (o *Order) Version() int                           { return o.version }

// Completed is derived from the status so the two can never disagree.
func (o *Order) Completed() bool {
	return o.status == Completed
}

// IncrementVersion is called by repositories after a successful conditional update.
func (o *Order) IncrementVersion() {
	o.version++
}

// DomainEvents returns the events raised since the last ClearDomainEvents.
func (o *Order) DomainEvents() []ChangedEvent {
	return o.events
}

func (o *Order) ClearDomainEvents() {
	o.events = nil
}

// Pay moves a Pending order to Paid. The caller marks the wand Sold.
func (o *Order) Pay() error {
	return o.apply(o.status.Pay)
}

// Dispatch moves a Paid order to Dispatched and records the tracking number and time.
func (o *Order) Dispatch(tracking kernel.TrackingNumber, at time.Time) error {
	if err := tracking.Validate(); err != nil {
		return err
	}
	if at.IsZero() {
		return errs.NewValueIsRequiredError("dispatched at")
	}

	if err := o.apply(o.status.Dispatch); err != nil {
		return err
	}
	at = at.UTC()
	o.tracking = &tracking
	o.dispatchedAt = &at
	return nil
}

// Deliver moves a Dispatched order to Delivered. Only the delivery scheduler calls it.
func (o *Order) Deliver() error {
	return o.apply(o.status.Deliver)
}

func (o *Order) Complete() error {
	return o.apply(o.status.Complete)
}

// Cancel is allowed from Paid, Dispatched and Delivered. The caller releases the wand.
func (o *Order) Cancel() error {
	return o.apply(o.status.Cancel)
}

func (o *Order) Refund() error {
	return o.apply(o.status.Refund)
}

// CanReview checks the review guard without changing state. Handlers call it before
// paying for a moderation round-trip.
func (o *Order) CanReview() error {
	if o.status != Completed {
		return errs.NewInvalidStateError("order", o.status.String(), "review")
	}
	if o.review != nil {
		return errs.NewInvalidStateError("order", o.status.String(), "review already reviewed")
	}
	return nil
}

// SubmitReview attaches a moderated review. Status is unchanged.
func (o *Order) SubmitReview(review Review) error {
	if err := review.Validate(); err != nil {
		return err
	}
	if err := o.CanReview(); err != nil {
		return err
	}
	o.review = &review
	return nil
}

// UpdateDetails changes the payment reference and/or shipping address of a Pending order.
// Nil arguments leave the field as is.
func (o *Order) UpdateDetails(paymentRef *string, address *kernel.Address) error {
	if o.status != Pending {
		return errs.NewInvalidStateError("order", o.status.String(), "update")
	}

	var errList []error
	if paymentRef != nil {
		errList = append(errList, o.setPaymentRef(*paymentRef))
	}
	if address != nil {
		errList = append(errList, o.setAddress(*address))
	}
	return errors.Join(errList...)
}

// CanDelete allows removing Pending orders and orders that reached Cancelled or Refunded.
func (o *Order) CanDelete() error {
	if !o.status.IsDeletable() {
		return errs.NewInvalidStateError("order", o.status.String(), "delete")
	}
	return nil
}

func (o *Order) apply(transition func() (Status, error)) error {
	next, err := transition()
	if err != nil {
		return err
	}
	prev := o.status
	o.status = next
	o.raise(prev)
	return nil
}

func (o *Order) raise(prev Status) {
	o.events = append(o.events, ChangedEvent{
		OrderID:    o.id,
		WizardID:   o.wizardID,
		WandID:     o.wandID,
		Previous:   prev,
		Status:     o.status,
		OccurredAt: time.Now().UTC(),
	})
}

func (o *Order) setIDs(id, wizardID, wandID kernel.UUID) error {
	if err := errors.Join(id.Validate(), wizardID.Validate(), wandID.Validate()); err != nil {
		return err
	}
	o.id = id
	o.wizardID = wizardID
	o.wandID = wandID
	return nil
}

func (o *Order) setPaymentRef(ref string) error {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return errs.NewValueIsRequiredError("payment reference")
	}
	if len(ref) > maxPaymentRefLength {
		return errs.NewValueIsOutOfRangeError("payment reference length", len(ref), 1, maxPaymentRefLength)
	}
	o.paymentRef = ref
	return nil
}

func (o *Order) setProvider(p Provider) error {
	if err := p.Validate(); err != nil {
		return err
	}
	o.provider = p
	return nil
}

func (o *Order) setAddress(address kernel.Address) error {
	if err := address.Validate(); err != nil {
		return err
	}
	o.address = address
	return nil
}

func (o *Order) setCreatedAt(at time.Time) error {
	if at.IsZero() {
		return errs.NewValueIsRequiredError("created at")
	}
	o.createdAt = at.UTC()
	return nil
}
