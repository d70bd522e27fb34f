package order

import (
	"fmt"
	"strings"

	"wandshop/internal/pkg/errs"
)

// Status is the lifecycle state of an order.
//
//	Pending ──> Paid ──> Dispatched ──> Delivered ──> Completed ──> Refunded
//	             │           │              │                          ▲
//	             └───────────┴──────────────┴──> Cancelled ────────────┘
//
// Cancel is deliberately rejected from Pending: an unpaid order is deleted, not cancelled.
type Status int

const (
	// Unknown (0) catches uninitialized values.
	Unknown Status = iota
	Pending
	Paid
	Dispatched
	Delivered
	Completed
	Cancelled
	Refunded
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:    "Unknown",
		Pending:    "Pending",
		Paid:       "Paid",
		Dispatched: "Dispatched",
		Delivered:  "Delivered",
		Completed:  "Completed",
		Cancelled:  "Cancelled",
		Refunded:   "Refunded",
	}
}

// AllStatuses lists every valid status in lifecycle order.
func AllStatuses() []Status {
	return []Status{Pending, Paid, Dispatched, Delivered, Completed, Cancelled, Refunded}
}

// ParseStatus resolves a status name case-insensitively.
func ParseStatus(s string) (Status, error) {
	for _, status := range AllStatuses() {
		if strings.EqualFold(status.String(), strings.TrimSpace(s)) {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate rejects Unknown and out-of-range values, e.g. from a corrupted row.
func (s Status) Validate() error {
	if s <= Unknown || s > Refunded {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// IsInFlight reports whether the order holds a sold wand that can still be cancelled.
func (s Status) IsInFlight() bool {
	return s == Paid || s == Dispatched || s == Delivered
}

// HoldsSale reports whether the order is the one a Sold wand belongs to.
func (s Status) HoldsSale() bool {
	return s.IsInFlight() || s == Completed
}

// ClaimsWand reports whether the order keeps its wand from being ordered again.
// Storage enforces at most one such order per wand.
func (s Status) ClaimsWand() bool {
	return s == Pending || s.HoldsSale()
}

// ActiveStatuses lists the statuses for which ClaimsWand is true.
func ActiveStatuses() []Status {
	return []Status{Pending, Paid, Dispatched, Delivered, Completed}
}

// IsDeletable reports whether an administrative delete is allowed.
func (s Status) IsDeletable() bool {
	return s == Pending || s == Cancelled || s == Refunded
}

// HasTracking reports whether the status requires a tracking number.
func (s Status) HasTracking() bool {
	return s == Dispatched || s == Delivered || s == Completed
}

func (s Status) Pay() (Status, error) {
	return s.transition("pay", Paid, Pending)
}

func (s Status) Dispatch() (Status, error) {
	return s.transition("dispatch", Dispatched, Paid)
}

func (s Status) Deliver() (Status, error) {
	return s.transition("deliver", Delivered, Dispatched)
}

func (s Status) Complete() (Status, error) {
	return s.transition("complete", Completed, Delivered)
}

func (s Status) Cancel() (Status, error) {
	return s.transition("cancel", Cancelled, Paid, Dispatched, Delivered)
}

func (s Status) Refund() (Status, error) {
	return s.transition("refund", Refunded, Cancelled, Completed)
}

func (s Status) transition(action string, to Status, from ...Status) (Status, error) {
	for _, allowed := range from {
		if s == allowed {
			return to, nil
		}
	}
	return Unknown, errs.NewInvalidStateError("order", s.String(), action)
}
