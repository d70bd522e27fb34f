package wand

import (
	"fmt"

	"wandshop/internal/pkg/errs"
)

// Status is the inventory state of a physical wand.
//
//	Available ──(order paid)──> Sold ──(order cancelled)──> Available
//
// Deactivated wands are withdrawn from the catalogue and never allocated or sold.
type Status int

const (
	Unknown Status = iota
	Available
	Sold
	Deactivated
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:     "Unknown",
		Available:   "Available",
		Sold:        "Sold",
		Deactivated: "Deactivated",
	}
}

func (s Status) Validate() error {
	if s <= Unknown || s > Deactivated {
		return errs.NewValueIsInvalidErrorWithCause("wand status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "Unknown"
}

// Sell transitions Available -> Sold.
func (s Status) Sell() (Status, error) {
	if s != Available {
		return Unknown, errs.NewInvalidStateError("wand", s.String(), "sell")
	}
	return Sold, nil
}

// Release transitions Sold -> Available.
func (s Status) Release() (Status, error) {
	if s != Sold {
		return Unknown, errs.NewInvalidStateError("wand", s.String(), "release")
	}
	return Available, nil
}
