package kernel

import (
	"errors"
	"strings"
	"unicode/utf8"

	"wandshop/internal/pkg/errs"
	"wandshop/internal/pkg/guard"
)

const maxAddressLength = 512

var ErrAddressIsNotConstructed = errors.New("address must be created via NewAddress")

// Address is the shipping destination of an order. It is stored as a single
// normalized line; the shipping collaborator parses it further.
type Address struct {
	value string
	guard guard.ConstructorGuard
}

// NewAddress trims and collapses whitespace and rejects empty or oversized input.
func NewAddress(raw string) (Address, error) {
	value := strings.Join(strings.Fields(raw), " ")
	if value == "" {
		return Address{}, errs.NewValueIsRequiredError("address")
	}
	if n := utf8.RuneCountInString(value); n > maxAddressLength {
		return Address{}, errs.NewValueIsOutOfRangeError("address length", n, 1, maxAddressLength)
	}

	return Address{
		value: value,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (a Address) String() string {
	return a.value
}

func (a Address) IsEqual(other Address) bool {
	return a.value == other.value
}

func (a Address) Validate() error {
	return a.guard.Validate(ErrAddressIsNotConstructed)
}
