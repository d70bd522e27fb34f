package order

import (
	"fmt"
	"strings"

	"wandshop/internal/pkg/errs"
)

// Provider identifies the payment provider that issued the payment reference.
type Provider int

const (
	UnknownProvider Provider = iota
	Stripe
	PayPal
	Gringotts
	Owl
)

func getProviderStrings() map[Provider]string {
	return map[Provider]string{
		UnknownProvider: "Unknown",
		Stripe:          "Stripe",
		PayPal:          "PayPal",
		Gringotts:       "Gringotts",
		Owl:             "Owl",
	}
}

// ParseProvider resolves a provider name case-insensitively.
func ParseProvider(s string) (Provider, error) {
	for p, name := range getProviderStrings() {
		if p != UnknownProvider && strings.EqualFold(name, strings.TrimSpace(s)) {
			return p, nil
		}
	}
	return UnknownProvider, errs.NewValueIsInvalidErrorWithCause(
		"payment provider",
		fmt.Errorf("%q is not one of Stripe, PayPal, Gringotts, Owl", s),
	)
}

func (p Provider) Validate() error {
	if p <= UnknownProvider || p > Owl {
		return errs.NewValueIsInvalidErrorWithCause("payment provider", fmt.Errorf("%d is not a valid provider", p))
	}
	return nil
}

func (p Provider) String() string {
	if str, ok := getProviderStrings()[p]; ok {
		return str
	}
	return "Unknown"
}
