package kernel

import (
	"crypto/rand"
	"errors"
	"fmt"
	"regexp"

	"wandshop/internal/pkg/errs"
	"wandshop/internal/pkg/guard"
)

const (
	trackingPrefix   = "TRK-"
	trackingLength   = 8
	trackingAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

var (
	ErrTrackingNumberIsNotConstructed = errors.New("tracking number must be created via NewTrackingNumber or ParseTrackingNumber")

	trackingPattern = regexp.MustCompile(`^TRK-[A-Z0-9]{8}$`)
)

// TrackingNumber is the opaque shipment token assigned at dispatch: "TRK-" followed by
// eight uppercase alphanumeric characters.
type TrackingNumber struct {
	value string
	guard guard.ConstructorGuard
}

// NewTrackingNumber draws a fresh token from crypto/rand.
func NewTrackingNumber() (TrackingNumber, error) {
	buf := make([]byte, trackingLength)
	if _, err := rand.Read(buf); err != nil {
		return TrackingNumber{}, fmt.Errorf("generate tracking number: %w", err)
	}

	out := make([]byte, 0, len(trackingPrefix)+trackingLength)
	out = append(out, trackingPrefix...)
	for _, b := range buf {
		out = append(out, trackingAlphabet[int(b)%len(trackingAlphabet)])
	}

	return TrackingNumber{
		value: string(out),
		guard: guard.NewConstructorGuard(),
	}, nil
}

// ParseTrackingNumber restores a persisted token.
func ParseTrackingNumber(s string) (TrackingNumber, error) {
	if !trackingPattern.MatchString(s) {
		return TrackingNumber{}, errs.NewValueIsInvalidErrorWithCause(
			"tracking number",
			fmt.Errorf("%q does not match %s", s, trackingPattern),
		)
	}
	return TrackingNumber{
		value: s,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (t TrackingNumber) String() string {
	return t.value
}

func (t TrackingNumber) Validate() error {
	return t.guard.Validate(ErrTrackingNumberIsNotConstructed)
}
