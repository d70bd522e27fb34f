package order

import (
	"errors"
	"strings"
	"unicode/utf8"

	"wandshop/internal/pkg/errs"
	"wandshop/internal/pkg/guard"
)

const MaxReviewLength = 2000

var ErrReviewIsNotConstructed = errors.New("review must be created via NewReview")

// Review is the customer's free-text feedback on a completed order.
type Review struct {
	text  string
	guard guard.ConstructorGuard
}

func NewReview(text string) (Review, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return Review{}, errs.NewValueIsRequiredError("review")
	}
	if n := utf8.RuneCountInString(text); n > MaxReviewLength {
		return Review{}, errs.NewValueIsOutOfRangeError("review length", n, 1, MaxReviewLength)
	}
	return Review{text: text, guard: guard.NewConstructorGuard()}, nil
}

func (r Review) String() string {
	return r.text
}

func (r Review) Validate() error {
	return r.guard.Validate(ErrReviewIsNotConstructed)
}
