package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
)

var ErrSubmitReviewCommandIsNotConstructed = errors.New(
	"SubmitReviewCommand must be created via NewSubmitReviewCommand constructor",
)

// SubmitReviewCommand attaches a review to a Completed order, subject to moderation.
type SubmitReviewCommand struct {
	orderCommand
	review order.Review
}

func NewSubmitReviewCommand(orderID kernel.UUID, text string) (SubmitReviewCommand, error) {
	base, idErr := newOrderCommand(orderID)
	review, reviewErr := order.NewReview(text)
	if err := errors.Join(idErr, reviewErr); err != nil {
		return SubmitReviewCommand{}, err
	}
	return SubmitReviewCommand{orderCommand: base, review: review}, nil
}

func (c SubmitReviewCommand) Validate() error {
	return c.guard.Validate(ErrSubmitReviewCommandIsNotConstructed)
}

func (c SubmitReviewCommand) Review() order.Review {
	return c.review
}
