package commands

import (
	"context"

	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/core/ports"
	"wandshop/internal/pkg/errs"
)

const reviewModeratorService = "review moderator"

// SubmitReviewCommandHandler runs the moderation gate for reviews.
//
// The order is checked first, so an ineligible order never reaches the classifier.
// The classifier is called outside the transaction; the guard is re-checked inside
// it and the versioned update rejects a review that raced with another one.
// An UNSAFE verdict yields errs.ContentRejectedError and a classifier failure
// errs.ExternalServiceError; in both cases the order is unchanged.
type SubmitReviewCommandHandler struct {
	uowFactory OrderUoWFactory
	moderator  ports.ReviewModerator
}

func NewSubmitReviewCommandHandler(uowFactory OrderUoWFactory, moderator ports.ReviewModerator) SubmitReviewCommandHandler {
	return SubmitReviewCommandHandler{
		uowFactory: uowFactory,
		moderator:  moderator,
	}
}

func (h SubmitReviewCommandHandler) Handle(ctx context.Context, cmd SubmitReviewCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	current, err := h.uowFactory.Create().OrderRepository().Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}
	if err = current.CanReview(); err != nil {
		return err
	}

	safe, err := h.moderator.IsSafe(ctx, cmd.Review().String())
	if err != nil {
		return errs.NewExternalServiceError(reviewModeratorService, err)
	}
	if !safe {
		return errs.NewContentRejectedError("review")
	}

	return applyToOrder(ctx, h.uowFactory, cmd.OrderID(), func(o *order.Order) error {
		return o.SubmitReview(cmd.Review())
	})
}
