package commands

import (
	"context"
	"fmt"

	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/core/domain/services"
	"wandshop/internal/pkg/errs"
)

// DeleteWizardCommandHandler executes the cascade plan answers -> orders -> wizard in
// a single transaction. A wizard is not deleted while a Sold wand belongs to one of
// their orders (Paid, Dispatched, Delivered, Completed, or Refunded after completion).
// Pending orders release their wand claim.
type DeleteWizardCommandHandler struct {
	uowFactory UoWFactory
	lifecycle  services.OrderLifecycle
}

func NewDeleteWizardCommandHandler(uowFactory UoWFactory) DeleteWizardCommandHandler {
	return DeleteWizardCommandHandler{
		uowFactory: uowFactory,
		lifecycle:  services.NewOrderLifecycle(),
	}
}

func (h DeleteWizardCommandHandler) Handle(ctx context.Context, cmd DeleteWizardCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	wizardRepo := uow.WizardRepository()
	orderRepo := uow.OrderRepository()
	wandRepo := uow.WandRepository()

	if _, err := wizardRepo.Get(ctx, cmd.WizardID()); err != nil {
		return err
	}

	orders, err := orderRepo.GetAllByWizard(ctx, cmd.WizardID())
	if err != nil {
		return err
	}
	for _, o := range orders {
		if o.Status().HoldsSale() {
			return errs.NewInvalidStateError(
				"wizard",
				fmt.Sprintf("order %s is %s", o.ID(), o.Status()),
				"delete",
			)
		}
	}

	if _, err = uow.AnswerRepository().DeleteAllByWizard(ctx, cmd.WizardID()); err != nil {
		return err
	}

	for _, o := range orders {
		var w *wand.Wand
		if h.lifecycle.WandNeeded(o) {
			if w, err = wandRepo.Get(ctx, o.WandID()); err != nil {
				return err
			}
		}

		released, discardErr := h.lifecycle.Discard(o, w)
		if discardErr != nil {
			return discardErr
		}
		if released != nil {
			if err = wandRepo.Update(ctx, released); err != nil {
				return err
			}
		}

		if err = orderRepo.Delete(ctx, o.ID()); err != nil {
			return err
		}
	}

	if err = wizardRepo.Delete(ctx, cmd.WizardID()); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
