package commands

import (
	"context"
	"time"

	"wandshop/internal/core/domain/model/answer"
	"wandshop/internal/core/domain/services"
)

// SubmitAnswerCommandHandler stores a quiz answer together with the wand allocated
// from its score. The wand is not claimed; claiming happens when an order is placed.
type SubmitAnswerCommandHandler struct {
	uowFactory UoWFactory
	allocator  services.WandAllocator
}

func NewSubmitAnswerCommandHandler(uowFactory UoWFactory) SubmitAnswerCommandHandler {
	return SubmitAnswerCommandHandler{
		uowFactory: uowFactory,
		allocator:  services.NewWandAllocator(),
	}
}

func (h SubmitAnswerCommandHandler) Handle(ctx context.Context, cmd SubmitAnswerCommand) error {
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

	if _, err := uow.WizardRepository().Get(ctx, cmd.WizardID()); err != nil {
		return err
	}

	allocated, err := h.allocator.Allocate(ctx, cmd.Score(), uow.WandRepository())
	if err != nil {
		return err
	}

	a, err := answer.NewAnswer(cmd.AnswerID(), cmd.Score(), cmd.QuizID(), cmd.WizardID(), allocated.ID(), time.Now())
	if err != nil {
		return err
	}

	if err = uow.AnswerRepository().Add(ctx, a); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
