package memory

import (
	"context"
	"fmt"

	"wandshop/internal/core/domain/model/answer"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/errs"
)

type AnswerRepository struct {
	uow *UnitOfWork
}

func (r *AnswerRepository) Get(_ context.Context, id kernel.UUID) (*answer.Answer, error) {
	var a *answer.Answer
	r.uow.read(func(s *state) {
		a = s.answers[id]
	})
	if a == nil {
		return nil, errs.NewObjectNotFoundError("answer", id.String())
	}
	return a, nil
}

func (r *AnswerRepository) Add(ctx context.Context, aggregate *answer.Answer) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(ctx, func(s *state) error {
		if _, exists := s.answers[aggregate.ID()]; exists {
			return errs.NewValueIsInvalidErrorWithCause("answer id", fmt.Errorf("answer %s already exists", aggregate.ID()))
		}
		if _, ok := s.wizards[aggregate.WizardID()]; !ok {
			return errs.NewObjectNotFoundError("wizard", aggregate.WizardID().String())
		}
		s.answers[aggregate.ID()] = aggregate
		return nil
	})
}

func (r *AnswerRepository) DeleteAllByWizard(ctx context.Context, wizardID kernel.UUID) (int, error) {
	var deleted int
	err := r.uow.write(ctx, func(s *state) error {
		for id, a := range s.answers {
			if a.WizardID().IsEqual(wizardID) {
				delete(s.answers, id)
				deleted++
			}
		}
		return nil
	})
	return deleted, err
}
