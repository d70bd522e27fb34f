package memory

import (
	"context"
	"fmt"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/wizard"
	"wandshop/internal/pkg/errs"
)

type WizardRepository struct {
	uow *UnitOfWork
}

func (r *WizardRepository) Get(_ context.Context, id kernel.UUID) (*wizard.Wizard, error) {
	var w *wizard.Wizard
	r.uow.read(func(s *state) {
		w = s.wizards[id]
	})
	if w == nil {
		return nil, errs.NewObjectNotFoundError("wizard", id.String())
	}
	return w, nil
}

func (r *WizardRepository) Add(ctx context.Context, aggregate *wizard.Wizard) error {
	if err := aggregate.Validate(); err != nil {
		return err
	}

	return r.uow.write(ctx, func(s *state) error {
		if _, exists := s.wizards[aggregate.ID()]; exists {
			return errs.NewValueIsInvalidErrorWithCause("wizard id", fmt.Errorf("wizard %s already exists", aggregate.ID()))
		}
		s.wizards[aggregate.ID()] = aggregate
		return nil
	})
}

// Delete refuses to remove a wizard that still owns orders or answers, like the
// foreign keys of the postgres schema.
func (r *WizardRepository) Delete(ctx context.Context, id kernel.UUID) error {
	return r.uow.write(ctx, func(s *state) error {
		if _, ok := s.wizards[id]; !ok {
			return errs.NewObjectNotFoundError("wizard", id.String())
		}
		for _, o := range s.orders {
			if o.WizardID.IsEqual(id) {
				return errs.NewInvalidStateError("wizard", "referenced by order "+o.ID.String(), "delete")
			}
		}
		for _, a := range s.answers {
			if a.WizardID().IsEqual(id) {
				return errs.NewInvalidStateError("wizard", "referenced by answer "+a.ID().String(), "delete")
			}
		}
		delete(s.wizards, id)
		return nil
	})
}
