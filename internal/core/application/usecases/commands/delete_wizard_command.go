package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/guard"
)

var ErrDeleteWizardCommandIsNotConstructed = errors.New(
	"DeleteWizardCommand must be created via NewDeleteWizardCommand constructor",
)

// DeleteWizardCommand removes a wizard together with their answers and orders.
type DeleteWizardCommand struct {
	wizardID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewDeleteWizardCommand(wizardID kernel.UUID) (DeleteWizardCommand, error) {
	if err := wizardID.Validate(); err != nil {
		return DeleteWizardCommand{}, err
	}
	return DeleteWizardCommand{wizardID: wizardID, guard: guard.NewConstructorGuard()}, nil
}

func (c DeleteWizardCommand) Validate() error {
	return c.guard.Validate(ErrDeleteWizardCommandIsNotConstructed)
}

func (c DeleteWizardCommand) WizardID() kernel.UUID {
	return c.wizardID
}
