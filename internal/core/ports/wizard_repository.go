package ports

import (
	"context"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/wizard"
)

// WizardRepository is the lookup collaborator for customers.
type WizardRepository interface {
	Finder[*wizard.Wizard]

	Add(ctx context.Context, aggregate *wizard.Wizard) error
	Delete(ctx context.Context, id kernel.UUID) error
}
