package ports

import (
	"context"

	"wandshop/internal/core/domain/model/answer"
	"wandshop/internal/core/domain/model/kernel"
)

type AnswerRepository interface {
	Finder[*answer.Answer]

	Add(ctx context.Context, aggregate *answer.Answer) error

	// DeleteAllByWizard removes every answer of the wizard and reports how many.
	DeleteAllByWizard(ctx context.Context, wizardID kernel.UUID) (int, error)
}
