// Package answer models a wizard's quiz submission and the wand allocated from its score.
package answer

import (
	"errors"
	"fmt"
	"time"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/errs"
	"wandshop/internal/pkg/guard"
)

var ErrAnswerIsNotConstructed = errors.New("Answer must be created via NewAnswer constructor")

// Answer records a quiz result. The wand is allocated once, when the answer is created.
type Answer struct {
	id        kernel.UUID
	score     int
	quizID    kernel.UUID
	wizardID  kernel.UUID
	wandID    kernel.UUID
	createdAt time.Time
	guard     guard.ConstructorGuard
}

func NewAnswer(id kernel.UUID, score int, quizID, wizardID, wandID kernel.UUID, createdAt time.Time) (*Answer, error) {
	a := &Answer{guard: guard.NewConstructorGuard()}

	var timeErr error
	if createdAt.IsZero() {
		timeErr = errs.NewValueIsRequiredError("created at")
	}
	if err := errors.Join(
		id.Validate(),
		quizID.Validate(),
		wizardID.Validate(),
		wandID.Validate(),
		ValidateScore(score),
		timeErr,
	); err != nil {
		return nil, err
	}

	a.id = id
	a.score = score
	a.quizID = quizID
	a.wizardID = wizardID
	a.wandID = wandID
	a.createdAt = createdAt.UTC()
	return a, nil
}

// ValidateScore requires a positive score.
func ValidateScore(score int) error {
	if score <= 0 {
		return errs.NewValueIsInvalidErrorWithCause("score", fmt.Errorf("%d is not greater than 0", score))
	}
	return nil
}

func (a *Answer) Validate() error {
	if a == nil {
		return ErrAnswerIsNotConstructed
	}
	return a.guard.Validate(ErrAnswerIsNotConstructed)
}

func (a *Answer) ID() kernel.UUID       { return a.id }
func (a *Answer) Score() int            { return a.score }
func (a *Answer) QuizID() kernel.UUID   { return a.quizID }
func (a *Answer) WizardID() kernel.UUID { return a.wizardID }
func (a *Answer) WandID() kernel.UUID   { return a.wandID }
func (a *Answer) CreatedAt() time.Time  { return a.createdAt }
