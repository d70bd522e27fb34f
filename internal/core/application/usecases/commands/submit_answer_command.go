package commands

import (
	"errors"

	"wandshop/internal/core/domain/model/answer"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/guard"
)

var ErrSubmitAnswerCommandIsNotConstructed = errors.New(
	"SubmitAnswerCommand must be created via NewSubmitAnswerCommand constructor",
)

// SubmitAnswerCommand records a quiz result and allocates the wizard's wand from it.
type SubmitAnswerCommand struct {
	answerID kernel.UUID
	quizID   kernel.UUID
	wizardID kernel.UUID
	score    int

	guard guard.ConstructorGuard
}

func NewSubmitAnswerCommand(answerID, quizID, wizardID kernel.UUID, score int) (SubmitAnswerCommand, error) {
	if err := errors.Join(
		answerID.Validate(),
		quizID.Validate(),
		wizardID.Validate(),
		answer.ValidateScore(score),
	); err != nil {
		return SubmitAnswerCommand{}, err
	}

	return SubmitAnswerCommand{
		answerID: answerID,
		quizID:   quizID,
		wizardID: wizardID,
		score:    score,
		guard:    guard.NewConstructorGuard(),
	}, nil
}

func (c SubmitAnswerCommand) Validate() error {
	return c.guard.Validate(ErrSubmitAnswerCommandIsNotConstructed)
}

func (c SubmitAnswerCommand) AnswerID() kernel.UUID { return c.answerID }
func (c SubmitAnswerCommand) QuizID() kernel.UUID   { return c.quizID }
func (c SubmitAnswerCommand) WizardID() kernel.UUID { return c.wizardID }
func (c SubmitAnswerCommand) Score() int            { return c.score }
