package queries

import (
	"errors"
	"time"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/pkg/guard"
)

var (
	ErrGetAnswerQueryIsNotConstructed = errors.New(
		"GetAnswerQuery must be created via NewGetAnswerQuery constructor",
	)
)

type GetAnswerQuery struct {
	answerID kernel.UUID
	guard    guard.ConstructorGuard
}

func NewGetAnswerQuery(answerID kernel.UUID) (GetAnswerQuery, error) {
	if err := answerID.Validate(); err != nil {
		return GetAnswerQuery{}, err
	}
	return GetAnswerQuery{answerID: answerID, guard: guard.NewConstructorGuard()}, nil
}

func (q GetAnswerQuery) Validate() error {
	return q.guard.Validate(ErrGetAnswerQueryIsNotConstructed)
}

func (q GetAnswerQuery) AnswerID() kernel.UUID {
	return q.answerID
}

// GetAnswerQueryResponse carries the wand allocated from the quiz score.
type GetAnswerQueryResponse struct {
	ID        kernel.UUID
	QuizID    kernel.UUID
	WizardID  kernel.UUID
	WandID    kernel.UUID
	Score     int
	CreatedAt time.Time
}
