package queries

import (
	"context"

	"wandshop/internal/core/ports"
)

type GetAnswerQueryHandler struct {
	answers ports.AnswerRepository
}

func NewGetAnswerQueryHandler(answers ports.AnswerRepository) GetAnswerQueryHandler {
	return GetAnswerQueryHandler{answers: answers}
}

func (h GetAnswerQueryHandler) Handle(ctx context.Context, query GetAnswerQuery) (GetAnswerQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetAnswerQueryResponse{}, err
	}

	a, err := h.answers.Get(ctx, query.AnswerID())
	if err != nil {
		return GetAnswerQueryResponse{}, err
	}

	return GetAnswerQueryResponse{
		ID:        a.ID(),
		QuizID:    a.QuizID(),
		WizardID:  a.WizardID(),
		WandID:    a.WandID(),
		Score:     a.Score(),
		CreatedAt: a.CreatedAt(),
	}, nil
}
