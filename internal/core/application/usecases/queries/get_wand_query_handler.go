package queries

import (
	"context"

	"wandshop/internal/core/ports"
)

type GetWandQueryHandler struct {
	wands ports.WandRepository
}

func NewGetWandQueryHandler(wands ports.WandRepository) GetWandQueryHandler {
	return GetWandQueryHandler{wands: wands}
}

func (h GetWandQueryHandler) Handle(ctx context.Context, query GetWandQuery) (GetWandQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetWandQueryResponse{}, err
	}

	w, err := h.wands.Get(ctx, query.WandID())
	if err != nil {
		return GetWandQueryResponse{}, err
	}

	d := w.Details()
	return GetWandQueryResponse{
		ID:          w.ID(),
		Name:        d.Name,
		Wood:        d.Wood,
		Core:        d.Core,
		Length:      d.Length,
		Flexibility: d.Flexibility,
		Price:       d.Price,
		Status:      w.Status().String(),
		Reserved:    w.ReservedBy() != nil,
	}, nil
}
