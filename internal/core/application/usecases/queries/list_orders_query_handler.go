package queries

import (
	"context"

	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/core/ports"

	"github.com/samber/lo"
)

// ListOrdersQueryHandler returns matching orders oldest first. An empty result is
// an empty slice, never nil.
type ListOrdersQueryHandler struct {
	orders ports.OrderRepository
}

func NewListOrdersQueryHandler(orders ports.OrderRepository) ListOrdersQueryHandler {
	return ListOrdersQueryHandler{orders: orders}
}

func (h ListOrdersQueryHandler) Handle(ctx context.Context, query ListOrdersQuery) ([]OrderResponse, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	list, err := h.orders.GetAllByStatuses(ctx, query.Statuses())
	if err != nil {
		return nil, err
	}

	return lo.Map(list, func(o *order.Order, _ int) OrderResponse {
		return newOrderResponse(o)
	}), nil
}
