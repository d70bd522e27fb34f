package queries

import (
	"errors"
	"slices"

	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/pkg/guard"
)

var (
	ErrListOrdersQueryIsNotConstructed = errors.New(
		"ListOrdersQuery must be created via NewListOrdersQuery constructor",
	)
)

// ListOrdersQuery lists orders in any of the given statuses. No statuses means
// every order.
//
// Example:
//
//	query, err := queries.NewListOrdersQuery("Paid", "Dispatched")
//	if err != nil {
//	    return err
//	}
//	inFlight, err := handler.Handle(ctx, query)
type ListOrdersQuery struct {
	statuses []order.Status
	guard    guard.ConstructorGuard
}

// NewListOrdersQuery parses status names case-insensitively. Duplicates are dropped.
func NewListOrdersQuery(statuses ...string) (ListOrdersQuery, error) {
	parsed := make([]order.Status, 0, len(statuses))
	var errList []error
	for _, s := range statuses {
		status, err := order.ParseStatus(s)
		if err != nil {
			errList = append(errList, err)
			continue
		}
		if !slices.Contains(parsed, status) {
			parsed = append(parsed, status)
		}
	}
	if err := errors.Join(errList...); err != nil {
		return ListOrdersQuery{}, err
	}

	return ListOrdersQuery{statuses: parsed, guard: guard.NewConstructorGuard()}, nil
}

func (q ListOrdersQuery) Validate() error {
	return q.guard.Validate(ErrListOrdersQueryIsNotConstructed)
}

func (q ListOrdersQuery) Statuses() []order.Status {
	return slices.Clone(q.statuses)
}
