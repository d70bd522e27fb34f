package commands

import (
	"context"
	"errors"
)

// DeliverOverdueOrdersCommandHandler delivers each overdue order in its own
// transaction, so one failing order does not hold back the rest. Orders that
// left Dispatched meanwhile are skipped.
type DeliverOverdueOrdersCommandHandler struct {
	uowFactory OrderUoWFactory
	deliver    DeliverOrderCommandHandler
}

func NewDeliverOverdueOrdersCommandHandler(uowFactory OrderUoWFactory) DeliverOverdueOrdersCommandHandler {
	return DeliverOverdueOrdersCommandHandler{
		uowFactory: uowFactory,
		deliver:    NewDeliverOrderCommandHandler(uowFactory),
	}
}

// Handle returns the number of orders delivered.
func (h DeliverOverdueOrdersCommandHandler) Handle(ctx context.Context, cmd DeliverOverdueOrdersCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	overdue, err := h.uowFactory.Create().OrderRepository().GetAllDispatchedBefore(ctx, cmd.DispatchedBefore())
	if err != nil {
		return 0, err
	}

	var delivered int
	var errList []error
	for _, o := range overdue {
		deliverCmd, cmdErr := NewDeliverOrderCommand(o.ID())
		if cmdErr != nil {
			errList = append(errList, cmdErr)
			continue
		}

		err = h.deliver.Handle(ctx, deliverCmd)
		switch {
		case errors.Is(err, ErrOrderNotDispatched):
			// cancelled or delivered since the listing
		case err != nil:
			errList = append(errList, err)
		default:
			delivered++
		}
	}

	return delivered, errors.Join(errList...)
}
