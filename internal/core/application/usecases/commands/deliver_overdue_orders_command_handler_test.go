package commands_test

import (
	"errors"
	"testing"
	"time"

	"wandshop/internal/core/application/usecases/commands"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDeliverOverdueOrdersCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()

	_, err := commands.NewDeliverOverdueOrdersCommand(time.Time{})
	require.ErrorIs(t, err, errs.ErrValueIsRequired)

	dispatched, _ := placedOrder(t, order.Dispatched)
	cancelled, _ := placedOrder(t, order.Cancelled)
	broken, _ := placedOrder(t, order.Dispatched)
	storageErr := errors.New("connection reset")

	orders := new(MockOrderRepository)
	factory, uow := orderUoW(orders)
	orders.On("GetAllDispatchedBefore", ctx, mock.Anything).
		Return([]*order.Order{dispatched, cancelled, broken}, nil).Once()
	orders.On("Get", ctx, dispatched.ID()).Return(dispatched, nil).Once()
	orders.On("Get", ctx, cancelled.ID()).Return(cancelled, nil).Once()
	orders.On("Get", ctx, broken.ID()).Return(nil, storageErr).Once()
	orders.On("Update", ctx, dispatched).Return(nil).Once()
	uow.On("Commit", ctx).Return(nil).Once()

	cmd, err := commands.NewDeliverOverdueOrdersCommand(time.Now())
	require.NoError(t, err)
	delivered, err := commands.NewDeliverOverdueOrdersCommandHandler(factory).Handle(ctx, cmd)

	assert.Equal(t, 1, delivered)
	require.ErrorIs(t, err, storageErr)
	assert.NotErrorIs(t, err, commands.ErrOrderNotDispatched)
	assert.Equal(t, order.Delivered, dispatched.Status())
	assert.Equal(t, order.Cancelled, cancelled.Status())
	orders.AssertExpectations(t)
}
