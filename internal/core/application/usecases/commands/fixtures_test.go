package commands_test

import (
	"testing"
	"time"

	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/core/domain/model/wand"
	"wandshop/internal/core/domain/model/wizard"
	"wandshop/internal/core/domain/services"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func fakeWizard(t *testing.T) *wizard.Wizard {
	t.Helper()
	w, err := wizard.NewWizard(kernel.NewUUID(), gofakeit.Name(), gofakeit.Email())
	require.NoError(t, err)
	return w
}

func fakeWand(t *testing.T) *wand.Wand {
	t.Helper()
	w, err := wand.NewWand(kernel.NewUUID(), wand.Details{
		Name:  gofakeit.BeerName(),
		Wood:  "Holly",
		Core:  "Phoenix feather",
		Price: decimal.NewFromFloat(gofakeit.Price(7, 50)).Round(2),
	})
	require.NoError(t, err)
	return w
}

// placedOrder returns an order advanced to status together with its wand, with both
// aggregates in the state the lifecycle would have left them.
func placedOrder(t *testing.T, status order.Status) (*order.Order, *wand.Wand) {
	t.Helper()

	lifecycle := services.NewOrderLifecycle()
	w := fakeWand(t)
	addr, err := kernel.NewAddress(gofakeit.Street())
	require.NoError(t, err)

	o, err := lifecycle.Place(services.PlaceOrderParams{
		OrderID:    kernel.NewUUID(),
		WizardID:   kernel.NewUUID(),
		PaymentRef: gofakeit.UUID(),
		Provider:   order.Stripe,
		Address:    addr,
		CreatedAt:  time.Now(),
	}, w)
	require.NoError(t, err)

	path := map[order.Status][]func() error{
		order.Pending:    nil,
		order.Paid:       {pay(lifecycle, o, w)},
		order.Dispatched: {pay(lifecycle, o, w), dispatch(t, o)},
		order.Delivered:  {pay(lifecycle, o, w), dispatch(t, o), o.Deliver},
		order.Completed:  {pay(lifecycle, o, w), dispatch(t, o), o.Deliver, o.Complete},
		order.Cancelled:  {pay(lifecycle, o, w), func() error { return lifecycle.Cancel(o, w) }},
		order.Refunded:   {pay(lifecycle, o, w), dispatch(t, o), o.Deliver, o.Complete, o.Refund},
	}
	steps, ok := path[status]
	require.True(t, ok, "no fixture path to %s", status)
	for _, step := range steps {
		require.NoError(t, step())
	}
	o.ClearDomainEvents()
	return o, w
}

func pay(l services.OrderLifecycle, o *order.Order, w *wand.Wand) func() error {
	return func() error { return l.Pay(o, w) }
}

func dispatch(t *testing.T, o *order.Order) func() error {
	return func() error {
		tn, err := kernel.NewTrackingNumber()
		require.NoError(t, err)
		return o.Dispatch(tn, time.Now())
	}
}
