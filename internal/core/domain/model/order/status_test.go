package order_test

import (
	"slices"
	"testing"

	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStatus_Validate(t *testing.T) {
	for _, s := range order.AllStatuses() {
		assert.NoError(t, s.Validate(), s.String())
	}

	for _, s := range []order.Status{order.Unknown, order.Status(-1), order.Status(8)} {
		err := s.Validate()
		require.Error(t, err)
		assert.True(t, errs.IsValidation(err))
	}
}

func TestParseStatus(t *testing.T) {
	s, err := order.ParseStatus(" dispatched ")
	require.NoError(t, err)
	assert.Equal(t, order.Dispatched, s)

	_, err = order.ParseStatus("Shipped")
	assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestStatus_Transitions(t *testing.T) {
	type transition func(order.Status) (order.Status, error)

	tests := []struct {
		name    string
		do      transition
		to      order.Status
		allowed []order.Status
	}{
		{"pay", order.Status.Pay, order.Paid, []order.Status{order.Pending}},
		{"dispatch", order.Status.Dispatch, order.Dispatched, []order.Status{order.Paid}},
		{"deliver", order.Status.Deliver, order.Delivered, []order.Status{order.Dispatched}},
		{"complete", order.Status.Complete, order.Completed, []order.Status{order.Delivered}},
		{"cancel", order.Status.Cancel, order.Cancelled, []order.Status{order.Paid, order.Dispatched, order.Delivered}},
		{"refund", order.Status.Refund, order.Refunded, []order.Status{order.Cancelled, order.Completed}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for _, from := range append(order.AllStatuses(), order.Unknown) {
				next, err := tt.do(from)

				if slices.Contains(tt.allowed, from) {
					require.NoError(t, err, "%s from %s", tt.name, from)
					assert.Equal(t, tt.to, next)
					continue
				}

				var stateErr *errs.InvalidStateError
				require.ErrorAs(t, err, &stateErr, "%s from %s", tt.name, from)
				assert.Equal(t, from.String(), stateErr.State)
				assert.Equal(t, order.Unknown, next)
			}
		})
	}
}

func TestStatus_Classes(t *testing.T) {
	assert.True(t, order.Paid.IsInFlight())
	assert.True(t, order.Delivered.IsInFlight())
	assert.False(t, order.Completed.IsInFlight())
	assert.True(t, order.Completed.HoldsSale())
	assert.False(t, order.Cancelled.HoldsSale())

	assert.True(t, order.Pending.IsDeletable())
	assert.True(t, order.Refunded.IsDeletable())
	assert.False(t, order.Completed.IsDeletable())
	assert.False(t, order.Dispatched.IsDeletable())

	for _, s := range order.AllStatuses() {
		assert.Equal(t, slices.Contains(order.ActiveStatuses(), s), s.ClaimsWand(), s.String())
	}
	assert.False(t, order.Refunded.ClaimsWand())
}
