package commands_test

import (
	"testing"

	"wandshop/internal/core/application/usecases/commands"
	"wandshop/internal/core/domain/model/kernel"
	"wandshop/internal/core/domain/model/order"
	"wandshop/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreateOrderCommand(t *testing.T) {
	orderID, wizardID, wandID := kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID()

	t.Run("explicit wand", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderCommand(orderID, wizardID, wandID, "pi_1", "paypal", " 4 Privet Drive ")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		got, ok := cmd.WandID()
		assert.True(t, ok)
		assert.True(t, got.IsEqual(wandID))
		_, ok = cmd.Score()
		assert.False(t, ok)
		assert.Equal(t, order.PayPal, cmd.Provider())
		assert.Equal(t, "4 Privet Drive", cmd.Address().String())
	})

	t.Run("from score", func(t *testing.T) {
		cmd, err := commands.NewCreateOrderFromScoreCommand(orderID, wizardID, 7, "pi_1", "Owl", "Hogsmeade")

		require.NoError(t, err)
		score, ok := cmd.Score()
		assert.True(t, ok)
		assert.Equal(t, 7, score)
		_, ok = cmd.WandID()
		assert.False(t, ok)
	})

	t.Run("collects field errors", func(t *testing.T) {
		_, err := commands.NewCreateOrderFromScoreCommand(kernel.UUID{}, wizardID, 0, "pi_1", "Galleon Express", "")

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "score")
		assert.Contains(t, err.Error(), "payment provider")
	})

	t.Run("zero value is not constructed", func(t *testing.T) {
		assert.ErrorIs(t, commands.CreateOrderCommand{}.Validate(), commands.ErrCreateOrderCommandIsNotConstructed)
	})
}
