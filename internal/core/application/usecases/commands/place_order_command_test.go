package commands_test

import (
	"testing"

	"tableside/internal/core/application/usecases/commands"
	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems(t *testing.T) []order.Item {
	t.Helper()
	items, err := order.ParseItems(`[{"name":"Kebap","qty":2},"Ayran"]`)
	require.NoError(t, err)
	return items
}

func TestNewPlaceOrderCommand(t *testing.T) {
	tableID, _ := kernel.NewTableID(7)

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(tableID, testItems(t), "no onions")

		require.NoError(t, err)
		require.NoError(t, cmd.Validate())
		assert.Equal(t, tableID, cmd.TableID())
		assert.Len(t, cmd.Items(), 2)
		assert.Equal(t, "no onions", cmd.SpecialNotes())
	})

	t.Run("should fail with missing table id", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(kernel.TableID(0), testItems(t), "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should fail with empty items", func(t *testing.T) {
		_, err := commands.NewPlaceOrderCommand(tableID, nil, "")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("notes are optional", func(t *testing.T) {
		cmd, err := commands.NewPlaceOrderCommand(tableID, testItems(t), "")

		require.NoError(t, err)
		assert.Empty(t, cmd.SpecialNotes())
	})

	t.Run("zero value command fails validation", func(t *testing.T) {
		var cmd commands.PlaceOrderCommand
		require.ErrorIs(t, cmd.Validate(), commands.ErrPlaceOrderCommandIsNotConstructed)
	})
}
