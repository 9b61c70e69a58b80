package order_test

import (
	"testing"

	"tableside/internal/core/domain/model/order"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewStatus(t *testing.T) {
	t.Run("should normalize canonical states case-insensitively", func(t *testing.T) {
		cases := map[string]order.Status{
			"Pending":   order.Pending,
			"pending":   order.Pending,
			"PREPARING": order.Preparing,
			"Completed": order.Completed,
			"COMPLETED": order.Completed,
			"compLeted": order.Completed,
		}

		for raw, want := range cases {
			got, err := order.NewStatus(raw)
			require.NoError(t, err, "input %q", raw)
			assert.Equal(t, want, got, "input %q", raw)
			assert.True(t, got.IsCanonical())
		}
	})

	t.Run("should keep custom statuses verbatim", func(t *testing.T) {
		got, err := order.NewStatus("Waiting for payment")

		require.NoError(t, err)
		assert.Equal(t, "Waiting for payment", got.String())
		assert.False(t, got.IsCanonical())
		assert.False(t, got.IsCompleted())
	})

	t.Run("should reject empty input", func(t *testing.T) {
		_, err := order.NewStatus("")

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestStatus_IsCompleted(t *testing.T) {
	t.Run("canonical completed triggers archival", func(t *testing.T) {
		assert.True(t, order.Completed.IsCompleted())
	})

	t.Run("restored legacy casing still counts", func(t *testing.T) {
		assert.True(t, order.RestoreStatus("completed").IsCompleted())
		assert.True(t, order.RestoreStatus("COMPLETED").IsCompleted())
	})

	t.Run("other states do not", func(t *testing.T) {
		assert.False(t, order.Pending.IsCompleted())
		assert.False(t, order.Preparing.IsCompleted())
		assert.False(t, order.RestoreStatus("Served").IsCompleted())
	})
}

func TestRestoreStatus(t *testing.T) {
	t.Run("preserves the stored text without normalization", func(t *testing.T) {
		got := order.RestoreStatus("preparing")
		assert.Equal(t, "preparing", got.String())
	})

	t.Run("empty stored value falls back to pending", func(t *testing.T) {
		assert.Equal(t, order.Pending, order.RestoreStatus(""))
	})
}
