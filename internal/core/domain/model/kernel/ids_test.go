package kernel_test

import (
	"testing"

	"tableside/internal/core/domain/model/kernel"
	"tableside/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTableID(t *testing.T) {
	t.Run("should create table id from positive value", func(t *testing.T) {
		id, err := kernel.NewTableID(7)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.Equal(t, 7, id.Int())
		assert.Equal(t, "7", id.String())
	})

	t.Run("should fail with zero value", func(t *testing.T) {
		_, err := kernel.NewTableID(0)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should fail with negative value", func(t *testing.T) {
		_, err := kernel.NewTableID(-3)

		require.Error(t, err)
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.TableID
		require.Error(t, id.Validate())
	})
}

func TestNewOrderID(t *testing.T) {
	t.Run("should create order id from positive value", func(t *testing.T) {
		id, err := kernel.NewOrderID(42)

		require.NoError(t, err)
		require.NoError(t, id.Validate())
		assert.False(t, id.IsZero())
		assert.Equal(t, int64(42), id.Int64())
		assert.Equal(t, "42", id.String())
	})

	t.Run("should fail with non-positive value", func(t *testing.T) {
		for _, v := range []int64{0, -1} {
			_, err := kernel.NewOrderID(v)
			require.Error(t, err)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		}
	})

	t.Run("zero value means unassigned", func(t *testing.T) {
		var id kernel.OrderID

		assert.True(t, id.IsZero())
		require.Error(t, id.Validate())
	})
}
