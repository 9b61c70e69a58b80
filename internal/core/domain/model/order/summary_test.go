package order_test

import (
	"testing"
	"time"

	"tableside/internal/core/domain/model/order"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSummarize(t *testing.T) {
	t.Run("collapses quantities preserving first-seen order", func(t *testing.T) {
		raw := `[{"name":"Kebap","qty":2},"Ayran",{"name":"Kebap","qty":1}]`

		assert.Equal(t, "3× Kebap, 1× Ayran", order.Summarize(raw))
	})

	t.Run("does not sort alphabetically or by quantity", func(t *testing.T) {
		raw := `["Çay",{"name":"Baklava","qty":5}]`

		assert.Equal(t, "1× Çay, 5× Baklava", order.Summarize(raw))
	})

	t.Run("malformed input is passed through unchanged", func(t *testing.T) {
		for _, raw := range []string{"not json", `{"name":"Kebap"}`, "[1,2,"} {
			assert.Equal(t, raw, order.Summarize(raw), "input %q", raw)
		}
	})

	t.Run("empty input yields empty output", func(t *testing.T) {
		assert.Empty(t, order.Summarize(""))
	})

	t.Run("matches the aggregate's own summary", func(t *testing.T) {
		raw := `["Ayran","Ayran",{"name":"Pide","qty":2}]`
		items, err := order.ParseItems(raw)
		require.NoError(t, err)

		o := newSummaryOrder(t, items)

		assert.Equal(t, "2× Ayran, 2× Pide", o.ItemsSummary())
		assert.Equal(t, o.ItemsSummary(), order.Summarize(raw))
	})
}

func testTime() time.Time {
	return time.Date(2025, 6, 1, 19, 0, 0, 0, time.UTC)
}

func newSummaryOrder(t *testing.T, items []order.Item) *order.Order {
	t.Helper()
	o, err := order.NewOrder(mustTableID(t, 2), items, "", testTime())
	require.NoError(t, err)
	return o
}
