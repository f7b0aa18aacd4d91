package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartLineSubtotal(t *testing.T) {
	line := CartLine{
		CartItemID: 1,
		ProductID:  7,
		Name:       "Air Zoom",
		PriceCents: 12999,
		Quantity:   3,
	}

	assert.Equal(t, int64(38997), line.SubtotalCents())
	assert.Equal(t, "389.97", line.FormattedSubtotal())
}

func TestCartTotal(t *testing.T) {
	t.Run("Empty cart totals zero", func(t *testing.T) {
		assert.Equal(t, int64(0), CartTotal(nil))
		assert.Equal(t, int64(0), CartTotal([]CartLine{}))
	})

	t.Run("Total sums quantity times live price per line", func(t *testing.T) {
		lines := []CartLine{
			{ProductID: 1, PriceCents: 12999, Quantity: 2},
			{ProductID: 2, PriceCents: 8950, Quantity: 1},
			{ProductID: 3, PriceCents: 100, Quantity: 5},
		}

		assert.Equal(t, int64(2*12999+8950+5*100), CartTotal(lines))
	})
}
