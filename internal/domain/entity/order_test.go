package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderFromCart(t *testing.T) {
	createdAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	lines := []CartLine{
		{CartItemID: 10, ProductID: 1, Name: "Air Zoom", PriceCents: 12999, Quantity: 2},
		{CartItemID: 11, ProductID: 2, Name: "Court Classic", PriceCents: 8950, Quantity: 1},
	}

	order := NewOrderFromCart(42, "ref-123", lines, createdAt)

	assert.Equal(t, uint64(42), order.UserID)
	assert.Equal(t, "ref-123", order.Reference)
	assert.Equal(t, OrderStatusPaid, order.Status)
	assert.Equal(t, createdAt, order.CreatedAt)
	assert.Equal(t, int64(2*12999+8950), order.TotalCents)
	assert.Equal(t, "349.48", order.FormattedTotal())

	require.Len(t, order.Items, 2)
	assert.Equal(t, uint64(1), order.Items[0].ProductID)
	assert.Equal(t, "Air Zoom", order.Items[0].Name)
	assert.Equal(t, 2, order.Items[0].Quantity)
	assert.Equal(t, int64(12999), order.Items[0].PriceCents)
}

// Items freeze name and unit price; later catalog edits must not reach
// the snapshot.
func TestOrderSnapshotIsDecoupledFromLines(t *testing.T) {
	lines := []CartLine{
		{CartItemID: 10, ProductID: 1, Name: "Air Zoom", PriceCents: 12999, Quantity: 1},
	}

	order := NewOrderFromCart(42, "ref-123", lines, time.Now())
	lines[0].Name = "Renamed"
	lines[0].PriceCents = 1

	assert.Equal(t, "Air Zoom", order.Items[0].Name)
	assert.Equal(t, int64(12999), order.Items[0].PriceCents)
}

func TestSessionExpired(t *testing.T) {
	expiry := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	session := &Session{ExpiresAt: expiry}

	assert.False(t, session.Expired(expiry.Add(-time.Second)))
	assert.True(t, session.Expired(expiry))
	assert.True(t, session.Expired(expiry.Add(time.Second)))
}
