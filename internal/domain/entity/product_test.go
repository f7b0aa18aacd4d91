package entity

import (
	"testing"
	"time"

	errs "github.com/querykicks/querykicks/internal/domain/error"
	coremocks "github.com/querykicks/querykicks/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid product creation", func(t *testing.T) {
		product, err := NewProduct("Air Zoom", "Lightweight runner", "129.99", 10, "/img/air-zoom.png", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Air Zoom", product.Name)
		assert.Equal(t, int64(12999), product.PriceCents)
		assert.Equal(t, "129.99", product.FormattedPrice())
		assert.Equal(t, 10, product.Stock)
		assert.Equal(t, fixedTime, product.CreatedAt)
	})

	t.Run("Blank name is rejected", func(t *testing.T) {
		product, err := NewProduct("   ", "desc", "10.00", 1, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidProductName)
		assert.Nil(t, product)
	})

	t.Run("Invalid price is rejected", func(t *testing.T) {
		product, err := NewProduct("Air Zoom", "desc", "12.345", 1, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Nil(t, product)
	})

	t.Run("Negative stock is rejected", func(t *testing.T) {
		product, err := NewProduct("Air Zoom", "desc", "10.00", -1, "", mockTime)
		assert.ErrorIs(t, err, errs.ErrInvalidQuantity)
		assert.Nil(t, product)
	})

	t.Run("Zero stock and zero price are allowed", func(t *testing.T) {
		product, err := NewProduct("Freebie", "desc", "0.00", 0, "", mockTime)
		require.NoError(t, err)
		assert.Equal(t, int64(0), product.PriceCents)
		assert.Equal(t, 0, product.Stock)
	})
}

func TestProductHasStock(t *testing.T) {
	product := &Product{Stock: 5}

	assert.True(t, product.HasStock(1))
	assert.True(t, product.HasStock(5))
	assert.False(t, product.HasStock(6))
	assert.False(t, product.HasStock(0))
	assert.False(t, product.HasStock(-1))
}
