package cart

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	coremocks "github.com/querykicks/querykicks/mocks/port/core"
	persistencemocks "github.com/querykicks/querykicks/mocks/port/persistence"
)

func newNoopLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestAddItem(t *testing.T) {
	ctx := context.Background()
	product := &entity.Product{ID: 7, Name: "Air Zoom", PriceCents: 12999, Stock: 5}

	t.Run("First add inserts a new line", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		mockProduct.EXPECT().GetByID(mock.Anything, uint64(7)).Return(product, nil).Once()
		mockCart.EXPECT().GetOrCreateCart(mock.Anything, uint64(42)).Return(3, nil).Once()
		mockCart.EXPECT().FindItem(mock.Anything, uint64(3), uint64(7)).Return(nil, nil).Once()
		mockCart.EXPECT().InsertItem(mock.Anything, mock.MatchedBy(func(item *entity.CartItem) bool {
			return item.CartID == 3 && item.ProductID == 7 && item.Quantity == 2
		})).Return(nil).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		err := cartUseCase.AddItem(ctx, 42, 7, 2)

		require.NoError(t, err)
	})

	t.Run("Repeated add merges into the existing line", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		existing := &entity.CartItem{ID: 9, CartID: 3, ProductID: 7, Quantity: 2}
		mockProduct.EXPECT().GetByID(mock.Anything, uint64(7)).Return(product, nil).Once()
		mockCart.EXPECT().GetOrCreateCart(mock.Anything, uint64(42)).Return(3, nil).Once()
		mockCart.EXPECT().FindItem(mock.Anything, uint64(3), uint64(7)).Return(existing, nil).Once()
		mockCart.EXPECT().AddQuantity(mock.Anything, uint64(9), 3).Return(nil).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		err := cartUseCase.AddItem(ctx, 42, 7, 3)

		require.NoError(t, err)
	})

	t.Run("Merged quantity above stock is rejected and cart unchanged", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		existing := &entity.CartItem{ID: 9, CartID: 3, ProductID: 7, Quantity: 4}
		mockProduct.EXPECT().GetByID(mock.Anything, uint64(7)).Return(product, nil).Once()
		mockCart.EXPECT().GetOrCreateCart(mock.Anything, uint64(42)).Return(3, nil).Once()
		mockCart.EXPECT().FindItem(mock.Anything, uint64(3), uint64(7)).Return(existing, nil).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		err := cartUseCase.AddItem(ctx, 42, 7, 2)

		assert.ErrorIs(t, err, errs.ErrInsufficientStock)

		var stockErr *errs.InsufficientStockError
		require.ErrorAs(t, err, &stockErr)
		assert.Equal(t, 6, stockErr.Requested)
		assert.Equal(t, 5, stockErr.Available)
	})

	t.Run("Quantity below one is rejected without repo calls", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))

		assert.ErrorIs(t, cartUseCase.AddItem(ctx, 42, 7, 0), errs.ErrInvalidQuantity)
		assert.ErrorIs(t, cartUseCase.AddItem(ctx, 42, 7, -1), errs.ErrInvalidQuantity)
	})

	t.Run("Unknown product", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		mockProduct.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrProductNotFound).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		err := cartUseCase.AddItem(ctx, 42, 99, 1)

		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()
	product := &entity.Product{ID: 7, Name: "Air Zoom", PriceCents: 12999, Stock: 5}
	item := &entity.CartItem{ID: 9, CartID: 3, ProductID: 7, Quantity: 2}

	t.Run("Replaces the quantity", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		mockCart.EXPECT().GetOwnedItem(mock.Anything, uint64(42), uint64(9)).Return(item, nil).Once()
		mockProduct.EXPECT().GetByID(mock.Anything, uint64(7)).Return(product, nil).Once()
		mockCart.EXPECT().SetQuantity(mock.Anything, uint64(42), uint64(9), 4).Return(nil).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		err := cartUseCase.UpdateQuantity(ctx, 42, 9, 4)

		require.NoError(t, err)
	})

	t.Run("Quantity below one is rejected, removal must be explicit", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))

		assert.ErrorIs(t, cartUseCase.UpdateQuantity(ctx, 42, 9, 0), errs.ErrInvalidQuantity)
	})

	t.Run("Quantity above stock is rejected", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		mockCart.EXPECT().GetOwnedItem(mock.Anything, uint64(42), uint64(9)).Return(item, nil).Once()
		mockProduct.EXPECT().GetByID(mock.Anything, uint64(7)).Return(product, nil).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		err := cartUseCase.UpdateQuantity(ctx, 42, 9, 6)

		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
	})

	t.Run("Item owned by another user", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		mockCart.EXPECT().GetOwnedItem(mock.Anything, uint64(42), uint64(9)).Return(nil, errs.ErrCartItemNotFound).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		err := cartUseCase.UpdateQuantity(ctx, 42, 9, 1)

		assert.ErrorIs(t, err, errs.ErrCartItemNotFound)
	})
}

func TestRemoveItem(t *testing.T) {
	ctx := context.Background()

	t.Run("Ownership checked delete", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		mockCart.EXPECT().DeleteOwnedItem(mock.Anything, uint64(42), uint64(9)).Return(nil).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		require.NoError(t, cartUseCase.RemoveItem(ctx, 42, 9))
	})

	t.Run("Absent item", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		mockCart.EXPECT().DeleteOwnedItem(mock.Anything, uint64(42), uint64(9)).Return(errs.ErrCartItemNotFound).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		assert.ErrorIs(t, cartUseCase.RemoveItem(ctx, 42, 9), errs.ErrCartItemNotFound)
	})
}

func TestGetCart(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns lines with total", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		lines := []entity.CartLine{
			{CartItemID: 9, ProductID: 7, Name: "Air Zoom", PriceCents: 12999, Quantity: 2, Stock: 5},
			{CartItemID: 10, ProductID: 8, Name: "Court Classic", PriceCents: 8950, Quantity: 1, Stock: 3},
		}
		mockCart.EXPECT().ListLines(mock.Anything, uint64(42)).Return(lines, nil).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		view, err := cartUseCase.GetCart(ctx, 42)

		require.NoError(t, err)
		assert.Len(t, view.Lines, 2)
		assert.Equal(t, int64(2*12999+8950), view.TotalCents)
		assert.Equal(t, "349.48", view.FormattedTotal)
	})

	t.Run("User without a cart gets an empty view", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		mockCart.EXPECT().ListLines(mock.Anything, uint64(42)).Return([]entity.CartLine{}, nil).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		view, err := cartUseCase.GetCart(ctx, 42)

		require.NoError(t, err)
		assert.Empty(t, view.Lines)
		assert.Equal(t, int64(0), view.TotalCents)
		assert.Equal(t, "0.00", view.FormattedTotal)
	})

	t.Run("Repository failure propagates", func(t *testing.T) {
		mockCart := persistencemocks.NewMockCartRepository(t)
		mockProduct := persistencemocks.NewMockProductRepository(t)

		dbErr := errors.New("connection reset")
		mockCart.EXPECT().ListLines(mock.Anything, uint64(42)).Return(nil, dbErr).Once()

		cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
		view, err := cartUseCase.GetCart(ctx, 42)

		assert.Nil(t, view)
		assert.Equal(t, dbErr, err)
	})
}

func TestClear(t *testing.T) {
	mockCart := persistencemocks.NewMockCartRepository(t)
	mockProduct := persistencemocks.NewMockProductRepository(t)

	mockCart.EXPECT().Clear(mock.Anything, uint64(42)).Return(nil).Once()

	cartUseCase := NewCartUseCase(mockCart, mockProduct, newNoopLogger(t))
	require.NoError(t, cartUseCase.Clear(context.Background(), 42))
}
