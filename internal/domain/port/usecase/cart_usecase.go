package usecase

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
)

// CartView is the cart as presented to the storefront: enriched
// lines plus the precomputed total.
type CartView struct {
	Lines          []entity.CartLine
	TotalCents     int64
	FormattedTotal string
}

// CartUseCase defines methods for cart manipulation
type CartUseCase interface {
	// AddItem puts quantity units of a product into the user's cart,
	// merging with an existing line for the same product
	AddItem(ctx context.Context, userID, productID uint64, quantity int) error

	// UpdateQuantity replaces the quantity of a cart item owned by the user
	UpdateQuantity(ctx context.Context, userID, cartItemID uint64, quantity int) error

	// RemoveItem deletes a cart item owned by the user
	RemoveItem(ctx context.Context, userID, cartItemID uint64) error

	// GetCart returns the user's cart lines with product details and total
	GetCart(ctx context.Context, userID uint64) (*CartView, error)

	// Clear empties the user's cart
	Clear(ctx context.Context, userID uint64) error
}
