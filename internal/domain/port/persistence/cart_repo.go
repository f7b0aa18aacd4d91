package persistence

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
)

// CartRepository mediates all reads and writes for a user's in-progress cart.
// Every item mutation verifies ownership through the cart-to-user join and
// never trusts a bare cart item id.
type CartRepository interface {
	// GetOrCreateCart returns the id of the user's cart, creating the row
	// lazily on first use. Invariant: at most one cart row per user
	GetOrCreateCart(ctx context.Context, userID uint64) (uint64, error)

	// FindItem looks up the cart item for (cartID, productID).
	// Returns nil, nil when the product is not yet in the cart
	FindItem(ctx context.Context, cartID, productID uint64) (*entity.CartItem, error)

	// InsertItem adds a new cart item row
	InsertItem(ctx context.Context, item *entity.CartItem) error

	// AddQuantity increments an existing cart item's quantity by delta
	//
	// Possible errors:
	// - ErrCartItemNotFound: If the item row doesn't exist
	AddQuantity(ctx context.Context, cartItemID uint64, delta int) error

	// GetOwnedItem retrieves a cart item only if it belongs to the user's cart
	//
	// Possible errors:
	// - ErrCartItemNotFound: If absent or owned by a different user
	GetOwnedItem(ctx context.Context, userID, cartItemID uint64) (*entity.CartItem, error)

	// SetQuantity replaces the quantity of a cart item the user owns
	//
	// Possible errors:
	// - ErrCartItemNotFound: If absent or owned by a different user
	SetQuantity(ctx context.Context, userID, cartItemID uint64, quantity int) error

	// DeleteOwnedItem removes a cart item only if it belongs to the user's cart
	//
	// Possible errors:
	// - ErrCartItemNotFound: If absent or owned by a different user
	DeleteOwnedItem(ctx context.Context, userID, cartItemID uint64) error

	// ListLines returns the joined view of the user's cart items with current
	// product name, price and stock. Empty slice for no cart
	ListLines(ctx context.Context, userID uint64) ([]entity.CartLine, error)

	// Clear deletes all cart item rows for the user's cart; clearing an
	// empty or nonexistent cart succeeds silently
	Clear(ctx context.Context, userID uint64) error
}
