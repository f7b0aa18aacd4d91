package usecase

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
)

// CheckoutResult describes a completed checkout
type CheckoutResult struct {
	Order          *entity.Order
	ResultBalance  string
	FormattedTotal string
}

// CheckoutUseCase turns a cart into a paid order
type CheckoutUseCase interface {
	// Checkout debits the user's balance by the cart total, decrements
	// stock, records the order with its items, and clears the cart, all
	// atomically. Concurrent checkouts for the same user are rejected.
	//
	// Possible errors:
	// - ErrEmptyCart: If the cart has no items
	// - ErrInsufficientFunds: If the balance cannot cover the total
	// - ErrInsufficientStock: If any line exceeds available stock
	// - ErrUserLocked: If another checkout for this user is in flight
	Checkout(ctx context.Context, userID uint64) (*CheckoutResult, error)

	// ListOrders returns the user's order history, newest first
	ListOrders(ctx context.Context, userID uint64) ([]entity.Order, error)
}
