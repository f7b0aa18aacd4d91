package persistence

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
)

// OrderRepository persists immutable order snapshots
type OrderRepository interface {
	// Create saves an order and its items as one unit; the order's assigned
	// ID is filled in on success. Must be called with a repository bound to
	// the checkout transaction so the receipt commits atomically with the
	// balance and stock mutations
	Create(ctx context.Context, order *entity.Order) error

	// ListByUser returns the user's order history, newest first, items included
	ListByUser(ctx context.Context, userID uint64) ([]entity.Order, error)

	// GetByID retrieves one order with its items
	//
	// Possible errors:
	// - ErrOrderNotFound: If order doesn't exist
	GetByID(ctx context.Context, id uint64) (*entity.Order, error)

	// Count returns the total number of orders, for the admin dashboard
	Count(ctx context.Context) (int64, error)
}
