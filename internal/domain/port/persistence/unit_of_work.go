package persistence

import "context"

// UnitOfWork coordinates repositories inside a single database
// transaction. Begin returns a context carrying the transaction;
// repositories obtained with that context route their queries through
// the transaction, while a plain context falls back to the base
// connection.
type UnitOfWork interface {
	// Begin starts a transaction and returns a context bound to it
	Begin(ctx context.Context) (context.Context, error)

	// Commit commits the transaction carried by ctx
	Commit(ctx context.Context) error

	// Rollback aborts the transaction carried by ctx. Rolling back an
	// already finished transaction is not an error.
	Rollback(ctx context.Context) error

	// GetUserRepository returns a user repository bound to the
	// transaction in ctx, if any
	GetUserRepository(ctx context.Context) UserRepository

	// GetProductRepository returns a product repository bound to the
	// transaction in ctx, if any
	GetProductRepository(ctx context.Context) ProductRepository

	// GetCartRepository returns a cart repository bound to the
	// transaction in ctx, if any
	GetCartRepository(ctx context.Context) CartRepository

	// GetOrderRepository returns an order repository bound to the
	// transaction in ctx, if any
	GetOrderRepository(ctx context.Context) OrderRepository
}
