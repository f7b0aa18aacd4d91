package persistence

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
)

// ProductRepository defines essential methods to interact with catalog data
type ProductRepository interface {
	// GetByID retrieves a product by ID
	//
	// Possible errors:
	// - ErrProductNotFound: If product with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.Product, error)

	// List returns the full catalog, newest first
	List(ctx context.Context) ([]entity.Product, error)

	// Count returns the number of products in the catalog
	Count(ctx context.Context) (int64, error)

	// Create inserts a new product and fills in its assigned ID
	Create(ctx context.Context, product *entity.Product) error

	// Update persists edits to an existing product
	//
	// Possible errors:
	// - ErrProductNotFound: If product doesn't exist
	Update(ctx context.Context, product *entity.Product) error

	// Delete removes a product from the catalog
	//
	// Possible errors:
	// - ErrProductNotFound: If product doesn't exist
	Delete(ctx context.Context, id uint64) error

	// DecrementStock reduces the product's stock by quantity only when enough
	// stock remains, as a guarded compare-and-swap update. Used inside the
	// checkout transaction so concurrent purchases serialize correctly
	//
	// Possible errors:
	// - ErrInsufficientStock: If stock < quantity (nothing is decremented)
	// - ErrProductNotFound: If product doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	DecrementStock(ctx context.Context, productID uint64, quantity int) error
}
