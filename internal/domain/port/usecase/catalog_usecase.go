package usecase

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
)

// ProductInput carries the fields an admin supplies when creating or
// updating a product. Price is a decimal string, never a float.
type ProductInput struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Price       string `json:"price"`
	Stock       int    `json:"stock"`
	ImageURL    string `json:"imageUrl"`
}

// DashboardStats summarizes the back office landing page
type DashboardStats struct {
	ProductCount  int64 `json:"productCount"`
	CustomerCount int64 `json:"customerCount"`
	OrderCount    int64 `json:"orderCount"`
}

// CatalogUseCase defines storefront catalog reads and the admin
// back-office operations over products, customers and orders.
type CatalogUseCase interface {
	// ListProducts returns the full catalog
	ListProducts(ctx context.Context) ([]entity.Product, error)

	// GetProduct retrieves a single product
	GetProduct(ctx context.Context, productID uint64) (*entity.Product, error)

	// CreateProduct adds a product to the catalog
	CreateProduct(ctx context.Context, input ProductInput) (*entity.Product, error)

	// UpdateProduct replaces a product's attributes
	UpdateProduct(ctx context.Context, productID uint64, input ProductInput) (*entity.Product, error)

	// DeleteProduct removes a product from the catalog
	DeleteProduct(ctx context.Context, productID uint64) error

	// ListCustomers returns all non-admin users
	ListCustomers(ctx context.Context) ([]entity.User, error)

	// GrantMoney credits a customer's balance from the back office
	GrantMoney(ctx context.Context, userID uint64, amount string) (*entity.User, error)

	// GetDashboardStats counts products, customers and orders
	GetDashboardStats(ctx context.Context) (*DashboardStats, error)
}
