package catalog

import (
	"context"
	"strings"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/persistence"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
)

// CatalogUseCase handles the storefront catalog and the admin back office
type CatalogUseCase struct {
	productRepo  persistence.ProductRepository
	userRepo     persistence.UserRepository
	orderRepo    persistence.OrderRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCatalogUseCase creates a new CatalogUseCase
func NewCatalogUseCase(
	productRepo persistence.ProductRepository,
	userRepo persistence.UserRepository,
	orderRepo persistence.OrderRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *CatalogUseCase {
	return &CatalogUseCase{
		productRepo:  productRepo,
		userRepo:     userRepo,
		orderRepo:    orderRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// ListProducts returns the full catalog
func (c *CatalogUseCase) ListProducts(ctx context.Context) ([]entity.Product, error) {
	return c.productRepo.List(ctx)
}

// GetProduct retrieves a single product
func (c *CatalogUseCase) GetProduct(ctx context.Context, productID uint64) (*entity.Product, error) {
	return c.productRepo.GetByID(ctx, productID)
}

// CreateProduct adds a product to the catalog
func (c *CatalogUseCase) CreateProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	product, err := entity.NewProduct(
		strings.TrimSpace(input.Name),
		input.Description,
		input.Price,
		input.Stock,
		input.ImageURL,
		c.timeProvider,
	)
	if err != nil {
		return nil, err
	}

	if err := c.productRepo.Create(ctx, product); err != nil {
		c.logger.Error("Failed to create product", map[string]any{
			"name":  product.Name,
			"error": err.Error(),
		})
		return nil, err
	}

	c.logger.Info("Product created", map[string]any{
		"productId": product.ID,
		"name":      product.Name,
		"price":     product.FormattedPrice(),
		"stock":     product.Stock,
	})
	return product, nil
}

// UpdateProduct replaces a product's attributes. Price and stock edits do
// not touch existing order snapshots.
func (c *CatalogUseCase) UpdateProduct(ctx context.Context, productID uint64, input usecase.ProductInput) (*entity.Product, error) {
	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, errs.ErrInvalidProductName
	}
	priceCents, err := entity.ParseAmount(input.Price)
	if err != nil {
		return nil, err
	}
	if input.Stock < 0 {
		return nil, errs.ErrInvalidQuantity
	}

	product.Name = name
	product.Description = input.Description
	product.PriceCents = priceCents
	product.Stock = input.Stock
	product.ImageURL = input.ImageURL
	product.UpdatedAt = c.timeProvider.Now()

	if err := c.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}

	c.logger.Info("Product updated", map[string]any{
		"productId": product.ID,
		"name":      product.Name,
	})
	return product, nil
}

// DeleteProduct removes a product from the catalog
func (c *CatalogUseCase) DeleteProduct(ctx context.Context, productID uint64) error {
	if err := c.productRepo.Delete(ctx, productID); err != nil {
		return err
	}

	c.logger.Info("Product deleted", map[string]any{
		"productId": productID,
	})
	return nil
}

// ListCustomers returns all non-admin users
func (c *CatalogUseCase) ListCustomers(ctx context.Context) ([]entity.User, error) {
	return c.userRepo.ListCustomers(ctx)
}

// GrantMoney credits a customer's balance from the back office
func (c *CatalogUseCase) GrantMoney(ctx context.Context, userID uint64, amount string) (*entity.User, error) {
	amountInCents, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountInCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	user, err := c.userRepo.AddMoney(ctx, userID, amountInCents)
	if err != nil {
		return nil, err
	}

	c.logger.Info("Money granted", map[string]any{
		"userId":        userID,
		"amount":        amount,
		"resultBalance": user.FormattedBalance(),
	})
	return user, nil
}

// GetDashboardStats counts products, customers and orders
func (c *CatalogUseCase) GetDashboardStats(ctx context.Context) (*usecase.DashboardStats, error) {
	productCount, err := c.productRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	customerCount, err := c.userRepo.CountCustomers(ctx)
	if err != nil {
		return nil, err
	}
	orderCount, err := c.orderRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	return &usecase.DashboardStats{
		ProductCount:  productCount,
		CustomerCount: customerCount,
		OrderCount:    orderCount,
	}, nil
}
