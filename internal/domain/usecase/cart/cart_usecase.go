package cart

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/persistence"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
)

// CartUseCase handles cart manipulation for the storefront
type CartUseCase struct {
	cartRepo    persistence.CartRepository
	productRepo persistence.ProductRepository
	logger      coreport.Logger
}

// NewCartUseCase creates a new CartUseCase
func NewCartUseCase(
	cartRepo persistence.CartRepository,
	productRepo persistence.ProductRepository,
	logger coreport.Logger,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		productRepo: productRepo,
		logger:      logger,
	}
}

// AddItem puts quantity units of a product into the user's cart. Repeated
// adds of the same product merge into a single line, and the merged
// quantity must fit the product's live stock.
func (c *CartUseCase) AddItem(ctx context.Context, userID, productID uint64, quantity int) error {
	if quantity < 1 {
		return errs.ErrInvalidQuantity
	}

	product, err := c.productRepo.GetByID(ctx, productID)
	if err != nil {
		return err
	}

	cartID, err := c.cartRepo.GetOrCreateCart(ctx, userID)
	if err != nil {
		return err
	}

	existing, err := c.cartRepo.FindItem(ctx, cartID, productID)
	if err != nil {
		return err
	}

	merged := quantity
	if existing != nil {
		merged += existing.Quantity
	}
	if !product.HasStock(merged) {
		return errs.NewInsufficientStockError(product.ID, product.Name, merged, product.Stock)
	}

	if existing != nil {
		err = c.cartRepo.AddQuantity(ctx, existing.ID, quantity)
	} else {
		err = c.cartRepo.InsertItem(ctx, &entity.CartItem{
			CartID:    cartID,
			ProductID: productID,
			Quantity:  quantity,
		})
	}
	if err != nil {
		c.logger.Error("Failed to add cart item", map[string]any{
			"userId":    userID,
			"productId": productID,
			"quantity":  quantity,
			"error":     err.Error(),
		})
		return err
	}

	c.logger.Info("Cart item added", map[string]any{
		"userId":    userID,
		"productId": productID,
		"quantity":  quantity,
	})
	return nil
}

// UpdateQuantity replaces the quantity of a cart item owned by the user.
// Quantities below 1 are rejected; removal goes through RemoveItem.
func (c *CartUseCase) UpdateQuantity(ctx context.Context, userID, cartItemID uint64, quantity int) error {
	if quantity < 1 {
		return errs.ErrInvalidQuantity
	}

	item, err := c.cartRepo.GetOwnedItem(ctx, userID, cartItemID)
	if err != nil {
		return err
	}

	product, err := c.productRepo.GetByID(ctx, item.ProductID)
	if err != nil {
		return err
	}
	if !product.HasStock(quantity) {
		return errs.NewInsufficientStockError(product.ID, product.Name, quantity, product.Stock)
	}

	return c.cartRepo.SetQuantity(ctx, userID, cartItemID, quantity)
}

// RemoveItem deletes a cart item owned by the user
func (c *CartUseCase) RemoveItem(ctx context.Context, userID, cartItemID uint64) error {
	return c.cartRepo.DeleteOwnedItem(ctx, userID, cartItemID)
}

// GetCart returns the user's cart lines with live product data and the
// running total. A user with no cart yet gets an empty view.
func (c *CartUseCase) GetCart(ctx context.Context, userID uint64) (*usecase.CartView, error) {
	lines, err := c.cartRepo.ListLines(ctx, userID)
	if err != nil {
		return nil, err
	}

	total := entity.CartTotal(lines)
	return &usecase.CartView{
		Lines:          lines,
		TotalCents:     total,
		FormattedTotal: entity.FormatCents(total),
	}, nil
}

// Clear empties the user's cart; clearing an empty or absent cart is a no-op
func (c *CartUseCase) Clear(ctx context.Context, userID uint64) error {
	return c.cartRepo.Clear(ctx, userID)
}
