package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// cartLineRow is the scan target for the cart item / product join
type cartLineRow struct {
	CartItemID uint64
	ProductID  uint64
	Name       string
	ImageURL   string
	Price      int64
	Quantity   int
	Stock      int
}

// CartRepository implements the CartRepository port using GORM.
// Every item mutation goes through the cart-to-user join so a caller can
// never touch another user's rows with a guessed item id.
type CartRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewCartRepository creates a new CartRepository instance
func NewCartRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *CartRepository {
	return &CartRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (r *CartRepository) wrapError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetOrCreateCart returns the id of the user's cart, creating it lazily.
// The unique index on user_id keeps concurrent first adds down to one row.
func (r *CartRepository) GetOrCreateCart(ctx context.Context, userID uint64) (uint64, error) {
	var cartModel model.Cart
	err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&cartModel).Error
	if err == nil {
		return cartModel.ID, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, r.wrapError("loading cart", err)
	}

	now := r.timeProvider.Now()
	cartModel = model.Cart{UserID: userID, CreatedAt: now, UpdatedAt: now}
	if err := r.db.WithContext(ctx).Create(&cartModel).Error; err != nil {
		// Lost the creation race; the winner's row is the cart
		var existing model.Cart
		if findErr := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&existing).Error; findErr == nil {
			return existing.ID, nil
		}
		return 0, r.wrapError("creating cart", err)
	}

	r.logger.Debug("Cart created", map[string]any{
		"user_id": userID,
		"cart_id": cartModel.ID,
	})
	return cartModel.ID, nil
}

// FindItem looks up the cart item for (cartID, productID); nil when the
// product is not yet in the cart
func (r *CartRepository) FindItem(ctx context.Context, cartID, productID uint64) (*entity.CartItem, error) {
	var itemModel model.CartItem
	err := r.db.WithContext(ctx).
		Where("cart_id = ? AND product_id = ?", cartID, productID).
		First(&itemModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, r.wrapError("finding cart item", err)
	}

	return &entity.CartItem{
		ID:        itemModel.ID,
		CartID:    itemModel.CartID,
		ProductID: itemModel.ProductID,
		Quantity:  itemModel.Quantity,
	}, nil
}

// InsertItem adds a new cart item row and fills in its assigned ID
func (r *CartRepository) InsertItem(ctx context.Context, item *entity.CartItem) error {
	now := r.timeProvider.Now()
	itemModel := model.CartItem{
		CartID:    item.CartID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := r.db.WithContext(ctx).Create(&itemModel).Error; err != nil {
		return r.wrapError("inserting cart item", err)
	}

	item.ID = itemModel.ID
	return nil
}

// AddQuantity increments an existing cart item's quantity by delta in a
// single UPDATE
func (r *CartRepository) AddQuantity(ctx context.Context, cartItemID uint64, delta int) error {
	result := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ?", cartItemID).
		Updates(map[string]interface{}{
			"quantity":   gorm.Expr("quantity + ?", delta),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.wrapError("incrementing cart item quantity", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCartItemNotFound
	}
	return nil
}

// GetOwnedItem retrieves a cart item only if it belongs to the user's cart
func (r *CartRepository) GetOwnedItem(ctx context.Context, userID, cartItemID uint64) (*entity.CartItem, error) {
	var itemModel model.CartItem
	err := r.db.WithContext(ctx).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Where("cart_items.id = ? AND carts.user_id = ?", cartItemID, userID).
		First(&itemModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Cart item not found or not owned by user", map[string]any{
			"user_id":      userID,
			"cart_item_id": cartItemID,
		})
		return nil, errs.ErrCartItemNotFound
	}
	if err != nil {
		return nil, r.wrapError("loading cart item", err)
	}

	return &entity.CartItem{
		ID:        itemModel.ID,
		CartID:    itemModel.CartID,
		ProductID: itemModel.ProductID,
		Quantity:  itemModel.Quantity,
	}, nil
}

// SetQuantity replaces the quantity of a cart item the user owns. The
// ownership check rides in the UPDATE itself via a subquery on carts.
func (r *CartRepository) SetQuantity(ctx context.Context, userID, cartItemID uint64, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&model.CartItem{}).
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", cartItemID, userID).
		Updates(map[string]interface{}{
			"quantity":   quantity,
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return r.wrapError("updating cart item quantity", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCartItemNotFound
	}
	return nil
}

// DeleteOwnedItem removes a cart item only if it belongs to the user's cart
func (r *CartRepository) DeleteOwnedItem(ctx context.Context, userID, cartItemID uint64) error {
	result := r.db.WithContext(ctx).
		Where("id = ? AND cart_id IN (SELECT id FROM carts WHERE user_id = ?)", cartItemID, userID).
		Delete(&model.CartItem{})

	if result.Error != nil {
		return r.wrapError("deleting cart item", result.Error)
	}
	if result.RowsAffected == 0 {
		return errs.ErrCartItemNotFound
	}
	return nil
}

// ListLines returns the joined view of the user's cart items with current
// product name, price and stock. A user with no cart gets an empty slice.
func (r *CartRepository) ListLines(ctx context.Context, userID uint64) ([]entity.CartLine, error) {
	var rows []cartLineRow
	err := r.db.WithContext(ctx).
		Table("cart_items").
		Select(`cart_items.id AS cart_item_id,
			products.id AS product_id,
			products.name,
			products.image_url,
			products.price,
			cart_items.quantity,
			products.stock`).
		Joins("JOIN carts ON carts.id = cart_items.cart_id").
		Joins("JOIN products ON products.id = cart_items.product_id").
		Where("carts.user_id = ?", userID).
		Order("cart_items.id").
		Scan(&rows).Error

	if err != nil {
		return nil, r.wrapError("listing cart lines", err)
	}

	lines := make([]entity.CartLine, 0, len(rows))
	for _, row := range rows {
		lines = append(lines, entity.CartLine{
			CartItemID: row.CartItemID,
			ProductID:  row.ProductID,
			Name:       row.Name,
			ImageURL:   row.ImageURL,
			PriceCents: row.Price,
			Quantity:   row.Quantity,
			Stock:      row.Stock,
		})
	}
	return lines, nil
}

// Clear deletes all cart item rows for the user's cart; clearing an empty
// or nonexistent cart succeeds silently
func (r *CartRepository) Clear(ctx context.Context, userID uint64) error {
	result := r.db.WithContext(ctx).
		Where("cart_id IN (SELECT id FROM carts WHERE user_id = ?)", userID).
		Delete(&model.CartItem{})

	if result.Error != nil {
		return r.wrapError("clearing cart", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Debug("Cart cleared", map[string]any{
			"user_id":       userID,
			"items_removed": result.RowsAffected,
		})
	}
	return nil
}
