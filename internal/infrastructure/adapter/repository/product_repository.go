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

// ProductRepository implements the ProductRepository port using GORM
type ProductRepository struct {
	db              *gorm.DB
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewProductRepository creates a new ProductRepository instance
func NewProductRepository(db *gorm.DB, logger coreport.Logger) *ProductRepository {
	return &ProductRepository{
		db:              db,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

func productModelToEntity(productModel *model.Product) *entity.Product {
	return &entity.Product{
		ID:          productModel.ID,
		Name:        productModel.Name,
		Description: productModel.Description,
		PriceCents:  productModel.Price,
		Stock:       productModel.Stock,
		ImageURL:    productModel.ImageURL,
		CreatedAt:   productModel.CreatedAt,
		UpdatedAt:   productModel.UpdatedAt,
	}
}

// handleDatabaseError standardizes database error handling
func (r *ProductRepository) handleDatabaseError(operation string, err error, productID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("Product not found", map[string]any{
			"product_id": productID,
		})
		return errs.ErrProductNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"product_id": productID,
		"error":      err.Error(),
	})

	if r.errorClassifier.IsConstraintError(err) {
		return errs.ErrConstraintViolation
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a product by ID
func (r *ProductRepository) GetByID(ctx context.Context, id uint64) (*entity.Product, error) {
	var productModel model.Product
	result := r.db.WithContext(ctx).First(&productModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting product", result.Error, id)
	}

	return productModelToEntity(&productModel), nil
}

// List returns the full catalog, newest first
func (r *ProductRepository) List(ctx context.Context) ([]entity.Product, error) {
	var productModels []model.Product
	result := r.db.WithContext(ctx).Order("created_at DESC").Find(&productModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing products", result.Error, 0)
	}

	products := make([]entity.Product, 0, len(productModels))
	for i := range productModels {
		products = append(products, *productModelToEntity(&productModels[i]))
	}
	return products, nil
}

// Count returns the number of products in the catalog
func (r *ProductRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).Model(&model.Product{}).Count(&count)

	if result.Error != nil {
		return 0, r.handleDatabaseError("counting products", result.Error, 0)
	}
	return count, nil
}

// Create inserts a new product and fills in its assigned ID
func (r *ProductRepository) Create(ctx context.Context, product *entity.Product) error {
	productModel := model.Product{
		Name:        product.Name,
		Description: product.Description,
		Price:       product.PriceCents,
		Stock:       product.Stock,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&productModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating product", result.Error, 0)
	}

	product.ID = productModel.ID

	r.logger.Info("Product created successfully", map[string]any{
		"product_id": product.ID,
		"name":       product.Name,
	})
	return nil
}

// Update persists edits to an existing product
func (r *ProductRepository) Update(ctx context.Context, product *entity.Product) error {
	result := r.db.WithContext(ctx).Model(&model.Product{}).
		Where("id = ?", product.ID).
		Updates(map[string]interface{}{
			"name":        product.Name,
			"description": product.Description,
			"price":       product.PriceCents,
			"stock":       product.Stock,
			"image_url":   product.ImageURL,
			"updated_at":  product.UpdatedAt,
		})

	if result.Error != nil {
		return r.handleDatabaseError("updating product", result.Error, product.ID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("Product not found during update", map[string]any{
			"product_id": product.ID,
		})
		return errs.ErrProductNotFound
	}

	return nil
}

// Delete removes a product from the catalog
func (r *ProductRepository) Delete(ctx context.Context, id uint64) error {
	result := r.db.WithContext(ctx).Delete(&model.Product{}, id)

	if result.Error != nil {
		return r.handleDatabaseError("deleting product", result.Error, id)
	}
	if result.RowsAffected == 0 {
		return errs.ErrProductNotFound
	}

	r.logger.Info("Product deleted", map[string]any{
		"product_id": id,
	})
	return nil
}

// DecrementStock reduces stock by quantity only when enough remains.
// Zero affected rows with an existing product means a stock shortage;
// stock can never go negative under concurrent checkouts.
func (r *ProductRepository) DecrementStock(ctx context.Context, productID uint64, quantity int) error {
	result := r.db.WithContext(ctx).
		Model(&model.Product{}).
		Where("id = ? AND stock >= ?", productID, quantity).
		Update("stock", gorm.Expr("stock - ?", quantity))

	if result.Error != nil {
		return r.handleDatabaseError("decrementing stock", result.Error, productID)
	}

	if result.RowsAffected == 0 {
		var exists int64
		if err := r.db.WithContext(ctx).Model(&model.Product{}).Where("id = ?", productID).Count(&exists).Error; err != nil {
			return r.handleDatabaseError("checking product existence", err, productID)
		}
		if exists == 0 {
			return errs.ErrProductNotFound
		}

		r.logger.Warn("Insufficient stock for decrement", map[string]any{
			"product_id": productID,
			"quantity":   quantity,
		})
		return errs.ErrInsufficientStock
	}

	return nil
}
