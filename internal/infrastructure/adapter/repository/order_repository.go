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

// OrderRepository implements the OrderRepository port using GORM
type OrderRepository struct {
	db     *gorm.DB
	logger coreport.Logger
}

// NewOrderRepository creates a new OrderRepository instance
func NewOrderRepository(db *gorm.DB, logger coreport.Logger) *OrderRepository {
	return &OrderRepository{
		db:     db,
		logger: logger,
	}
}

func orderModelToEntity(orderModel *model.Order) entity.Order {
	order := entity.Order{
		ID:         orderModel.ID,
		UserID:     orderModel.UserID,
		Reference:  orderModel.Reference,
		TotalCents: orderModel.Total,
		Status:     orderModel.Status,
		CreatedAt:  orderModel.CreatedAt,
		Items:      make([]entity.OrderItem, 0, len(orderModel.Items)),
	}
	for _, itemModel := range orderModel.Items {
		order.Items = append(order.Items, entity.OrderItem{
			ID:         itemModel.ID,
			OrderID:    itemModel.OrderID,
			ProductID:  itemModel.ProductID,
			Name:       itemModel.Name,
			Quantity:   itemModel.Quantity,
			PriceCents: itemModel.Price,
		})
	}
	return order
}

func (r *OrderRepository) wrapError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves an order and its items as one unit and fills in the
// assigned IDs. Run it on a transaction-bound repository so the receipt
// commits atomically with the balance and stock updates.
func (r *OrderRepository) Create(ctx context.Context, order *entity.Order) error {
	orderModel := model.Order{
		UserID:    order.UserID,
		Reference: order.Reference,
		Total:     order.TotalCents,
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		Items:     make([]model.OrderItem, 0, len(order.Items)),
	}
	for _, item := range order.Items {
		orderModel.Items = append(orderModel.Items, model.OrderItem{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     item.PriceCents,
		})
	}

	if err := r.db.WithContext(ctx).Create(&orderModel).Error; err != nil {
		return r.wrapError("creating order", err)
	}

	order.ID = orderModel.ID
	for i := range orderModel.Items {
		order.Items[i].ID = orderModel.Items[i].ID
		order.Items[i].OrderID = orderModel.ID
	}

	r.logger.Info("Order created", map[string]any{
		"order_id":  order.ID,
		"user_id":   order.UserID,
		"reference": order.Reference,
		"total":     order.FormattedTotal(),
	})
	return nil
}

// ListByUser returns the user's order history, newest first, items included
func (r *OrderRepository) ListByUser(ctx context.Context, userID uint64) ([]entity.Order, error) {
	var orderModels []model.Order
	err := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&orderModels).Error

	if err != nil {
		return nil, r.wrapError("listing orders", err)
	}

	orders := make([]entity.Order, 0, len(orderModels))
	for i := range orderModels {
		orders = append(orders, orderModelToEntity(&orderModels[i]))
	}
	return orders, nil
}

// GetByID retrieves one order with its items
func (r *OrderRepository) GetByID(ctx context.Context, id uint64) (*entity.Order, error) {
	var orderModel model.Order
	err := r.db.WithContext(ctx).Preload("Items").First(&orderModel, id).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrOrderNotFound
	}
	if err != nil {
		return nil, r.wrapError("getting order", err)
	}

	order := orderModelToEntity(&orderModel)
	return &order, nil
}

// Count returns the total number of orders
func (r *OrderRepository) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).Model(&model.Order{}).Count(&count).Error; err != nil {
		return 0, r.wrapError("counting orders", err)
	}
	return count, nil
}
