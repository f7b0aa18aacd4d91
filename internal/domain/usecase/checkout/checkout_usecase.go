package checkout

import (
	"context"

	"github.com/google/uuid"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/persistence"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
)

// Checkout pipeline step names used in errors and logs
const (
	stepLoadCart  = "load_cart"
	stepDebit     = "debit_balance"
	stepStock     = "decrement_stock"
	stepOrder     = "write_order"
	stepClearCart = "clear_cart"
	stepCommit    = "commit"
)

// OrderCreatedEvent is the payload published after a successful checkout
type OrderCreatedEvent struct {
	OrderID   uint64 `json:"orderId"`
	UserID    uint64 `json:"userId"`
	Reference string `json:"reference"`
	Total     string `json:"total"`
	ItemCount int    `json:"itemCount"`
}

// RoutingKeyOrderCreated is the broker routing key for checkout events
const RoutingKeyOrderCreated = "order.created"

// CheckoutUseCase turns a cart into a paid order atomically
type CheckoutUseCase struct {
	uow          persistence.UnitOfWork
	lockRepo     persistence.UserLockRepository
	orderRepo    persistence.OrderRepository
	publisher    coreport.EventPublisher
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	lockTTL      coreport.Duration
}

// NewCheckoutUseCase creates a new CheckoutUseCase. The publisher may be
// nil when no broker is configured; events are then skipped.
func NewCheckoutUseCase(
	uow persistence.UnitOfWork,
	lockRepo persistence.UserLockRepository,
	orderRepo persistence.OrderRepository,
	publisher coreport.EventPublisher,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	lockTTL coreport.Duration,
) *CheckoutUseCase {
	return &CheckoutUseCase{
		uow:          uow,
		lockRepo:     lockRepo,
		orderRepo:    orderRepo,
		publisher:    publisher,
		timeProvider: timeProvider,
		logger:       logger,
		lockTTL:      lockTTL,
	}
}

// Checkout debits the user's balance by the cart total, decrements stock
// per line, freezes the cart into an order and clears it, all inside one
// database transaction. A per-user lock serializes concurrent attempts;
// any failure rolls everything back.
func (c *CheckoutUseCase) Checkout(ctx context.Context, userID uint64) (*usecase.CheckoutResult, error) {
	if err := c.lockRepo.AcquireLock(ctx, userID, c.lockTTL); err != nil {
		return nil, err
	}
	defer func() {
		if err := c.lockRepo.ReleaseLock(ctx, userID); err != nil {
			c.logger.Warn("Failed to release checkout lock", map[string]any{
				"userId": userID,
				"error":  err.Error(),
			})
		}
	}()

	txCtx, err := c.uow.Begin(ctx)
	if err != nil {
		return nil, err
	}

	result, err := c.checkoutInTx(txCtx, userID)
	if err != nil {
		if rbErr := c.uow.Rollback(txCtx); rbErr != nil {
			c.logger.Error("Rollback failed after checkout error", map[string]any{
				"userId": userID,
				"error":  rbErr.Error(),
			})
		}
		c.logCheckoutFailure(userID, err)
		return nil, err
	}

	if err := c.uow.Commit(txCtx); err != nil {
		c.logger.Error("Checkout commit failed", map[string]any{
			"userId": userID,
			"error":  err.Error(),
		})
		return nil, errs.NewCheckoutError(userID, result.FormattedTotal, stepCommit, err)
	}

	c.logger.Info("Checkout completed", map[string]any{
		"userId":        userID,
		"orderId":       result.Order.ID,
		"reference":     result.Order.Reference,
		"total":         result.FormattedTotal,
		"resultBalance": result.ResultBalance,
	})

	c.publishOrderCreated(ctx, result.Order)
	return result, nil
}

// checkoutInTx runs the pipeline within an already opened transaction.
// Callers own commit and rollback.
func (c *CheckoutUseCase) checkoutInTx(txCtx context.Context, userID uint64) (*usecase.CheckoutResult, error) {
	cartRepo := c.uow.GetCartRepository(txCtx)
	userRepo := c.uow.GetUserRepository(txCtx)
	productRepo := c.uow.GetProductRepository(txCtx)

	lines, err := cartRepo.ListLines(txCtx, userID)
	if err != nil {
		return nil, errs.NewCheckoutError(userID, "0.00", stepLoadCart, err)
	}
	if len(lines) == 0 {
		return nil, errs.ErrEmptyCart
	}

	totalCents := entity.CartTotal(lines)
	total := entity.FormatCents(totalCents)

	// Guarded single-statement debit; the balance can never go negative
	// and concurrent spenders cannot both succeed on the same funds
	user, err := userRepo.DebitIfAffordable(txCtx, userID, totalCents)
	if err != nil {
		if errs.IsInsufficientFundsError(err) {
			return nil, c.detailedFundsError(txCtx, userRepo, userID, total)
		}
		return nil, errs.NewCheckoutError(userID, total, stepDebit, err)
	}

	// Same guarded pattern per line; stock read at cart time may be stale,
	// this is the authoritative check
	for _, line := range lines {
		if err := productRepo.DecrementStock(txCtx, line.ProductID, line.Quantity); err != nil {
			if errs.IsInsufficientStockError(err) {
				return nil, c.detailedStockError(txCtx, productRepo, line)
			}
			return nil, errs.NewCheckoutError(userID, total, stepStock, err)
		}
	}

	order := entity.NewOrderFromCart(userID, uuid.NewString(), lines, c.timeProvider.Now())
	if err := c.uow.GetOrderRepository(txCtx).Create(txCtx, order); err != nil {
		return nil, errs.NewCheckoutError(userID, total, stepOrder, err)
	}

	if err := cartRepo.Clear(txCtx, userID); err != nil {
		return nil, errs.NewCheckoutError(userID, total, stepClearCart, err)
	}

	return &usecase.CheckoutResult{
		Order:          order,
		ResultBalance:  user.FormattedBalance(),
		FormattedTotal: total,
	}, nil
}

// ListOrders returns the user's order history, newest first
func (c *CheckoutUseCase) ListOrders(ctx context.Context, userID uint64) ([]entity.Order, error) {
	return c.orderRepo.ListByUser(ctx, userID)
}

// detailedFundsError enriches the bare sentinel with the balance that
// lost the race, when it can still be read
func (c *CheckoutUseCase) detailedFundsError(txCtx context.Context, userRepo persistence.UserRepository, userID uint64, total string) error {
	balance := "unknown"
	if user, err := userRepo.GetByID(txCtx, userID); err == nil {
		balance = user.FormattedBalance()
	}
	return errs.NewInsufficientFundsError(userID, total, balance)
}

func (c *CheckoutUseCase) detailedStockError(txCtx context.Context, productRepo persistence.ProductRepository, line entity.CartLine) error {
	available := 0
	if product, err := productRepo.GetByID(txCtx, line.ProductID); err == nil {
		available = product.Stock
	}
	return errs.NewInsufficientStockError(line.ProductID, line.Name, line.Quantity, available)
}

func (c *CheckoutUseCase) logCheckoutFailure(userID uint64, err error) {
	fields := map[string]any{
		"userId": userID,
		"error":  err.Error(),
	}
	if le, ok := err.(interface{ LogFields() map[string]any }); ok {
		fields = le.LogFields()
	}

	if errs.IsValidationError(err) {
		c.logger.Warn("Checkout rejected", fields)
		return
	}
	c.logger.Error("Checkout failed", fields)
}

func (c *CheckoutUseCase) publishOrderCreated(ctx context.Context, order *entity.Order) {
	if c.publisher == nil {
		return
	}

	event := OrderCreatedEvent{
		OrderID:   order.ID,
		UserID:    order.UserID,
		Reference: order.Reference,
		Total:     order.FormattedTotal(),
		ItemCount: len(order.Items),
	}
	if err := c.publisher.Publish(ctx, RoutingKeyOrderCreated, event); err != nil {
		// The order is already committed; a broker outage must not fail it
		c.logger.Warn("Failed to publish order event", map[string]any{
			"orderId": order.ID,
			"error":   err.Error(),
		})
	}
}
