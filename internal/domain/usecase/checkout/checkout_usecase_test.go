package checkout

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	coremocks "github.com/querykicks/querykicks/mocks/port/core"
	persistencemocks "github.com/querykicks/querykicks/mocks/port/persistence"
)

type checkoutMocks struct {
	uow       *persistencemocks.MockUnitOfWork
	lockRepo  *persistencemocks.MockUserLockRepository
	orderRepo *persistencemocks.MockOrderRepository
	userRepo  *persistencemocks.MockUserRepository
	product   *persistencemocks.MockProductRepository
	cart      *persistencemocks.MockCartRepository
	time      *coremocks.MockTimeProvider
	logger    *coremocks.MockLogger
}

func newCheckoutMocks(t *testing.T) *checkoutMocks {
	m := &checkoutMocks{
		uow:       persistencemocks.NewMockUnitOfWork(t),
		lockRepo:  persistencemocks.NewMockUserLockRepository(t),
		orderRepo: persistencemocks.NewMockOrderRepository(t),
		userRepo:  persistencemocks.NewMockUserRepository(t),
		product:   persistencemocks.NewMockProductRepository(t),
		cart:      persistencemocks.NewMockCartRepository(t),
		time:      coremocks.NewMockTimeProvider(t),
		logger:    coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	m.uow.EXPECT().GetUserRepository(mock.Anything).Return(m.userRepo).Maybe()
	m.uow.EXPECT().GetProductRepository(mock.Anything).Return(m.product).Maybe()
	m.uow.EXPECT().GetCartRepository(mock.Anything).Return(m.cart).Maybe()
	m.uow.EXPECT().GetOrderRepository(mock.Anything).Return(m.orderRepo).Maybe()
	return m
}

func (m *checkoutMocks) useCase(publisher coreport.EventPublisher) *CheckoutUseCase {
	return NewCheckoutUseCase(m.uow, m.lockRepo, m.orderRepo, publisher, m.time, m.logger, 30*coreport.Second)
}

func userWithBalance(t *testing.T, tp *coremocks.MockTimeProvider, balance string) *entity.User {
	user, err := entity.NewUser("Kim", "kim@example.com", "hash", balance, tp)
	require.NoError(t, err)
	user.ID = 42
	return user
}

func TestCheckout(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	lines := []entity.CartLine{
		{CartItemID: 9, ProductID: 7, Name: "Air Zoom", PriceCents: 12999, Quantity: 2, Stock: 5},
		{CartItemID: 10, ProductID: 8, Name: "Court Classic", PriceCents: 8950, Quantity: 1, Stock: 3},
	}
	totalCents := int64(2*12999 + 8950) // 349.48

	t.Run("Successful checkout runs the full pipeline", func(t *testing.T) {
		m := newCheckoutMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Maybe()

		txCtx := context.WithValue(ctx, struct{ k string }{"tx"}, "tx")
		user := userWithBalance(t, m.time, "500.00")
		require.NoError(t, user.Debit(totalCents, m.time))

		m.lockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), 30*coreport.Second).Return(nil).Once()
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.cart.EXPECT().ListLines(txCtx, uint64(42)).Return(lines, nil).Once()
		m.userRepo.EXPECT().DebitIfAffordable(txCtx, uint64(42), totalCents).Return(user, nil).Once()
		m.product.EXPECT().DecrementStock(txCtx, uint64(7), 2).Return(nil).Once()
		m.product.EXPECT().DecrementStock(txCtx, uint64(8), 1).Return(nil).Once()
		m.orderRepo.EXPECT().Create(txCtx, mock.MatchedBy(func(order *entity.Order) bool {
			return order.UserID == 42 &&
				order.TotalCents == totalCents &&
				order.Status == entity.OrderStatusPaid &&
				order.Reference != "" &&
				len(order.Items) == 2
		})).Run(func(ctx context.Context, order *entity.Order) {
			order.ID = 1001
		}).Return(nil).Once()
		m.cart.EXPECT().Clear(txCtx, uint64(42)).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.lockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()

		publisher := coremocks.NewMockEventPublisher(t)
		publisher.EXPECT().Publish(mock.Anything, RoutingKeyOrderCreated, mock.MatchedBy(func(event OrderCreatedEvent) bool {
			return event.OrderID == 1001 && event.UserID == 42 && event.Total == "349.48" && event.ItemCount == 2
		})).Return(nil).Once()

		result, err := m.useCase(publisher).Checkout(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, uint64(1001), result.Order.ID)
		assert.Equal(t, "349.48", result.FormattedTotal)
		assert.Equal(t, "150.52", result.ResultBalance)
		assert.Equal(t, fixedTime, result.Order.CreatedAt)
	})

	t.Run("Empty cart rolls back and never debits", func(t *testing.T) {
		m := newCheckoutMocks(t)
		txCtx := context.Background()

		m.lockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), mock.Anything).Return(nil).Once()
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.cart.EXPECT().ListLines(txCtx, uint64(42)).Return([]entity.CartLine{}, nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()
		m.lockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()

		result, err := m.useCase(nil).Checkout(ctx, 42)

		assert.ErrorIs(t, err, errs.ErrEmptyCart)
		assert.Nil(t, result)
		m.userRepo.AssertNotCalled(t, "DebitIfAffordable", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("Insufficient funds rolls back with detailed error", func(t *testing.T) {
		m := newCheckoutMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Maybe()
		txCtx := context.Background()
		user := userWithBalance(t, m.time, "10.00")

		m.lockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), mock.Anything).Return(nil).Once()
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.cart.EXPECT().ListLines(txCtx, uint64(42)).Return(lines, nil).Once()
		m.userRepo.EXPECT().DebitIfAffordable(txCtx, uint64(42), totalCents).Return(nil, errs.ErrInsufficientFunds).Once()
		m.userRepo.EXPECT().GetByID(txCtx, uint64(42)).Return(user, nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()
		m.lockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()

		result, err := m.useCase(nil).Checkout(ctx, 42)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)

		var fundsErr *errs.InsufficientFundsError
		require.ErrorAs(t, err, &fundsErr)
		assert.Equal(t, "349.48", fundsErr.Total)
		assert.Equal(t, "10.00", fundsErr.CurrBalance)
	})

	t.Run("Stock shortage on any line rolls everything back", func(t *testing.T) {
		m := newCheckoutMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Maybe()
		txCtx := context.Background()
		user := userWithBalance(t, m.time, "500.00")

		m.lockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), mock.Anything).Return(nil).Once()
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.cart.EXPECT().ListLines(txCtx, uint64(42)).Return(lines, nil).Once()
		m.userRepo.EXPECT().DebitIfAffordable(txCtx, uint64(42), totalCents).Return(user, nil).Once()
		m.product.EXPECT().DecrementStock(txCtx, uint64(7), 2).Return(nil).Once()
		m.product.EXPECT().DecrementStock(txCtx, uint64(8), 1).Return(errs.ErrInsufficientStock).Once()
		m.product.EXPECT().GetByID(txCtx, uint64(8)).Return(&entity.Product{ID: 8, Name: "Court Classic", Stock: 0}, nil).Once()
		m.uow.EXPECT().Rollback(txCtx).Return(nil).Once()
		m.lockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()

		result, err := m.useCase(nil).Checkout(ctx, 42)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInsufficientStock)
		m.orderRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("Concurrent checkout is rejected before any transaction", func(t *testing.T) {
		m := newCheckoutMocks(t)

		m.lockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), mock.Anything).Return(errs.ErrUserLocked).Once()

		result, err := m.useCase(nil).Checkout(ctx, 42)

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrUserLocked)
		m.uow.AssertNotCalled(t, "Begin", mock.Anything)
	})

	t.Run("Commit failure surfaces as a checkout error", func(t *testing.T) {
		m := newCheckoutMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Maybe()
		txCtx := context.Background()
		user := userWithBalance(t, m.time, "500.00")

		m.lockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), mock.Anything).Return(nil).Once()
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.cart.EXPECT().ListLines(txCtx, uint64(42)).Return(lines, nil).Once()
		m.userRepo.EXPECT().DebitIfAffordable(txCtx, uint64(42), totalCents).Return(user, nil).Once()
		m.product.EXPECT().DecrementStock(txCtx, uint64(7), 2).Return(nil).Once()
		m.product.EXPECT().DecrementStock(txCtx, uint64(8), 1).Return(nil).Once()
		m.orderRepo.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		m.cart.EXPECT().Clear(txCtx, uint64(42)).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(errors.New("serialization failure")).Once()
		m.lockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()

		result, err := m.useCase(nil).Checkout(ctx, 42)

		assert.Nil(t, result)

		var checkoutErr *errs.CheckoutError
		require.ErrorAs(t, err, &checkoutErr)
		assert.Equal(t, "commit", checkoutErr.Step)
	})

	t.Run("Broker outage does not fail a committed checkout", func(t *testing.T) {
		m := newCheckoutMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Maybe()
		txCtx := context.Background()
		user := userWithBalance(t, m.time, "500.00")

		m.lockRepo.EXPECT().AcquireLock(mock.Anything, uint64(42), mock.Anything).Return(nil).Once()
		m.uow.EXPECT().Begin(mock.Anything).Return(txCtx, nil).Once()
		m.cart.EXPECT().ListLines(txCtx, uint64(42)).Return(lines, nil).Once()
		m.userRepo.EXPECT().DebitIfAffordable(txCtx, uint64(42), totalCents).Return(user, nil).Once()
		m.product.EXPECT().DecrementStock(txCtx, uint64(7), 2).Return(nil).Once()
		m.product.EXPECT().DecrementStock(txCtx, uint64(8), 1).Return(nil).Once()
		m.orderRepo.EXPECT().Create(txCtx, mock.Anything).Return(nil).Once()
		m.cart.EXPECT().Clear(txCtx, uint64(42)).Return(nil).Once()
		m.uow.EXPECT().Commit(txCtx).Return(nil).Once()
		m.lockRepo.EXPECT().ReleaseLock(mock.Anything, uint64(42)).Return(nil).Once()

		publisher := coremocks.NewMockEventPublisher(t)
		publisher.EXPECT().Publish(mock.Anything, RoutingKeyOrderCreated, mock.Anything).Return(errors.New("broker down")).Once()

		result, err := m.useCase(publisher).Checkout(ctx, 42)

		require.NoError(t, err)
		assert.NotNil(t, result)
	})
}

func TestListOrders(t *testing.T) {
	m := newCheckoutMocks(t)
	orders := []entity.Order{
		{ID: 2, UserID: 42, TotalCents: 8950},
		{ID: 1, UserID: 42, TotalCents: 12999},
	}
	m.orderRepo.EXPECT().ListByUser(mock.Anything, uint64(42)).Return(orders, nil).Once()

	got, err := m.useCase(nil).ListOrders(context.Background(), 42)

	require.NoError(t, err)
	assert.Equal(t, orders, got)
}
