package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
	coremocks "github.com/querykicks/querykicks/mocks/port/core"
	persistencemocks "github.com/querykicks/querykicks/mocks/port/persistence"
)

type catalogMocks struct {
	productRepo *persistencemocks.MockProductRepository
	userRepo    *persistencemocks.MockUserRepository
	orderRepo   *persistencemocks.MockOrderRepository
	time        *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
}

func newCatalogMocks(t *testing.T) *catalogMocks {
	m := &catalogMocks{
		productRepo: persistencemocks.NewMockProductRepository(t),
		userRepo:    persistencemocks.NewMockUserRepository(t),
		orderRepo:   persistencemocks.NewMockOrderRepository(t),
		time:        coremocks.NewMockTimeProvider(t),
		logger:      coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *catalogMocks) useCase() *CatalogUseCase {
	return NewCatalogUseCase(m.productRepo, m.userRepo, m.orderRepo, m.time, m.logger)
}

func TestCreateProduct(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Creates a validated product", func(t *testing.T) {
		m := newCatalogMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Once()

		m.productRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(product *entity.Product) bool {
			return product.Name == "Air Zoom" && product.PriceCents == 12999 && product.Stock == 10
		})).Run(func(ctx context.Context, product *entity.Product) {
			product.ID = 7
		}).Return(nil).Once()

		product, err := m.useCase().CreateProduct(ctx, usecase.ProductInput{
			Name:        " Air Zoom ",
			Description: "Lightweight runner",
			Price:       "129.99",
			Stock:       10,
			ImageURL:    "/img/air-zoom.png",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(7), product.ID)
	})

	t.Run("Validation failures never reach the repository", func(t *testing.T) {
		m := newCatalogMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Maybe()
		catalogUseCase := m.useCase()

		testCases := []struct {
			name  string
			input usecase.ProductInput
			want  error
		}{
			{"blank name", usecase.ProductInput{Name: "  ", Price: "10.00", Stock: 1}, errs.ErrInvalidProductName},
			{"bad price", usecase.ProductInput{Name: "X", Price: "10.123", Stock: 1}, errs.ErrInvalidAmount},
			{"negative price", usecase.ProductInput{Name: "X", Price: "-1.00", Stock: 1}, errs.ErrNegativeAmount},
			{"negative stock", usecase.ProductInput{Name: "X", Price: "10.00", Stock: -1}, errs.ErrInvalidQuantity},
		}

		for _, tc := range testCases {
			t.Run(tc.name, func(t *testing.T) {
				product, err := catalogUseCase.CreateProduct(ctx, tc.input)
				assert.Nil(t, product)
				assert.ErrorIs(t, err, tc.want)
			})
		}
	})
}

func TestUpdateProduct(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Replaces attributes and touches UpdatedAt", func(t *testing.T) {
		m := newCatalogMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Once()

		existing := &entity.Product{ID: 7, Name: "Air Zoom", PriceCents: 12999, Stock: 10}
		m.productRepo.EXPECT().GetByID(mock.Anything, uint64(7)).Return(existing, nil).Once()
		m.productRepo.EXPECT().Update(mock.Anything, mock.MatchedBy(func(product *entity.Product) bool {
			return product.ID == 7 &&
				product.Name == "Air Zoom 2" &&
				product.PriceCents == 14999 &&
				product.Stock == 4 &&
				product.UpdatedAt.Equal(fixedTime)
		})).Return(nil).Once()

		product, err := m.useCase().UpdateProduct(ctx, 7, usecase.ProductInput{
			Name:  "Air Zoom 2",
			Price: "149.99",
			Stock: 4,
		})

		require.NoError(t, err)
		assert.Equal(t, "149.99", product.FormattedPrice())
	})

	t.Run("Unknown product", func(t *testing.T) {
		m := newCatalogMocks(t)
		m.productRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrProductNotFound).Once()

		product, err := m.useCase().UpdateProduct(ctx, 99, usecase.ProductInput{Name: "X", Price: "10.00"})

		assert.Nil(t, product)
		assert.ErrorIs(t, err, errs.ErrProductNotFound)
	})
}

func TestGrantMoney(t *testing.T) {
	ctx := context.Background()

	t.Run("Credits the customer", func(t *testing.T) {
		m := newCatalogMocks(t)

		credited := &entity.User{ID: 42}
		m.userRepo.EXPECT().AddMoney(mock.Anything, uint64(42), int64(5000)).Return(credited, nil).Once()

		user, err := m.useCase().GrantMoney(ctx, 42, "50.00")

		require.NoError(t, err)
		assert.Equal(t, credited, user)
	})

	t.Run("Non-positive grants are rejected", func(t *testing.T) {
		m := newCatalogMocks(t)
		catalogUseCase := m.useCase()

		_, err := catalogUseCase.GrantMoney(ctx, 42, "0.00")
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)

		_, err = catalogUseCase.GrantMoney(ctx, 42, "-5.00")
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})
}

func TestGetDashboardStats(t *testing.T) {
	m := newCatalogMocks(t)

	m.productRepo.EXPECT().Count(mock.Anything).Return(12, nil).Once()
	m.userRepo.EXPECT().CountCustomers(mock.Anything).Return(34, nil).Once()
	m.orderRepo.EXPECT().Count(mock.Anything).Return(56, nil).Once()

	stats, err := m.useCase().GetDashboardStats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, int64(12), stats.ProductCount)
	assert.Equal(t, int64(34), stats.CustomerCount)
	assert.Equal(t, int64(56), stats.OrderCount)
}

func TestDeleteProduct(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes from the catalog", func(t *testing.T) {
		m := newCatalogMocks(t)
		m.productRepo.EXPECT().Delete(mock.Anything, uint64(7)).Return(nil).Once()

		require.NoError(t, m.useCase().DeleteProduct(ctx, 7))
	})

	t.Run("Unknown product", func(t *testing.T) {
		m := newCatalogMocks(t)
		m.productRepo.EXPECT().Delete(mock.Anything, uint64(99)).Return(errs.ErrProductNotFound).Once()

		assert.ErrorIs(t, m.useCase().DeleteProduct(ctx, 99), errs.ErrProductNotFound)
	})
}
