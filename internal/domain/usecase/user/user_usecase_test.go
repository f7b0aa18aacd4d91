package user

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	coremocks "github.com/querykicks/querykicks/mocks/port/core"
	persistencemocks "github.com/querykicks/querykicks/mocks/port/persistence"
)

func newTestUser(t *testing.T, balance string) *entity.User {
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)).Once()

	user, err := entity.NewUser("Kim", "kim@example.com", "hash", balance, mockTime)
	require.NoError(t, err)
	user.ID = 42
	return user
}

func quietLogger(t *testing.T) *coremocks.MockLogger {
	mockLogger := coremocks.NewMockLogger(t)
	mockLogger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	mockLogger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return mockLogger
}

func TestGetFormattedBalance(t *testing.T) {
	ctx := context.Background()

	t.Run("Returns the formatted balance", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(newTestUser(t, "123.45"), nil).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, quietLogger(t))
		resp, err := userUseCase.GetFormattedBalance(ctx, 42)

		require.NoError(t, err)
		assert.Equal(t, uint64(42), resp.UserID)
		assert.Equal(t, "123.45", resp.Balance)
	})

	t.Run("Unknown user", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().GetByID(mock.Anything, uint64(99)).Return(nil, errs.ErrUserNotFound).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, quietLogger(t))
		resp, err := userUseCase.GetFormattedBalance(ctx, 99)

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrUserNotFound)
	})
}

func TestAddMoney(t *testing.T) {
	ctx := context.Background()

	t.Run("Credits via a single atomic update", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		mockRepo.EXPECT().AddMoney(mock.Anything, uint64(42), int64(2550)).Return(newTestUser(t, "125.50"), nil).Once()

		userUseCase := NewUserUseCase(mockRepo, mockTime, quietLogger(t))
		resp, err := userUseCase.AddMoney(ctx, 42, "25.50")

		require.NoError(t, err)
		assert.Equal(t, "125.50", resp.Balance)
	})

	t.Run("Zero amount is rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		userUseCase := NewUserUseCase(mockRepo, mockTime, quietLogger(t))
		resp, err := userUseCase.AddMoney(ctx, 42, "0.00")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})

	t.Run("Negative amount is rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		userUseCase := NewUserUseCase(mockRepo, mockTime, quietLogger(t))
		resp, err := userUseCase.AddMoney(ctx, 42, "-5.00")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
	})

	t.Run("Malformed amount is rejected", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		userUseCase := NewUserUseCase(mockRepo, mockTime, quietLogger(t))
		resp, err := userUseCase.AddMoney(ctx, 42, "5.123")

		assert.Nil(t, resp)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}

func TestCanAfford(t *testing.T) {
	ctx := context.Background()

	t.Run("Covers boundary amounts", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		user := newTestUser(t, "50.00")
		mockRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(user, nil).Times(3)

		userUseCase := NewUserUseCase(mockRepo, mockTime, quietLogger(t))

		for amount, expected := range map[string]bool{
			"49.99": true,
			"50.00": true,
			"50.01": false,
		} {
			ok, err := userUseCase.CanAfford(ctx, 42, amount)
			require.NoError(t, err)
			assert.Equal(t, expected, ok, amount)
		}
	})

	t.Run("Malformed amount", func(t *testing.T) {
		mockRepo := persistencemocks.NewMockUserRepository(t)
		mockTime := coremocks.NewMockTimeProvider(t)

		userUseCase := NewUserUseCase(mockRepo, mockTime, quietLogger(t))
		_, err := userUseCase.CanAfford(ctx, 42, "nope")

		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
	})
}
