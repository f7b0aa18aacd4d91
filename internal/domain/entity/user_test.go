package entity

import (
	"testing"
	"time"

	errs "github.com/querykicks/querykicks/internal/domain/error"
	coremocks "github.com/querykicks/querykicks/mocks/port/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	t.Run("Valid user creation", func(t *testing.T) {
		user, err := NewUser("Kim", "kim@example.com", "hash", "100.00", mockTime)

		require.NoError(t, err)
		assert.Equal(t, "Kim", user.Name)
		assert.Equal(t, "kim@example.com", user.Email)
		assert.Equal(t, int64(10000), user.Balance())
		assert.Equal(t, "100.00", user.FormattedBalance())
		assert.Equal(t, RoleUser, user.Role)
		assert.False(t, user.IsAdmin())
		assert.Equal(t, fixedTime, user.CreatedAt)
		assert.Equal(t, fixedTime, user.UpdatedAt)
	})

	t.Run("Invalid balance format", func(t *testing.T) {
		for _, balance := range []string{"invalid", "", "100.123", "$100.00"} {
			t.Run(balance, func(t *testing.T) {
				user, err := NewUser("Kim", "kim@example.com", "hash", balance, mockTime)
				assert.Error(t, err)
				assert.Nil(t, user)
			})
		}
	})

	t.Run("Negative initial balance is rejected", func(t *testing.T) {
		user, err := NewUser("Kim", "kim@example.com", "hash", "-1.00", mockTime)
		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		assert.Nil(t, user)
	})
}

func TestUserCredit(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	laterTime := fixedTime.Add(time.Hour)

	newUser := func(t *testing.T) (*User, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Once()
		user, err := NewUser("Kim", "kim@example.com", "hash", "100.00", mockTime)
		require.NoError(t, err)
		return user, mockTime
	}

	t.Run("Credit increases balance and touches UpdatedAt", func(t *testing.T) {
		user, mockTime := newUser(t)
		mockTime.EXPECT().Now().Return(laterTime).Once()

		err := user.Credit(2550, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(12550), user.Balance())
		assert.Equal(t, "125.50", user.FormattedBalance())
		assert.Equal(t, laterTime, user.UpdatedAt)
	})

	t.Run("Zero credit is rejected", func(t *testing.T) {
		user, _ := newUser(t)
		err := user.Credit(0, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, int64(10000), user.Balance())
	})

	t.Run("Negative credit is rejected", func(t *testing.T) {
		user, _ := newUser(t)
		err := user.Credit(-100, nil)
		assert.ErrorIs(t, err, errs.ErrInvalidAmount)
		assert.Equal(t, int64(10000), user.Balance())
	})
}

func TestUserDebit(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	newUser := func(t *testing.T) (*User, *coremocks.MockTimeProvider) {
		mockTime := coremocks.NewMockTimeProvider(t)
		mockTime.EXPECT().Now().Return(fixedTime).Maybe()
		user, err := NewUser("Kim", "kim@example.com", "hash", "100.00", mockTime)
		require.NoError(t, err)
		return user, mockTime
	}

	t.Run("Debit decreases balance", func(t *testing.T) {
		user, mockTime := newUser(t)

		err := user.Debit(2550, mockTime)

		require.NoError(t, err)
		assert.Equal(t, "74.50", user.FormattedBalance())
	})

	t.Run("Debit of the exact balance succeeds", func(t *testing.T) {
		user, mockTime := newUser(t)

		err := user.Debit(10000, mockTime)

		require.NoError(t, err)
		assert.Equal(t, int64(0), user.Balance())
	})

	t.Run("Insufficient funds leaves the balance untouched", func(t *testing.T) {
		user, mockTime := newUser(t)

		err := user.Debit(10001, mockTime)

		assert.ErrorIs(t, err, errs.ErrInsufficientFunds)
		assert.Equal(t, int64(10000), user.Balance())
	})

	t.Run("Negative debit is rejected", func(t *testing.T) {
		user, mockTime := newUser(t)

		err := user.Debit(-1, mockTime)

		assert.ErrorIs(t, err, errs.ErrNegativeAmount)
		assert.Equal(t, int64(10000), user.Balance())
	})
}

func TestUserCanAfford(t *testing.T) {
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	mockTime := coremocks.NewMockTimeProvider(t)
	mockTime.EXPECT().Now().Return(fixedTime).Maybe()

	user, err := NewUser("Kim", "kim@example.com", "hash", "50.00", mockTime)
	require.NoError(t, err)

	assert.True(t, user.CanAfford(4999))
	assert.True(t, user.CanAfford(5000))
	assert.False(t, user.CanAfford(5001))
}

func TestUserIsAdmin(t *testing.T) {
	user := &User{Role: RoleAdmin}
	assert.True(t, user.IsAdmin())

	user.Role = RoleUser
	assert.False(t, user.IsAdmin())
}
