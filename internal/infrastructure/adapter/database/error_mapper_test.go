package database

import (
	"errors"
	"testing"

	domainErr "github.com/querykicks/querykicks/internal/domain/error"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestMapError(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name     string
		err      error
		expected error
	}{
		{"Nil", nil, nil},
		{"RecordNotFound", gorm.ErrRecordNotFound, domainErr.ErrNotFound},
		{"Deadlock", errors.New("ERROR: deadlock detected (SQLSTATE 40P01)"), domainErr.ErrUserLocked},
		{"Serialization", errors.New("ERROR: could not serialize access due to concurrent update (SQLSTATE 40001)"), domainErr.ErrUserLocked},
		{"DuplicateEmail", errors.New(`ERROR: duplicate key value violates unique constraint "idx_users_email" (SQLSTATE 23505)`), domainErr.ErrDuplicateEmail},
		{"DuplicateOther", errors.New(`ERROR: duplicate key value violates unique constraint "idx_user_locks_user_id" (SQLSTATE 23505)`), domainErr.ErrConstraintViolation},
		{"ForeignKey", errors.New(`ERROR: insert or update violates foreign key constraint "fk_cart_items_cart" (SQLSTATE 23503)`), domainErr.ErrConstraintViolation},
		{"CheckConstraint", errors.New(`ERROR: new row violates check constraint "chk_products_stock" (SQLSTATE 23514)`), domainErr.ErrConstraintViolation},
		{"ConnectionRefused", errors.New("dial tcp 127.0.0.1:5432: connect: connection refused"), domainErr.ErrDatabaseConnection},
		{"Unknown", errors.New("something unexpected happened"), domainErr.ErrInternalServer},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := mapper.MapError(tc.err, "test operation")
			if tc.expected == nil {
				assert.NoError(t, result)
				return
			}
			assert.ErrorIs(t, result, tc.expected)
		})
	}
}

func TestMapErrorTimeout(t *testing.T) {
	mapper := NewErrorMapper()

	err := mapper.MapError(errors.New("context deadline exceeded"), "list products")

	// Timeouts keep the operation name in the wrapped error
	assert.ErrorIs(t, err, domainErr.ErrDatabaseConnection)
	assert.Contains(t, err.Error(), "list products")
}

func TestMapEntityNotFoundError(t *testing.T) {
	mapper := NewErrorMapper()

	testCases := []struct {
		name       string
		entityType EntityType
		expected   error
	}{
		{"User", EntityTypeUser, domainErr.ErrUserNotFound},
		{"Product", EntityTypeProduct, domainErr.ErrProductNotFound},
		{"CartItem", EntityTypeCartItem, domainErr.ErrCartItemNotFound},
		{"Order", EntityTypeOrder, domainErr.ErrOrderNotFound},
		{"UserLock", EntityTypeUserLock, domainErr.ErrNotFound},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := mapper.MapEntityNotFoundError(gorm.ErrRecordNotFound, tc.entityType)
			assert.ErrorIs(t, result, tc.expected)
		})
	}

	// Errors other than record-not-found fall through to the generic mapping
	result := mapper.MapEntityNotFoundError(errors.New("deadlock detected"), EntityTypeUser)
	assert.ErrorIs(t, result, domainErr.ErrUserLocked)

	assert.NoError(t, mapper.MapEntityNotFoundError(nil, EntityTypeUser))
}

func TestEntityShortcuts(t *testing.T) {
	mapper := NewErrorMapper()

	assert.ErrorIs(t, mapper.MapUserNotFoundError(gorm.ErrRecordNotFound), domainErr.ErrUserNotFound)
	assert.ErrorIs(t, mapper.MapProductNotFoundError(gorm.ErrRecordNotFound), domainErr.ErrProductNotFound)
}
