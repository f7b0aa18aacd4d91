package persistence

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
)

// UserRepository defines essential methods to interact with user data
type UserRepository interface {
	// GetByID retrieves a user by ID
	//
	// Possible errors:
	// - ErrUserNotFound: If user with specified ID doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	GetByID(ctx context.Context, id uint64) (*entity.User, error)

	// GetByEmail retrieves a user by unique email, used for login and
	// duplicate-registration checks
	//
	// Possible errors:
	// - ErrUserNotFound: If no user with the email exists
	// - ErrDatabaseConnection: If database connection fails
	GetByEmail(ctx context.Context, email string) (*entity.User, error)

	// Create creates a new user
	//
	// Possible errors:
	// - ErrDuplicateEmail: If the email is already registered
	// - ErrDatabaseConnection: If database connection fails
	Create(ctx context.Context, user *entity.User) error

	// ListCustomers returns all users holding the "user" role, for the
	// admin back-office
	ListCustomers(ctx context.Context) ([]entity.User, error)

	// CountCustomers returns the number of users holding the "user" role
	CountCustomers(ctx context.Context) (int64, error)

	// AddMoney atomically increments the user's balance by amountInCents
	// (a single UPDATE, never a read-modify-write) and returns the updated user
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrDatabaseConnection: If database connection fails
	AddMoney(ctx context.Context, userID uint64, amountInCents int64) (*entity.User, error)

	// DebitIfAffordable decrements the user's balance by totalCents only when
	// the balance covers it, as a guarded compare-and-swap update. This is the
	// primary method for the checkout debit; the balance can never go negative
	//
	// Possible errors:
	// - ErrUserNotFound: If user doesn't exist
	// - ErrInsufficientFunds: If balance < totalCents (no partial debit occurs)
	// - ErrDatabaseConnection: If database connection fails
	DebitIfAffordable(ctx context.Context, userID uint64, totalCents int64) (*entity.User, error)
}
