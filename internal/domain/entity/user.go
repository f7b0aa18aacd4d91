package entity

import (
	"time"

	errs "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
)

// User roles
const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

// User represents a storefront account with a virtual-currency balance
type User struct {
	ID           uint64
	Name         string
	Email        string
	PasswordHash string
	balance      int64 // balance stored in cents to avoid floating point precision issues (private)
	Role         string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// NewUser creates a new user with the given profile and initial balance
func NewUser(name, email, passwordHash, initialBalance string, timeProvider coreport.TimeProvider) (*User, error) {
	balanceInCents, err := ParseAmount(initialBalance)
	if err != nil {
		return nil, err
	}

	now := timeProvider.Now()
	return &User{
		Name:         name,
		Email:        email,
		PasswordHash: passwordHash,
		balance:      balanceInCents,
		Role:         RoleUser,
		CreatedAt:    now,
		UpdatedAt:    now,
	}, nil
}

// Balance returns the current balance in cents (for internal use)
func (u *User) Balance() int64 {
	return u.balance
}

// FormattedBalance returns the balance as a string with 2 decimal places
func (u *User) FormattedBalance() string {
	return FormatCents(u.balance)
}

// SetBalance updates the balance directly (for internal use, like repositories)
func (u *User) SetBalance(balanceInCents int64, timeProvider coreport.TimeProvider) {
	u.balance = balanceInCents
	u.UpdatedAt = timeProvider.Now()
}

// IsAdmin reports whether the user holds the admin role
func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}

// CanAfford checks if the user has enough balance for a debit of amountInCents
func (u *User) CanAfford(amountInCents int64) bool {
	return u.balance >= amountInCents
}

// Credit adds the amount to the balance. Non-positive amounts are rejected
func (u *User) Credit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if amountInCents <= 0 {
		return errs.ErrInvalidAmount
	}

	u.balance += amountInCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}

// Debit subtracts the amount from the balance if sufficient funds exist.
// Returns ErrInsufficientFunds otherwise; the balance never goes negative
func (u *User) Debit(amountInCents int64, timeProvider coreport.TimeProvider) error {
	if amountInCents < 0 {
		return errs.ErrNegativeAmount
	}
	if u.balance < amountInCents {
		return errs.ErrInsufficientFunds
	}

	u.balance -= amountInCents
	u.UpdatedAt = timeProvider.Now()
	return nil
}
