package usecase

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
)

// BalanceResponse represents the standardized balance payload
type BalanceResponse struct {
	UserID  uint64 `json:"userId"`
	Balance string `json:"balance"` // Formatted with 2 decimal places
}

// UserUseCase defines methods for user accounts and virtual currency
type UserUseCase interface {
	// GetFormattedBalance retrieves the user's balance formatted for display
	GetFormattedBalance(ctx context.Context, userID uint64) (*BalanceResponse, error)

	// AddMoney credits the user's balance by a positive decimal amount
	AddMoney(ctx context.Context, userID uint64, amount string) (*BalanceResponse, error)

	// CanAfford reports whether the user's balance covers the given decimal amount
	CanAfford(ctx context.Context, userID uint64, amount string) (bool, error)

	// GetByID retrieves a user by ID
	GetByID(ctx context.Context, userID uint64) (*entity.User, error)
}
