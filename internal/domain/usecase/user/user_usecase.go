package user

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/persistence"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
)

// UserUseCase handles account and virtual-currency business logic
type UserUseCase struct {
	userRepo     persistence.UserRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewUserUseCase creates a new UserUseCase
func NewUserUseCase(
	userRepo persistence.UserRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
) *UserUseCase {
	return &UserUseCase{
		userRepo:     userRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// GetByID retrieves a user by ID
func (u *UserUseCase) GetByID(ctx context.Context, userID uint64) (*entity.User, error) {
	return u.userRepo.GetByID(ctx, userID)
}

// GetFormattedBalance retrieves the user's balance formatted for display
func (u *UserUseCase) GetFormattedBalance(ctx context.Context, userID uint64) (*usecase.BalanceResponse, error) {
	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &usecase.BalanceResponse{
		UserID:  user.ID,
		Balance: user.FormattedBalance(),
	}, nil
}

// CanAfford reports whether the user's balance covers the given decimal
// amount. It is a pure read; checkout re-verifies under the transaction.
func (u *UserUseCase) CanAfford(ctx context.Context, userID uint64, amount string) (bool, error) {
	amountInCents, err := entity.ParseAmount(amount)
	if err != nil {
		return false, err
	}

	user, err := u.userRepo.GetByID(ctx, userID)
	if err != nil {
		return false, err
	}

	return user.CanAfford(amountInCents), nil
}

// AddMoney credits the user's balance by a positive decimal amount.
// The increment happens in a single UPDATE so concurrent credits
// never lose each other.
func (u *UserUseCase) AddMoney(ctx context.Context, userID uint64, amount string) (*usecase.BalanceResponse, error) {
	amountInCents, err := entity.ParseAmount(amount)
	if err != nil {
		return nil, err
	}
	if amountInCents <= 0 {
		return nil, errs.ErrInvalidAmount
	}

	user, err := u.userRepo.AddMoney(ctx, userID, amountInCents)
	if err != nil {
		u.logger.Error("Failed to add money", map[string]any{
			"userId": userID,
			"amount": amount,
			"error":  err.Error(),
		})
		return nil, err
	}

	u.logger.Info("Money added", map[string]any{
		"userId":        userID,
		"amount":        amount,
		"resultBalance": user.FormattedBalance(),
	})

	return &usecase.BalanceResponse{
		UserID:  user.ID,
		Balance: user.FormattedBalance(),
	}, nil
}
