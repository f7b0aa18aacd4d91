package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/model"
	"gorm.io/gorm"
)

// UserRepository implements the UserRepository port using GORM
type UserRepository struct {
	db              *gorm.DB
	timeProvider    coreport.TimeProvider
	logger          coreport.Logger
	errorClassifier *ErrorClassifier
}

// NewUserRepository creates a new UserRepository instance
func NewUserRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *UserRepository {
	return &UserRepository{
		db:              db,
		timeProvider:    timeProvider,
		logger:          logger,
		errorClassifier: NewErrorClassifier(),
	}
}

// modelToEntity converts a user model to an entity
func (r *UserRepository) modelToEntity(userModel *model.User) (*entity.User, error) {
	user, err := entity.NewUser(
		userModel.Name,
		userModel.Email,
		userModel.PasswordHash,
		entity.FormatCents(userModel.Money),
		r.timeProvider,
	)
	if err != nil {
		r.logger.Error("Failed to create user entity", map[string]any{
			"user_id": userModel.ID,
			"error":   err.Error(),
		})
		return nil, fmt.Errorf("%w: failed to create user entity: %s", errs.ErrInternalServer, err.Error())
	}

	user.ID = userModel.ID
	user.Role = userModel.Role
	user.CreatedAt = userModel.CreatedAt
	user.UpdatedAt = userModel.UpdatedAt

	return user, nil
}

// handleDatabaseError standardizes database error handling
func (r *UserRepository) handleDatabaseError(operation string, err error, userID uint64) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		r.logger.Warn("User not found", map[string]any{
			"user_id": userID,
		})
		return errs.ErrUserNotFound
	}

	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"user_id": userID,
		"error":   err.Error(),
	})

	if r.errorClassifier.IsDuplicateKeyError(err) {
		return errs.ErrDuplicateEmail
	}

	if r.errorClassifier.IsLockError(err) {
		return errs.ErrUserLocked
	}

	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// GetByID retrieves a user by ID
func (r *UserRepository) GetByID(ctx context.Context, id uint64) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).First(&userModel, id)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user", result.Error, id)
	}

	return r.modelToEntity(&userModel)
}

// GetByEmail retrieves a user by unique email
func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userModel model.User
	result := r.db.WithContext(ctx).Where("email = ?", email).First(&userModel)

	if result.Error != nil {
		return nil, r.handleDatabaseError("getting user by email", result.Error, 0)
	}

	return r.modelToEntity(&userModel)
}

// Create creates a new user and fills in the assigned ID
func (r *UserRepository) Create(ctx context.Context, user *entity.User) error {
	userModel := model.User{
		Name:         user.Name,
		Email:        user.Email,
		PasswordHash: user.PasswordHash,
		Money:        user.Balance(),
		Role:         user.Role,
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}

	result := r.db.WithContext(ctx).Create(&userModel)
	if result.Error != nil {
		return r.handleDatabaseError("creating user", result.Error, 0)
	}

	user.ID = userModel.ID

	r.logger.Info("User created successfully", map[string]any{
		"user_id": user.ID,
		"email":   user.Email,
	})
	return nil
}

// ListCustomers returns all users holding the "user" role
func (r *UserRepository) ListCustomers(ctx context.Context) ([]entity.User, error) {
	var userModels []model.User
	result := r.db.WithContext(ctx).
		Where("role = ?", entity.RoleUser).
		Order("created_at DESC").
		Find(&userModels)

	if result.Error != nil {
		return nil, r.handleDatabaseError("listing customers", result.Error, 0)
	}

	users := make([]entity.User, 0, len(userModels))
	for i := range userModels {
		user, err := r.modelToEntity(&userModels[i])
		if err != nil {
			return nil, err
		}
		users = append(users, *user)
	}
	return users, nil
}

// CountCustomers returns the number of users holding the "user" role
func (r *UserRepository) CountCustomers(ctx context.Context) (int64, error) {
	var count int64
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("role = ?", entity.RoleUser).
		Count(&count)

	if result.Error != nil {
		return 0, r.handleDatabaseError("counting customers", result.Error, 0)
	}
	return count, nil
}

// AddMoney increments the user's balance in a single UPDATE so concurrent
// credits never lose each other, then reloads the updated user
func (r *UserRepository) AddMoney(ctx context.Context, userID uint64, amountInCents int64) (*entity.User, error) {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ?", userID).
		Updates(map[string]interface{}{
			"money":      gorm.Expr("money + ?", amountInCents),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("adding money", result.Error, userID)
	}
	if result.RowsAffected == 0 {
		r.logger.Warn("User not found when adding money", map[string]any{
			"user_id": userID,
		})
		return nil, errs.ErrUserNotFound
	}

	return r.GetByID(ctx, userID)
}

// DebitIfAffordable decrements the user's balance only when it covers the
// total. A guarded compare-and-swap update: zero affected rows with an
// existing user means insufficient funds, and the balance never goes
// negative no matter how many checkouts race.
func (r *UserRepository) DebitIfAffordable(ctx context.Context, userID uint64, totalCents int64) (*entity.User, error) {
	result := r.db.WithContext(ctx).
		Model(&model.User{}).
		Where("id = ? AND money >= ?", userID, totalCents).
		Updates(map[string]interface{}{
			"money":      gorm.Expr("money - ?", totalCents),
			"updated_at": r.timeProvider.Now(),
		})

	if result.Error != nil {
		return nil, r.handleDatabaseError("debiting balance", result.Error, userID)
	}

	if result.RowsAffected == 0 {
		// Distinguish a missing user from one who cannot afford the total
		var exists int64
		if err := r.db.WithContext(ctx).Model(&model.User{}).Where("id = ?", userID).Count(&exists).Error; err != nil {
			return nil, r.handleDatabaseError("checking user existence", err, userID)
		}
		if exists == 0 {
			return nil, errs.ErrUserNotFound
		}

		r.logger.Warn("Insufficient funds for debit", map[string]any{
			"user_id": userID,
			"total":   entity.FormatCents(totalCents),
		})
		return nil, errs.ErrInsufficientFunds
	}

	return r.GetByID(ctx, userID)
}
