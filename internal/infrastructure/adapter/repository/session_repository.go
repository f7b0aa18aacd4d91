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

// SessionRepository implements the SessionRepository port using GORM
type SessionRepository struct {
	db           *gorm.DB
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
}

// NewSessionRepository creates a new SessionRepository instance
func NewSessionRepository(db *gorm.DB, timeProvider coreport.TimeProvider, logger coreport.Logger) *SessionRepository {
	return &SessionRepository{
		db:           db,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

func (r *SessionRepository) wrapError(operation string, err error) error {
	r.logger.Error(fmt.Sprintf("Database error when %s", operation), map[string]any{
		"error": err.Error(),
	})
	return fmt.Errorf("%w: %s", errs.ErrDatabaseConnection, err.Error())
}

// Create saves a new session row and fills in the assigned ID
func (r *SessionRepository) Create(ctx context.Context, session *entity.Session) error {
	sessionModel := model.Session{
		UserID:    session.UserID,
		Token:     session.Token,
		ExpiresAt: session.ExpiresAt,
		CreatedAt: session.CreatedAt,
	}

	if err := r.db.WithContext(ctx).Create(&sessionModel).Error; err != nil {
		return r.wrapError("creating session", err)
	}

	session.ID = sessionModel.ID
	return nil
}

// GetByToken retrieves a session by its opaque token. Unknown tokens map
// to ErrUnauthorized so callers never learn whether a token ever existed.
func (r *SessionRepository) GetByToken(ctx context.Context, token string) (*entity.Session, error) {
	var sessionModel model.Session
	err := r.db.WithContext(ctx).Where("token = ?", token).First(&sessionModel).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, errs.ErrUnauthorized
	}
	if err != nil {
		return nil, r.wrapError("getting session", err)
	}

	return &entity.Session{
		ID:        sessionModel.ID,
		UserID:    sessionModel.UserID,
		Token:     sessionModel.Token,
		ExpiresAt: sessionModel.ExpiresAt,
		CreatedAt: sessionModel.CreatedAt,
	}, nil
}

// Delete removes a session by token; deleting an absent token is a no-op
func (r *SessionRepository) Delete(ctx context.Context, token string) error {
	result := r.db.WithContext(ctx).Where("token = ?", token).Delete(&model.Session{})
	if result.Error != nil {
		return r.wrapError("deleting session", result.Error)
	}
	return nil
}

// DeleteExpired purges all sessions past their expiry
func (r *SessionRepository) DeleteExpired(ctx context.Context) error {
	now := r.timeProvider.Now()
	result := r.db.WithContext(ctx).Where("expires_at <= ?", now).Delete(&model.Session{})

	if result.Error != nil {
		return r.wrapError("purging expired sessions", result.Error)
	}

	if result.RowsAffected > 0 {
		r.logger.Debug("Expired sessions purged", map[string]any{
			"sessions_removed": result.RowsAffected,
		})
	}
	return nil
}
