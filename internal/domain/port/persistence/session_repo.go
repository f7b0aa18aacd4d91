package persistence

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
)

// SessionRepository persists session-cookie tokens
type SessionRepository interface {
	// Create saves a new session row
	Create(ctx context.Context, session *entity.Session) error

	// GetByToken retrieves a session by its opaque token
	//
	// Possible errors:
	// - ErrUnauthorized: If no session with the token exists
	GetByToken(ctx context.Context, token string) (*entity.Session, error)

	// Delete removes a session by token; deleting an absent token is not an error
	Delete(ctx context.Context, token string) error

	// DeleteExpired purges all sessions past their expiry
	DeleteExpired(ctx context.Context) error
}
