package usecase

import (
	"context"

	"github.com/querykicks/querykicks/internal/domain/entity"
)

// RegisterRequest represents an incoming registration request
type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginRequest represents an incoming login request
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult carries the authenticated user together with the session
// token handed back to the browser as a cookie.
type AuthResult struct {
	User  *entity.User
	Token string
}

// AuthUseCase defines methods for authentication and session management
type AuthUseCase interface {
	// Register creates a new customer account and opens a session for it
	Register(ctx context.Context, req RegisterRequest) (*AuthResult, error)

	// Login verifies credentials and opens a session
	Login(ctx context.Context, req LoginRequest) (*AuthResult, error)

	// Logout invalidates the session behind the given token
	Logout(ctx context.Context, token string) error

	// Authenticate resolves a session token to its user
	Authenticate(ctx context.Context, token string) (*entity.User, error)
}
