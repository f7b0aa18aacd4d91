package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/persistence"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
)

// MinPasswordLength is the minimum accepted password length
const MinPasswordLength = 8

// Options carries the tunables of the auth flow
type Options struct {
	// SessionTTL is how long a session stays valid after login
	SessionTTL coreport.Duration

	// StartingBalance is the spending money granted to new accounts,
	// as a decimal string
	StartingBalance string

	// BcryptCost overrides the hash cost; zero means bcrypt.DefaultCost
	BcryptCost int
}

// AuthUseCase handles registration, login and session resolution
type AuthUseCase struct {
	userRepo     persistence.UserRepository
	sessionRepo  persistence.SessionRepository
	timeProvider coreport.TimeProvider
	logger       coreport.Logger
	opts         Options
}

// NewAuthUseCase creates a new AuthUseCase
func NewAuthUseCase(
	userRepo persistence.UserRepository,
	sessionRepo persistence.SessionRepository,
	timeProvider coreport.TimeProvider,
	logger coreport.Logger,
	opts Options,
) *AuthUseCase {
	if opts.BcryptCost == 0 {
		opts.BcryptCost = bcrypt.DefaultCost
	}
	return &AuthUseCase{
		userRepo:     userRepo,
		sessionRepo:  sessionRepo,
		timeProvider: timeProvider,
		logger:       logger,
		opts:         opts,
	}
}

// Register creates a new customer account and opens a session for it
func (a *AuthUseCase) Register(ctx context.Context, req usecase.RegisterRequest) (*usecase.AuthResult, error) {
	name := strings.TrimSpace(req.Name)
	email := normalizeEmail(req.Email)

	if err := validateRegistration(name, email, req.Password); err != nil {
		return nil, err
	}

	// Check for an existing account first to give a clean error; the
	// unique index on email still catches races at insert time
	if _, err := a.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, errs.ErrDuplicateEmail
	} else if !errs.IsUserNotFoundError(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), a.opts.BcryptCost)
	if err != nil {
		a.logger.Error("Failed to hash password", map[string]any{
			"error": err.Error(),
		})
		return nil, errs.ErrInternalServer
	}

	user, err := entity.NewUser(name, email, string(hash), a.opts.StartingBalance, a.timeProvider)
	if err != nil {
		return nil, err
	}

	if err := a.userRepo.Create(ctx, user); err != nil {
		a.logger.Error("Failed to create user", map[string]any{
			"email": email,
			"error": err.Error(),
		})
		return nil, err
	}

	a.logger.Info("User registered", map[string]any{
		"userId": user.ID,
		"email":  email,
	})

	return a.openSession(ctx, user)
}

// Login verifies credentials and opens a session. Missing user and wrong
// password are indistinguishable to the caller.
func (a *AuthUseCase) Login(ctx context.Context, req usecase.LoginRequest) (*usecase.AuthResult, error) {
	email := normalizeEmail(req.Email)

	user, err := a.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return nil, errs.ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		a.logger.Warn("Login failed", map[string]any{
			"email": email,
		})
		return nil, errs.ErrInvalidCredentials
	}

	// Opportunistic cleanup; login is the natural moment, and losing the
	// race to another login is harmless
	if err := a.sessionRepo.DeleteExpired(ctx); err != nil {
		a.logger.Warn("Failed to purge expired sessions", map[string]any{
			"error": err.Error(),
		})
	}

	a.logger.Info("User logged in", map[string]any{
		"userId": user.ID,
	})

	return a.openSession(ctx, user)
}

// Logout invalidates the session behind the given token; unknown tokens
// are ignored
func (a *AuthUseCase) Logout(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return a.sessionRepo.Delete(ctx, token)
}

// Authenticate resolves a session token to its user
func (a *AuthUseCase) Authenticate(ctx context.Context, token string) (*entity.User, error) {
	if token == "" {
		return nil, errs.ErrUnauthorized
	}

	session, err := a.sessionRepo.GetByToken(ctx, token)
	if err != nil {
		return nil, err
	}

	if session.Expired(a.timeProvider.Now()) {
		// Remove the stale row so the table does not accumulate tombstones
		_ = a.sessionRepo.Delete(ctx, token)
		return nil, errs.ErrUnauthorized
	}

	user, err := a.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errs.IsUserNotFoundError(err) {
			return nil, errs.ErrUnauthorized
		}
		return nil, err
	}

	return user, nil
}

func (a *AuthUseCase) openSession(ctx context.Context, user *entity.User) (*usecase.AuthResult, error) {
	now := a.timeProvider.Now()
	session := &entity.Session{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: now.Add(a.opts.SessionTTL.Std()),
		CreatedAt: now,
	}

	if err := a.sessionRepo.Create(ctx, session); err != nil {
		a.logger.Error("Failed to create session", map[string]any{
			"userId": user.ID,
			"error":  err.Error(),
		})
		return nil, err
	}

	return &usecase.AuthResult{User: user, Token: session.Token}, nil
}

func validateRegistration(name, email, password string) error {
	if name == "" || email == "" {
		return errs.ErrInvalidRegistration
	}
	if !strings.Contains(email, "@") {
		return errs.ErrInvalidRegistration
	}
	if len(password) < MinPasswordLength {
		return errs.ErrInvalidRegistration
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
