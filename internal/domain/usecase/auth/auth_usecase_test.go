package auth

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/querykicks/querykicks/internal/domain/entity"
	errs "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
	coremocks "github.com/querykicks/querykicks/mocks/port/core"
	persistencemocks "github.com/querykicks/querykicks/mocks/port/persistence"
)

var testOptions = Options{
	SessionTTL:      24 * coreport.Hour,
	StartingBalance: "100.00",
	BcryptCost:      bcrypt.MinCost,
}

type authMocks struct {
	userRepo    *persistencemocks.MockUserRepository
	sessionRepo *persistencemocks.MockSessionRepository
	time        *coremocks.MockTimeProvider
	logger      *coremocks.MockLogger
}

func newAuthMocks(t *testing.T) *authMocks {
	m := &authMocks{
		userRepo:    persistencemocks.NewMockUserRepository(t),
		sessionRepo: persistencemocks.NewMockSessionRepository(t),
		time:        coremocks.NewMockTimeProvider(t),
		logger:      coremocks.NewMockLogger(t),
	}
	m.logger.EXPECT().Debug(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Info(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Warn(mock.Anything, mock.Anything).Maybe()
	m.logger.EXPECT().Error(mock.Anything, mock.Anything).Maybe()
	return m
}

func (m *authMocks) useCase() *AuthUseCase {
	return NewAuthUseCase(m.userRepo, m.sessionRepo, m.time, m.logger, testOptions)
}

func hashFor(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)
	return string(hash)
}

func TestRegister(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Successful registration opens a session", func(t *testing.T) {
		m := newAuthMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Maybe()

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "kim@example.com").Return(nil, errs.ErrUserNotFound).Once()
		m.userRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(user *entity.User) bool {
			ok := user.Email == "kim@example.com" &&
				user.Name == "Kim" &&
				user.Role == entity.RoleUser &&
				user.FormattedBalance() == "100.00" &&
				bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("sup3rsecret")) == nil
			return ok
		})).Run(func(ctx context.Context, user *entity.User) {
			user.ID = 42
		}).Return(nil).Once()
		m.sessionRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(session *entity.Session) bool {
			return session.UserID == 42 &&
				session.Token != "" &&
				session.ExpiresAt.Equal(fixedTime.Add(24*time.Hour))
		})).Return(nil).Once()

		result, err := m.useCase().Register(ctx, usecase.RegisterRequest{
			Name:     "  Kim ",
			Email:    " Kim@Example.com ",
			Password: "sup3rsecret",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(42), result.User.ID)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("Duplicate email", func(t *testing.T) {
		m := newAuthMocks(t)

		existing := &entity.User{ID: 7, Email: "kim@example.com"}
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "kim@example.com").Return(existing, nil).Once()

		result, err := m.useCase().Register(ctx, usecase.RegisterRequest{
			Name:     "Kim",
			Email:    "kim@example.com",
			Password: "sup3rsecret",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrDuplicateEmail)
	})

	t.Run("Malformed registrations are rejected up front", func(t *testing.T) {
		m := newAuthMocks(t)
		authUseCase := m.useCase()

		testCases := []usecase.RegisterRequest{
			{Name: "", Email: "kim@example.com", Password: "sup3rsecret"},
			{Name: "Kim", Email: "", Password: "sup3rsecret"},
			{Name: "Kim", Email: "not-an-email", Password: "sup3rsecret"},
			{Name: "Kim", Email: "kim@example.com", Password: "short"},
		}

		for _, tc := range testCases {
			result, err := authUseCase.Register(ctx, tc)
			assert.Nil(t, result)
			assert.ErrorIs(t, err, errs.ErrInvalidRegistration)
		}
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid credentials open a session and purge stale ones", func(t *testing.T) {
		m := newAuthMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Maybe()

		user := &entity.User{ID: 42, Email: "kim@example.com", PasswordHash: hashFor(t, "sup3rsecret")}
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "kim@example.com").Return(user, nil).Once()
		m.sessionRepo.EXPECT().DeleteExpired(mock.Anything).Return(nil).Once()
		m.sessionRepo.EXPECT().Create(mock.Anything, mock.MatchedBy(func(session *entity.Session) bool {
			return session.UserID == 42 && session.Token != ""
		})).Return(nil).Once()

		result, err := m.useCase().Login(ctx, usecase.LoginRequest{
			Email:    "Kim@Example.com",
			Password: "sup3rsecret",
		})

		require.NoError(t, err)
		assert.Equal(t, uint64(42), result.User.ID)
		assert.NotEmpty(t, result.Token)
	})

	t.Run("Wrong password", func(t *testing.T) {
		m := newAuthMocks(t)

		user := &entity.User{ID: 42, Email: "kim@example.com", PasswordHash: hashFor(t, "sup3rsecret")}
		m.userRepo.EXPECT().GetByEmail(mock.Anything, "kim@example.com").Return(user, nil).Once()

		result, err := m.useCase().Login(ctx, usecase.LoginRequest{
			Email:    "kim@example.com",
			Password: "wrong",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})

	t.Run("Unknown email reports the same error as a wrong password", func(t *testing.T) {
		m := newAuthMocks(t)

		m.userRepo.EXPECT().GetByEmail(mock.Anything, "ghost@example.com").Return(nil, errs.ErrUserNotFound).Once()

		result, err := m.useCase().Login(ctx, usecase.LoginRequest{
			Email:    "ghost@example.com",
			Password: "whatever123",
		})

		assert.Nil(t, result)
		assert.ErrorIs(t, err, errs.ErrInvalidCredentials)
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	t.Run("Deletes the session", func(t *testing.T) {
		m := newAuthMocks(t)
		m.sessionRepo.EXPECT().Delete(mock.Anything, "token-1").Return(nil).Once()

		require.NoError(t, m.useCase().Logout(ctx, "token-1"))
	})

	t.Run("Empty token is a no-op", func(t *testing.T) {
		m := newAuthMocks(t)
		require.NoError(t, m.useCase().Logout(ctx, ""))
	})
}

func TestAuthenticate(t *testing.T) {
	ctx := context.Background()
	fixedTime := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	t.Run("Valid session resolves to its user", func(t *testing.T) {
		m := newAuthMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Once()

		session := &entity.Session{UserID: 42, Token: "token-1", ExpiresAt: fixedTime.Add(time.Hour)}
		user := &entity.User{ID: 42, Email: "kim@example.com"}
		m.sessionRepo.EXPECT().GetByToken(mock.Anything, "token-1").Return(session, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(user, nil).Once()

		got, err := m.useCase().Authenticate(ctx, "token-1")

		require.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("Expired session is rejected and removed", func(t *testing.T) {
		m := newAuthMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Once()

		session := &entity.Session{UserID: 42, Token: "token-1", ExpiresAt: fixedTime.Add(-time.Minute)}
		m.sessionRepo.EXPECT().GetByToken(mock.Anything, "token-1").Return(session, nil).Once()
		m.sessionRepo.EXPECT().Delete(mock.Anything, "token-1").Return(nil).Once()

		got, err := m.useCase().Authenticate(ctx, "token-1")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Missing token", func(t *testing.T) {
		m := newAuthMocks(t)

		got, err := m.useCase().Authenticate(ctx, "")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Unknown token", func(t *testing.T) {
		m := newAuthMocks(t)
		m.sessionRepo.EXPECT().GetByToken(mock.Anything, "ghost").Return(nil, errs.ErrUnauthorized).Once()

		got, err := m.useCase().Authenticate(ctx, "ghost")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})

	t.Run("Session for a deleted user", func(t *testing.T) {
		m := newAuthMocks(t)
		m.time.EXPECT().Now().Return(fixedTime).Once()

		session := &entity.Session{UserID: 42, Token: "token-1", ExpiresAt: fixedTime.Add(time.Hour)}
		m.sessionRepo.EXPECT().GetByToken(mock.Anything, "token-1").Return(session, nil).Once()
		m.userRepo.EXPECT().GetByID(mock.Anything, uint64(42)).Return(nil, errs.ErrUserNotFound).Once()

		got, err := m.useCase().Authenticate(ctx, "token-1")

		assert.Nil(t, got)
		assert.ErrorIs(t, err, errs.ErrUnauthorized)
	})
}
