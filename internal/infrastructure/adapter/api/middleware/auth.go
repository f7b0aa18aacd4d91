package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/querykicks/querykicks/internal/domain/entity"
	domainerr "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/dto"
)

// Context keys set by the auth middleware
const (
	// ContextUserKey holds the authenticated *entity.User
	ContextUserKey = "currentUser"
)

// RequireSession resolves the session cookie to a user and aborts with
// 401 when the session is missing, expired or bogus
func RequireSession(authUseCase usecase.AuthUseCase, cookieName string, logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(cookieName)
		if err != nil || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Authentication required",
			})
			return
		}

		user, err := authUseCase.Authenticate(c.Request.Context(), token)
		if err != nil {
			logger.Debug("Session authentication failed", map[string]any{
				"path":  c.Request.URL.Path,
				"error": err.Error(),
			})
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrUnauthorized),
				Message: "Invalid or expired session",
			})
			return
		}

		c.Set(ContextUserKey, user)
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the authenticated user has the
// admin role. Must run after RequireSession.
func RequireAdmin(logger coreport.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil || !user.IsAdmin() {
			logger.Warn("Non-admin access attempt to back office", map[string]any{
				"path": c.Request.URL.Path,
				"ip":   c.ClientIP(),
			})
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{
				Code:    domainerr.ErrorCode(domainerr.ErrForbidden),
				Message: "Admin access required",
			})
			return
		}

		c.Next()
	}
}

// CurrentUser returns the authenticated user placed in the context by
// RequireSession, or nil
func CurrentUser(c *gin.Context) *entity.User {
	value, exists := c.Get(ContextUserKey)
	if !exists {
		return nil
	}
	user, ok := value.(*entity.User)
	if !ok {
		return nil
	}
	return user
}
