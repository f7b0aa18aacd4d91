package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/dto"
)

// CookieOptions controls how the session cookie is written
type CookieOptions struct {
	Name   string
	MaxAge int // seconds
	Secure bool
}

// AuthHandler handles registration, login and logout
type AuthHandler struct {
	authUseCase usecase.AuthUseCase
	cookie      CookieOptions
	logger      coreport.Logger
}

// NewAuthHandler creates a new auth handler instance
func NewAuthHandler(
	authUseCase usecase.AuthUseCase,
	cookie CookieOptions,
	logger coreport.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUseCase: authUseCase,
		cookie:      cookie,
		logger:      logger,
	}
}

// Register handles the POST /auth/register endpoint
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	result, err := h.authUseCase.Register(c.Request.Context(), usecase.RegisterRequest{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err, "register")
		return
	}

	h.setSessionCookie(c, result.Token)

	c.JSON(http.StatusCreated, dto.AuthResponse{
		Success: true,
		Message: "Account created",
		User:    toUserResponse(result.User),
	})
}

// Login handles the POST /auth/login endpoint
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	result, err := h.authUseCase.Login(c.Request.Context(), usecase.LoginRequest{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		respondError(c, h.logger, err, "login")
		return
	}

	h.setSessionCookie(c, result.Token)

	c.JSON(http.StatusOK, dto.AuthResponse{
		Success: true,
		User:    toUserResponse(result.User),
	})
}

// Logout handles the POST /auth/logout endpoint. It succeeds even
// without a session so clients can always clear state.
func (h *AuthHandler) Logout(c *gin.Context) {
	token, _ := c.Cookie(h.cookie.Name)

	if err := h.authUseCase.Logout(c.Request.Context(), token); err != nil {
		respondError(c, h.logger, err, "logout")
		return
	}

	h.clearSessionCookie(c)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Logged out",
	})
}

func (h *AuthHandler) setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, token, h.cookie.MaxAge, "/", "", h.cookie.Secure, true)
}

func (h *AuthHandler) clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(h.cookie.Name, "", -1, "/", "", h.cookie.Secure, true)
}
