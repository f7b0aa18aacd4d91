package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/dto"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/middleware"
)

// UserHandler handles the session user's balance endpoints
type UserHandler struct {
	userUseCase usecase.UserUseCase
	logger      coreport.Logger
}

// NewUserHandler creates a new user handler instance
func NewUserHandler(
	userUseCase usecase.UserUseCase,
	logger coreport.Logger,
) *UserHandler {
	return &UserHandler{
		userUseCase: userUseCase,
		logger:      logger,
	}
}

// GetBalance handles the GET /me/balance endpoint
func (h *UserHandler) GetBalance(c *gin.Context) {
	user := middleware.CurrentUser(c)

	balance, err := h.userUseCase.GetFormattedBalance(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err, "get_balance")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:  balance.UserID,
		Balance: balance.Balance,
	})
}

// AddMoney handles the POST /me/money endpoint
func (h *UserHandler) AddMoney(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	balance, err := h.userUseCase.AddMoney(c.Request.Context(), user.ID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err, "add_money")
		return
	}

	c.JSON(http.StatusOK, dto.BalanceResponse{
		UserID:  balance.UserID,
		Balance: balance.Balance,
	})
}
