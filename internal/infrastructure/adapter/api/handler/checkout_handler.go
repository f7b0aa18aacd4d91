package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/dto"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/middleware"
)

// CheckoutHandler handles checkout and order history endpoints
type CheckoutHandler struct {
	checkoutUseCase usecase.CheckoutUseCase
	logger          coreport.Logger
}

// NewCheckoutHandler creates a new checkout handler instance
func NewCheckoutHandler(
	checkoutUseCase usecase.CheckoutUseCase,
	logger coreport.Logger,
) *CheckoutHandler {
	return &CheckoutHandler{
		checkoutUseCase: checkoutUseCase,
		logger:          logger,
	}
}

// Checkout handles the POST /checkout endpoint
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	user := middleware.CurrentUser(c)

	result, err := h.checkoutUseCase.Checkout(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err, "checkout")
		return
	}

	c.JSON(http.StatusOK, dto.CheckoutResponse{
		Success:       true,
		Message:       "Order placed",
		Order:         toOrderResponse(result.Order),
		ResultBalance: result.ResultBalance,
	})
}

// ListOrders handles the GET /me/orders endpoint
func (h *CheckoutHandler) ListOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)

	orders, err := h.checkoutUseCase.ListOrders(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err, "list_orders")
		return
	}

	responses := make([]dto.OrderResponse, 0, len(orders))
	for i := range orders {
		responses = append(responses, toOrderResponse(&orders[i]))
	}

	c.JSON(http.StatusOK, dto.OrderListResponse{
		Success: true,
		Orders:  responses,
	})
}
