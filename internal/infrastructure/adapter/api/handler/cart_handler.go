package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/querykicks/querykicks/internal/domain/entity"
	domainerr "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/dto"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/middleware"
)

// CartHandler handles the session user's cart endpoints
type CartHandler struct {
	cartUseCase usecase.CartUseCase
	logger      coreport.Logger
}

// NewCartHandler creates a new cart handler instance
func NewCartHandler(
	cartUseCase usecase.CartUseCase,
	logger coreport.Logger,
) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
		logger:      logger,
	}
}

// GetCart handles the GET /cart endpoint
func (h *CartHandler) GetCart(c *gin.Context) {
	user := middleware.CurrentUser(c)

	view, err := h.cartUseCase.GetCart(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err, "get_cart")
		return
	}

	c.JSON(http.StatusOK, toCartResponse(view))
}

// AddItem handles the POST /cart/items endpoint
func (h *CartHandler) AddItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	var req dto.AddCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	if err := h.cartUseCase.AddItem(c.Request.Context(), user.ID, req.ProductID, req.Quantity); err != nil {
		respondError(c, h.logger, err, "add_cart_item")
		return
	}

	view, err := h.cartUseCase.GetCart(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err, "get_cart")
		return
	}

	c.JSON(http.StatusOK, toCartResponse(view))
}

// UpdateItem handles the PATCH /cart/items/:itemId endpoint
func (h *CartHandler) UpdateItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid cart item ID format",
		})
		return
	}

	var req dto.UpdateCartItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	if err := h.cartUseCase.UpdateQuantity(c.Request.Context(), user.ID, itemID, req.Quantity); err != nil {
		respondError(c, h.logger, err, "update_cart_item")
		return
	}

	view, err := h.cartUseCase.GetCart(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err, "get_cart")
		return
	}

	c.JSON(http.StatusOK, toCartResponse(view))
}

// RemoveItem handles the DELETE /cart/items/:itemId endpoint
func (h *CartHandler) RemoveItem(c *gin.Context) {
	user := middleware.CurrentUser(c)

	itemID, err := strconv.ParseUint(c.Param("itemId"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid cart item ID format",
		})
		return
	}

	if err := h.cartUseCase.RemoveItem(c.Request.Context(), user.ID, itemID); err != nil {
		respondError(c, h.logger, err, "remove_cart_item")
		return
	}

	view, err := h.cartUseCase.GetCart(c.Request.Context(), user.ID)
	if err != nil {
		respondError(c, h.logger, err, "get_cart")
		return
	}

	c.JSON(http.StatusOK, toCartResponse(view))
}

// Clear handles the DELETE /cart endpoint
func (h *CartHandler) Clear(c *gin.Context) {
	user := middleware.CurrentUser(c)

	if err := h.cartUseCase.Clear(c.Request.Context(), user.ID); err != nil {
		respondError(c, h.logger, err, "clear_cart")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Cart cleared",
	})
}

// toCartResponse maps a cart view to its API shape
func toCartResponse(view *usecase.CartView) dto.CartResponse {
	items := make([]dto.CartLineResponse, 0, len(view.Lines))
	for _, line := range view.Lines {
		items = append(items, dto.CartLineResponse{
			CartItemID: line.CartItemID,
			ProductID:  line.ProductID,
			Name:       line.Name,
			ImageURL:   line.ImageURL,
			Price:      entity.FormatCents(line.PriceCents),
			Quantity:   line.Quantity,
			Subtotal:   line.FormattedSubtotal(),
		})
	}

	return dto.CartResponse{
		Success: true,
		Items:   items,
		Total:   view.FormattedTotal,
	}
}
