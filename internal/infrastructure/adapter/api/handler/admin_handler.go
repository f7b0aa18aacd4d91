package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	domainerr "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/domain/port/usecase"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/dto"
)

// AdminHandler handles the back-office endpoints. All routes are
// behind the admin role guard.
type AdminHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         coreport.Logger
}

// NewAdminHandler creates a new admin handler instance
func NewAdminHandler(
	catalogUseCase usecase.CatalogUseCase,
	logger coreport.Logger,
) *AdminHandler {
	return &AdminHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

// ListProducts handles the GET /admin/products endpoint
func (h *AdminHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogUseCase.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "admin_list_products")
		return
	}

	responses := make([]dto.ProductResponse, 0, len(products))
	for i := range products {
		responses = append(responses, toProductResponse(&products[i]))
	}

	c.JSON(http.StatusOK, dto.ProductListResponse{
		Success:  true,
		Products: responses,
	})
}

// CreateProduct handles the POST /admin/products endpoint
func (h *AdminHandler) CreateProduct(c *gin.Context) {
	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	product, err := h.catalogUseCase.CreateProduct(c.Request.Context(), usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, h.logger, err, "create_product")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"product": toProductResponse(product),
	})
}

// UpdateProduct handles the PUT /admin/products/:id endpoint
func (h *AdminHandler) UpdateProduct(c *gin.Context) {
	productID, ok := h.parseID(c, "id", "Invalid product ID format")
	if !ok {
		return
	}

	var req dto.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	product, err := h.catalogUseCase.UpdateProduct(c.Request.Context(), productID, usecase.ProductInput{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Stock:       req.Stock,
		ImageURL:    req.ImageURL,
	})
	if err != nil {
		respondError(c, h.logger, err, "update_product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": toProductResponse(product),
	})
}

// DeleteProduct handles the DELETE /admin/products/:id endpoint
func (h *AdminHandler) DeleteProduct(c *gin.Context) {
	productID, ok := h.parseID(c, "id", "Invalid product ID format")
	if !ok {
		return
	}

	if err := h.catalogUseCase.DeleteProduct(c.Request.Context(), productID); err != nil {
		respondError(c, h.logger, err, "delete_product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Product deleted",
	})
}

// ListUsers handles the GET /admin/users endpoint
func (h *AdminHandler) ListUsers(c *gin.Context) {
	customers, err := h.catalogUseCase.ListCustomers(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "list_customers")
		return
	}

	responses := make([]dto.UserResponse, 0, len(customers))
	for i := range customers {
		responses = append(responses, toUserResponse(&customers[i]))
	}

	c.JSON(http.StatusOK, dto.UserListResponse{
		Success: true,
		Users:   responses,
	})
}

// GrantMoney handles the POST /admin/users/:id/money endpoint
func (h *AdminHandler) GrantMoney(c *gin.Context) {
	userID, ok := h.parseID(c, "id", "Invalid user ID format")
	if !ok {
		return
	}

	var req dto.AddMoneyRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, h.logger, err)
		return
	}

	user, err := h.catalogUseCase.GrantMoney(c.Request.Context(), userID, req.Amount)
	if err != nil {
		respondError(c, h.logger, err, "grant_money")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    toUserResponse(user),
	})
}

// Dashboard handles the GET /admin/dashboard endpoint
func (h *AdminHandler) Dashboard(c *gin.Context) {
	stats, err := h.catalogUseCase.GetDashboardStats(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "dashboard")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"stats":   stats,
	})
}

func (h *AdminHandler) parseID(c *gin.Context, param, message string) (uint64, bool) {
	id, err := strconv.ParseUint(c.Param(param), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: message,
		})
		return 0, false
	}
	return id, true
}
