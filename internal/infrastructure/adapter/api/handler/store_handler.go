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

// StoreHandler handles the public storefront catalog endpoints
type StoreHandler struct {
	catalogUseCase usecase.CatalogUseCase
	logger         coreport.Logger
}

// NewStoreHandler creates a new store handler instance
func NewStoreHandler(
	catalogUseCase usecase.CatalogUseCase,
	logger coreport.Logger,
) *StoreHandler {
	return &StoreHandler{
		catalogUseCase: catalogUseCase,
		logger:         logger,
	}
}

// ListProducts handles the GET /store/products endpoint
func (h *StoreHandler) ListProducts(c *gin.Context) {
	products, err := h.catalogUseCase.ListProducts(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, err, "list_products")
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

// GetProduct handles the GET /store/products/:id endpoint
func (h *StoreHandler) GetProduct(c *gin.Context) {
	productID, err := strconv.ParseUint(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
			Message: "Invalid product ID format",
		})
		return
	}

	product, err := h.catalogUseCase.GetProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, h.logger, err, "get_product")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"product": toProductResponse(product),
	})
}
