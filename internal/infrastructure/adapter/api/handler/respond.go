package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/querykicks/querykicks/internal/domain/entity"
	domainerr "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
	"github.com/querykicks/querykicks/internal/infrastructure/adapter/api/dto"
)

// httpStatusFor maps domain errors to HTTP status codes
func httpStatusFor(err error) int {
	switch {
	case errors.Is(err, domainerr.ErrInvalidCredentials),
		errors.Is(err, domainerr.ErrUnauthorized):
		return http.StatusUnauthorized
	case errors.Is(err, domainerr.ErrForbidden):
		return http.StatusForbidden
	case domainerr.IsNotFoundError(err):
		return http.StatusNotFound
	case errors.Is(err, domainerr.ErrInsufficientFunds):
		return http.StatusPaymentRequired
	case errors.Is(err, domainerr.ErrInsufficientStock),
		errors.Is(err, domainerr.ErrDuplicateEmail),
		errors.Is(err, domainerr.ErrUserLocked):
		return http.StatusConflict
	case domainerr.IsValidationError(err),
		errors.Is(err, domainerr.ErrEmptyCart):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// respondError writes a standardized error response. Internal details
// stay in the log; the client sees only the domain message.
func respondError(c *gin.Context, logger coreport.Logger, err error, operation string) {
	status := httpStatusFor(err)

	fields := map[string]any{
		"operation": operation,
		"path":      c.Request.URL.Path,
		"error":     err.Error(),
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Error("Request failed", fields)
		message = "Internal server error"
	} else {
		logger.Debug("Request rejected", fields)
	}

	c.JSON(status, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(err),
		Message: message,
	})
}

// respondBindError handles malformed request bodies uniformly
func respondBindError(c *gin.Context, logger coreport.Logger, err error) {
	logger.Debug("Invalid request format", map[string]any{
		"path":  c.Request.URL.Path,
		"error": err.Error(),
	})
	c.JSON(http.StatusBadRequest, dto.ErrorResponse{
		Code:    domainerr.ErrorCode(domainerr.ErrInvalidRequest),
		Message: "Invalid request format: " + err.Error(),
	})
}

// toUserResponse maps a user entity to its API shape
func toUserResponse(user *entity.User) dto.UserResponse {
	return dto.UserResponse{
		ID:      user.ID,
		Name:    user.Name,
		Email:   user.Email,
		Role:    user.Role,
		Balance: user.FormattedBalance(),
	}
}

// toProductResponse maps a product entity to its API shape
func toProductResponse(product *entity.Product) dto.ProductResponse {
	return dto.ProductResponse{
		ID:          product.ID,
		Name:        product.Name,
		Description: product.Description,
		Price:       product.FormattedPrice(),
		Stock:       product.Stock,
		ImageURL:    product.ImageURL,
		CreatedAt:   product.CreatedAt,
	}
}

// toOrderResponse maps an order entity to its API shape
func toOrderResponse(order *entity.Order) dto.OrderResponse {
	items := make([]dto.OrderItemResponse, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, dto.OrderItemResponse{
			ProductID: item.ProductID,
			Name:      item.Name,
			Quantity:  item.Quantity,
			Price:     entity.FormatCents(item.PriceCents),
		})
	}

	return dto.OrderResponse{
		ID:        order.ID,
		Reference: order.Reference,
		Total:     order.FormattedTotal(),
		Status:    order.Status,
		CreatedAt: order.CreatedAt,
		Items:     items,
	}
}
