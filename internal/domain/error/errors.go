package error

import (
	"errors"
	"fmt"
)

// Error codes for standardized API responses
const (
	// 4xxx - Client errors
	CodeInvalidRequest      = 4000
	CodeInsufficientFunds   = 4001
	CodeInvalidAmount       = 4002
	CodeInvalidQuantity     = 4003
	CodeInsufficientStock   = 4004
	CodeEmptyCart           = 4005
	CodeConstraintViolation = 4006
	CodeInvalidProduct      = 4007
	CodeUnauthorized        = 4010
	CodeInvalidCredentials  = 4011
	CodeInvalidRegistration = 4012
	CodeForbidden           = 4030
	CodeUserNotFound        = 4040
	CodeProductNotFound     = 4041
	CodeCartItemNotFound    = 4042
	CodeOrderNotFound       = 4043
	CodeDuplicateEmail      = 4090
	CodeUserLocked          = 4230

	// 5xxx - Server errors
	CodeInternalServer = 5000
)

// Base error types
var (
	// ErrInvalidRequest is returned when a request body cannot be parsed
	ErrInvalidRequest = errors.New("invalid request")

	// ErrUnauthorized is returned when no valid session accompanies a request
	ErrUnauthorized = errors.New("unauthorized")

	// ErrForbidden is returned when the session user lacks the required role
	ErrForbidden = errors.New("forbidden")

	// ErrInvalidCredentials is returned when email/password do not match a user
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrInvalidRegistration is returned when registration details are malformed
	ErrInvalidRegistration = errors.New("invalid registration details")

	// ErrDuplicateEmail is returned when registering an email that already exists
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrUserNotFound is returned when the requested user doesn't exist
	ErrUserNotFound = errors.New("user not found")

	// ErrProductNotFound is returned when the requested product doesn't exist
	ErrProductNotFound = errors.New("product not found")

	// ErrCartItemNotFound is returned when a cart item is absent or owned by another user
	ErrCartItemNotFound = errors.New("cart item not found")

	// ErrOrderNotFound is returned when the requested order doesn't exist
	ErrOrderNotFound = errors.New("order not found")

	// ErrInvalidQuantity is returned when a quantity is non-positive or out of range
	ErrInvalidQuantity = errors.New("quantity must be at least 1")

	// ErrInvalidAmount is returned when a money amount format is invalid
	ErrInvalidAmount = errors.New("invalid amount format")

	// ErrInvalidProductName is returned when a product name is blank
	ErrInvalidProductName = errors.New("product name cannot be empty")

	// ErrNegativeAmount is returned when a money amount is negative
	ErrNegativeAmount = errors.New("amount cannot be negative")

	// ErrInsufficientStock is returned when a requested quantity exceeds available stock
	ErrInsufficientStock = errors.New("insufficient stock")

	// ErrInsufficientFunds is returned when a checkout total exceeds the user's balance
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrEmptyCart is returned when checkout is attempted with no cart items
	ErrEmptyCart = errors.New("cart is empty")

	// ErrUserLocked is returned when a user is locked by a concurrent checkout
	ErrUserLocked = errors.New("user is locked by another operation")

	// ErrConstraintViolation is returned when a database constraint is violated
	ErrConstraintViolation = errors.New("database constraint violation")

	// ErrDatabaseConnection is returned when there's a problem connecting to the database
	ErrDatabaseConnection = errors.New("database connection error")

	// ErrInternalServer is returned for unexpected server-side errors
	ErrInternalServer = errors.New("internal server error")

	// ErrNotFound is returned when a generic resource is not found
	ErrNotFound = errors.New("resource not found")
)

// ErrorCode returns standardized error codes for known errors
func ErrorCode(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest):
		return CodeInvalidRequest
	case errors.Is(err, ErrInsufficientFunds):
		return CodeInsufficientFunds
	case errors.Is(err, ErrInvalidAmount), errors.Is(err, ErrNegativeAmount):
		return CodeInvalidAmount
	case errors.Is(err, ErrInvalidQuantity):
		return CodeInvalidQuantity
	case errors.Is(err, ErrInvalidProductName):
		return CodeInvalidProduct
	case errors.Is(err, ErrInsufficientStock):
		return CodeInsufficientStock
	case errors.Is(err, ErrEmptyCart):
		return CodeEmptyCart
	case errors.Is(err, ErrUnauthorized):
		return CodeUnauthorized
	case errors.Is(err, ErrInvalidCredentials):
		return CodeInvalidCredentials
	case errors.Is(err, ErrInvalidRegistration):
		return CodeInvalidRegistration
	case errors.Is(err, ErrForbidden):
		return CodeForbidden
	case errors.Is(err, ErrUserNotFound):
		return CodeUserNotFound
	case errors.Is(err, ErrProductNotFound):
		return CodeProductNotFound
	case errors.Is(err, ErrCartItemNotFound):
		return CodeCartItemNotFound
	case errors.Is(err, ErrOrderNotFound):
		return CodeOrderNotFound
	case errors.Is(err, ErrDuplicateEmail):
		return CodeDuplicateEmail
	case errors.Is(err, ErrUserLocked):
		return CodeUserLocked
	case errors.Is(err, ErrConstraintViolation):
		return CodeConstraintViolation
	default:
		return CodeInternalServer
	}
}

// InsufficientFundsError provides detailed error information for a failed debit
type InsufficientFundsError struct {
	UserID      uint64
	Total       string
	CurrBalance string
}

// Error implements the error interface
func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("insufficient funds for user %d: required %s, available %s",
		e.UserID, e.Total, e.CurrBalance)
}

// Is checks if the target error is an ErrInsufficientFunds
func (e *InsufficientFundsError) Is(target error) bool {
	return target == ErrInsufficientFunds
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientFundsError) LogFields() map[string]any {
	return map[string]any{
		"error_type":      "insufficient_funds",
		"user_id":         e.UserID,
		"total":           e.Total,
		"current_balance": e.CurrBalance,
		"error_code":      CodeInsufficientFunds,
	}
}

// NewInsufficientFundsError creates a new detailed insufficient funds error
func NewInsufficientFundsError(userID uint64, total, currentBalance string) error {
	return &InsufficientFundsError{
		UserID:      userID,
		Total:       total,
		CurrBalance: currentBalance,
	}
}

// InsufficientStockError provides detailed information about a failed stock reservation
type InsufficientStockError struct {
	ProductID uint64
	Product   string
	Requested int
	Available int
}

// Error implements the error interface
func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for product %d (%s): requested %d, available %d",
		e.ProductID, e.Product, e.Requested, e.Available)
}

// Is checks if the target error is an ErrInsufficientStock
func (e *InsufficientStockError) Is(target error) bool {
	return target == ErrInsufficientStock
}

// LogFields returns a map of fields for structured logging
func (e *InsufficientStockError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "insufficient_stock",
		"product_id": e.ProductID,
		"product":    e.Product,
		"requested":  e.Requested,
		"available":  e.Available,
		"error_code": CodeInsufficientStock,
	}
}

// NewInsufficientStockError creates a new detailed insufficient stock error
func NewInsufficientStockError(productID uint64, product string, requested, available int) error {
	return &InsufficientStockError{
		ProductID: productID,
		Product:   product,
		Requested: requested,
		Available: available,
	}
}

// CheckoutError represents an error raised inside the atomic checkout unit
type CheckoutError struct {
	UserID uint64
	Total  string
	Step   string
	Err    error
}

// Error implements the error interface for CheckoutError
func (e *CheckoutError) Error() string {
	return fmt.Sprintf("checkout failed for user %d at step %s (total: %s): %v",
		e.UserID, e.Step, e.Total, e.Err)
}

// Unwrap returns the underlying error
func (e *CheckoutError) Unwrap() error {
	return e.Err
}

// LogFields returns a map of fields for structured logging
func (e *CheckoutError) LogFields() map[string]any {
	return map[string]any{
		"error_type": "checkout_error",
		"user_id":    e.UserID,
		"total":      e.Total,
		"step":       e.Step,
		"error":      e.Err.Error(),
		"error_code": ErrorCode(e.Err),
	}
}

// NewCheckoutError creates a detailed checkout error
func NewCheckoutError(userID uint64, total, step string, err error) error {
	return &CheckoutError{
		UserID: userID,
		Total:  total,
		Step:   step,
		Err:    err,
	}
}

// IsInsufficientFundsError checks if the error is related to insufficient funds
func IsInsufficientFundsError(err error) bool {
	return errors.Is(err, ErrInsufficientFunds)
}

// IsInsufficientStockError checks if the error is related to insufficient stock
func IsInsufficientStockError(err error) bool {
	return errors.Is(err, ErrInsufficientStock)
}

// IsUserNotFoundError checks if the error is a user not found error
func IsUserNotFoundError(err error) bool {
	return errors.Is(err, ErrUserNotFound)
}

// IsNotFoundError checks if the error is any "not found" type of error
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound) ||
		errors.Is(err, ErrUserNotFound) ||
		errors.Is(err, ErrProductNotFound) ||
		errors.Is(err, ErrCartItemNotFound) ||
		errors.Is(err, ErrOrderNotFound)
}

// IsUserLockedError checks if the error is related to a locked user
func IsUserLockedError(err error) bool {
	return errors.Is(err, ErrUserLocked)
}

// IsValidationError checks if the error is an expected, recoverable validation failure
func IsValidationError(err error) bool {
	return errors.Is(err, ErrInvalidQuantity) ||
		errors.Is(err, ErrInvalidAmount) ||
		errors.Is(err, ErrInvalidProductName) ||
		errors.Is(err, ErrInvalidRegistration) ||
		errors.Is(err, ErrNegativeAmount) ||
		errors.Is(err, ErrInsufficientStock) ||
		errors.Is(err, ErrInsufficientFunds) ||
		errors.Is(err, ErrEmptyCart)
}
