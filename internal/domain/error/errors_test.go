package error

import (
	"errors"
	"fmt"
	"testing"
)

func TestBaseErrorTypes(t *testing.T) {
	// Test to ensure all base error types are defined properly
	if ErrInsufficientFunds.Error() != "insufficient funds" {
		t.Errorf("ErrInsufficientFunds has unexpected message: %s", ErrInsufficientFunds.Error())
	}
	if ErrInvalidAmount.Error() != "invalid amount format" {
		t.Errorf("ErrInvalidAmount has unexpected message: %s", ErrInvalidAmount.Error())
	}
	if ErrEmptyCart.Error() != "cart is empty" {
		t.Errorf("ErrEmptyCart has unexpected message: %s", ErrEmptyCart.Error())
	}
}

func TestErrorCode(t *testing.T) {
	testCases := []struct {
		name     string
		err      error
		expected int
	}{
		{"InvalidRequest", ErrInvalidRequest, 4000},
		{"InsufficientFunds", ErrInsufficientFunds, 4001},
		{"InvalidAmount", ErrInvalidAmount, 4002},
		{"InvalidQuantity", ErrInvalidQuantity, 4003},
		{"InsufficientStock", ErrInsufficientStock, 4004},
		{"EmptyCart", ErrEmptyCart, 4005},
		{"Unauthorized", ErrUnauthorized, 4010},
		{"InvalidCredentials", ErrInvalidCredentials, 4011},
		{"Forbidden", ErrForbidden, 4030},
		{"UserNotFound", ErrUserNotFound, 4040},
		{"ProductNotFound", ErrProductNotFound, 4041},
		{"DuplicateEmail", ErrDuplicateEmail, 4090},
		{"UserLocked", ErrUserLocked, 4230},
		{"ConstraintViolation", ErrConstraintViolation, 4006},
		{"UnknownError", errors.New("unknown error"), 5000},
		{"WrappedError", fmt.Errorf("wrapped: %w", ErrInvalidQuantity), 4003},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			code := ErrorCode(tc.err)
			if code != tc.expected {
				t.Errorf("ErrorCode(%v) = %d, want %d", tc.err, code, tc.expected)
			}
		})
	}
}

func TestInsufficientFundsError(t *testing.T) {
	err := NewInsufficientFundsError(789, "300.00", "150.00")
	if err == nil {
		t.Fatal("NewInsufficientFundsError returned nil")
	}

	// Test Error method
	expectedErrMsg := "insufficient funds for user 789: required 300.00, available 150.00"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientFundsError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	// Test Is method through errors.Is
	if !errors.Is(err, ErrInsufficientFunds) {
		t.Errorf("errors.Is(err, ErrInsufficientFunds) = false, want true")
	}

	// Test through helper function
	if !IsInsufficientFundsError(err) {
		t.Errorf("IsInsufficientFundsError(err) = false, want true")
	}
}

func TestInsufficientStockError(t *testing.T) {
	err := NewInsufficientStockError(42, "Air Jordan 1 Retro High", 5, 2)
	if err == nil {
		t.Fatal("NewInsufficientStockError returned nil")
	}

	// Test Error method
	expectedErrMsg := "insufficient stock for product 42 (Air Jordan 1 Retro High): requested 5, available 2"
	if err.Error() != expectedErrMsg {
		t.Errorf("InsufficientStockError.Error() = %s, want %s", err.Error(), expectedErrMsg)
	}

	// Test Is method through errors.Is
	if !errors.Is(err, ErrInsufficientStock) {
		t.Errorf("errors.Is(err, ErrInsufficientStock) = false, want true")
	}

	// Test through helper function
	if !IsInsufficientStockError(err) {
		t.Errorf("IsInsufficientStockError(err) = false, want true")
	}
}

func TestCheckoutError(t *testing.T) {
	baseErr := ErrInsufficientFunds
	checkoutErr := NewCheckoutError(123, "259.98", "debit", baseErr)

	if checkoutErr == nil {
		t.Fatal("NewCheckoutError returned nil")
	}

	// Test Error method
	expectedErrMsg := "checkout failed for user 123 at step debit (total: 259.98): insufficient funds"
	if checkoutErr.Error() != expectedErrMsg {
		t.Errorf("CheckoutError.Error() = %s, want %s", checkoutErr.Error(), expectedErrMsg)
	}

	// Check if the error is correctly created
	var checkoutErrCast *CheckoutError
	if !errors.As(checkoutErr, &checkoutErrCast) {
		t.Fatalf("errors.As failed: not a *CheckoutError")
	}

	if checkoutErrCast.UserID != 123 {
		t.Errorf("UserID = %d, want 123", checkoutErrCast.UserID)
	}

	if checkoutErrCast.Total != "259.98" {
		t.Errorf("Total = %s, want 259.98", checkoutErrCast.Total)
	}

	if checkoutErrCast.Step != "debit" {
		t.Errorf("Step = %s, want debit", checkoutErrCast.Step)
	}

	// Test unwrapping
	if !errors.Is(checkoutErr, baseErr) {
		t.Errorf("errors.Is(checkoutErr, baseErr) = false, want true")
	}

	// The HTTP layer relies on the wrapped cause surviving the wrap
	if ErrorCode(checkoutErr) != CodeInsufficientFunds {
		t.Errorf("ErrorCode(checkoutErr) = %d, want %d", ErrorCode(checkoutErr), CodeInsufficientFunds)
	}
}

func TestErrorHelperFunctions(t *testing.T) {
	// Test regular errors
	if IsInsufficientFundsError(ErrInvalidQuantity) {
		t.Errorf("IsInsufficientFundsError(ErrInvalidQuantity) = true, want false")
	}

	if IsUserLockedError(ErrInvalidAmount) {
		t.Errorf("IsUserLockedError(ErrInvalidAmount) = true, want false")
	}

	// Test wrapped errors
	wrappedFundsErr := fmt.Errorf("wrapped: %w", ErrInsufficientFunds)
	if !IsInsufficientFundsError(wrappedFundsErr) {
		t.Errorf("IsInsufficientFundsError(wrappedFundsErr) = false, want true")
	}

	wrappedLockedErr := fmt.Errorf("wrapped: %w", ErrUserLocked)
	if !IsUserLockedError(wrappedLockedErr) {
		t.Errorf("IsUserLockedError(wrappedLockedErr) = false, want true")
	}
}

func TestIsNotFoundError(t *testing.T) {
	notFoundErrors := []error{
		ErrNotFound,
		ErrUserNotFound,
		ErrProductNotFound,
		ErrCartItemNotFound,
		ErrOrderNotFound,
	}

	for _, err := range notFoundErrors {
		if !IsNotFoundError(err) {
			t.Errorf("IsNotFoundError(%v) = false, want true", err)
		}
	}

	if IsNotFoundError(ErrUserLocked) {
		t.Errorf("IsNotFoundError(ErrUserLocked) = true, want false")
	}
}

func TestIsValidationError(t *testing.T) {
	validationErrors := []error{
		ErrInvalidQuantity,
		ErrInvalidAmount,
		ErrInvalidProductName,
		ErrInvalidRegistration,
		ErrNegativeAmount,
		ErrInsufficientStock,
		ErrInsufficientFunds,
		ErrEmptyCart,
	}

	for _, err := range validationErrors {
		if !IsValidationError(err) {
			t.Errorf("IsValidationError(%v) = false, want true", err)
		}
	}

	if IsValidationError(ErrInternalServer) {
		t.Errorf("IsValidationError(ErrInternalServer) = true, want false")
	}
}
