package dto

import "time"

// OrderItemResponse represents one purchased line frozen at checkout time
type OrderItemResponse struct {
	ProductID uint64 `json:"productId"`
	Name      string `json:"name"`
	Quantity  int    `json:"quantity"`
	Price     string `json:"price"`
}

// OrderResponse represents a completed order
type OrderResponse struct {
	ID        uint64              `json:"id"`
	Reference string              `json:"reference"`
	Total     string              `json:"total"`
	Status    string              `json:"status"`
	CreatedAt time.Time           `json:"createdAt"`
	Items     []OrderItemResponse `json:"items"`
}

// CheckoutResponse represents the API response for a successful checkout
type CheckoutResponse struct {
	Success       bool          `json:"success"`
	Message       string        `json:"message,omitempty"`
	Order         OrderResponse `json:"order"`
	ResultBalance string        `json:"resultBalance"`
}

// OrderListResponse wraps the user's order history
type OrderListResponse struct {
	Success bool            `json:"success"`
	Orders  []OrderResponse `json:"orders"`
}
