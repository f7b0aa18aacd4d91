package dto

// AddCartItemRequest represents the API request for adding a product to the cart
type AddCartItemRequest struct {
	ProductID uint64 `json:"productId" binding:"required"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest represents the API request for changing a line's quantity
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CartLineResponse represents one cart line with live product details
type CartLineResponse struct {
	CartItemID uint64 `json:"cartItemId"`
	ProductID  uint64 `json:"productId"`
	Name       string `json:"name"`
	ImageURL   string `json:"imageUrl"`
	Price      string `json:"price"`
	Quantity   int    `json:"quantity"`
	Subtotal   string `json:"subtotal"`
}

// CartResponse represents the full cart view
type CartResponse struct {
	Success bool               `json:"success"`
	Items   []CartLineResponse `json:"items"`
	Total   string             `json:"total"`
}
