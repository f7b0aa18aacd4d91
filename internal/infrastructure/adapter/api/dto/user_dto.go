package dto

// BalanceResponse represents the API response for a user's balance
type BalanceResponse struct {
	UserID  uint64 `json:"userId"`
	Balance string `json:"balance"`
}

// AddMoneyRequest represents the API request for topping up a balance
type AddMoneyRequest struct {
	Amount string `json:"amount" binding:"required"`
}

// UserListResponse wraps the admin customer listing
type UserListResponse struct {
	Success bool           `json:"success"`
	Users   []UserResponse `json:"users"`
}
