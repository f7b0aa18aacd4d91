package model

import (
	"time"
)

// Cart represents the database model for a user's single open cart
type Cart struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	UserID    uint64    `gorm:"not null;uniqueIndex"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for Cart
func (Cart) TableName() string {
	return "carts"
}

// CartItem represents one product line inside a cart. The composite
// unique index keeps at most one row per (cart, product) pair.
type CartItem struct {
	ID        uint64    `gorm:"primaryKey;autoIncrement"`
	CartID    uint64    `gorm:"not null;uniqueIndex:idx_cart_product"`
	ProductID uint64    `gorm:"not null;uniqueIndex:idx_cart_product"`
	Quantity  int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName specifies the table name for CartItem
func (CartItem) TableName() string {
	return "cart_items"
}
