package model

import (
	"time"
)

// Order represents the database model for completed checkouts
type Order struct {
	ID        uint64      `gorm:"primaryKey;autoIncrement"`
	UserID    uint64      `gorm:"not null;index"`
	Reference string      `gorm:"type:varchar(36);not null;uniqueIndex"`
	Total     int64       `gorm:"not null"` // Order total in cents
	Status    string      `gorm:"type:varchar(20);not null"`
	CreatedAt time.Time   `gorm:"not null"`
	Items     []OrderItem `gorm:"foreignKey:OrderID"`
}

// TableName specifies the table name for Order
func (Order) TableName() string {
	return "orders"
}

// OrderItem freezes the purchased product's name and unit price so later
// catalog edits never rewrite history
type OrderItem struct {
	ID        uint64 `gorm:"primaryKey;autoIncrement"`
	OrderID   uint64 `gorm:"not null;index"`
	ProductID uint64 `gorm:"not null"`
	Name      string `gorm:"type:varchar(255);not null"`
	Quantity  int    `gorm:"not null"`
	Price     int64  `gorm:"not null"` // Unit price in cents at purchase time
}

// TableName specifies the table name for OrderItem
func (OrderItem) TableName() string {
	return "order_items"
}
