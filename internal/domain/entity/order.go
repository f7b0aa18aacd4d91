package entity

import (
	"time"
)

// Order statuses
const (
	OrderStatusPaid = "paid"
)

// Order is the immutable snapshot of a completed checkout
type Order struct {
	ID         uint64
	UserID     uint64
	Reference  string
	TotalCents int64
	Status     string
	CreatedAt  time.Time
	Items      []OrderItem
}

// OrderItem freezes product id, name, quantity and unit price at purchase time,
// decoupled from subsequent product edits
type OrderItem struct {
	ID         uint64
	OrderID    uint64
	ProductID  uint64
	Name       string
	Quantity   int
	PriceCents int64
}

// FormattedTotal returns the order total with 2 decimal places
func (o *Order) FormattedTotal() string {
	return FormatCents(o.TotalCents)
}

// NewOrderFromCart freezes the given cart lines into an order snapshot
func NewOrderFromCart(userID uint64, reference string, lines []CartLine, createdAt time.Time) *Order {
	order := &Order{
		UserID:     userID,
		Reference:  reference,
		TotalCents: CartTotal(lines),
		Status:     OrderStatusPaid,
		CreatedAt:  createdAt,
		Items:      make([]OrderItem, 0, len(lines)),
	}

	for _, line := range lines {
		order.Items = append(order.Items, OrderItem{
			ProductID:  line.ProductID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			PriceCents: line.PriceCents,
		})
	}

	return order
}
