package entity

// CartItem represents one row of a user's in-progress cart.
// Invariant: at most one row per (cart, product) pair; adds merge into it.
type CartItem struct {
	ID        uint64
	CartID    uint64
	ProductID uint64
	Quantity  int
}

// CartLine is the joined view of a cart item with live product data.
// Price and stock are read from the product table at listing time and are
// not frozen until checkout.
type CartLine struct {
	CartItemID uint64
	ProductID  uint64
	Name       string
	ImageURL   string
	PriceCents int64
	Quantity   int
	Stock      int
}

// SubtotalCents returns quantity times the live unit price
func (l CartLine) SubtotalCents() int64 {
	return int64(l.Quantity) * l.PriceCents
}

// FormattedSubtotal returns the line subtotal with 2 decimal places
func (l CartLine) FormattedSubtotal() string {
	return FormatCents(l.SubtotalCents())
}

// CartTotal sums the subtotals of all lines; 0 for an empty cart
func CartTotal(lines []CartLine) int64 {
	var total int64
	for _, line := range lines {
		total += line.SubtotalCents()
	}
	return total
}
