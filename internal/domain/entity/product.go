package entity

import (
	"strings"
	"time"

	errs "github.com/querykicks/querykicks/internal/domain/error"
	coreport "github.com/querykicks/querykicks/internal/domain/port/core"
)

// Product represents a catalog item with live price and stock
type Product struct {
	ID          uint64
	Name        string
	Description string
	PriceCents  int64
	Stock       int
	ImageURL    string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// NewProduct creates a catalog product, validating name, price and stock
func NewProduct(name, description, price string, stock int, imageURL string, timeProvider coreport.TimeProvider) (*Product, error) {
	if strings.TrimSpace(name) == "" {
		return nil, errs.ErrInvalidProductName
	}

	priceCents, err := ParseAmount(price)
	if err != nil {
		return nil, err
	}
	if stock < 0 {
		return nil, errs.ErrInvalidQuantity
	}

	now := timeProvider.Now()
	return &Product{
		Name:        name,
		Description: description,
		PriceCents:  priceCents,
		Stock:       stock,
		ImageURL:    imageURL,
		CreatedAt:   now,
		UpdatedAt:   now,
	}, nil
}

// FormattedPrice returns the price as a string with 2 decimal places
func (p *Product) FormattedPrice() string {
	return FormatCents(p.PriceCents)
}

// HasStock reports whether the product can cover a purchase of quantity units
func (p *Product) HasStock(quantity int) bool {
	return quantity > 0 && p.Stock >= quantity
}
