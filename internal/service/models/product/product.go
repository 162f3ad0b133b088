package product

import (
	"github.com/beanhaus/coffeepos/internal/service/models/price"
)

// Product represents a catalogue entry. OrderCount is a derived aggregate,
// never stored.
type Product struct {
	ID         int64       `json:"id"`
	Name       string      `json:"name"`
	PriceCents price.Cents `json:"priceCents"`
	OrderCount int64       `json:"orderCount"`
}
