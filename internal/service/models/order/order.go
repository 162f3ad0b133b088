package order

import (
	"time"

	"github.com/beanhaus/coffeepos/internal/service/models/price"
)

// OrderRow represents a placed coffee order joined to its product. The price
// is the snapshot captured at creation time, immune to later product edits.
type OrderRow struct {
	ID          int64       `json:"id"`
	Created     time.Time   `json:"created"`
	PriceCents  price.Cents `json:"priceCents"`
	ProductName string      `json:"productName"`
}
