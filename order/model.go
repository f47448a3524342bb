package order

import (
	"time"

	"github.com/monsef3300/ecom-site/cart"
)

// Order is an immutable snapshot of the cart at checkout time. It is never
// mutated after creation.
type Order struct {
	ID        string      `json:"id"`
	Items     []cart.Line `json:"items"`
	Total     float64     `json:"total"`
	CreatedAt time.Time   `json:"createdAt"`
	Status    Status      `json:"status"`
}
