// Package order builds order snapshots out of the cart and keeps the
// session's order history.
package order

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/monsef3300/ecom-site/cart"
)

// ErrEmptyCart is returned by Checkout when the cart has no lines.
var ErrEmptyCart = errors.New("cart is empty")

// History is the session's order list, most recent first. Orders are only
// ever added through Checkout; nothing removes or mutates them.
type History struct {
	orders []Order
	now    func() time.Time
}

func NewHistory() *History {
	return NewHistoryWithClock(time.Now)
}

// NewHistoryWithClock builds a History that stamps orders with the given
// clock. Tests inject a frozen clock here; NewHistory is the production path.
func NewHistoryWithClock(now func() time.Time) *History {
	if now == nil {
		now = time.Now
	}
	return &History{now: now}
}

// Checkout turns the cart into a pending Order, clears the cart and prepends
// the order to the history. On an empty cart it returns ErrEmptyCart and
// leaves both cart and history untouched. The operation is a single
// synchronous call: callers never observe a cleared cart without its order or
// the other way around.
func (h *History) Checkout(c *cart.Cart) (*Order, error) {
	if c.Len() == 0 {
		return nil, ErrEmptyCart
	}

	o := Order{
		ID:        uuid.NewString(),
		Items:     c.Lines(),
		Total:     c.Total(),
		CreatedAt: h.now(),
		Status:    StatusPending,
	}

	c.Clear()
	h.orders = append([]Order{o}, h.orders...)
	return &o, nil
}

// Orders returns a copy of the history, most recent first.
func (h *History) Orders() []Order {
	out := make([]Order, len(h.orders))
	copy(out, h.orders)
	return out
}

func (h *History) Len() int {
	return len(h.orders)
}
