// Package cart holds the session's shopping cart. All mutation of the cart
// goes through this package; it performs no I/O.
package cart

import "github.com/monsef3300/ecom-site/catalog"

// Line is one row of the cart, keyed by product ID. Name, Price and Image are
// a denormalized copy captured when the product was first added, so the cart
// display survives later catalog changes.
type Line struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
	Quantity  int     `json:"quantity"`
}

// Subtotal is the line's contribution to the cart total.
func (l Line) Subtotal() float64 {
	return l.Price * float64(l.Quantity)
}

// Cart is an ordered collection of lines, at most one per product ID, in
// first-insertion order. It is owned by a single session and is not safe for
// concurrent use.
type Cart struct {
	lines []Line
}

func New() *Cart {
	return &Cart{}
}

// Add puts one unit of the product into the cart. If a line for that product
// already exists its quantity is incremented and its denormalized copy is kept
// as-is; the line does not move. Otherwise a new line is appended with
// quantity 1.
func (c *Cart) Add(p catalog.Product) {
	if i := c.index(p.ID); i >= 0 {
		c.lines[i].Quantity++
		return
	}
	c.lines = append(c.lines, Line{
		ProductID: p.ID,
		Name:      p.Name,
		Price:     p.Price,
		Image:     p.Image,
		Quantity:  1,
	})
}

// Remove deletes the line for the product if present; unknown IDs are a no-op.
func (c *Cart) Remove(productID int64) {
	if i := c.index(productID); i >= 0 {
		c.lines = append(c.lines[:i], c.lines[i+1:]...)
	}
}

// SetQuantity sets the line's quantity. A quantity below 1 removes the line.
// Unknown IDs are a no-op.
func (c *Cart) SetQuantity(productID int64, quantity int) {
	if quantity < 1 {
		c.Remove(productID)
		return
	}
	if i := c.index(productID); i >= 0 {
		c.lines[i].Quantity = quantity
	}
}

// Total is the live sum of price times quantity over all lines. It is
// recomputed on every call and never cached.
func (c *Cart) Total() float64 {
	var sum float64
	for _, l := range c.lines {
		sum += l.Subtotal()
	}
	return sum
}

// Lines returns a copy of the cart's lines in insertion order.
func (c *Cart) Lines() []Line {
	out := make([]Line, len(c.lines))
	copy(out, c.lines)
	return out
}

// Len is the number of distinct lines in the cart.
func (c *Cart) Len() int {
	return len(c.lines)
}

// Clear empties the cart.
func (c *Cart) Clear() {
	c.lines = nil
}

// index returns the position of the product's line, or -1 when absent.
func (c *Cart) index(productID int64) int {
	for i, l := range c.lines {
		if l.ProductID == productID {
			return i
		}
	}
	return -1
}
