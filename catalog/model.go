package catalog

// Category is the optional category reference carried on a product.
type Category struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// Product is one record as returned by the catalog service. Records are
// immutable once fetched; a later fetch returning the same ID replaces the
// earlier record wholesale.
type Product struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Price       float64   `json:"price"`
	Stock       int       `json:"stock"`
	Rating      float64   `json:"rating"`
	Category    *Category `json:"category,omitempty"`
	Image       string    `json:"image"`
}

// CategoryName returns the category display name, or "Uncategorized" when the
// product carries no category reference.
func (p Product) CategoryName() string {
	if p.Category == nil || p.Category.Name == "" {
		return "Uncategorized"
	}
	return p.Category.Name
}
