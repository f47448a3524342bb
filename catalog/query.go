package catalog

import (
	"net/url"
	"strings"
)

// SortKey is one of the sort orders the catalog service accepts.
type SortKey string

const (
	SortPriceAsc  SortKey = "price_asc"
	SortPriceDesc SortKey = "price_desc"
	SortNewest    SortKey = "newest"
)

// FilterCriteria is the user-selected structured filter. Every field is
// optional and independent; a zero value means "no constraint on that
// dimension", not a default.
type FilterCriteria struct {
	// CategoryID is the catalog category identifier, empty for all categories.
	CategoryID string
	// PriceRange is a "low-high" token, e.g. "0-50". The composer splits it
	// on the first dash and passes both halves through verbatim; it does not
	// validate them.
	PriceRange string
	Sort       SortKey
}

// Request describes one catalog retrieval. It is a plain value: composing a
// request performs no I/O and the same criteria always compose the same
// request.
type Request struct {
	Path  string
	Query url.Values
}

// Encode renders the query string for the request, empty when there are no
// parameters.
func (r Request) Encode() string {
	return r.Query.Encode()
}

// ComposeSearch builds the retrieval request for a free-text search. An empty
// or whitespace-only text composes the unfiltered listing instead, so clearing
// the search box and never having searched are indistinguishable on the wire.
func ComposeSearch(text string) Request {
	text = strings.TrimSpace(text)
	if text == "" {
		return ComposeAll()
	}
	q := url.Values{}
	q.Set("query", text)
	return Request{Path: "/search", Query: q}
}

// ComposeAll builds the unfiltered listing request.
func ComposeAll() Request {
	return Request{Path: "/products/"}
}

// ComposeFilter builds the structured filter request. Absent criteria are
// omitted from the query entirely, never sent as empty values.
func ComposeFilter(fc FilterCriteria) Request {
	q := url.Values{}
	if fc.PriceRange != "" {
		lo, hi, _ := strings.Cut(fc.PriceRange, "-")
		q.Set("min_price", lo)
		q.Set("max_price", hi)
	}
	if fc.CategoryID != "" {
		q.Set("category_id", fc.CategoryID)
	}
	if fc.Sort != "" {
		q.Set("sort_by", string(fc.Sort))
	}
	return Request{Path: "/products/filter", Query: q}
}
