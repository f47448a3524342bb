package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestComposeSearch(t *testing.T) {
	t.Run("text becomes the sole query parameter", func(t *testing.T) {
		req := ComposeSearch("wireless mouse")

		assert.Equal(t, "/search", req.Path)
		assert.Equal(t, "query=wireless+mouse", req.Encode())
	})

	t.Run("text is trimmed", func(t *testing.T) {
		req := ComposeSearch("  mouse  ")

		assert.Equal(t, "/search", req.Path)
		assert.Equal(t, "mouse", req.Query.Get("query"))
	})

	t.Run("empty text composes the unfiltered listing", func(t *testing.T) {
		for _, text := range []string{"", "   ", "\t\n"} {
			req := ComposeSearch(text)
			assert.Equal(t, "/products/", req.Path)
			assert.Empty(t, req.Encode())
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, ComposeSearch("mouse"), ComposeSearch("mouse"))
	})
}

func TestComposeFilter(t *testing.T) {
	t.Run("absent fields are omitted entirely", func(t *testing.T) {
		req := ComposeFilter(FilterCriteria{})

		assert.Equal(t, "/products/filter", req.Path)
		assert.Empty(t, req.Encode())
	})

	t.Run("sort only", func(t *testing.T) {
		req := ComposeFilter(FilterCriteria{Sort: SortNewest})

		assert.Equal(t, "sort_by=newest", req.Encode())
	})

	t.Run("price range splits into min and max", func(t *testing.T) {
		req := ComposeFilter(FilterCriteria{PriceRange: "50-200"})

		assert.Equal(t, "50", req.Query.Get("min_price"))
		assert.Equal(t, "200", req.Query.Get("max_price"))
	})

	t.Run("all criteria", func(t *testing.T) {
		req := ComposeFilter(FilterCriteria{
			CategoryID: "2",
			PriceRange: "0-50",
			Sort:       SortPriceDesc,
		})

		assert.Equal(t, "0", req.Query.Get("min_price"))
		assert.Equal(t, "50", req.Query.Get("max_price"))
		assert.Equal(t, "2", req.Query.Get("category_id"))
		assert.Equal(t, "price_desc", req.Query.Get("sort_by"))
	})

	t.Run("malformed band passes through verbatim", func(t *testing.T) {
		// No separator: everything lands in min_price, max_price is empty.
		req := ComposeFilter(FilterCriteria{PriceRange: "200"})
		assert.Equal(t, "200", req.Query.Get("min_price"))
		assert.Equal(t, "", req.Query.Get("max_price"))
		assert.True(t, req.Query.Has("max_price"))

		// Non-numeric parts are not validated here.
		req = ComposeFilter(FilterCriteria{PriceRange: "cheap-expensive"})
		assert.Equal(t, "cheap", req.Query.Get("min_price"))
		assert.Equal(t, "expensive", req.Query.Get("max_price"))
	})
}
