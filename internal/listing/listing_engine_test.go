package listing_test

import (
	"testing"

	"go-storefront/internal/listing"
	"go-storefront/internal/session"
	"go-storefront/internal/shopapi"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func catalogFixture() []shopapi.Product {
	return []shopapi.Product{
		{ID: "p1", Name: "Denim Jacket", Category: "men", Price: 60, Rating: 4},
		{ID: "p2", Name: "Summer Dress", Category: "women", Price: 40, Rating: 4.5},
		{ID: "p3", Name: "Kids Denim Shorts", Category: "kids", Price: 25},
		{ID: "p4", Name: "Headphones", Category: "electronics", Price: 120, Rating: 3.8},
		{ID: "p5", Name: "Leather Jacket", Category: "men", Price: 200, Rating: 4.9},
	}
}

func noFilters() session.FilterConfig {
	return session.DefaultFilters()
}

func ids(products []shopapi.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestApply_Category(t *testing.T) {
	t.Run("exact_match", func(t *testing.T) {
		got := listing.Apply(catalogFixture(), "men", "", noFilters())
		assert.Equal(t, []string{"p1", "p5"}, ids(got))
	})

	t.Run("all_sentinel_passes_everything", func(t *testing.T) {
		assert.Len(t, listing.Apply(catalogFixture(), "all", "", noFilters()), 5)
		assert.Len(t, listing.Apply(catalogFixture(), "", "", noFilters()), 5)
	})
}

func TestApply_Search(t *testing.T) {
	t.Run("name_substring_case_insensitive", func(t *testing.T) {
		got := listing.Apply(catalogFixture(), "", "  DENIM ", noFilters())
		assert.Equal(t, []string{"p1", "p3"}, ids(got))
	})

	t.Run("exact_category_match", func(t *testing.T) {
		got := listing.Apply(catalogFixture(), "", "Electronics", noFilters())
		assert.Equal(t, []string{"p4"}, ids(got))
	})

	t.Run("empty_query_passes_all", func(t *testing.T) {
		assert.Len(t, listing.Apply(catalogFixture(), "", "   ", noFilters()), 5)
	})

	t.Run("partial_category_does_not_match", func(t *testing.T) {
		got := listing.Apply(catalogFixture(), "", "electro", noFilters())
		assert.Empty(t, got)
	})
}

func TestApply_PriceCeiling(t *testing.T) {
	f := noFilters()
	f.Price = "60"
	got := listing.Apply(catalogFixture(), "", "", f)

	// strict > excluded: a price equal to the ceiling stays
	assert.Equal(t, []string{"p1", "p2", "p3"}, ids(got))
}

func TestApply_RatingFloor(t *testing.T) {
	f := noFilters()
	f.Rating = "4"
	got := listing.Apply(catalogFixture(), "", "", f)

	// p3 has no rating, which counts as 0
	assert.Equal(t, []string{"p1", "p2", "p5"}, ids(got))
}

func TestApply_Sort(t *testing.T) {
	t.Run("low_to_high", func(t *testing.T) {
		f := noFilters()
		f.Sort = "low"
		got := listing.Apply(catalogFixture(), "", "", f)
		assert.Equal(t, []string{"p3", "p2", "p1", "p4", "p5"}, ids(got))
	})

	t.Run("high_to_low", func(t *testing.T) {
		f := noFilters()
		f.Sort = "high"
		got := listing.Apply(catalogFixture(), "", "", f)
		assert.Equal(t, []string{"p5", "p4", "p1", "p2", "p3"}, ids(got))
	})

	t.Run("no_sort_preserves_catalog_order", func(t *testing.T) {
		got := listing.Apply(catalogFixture(), "", "", noFilters())
		assert.Equal(t, []string{"p1", "p2", "p3", "p4", "p5"}, ids(got))
	})

	t.Run("sort_is_stable_for_equal_prices", func(t *testing.T) {
		products := []shopapi.Product{
			{ID: "a", Name: "A", Price: 10},
			{ID: "b", Name: "B", Price: 10},
			{ID: "c", Name: "C", Price: 5},
		}
		f := noFilters()
		f.Sort = "low"
		got := listing.Apply(products, "", "", f)
		assert.Equal(t, []string{"c", "a", "b"}, ids(got))
	})
}

func TestApply_StagesCombine(t *testing.T) {
	f := noFilters()
	f.Price = "100"
	f.Rating = "4"
	f.Sort = "low"

	got := listing.Apply(catalogFixture(), "men", "jacket", f)
	require.Len(t, got, 1)
	assert.Equal(t, "p1", got[0].ID)
}
