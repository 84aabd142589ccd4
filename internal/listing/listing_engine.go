package listing

import (
	"sort"
	"strings"

	"go-storefront/internal/session"
	"go-storefront/internal/shopapi"
)

// Apply runs the listing pipeline over the catalog snapshot: category
// restriction, text search, price ceiling, rating floor, then the price
// sort. The filtering stages commute; the sort is always applied last.
// The view is recomputed from scratch on every call.
func Apply(products []shopapi.Product, category, query string, f session.FilterConfig) []shopapi.Product {
	out := make([]shopapi.Product, 0, len(products))

	term := strings.ToLower(strings.TrimSpace(query))
	ceiling, hasCeiling := f.PriceCeiling()
	floor, hasFloor := f.MinRating()
	restrictCategory := category != "" && !strings.EqualFold(category, "all")

	for _, p := range products {
		if restrictCategory && p.Category != category {
			continue
		}
		if term != "" && !matchesSearch(p, term) {
			continue
		}
		if hasCeiling && p.Price > ceiling {
			continue
		}
		// absent rating counts as 0
		if hasFloor && p.Rating < floor {
			continue
		}
		out = append(out, p)
	}

	switch f.Sort {
	case "low":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "high":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// matchesSearch keeps a product when its name contains the term as a
// substring or its category equals the term, both case-insensitive.
func matchesSearch(p shopapi.Product, term string) bool {
	if strings.Contains(strings.ToLower(p.Name), term) {
		return true
	}
	return strings.ToLower(p.Category) == term
}
