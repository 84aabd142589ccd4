package session

import (
	"bytes"
	"encoding/json"
)

// User is the minimal identity the storefront keeps: an email, no
// credential verification.
type User struct {
	Email string `json:"email"`
}

// CartItem is one distinct (product, size) entry in the cart. ID is the
// derived composite identity; an empty size means "no size applies".
type CartItem struct {
	ID        string `json:"id"`
	ProductID string `json:"productId"`
	Size      string `json:"size"`
	Quantity  int    `json:"quantity"`
}

// CartItemID derives the composite line-item identity.
func CartItemID(productID, size string) string {
	if size == "" {
		size = "nosize"
	}
	return productID + "-" + size
}

// FilterConfig holds the listing filter state. Price "any", Rating "" and
// Sort "" are the no-constraint sentinels.
type FilterConfig struct {
	Category string `json:"category"`
	Price    string `json:"price"`
	Rating   string `json:"rating"`
	Sort     string `json:"sort"`
}

func DefaultFilters() FilterConfig {
	return FilterConfig{Price: "any"}
}

// PriceCeiling reports the configured ceiling and whether one applies.
func (f FilterConfig) PriceCeiling() (float64, bool) {
	if f.Price == "" || f.Price == "any" {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal([]byte(f.Price), &v); err != nil {
		return 0, false
	}
	return v, true
}

// MinRating reports the configured rating floor and whether one applies.
func (f FilterConfig) MinRating() (float64, bool) {
	if f.Rating == "" {
		return 0, false
	}
	var v float64
	if err := json.Unmarshal([]byte(f.Rating), &v); err != nil {
		return 0, false
	}
	return v, true
}

// UnmarshalJSON tolerates price/rating persisted either as strings or as
// bare numbers; older clients wrote both shapes.
func (f *FilterConfig) UnmarshalJSON(data []byte) error {
	var aux struct {
		Category string          `json:"category"`
		Price    json.RawMessage `json:"price"`
		Rating   json.RawMessage `json:"rating"`
		Sort     string          `json:"sort"`
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}
	f.Category = aux.Category
	f.Sort = aux.Sort
	f.Price = rawToString(aux.Price)
	f.Rating = rawToString(aux.Rating)
	return nil
}

func rawToString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	if raw[0] == '"' {
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return ""
		}
		return s
	}
	return string(raw)
}
