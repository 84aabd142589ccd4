package wishlist

// ==================== REQUEST STRUCTS ====================

type ToggleRequest struct {
	ProductID string `json:"productId" validate:"required"`
}

type MoveToCartRequest struct {
	Size string `json:"size"`
}

// ==================== RESPONSE STRUCTS ====================

// WishlistItemResponse is a wishlist entry resolved against the catalog
// snapshot.
type WishlistItemResponse struct {
	ProductID string  `json:"productId"`
	Name      string  `json:"name"`
	Category  string  `json:"category"`
	Price     float64 `json:"price"`
	Image     string  `json:"image"`
}

type WishlistResponse struct {
	Items     []WishlistItemResponse `json:"items"`
	ItemCount int                    `json:"itemCount"`
}

type ToggleResponse struct {
	ProductID  string `json:"productId"`
	InWishlist bool   `json:"inWishlist"`
}
