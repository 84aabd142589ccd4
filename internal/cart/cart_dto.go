package cart

// ==================== REQUEST STRUCTS ====================

type AddItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Size      string `json:"size"`
}

type UpdateQtyRequest struct {
	Quantity int `json:"quantity"`
}

// ==================== RESPONSE STRUCTS ====================

// CartLineResponse is a line item resolved against the catalog snapshot.
type CartLineResponse struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Size      string  `json:"size"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
	Price     float64 `json:"price"`
	LineTotal float64 `json:"lineTotal"`
}

type QuoteResponse struct {
	Subtotal       float64 `json:"subtotal"`
	Discount       float64 `json:"discount"`
	DeliveryCharge float64 `json:"deliveryCharge"`
	Total          float64 `json:"total"`
}

type CartDetailResponse struct {
	Items     []CartLineResponse `json:"items"`
	ItemCount int                `json:"itemCount"`
	Quote     QuoteResponse      `json:"quote"`
}

type CountResponse struct {
	Count int `json:"count"`
}
