package shopapi

// Product is the catalog entry shape owned by the remote shop API.
// Optional fields stay zero-valued when the API omits them; Rating is
// treated as 0 for filtering purposes.
type Product struct {
	ID            string  `json:"_id"`
	Name          string  `json:"name"`
	Category      string  `json:"category"`
	Price         float64 `json:"price"`
	OriginalPrice float64 `json:"originalPrice,omitempty"`
	Rating        float64 `json:"rating,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
	Image         string  `json:"image"`
	Description   string  `json:"description"`
}

type OrderItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Size      string  `json:"size"`
	Price     float64 `json:"price"`
	Name      string  `json:"name"`
	Image     string  `json:"image"`
}

type CreateOrderRequest struct {
	UserEmail       string      `json:"userEmail"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	DeliveryAddress string      `json:"deliveryAddress"`
}

// Order is server-owned and read-only to this client.
type Order struct {
	ID              string      `json:"_id"`
	Items           []OrderItem `json:"items"`
	TotalAmount     float64     `json:"totalAmount"`
	DeliveryAddress string      `json:"deliveryAddress"`
	Status          string      `json:"status"`
	CreatedAt       string      `json:"createdAt"`
}

type ordersEnvelope struct {
	Orders []Order `json:"orders"`
}
