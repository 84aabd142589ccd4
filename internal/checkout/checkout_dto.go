package checkout

import "go-storefront/internal/shopapi"

// SubmitOrderRequest selects one of the session's saved addresses by
// position. The pointer distinguishes "no address selected" from index 0.
type SubmitOrderRequest struct {
	AddressIndex *int `json:"addressIndex"`
}

type SubmitOrderResponse struct {
	ItemCount       int     `json:"itemCount"`
	TotalAmount     float64 `json:"totalAmount"`
	DeliveryAddress string  `json:"deliveryAddress"`
}

type HistoryResponse struct {
	Orders []shopapi.Order `json:"orders"`
}
