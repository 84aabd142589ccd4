// Package pricing derives cart and order totals. The thresholds are fixed
// business constants, not configuration.
package pricing

import "github.com/shopspring/decimal"

var (
	discountThreshold = decimal.NewFromInt(200)
	discountAmount    = decimal.NewFromInt(20)
	deliveryThreshold = decimal.NewFromInt(100)
	deliveryCharge    = decimal.NewFromInt(10)
)

type Quote struct {
	Subtotal       decimal.Decimal `json:"subtotal"`
	Discount       decimal.Decimal `json:"discount"`
	DeliveryCharge decimal.Decimal `json:"deliveryCharge"`
	Total          decimal.Decimal `json:"total"`
}

// FromSubtotal applies the discount and delivery rules:
// a flat 20 off above a 200 subtotal, free delivery above 100, a flat 10
// delivery charge otherwise.
func FromSubtotal(subtotal decimal.Decimal) Quote {
	q := Quote{
		Subtotal:       subtotal,
		Discount:       decimal.Zero,
		DeliveryCharge: deliveryCharge,
	}
	if subtotal.GreaterThan(discountThreshold) {
		q.Discount = discountAmount
	}
	if subtotal.GreaterThan(deliveryThreshold) {
		q.DeliveryCharge = decimal.Zero
	}
	q.Total = subtotal.Sub(q.Discount).Add(q.DeliveryCharge)
	return q
}

// LineTotal is price times quantity for one resolved line item.
func LineTotal(price float64, quantity int) decimal.Decimal {
	return decimal.NewFromFloat(price).Mul(decimal.NewFromInt(int64(quantity)))
}
