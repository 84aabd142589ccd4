package checkout

import (
	"context"

	"go-storefront/internal/catalog"
	"go-storefront/internal/events"
	"go-storefront/internal/pricing"
	"go-storefront/internal/session"
	"go-storefront/internal/shopapi"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=checkout_service.go -destination=../mock/checkout/checkout_service_mock.go -package=mock
type Service interface {
	// Submit runs the order flow once: precondition checks, payload
	// assembly from the cart snapshot, one order-creation call. There is
	// no retry; a failure leaves the cart untouched and the caller
	// re-initiates.
	Submit(ctx context.Context, sessionID, email string, req SubmitOrderRequest) (SubmitOrderResponse, error)
	History(ctx context.Context, email string) (HistoryResponse, error)
}

type service struct {
	sessions *session.Manager
	catalog  catalog.Service
	shop     shopapi.Client
	pub      events.Publisher
	logger   *zap.Logger
}

type Deps struct {
	Sessions *session.Manager
	Catalog  catalog.Service
	Shop     shopapi.Client
	Events   events.Publisher
	Logger   *zap.Logger
}

func NewService(deps Deps) Service {
	if deps.Sessions == nil {
		panic("session manager cannot be nil")
	}
	if deps.Catalog == nil {
		panic("catalog service cannot be nil")
	}
	if deps.Shop == nil {
		panic("shop client cannot be nil")
	}
	if deps.Events == nil {
		deps.Events = events.NopPublisher{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		sessions: deps.Sessions,
		catalog:  deps.Catalog,
		shop:     deps.Shop,
		pub:      deps.Events,
		logger:   deps.Logger.Named("checkout"),
	}
}

func (s *service) Submit(ctx context.Context, sessionID, email string, req SubmitOrderRequest) (SubmitOrderResponse, error) {
	if email == "" {
		return SubmitOrderResponse{}, ErrNotAuthenticated
	}

	state := s.sessions.Get(ctx, sessionID)

	addresses := state.Addresses()
	if len(addresses) == 0 {
		return SubmitOrderResponse{}, ErrNoAddresses
	}
	if req.AddressIndex == nil {
		return SubmitOrderResponse{}, ErrNoAddressSelected
	}
	idx := *req.AddressIndex
	if idx < 0 || idx >= len(addresses) {
		return SubmitOrderResponse{}, ErrInvalidAddress
	}

	if !state.BeginSubmit() {
		return SubmitOrderResponse{}, ErrSubmitInFlight
	}
	defer state.EndSubmit()

	payload, itemCount := s.buildPayload(state.CartItems(), email, addresses[idx])

	if err := s.shop.CreateOrder(ctx, payload); err != nil {
		s.logger.Warn("order submission failed",
			zap.String("session_id", sessionID),
			zap.Error(err),
		)
		s.pub.Publish(ctx, events.TypeOrderFailed, sessionID, map[string]any{
			"userEmail": email,
			"error":     err.Error(),
		})
		return SubmitOrderResponse{}, ErrOrderFailed
	}

	state.EraseCart(ctx)
	s.pub.Publish(ctx, events.TypeOrderPlaced, sessionID, map[string]any{
		"userEmail":   email,
		"itemCount":   itemCount,
		"totalAmount": payload.TotalAmount,
	})

	return SubmitOrderResponse{
		ItemCount:       itemCount,
		TotalAmount:     payload.TotalAmount,
		DeliveryAddress: payload.DeliveryAddress,
	}, nil
}

func (s *service) History(ctx context.Context, email string) (HistoryResponse, error) {
	if email == "" {
		return HistoryResponse{}, ErrNotAuthenticated
	}
	orders, err := s.shop.ListOrders(ctx, email)
	if err != nil {
		s.logger.Warn("order history fetch failed", zap.String("email", email), zap.Error(err))
		return HistoryResponse{}, ErrHistoryFailed
	}
	if orders == nil {
		orders = []shopapi.Order{}
	}
	return HistoryResponse{Orders: orders}, nil
}

// buildPayload resolves the cart snapshot against the catalog. Line items
// whose product no longer resolves are left out of the payload but stay
// in the cart.
func (s *service) buildPayload(items []session.CartItem, email, address string) (shopapi.CreateOrderRequest, int) {
	orderItems := make([]shopapi.OrderItem, 0, len(items))
	subtotal := decimal.Zero
	itemCount := 0

	for _, item := range items {
		product, ok := s.catalog.Lookup(item.ProductID)
		if !ok {
			s.logger.Debug("cart item no longer resolves, excluded from order",
				zap.String("product_id", item.ProductID),
			)
			continue
		}
		subtotal = subtotal.Add(pricing.LineTotal(product.Price, item.Quantity))
		itemCount += item.Quantity
		orderItems = append(orderItems, shopapi.OrderItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
			Size:      item.Size,
			Price:     product.Price,
			Name:      product.Name,
			Image:     product.Image,
		})
	}

	var quote pricing.Quote
	if len(orderItems) > 0 {
		quote = pricing.FromSubtotal(subtotal)
	}
	return shopapi.CreateOrderRequest{
		UserEmail:       email,
		Items:           orderItems,
		TotalAmount:     quote.Total.InexactFloat64(),
		DeliveryAddress: address,
	}, itemCount
}
