package cart

import (
	"context"

	"go-storefront/internal/catalog"
	"go-storefront/internal/events"
	"go-storefront/internal/pricing"
	"go-storefront/internal/session"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

//go:generate mockgen -source=cart_service.go -destination=../mock/cart/cart_service_mock.go -package=mock
type Service interface {
	AddItem(ctx context.Context, sessionID string, req AddItemRequest) (session.CartItem, error)
	RemoveItem(ctx context.Context, sessionID, itemID string)
	UpdateQty(ctx context.Context, sessionID, itemID string, quantity int)
	Clear(ctx context.Context, sessionID string)
	Count(ctx context.Context, sessionID string) int
	// Detail resolves the cart against the catalog snapshot. Line items
	// whose product no longer resolves are excluded from the rendered
	// view and totals but stay in the cart.
	Detail(ctx context.Context, sessionID string) CartDetailResponse
}

type service struct {
	sessions *session.Manager
	catalog  catalog.Service
	pub      events.Publisher
	validate *validator.Validate
	logger   *zap.Logger
}

type Deps struct {
	Sessions *session.Manager
	Catalog  catalog.Service
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
	if deps.Events == nil {
		deps.Events = events.NopPublisher{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &service{
		sessions: deps.Sessions,
		catalog:  deps.Catalog,
		pub:      deps.Events,
		validate: validator.New(),
		logger:   deps.Logger.Named("cart"),
	}
}

func (s *service) AddItem(ctx context.Context, sessionID string, req AddItemRequest) (session.CartItem, error) {
	if err := s.validate.Struct(req); err != nil {
		return session.CartItem{}, ErrInvalidInput
	}

	state := s.sessions.Get(ctx, sessionID)
	item := state.AddToCart(ctx, req.ProductID, req.Size)

	s.pub.Publish(ctx, events.TypeCartUpdated, sessionID, map[string]any{
		"itemId":   item.ID,
		"quantity": item.Quantity,
	})
	return item, nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID, itemID string) {
	state := s.sessions.Get(ctx, sessionID)
	state.RemoveFromCart(ctx, itemID)
	s.pub.Publish(ctx, events.TypeCartUpdated, sessionID, map[string]any{"itemId": itemID, "removed": true})
}

func (s *service) UpdateQty(ctx context.Context, sessionID, itemID string, quantity int) {
	state := s.sessions.Get(ctx, sessionID)
	state.UpdateCartQuantity(ctx, itemID, quantity)
	s.pub.Publish(ctx, events.TypeCartUpdated, sessionID, map[string]any{"itemId": itemID, "quantity": quantity})
}

func (s *service) Clear(ctx context.Context, sessionID string) {
	state := s.sessions.Get(ctx, sessionID)
	state.ClearCart(ctx)
	s.pub.Publish(ctx, events.TypeCartCleared, sessionID, nil)
}

func (s *service) Count(ctx context.Context, sessionID string) int {
	return s.sessions.Get(ctx, sessionID).TotalCartItems()
}

func (s *service) Detail(ctx context.Context, sessionID string) CartDetailResponse {
	state := s.sessions.Get(ctx, sessionID)

	items := state.CartItems()
	lines := make([]CartLineResponse, 0, len(items))
	subtotal := decimal.Zero
	itemCount := 0

	for _, item := range items {
		product, ok := s.catalog.Lookup(item.ProductID)
		if !ok {
			continue
		}
		lineTotal := pricing.LineTotal(product.Price, item.Quantity)
		subtotal = subtotal.Add(lineTotal)
		itemCount += item.Quantity
		lines = append(lines, CartLineResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Size:      item.Size,
			Quantity:  item.Quantity,
			Name:      product.Name,
			Image:     product.Image,
			Price:     product.Price,
			LineTotal: lineTotal.InexactFloat64(),
		})
	}

	// an empty (or fully unresolved) cart carries no charges at all
	var quote pricing.Quote
	if len(lines) > 0 {
		quote = pricing.FromSubtotal(subtotal)
	}
	return CartDetailResponse{
		Items:     lines,
		ItemCount: itemCount,
		Quote: QuoteResponse{
			Subtotal:       quote.Subtotal.InexactFloat64(),
			Discount:       quote.Discount.InexactFloat64(),
			DeliveryCharge: quote.DeliveryCharge.InexactFloat64(),
			Total:          quote.Total.InexactFloat64(),
		},
	}
}
