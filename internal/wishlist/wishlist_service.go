package wishlist

import (
	"context"

	"go-storefront/internal/catalog"
	"go-storefront/internal/events"
	"go-storefront/internal/session"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"
)

//go:generate mockgen -source=wishlist_service.go -destination=../mock/wishlist/wishlist_service_mock.go -package=mock
type Service interface {
	// Toggle removes the id when present, appends it otherwise, and
	// reports the resulting membership. Two calls restore the prior
	// state.
	Toggle(ctx context.Context, sessionID string, req ToggleRequest) (ToggleResponse, error)
	// List resolves the wishlist against the catalog snapshot. Ids whose
	// product no longer resolves are excluded from the view but stay in
	// the wishlist.
	List(ctx context.Context, sessionID string) WishlistResponse
	// MoveToCart adds the product to the cart and drops it from the
	// wishlist, both persisted.
	MoveToCart(ctx context.Context, sessionID, productID, size string) (session.CartItem, error)
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
		logger:   deps.Logger.Named("wishlist"),
	}
}

func (s *service) Toggle(ctx context.Context, sessionID string, req ToggleRequest) (ToggleResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return ToggleResponse{}, ErrInvalidInput
	}

	state := s.sessions.Get(ctx, sessionID)
	in := state.ToggleWishlist(ctx, req.ProductID)

	s.pub.Publish(ctx, events.TypeWishlistUpdated, sessionID, map[string]any{
		"productId":  req.ProductID,
		"inWishlist": in,
	})
	return ToggleResponse{ProductID: req.ProductID, InWishlist: in}, nil
}

func (s *service) List(ctx context.Context, sessionID string) WishlistResponse {
	state := s.sessions.Get(ctx, sessionID)
	ids := state.Wishlist()

	items := make([]WishlistItemResponse, 0, len(ids))
	for _, id := range ids {
		product, ok := s.catalog.Lookup(id)
		if !ok {
			// the id stays in the wishlist; it just has nothing to show
			continue
		}
		items = append(items, WishlistItemResponse{
			ProductID: id,
			Name:      product.Name,
			Category:  product.Category,
			Price:     product.Price,
			Image:     product.Image,
		})
	}

	return WishlistResponse{Items: items, ItemCount: len(items)}
}

func (s *service) MoveToCart(ctx context.Context, sessionID, productID, size string) (session.CartItem, error) {
	state := s.sessions.Get(ctx, sessionID)
	if !state.InWishlist(productID) {
		return session.CartItem{}, ErrNotInWishlist
	}

	item := state.MoveWishlistToCart(ctx, productID, size)

	s.pub.Publish(ctx, events.TypeCartUpdated, sessionID, map[string]any{
		"itemId": item.ID,
		"from":   "wishlist",
	})
	return item, nil
}
