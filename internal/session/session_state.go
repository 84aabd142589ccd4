package session

import (
	"context"
	"errors"
	"sync"

	"go-storefront/internal/store"

	"go.uber.org/zap"
)

// State owns one session's mutable collections. All mutation goes through
// its methods; every mutation persists immediately. Persistence failures
// are swallowed because the in-memory state stays authoritative for the
// session.
type State struct {
	id     string
	store  store.Store
	logger *zap.Logger

	mu         sync.Mutex
	cart       []CartItem
	wishlist   []string
	filters    FilterConfig
	user       *User
	addresses  []string
	submitting bool
}

// ==================== cart ====================

// AddToCart merges into an existing (productId, size) line item or appends
// a new one with quantity 1. At most one line item exists per pair.
func (s *State) AddToCart(ctx context.Context, productID, size string) CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ProductID == productID && s.cart[i].Size == size {
			s.cart[i].Quantity++
			s.persistCart(ctx)
			return s.cart[i]
		}
	}

	item := CartItem{
		ID:        CartItemID(productID, size),
		ProductID: productID,
		Size:      size,
		Quantity:  1,
	}
	s.cart = append(s.cart, item)
	s.persistCart(ctx)
	return item
}

// RemoveFromCart drops the line item with the exact identity. Absent ids
// are a no-op, not an error.
func (s *State) RemoveFromCart(ctx context.Context, itemID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart {
		if s.cart[i].ID == itemID {
			s.cart = append(s.cart[:i], s.cart[i+1:]...)
			break
		}
	}
	s.persistCart(ctx)
}

// UpdateCartQuantity sets the quantity exactly; below 1 it behaves as
// RemoveFromCart. No upper bound is enforced here.
func (s *State) UpdateCartQuantity(ctx context.Context, itemID string, quantity int) {
	if quantity < 1 {
		s.RemoveFromCart(ctx, itemID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.cart {
		if s.cart[i].ID == itemID {
			s.cart[i].Quantity = quantity
			break
		}
	}
	s.persistCart(ctx)
}

// ClearCart empties the collection and persists the empty slice.
func (s *State) ClearCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	s.persistCart(ctx)
}

// EraseCart empties the collection and removes the persisted entry
// entirely. Order submission uses it after a successful checkout.
func (s *State) EraseCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart = nil
	if err := s.store.Erase(ctx, s.id, store.KeyCart); err != nil {
		s.logger.Warn("erase cart failed", zap.Error(err))
	}
}

// TotalCartItems sums quantities across line items, not the line count.
func (s *State) TotalCartItems() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	total := 0
	for _, item := range s.cart {
		total += item.Quantity
	}
	return total
}

// CartItems returns a copy of the current line items.
func (s *State) CartItems() []CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]CartItem(nil), s.cart...)
}

// ==================== wishlist ====================

// ToggleWishlist removes the id when present, appends it otherwise, and
// reports whether the id is now in the wishlist. Two calls in a row return
// the wishlist to its prior state.
func (s *State) ToggleWishlist(ctx context.Context, productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, id := range s.wishlist {
		if id == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			s.persistWishlist(ctx)
			return false
		}
	}
	s.wishlist = append(s.wishlist, productID)
	s.persistWishlist(ctx)
	return true
}

// MoveWishlistToCart adds the product to the cart and removes its id from
// the wishlist, persisting both collections.
func (s *State) MoveWishlistToCart(ctx context.Context, productID, size string) CartItem {
	item := s.AddToCart(ctx, productID, size)

	s.mu.Lock()
	defer s.mu.Unlock()
	for i, id := range s.wishlist {
		if id == productID {
			s.wishlist = append(s.wishlist[:i], s.wishlist[i+1:]...)
			break
		}
	}
	s.persistWishlist(ctx)
	return item
}

func (s *State) InWishlist(productID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, id := range s.wishlist {
		if id == productID {
			return true
		}
	}
	return false
}

func (s *State) Wishlist() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.wishlist...)
}

// ==================== filters ====================

func (s *State) Filters() FilterConfig {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters
}

func (s *State) SetFilters(ctx context.Context, f FilterConfig) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters = f
	if err := s.store.Save(ctx, s.id, store.KeyFilters, f); err != nil {
		s.logger.Warn("persist filters failed", zap.Error(err))
	}
}

// ==================== user ====================

func (s *State) User() *User {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.user == nil {
		return nil
	}
	u := *s.user
	return &u
}

func (s *State) SetUser(ctx context.Context, u User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = &u
	if err := s.store.Save(ctx, s.id, store.KeyUser, u); err != nil {
		s.logger.Warn("persist user failed", zap.Error(err))
	}
}

func (s *State) ClearUser(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.user = nil
	if err := s.store.Erase(ctx, s.id, store.KeyUser); err != nil {
		s.logger.Warn("erase user failed", zap.Error(err))
	}
}

// ==================== addresses ====================

func (s *State) Addresses() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.addresses...)
}

func (s *State) AddAddress(ctx context.Context, flattened string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addresses = append(s.addresses, flattened)
	s.persistAddresses(ctx)
}

// RemoveAddress deletes by position; out-of-range indexes are a no-op.
func (s *State) RemoveAddress(ctx context.Context, index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if index < 0 || index >= len(s.addresses) {
		return
	}
	s.addresses = append(s.addresses[:index], s.addresses[index+1:]...)
	s.persistAddresses(ctx)
}

// ==================== checkout flow guard ====================

// BeginSubmit moves the order flow from Idle to Submitting. It reports
// false when a submission is already in flight.
func (s *State) BeginSubmit() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.submitting {
		return false
	}
	s.submitting = true
	return true
}

// EndSubmit returns the flow to Idle.
func (s *State) EndSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.submitting = false
}

// ==================== persistence ====================

func (s *State) persistCart(ctx context.Context) {
	items := s.cart
	if items == nil {
		items = []CartItem{}
	}
	if err := s.store.Save(ctx, s.id, store.KeyCart, items); err != nil {
		s.logger.Warn("persist cart failed", zap.Error(err))
	}
}

func (s *State) persistWishlist(ctx context.Context) {
	ids := s.wishlist
	if ids == nil {
		ids = []string{}
	}
	if err := s.store.Save(ctx, s.id, store.KeyWishlist, ids); err != nil {
		s.logger.Warn("persist wishlist failed", zap.Error(err))
	}
}

func (s *State) persistAddresses(ctx context.Context) {
	addrs := s.addresses
	if addrs == nil {
		addrs = []string{}
	}
	if err := s.store.Save(ctx, s.id, store.KeyAddresses, addrs); err != nil {
		s.logger.Warn("persist addresses failed", zap.Error(err))
	}
}

// hydrate loads every slice from storage. Corrupt cart/wishlist entries
// are overwritten with the empty default so the stale value never comes
// back on the next load.
func (s *State) hydrate(ctx context.Context) {
	var cart []CartItem
	switch err := s.store.Load(ctx, s.id, store.KeyCart, &cart); {
	case err == nil:
		s.cart = cart
	case errors.Is(err, store.ErrMalformed):
		s.logger.Warn("corrupt cart entry, reinitializing")
		s.cart = nil
		s.persistCart(ctx)
	}

	var wishlist []string
	switch err := s.store.Load(ctx, s.id, store.KeyWishlist, &wishlist); {
	case err == nil:
		s.wishlist = wishlist
	case errors.Is(err, store.ErrMalformed):
		s.logger.Warn("corrupt wishlist entry, reinitializing")
		s.wishlist = nil
		s.persistWishlist(ctx)
	}

	s.filters = DefaultFilters()
	var filters FilterConfig
	if err := s.store.Load(ctx, s.id, store.KeyFilters, &filters); err == nil {
		if filters.Price == "" {
			filters.Price = "any"
		}
		s.filters = filters
	}

	var user User
	if err := s.store.Load(ctx, s.id, store.KeyUser, &user); err == nil && user.Email != "" {
		s.user = &user
	}

	var addresses []string
	if err := s.store.Load(ctx, s.id, store.KeyAddresses, &addresses); err == nil {
		s.addresses = addresses
	}
}

// refreshFromStorage reloads cart or wishlist after an external change to
// the same namespace. Last writer wins; malformed external values are
// replaced with the empty collection.
func (s *State) refreshFromStorage(ctx context.Context, key string) {
	switch key {
	case store.KeyCart:
		var cart []CartItem
		err := s.store.Load(ctx, s.id, store.KeyCart, &cart)
		if err != nil {
			cart = nil
		}
		s.mu.Lock()
		s.cart = cart
		s.mu.Unlock()
	case store.KeyWishlist:
		var wishlist []string
		err := s.store.Load(ctx, s.id, store.KeyWishlist, &wishlist)
		if err != nil {
			wishlist = nil
		}
		s.mu.Lock()
		s.wishlist = wishlist
		s.mu.Unlock()
	}
}
