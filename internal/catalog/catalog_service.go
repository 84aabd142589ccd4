package catalog

import (
	"context"
	"errors"
	"strings"
	"sync"

	"go-storefront/internal/shopapi"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

//go:generate mockgen -source=catalog_service.go -destination=../mock/catalog/catalog_service_mock.go -package=mock

// Service holds the last successfully fetched product collection for the
// session. Refresh failures leave the cache stale-but-available and are
// never fatal.
type Service interface {
	Refresh(ctx context.Context) error
	FindByID(ctx context.Context, id string) (shopapi.Product, error)
	// Lookup checks only the cached snapshot; derived views use it so an
	// unresolved line item never triggers a network call.
	Lookup(id string) (shopapi.Product, bool)
	ListByCategory(category string) []shopapi.Product
	All() []shopapi.Product
}

type service struct {
	api    shopapi.Client
	logger *zap.Logger

	mu         sync.RWMutex
	products   []shopapi.Product
	byID       map[string]shopapi.Product
	refreshTag string
}

func NewService(api shopapi.Client, logger *zap.Logger) Service {
	if api == nil {
		panic("shop api client cannot be nil")
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &service{
		api:    api,
		logger: logger.Named("catalog"),
		byID:   make(map[string]shopapi.Product),
	}
}

// Refresh fetches the full collection and replaces the cache on success.
// Each call is tagged so a slow fetch completing after a newer one cannot
// overwrite fresher data with stale data.
func (s *service) Refresh(ctx context.Context) error {
	s.mu.Lock()
	tag := uuid.NewString()
	s.refreshTag = tag
	s.mu.Unlock()

	products, err := s.api.ListProducts(ctx)
	if err != nil {
		s.logger.Warn("catalog refresh failed, keeping stale collection", zap.Error(err))
		return ErrRefreshFailed
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.refreshTag != tag {
		s.logger.Debug("discarding stale catalog refresh response")
		return nil
	}

	byID := make(map[string]shopapi.Product, len(products))
	for _, p := range products {
		byID[p.ID] = p
	}
	s.products = products
	s.byID = byID

	s.logger.Info("catalog refreshed", zap.Int("products", len(products)))
	return nil
}

// FindByID looks the id up in the cached collection and falls back to the
// remote per-product endpoint on a miss. Fallback results are not inserted
// into the cache; the collection stays immutable between refreshes.
func (s *service) FindByID(ctx context.Context, id string) (shopapi.Product, error) {
	s.mu.RLock()
	p, ok := s.byID[id]
	s.mu.RUnlock()
	if ok {
		return p, nil
	}

	p, err := s.api.GetProduct(ctx, id)
	if errors.Is(err, shopapi.ErrNotFound) {
		return shopapi.Product{}, ErrProductNotFound
	}
	if err != nil {
		s.logger.Warn("product fallback lookup failed", zap.String("id", id), zap.Error(err))
		return shopapi.Product{}, ErrLookupFailed
	}
	return p, nil
}

func (s *service) Lookup(id string) (shopapi.Product, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	p, ok := s.byID[id]
	return p, ok
}

// ListByCategory returns the cached products in the category. "all" or an
// empty category means no filtering.
func (s *service) ListByCategory(category string) []shopapi.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if category == "" || strings.EqualFold(category, "all") {
		return append([]shopapi.Product(nil), s.products...)
	}

	out := make([]shopapi.Product, 0)
	for _, p := range s.products {
		if p.Category == category {
			out = append(out, p)
		}
	}
	return out
}

func (s *service) All() []shopapi.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]shopapi.Product(nil), s.products...)
}
