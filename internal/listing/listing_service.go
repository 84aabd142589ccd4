package listing

import (
	"context"

	"go-storefront/internal/catalog"
	"go-storefront/internal/session"
	"go-storefront/internal/shopapi"
)

//go:generate mockgen -source=listing_service.go -destination=../mock/listing/listing_service_mock.go -package=mock
type Service interface {
	// View computes the filtered, ordered product view for the session's
	// stored filter config plus the per-request category and query.
	View(ctx context.Context, sessionID, category, query string) []shopapi.Product

	Filters(ctx context.Context, sessionID string) session.FilterConfig
	SetFilters(ctx context.Context, sessionID string, f session.FilterConfig) session.FilterConfig
	ResetFilters(ctx context.Context, sessionID string) session.FilterConfig
}

type service struct {
	catalog  catalog.Service
	sessions *session.Manager
}

func NewService(cat catalog.Service, sessions *session.Manager) Service {
	if cat == nil {
		panic("catalog service cannot be nil")
	}
	if sessions == nil {
		panic("session manager cannot be nil")
	}
	return &service{catalog: cat, sessions: sessions}
}

func (s *service) View(ctx context.Context, sessionID, category, query string) []shopapi.Product {
	state := s.sessions.Get(ctx, sessionID)
	return Apply(s.catalog.All(), category, query, state.Filters())
}

func (s *service) Filters(ctx context.Context, sessionID string) session.FilterConfig {
	return s.sessions.Get(ctx, sessionID).Filters()
}

func (s *service) SetFilters(ctx context.Context, sessionID string, f session.FilterConfig) session.FilterConfig {
	if f.Price == "" {
		f.Price = "any"
	}
	state := s.sessions.Get(ctx, sessionID)
	state.SetFilters(ctx, f)
	return state.Filters()
}

func (s *service) ResetFilters(ctx context.Context, sessionID string) session.FilterConfig {
	state := s.sessions.Get(ctx, sessionID)
	state.SetFilters(ctx, session.DefaultFilters())
	return state.Filters()
}
