package address

import (
	"context"

	"go-storefront/internal/session"

	"github.com/go-playground/validator/v10"
)

//go:generate mockgen -source=address_service.go -destination=../mock/address/address_service_mock.go -package=mock
type Service interface {
	List(ctx context.Context, sessionID string) ListResponse
	Create(ctx context.Context, sessionID string, req CreateAddressRequest) (AddressResponse, error)
	// Delete removes by position. Positions shift down afterwards, matching
	// the stored array.
	Delete(ctx context.Context, sessionID string, index int) error
}

type service struct {
	sessions *session.Manager
	validate *validator.Validate
}

func NewService(sessions *session.Manager) Service {
	if sessions == nil {
		panic("session manager cannot be nil")
	}
	return &service{
		sessions: sessions,
		validate: validator.New(),
	}
}

func (s *service) List(ctx context.Context, sessionID string) ListResponse {
	addrs := s.sessions.Get(ctx, sessionID).Addresses()
	out := make([]AddressResponse, 0, len(addrs))
	for i, a := range addrs {
		out = append(out, AddressResponse{Index: i, Address: a})
	}
	return ListResponse{Addresses: out}
}

func (s *service) Create(ctx context.Context, sessionID string, req CreateAddressRequest) (AddressResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return AddressResponse{}, ErrMissingFields
	}

	state := s.sessions.Get(ctx, sessionID)
	flattened := req.Flatten()
	state.AddAddress(ctx, flattened)

	return AddressResponse{
		Index:   len(state.Addresses()) - 1,
		Address: flattened,
	}, nil
}

func (s *service) Delete(ctx context.Context, sessionID string, index int) error {
	state := s.sessions.Get(ctx, sessionID)
	if index < 0 || index >= len(state.Addresses()) {
		return ErrInvalidIndex
	}
	state.RemoveAddress(ctx, index)
	return nil
}
