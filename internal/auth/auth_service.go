package auth

import (
	"context"
	"os"
	"strings"
	"time"

	"go-storefront/internal/session"

	"github.com/golang-jwt/jwt/v5"
)

const tokenLifetime = 30 * 24 * time.Hour

// Service binds an email to the session. There is no credential
// verification behind the login; presence of an email is the whole
// identity.
type Service struct {
	sessions *session.Manager
}

func NewService(sessions *session.Manager) *Service {
	if sessions == nil {
		panic("session manager cannot be nil")
	}
	return &Service{sessions: sessions}
}

// Login persists the user slice and returns a signed token carrying the
// email.
func (s *Service) Login(ctx context.Context, sessionID, email string) (string, AuthResponse, error) {
	email = strings.TrimSpace(strings.ToLower(email))
	if email == "" {
		return "", AuthResponse{}, ErrEmailRequired
	}

	state := s.sessions.Get(ctx, sessionID)
	state.SetUser(ctx, session.User{Email: email})

	token, err := s.generateToken(email)
	if err != nil {
		return "", AuthResponse{}, ErrTokenGenerationFailed
	}
	return token, AuthResponse{Email: email}, nil
}

// Logout erases the persisted user slice.
func (s *Service) Logout(ctx context.Context, sessionID string) {
	s.sessions.Get(ctx, sessionID).ClearUser(ctx)
}

// CurrentUser returns the session's user, nil for guests.
func (s *Service) CurrentUser(ctx context.Context, sessionID string) *session.User {
	return s.sessions.Get(ctx, sessionID).User()
}

func (s *Service) generateToken(email string) (string, error) {
	claims := jwt.MapClaims{
		"email": email,
		"exp":   time.Now().Add(tokenLifetime).Unix(),
		"iat":   time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
