package service

import (
	"context"
	"errors"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/session"
)

// Session is an authenticated dashboard session.
type Session struct {
	ID        uuid.UUID
	Username  string
	ExpiresAt time.Time
}

type identityStore interface {
	SaveIdentity(ctx context.Context, sessionID uuid.UUID, identity session.Identity) error
	LoadIdentity(ctx context.Context, sessionID uuid.UUID) (session.Identity, error)
	Clear(ctx context.Context, sessionID uuid.UUID) error
}

// AuthService handles login, session checks and logout.
type AuthService struct {
	verifier auth.CredentialVerifier
	sessions identityStore
	ttl      time.Duration
	now      func() time.Time
}

// NewAuthService creates a new AuthService.
func NewAuthService(verifier auth.CredentialVerifier, sessions identityStore, ttl time.Duration, now func() time.Time) *AuthService {
	return &AuthService{
		verifier: verifier,
		sessions: sessions,
		ttl:      ttl,
		now:      now,
	}
}

// Login verifies the credential and opens a new session.
func (s *AuthService) Login(ctx context.Context, username, password string) (*Session, error) {
	if !s.verifier.Verify(username, password) {
		return nil, ErrInvalidCredentials
	}

	id, err := uuid.NewV4()
	if err != nil {
		return nil, err
	}

	identity := session.Identity{
		Username:  username,
		ExpiresAt: s.now().Add(s.ttl).UTC(),
	}
	if err := s.sessions.SaveIdentity(ctx, id, identity); err != nil {
		return nil, err
	}

	return &Session{ID: id, Username: identity.Username, ExpiresAt: identity.ExpiresAt}, nil
}

// Authenticate resolves a session cookie value. Expired sessions are cleared.
func (s *AuthService) Authenticate(ctx context.Context, sessionID string) (*Session, error) {
	id, err := uuid.FromString(sessionID)
	if err != nil || id == uuid.Nil {
		return nil, ErrUnauthenticated
	}

	identity, err := s.sessions.LoadIdentity(ctx, id)
	if errors.Is(err, session.ErrNoIdentity) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	if identity.Expired(s.now()) {
		if err := s.sessions.Clear(ctx, id); err != nil {
			return nil, err
		}
		return nil, ErrUnauthenticated
	}

	return &Session{ID: id, Username: identity.Username, ExpiresAt: identity.ExpiresAt}, nil
}

// Logout discards everything stored for the session.
func (s *AuthService) Logout(ctx context.Context, sessionID uuid.UUID) error {
	return s.sessions.Clear(ctx, sessionID)
}
