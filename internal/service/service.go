package service

import (
	"errors"
	"time"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/operator"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/session"
)

var (
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUnauthenticated    = errors.New("session is missing or expired")

	ErrNotLoaded        = actions.ErrNotLoaded
	ErrUnknownCategory  = actions.ErrUnknownCategory
	ErrInvalidSelection = actions.ErrInvalidSelection
	ErrUpstream         = actions.ErrUpstream
	ErrBusy             = operator.ErrActionInProgress
)

// Service holds all business logic services.
type Service struct {
	Auth      *AuthService
	Dashboard *DashboardService
}

type Options struct {
	Verifier   auth.CredentialVerifier
	Sessions   *session.Store
	Operator   *operator.OperatorDelegator
	SessionTTL time.Duration
	Dashboard  DashboardConfig
}

// NewService creates a new Service from its collaborators.
func NewService(opts Options) *Service {
	return &Service{
		Auth:      NewAuthService(opts.Verifier, opts.Sessions, opts.SessionTTL, time.Now),
		Dashboard: NewDashboardService(opts.Operator, opts.Sessions, opts.Dashboard),
	}
}
