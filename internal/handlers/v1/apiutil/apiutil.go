package apiutil

import (
	"context"
	"errors"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

const (
	SessionCookie = "dashboard_session"
	UserCookie    = "dashboard_user"
)

// Authenticator resolves a session cookie value.
type Authenticator interface {
	Authenticate(ctx context.Context, sessionID string) (*service.Session, error)
}

// RequireSession authenticates the request's session cookie or returns a 401.
func RequireSession(ctx context.Context, authenticator Authenticator, cookie string) (*service.Session, error) {
	if cookie == "" {
		return nil, huma.Error401Unauthorized("login required")
	}
	sess, err := authenticator.Authenticate(ctx, cookie)
	if err != nil {
		return nil, ToHumaError(err, "failed to authenticate session")
	}
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("username", sess.Username)
	}
	return sess, nil
}

// ToHumaError maps service errors to HTTP errors. Unknown errors become a 500 with fallbackMsg.
func ToHumaError(err error, fallbackMsg string) error {
	switch {
	case errors.Is(err, service.ErrUnauthenticated):
		return huma.Error401Unauthorized("login required")
	case errors.Is(err, service.ErrInvalidCredentials):
		return huma.Error401Unauthorized("invalid username or password")
	case errors.Is(err, service.ErrInvalidSelection):
		return huma.Error400BadRequest(err.Error())
	case errors.Is(err, service.ErrUnknownCategory):
		return huma.Error404NotFound(err.Error())
	case errors.Is(err, service.ErrBusy):
		return huma.Error409Conflict("a request for this session is already in progress")
	case errors.Is(err, service.ErrNotLoaded):
		return huma.Error409Conflict("load transactions before submitting")
	case errors.Is(err, service.ErrUpstream):
		return huma.NewError(http.StatusBadGateway, "upstream request failed", err)
	case errors.Is(err, context.DeadlineExceeded):
		return huma.NewError(http.StatusGatewayTimeout, "request timed out", err)
	default:
		return huma.NewError(http.StatusInternalServerError, fallbackMsg, err)
	}
}

// Money formats an amount with two decimals, the way the dashboard shows it.
func Money(d decimal.Decimal) string {
	return d.StringFixed(2)
}
