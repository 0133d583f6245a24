package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/expense-server/internal/service"
)

// authService is the interface for logging in and out.
type authService interface {
	Login(ctx context.Context, username, password string) (*service.Session, error)
	Logout(ctx context.Context, sessionID uuid.UUID) error
}

func sessionCookies(sess *service.Session) []http.Cookie {
	return []http.Cookie{
		{
			Name:     apiutil.SessionCookie,
			Value:    sess.ID.String(),
			Path:     "/",
			Expires:  sess.ExpiresAt,
			HttpOnly: true,
			SameSite: http.SameSiteLaxMode,
		},
		{
			Name:     apiutil.UserCookie,
			Value:    sess.Username,
			Path:     "/",
			Expires:  sess.ExpiresAt,
			SameSite: http.SameSiteLaxMode,
		},
	}
}

func expiredCookies() []http.Cookie {
	expired := time.Unix(0, 0).UTC()
	return []http.Cookie{
		{Name: apiutil.SessionCookie, Value: "", Path: "/", Expires: expired, MaxAge: -1, HttpOnly: true, SameSite: http.SameSiteLaxMode},
		{Name: apiutil.UserCookie, Value: "", Path: "/", Expires: expired, MaxAge: -1, SameSite: http.SameSiteLaxMode},
	}
}
