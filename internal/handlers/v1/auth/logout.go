package auth

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apiutil"
)

// LogoutInput is the Huma input for logging out.
type LogoutInput struct {
	SessionID string `cookie:"dashboard_session"`
}

// LogoutOutput is the Huma output for logging out.
type LogoutOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
}

// LogoutHandler handles POST /v1/auth/logout.
type LogoutHandler struct {
	AuthService authService
}

// NewLogoutHandler creates a new LogoutHandler.
func NewLogoutHandler(svc authService) *LogoutHandler {
	return &LogoutHandler{AuthService: svc}
}

// Register registers the logout endpoint with the Huma API.
func (h *LogoutHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID:   "logout",
		Method:        http.MethodPost,
		Path:          "/v1/auth/logout",
		Summary:       "Log out",
		Description:   "Clears the session and expires the session cookies.",
		Tags:          []string{"Auth"},
		DefaultStatus: http.StatusNoContent,
	}, h.handle)
}

func (h *LogoutHandler) handle(ctx context.Context, input *LogoutInput) (*LogoutOutput, error) {
	if id, err := uuid.FromString(input.SessionID); err == nil && id != uuid.Nil {
		if err := h.AuthService.Logout(ctx, id); err != nil {
			return nil, apiutil.ToHumaError(err, "failed to log out")
		}
	}

	return &LogoutOutput{SetCookie: expiredCookies()}, nil
}
