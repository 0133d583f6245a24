package auth

import (
	"context"
	"net/http"
	"time"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/expense-server/internal/logging"
)

// LoginBody is the request body for logging in.
type LoginBody struct {
	Username string `json:"username" required:"true" minLength:"1" doc:"Dashboard username"`
	Password string `json:"password" required:"true" minLength:"1" doc:"Dashboard password"`
}

// LoginInput is the Huma input for logging in.
type LoginInput struct {
	Body LoginBody
}

// LoginResponseBody is the response body for a successful login.
type LoginResponseBody struct {
	Username  string `json:"username" doc:"Authenticated username"`
	ExpiresAt string `json:"expiresAt" doc:"RFC3339 session expiry"`
}

// LoginOutput is the Huma output for logging in.
type LoginOutput struct {
	SetCookie []http.Cookie `header:"Set-Cookie"`
	Body      LoginResponseBody
}

// LoginHandler handles POST /v1/auth/login.
type LoginHandler struct {
	AuthService authService
}

// NewLoginHandler creates a new LoginHandler.
func NewLoginHandler(svc authService) *LoginHandler {
	return &LoginHandler{AuthService: svc}
}

// Register registers the login endpoint with the Huma API.
func (h *LoginHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "login",
		Method:      http.MethodPost,
		Path:        "/v1/auth/login",
		Summary:     "Log in",
		Description: "Verifies the dashboard credential and starts a session.",
		Tags:        []string{"Auth"},
	}, h.handle)
}

func (h *LoginHandler) handle(ctx context.Context, input *LoginInput) (*LoginOutput, error) {
	if logData := logging.GetLogData(ctx); logData != nil {
		logData.AddData("username", input.Body.Username)
	}

	sess, err := h.AuthService.Login(ctx, input.Body.Username, input.Body.Password)
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to log in")
	}

	return &LoginOutput{
		SetCookie: sessionCookies(sess),
		Body: LoginResponseBody{
			Username:  sess.Username,
			ExpiresAt: sess.ExpiresAt.Format(time.RFC3339),
		},
	}, nil
}
