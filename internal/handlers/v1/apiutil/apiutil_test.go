package apiutil

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/service"
)

type mockAuthenticator struct {
	mock.Mock
}

func (m *mockAuthenticator) Authenticate(ctx context.Context, sessionID string) (*service.Session, error) {
	args := m.Called(ctx, sessionID)
	sess, _ := args.Get(0).(*service.Session)
	return sess, args.Error(1)
}

func statusOf(t *testing.T, err error) int {
	t.Helper()
	var se huma.StatusError
	require.True(t, errors.As(err, &se), "not a huma status error: %v", err)
	return se.GetStatus()
}

func TestToHumaError(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrUnauthenticated, http.StatusUnauthorized},
		{service.ErrInvalidCredentials, http.StatusUnauthorized},
		{fmt.Errorf("%w: index 9", service.ErrInvalidSelection), http.StatusBadRequest},
		{fmt.Errorf("%w: \"x\"", service.ErrUnknownCategory), http.StatusNotFound},
		{service.ErrBusy, http.StatusConflict},
		{service.ErrNotLoaded, http.StatusConflict},
		{fmt.Errorf("%w: fetch: boom", service.ErrUpstream), http.StatusBadGateway},
		{context.DeadlineExceeded, http.StatusGatewayTimeout},
		{errors.New("disk full"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.err.Error(), func(t *testing.T) {
			assert.Equal(t, tc.want, statusOf(t, ToHumaError(tc.err, "failed")))
		})
	}
}

func TestRequireSession_MissingCookie(t *testing.T) {
	authn := new(mockAuthenticator)

	_, err := RequireSession(context.Background(), authn, "")

	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
	authn.AssertNotCalled(t, "Authenticate")
}

func TestRequireSession_Invalid(t *testing.T) {
	authn := new(mockAuthenticator)
	authn.On("Authenticate", mock.Anything, "abc").Return(nil, service.ErrUnauthenticated)

	_, err := RequireSession(context.Background(), authn, "abc")

	assert.Equal(t, http.StatusUnauthorized, statusOf(t, err))
}

func TestRequireSession_Valid(t *testing.T) {
	authn := new(mockAuthenticator)
	authn.On("Authenticate", mock.Anything, "abc").Return(&service.Session{Username: "peakAdmin"}, nil)

	sess, err := RequireSession(context.Background(), authn, "abc")

	require.NoError(t, err)
	assert.Equal(t, "peakAdmin", sess.Username)
}

func TestMoney(t *testing.T) {
	assert.Equal(t, "12.50", Money(decimal.RequireFromString("12.5")))
	assert.Equal(t, "0.00", Money(decimal.Zero))
	assert.Equal(t, "-3.10", Money(decimal.RequireFromString("-3.1")))
}
