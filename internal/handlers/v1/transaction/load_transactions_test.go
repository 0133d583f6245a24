package transaction

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/danielgtaylor/huma/v2/humatest"
	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apiutil"
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

type mockTransactionLoader struct {
	mock.Mock
}

func (m *mockTransactionLoader) LoadTransactions(ctx context.Context, sessionID uuid.UUID) (*service.LoadResult, error) {
	args := m.Called(ctx, sessionID)
	result, _ := args.Get(0).(*service.LoadResult)
	return result, args.Error(1)
}

func newTestAPI(t *testing.T, authn apiutil.Authenticator, svc transactionLoader) humatest.TestAPI {
	t.Helper()
	_, api := humatest.New(t)
	NewLoadTransactionsHandler(authn, svc).Register(api)
	return api
}

func authenticated(id uuid.UUID) *mockAuthenticator {
	authn := new(mockAuthenticator)
	authn.On("Authenticate", mock.Anything, id.String()).Return(&service.Session{ID: id, Username: "peakAdmin"}, nil)
	return authn
}

func sessionHeader(id uuid.UUID) string {
	return fmt.Sprintf("Cookie: %s=%s", apiutil.SessionCookie, id)
}

func TestHTTP_LoadTransactions_Success(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	mockSvc := new(mockTransactionLoader)
	mockSvc.On("LoadTransactions", mock.Anything, id).
		Return(&service.LoadResult{TransactionCount: 12, TotalAmount: decimal.RequireFromString("345.6")}, nil)

	resp := newTestAPI(t, authenticated(id), mockSvc).Post("/v1/transaction/load", sessionHeader(id))

	assert.Equal(t, http.StatusOK, resp.Code)
	var body LoadTransactionsResponseBody
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, 12, body.TransactionCount)
	assert.Equal(t, "345.60", body.TotalAmount)
	mockSvc.AssertExpectations(t)
}

func TestHTTP_LoadTransactions_NoSession(t *testing.T) {
	authn := new(mockAuthenticator)
	mockSvc := new(mockTransactionLoader)

	resp := newTestAPI(t, authn, mockSvc).Post("/v1/transaction/load")

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "LoadTransactions")
}

func TestHTTP_LoadTransactions_ExpiredSession(t *testing.T) {
	id := uuid.Must(uuid.NewV4())
	authn := new(mockAuthenticator)
	authn.On("Authenticate", mock.Anything, id.String()).Return(nil, service.ErrUnauthenticated)
	mockSvc := new(mockTransactionLoader)

	resp := newTestAPI(t, authn, mockSvc).Post("/v1/transaction/load", sessionHeader(id))

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
	mockSvc.AssertNotCalled(t, "LoadTransactions")
}

func TestHTTP_LoadTransactions_Errors(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"already loading", service.ErrBusy, http.StatusConflict},
		{"upstream failure", fmt.Errorf("%w: fetch transactions: status 503", service.ErrUpstream), http.StatusBadGateway},
		{"storage failure", errors.New("database unavailable"), http.StatusInternalServerError},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			id := uuid.Must(uuid.NewV4())
			mockSvc := new(mockTransactionLoader)
			mockSvc.On("LoadTransactions", mock.Anything, id).Return(nil, tc.err)

			resp := newTestAPI(t, authenticated(id), mockSvc).Post("/v1/transaction/load", sessionHeader(id))

			assert.Equal(t, tc.want, resp.Code)
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestFromPageRow_UsesMaskedMerchant(t *testing.T) {
	tx := FromPageRow(service.PageRow{
		Index:          3,
		Date:           "21/09/2025",
		Description:    "Fund Transfer",
		Merchant:       "John Tan",
		MaskedMerchant: "John ***",
		Amount:         decimal.RequireFromString("100"),
	})

	assert.Equal(t, 3, tx.Index)
	assert.Equal(t, "John ***", tx.Merchant)
	assert.Equal(t, "100.00", tx.Amount)
}
