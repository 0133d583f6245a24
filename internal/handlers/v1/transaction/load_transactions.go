package transaction

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/expense-server/internal/logging"
	"github.com/carson-networks/expense-server/internal/service"
)

// LoadTransactionsInput is the Huma input for loading transactions.
type LoadTransactionsInput struct {
	SessionID string `cookie:"dashboard_session"`
}

// LoadTransactionsResponseBody is the response body for loading transactions.
type LoadTransactionsResponseBody struct {
	TransactionCount int    `json:"transactionCount" doc:"Number of transactions loaded and categorized"`
	TotalAmount      string `json:"totalAmount" doc:"Sum of all loaded amounts"`
}

// LoadTransactionsOutput is the Huma output for loading transactions.
type LoadTransactionsOutput struct {
	Body LoadTransactionsResponseBody
}

// transactionLoader is the interface for loading transactions.
type transactionLoader interface {
	LoadTransactions(ctx context.Context, sessionID uuid.UUID) (*service.LoadResult, error)
}

// LoadTransactionsHandler handles POST /v1/transaction/load.
type LoadTransactionsHandler struct {
	Auth               apiutil.Authenticator
	TransactionService transactionLoader
}

// NewLoadTransactionsHandler creates a new LoadTransactionsHandler.
func NewLoadTransactionsHandler(authn apiutil.Authenticator, svc transactionLoader) *LoadTransactionsHandler {
	return &LoadTransactionsHandler{Auth: authn, TransactionService: svc}
}

// Register registers the load transactions endpoint with the Huma API.
func (h *LoadTransactionsHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "load-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/transaction/load",
		Summary:     "Load transactions",
		Description: "Fetches transactions from the source, categorizes them and replaces the session's data.",
		Tags:        []string{"Transactions"},
	}, h.handle)
}

func (h *LoadTransactionsHandler) handle(ctx context.Context, input *LoadTransactionsInput) (*LoadTransactionsOutput, error) {
	sess, err := apiutil.RequireSession(ctx, h.Auth, input.SessionID)
	if err != nil {
		return nil, err
	}

	logData := logging.GetLogData(ctx)
	var stopTimer func()
	if logData != nil {
		stopTimer = logData.AddTiming("loadTransactionsMs")
	}
	result, err := h.TransactionService.LoadTransactions(ctx, sess.ID)
	if stopTimer != nil {
		stopTimer()
	}
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to load transactions")
	}

	if logData != nil {
		logData.AddData("transactionCount", result.TransactionCount)
	}

	return &LoadTransactionsOutput{Body: LoadTransactionsResponseBody{
		TransactionCount: result.TransactionCount,
		TotalAmount:      apiutil.Money(result.TotalAmount),
	}}, nil
}
