package submission

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"
	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/expense-server/internal/invoice"
	"github.com/carson-networks/expense-server/internal/service"
)

// submitter is the interface for sending a category selection to the invoice endpoint.
type submitter interface {
	Submit(ctx context.Context, sessionID uuid.UUID, category string, indices []int) (*service.SubmissionResult, error)
}

// SubmitBody is the request body for a submission.
type SubmitBody struct {
	Category string `json:"category" required:"true" minLength:"1" doc:"Category the transactions belong to"`
	Indices  []int  `json:"indices" required:"true" doc:"Positions of the selected transactions inside the category"`
}

// SubmitInput is the Huma input for a submission.
type SubmitInput struct {
	SessionID string `cookie:"dashboard_session"`
	Body      SubmitBody
}

// SubmitResponseBody is the response body for a submission.
type SubmitResponseBody struct {
	Category          string          `json:"category"`
	TotalTransactions int             `json:"totalTransactions"`
	TotalAmount       string          `json:"totalAmount"`
	Receipt           invoice.Receipt `json:"receipt"`
}

// SubmitOutput is the Huma output for a submission.
type SubmitOutput struct {
	Body SubmitResponseBody
}

// SubmitHandler handles POST /v1/submission.
type SubmitHandler struct {
	Auth              apiutil.Authenticator
	SubmissionService submitter
}

// NewSubmitHandler creates a new SubmitHandler.
func NewSubmitHandler(authn apiutil.Authenticator, svc submitter) *SubmitHandler {
	return &SubmitHandler{Auth: authn, SubmissionService: svc}
}

// Register registers the submission endpoint with the Huma API.
func (h *SubmitHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "submit-transactions",
		Method:      http.MethodPost,
		Path:        "/v1/submission",
		Summary:     "Submit transactions",
		Description: "Sends the selected transactions of a category to the invoice endpoint.",
		Tags:        []string{"Submissions"},
	}, h.handle)
}

func (h *SubmitHandler) handle(ctx context.Context, input *SubmitInput) (*SubmitOutput, error) {
	sess, err := apiutil.RequireSession(ctx, h.Auth, input.SessionID)
	if err != nil {
		return nil, err
	}

	result, err := h.SubmissionService.Submit(ctx, sess.ID, input.Body.Category, input.Body.Indices)
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to submit transactions")
	}

	return &SubmitOutput{Body: SubmitResponseBody{
		Category:          result.Category.String(),
		TotalTransactions: result.TotalTransactions,
		TotalAmount:       apiutil.Money(result.TotalAmount),
		Receipt:           result.Receipt,
	}}, nil
}
