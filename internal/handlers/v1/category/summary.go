package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apiutil"
)

// SummaryInput is the Huma input for the category summary.
type SummaryInput struct {
	SessionID string `cookie:"dashboard_session"`
}

// Account holds the dashboard header values.
type Account struct {
	Name       string `json:"name"`
	WalletID   string `json:"walletId"`
	PeriodFrom string `json:"periodFrom"`
	PeriodTo   string `json:"periodTo"`
}

// SummaryResponseBody is the response body for the category summary.
type SummaryResponseBody struct {
	Account     Account    `json:"account"`
	Loaded      bool       `json:"loaded" doc:"Whether transactions have been loaded for this session"`
	TotalCount  int        `json:"totalCount"`
	TotalAmount string     `json:"totalAmount"`
	Categories  []Category `json:"categories" doc:"All six categories in display order"`
}

// SummaryOutput is the Huma output for the category summary.
type SummaryOutput struct {
	Body SummaryResponseBody
}

// SummaryHandler handles GET /v1/category.
type SummaryHandler struct {
	Auth            apiutil.Authenticator
	CategoryService categoryService
}

// NewSummaryHandler creates a new SummaryHandler.
func NewSummaryHandler(authn apiutil.Authenticator, svc categoryService) *SummaryHandler {
	return &SummaryHandler{Auth: authn, CategoryService: svc}
}

// Register registers the category summary endpoint with the Huma API.
func (h *SummaryHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-summary",
		Method:      http.MethodGet,
		Path:        "/v1/category",
		Summary:     "Category summary",
		Description: "Returns every category with its count, amount and share of the total.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *SummaryHandler) handle(ctx context.Context, input *SummaryInput) (*SummaryOutput, error) {
	sess, err := apiutil.RequireSession(ctx, h.Auth, input.SessionID)
	if err != nil {
		return nil, err
	}

	summary, err := h.CategoryService.Summary(ctx, sess.ID)
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to load category summary")
	}

	categories := make([]Category, len(summary.Categories))
	for i, c := range summary.Categories {
		categories[i] = fromSummary(c)
	}

	return &SummaryOutput{Body: SummaryResponseBody{
		Account: Account{
			Name:       summary.AccountName,
			WalletID:   summary.WalletID,
			PeriodFrom: summary.PeriodFrom,
			PeriodTo:   summary.PeriodTo,
		},
		Loaded:      summary.Loaded,
		TotalCount:  summary.TotalCount,
		TotalAmount: apiutil.Money(summary.TotalAmount),
		Categories:  categories,
	}}, nil
}
