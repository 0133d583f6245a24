package category

import (
	"context"
	"net/http"

	"github.com/danielgtaylor/huma/v2"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/expense-server/internal/handlers/v1/transaction"
)

// DetailInput is the Huma input for one page of a category.
type DetailInput struct {
	SessionID string `cookie:"dashboard_session"`
	Name      string `path:"name" doc:"Category name, e.g. Food & Dining"`
	Page      int    `query:"page" minimum:"1" default:"1" doc:"1-based page number"`
}

// DetailResponseBody is the response body for one page of a category.
type DetailResponseBody struct {
	Category     Category                  `json:"category"`
	Loaded       bool                      `json:"loaded"`
	Page         int                       `json:"page"`
	PageSize     int                       `json:"pageSize"`
	TotalPages   int                       `json:"totalPages"`
	From         int                       `json:"from" doc:"1-based position of the first row, 0 when empty"`
	To           int                       `json:"to" doc:"1-based position of the last row, 0 when empty"`
	Transactions []transaction.Transaction `json:"transactions"`
}

// DetailOutput is the Huma output for one page of a category.
type DetailOutput struct {
	Body DetailResponseBody
}

// DetailHandler handles GET /v1/category/{name}/transactions.
type DetailHandler struct {
	Auth            apiutil.Authenticator
	CategoryService categoryService
}

// NewDetailHandler creates a new DetailHandler.
func NewDetailHandler(authn apiutil.Authenticator, svc categoryService) *DetailHandler {
	return &DetailHandler{Auth: authn, CategoryService: svc}
}

// Register registers the category detail endpoint with the Huma API.
func (h *DetailHandler) Register(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "category-transactions",
		Method:      http.MethodGet,
		Path:        "/v1/category/{name}/transactions",
		Summary:     "List category transactions",
		Description: "Returns one page of a category's transactions with masked merchants.",
		Tags:        []string{"Categories"},
	}, h.handle)
}

func (h *DetailHandler) handle(ctx context.Context, input *DetailInput) (*DetailOutput, error) {
	sess, err := apiutil.RequireSession(ctx, h.Auth, input.SessionID)
	if err != nil {
		return nil, err
	}

	page, err := h.CategoryService.CategoryPage(ctx, sess.ID, input.Name, input.Page)
	if err != nil {
		return nil, apiutil.ToHumaError(err, "failed to list category transactions")
	}

	txs := make([]transaction.Transaction, len(page.Rows))
	for i, row := range page.Rows {
		txs[i] = transaction.FromPageRow(row)
	}

	return &DetailOutput{Body: DetailResponseBody{
		Category: Category{
			Name:   page.Category.String(),
			Color:  page.Color,
			Icon:   page.Icon,
			Count:  page.TotalCount,
			Amount: apiutil.Money(page.TotalAmount),
		},
		Loaded:       page.Loaded,
		Page:         page.Page,
		PageSize:     page.PageSize,
		TotalPages:   page.TotalPages,
		From:         page.From,
		To:           page.To,
		Transactions: txs,
	}}, nil
}
