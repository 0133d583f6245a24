package category

import (
	"context"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/handlers/v1/apiutil"
	"github.com/carson-networks/expense-server/internal/service"
)

// categoryService is the interface for the dashboard's category views.
type categoryService interface {
	Summary(ctx context.Context, sessionID uuid.UUID) (*service.Summary, error)
	CategoryPage(ctx context.Context, sessionID uuid.UUID, name string, page int) (*service.CategoryPage, error)
}

// Category is the API response model for one category card.
type Category struct {
	Name       string `json:"name" doc:"Category name"`
	Color      string `json:"color" doc:"Display color"`
	Icon       string `json:"icon" doc:"Display icon"`
	Count      int    `json:"count" doc:"Number of transactions in the category"`
	Amount     string `json:"amount" doc:"Sum of the category's amounts"`
	Percentage string `json:"percentage" doc:"Share of the total amount, one decimal"`
}

func fromSummary(c service.CategorySummary) Category {
	return Category{
		Name:       c.Category.String(),
		Color:      c.Color,
		Icon:       c.Icon,
		Count:      c.Count,
		Amount:     apiutil.Money(c.Amount),
		Percentage: c.Percentage,
	}
}
