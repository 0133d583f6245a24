package service

import (
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/categorize"
	"github.com/carson-networks/expense-server/internal/invoice"
)

// DashboardConfig holds the header values and page size of the dashboard.
type DashboardConfig struct {
	PageSize    int
	AccountName string
	WalletID    string
	PeriodFrom  string
	PeriodTo    string
}

type LoadResult struct {
	TransactionCount int
	TotalAmount      decimal.Decimal
}

type CategorySummary struct {
	Category categorize.Category
	Color    string
	Icon     string
	Count    int
	Amount   decimal.Decimal
	// Percentage is the share of the total amount with one decimal, e.g. "42.5".
	Percentage string
}

type Summary struct {
	AccountName string
	WalletID    string
	PeriodFrom  string
	PeriodTo    string
	Loaded      bool
	TotalCount  int
	TotalAmount decimal.Decimal
	Categories  []CategorySummary
}

// PageRow is one transaction of a category page. Index is its position inside the category.
type PageRow struct {
	Index          int
	Date           string
	Description    string
	Reference      string
	Merchant       string
	MaskedMerchant string
	Amount         decimal.Decimal
}

type CategoryPage struct {
	Category   categorize.Category
	Color      string
	Icon       string
	Loaded     bool
	TotalCount int
	// TotalAmount is the amount of the whole category, not just this page.
	TotalAmount decimal.Decimal
	Page        int
	PageSize    int
	TotalPages  int
	// From and To are 1-based and inclusive; both are 0 for an empty page.
	From int
	To   int
	Rows []PageRow
}

type SubmissionResult struct {
	Category          categorize.Category
	TotalTransactions int
	TotalAmount       decimal.Decimal
	Receipt           invoice.Receipt
}
