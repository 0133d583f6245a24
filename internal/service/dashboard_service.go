package service

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"
	"github.com/shopspring/decimal"

	"github.com/carson-networks/expense-server/internal/categorize"
	"github.com/carson-networks/expense-server/internal/operator/actions"
	"github.com/carson-networks/expense-server/internal/session"
)

const defaultPageSize = 10

var hundred = decimal.NewFromInt(100)

type actionProcessor interface {
	Process(ctx context.Context, action actions.IAction) error
}

type stateLoader interface {
	Load(ctx context.Context, sessionID uuid.UUID) (session.State, error)
}

// DashboardService serves the dashboard views and runs loads and submissions through the operator.
type DashboardService struct {
	operator actionProcessor
	sessions stateLoader
	cfg      DashboardConfig
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(op actionProcessor, sessions stateLoader, cfg DashboardConfig) *DashboardService {
	if cfg.PageSize < 1 {
		cfg.PageSize = defaultPageSize
	}
	return &DashboardService{operator: op, sessions: sessions, cfg: cfg}
}

// LoadTransactions replaces the session's data with a fresh batch from the source.
func (s *DashboardService) LoadTransactions(ctx context.Context, sessionID uuid.UUID) (*LoadResult, error) {
	action := &actions.LoadTransactions{SessionID: sessionID}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	return &LoadResult{
		TransactionCount: action.Snapshot.TotalCount(),
		TotalAmount:      action.Snapshot.TotalAmount(),
	}, nil
}

// Summary returns the six categories with their counts, amounts and shares.
func (s *DashboardService) Summary(ctx context.Context, sessionID uuid.UUID) (*Summary, error) {
	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	total := state.Snapshot.TotalAmount()
	summary := &Summary{
		AccountName: s.cfg.AccountName,
		WalletID:    s.cfg.WalletID,
		PeriodFrom:  s.cfg.PeriodFrom,
		PeriodTo:    s.cfg.PeriodTo,
		Loaded:      state.Loaded,
		TotalCount:  state.Snapshot.TotalCount(),
		TotalAmount: total,
	}

	for _, bucket := range state.Snapshot.Buckets() {
		meta := bucket.Category().Metadata()
		summary.Categories = append(summary.Categories, CategorySummary{
			Category:   bucket.Category(),
			Color:      meta.Color,
			Icon:       meta.Icon,
			Count:      bucket.Count(),
			Amount:     bucket.Amount(),
			Percentage: Percentage(bucket.Amount(), total),
		})
	}
	return summary, nil
}

// Percentage formats part as a share of total with one decimal. A zero total yields "0.0".
func Percentage(part, total decimal.Decimal) string {
	if total.IsZero() {
		return "0.0"
	}
	return part.Mul(hundred).Div(total).StringFixed(1)
}

// CategoryPage returns one page of a category's transactions. Pages start at 1;
// a page past the end is empty.
func (s *DashboardService) CategoryPage(ctx context.Context, sessionID uuid.UUID, name string, page int) (*CategoryPage, error) {
	category, ok := categorize.ParseCategory(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}
	if page < 1 {
		page = 1
	}

	state, err := s.sessions.Load(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	bucket, _ := state.Snapshot.Bucket(category)
	txs := bucket.Transactions()

	size := s.cfg.PageSize
	meta := category.Metadata()
	result := &CategoryPage{
		Category:    category,
		Color:       meta.Color,
		Icon:        meta.Icon,
		Loaded:      state.Loaded,
		TotalCount:  len(txs),
		TotalAmount: bucket.Amount(),
		Page:        page,
		PageSize:    size,
		TotalPages:  (len(txs) + size - 1) / size,
		Rows:        []PageRow{},
	}

	start := (page - 1) * size
	if start >= len(txs) {
		return result, nil
	}
	end := min(start+size, len(txs))

	result.From = start + 1
	result.To = end
	for i := start; i < end; i++ {
		tx := txs[i]
		result.Rows = append(result.Rows, PageRow{
			Index:          i,
			Date:           tx.Date,
			Description:    tx.Description,
			Reference:      tx.Reference,
			Merchant:       tx.Merchant,
			MaskedMerchant: categorize.MaskMerchant(tx.Merchant),
			Amount:         tx.Amount,
		})
	}
	return result, nil
}

// Submit sends the selected transactions of a category to the invoice endpoint.
func (s *DashboardService) Submit(ctx context.Context, sessionID uuid.UUID, name string, indices []int) (*SubmissionResult, error) {
	category, ok := categorize.ParseCategory(name)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownCategory, name)
	}

	action := &actions.SubmitTransactions{
		SessionID: sessionID,
		Category:  category,
		Indices:   indices,
	}
	if err := s.operator.Process(ctx, action); err != nil {
		return nil, err
	}

	total, err := decimal.NewFromString(action.Submission.TotalAmount.String())
	if err != nil {
		return nil, err
	}
	return &SubmissionResult{
		Category:          category,
		TotalTransactions: action.Submission.TotalTransactions,
		TotalAmount:       total,
		Receipt:           *action.Receipt,
	}, nil
}
