package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/categorize"
	"github.com/carson-networks/expense-server/internal/invoice"
	"github.com/carson-networks/expense-server/internal/metrics"
)

// SubmitTransactions posts the selected transactions of one category. Indices
// are positions inside the category's bucket, submitted in the order given.
type SubmitTransactions struct {
	SessionID uuid.UUID
	Category  categorize.Category
	Indices   []int

	Submission invoice.Submission
	Receipt    *invoice.Receipt
}

func (s *SubmitTransactions) Key() string {
	return "submit:" + s.SessionID.String()
}

func (s *SubmitTransactions) Perform(ctx context.Context, deps *Dependencies) error {
	state, err := deps.Sessions.Load(ctx, s.SessionID)
	if err != nil {
		return err
	}
	if !state.Loaded {
		deps.Metrics.ObserveSubmission(metrics.ResultRejected)
		return ErrNotLoaded
	}

	bucket, ok := state.Snapshot.Bucket(s.Category)
	if !ok {
		deps.Metrics.ObserveSubmission(metrics.ResultRejected)
		return fmt.Errorf("%w: %q", ErrUnknownCategory, s.Category)
	}

	selected, err := Select(bucket.Transactions(), s.Indices)
	if err != nil {
		deps.Metrics.ObserveSubmission(metrics.ResultRejected)
		return err
	}

	submission := invoice.NewSubmission(s.Category, selected)
	receipt, err := deps.Submitter.Submit(ctx, submission)
	if err != nil {
		deps.Metrics.ObserveSubmission(metrics.ResultFailure)
		return fmt.Errorf("%w: submit transactions: %w", ErrUpstream, err)
	}

	deps.Metrics.ObserveSubmission(metrics.ResultSuccess)
	s.Submission = submission
	s.Receipt = receipt
	return nil
}

// Select returns txs at the given indices. The selection must be non-empty,
// in range and free of duplicates.
func Select(txs []categorize.Transaction, indices []int) ([]categorize.Transaction, error) {
	if len(indices) == 0 {
		return nil, fmt.Errorf("%w: nothing selected", ErrInvalidSelection)
	}

	seen := make(map[int]struct{}, len(indices))
	selected := make([]categorize.Transaction, 0, len(indices))
	for _, i := range indices {
		if i < 0 || i >= len(txs) {
			return nil, fmt.Errorf("%w: index %d out of range", ErrInvalidSelection, i)
		}
		if _, dup := seen[i]; dup {
			return nil, fmt.Errorf("%w: index %d selected twice", ErrInvalidSelection, i)
		}
		seen[i] = struct{}{}
		selected = append(selected, txs[i])
	}
	return selected, nil
}
