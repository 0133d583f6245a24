package actions

import (
	"context"
	"errors"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/categorize"
	"github.com/carson-networks/expense-server/internal/invoice"
	"github.com/carson-networks/expense-server/internal/metrics"
	"github.com/carson-networks/expense-server/internal/session"
)

var (
	ErrUpstream         = errors.New("upstream request failed")
	ErrNotLoaded        = errors.New("transactions have not been loaded")
	ErrUnknownCategory  = errors.New("unknown category")
	ErrInvalidSelection = errors.New("invalid transaction selection")
)

type IAction interface {
	// Key identifies actions that must not run concurrently.
	Key() string
	Perform(ctx context.Context, deps *Dependencies) error
}

type TransactionSource interface {
	Fetch(ctx context.Context) ([]categorize.RawRecord, error)
}

type InvoiceSubmitter interface {
	Submit(ctx context.Context, submission invoice.Submission) (*invoice.Receipt, error)
}

type SessionState interface {
	Load(ctx context.Context, sessionID uuid.UUID) (session.State, error)
	Replace(ctx context.Context, sessionID uuid.UUID, snapshot categorize.Snapshot) error
}

// Dependencies are shared by every action a worker performs.
type Dependencies struct {
	Source     TransactionSource
	Submitter  InvoiceSubmitter
	Sessions   SessionState
	Normalizer *categorize.Normalizer
	Metrics    *metrics.Metrics
}
