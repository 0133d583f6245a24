package actions

import (
	"context"
	"fmt"

	"github.com/gofrs/uuid/v5"

	"github.com/carson-networks/expense-server/internal/categorize"
	"github.com/carson-networks/expense-server/internal/metrics"
)

// LoadTransactions fetches the source batch, classifies it and replaces the
// session's snapshot. The session is left untouched when any step fails.
type LoadTransactions struct {
	SessionID uuid.UUID

	Snapshot categorize.Snapshot
}

func (l *LoadTransactions) Key() string {
	return "load:" + l.SessionID.String()
}

func (l *LoadTransactions) Perform(ctx context.Context, deps *Dependencies) error {
	raws, err := deps.Source.Fetch(ctx)
	if err != nil {
		deps.Metrics.ObserveLoad(metrics.ResultFailure)
		return fmt.Errorf("%w: fetch transactions: %w", ErrUpstream, err)
	}

	snapshot := categorize.Categorize(deps.Normalizer.Transactions(raws))

	if err := deps.Sessions.Replace(ctx, l.SessionID, snapshot); err != nil {
		deps.Metrics.ObserveLoad(metrics.ResultFailure)
		return err
	}

	deps.Metrics.ObserveLoad(metrics.ResultSuccess)
	deps.Metrics.ObserveSnapshot(snapshot)
	l.Snapshot = snapshot
	return nil
}
