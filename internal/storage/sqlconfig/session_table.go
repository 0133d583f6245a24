package sqlconfig

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/stephenafamo/bob"
	"github.com/stephenafamo/bob/dialect/psql"
	"github.com/stephenafamo/bob/dialect/psql/dialect"
	"github.com/stephenafamo/bob/dialect/psql/dm"
	"github.com/stephenafamo/bob/dialect/psql/im"
	"github.com/stephenafamo/bob/dialect/psql/sm"
	"github.com/stephenafamo/scan"
)

const sessionValuesTable = "session_values"

// Ensure SessionValuesTable implements ISessionTable at compile time.
var _ ISessionTable = (*SessionValuesTable)(nil)

// SessionValuesTable provides access to the session_values table.
type SessionValuesTable struct {
	db   *sql.DB
	exec bob.Executor
	now  func() time.Time
}

// NewSessionValuesTable creates a SessionValuesTable for the given database.
func NewSessionValuesTable(db *sql.DB) *SessionValuesTable {
	return &SessionValuesTable{
		db:   db,
		exec: bob.NewDB(db),
		now:  time.Now,
	}
}

// Get retrieves a single value by session and key.
func (t *SessionValuesTable) Get(ctx context.Context, sessionID uuid.UUID, key string) ([]byte, bool, error) {
	q := psql.Select(
		sm.Columns("session_id", "key", "value", "updated_at"),
		sm.From(sessionValuesTable),
		sm.Where(psql.Quote("session_id").EQ(psql.Arg(sessionID))),
		sm.Where(psql.Quote("key").EQ(psql.Arg(key))),
	)

	row, err := bob.One(ctx, t.exec, q, scan.StructMapper[SessionValue]())
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return row.Value, true, nil
}

// SetMany upserts all values with one INSERT ... ON CONFLICT statement.
func (t *SessionValuesTable) SetMany(ctx context.Context, sessionID uuid.UUID, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}

	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	updatedAt := t.now().UTC()
	queryMods := []bob.Mod[*dialect.InsertQuery]{
		im.Into(sessionValuesTable, "session_id", "key", "value", "updated_at"),
	}
	for _, key := range keys {
		queryMods = append(queryMods, im.Values(
			psql.Arg(sessionID),
			psql.Arg(key),
			psql.Arg(values[key]),
			psql.Arg(updatedAt),
		))
	}
	queryMods = append(queryMods,
		im.OnConflict("session_id", "key").DoUpdate(
			im.SetExcluded("value", "updated_at"),
		),
	)
	q := psql.Insert(queryMods...)

	_, err := q.Exec(ctx, t.exec)
	return err
}

// Remove deletes the given keys of a session. With no keys every row of the session is removed.
func (t *SessionValuesTable) Remove(ctx context.Context, sessionID uuid.UUID, keys ...string) error {
	queryMods := []bob.Mod[*dialect.DeleteQuery]{
		dm.From(sessionValuesTable),
		dm.Where(psql.Quote("session_id").EQ(psql.Arg(sessionID))),
	}
	if len(keys) > 0 {
		args := make([]bob.Expression, len(keys))
		for i, key := range keys {
			args[i] = psql.Arg(key)
		}
		queryMods = append(queryMods, dm.Where(psql.Quote("key").In(args...)))
	}
	q := psql.Delete(queryMods...)

	_, err := q.Exec(ctx, t.exec)
	return err
}

func (t *SessionValuesTable) Ping(ctx context.Context) error {
	return t.db.PingContext(ctx)
}
