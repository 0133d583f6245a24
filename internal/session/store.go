package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/categorize"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

const (
	KeyTransactionData = "transactionData"
	KeyDataLoaded      = "isDataLoaded"
	KeyIdentity        = "auth"
)

var ErrNoIdentity = errors.New("session: no identity")

// State is what a session has loaded so far.
type State struct {
	Snapshot categorize.Snapshot
	Loaded   bool
}

// Identity is the authenticated user bound to a session.
type Identity struct {
	Username  string    `json:"username"`
	ExpiresAt time.Time `json:"expiresAt"`
}

func (i Identity) Expired(now time.Time) bool {
	return !now.Before(i.ExpiresAt)
}

// Store reads and writes per-session state.
type Store struct {
	table  sqlconfig.ISessionTable
	logger *logrus.Logger
}

func NewStore(table sqlconfig.ISessionTable, logger *logrus.Logger) *Store {
	return &Store{table: table, logger: logger}
}

// Load returns the session state. A missing snapshot is the empty snapshot; a
// snapshot that cannot be decoded is logged, discarded and replaced by the empty one.
func (s *Store) Load(ctx context.Context, sessionID uuid.UUID) (State, error) {
	state := State{Snapshot: categorize.EmptySnapshot()}

	loaded, ok, err := s.table.Get(ctx, sessionID, KeyDataLoaded)
	if err != nil {
		return State{}, fmt.Errorf("session: read %s: %w", KeyDataLoaded, err)
	}
	state.Loaded = ok && string(loaded) == "true"

	raw, ok, err := s.table.Get(ctx, sessionID, KeyTransactionData)
	if err != nil {
		return State{}, fmt.Errorf("session: read %s: %w", KeyTransactionData, err)
	}
	if !ok {
		return state, nil
	}

	var snapshot categorize.Snapshot
	if err := json.Unmarshal(raw, &snapshot); err != nil {
		s.logger.WithError(err).WithField("sessionID", sessionID.String()).
			Warn("Session.Load.corrupt snapshot discarded")
		if rmErr := s.table.Remove(ctx, sessionID, KeyTransactionData, KeyDataLoaded); rmErr != nil {
			return State{}, fmt.Errorf("session: discard corrupt snapshot: %w", rmErr)
		}
		return State{Snapshot: categorize.EmptySnapshot()}, nil
	}

	state.Snapshot = snapshot
	return state, nil
}

// Replace stores snapshot as the session's data and marks it loaded, in one write.
func (s *Store) Replace(ctx context.Context, sessionID uuid.UUID, snapshot categorize.Snapshot) error {
	raw, err := json.Marshal(snapshot)
	if err != nil {
		return fmt.Errorf("session: encode snapshot: %w", err)
	}

	err = s.table.SetMany(ctx, sessionID, map[string][]byte{
		KeyTransactionData: raw,
		KeyDataLoaded:      []byte("true"),
	})
	if err != nil {
		return fmt.Errorf("session: write snapshot: %w", err)
	}
	return nil
}

func (s *Store) SaveIdentity(ctx context.Context, sessionID uuid.UUID, identity Identity) error {
	raw, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("session: encode identity: %w", err)
	}
	if err := s.table.SetMany(ctx, sessionID, map[string][]byte{KeyIdentity: raw}); err != nil {
		return fmt.Errorf("session: write identity: %w", err)
	}
	return nil
}

// LoadIdentity returns ErrNoIdentity when the session has no (readable) identity.
func (s *Store) LoadIdentity(ctx context.Context, sessionID uuid.UUID) (Identity, error) {
	raw, ok, err := s.table.Get(ctx, sessionID, KeyIdentity)
	if err != nil {
		return Identity{}, fmt.Errorf("session: read identity: %w", err)
	}
	if !ok {
		return Identity{}, ErrNoIdentity
	}

	var identity Identity
	if err := json.Unmarshal(raw, &identity); err != nil || identity.Username == "" {
		return Identity{}, ErrNoIdentity
	}
	return identity, nil
}

// Clear removes every key of the session.
func (s *Store) Clear(ctx context.Context, sessionID uuid.UUID) error {
	if err := s.table.Remove(ctx, sessionID); err != nil {
		return fmt.Errorf("session: clear: %w", err)
	}
	return nil
}
