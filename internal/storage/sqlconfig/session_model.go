package sqlconfig

import (
	"context"
	"time"

	"github.com/gofrs/uuid/v5"
)

// SessionValue is one stored key of a session.
type SessionValue struct {
	SessionID uuid.UUID `db:"session_id"`
	Key       string    `db:"key"`
	Value     []byte    `db:"value"`
	UpdatedAt time.Time `db:"updated_at"`
}

// ISessionTable defines the interface for session key/value storage.
// This abstraction allows swapping the implementation (e.g. Bob or in-memory) without changing callers.
//
//go:generate mockery --name ISessionTable --output mock_ISessionTable.go
type ISessionTable interface {
	// Get returns the value stored under key. The bool is false when the key is absent.
	Get(ctx context.Context, sessionID uuid.UUID, key string) ([]byte, bool, error)
	// SetMany upserts every given key in a single atomic write.
	SetMany(ctx context.Context, sessionID uuid.UUID, values map[string][]byte) error
	// Remove deletes the given keys, or every key of the session when none are given.
	Remove(ctx context.Context, sessionID uuid.UUID, keys ...string) error
	Ping(ctx context.Context) error
}
