package sqlconfig

import (
	"context"
	"sync"
	"time"

	"github.com/gofrs/uuid/v5"
)

// Ensure MemorySessionTable implements ISessionTable at compile time.
var _ ISessionTable = (*MemorySessionTable)(nil)

// MemorySessionTable keeps session values in process memory. Sessions that
// are not written for a while are dropped by Sweep.
type MemorySessionTable struct {
	mu      sync.RWMutex
	values  map[uuid.UUID]map[string][]byte
	written map[uuid.UUID]time.Time
	now     func() time.Time
}

func NewMemorySessionTable() *MemorySessionTable {
	return &MemorySessionTable{
		values:  make(map[uuid.UUID]map[string][]byte),
		written: make(map[uuid.UUID]time.Time),
		now:     time.Now,
	}
}

func (t *MemorySessionTable) Get(_ context.Context, sessionID uuid.UUID, key string) ([]byte, bool, error) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	value, ok := t.values[sessionID][key]
	if !ok {
		return nil, false, nil
	}
	return cloneBytes(value), true, nil
}

func (t *MemorySessionTable) SetMany(_ context.Context, sessionID uuid.UUID, values map[string][]byte) error {
	if len(values) == 0 {
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()

	session, ok := t.values[sessionID]
	if !ok {
		session = make(map[string][]byte, len(values))
		t.values[sessionID] = session
	}
	for key, value := range values {
		session[key] = cloneBytes(value)
	}
	t.written[sessionID] = t.now()
	return nil
}

func (t *MemorySessionTable) Remove(_ context.Context, sessionID uuid.UUID, keys ...string) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if len(keys) == 0 {
		t.drop(sessionID)
		return nil
	}
	session := t.values[sessionID]
	for _, key := range keys {
		delete(session, key)
	}
	if len(session) == 0 {
		t.drop(sessionID)
	}
	return nil
}

// Sweep removes every session whose last write is older than idle and
// returns how many were removed. A login writes the identity, so with idle
// set to the session TTL only expired sessions are dropped.
func (t *MemorySessionTable) Sweep(idle time.Duration) int {
	t.mu.Lock()
	defer t.mu.Unlock()

	cutoff := t.now().Add(-idle)
	removed := 0
	for id, at := range t.written {
		if at.Before(cutoff) {
			t.drop(id)
			removed++
		}
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (t *MemorySessionTable) RunSweeper(ctx context.Context, interval, idle time.Duration, onSweep func(removed int)) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			removed := t.Sweep(idle)
			if onSweep != nil && removed > 0 {
				onSweep(removed)
			}
		}
	}
}

func (t *MemorySessionTable) drop(sessionID uuid.UUID) {
	delete(t.values, sessionID)
	delete(t.written, sessionID)
}

func (t *MemorySessionTable) Ping(context.Context) error {
	return nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return []byte{}
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}
