package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/avast/retry-go"
	_ "github.com/lib/pq"
	"github.com/sirupsen/logrus"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

const (
	pingAttempts = 5
	pingDelay    = 2 * time.Second

	memorySweepInterval = time.Minute
)

type Storage struct {
	DB       *sql.DB
	Sessions sqlconfig.ISessionTable
}

// NewStorage opens the session storage selected by STORAGE_DRIVER. The postgres
// driver waits for the database to answer before returning. The memory driver
// drops idle sessions until ctx is done.
func NewStorage(ctx context.Context, env *config.Config, logger *logrus.Logger) (*Storage, error) {
	switch env.StorageDriver {
	case config.StorageDriverMemory:
		table := sqlconfig.NewMemorySessionTable()
		go table.RunSweeper(ctx, memorySweepInterval, env.SessionTTL, func(removed int) {
			logger.WithField("removed", removed).Info("Storage.Sweep.expired sessions removed")
		})
		return &Storage{Sessions: table}, nil
	case config.StorageDriverPostgres:
		return newPostgresStorage(ctx, env, logger)
	default:
		return nil, fmt.Errorf("storage: unknown driver %q", env.StorageDriver)
	}
}

func newPostgresStorage(ctx context.Context, env *config.Config, logger *logrus.Logger) (*Storage, error) {
	db, err := sql.Open("postgres", env.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("storage: open: %w", err)
	}

	err = retry.Do(
		func() error {
			return db.PingContext(ctx)
		},
		retry.Context(ctx),
		retry.Attempts(pingAttempts),
		retry.Delay(pingDelay),
		retry.LastErrorOnly(true),
		retry.OnRetry(func(n uint, err error) {
			logger.WithError(err).WithField("attempt", n+1).Warn("Storage.Ping.retrying")
		}),
	)
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("storage: ping: %w", err)
	}

	return &Storage{
		DB:       db,
		Sessions: sqlconfig.NewSessionValuesTable(db),
	}, nil
}

// Ping reports whether the session storage is reachable.
func (s *Storage) Ping(ctx context.Context) error {
	return s.Sessions.Ping(ctx)
}

func (s *Storage) Close() error {
	if s.DB == nil {
		return nil
	}
	return s.DB.Close()
}
