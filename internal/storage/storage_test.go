package storage

import (
	"context"
	"errors"
	"io"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/config"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func TestNewStorage_Memory(t *testing.T) {
	s, err := NewStorage(context.Background(), &config.Config{StorageDriver: config.StorageDriverMemory}, quietLogger())

	require.NoError(t, err)
	assert.Nil(t, s.DB)
	assert.IsType(t, &sqlconfig.MemorySessionTable{}, s.Sessions)
	assert.NoError(t, s.Ping(context.Background()))
	assert.NoError(t, s.Close())
}

func TestNewStorage_UnknownDriver(t *testing.T) {
	_, err := NewStorage(context.Background(), &config.Config{StorageDriver: "sqlite"}, quietLogger())
	assert.Error(t, err)
}

func TestNewStorage_PostgresGivesUpWhenContextEnds(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewStorage(ctx, &config.Config{
		StorageDriver:    config.StorageDriverPostgres,
		PostgresAddress:  "127.0.0.1",
		PostgresPort:     "1",
		PostgresDB:       "postgres",
		PostgresUsername: "postgres",
		PostgresPassword: "x",
	}, quietLogger())

	assert.Error(t, err)
}

func TestStorage_PingDelegatesToSessions(t *testing.T) {
	table := sqlconfig.NewMockISessionTable(t)
	table.EXPECT().Ping(mock.Anything).Return(errors.New("unreachable"))

	s := &Storage{Sessions: table}

	assert.ErrorContains(t, s.Ping(context.Background()), "unreachable")
}
