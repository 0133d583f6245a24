package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/gofrs/uuid/v5"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carson-networks/expense-server/internal/auth"
	"github.com/carson-networks/expense-server/internal/session"
	"github.com/carson-networks/expense-server/internal/storage/sqlconfig"
)

type testClock struct {
	now time.Time
}

func (c *testClock) Now() time.Time { return c.now }

func quietLogger() *logrus.Logger {
	logger := logrus.New()
	logger.Out = io.Discard
	return logger
}

func newAuthTestService(t *testing.T) (*AuthService, *session.Store, *testClock) {
	t.Helper()
	verifier, err := auth.NewStaticVerifierFromPassword("peakAdmin", "12345")
	require.NoError(t, err)
	store := session.NewStore(sqlconfig.NewMemorySessionTable(), quietLogger())
	clock := &testClock{now: time.Date(2025, 9, 21, 10, 0, 0, 0, time.UTC)}
	return NewAuthService(verifier, store, 24*time.Hour, clock.Now), store, clock
}

// -- Login tests --

func TestLogin_Success(t *testing.T) {
	svc, _, clock := newAuthTestService(t)

	sess, err := svc.Login(context.Background(), "peakAdmin", "12345")

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, sess.ID)
	assert.Equal(t, "peakAdmin", sess.Username)
	assert.True(t, sess.ExpiresAt.Equal(clock.now.Add(24*time.Hour)))
}

func TestLogin_InvalidCredentials(t *testing.T) {
	svc, _, _ := newAuthTestService(t)

	_, err := svc.Login(context.Background(), "peakAdmin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestLogin_NewSessionEachTime(t *testing.T) {
	svc, _, _ := newAuthTestService(t)

	a, err := svc.Login(context.Background(), "peakAdmin", "12345")
	require.NoError(t, err)
	b, err := svc.Login(context.Background(), "peakAdmin", "12345")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

// -- Authenticate tests --

func TestAuthenticate_ValidSession(t *testing.T) {
	svc, _, _ := newAuthTestService(t)
	sess, err := svc.Login(context.Background(), "peakAdmin", "12345")
	require.NoError(t, err)

	got, err := svc.Authenticate(context.Background(), sess.ID.String())

	require.NoError(t, err)
	assert.Equal(t, sess.ID, got.ID)
	assert.Equal(t, "peakAdmin", got.Username)
}

func TestAuthenticate_RejectsGarbage(t *testing.T) {
	svc, _, _ := newAuthTestService(t)

	for _, raw := range []string{"", "not-a-uuid", uuid.Nil.String(), uuid.Must(uuid.NewV4()).String()} {
		_, err := svc.Authenticate(context.Background(), raw)
		assert.ErrorIs(t, err, ErrUnauthenticated, raw)
	}
}

func TestAuthenticate_ExpiredSessionIsCleared(t *testing.T) {
	svc, store, clock := newAuthTestService(t)
	sess, err := svc.Login(context.Background(), "peakAdmin", "12345")
	require.NoError(t, err)

	clock.now = clock.now.Add(24 * time.Hour)
	_, err = svc.Authenticate(context.Background(), sess.ID.String())
	assert.ErrorIs(t, err, ErrUnauthenticated)

	_, err = store.LoadIdentity(context.Background(), sess.ID)
	assert.ErrorIs(t, err, session.ErrNoIdentity)
}

// -- Logout tests --

func TestLogout(t *testing.T) {
	svc, _, _ := newAuthTestService(t)
	sess, err := svc.Login(context.Background(), "peakAdmin", "12345")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sess.ID))

	_, err = svc.Authenticate(context.Background(), sess.ID.String())
	assert.ErrorIs(t, err, ErrUnauthenticated)
}
