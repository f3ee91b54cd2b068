package services

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"

	"github.com/avasiliev/fittrack/internal/client/api"
	"github.com/avasiliev/fittrack/internal/client/models"
	"github.com/avasiliev/fittrack/internal/client/storage"
	"github.com/avasiliev/fittrack/internal/common"
	"github.com/avasiliev/fittrack/internal/logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	_ "modernc.org/sqlite"
)

// ---- helpers ----

func setupDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", "file:"+t.Name()+"?mode=memory&cache=shared")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`
CREATE TABLE kvstore (
  key   TEXT PRIMARY KEY,
  value BLOB NOT NULL
);
`)
	require.NoError(t, err)
	return db
}

func testLogger() logging.Logger {
	return logging.NewTextLogger(discard{}, slog.LevelError)
}

type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }

func getKey(t *testing.T, db *sql.DB, key string) []byte {
	t.Helper()
	var v []byte
	err := db.QueryRow(`SELECT value FROM kvstore WHERE key=?`, key).Scan(&v)
	if err == sql.ErrNoRows {
		return nil
	}
	require.NoError(t, err)
	return v
}

func rosterLen(t *testing.T, db *sql.DB) int {
	t.Helper()
	data := getKey(t, db, storage.KeyRegisteredUsers)
	if data == nil {
		return 0
	}
	var roster []models.LocalAccount
	require.NoError(t, json.Unmarshal(data, &roster))
	return len(roster)
}

// ---- fake gateway ----

type fakeAuthGateway struct {
	LoginRet *api.Credentials
	LoginErr error

	RegisterRet *api.Credentials
	RegisterErr error

	PingErr error

	LoginCalls    int
	LastLoginUser string
	LastLoginPass string
}

func (f *fakeAuthGateway) Login(ctx context.Context, username, password string) (*api.Credentials, error) {
	f.LoginCalls++
	f.LastLoginUser = username
	f.LastLoginPass = password
	return f.LoginRet, f.LoginErr
}

func (f *fakeAuthGateway) Register(ctx context.Context, req api.RegisterRequest) (*api.Credentials, error) {
	return f.RegisterRet, f.RegisterErr
}

func (f *fakeAuthGateway) Ping(ctx context.Context) error { return f.PingErr }

func newSessionService(t *testing.T, gw api.AuthGateway) (SessionService, *sql.DB) {
	t.Helper()
	db := setupDB(t)
	return NewSessionService(gw, db, testLogger()), db
}

// ---- tests ----

func TestSessionService_RegisterAndLocalLogin(t *testing.T) {
	gw := &fakeAuthGateway{LoginErr: fmt.Errorf("%w: should not be called", api.ErrRemoteRejected)}
	svc, db := newSessionService(t, gw)
	ctx := context.Background()

	session, err := svc.Register(ctx, RegisterInput{
		Username: "alice", Email: "a@x.com", Password: "pw",
		FirstName: "Alice", LastName: "Smith",
	})
	require.NoError(t, err)
	require.NotNil(t, session)

	assert.True(t, strings.HasPrefix(session.Token, "local-token-"), "token %q", session.Token)
	assert.Equal(t, "alice", session.Profile.Username)
	assert.Equal(t, 1, rosterLen(t, db))

	// persisted state matches the issued session
	assert.Equal(t, []byte(session.Token), getKey(t, db, storage.KeyAuthToken))
	var persisted models.UserProfile
	require.NoError(t, json.Unmarshal(getKey(t, db, storage.KeyUserData), &persisted))
	assert.Equal(t, session.Profile, persisted)

	// the persisted profile carries no password
	assert.NotContains(t, string(getKey(t, db, storage.KeyUserData)), "pw")

	// login resolves via the local path, the gateway is never consulted
	again, err := svc.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.Equal(t, session.Profile, again.Profile)
	assert.Zero(t, gw.LoginCalls)
	assert.True(t, strings.HasPrefix(again.Token, "local-token-"))
}

func TestSessionService_Register_DuplicateUsername(t *testing.T) {
	svc, db := newSessionService(t, &fakeAuthGateway{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "alice", Email: "other@x.com", Password: "pw2"})
	require.ErrorIs(t, err, common.ErrDuplicateAccount)
	assert.Equal(t, 1, rosterLen(t, db))
}

func TestSessionService_Register_DuplicateEmail(t *testing.T) {
	svc, db := newSessionService(t, &fakeAuthGateway{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	_, err = svc.Register(ctx, RegisterInput{Username: "bob", Email: "a@x.com", Password: "pw"})
	require.ErrorIs(t, err, common.ErrDuplicateAccount)
	assert.Equal(t, 1, rosterLen(t, db))
}

func TestSessionService_RestoreRoundTrip(t *testing.T) {
	gw := &fakeAuthGateway{}
	svc, db := newSessionService(t, gw)
	ctx := context.Background()

	session, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	// a fresh service over the same database models a process restart
	restarted := NewSessionService(gw, db, testLogger())
	restored, err := restarted.Restore(ctx)
	require.NoError(t, err)
	require.NotNil(t, restored)
	assert.Equal(t, *session, *restored)
	assert.Equal(t, restored, restarted.Current())
}

func TestSessionService_Restore_FreshInstall(t *testing.T) {
	svc, _ := newSessionService(t, &fakeAuthGateway{})

	restored, err := svc.Restore(context.Background())
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestSessionService_Restore_PartialStateIsNoSession(t *testing.T) {
	svc, db := newSessionService(t, &fakeAuthGateway{})
	ctx := context.Background()

	r := storage.NewSQLiteRepository(db)
	require.NoError(t, r.Set(ctx, storage.KeyAuthToken, []byte("tok-only")))

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)
}

func TestSessionService_LogoutThenRestore(t *testing.T) {
	svc, db := newSessionService(t, &fakeAuthGateway{})
	ctx := context.Background()

	_, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx))
	assert.Nil(t, svc.Current())
	assert.Nil(t, getKey(t, db, storage.KeyAuthToken))
	assert.Nil(t, getKey(t, db, storage.KeyUserData))

	restored, err := svc.Restore(ctx)
	require.NoError(t, err)
	assert.Nil(t, restored)

	// logout without a session is a no-op, not an error
	require.NoError(t, svc.Logout(ctx))
}

func TestSessionService_FailedLoginPreservesSession(t *testing.T) {
	gw := &fakeAuthGateway{LoginErr: fmt.Errorf("%w: Invalid credentials", api.ErrRemoteRejected)}
	svc, _ := newSessionService(t, gw)
	ctx := context.Background()

	session, err := svc.Register(ctx, RegisterInput{Username: "alice", Email: "a@x.com", Password: "pw"})
	require.NoError(t, err)

	// wrong local password falls through to the gateway, which rejects
	_, err = svc.Login(ctx, "alice", "wrong")
	require.ErrorIs(t, err, api.ErrRemoteRejected)

	assert.Equal(t, session, svc.Current(), "existing session must survive a failed login")
	assert.ErrorIs(t, svc.LastError(), api.ErrRemoteRejected)

	// a following successful login clears the surfaced error
	_, err = svc.Login(ctx, "alice", "pw")
	require.NoError(t, err)
	assert.NoError(t, svc.LastError())
}

func TestSessionService_RemoteLogin(t *testing.T) {
	gw := &fakeAuthGateway{LoginRet: &api.Credentials{
		Token: "remote-tok",
		Profile: models.UserProfile{
			ID: "1", Username: "emilys", Email: "emily@x.com",
			FirstName: "Emily", LastName: "Johnson",
		},
	}}
	svc, db := newSessionService(t, gw)
	ctx := context.Background()

	session, err := svc.Login(ctx, "emilys", "emilyspass")
	require.NoError(t, err)

	assert.Equal(t, "remote-tok", session.Token)
	assert.Equal(t, "emilys", gw.LastLoginUser)
	assert.Equal(t, "emilyspass", gw.LastLoginPass)
	assert.Equal(t, []byte("remote-tok"), getKey(t, db, storage.KeyAuthToken))
}

func TestSessionService_RemoteUnavailableSurfacesAsRejected(t *testing.T) {
	gw := &fakeAuthGateway{LoginErr: fmt.Errorf("%w: connection refused", api.ErrUnavailable)}
	svc, _ := newSessionService(t, gw)

	_, err := svc.Login(context.Background(), "emilys", "emilyspass")
	assert.ErrorIs(t, err, api.ErrRemoteRejected)
}

func TestSessionService_MalformedResponsePassesThrough(t *testing.T) {
	gw := &fakeAuthGateway{LoginErr: fmt.Errorf("%w: no token", api.ErrMalformedResponse)}
	svc, _ := newSessionService(t, gw)

	_, err := svc.Login(context.Background(), "emilys", "emilyspass")
	assert.ErrorIs(t, err, api.ErrMalformedResponse)
}

func TestSessionService_EmptyTokenNotPersisted(t *testing.T) {
	gw := &fakeAuthGateway{LoginRet: &api.Credentials{
		Token:   "",
		Profile: models.UserProfile{ID: "1", Username: "emilys"},
	}}
	svc, db := newSessionService(t, gw)

	_, err := svc.Login(context.Background(), "emilys", "emilyspass")
	require.ErrorIs(t, err, common.ErrInvalidToken)

	assert.Nil(t, svc.Current())
	assert.Nil(t, getKey(t, db, storage.KeyAuthToken))
	assert.Nil(t, getKey(t, db, storage.KeyUserData))
}

func TestSessionService_TestConnection(t *testing.T) {
	gw := &fakeAuthGateway{}
	svc, _ := newSessionService(t, gw)
	assert.NoError(t, svc.TestConnection(context.Background()))

	gw.PingErr = fmt.Errorf("%w: no route", api.ErrUnavailable)
	assert.ErrorIs(t, svc.TestConnection(context.Background()), api.ErrUnavailable)
}
