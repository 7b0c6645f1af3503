package auth

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/backend"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/session"
	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/logger"
)

type fakeAuthenticator struct {
	result backend.LoginResult
	err    error
	calls  int
}

func (f *fakeAuthenticator) Login(_ context.Context, _, _ string) (backend.LoginResult, error) {
	f.calls++
	if f.err != nil {
		return backend.LoginResult{}, f.err
	}
	return f.result, nil
}

func newService(t *testing.T, store session.Store, auth Authenticator) *Service {
	t.Helper()
	return NewService(store, auth, logger.NewWithWriter("test", "error", io.Discard))
}

func startService(t *testing.T, store session.Store, auth Authenticator) *Service {
	t.Helper()
	svc := newService(t, store, auth)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, svc.Start(ctx))
	return svc
}

func janeResult() backend.LoginResult {
	return backend.LoginResult{
		AccessToken: "abc123",
		User:        &domain.UserProfile{ID: "u1", Name: "Jane", Email: "jane@example.com"},
	}
}

// waitFor polls until the condition holds or the deadline passes. Change
// events are asynchronous, so convergence tests must wait rather than assert
// immediately.
func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatal("condition not reached before deadline")
}

func TestService_Start_HydratesExistingSessions(t *testing.T) {
	store := session.NewMemStore()
	require.NoError(t, store.Save(context.Background(), session.Session{
		ID:          "s1",
		AccessToken: "abc123",
		User:        &domain.UserProfile{ID: "u1", Name: "Jane"},
	}))

	svc := startService(t, store, &fakeAuthenticator{})

	sess, ok := svc.Current("s1")
	require.True(t, ok)
	assert.Equal(t, "abc123", sess.AccessToken)
	assert.Equal(t, "Jane", sess.User.Name)
}

// hydrationStore returns a fixed snapshot from LoadAll regardless of what
// the embedded store holds. Both real stores refuse to persist incomplete
// sessions, so hydration against a Store implementation without that
// validation needs a stub.
type hydrationStore struct {
	*session.MemStore
	stored []session.Session
}

func (s hydrationStore) LoadAll(context.Context) ([]session.Session, error) {
	return s.stored, nil
}

func TestService_Start_SkipsInvalidStoredSessions(t *testing.T) {
	store := hydrationStore{
		MemStore: session.NewMemStore(),
		stored: []session.Session{
			// Token without a user snapshot is treated as no session.
			{ID: "s1", AccessToken: "abc123"},
			{ID: "s2", AccessToken: "def456", User: &domain.UserProfile{ID: "u2", Name: "Ana"}},
		},
	}

	svc := startService(t, store, &fakeAuthenticator{})

	assert.False(t, svc.IsAuthenticated("s1"))
	assert.True(t, svc.IsAuthenticated("s2"))
}

func TestService_Start_CalledTwice_Fails(t *testing.T) {
	store := session.NewMemStore()
	svc := newService(t, store, &fakeAuthenticator{})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	require.NoError(t, svc.Start(ctx))
	assert.Error(t, svc.Start(ctx))
}

func TestService_Login_PersistsAndAdopts(t *testing.T) {
	store := session.NewMemStore()
	auth := &fakeAuthenticator{result: janeResult()}
	svc := startService(t, store, auth)

	sess, err := svc.Login(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)
	require.NotEmpty(t, sess.ID)

	stored, err := store.Get(context.Background(), sess.ID)
	require.NoError(t, err)
	assert.Equal(t, "abc123", stored.AccessToken)

	assert.True(t, svc.IsAuthenticated(sess.ID))
	assert.Equal(t, 1, auth.calls)
}

func TestService_Login_BackendRejection_LeavesNoState(t *testing.T) {
	store := session.NewMemStore()
	auth := &fakeAuthenticator{err: apperrors.Unauthorized("Credenciais inválidas")}
	svc := startService(t, store, auth)

	_, err := svc.Login(context.Background(), "jane@example.com", "wrong")
	require.Error(t, err)

	all, loadErr := store.LoadAll(context.Background())
	require.NoError(t, loadErr)
	assert.Empty(t, all)
}

func TestService_Logout_RemovesSession(t *testing.T) {
	store := session.NewMemStore()
	svc := startService(t, store, &fakeAuthenticator{result: janeResult()})

	sess, err := svc.Login(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(context.Background(), sess.ID))
	assert.False(t, svc.IsAuthenticated(sess.ID))

	_, getErr := store.Get(context.Background(), sess.ID)
	assert.ErrorIs(t, getErr, apperrors.ErrNotFound)
}

func TestService_Logout_UnknownSession_IsNotAnError(t *testing.T) {
	store := session.NewMemStore()
	svc := startService(t, store, &fakeAuthenticator{})

	assert.NoError(t, svc.Logout(context.Background(), "never-existed"))
}

func TestService_ExternalDelete_PropagatesThroughWatch(t *testing.T) {
	store := session.NewMemStore()
	svc := startService(t, store, &fakeAuthenticator{result: janeResult()})

	sess, err := svc.Login(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)

	// Another component (the backend client on a 401) deletes the session
	// directly in storage. The service must converge to unauthenticated.
	require.NoError(t, store.Delete(context.Background(), sess.ID))

	waitFor(t, func() bool { return !svc.IsAuthenticated(sess.ID) })
}

func TestService_TwoInstancesSharingStore_Converge(t *testing.T) {
	store := session.NewMemStore()
	first := startService(t, store, &fakeAuthenticator{result: janeResult()})
	second := startService(t, store, &fakeAuthenticator{})

	sess, err := first.Login(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)

	// The second instance learns about the login through the change feed.
	waitFor(t, func() bool { return second.IsAuthenticated(sess.ID) })
	got, ok := second.Current(sess.ID)
	require.True(t, ok)
	assert.Equal(t, "Jane", got.User.Name)

	// And about the logout.
	require.NoError(t, first.Logout(context.Background(), sess.ID))
	waitFor(t, func() bool { return !second.IsAuthenticated(sess.ID) })
}

func TestService_OverwriteIsLastWriteWins(t *testing.T) {
	store := session.NewMemStore()
	svc := startService(t, store, &fakeAuthenticator{})

	require.NoError(t, store.Save(context.Background(), session.Session{
		ID:          "s1",
		AccessToken: "first",
		User:        &domain.UserProfile{ID: "u1", Name: "Jane"},
	}))
	require.NoError(t, store.Save(context.Background(), session.Session{
		ID:          "s1",
		AccessToken: "second",
		User:        &domain.UserProfile{ID: "u1", Name: "Jane"},
	}))

	waitFor(t, func() bool {
		sess, ok := svc.Current("s1")
		return ok && sess.AccessToken == "second"
	})
}
