package handler

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/auth"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/backend"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/session"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/logger"
)

type staticAuthenticator struct{}

func (staticAuthenticator) Login(context.Context, string, string) (backend.LoginResult, error) {
	return backend.LoginResult{
		AccessToken: "abc123",
		User:        &domain.UserProfile{ID: "u1", Name: "Jane", Email: "jane@example.com"},
	}, nil
}

// guardFixture wires a guard over a real auth service and an in-memory store.
func guardFixture(t *testing.T) (*Guard, *auth.Service, *CookieCodec, session.Store) {
	t.Helper()
	store := session.NewMemStore()
	log := logger.NewWithWriter("test", "error", io.Discard)

	svc := auth.NewService(store, staticAuthenticator{}, log)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	require.NoError(t, svc.Start(ctx))

	codec := NewCookieCodec("test-secret", false, time.Hour)
	return NewGuard(svc, codec, nil, log), svc, codec, store
}

func signedInRequest(t *testing.T, svc *auth.Service, codec *CookieCodec, target string) *http.Request {
	t.Helper()
	sess, err := svc.Login(context.Background(), "jane@example.com", "secret")
	require.NoError(t, err)

	rec := httptest.NewRecorder()
	require.NoError(t, codec.Issue(rec, sess.ID))

	req := httptest.NewRequest(http.MethodGet, target, nil)
	req.AddCookie(rec.Result().Cookies()[0])
	return req
}

func okHandler(called *bool) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireSession_Authenticated_AdmitsAndSetsContext(t *testing.T) {
	guard, svc, codec, _ := guardFixture(t)

	var gotSessionID string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSessionID, _ = session.IDFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})

	req := signedInRequest(t, svc, codec, "/dashboard")
	rec := httptest.NewRecorder()
	guard.RequireSession(next).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, gotSessionID)
}

func TestRequireSession_APIRequestWithoutSession_Returns401JSON(t *testing.T) {
	guard, _, _, _ := guardFixture(t)

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/api/v1/members", nil)
	rec := httptest.NewRecorder()
	guard.RequireSession(okHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Type"), "application/json")
}

func TestRequireSession_BrowserNavigationWithoutSession_RedirectsToSignin(t *testing.T) {
	guard, _, _, _ := guardFixture(t)

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/dashboard", nil)
	req.Header.Set("Accept", "text/html,application/xhtml+xml")
	rec := httptest.NewRecorder()
	guard.RequireSession(okHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/signin", rec.Header().Get("Location"))
}

func TestRequireSession_NavigationAlreadyOnSignin_NoRedirectLoop(t *testing.T) {
	guard, _, _, _ := guardFixture(t)

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/signin", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	guard.RequireSession(okHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestRequireSession_CustomAuthPagePredicate_IsHonored(t *testing.T) {
	_, svc, codec, _ := guardFixture(t)
	guard := NewGuard(svc, codec, func(path string) bool { return path == "/entrar" }, logger.NewWithWriter("test", "error", io.Discard))

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/entrar", nil)
	req.Header.Set("Accept", "text/html")
	rec := httptest.NewRecorder()
	guard.RequireSession(okHandler(&called)).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Empty(t, rec.Header().Get("Location"))
}

func TestRequireSession_SessionDeletedExternally_RejectsStaleCookie(t *testing.T) {
	guard, svc, codec, store := guardFixture(t)

	req := signedInRequest(t, svc, codec, "/api/v1/members")

	// The backend client deleted the session after a 401; the cookie is now a
	// dangling pointer.
	id, err := codec.SessionID(req)
	require.NoError(t, err)
	require.NoError(t, store.Delete(context.Background(), id))
	waitForGuard(t, func() bool { return !svc.IsAuthenticated(id) })

	var called bool
	rec := httptest.NewRecorder()
	guard.RequireSession(okHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestPublicOnly_Authenticated_RedirectsToDashboard(t *testing.T) {
	guard, svc, codec, _ := guardFixture(t)

	var called bool
	req := signedInRequest(t, svc, codec, "/signin")
	rec := httptest.NewRecorder()
	guard.PublicOnly(okHandler(&called)).ServeHTTP(rec, req)

	assert.False(t, called)
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/dashboard", rec.Header().Get("Location"))
}

func TestPublicOnly_Unauthenticated_Admits(t *testing.T) {
	guard, _, _, _ := guardFixture(t)

	var called bool
	req := httptest.NewRequest(http.MethodGet, "/signin", nil)
	rec := httptest.NewRecorder()
	guard.PublicOnly(okHandler(&called)).ServeHTTP(rec, req)

	assert.True(t, called)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func waitForGuard(t *testing.T, cond func() bool) {
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
