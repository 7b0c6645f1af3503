package handler

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/auth"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/session"
	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/httputil"
)

const (
	signInPath    = "/signin"
	dashboardPath = "/dashboard"
)

// AuthPagePredicate reports whether a path is itself a sign-in/sign-up page.
// The guard consults it before writing a redirect so a rejected request that
// is already on an auth page never redirects to one (no redirect loop).
type AuthPagePredicate func(path string) bool

// DefaultAuthPages matches the console's sign-in and sign-up routes.
func DefaultAuthPages(path string) bool {
	return path == "/signin" || path == "/signup" ||
		strings.HasPrefix(path, "/signin/") || strings.HasPrefix(path, "/signup/")
}

// Guard protects routes based on authentication state. It owns all navigation
// decisions; neither the backend client nor the auth service knows any route.
type Guard struct {
	auth       *auth.Service
	cookies    *CookieCodec
	isAuthPage AuthPagePredicate
	logger     *slog.Logger
}

// NewGuard creates a guard. isAuthPage defaults to DefaultAuthPages when nil.
func NewGuard(authSvc *auth.Service, cookies *CookieCodec, isAuthPage AuthPagePredicate, logger *slog.Logger) *Guard {
	if isAuthPage == nil {
		isAuthPage = DefaultAuthPages
	}
	return &Guard{auth: authSvc, cookies: cookies, isAuthPage: isAuthPage, logger: logger}
}

// wantsHTML reports whether the request is a browser navigation rather than an
// API call. Navigations get redirects; API calls get JSON errors.
func wantsHTML(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Accept"), "text/html")
}

// RequireSession admits only authenticated requests. The session ID is placed
// in the request context so the backend client can resolve the bearer token.
//
// Rejections: browser navigations are sent to the sign-in page with 303 See
// Other (replace semantics: the rejected URL is not worth revisiting), unless
// the request is already on an auth page; API requests get 401 JSON.
func (g *Guard) RequireSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		sessionID, err := g.cookies.SessionID(r)
		if err == nil && g.auth.IsAuthenticated(sessionID) {
			next.ServeHTTP(w, r.WithContext(session.ContextWithID(r.Context(), sessionID)))
			return
		}

		// A cookie that no longer maps to a stored session is dead weight.
		g.cookies.Clear(w)

		if wantsHTML(r) && !g.isAuthPage(r.URL.Path) {
			http.Redirect(w, r, signInPath, http.StatusSeeOther)
			return
		}
		httputil.WriteError(w, r, apperrors.Unauthorized("authentication required"), g.logger)
	})
}

// PublicOnly rejects authenticated requests, sending them to the dashboard.
// It protects the sign-in and sign-up pages from signed-in users.
func (g *Guard) PublicOnly(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if sessionID, err := g.cookies.SessionID(r); err == nil && g.auth.IsAuthenticated(sessionID) {
			http.Redirect(w, r, dashboardPath, http.StatusSeeOther)
			return
		}
		next.ServeHTTP(w, r)
	})
}
