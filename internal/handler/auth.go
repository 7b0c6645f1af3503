package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/auth"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/backend"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/session"
	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/httputil"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/validator"
)

// API bundles the dependencies every console handler needs.
type API struct {
	auth       *auth.Service
	backend    *backend.Client
	bible      *backend.BibleClient
	cookies    *CookieCodec
	isAuthPage AuthPagePredicate
	logger     *slog.Logger
}

// NewAPI creates the handler set. isAuthPage defaults to DefaultAuthPages.
func NewAPI(authSvc *auth.Service, bc *backend.Client, bible *backend.BibleClient, cookies *CookieCodec, isAuthPage AuthPagePredicate, logger *slog.Logger) *API {
	if isAuthPage == nil {
		isAuthPage = DefaultAuthPages
	}
	return &API{
		auth:       authSvc,
		backend:    bc,
		bible:      bible,
		cookies:    cookies,
		isAuthPage: isAuthPage,
		logger:     logger,
	}
}

// respondError writes an error, handling the forced-logout case: when the
// backend answered 401 mid-session, storage is already empty by the time the
// error reaches here, so the cookie is cleared and browser navigations are
// sent to the sign-in page. Requests already on an auth page never redirect.
func (a *API) respondError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, apperrors.ErrSessionExpired) {
		a.cookies.Clear(w)
		if wantsHTML(r) && !a.isAuthPage(r.URL.Path) {
			http.Redirect(w, r, signInPath, http.StatusSeeOther)
			return
		}
	}
	httputil.WriteError(w, r, err, a.logger)
}

type loginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type loginResponse struct {
	User any `json:"user"`
}

// Login handles POST /auth/login: exchange credentials for a session and set
// the signed session cookie. A backend rejection passes through with the
// backend's own message and touches no state.
func (a *API) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := httputil.DecodeJSON(w, r, &req); err != nil {
		httputil.WriteError(w, r, err, a.logger)
		return
	}
	if err := validator.Validate(req); err != nil {
		httputil.WriteValidationError(w, err)
		return
	}

	sess, err := a.auth.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		httputil.WriteError(w, r, err, a.logger)
		return
	}

	if err := a.cookies.Issue(w, sess.ID); err != nil {
		// The session exists but the cookie could not be written; roll back so
		// no orphaned session lingers.
		_ = a.auth.Logout(r.Context(), sess.ID)
		httputil.WriteError(w, r, apperrors.Internal(err), a.logger)
		return
	}

	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: loginResponse{User: sess.User}})
}

// Logout handles POST /auth/logout. Always clears the cookie; logging out
// without a session is a success, not an error.
func (a *API) Logout(w http.ResponseWriter, r *http.Request) {
	if sessionID, err := a.cookies.SessionID(r); err == nil {
		if err := a.auth.Logout(r.Context(), sessionID); err != nil {
			a.logger.Warn("logout failed to delete session",
				slog.String("session_id", sessionID),
				slog.String("error", err.Error()),
			)
		}
	}
	a.cookies.Clear(w)
	w.WriteHeader(http.StatusNoContent)
}

// Me handles GET /me: session introspection for the console shell. The guard
// already admitted the request, so a missing session here means it was
// destroyed in between; that surfaces as 401.
func (a *API) Me(w http.ResponseWriter, r *http.Request) {
	sessionID, ok := session.IDFromContext(r.Context())
	if !ok {
		a.respondError(w, r, apperrors.Unauthorized("authentication required"))
		return
	}
	sess, ok := a.auth.Current(sessionID)
	if !ok {
		a.cookies.Clear(w)
		a.respondError(w, r, apperrors.Unauthorized("authentication required"))
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sess.User})
}
