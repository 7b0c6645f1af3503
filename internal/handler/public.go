package handler

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/httputil"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/pagination"
)

// Public-site handlers. These run outside the guard: requests carry no
// session, so the backend calls go out unauthenticated and a backend 401
// cannot destroy anyone's session.

func (a *API) PublicEvents(w http.ResponseWriter, r *http.Request) {
	events, err := a.backend.ListEvents(r.Context(), pagination.FromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, a.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: events})
}

func (a *API) PublicSermons(w http.ResponseWriter, r *http.Request) {
	sermons, err := a.backend.ListSermons(r.Context(), pagination.FromRequest(r))
	if err != nil {
		httputil.WriteError(w, r, err, a.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sermons})
}

// PublicSchedule serves the weekly service days for the site's schedule
// section.
func (a *API) PublicSchedule(w http.ResponseWriter, r *http.Request) {
	days, err := a.backend.ListServiceDays(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, a.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: days})
}

func (a *API) PublicSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := a.backend.GetSettings(r.Context())
	if err != nil {
		httputil.WriteError(w, r, err, a.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: settings})
}

// BibleChapter handles GET /bible/{version}/{book}/{chapter}, proxying the
// public scripture API for the site's reader page.
func (a *API) BibleChapter(w http.ResponseWriter, r *http.Request) {
	chapter, err := strconv.Atoi(chi.URLParam(r, "chapter"))
	if err != nil || chapter < 1 {
		httputil.WriteError(w, r, apperrors.InvalidInput("chapter must be a positive number"), a.logger)
		return
	}

	result, err := a.bible.Chapter(r.Context(), chi.URLParam(r, "version"), chi.URLParam(r, "book"), chapter)
	if err != nil {
		httputil.WriteError(w, r, err, a.logger)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: result})
}
