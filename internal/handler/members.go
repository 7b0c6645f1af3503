package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/session"
	apperrors "github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/errors"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/httputil"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/pagination"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/validator"
)

// decodeValid decodes a JSON body into in and validates it. On failure the
// response has already been written and false is returned.
func (a *API) decodeValid(w http.ResponseWriter, r *http.Request, in any) bool {
	if err := httputil.DecodeJSON(w, r, in); err != nil {
		httputil.WriteError(w, r, err, a.logger)
		return false
	}
	if err := validator.Validate(in); err != nil {
		httputil.WriteValidationError(w, err)
		return false
	}
	return true
}

func (a *API) ListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := a.backend.ListMembers(r.Context(), pagination.FromRequest(r))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: members})
}

func (a *API) GetMember(w http.ResponseWriter, r *http.Request) {
	member, err := a.backend.GetMember(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: member})
}

func (a *API) CreateMember(w http.ResponseWriter, r *http.Request) {
	var in domain.MemberInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	member, err := a.backend.CreateMember(r.Context(), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: member})
}

func (a *API) UpdateMember(w http.ResponseWriter, r *http.Request) {
	var in domain.MemberInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	member, err := a.backend.UpdateMember(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: member})
}

func (a *API) DeleteMember(w http.ResponseWriter, r *http.Request) {
	if err := a.backend.DeleteMember(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// ReplaceMemberSectors handles PUT /members/{id}/sectors: the member's sector
// links become exactly the posted set.
func (a *API) ReplaceMemberSectors(w http.ResponseWriter, r *http.Request) {
	var in domain.MemberAssignments
	if !a.decodeValid(w, r, &in) {
		return
	}
	member, err := a.backend.ReplaceMemberSectors(r.Context(), chi.URLParam(r, "id"), in.IDs)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: member})
}

// ReplaceMemberMinistries handles PUT /members/{id}/ministries.
func (a *API) ReplaceMemberMinistries(w http.ResponseWriter, r *http.Request) {
	var in domain.MemberAssignments
	if !a.decodeValid(w, r, &in) {
		return
	}
	member, err := a.backend.ReplaceMemberMinistries(r.Context(), chi.URLParam(r, "id"), in.IDs)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: member})
}

// currentUserID resolves the signed-in user behind the request's session.
func (a *API) currentUserID(r *http.Request) (string, error) {
	sessionID, ok := session.IDFromContext(r.Context())
	if !ok {
		return "", apperrors.Unauthorized("authentication required")
	}
	sess, ok := a.auth.Current(sessionID)
	if !ok {
		return "", apperrors.Unauthorized("authentication required")
	}
	return sess.User.ID, nil
}

// GetProfile handles GET /profile: a live read of the signed-in member's own
// record, unlike Me which serves the cached login snapshot.
func (a *API) GetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := a.currentUserID(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	profile, err := a.backend.GetProfile(r.Context(), userID)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: profile})
}

// UpdateProfile handles PUT /profile.
func (a *API) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := a.currentUserID(r)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	var in domain.MemberInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	profile, err := a.backend.UpdateProfile(r.Context(), userID, in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: profile})
}
