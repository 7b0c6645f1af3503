package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/httputil"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/pagination"
)

// --- Sectors ---

func (a *API) ListSectors(w http.ResponseWriter, r *http.Request) {
	sectors, err := a.backend.ListSectors(r.Context(), pagination.FromRequest(r))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sectors})
}

func (a *API) GetSector(w http.ResponseWriter, r *http.Request) {
	sector, err := a.backend.GetSector(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sector})
}

func (a *API) CreateSector(w http.ResponseWriter, r *http.Request) {
	var in domain.SectorInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	sector, err := a.backend.CreateSector(r.Context(), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: sector})
}

func (a *API) UpdateSector(w http.ResponseWriter, r *http.Request) {
	var in domain.SectorInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	sector, err := a.backend.UpdateSector(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sector})
}

func (a *API) DeleteSector(w http.ResponseWriter, r *http.Request) {
	if err := a.backend.DeleteSector(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Ministries ---

func (a *API) ListMinistries(w http.ResponseWriter, r *http.Request) {
	ministries, err := a.backend.ListMinistries(r.Context(), pagination.FromRequest(r))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: ministries})
}

func (a *API) GetMinistry(w http.ResponseWriter, r *http.Request) {
	ministry, err := a.backend.GetMinistry(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: ministry})
}

func (a *API) CreateMinistry(w http.ResponseWriter, r *http.Request) {
	var in domain.MinistryInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	ministry, err := a.backend.CreateMinistry(r.Context(), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: ministry})
}

func (a *API) UpdateMinistry(w http.ResponseWriter, r *http.Request) {
	var in domain.MinistryInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	ministry, err := a.backend.UpdateMinistry(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: ministry})
}

func (a *API) DeleteMinistry(w http.ResponseWriter, r *http.Request) {
	if err := a.backend.DeleteMinistry(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
