package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/httputil"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/pagination"
)

// --- Events ---

func (a *API) ListEvents(w http.ResponseWriter, r *http.Request) {
	events, err := a.backend.ListEvents(r.Context(), pagination.FromRequest(r))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: events})
}

func (a *API) GetEvent(w http.ResponseWriter, r *http.Request) {
	event, err := a.backend.GetEvent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: event})
}

func (a *API) CreateEvent(w http.ResponseWriter, r *http.Request) {
	var in domain.EventInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	event, err := a.backend.CreateEvent(r.Context(), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: event})
}

func (a *API) UpdateEvent(w http.ResponseWriter, r *http.Request) {
	var in domain.EventInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	event, err := a.backend.UpdateEvent(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: event})
}

func (a *API) DeleteEvent(w http.ResponseWriter, r *http.Request) {
	if err := a.backend.DeleteEvent(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Service days ---

func (a *API) ListServiceDays(w http.ResponseWriter, r *http.Request) {
	days, err := a.backend.ListServiceDays(r.Context())
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: days})
}

func (a *API) CreateServiceDay(w http.ResponseWriter, r *http.Request) {
	var in domain.ServiceDayInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	day, err := a.backend.CreateServiceDay(r.Context(), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: day})
}

func (a *API) UpdateServiceDay(w http.ResponseWriter, r *http.Request) {
	var in domain.ServiceDayInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	day, err := a.backend.UpdateServiceDay(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: day})
}

func (a *API) DeleteServiceDay(w http.ResponseWriter, r *http.Request) {
	if err := a.backend.DeleteServiceDay(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Sermons ---

func (a *API) ListSermons(w http.ResponseWriter, r *http.Request) {
	sermons, err := a.backend.ListSermons(r.Context(), pagination.FromRequest(r))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sermons})
}

func (a *API) GetSermon(w http.ResponseWriter, r *http.Request) {
	sermon, err := a.backend.GetSermon(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sermon})
}

func (a *API) CreateSermon(w http.ResponseWriter, r *http.Request) {
	var in domain.SermonInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	sermon, err := a.backend.CreateSermon(r.Context(), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: sermon})
}

func (a *API) UpdateSermon(w http.ResponseWriter, r *http.Request) {
	var in domain.SermonInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	sermon, err := a.backend.UpdateSermon(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: sermon})
}

func (a *API) DeleteSermon(w http.ResponseWriter, r *http.Request) {
	if err := a.backend.DeleteSermon(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
