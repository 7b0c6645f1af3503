package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/httputil"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/pagination"
)

func (a *API) ListEBDStudents(w http.ResponseWriter, r *http.Request) {
	students, err := a.backend.ListEBDStudents(r.Context(), pagination.FromRequest(r))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: students})
}

func (a *API) GetEBDStudent(w http.ResponseWriter, r *http.Request) {
	student, err := a.backend.GetEBDStudent(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: student})
}

func (a *API) CreateEBDStudent(w http.ResponseWriter, r *http.Request) {
	var in domain.EBDStudentInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	student, err := a.backend.CreateEBDStudent(r.Context(), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: student})
}

func (a *API) UpdateEBDStudent(w http.ResponseWriter, r *http.Request) {
	var in domain.EBDStudentInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	student, err := a.backend.UpdateEBDStudent(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: student})
}

func (a *API) DeleteEBDStudent(w http.ResponseWriter, r *http.Request) {
	if err := a.backend.DeleteEBDStudent(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
