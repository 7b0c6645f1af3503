package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/httputil"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/pagination"
)

// --- Patrimonies ---

func (a *API) ListPatrimonies(w http.ResponseWriter, r *http.Request) {
	assets, err := a.backend.ListPatrimonies(r.Context(), pagination.FromRequest(r))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: assets})
}

func (a *API) GetPatrimony(w http.ResponseWriter, r *http.Request) {
	asset, err := a.backend.GetPatrimony(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: asset})
}

func (a *API) CreatePatrimony(w http.ResponseWriter, r *http.Request) {
	var in domain.PatrimonyInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	asset, err := a.backend.CreatePatrimony(r.Context(), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: asset})
}

func (a *API) UpdatePatrimony(w http.ResponseWriter, r *http.Request) {
	var in domain.PatrimonyInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	asset, err := a.backend.UpdatePatrimony(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: asset})
}

func (a *API) DeletePatrimony(w http.ResponseWriter, r *http.Request) {
	if err := a.backend.DeletePatrimony(r.Context(), chi.URLParam(r, "id")); err != nil {
		a.respondError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Movements (append-only) ---

func (a *API) ListMovements(w http.ResponseWriter, r *http.Request) {
	movements, err := a.backend.ListMovements(r.Context(), pagination.FromRequest(r))
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: movements})
}

func (a *API) CreateMovement(w http.ResponseWriter, r *http.Request) {
	var in domain.MovementInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	movement, err := a.backend.CreateMovement(r.Context(), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusCreated, httputil.Response{Data: movement})
}

// InventorySummary handles GET /inventory.
func (a *API) InventorySummary(w http.ResponseWriter, r *http.Request) {
	summary, err := a.backend.InventorySummary(r.Context())
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: summary})
}
