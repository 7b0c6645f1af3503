package handler

import (
	"net/http"

	"github.com/mauriciocosta404/ccs-dashboard-sub000/internal/domain"
	"github.com/mauriciocosta404/ccs-dashboard-sub000/pkg/httputil"
)

func (a *API) GetSettings(w http.ResponseWriter, r *http.Request) {
	settings, err := a.backend.GetSettings(r.Context())
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: settings})
}

func (a *API) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var in domain.SettingsInput
	if !a.decodeValid(w, r, &in) {
		return
	}
	settings, err := a.backend.UpdateSettings(r.Context(), in)
	if err != nil {
		a.respondError(w, r, err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, httputil.Response{Data: settings})
}
