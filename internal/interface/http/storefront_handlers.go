package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func (a *API) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	conf, err := a.settingsSvc.Get(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSettings(conf))
}

func (a *API) handleGetAvailability(w http.ResponseWriter, r *http.Request) {
	st, err := a.availSvc.Check(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"open":      st.Open,
		"reason":    st.Reason,
		"opens_at":  st.OpensAt,
		"closes_at": st.ClosesAt,
	})
}

func (a *API) handleListCategories(w http.ResponseWriter, r *http.Request) {
	categories, err := a.catalogSvc.ListCategories(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(categories))
	for _, c := range categories {
		out = append(out, mapCategory(c))
	}
	writeJSON(w, http.StatusOK, map[string]any{"categories": out})
}

func (a *API) handleListMenu(w http.ResponseWriter, r *http.Request) {
	items, err := a.catalogSvc.ListMenu(r.Context(), r.URL.Query().Get("category"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(items))
	for _, item := range items {
		out = append(out, mapMenuItem(item))
	}
	writeJSON(w, http.StatusOK, map[string]any{"items": out})
}

func (a *API) handleGetMenuItem(w http.ResponseWriter, r *http.Request) {
	item, err := a.catalogSvc.GetItem(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapMenuItem(item))
}

type beginSessionRequest struct {
	RoomNumber string `json:"room_number" validate:"required"`
}

// handleBeginSession captures the room number and opens an ordering session.
// Refused while the store is closed, so the room prompt never shows on a
// closed storefront.
func (a *API) handleBeginSession(w http.ResponseWriter, r *http.Request) {
	var req beginSessionRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	sess, err := a.sessionSvc.Begin(r.Context(), req.RoomNumber)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"session_id":  sess.ID,
		"room_number": sess.RoomNumber,
	})
}
