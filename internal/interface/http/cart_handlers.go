package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	cartuc "example.com/iskina-storefront/internal/usecase/cart"
)

type addCartItemRequest struct {
	ItemID      string `json:"item_id" validate:"required"`
	VariationID string `json:"variation_id"`
	AddOns      []struct {
		ID       string `json:"id" validate:"required"`
		Quantity int64  `json:"quantity"`
	} `json:"add_ons" validate:"dive"`
	Quantity int64 `json:"quantity"`
}

func (a *API) handleAddCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	in := cartuc.AddInput{
		ItemID:      req.ItemID,
		VariationID: req.VariationID,
		Quantity:    req.Quantity,
	}
	for _, ao := range req.AddOns {
		in.AddOns = append(in.AddOns, cartuc.AddOnInput{ID: ao.ID, Quantity: ao.Quantity})
	}

	ledger, err := a.cartSvc.Add(r.Context(), getSessionID(r.Context()), in)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(ledger))
}

func (a *API) handleGetCart(w http.ResponseWriter, r *http.Request) {
	ledger, err := a.cartSvc.Get(r.Context(), getSessionID(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(ledger))
}

type updateCartItemRequest struct {
	Quantity int64 `json:"quantity"`
}

func (a *API) handleUpdateCartItem(w http.ResponseWriter, r *http.Request) {
	var req updateCartItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	ledger, err := a.cartSvc.UpdateQuantity(r.Context(), getSessionID(r.Context()), chi.URLParam(r, "key"), req.Quantity)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(ledger))
}

func (a *API) handleRemoveCartItem(w http.ResponseWriter, r *http.Request) {
	ledger, err := a.cartSvc.Remove(r.Context(), getSessionID(r.Context()), chi.URLParam(r, "key"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCart(ledger))
}

func (a *API) handleClearCart(w http.ResponseWriter, r *http.Request) {
	if err := a.cartSvc.Clear(r.Context(), getSessionID(r.Context())); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
