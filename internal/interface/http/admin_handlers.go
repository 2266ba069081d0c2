package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	domcatalog "example.com/iskina-storefront/internal/domain/catalog"
	dompayment "example.com/iskina-storefront/internal/domain/payment"
	domsettings "example.com/iskina-storefront/internal/domain/settings"
)

type updateSettingsRequest struct {
	SiteName            string `json:"site_name"`
	SiteLogo            string `json:"site_logo"`
	OpeningTime         string `json:"opening_time" validate:"required"`
	ClosingTime         string `json:"closing_time" validate:"required"`
	IsTemporarilyClosed bool   `json:"is_temporarily_closed"`
}

func (a *API) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req updateSettingsRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	conf, err := a.settingsSvc.Update(r.Context(), &domsettings.SiteSettings{
		SiteName:            req.SiteName,
		SiteLogo:            req.SiteLogo,
		OpeningTime:         req.OpeningTime,
		ClosingTime:         req.ClosingTime,
		IsTemporarilyClosed: req.IsTemporarilyClosed,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapSettings(conf))
}

type paymentMethodRequest struct {
	Name          string `json:"name" validate:"required"`
	AccountNumber string `json:"account_number"`
	AccountName   string `json:"account_name"`
	QRCodeURL     string `json:"qr_code_url"`
}

func (a *API) handleListPaymentMethods(w http.ResponseWriter, r *http.Request) {
	methods, err := a.paymentSvc.List(r.Context())
	if err != nil {
		handleDomainError(w, err)
		return
	}
	out := make([]map[string]any, 0, len(methods))
	for _, m := range methods {
		out = append(out, mapPaymentMethod(m))
	}
	writeJSON(w, http.StatusOK, map[string]any{"methods": out})
}

func (a *API) handleGetPaymentMethod(w http.ResponseWriter, r *http.Request) {
	m, err := a.paymentSvc.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapPaymentMethod(m))
}

func (a *API) handleCreatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req paymentMethodRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	m, err := a.paymentSvc.Create(r.Context(), &dompayment.Method{
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		QRCodeURL:     req.QRCodeURL,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapPaymentMethod(m))
}

func (a *API) handleUpdatePaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req paymentMethodRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	m, err := a.paymentSvc.Update(r.Context(), &dompayment.Method{
		ID:            chi.URLParam(r, "id"),
		Name:          req.Name,
		AccountNumber: req.AccountNumber,
		AccountName:   req.AccountName,
		QRCodeURL:     req.QRCodeURL,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapPaymentMethod(m))
}

func (a *API) handleDeletePaymentMethod(w http.ResponseWriter, r *http.Request) {
	if err := a.paymentSvc.Delete(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type menuItemVariationRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"required"`
	PriceDelta int64  `json:"price_delta"`
}

type menuItemAddOnRequest struct {
	ID         string `json:"id"`
	Name       string `json:"name" validate:"required"`
	PriceDelta int64  `json:"price_delta"`
}

type menuItemRequest struct {
	Name        string                     `json:"name" validate:"required"`
	Description string                     `json:"description"`
	BasePrice   int64                      `json:"base_price"`
	CategoryID  string                     `json:"category_id"`
	ImageURL    string                     `json:"image_url"`
	Available   bool                       `json:"available"`
	Variations  []menuItemVariationRequest `json:"variations" validate:"dive"`
	AddOns      []menuItemAddOnRequest     `json:"add_ons" validate:"dive"`
}

func (r *menuItemRequest) toDomain(id string) *domcatalog.MenuItem {
	item := &domcatalog.MenuItem{
		ID:          id,
		Name:        r.Name,
		Description: r.Description,
		BasePrice:   r.BasePrice,
		CategoryID:  r.CategoryID,
		ImageURL:    r.ImageURL,
		Available:   r.Available,
	}
	for _, v := range r.Variations {
		item.Variations = append(item.Variations, domcatalog.Variation{
			ID:         v.ID,
			Name:       v.Name,
			PriceDelta: v.PriceDelta,
		})
	}
	for _, a := range r.AddOns {
		item.AddOns = append(item.AddOns, domcatalog.AddOn{
			ID:         a.ID,
			Name:       a.Name,
			PriceDelta: a.PriceDelta,
		})
	}
	return item
}

func (a *API) handleCreateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	item, err := a.catalogSvc.CreateItem(r.Context(), req.toDomain(""))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapMenuItem(item))
}

func (a *API) handleUpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	var req menuItemRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	item, err := a.catalogSvc.UpdateItem(r.Context(), req.toDomain(chi.URLParam(r, "id")))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapMenuItem(item))
}

func (a *API) handleDeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	if err := a.catalogSvc.DeleteItem(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type categoryRequest struct {
	Name      string `json:"name" validate:"required"`
	SortOrder int    `json:"sort_order"`
}

func (a *API) handleCreateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	c, err := a.catalogSvc.CreateCategory(r.Context(), &domcatalog.Category{
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, mapCategory(c))
}

func (a *API) handleUpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req categoryRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	c, err := a.catalogSvc.UpdateCategory(r.Context(), &domcatalog.Category{
		ID:        chi.URLParam(r, "id"),
		Name:      req.Name,
		SortOrder: req.SortOrder,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCategory(c))
}

func (a *API) handleDeleteCategory(w http.ResponseWriter, r *http.Request) {
	if err := a.catalogSvc.DeleteCategory(r.Context(), chi.URLParam(r, "id")); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
