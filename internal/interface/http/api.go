package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"

	domadmin "example.com/iskina-storefront/internal/domain/admin"
	domcart "example.com/iskina-storefront/internal/domain/cart"
	domcatalog "example.com/iskina-storefront/internal/domain/catalog"
	domcheckout "example.com/iskina-storefront/internal/domain/checkout"
	dompayment "example.com/iskina-storefront/internal/domain/payment"
	domsettings "example.com/iskina-storefront/internal/domain/settings"
	authuc "example.com/iskina-storefront/internal/usecase/auth"
	availabilityuc "example.com/iskina-storefront/internal/usecase/availability"
	cartuc "example.com/iskina-storefront/internal/usecase/cart"
	cataloguc "example.com/iskina-storefront/internal/usecase/catalog"
	checkoutuc "example.com/iskina-storefront/internal/usecase/checkout"
	paymentuc "example.com/iskina-storefront/internal/usecase/payment"
	sessionuc "example.com/iskina-storefront/internal/usecase/session"
	settingsuc "example.com/iskina-storefront/internal/usecase/settings"
)

type API struct {
	sessionSvc  *sessionuc.Service
	cartSvc     *cartuc.Service
	checkoutSvc *checkoutuc.Service
	catalogSvc  *cataloguc.Service
	settingsSvc *settingsuc.Service
	paymentSvc  *paymentuc.Service
	availSvc    *availabilityuc.Service
	authSvc     *authuc.Service
	tokenSvc    authuc.TokenService
	validator   *validator.Validate
}

type Dependencies struct {
	SessionService      *sessionuc.Service
	CartService         *cartuc.Service
	CheckoutService     *checkoutuc.Service
	CatalogService      *cataloguc.Service
	SettingsService     *settingsuc.Service
	PaymentService      *paymentuc.Service
	AvailabilityService *availabilityuc.Service
	AuthService         *authuc.Service
	TokenService        authuc.TokenService
}

func NewAPI(deps Dependencies) *API {
	return &API{
		sessionSvc:  deps.SessionService,
		cartSvc:     deps.CartService,
		checkoutSvc: deps.CheckoutService,
		catalogSvc:  deps.CatalogService,
		settingsSvc: deps.SettingsService,
		paymentSvc:  deps.PaymentService,
		availSvc:    deps.AvailabilityService,
		authSvc:     deps.AuthService,
		tokenSvc:    deps.TokenService,
		validator:   validator.New(),
	}
}

func (a *API) Router() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.AllowContentType("application/json", "text/plain"))

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/settings", a.handleGetSettings)
		r.Get("/availability", a.handleGetAvailability)
		r.Get("/categories", a.handleListCategories)
		r.Get("/menu", a.handleListMenu)
		r.Get("/menu/{id}", a.handleGetMenuItem)
		r.Post("/sessions", a.handleBeginSession)

		r.Post("/auth/login", a.handleLogin)

		r.Group(func(sr chi.Router) {
			sr.Use(a.sessionMiddleware)
			sr.Route("/me/cart", func(cr chi.Router) {
				cr.Get("/", a.handleGetCart)
				cr.Delete("/", a.handleClearCart)
				cr.Post("/items", a.handleAddCartItem)
				cr.Patch("/items/{key}", a.handleUpdateCartItem)
				cr.Delete("/items/{key}", a.handleRemoveCartItem)
			})
			sr.Route("/me/checkout", func(cr chi.Router) {
				cr.Post("/", a.handleBeginCheckout)
				cr.Get("/", a.handleGetCheckout)
				cr.Delete("/", a.handleCancelCheckout)
				cr.Put("/details", a.handleUpdateDetails)
				cr.Post("/proceed", a.handleProceedToPayment)
				cr.Post("/back", a.handleBackToDetails)
				cr.Get("/payment", a.handleGetPaymentOptions)
				cr.Post("/payment-method", a.handleSelectPaymentMethod)
				cr.Post("/place-order", a.handlePlaceOrder)
			})
		})

		r.Group(func(ar chi.Router) {
			ar.Use(a.authMiddleware)

			ar.Route("/admin", func(admin chi.Router) {
				admin.Get("/me", a.handleAdminMe)
				admin.Put("/settings", a.handleUpdateSettings)

				admin.Route("/payment-methods", func(rr chi.Router) {
					rr.Get("/", a.handleListPaymentMethods)
					rr.Post("/", a.handleCreatePaymentMethod)
					rr.Get("/{id}", a.handleGetPaymentMethod)
					rr.Put("/{id}", a.handleUpdatePaymentMethod)
					rr.Delete("/{id}", a.handleDeletePaymentMethod)
				})

				admin.Route("/menu-items", func(rr chi.Router) {
					rr.Post("/", a.handleCreateMenuItem)
					rr.Put("/{id}", a.handleUpdateMenuItem)
					rr.Delete("/{id}", a.handleDeleteMenuItem)
				})

				admin.Route("/categories", func(rr chi.Router) {
					rr.Post("/", a.handleCreateCategory)
					rr.Put("/{id}", a.handleUpdateCategory)
					rr.Delete("/{id}", a.handleDeleteCategory)
				})
			})
		})
	})

	return r
}

func (a *API) decodeAndValidate(r *http.Request, dst any) error {
	defer r.Body.Close()
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return err
	}
	return a.validator.Struct(dst)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

type errorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

func respondError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, errorResponse{Error: err.Error()})
}

func mapVariation(v *domcart.Variation) map[string]any {
	if v == nil {
		return nil
	}
	return map[string]any{
		"id":          v.ID,
		"name":        v.Name,
		"price_delta": v.PriceDelta,
	}
}

func mapCart(ledger *domcart.Ledger) map[string]any {
	lines := ledger.Lines()
	out := make([]map[string]any, 0, len(lines))
	for _, line := range lines {
		addOns := make([]map[string]any, 0, len(line.AddOns))
		for _, a := range line.AddOns {
			addOns = append(addOns, map[string]any{
				"id":          a.ID,
				"name":        a.Name,
				"price_delta": a.PriceDelta,
				"quantity":    a.Quantity,
			})
		}
		out = append(out, map[string]any{
			"key":        line.Key(),
			"item_id":    line.ItemID,
			"name":       line.Name,
			"base_price": line.BasePrice,
			"variation":  mapVariation(line.Variation),
			"add_ons":    addOns,
			"quantity":   line.Quantity,
			"unit_total": line.UnitTotal(),
			"line_total": line.Total(),
		})
	}
	return map[string]any{
		"lines":       out,
		"total_items": ledger.TotalItems(),
		"total_price": ledger.TotalPrice(),
	}
}

func mapCheckout(co *domcheckout.Checkout) map[string]any {
	return map[string]any{
		"step": co.Step,
		"draft": map[string]any{
			"customer_name":     co.Draft.CustomerName,
			"contact_number":    co.Draft.ContactNumber,
			"room_number":       co.Draft.RoomNumber,
			"service_type":      co.Draft.ServiceType,
			"time_choice":       co.Draft.TimeChoice,
			"custom_time":       co.Draft.CustomTime,
			"payment_method_id": co.Draft.PaymentMethodID,
			"notes":             co.Draft.Notes,
		},
	}
}

func mapMenuItem(item *domcatalog.MenuItem) map[string]any {
	variations := make([]map[string]any, 0, len(item.Variations))
	for _, v := range item.Variations {
		variations = append(variations, map[string]any{
			"id":          v.ID,
			"name":        v.Name,
			"price_delta": v.PriceDelta,
		})
	}
	addOns := make([]map[string]any, 0, len(item.AddOns))
	for _, a := range item.AddOns {
		addOns = append(addOns, map[string]any{
			"id":          a.ID,
			"name":        a.Name,
			"price_delta": a.PriceDelta,
		})
	}
	return map[string]any{
		"id":          item.ID,
		"name":        item.Name,
		"description": item.Description,
		"base_price":  item.BasePrice,
		"category_id": item.CategoryID,
		"image_url":   item.ImageURL,
		"available":   item.Available,
		"variations":  variations,
		"add_ons":     addOns,
	}
}

func mapCategory(c *domcatalog.Category) map[string]any {
	return map[string]any{
		"id":         c.ID,
		"name":       c.Name,
		"sort_order": c.SortOrder,
	}
}

func mapPaymentMethod(m *dompayment.Method) map[string]any {
	if m == nil {
		return nil
	}
	return map[string]any{
		"id":             m.ID,
		"name":           m.Name,
		"account_number": m.AccountNumber,
		"account_name":   m.AccountName,
		"qr_code_url":    m.QRCodeURL,
	}
}

func mapSettings(s *domsettings.SiteSettings) map[string]any {
	return map[string]any{
		"site_name":             s.SiteName,
		"site_logo":             s.SiteLogo,
		"opening_time":          s.OpeningTime,
		"closing_time":          s.ClosingTime,
		"is_temporarily_closed": s.IsTemporarilyClosed,
	}
}

func handleDomainError(w http.ResponseWriter, err error) {
	var verr *domcheckout.ValidationError
	if errors.As(err, &verr) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   verr.Error(),
			Details: map[string]any{"missing": verr.Missing},
		})
		return
	}
	var closed *availabilityuc.ClosedError
	if errors.As(err, &closed) {
		writeJSON(w, http.StatusUnprocessableEntity, errorResponse{
			Error:   closed.Error(),
			Details: map[string]any{"opens_at": closed.OpensAt, "closes_at": closed.ClosesAt},
		})
		return
	}

	switch {
	case errors.Is(err, domcatalog.ErrItemNotFound),
		errors.Is(err, domcatalog.ErrCategoryNotFound),
		errors.Is(err, dompayment.ErrMethodNotFound),
		errors.Is(err, domsettings.ErrSettingsNotFound),
		errors.Is(err, sessionuc.ErrSessionNotFound):
		respondError(w, http.StatusNotFound, err)
	case errors.Is(err, domcheckout.ErrNoActiveCheckout),
		errors.Is(err, domcheckout.ErrNotInDetails),
		errors.Is(err, domcheckout.ErrNotInPayment),
		errors.Is(err, domcheckout.ErrEmptyCart),
		errors.Is(err, availabilityuc.ErrTemporarilyClosed),
		errors.Is(err, availabilityuc.ErrClosed),
		errors.Is(err, domcatalog.ErrItemUnavailable),
		errors.Is(err, domcatalog.ErrVariationNotFound),
		errors.Is(err, domcatalog.ErrAddOnNotFound),
		errors.Is(err, domcatalog.ErrInvalidName),
		errors.Is(err, domcatalog.ErrInvalidPrice),
		errors.Is(err, dompayment.ErrInvalidMethod),
		errors.Is(err, domsettings.ErrInvalidClock),
		errors.Is(err, sessionuc.ErrRoomRequired),
		errors.Is(err, checkoutuc.ErrInvalidServiceType),
		errors.Is(err, checkoutuc.ErrInvalidTimeChoice):
		respondError(w, http.StatusUnprocessableEntity, err)
	case errors.Is(err, availabilityuc.ErrSettingsNotReady),
		errors.Is(err, checkoutuc.ErrPaymentMethodsNotReady):
		respondError(w, http.StatusServiceUnavailable, err)
	case errors.Is(err, domadmin.ErrUnauthorized),
		errors.Is(err, domadmin.ErrInvalidCredential),
		errors.Is(err, domadmin.ErrUserNotFound):
		respondError(w, http.StatusUnauthorized, err)
	default:
		respondError(w, http.StatusInternalServerError, err)
	}
}
