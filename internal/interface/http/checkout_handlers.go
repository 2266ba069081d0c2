package http

import (
	"net/http"

	checkoutuc "example.com/iskina-storefront/internal/usecase/checkout"
)

func (a *API) handleBeginCheckout(w http.ResponseWriter, r *http.Request) {
	co, err := a.checkoutSvc.Begin(r.Context(), getSessionID(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCheckout(co))
}

func (a *API) handleGetCheckout(w http.ResponseWriter, r *http.Request) {
	co, err := a.checkoutSvc.Get(r.Context(), getSessionID(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCheckout(co))
}

type updateDetailsRequest struct {
	CustomerName  string `json:"customer_name"`
	ContactNumber string `json:"contact_number"`
	RoomNumber    string `json:"room_number"`
	ServiceType   string `json:"service_type" validate:"required"`
	TimeChoice    string `json:"time_choice" validate:"required"`
	CustomTime    string `json:"custom_time"`
	Notes         string `json:"notes"`
}

// handleUpdateDetails writes draft fields as the customer types. Required
// fields are only enforced at the transition to payment, so partial
// drafts are accepted here.
func (a *API) handleUpdateDetails(w http.ResponseWriter, r *http.Request) {
	var req updateDetailsRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	co, err := a.checkoutSvc.UpdateDetails(r.Context(), getSessionID(r.Context()), checkoutuc.DetailsInput{
		CustomerName:  req.CustomerName,
		ContactNumber: req.ContactNumber,
		RoomNumber:    req.RoomNumber,
		ServiceType:   req.ServiceType,
		TimeChoice:    req.TimeChoice,
		CustomTime:    req.CustomTime,
		Notes:         req.Notes,
	})
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCheckout(co))
}

func (a *API) handleProceedToPayment(w http.ResponseWriter, r *http.Request) {
	co, err := a.checkoutSvc.ProceedToPayment(r.Context(), getSessionID(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCheckout(co))
}

func (a *API) handleBackToDetails(w http.ResponseWriter, r *http.Request) {
	co, err := a.checkoutSvc.Back(r.Context(), getSessionID(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCheckout(co))
}

func (a *API) handleGetPaymentOptions(w http.ResponseWriter, r *http.Request) {
	view, err := a.checkoutSvc.PaymentOptions(r.Context(), getSessionID(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	methods := make([]map[string]any, 0, len(view.Methods))
	for _, m := range view.Methods {
		methods = append(methods, mapPaymentMethod(m))
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"methods":  methods,
		"selected": mapPaymentMethod(view.Selected),
		"amount":   view.Amount,
	})
}

type selectPaymentMethodRequest struct {
	MethodID string `json:"method_id" validate:"required"`
}

func (a *API) handleSelectPaymentMethod(w http.ResponseWriter, r *http.Request) {
	var req selectPaymentMethodRequest
	if err := a.decodeAndValidate(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err)
		return
	}

	co, err := a.checkoutSvc.SelectPaymentMethod(r.Context(), getSessionID(r.Context()), req.MethodID)
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, mapCheckout(co))
}

func (a *API) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	placed, err := a.checkoutSvc.PlaceOrder(r.Context(), getSessionID(r.Context()))
	if err != nil {
		handleDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"payload":       placed.Payload,
		"messenger_url": placed.MessengerURL,
	})
}

func (a *API) handleCancelCheckout(w http.ResponseWriter, r *http.Request) {
	if err := a.checkoutSvc.Cancel(r.Context(), getSessionID(r.Context())); err != nil {
		handleDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
