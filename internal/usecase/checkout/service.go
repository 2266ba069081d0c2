package checkout

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	domcheckout "example.com/iskina-storefront/internal/domain/checkout"
	dompayment "example.com/iskina-storefront/internal/domain/payment"
	domsettings "example.com/iskina-storefront/internal/domain/settings"
	"example.com/iskina-storefront/internal/message"
	ucavailability "example.com/iskina-storefront/internal/usecase/availability"
	ucsession "example.com/iskina-storefront/internal/usecase/session"
)

var (
	ErrPaymentMethodsNotReady = errors.New("payment methods not loaded")
	ErrInvalidServiceType     = errors.New("invalid service type")
	ErrInvalidTimeChoice      = errors.New("invalid service time choice")
)

type SessionStore interface {
	Get(id string) (*ucsession.Session, error)
}

type Availability interface {
	Check(ctx context.Context) (ucavailability.Status, error)
}

type MethodLister interface {
	List(ctx context.Context) ([]*dompayment.Method, error)
}

type SettingsReader interface {
	Get(ctx context.Context) (*domsettings.SiteSettings, error)
}

// Service drives the two-step checkout flow: details, then payment. The
// transition from details to payment is gated on required fields and on store
// availability; going back is always allowed and loses nothing.
type Service struct {
	sessions    SessionStore
	avail       Availability
	methods     MethodLister
	settings    SettingsReader
	storeHandle string
	validate    *validator.Validate
}

func NewService(
	sessions SessionStore,
	avail Availability,
	methods MethodLister,
	settings SettingsReader,
	storeHandle string,
) *Service {
	return &Service{
		sessions:    sessions,
		avail:       avail,
		methods:     methods,
		settings:    settings,
		storeHandle: storeHandle,
		validate:    validator.New(),
	}
}

// Begin opens a checkout for the session, seeded with its room number.
// Re-entering checkout with one already in progress returns the existing
// draft untouched.
func (s *Service) Begin(ctx context.Context, sessionID string) (*domcheckout.Checkout, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Checkout == nil {
		sess.Checkout = domcheckout.New(sess.RoomNumber)
	}
	return sess.Checkout, nil
}

func (s *Service) Get(ctx context.Context, sessionID string) (*domcheckout.Checkout, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Checkout == nil {
		return nil, domcheckout.ErrNoActiveCheckout
	}
	return sess.Checkout, nil
}

type DetailsInput struct {
	CustomerName  string
	ContactNumber string
	RoomNumber    string
	ServiceType   string
	TimeChoice    string
	CustomTime    string
	Notes         string
}

// UpdateDetails writes customer input into the draft. Only allowed at the
// details step; the payment screen shows details read-only.
func (s *Service) UpdateDetails(ctx context.Context, sessionID string, in DetailsInput) (*domcheckout.Checkout, error) {
	co, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if co.Step != domcheckout.StepDetails {
		return nil, domcheckout.ErrNotInDetails
	}

	serviceType := domcheckout.ServiceType(in.ServiceType)
	if !serviceType.IsValid() {
		return nil, ErrInvalidServiceType
	}
	timeChoice := domcheckout.TimeChoice(in.TimeChoice)
	if !timeChoice.IsValid() {
		return nil, ErrInvalidTimeChoice
	}

	co.Draft.CustomerName = in.CustomerName
	co.Draft.ContactNumber = in.ContactNumber
	co.Draft.RoomNumber = in.RoomNumber
	co.Draft.ServiceType = serviceType
	co.Draft.TimeChoice = timeChoice
	co.Draft.CustomTime = in.CustomTime
	co.Draft.Notes = in.Notes
	return co, nil
}

// detailsGate is the required-field contract for the details to payment
// transition. CustomTime is only required when the customer chose a custom
// service time.
type detailsGate struct {
	CustomerName  string `validate:"required"`
	ContactNumber string `validate:"required"`
	RoomNumber    string `validate:"required"`
	TimeChoice    string
	CustomTime    string `validate:"required_if=TimeChoice custom"`
}

var gateFieldNames = map[string]string{
	"CustomerName":  "customer_name",
	"ContactNumber": "contact_number",
	"RoomNumber":    "room_number",
	"CustomTime":    "custom_time",
}

func (s *Service) validateDraft(d domcheckout.Draft) error {
	gate := detailsGate{
		CustomerName:  d.CustomerName,
		ContactNumber: d.ContactNumber,
		RoomNumber:    d.RoomNumber,
		TimeChoice:    string(d.TimeChoice),
		CustomTime:    d.CustomTime,
	}
	err := s.validate.Struct(gate)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}
	missing := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		if name, ok := gateFieldNames[fe.StructField()]; ok {
			missing = append(missing, name)
		}
	}
	return &domcheckout.ValidationError{Missing: missing}
}

// ProceedToPayment attempts the details-to-payment transition. On any refusal
// the checkout state is left unchanged: first the required-field gate, then
// the availability gate with the current wall-clock time.
func (s *Service) ProceedToPayment(ctx context.Context, sessionID string) (*domcheckout.Checkout, error) {
	co, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if co.Step != domcheckout.StepDetails {
		return nil, domcheckout.ErrNotInDetails
	}

	if err := s.validateDraft(co.Draft); err != nil {
		return nil, err
	}

	st, err := s.avail.Check(ctx)
	if err != nil {
		return nil, err
	}
	if err := st.Err(); err != nil {
		return nil, err
	}

	methods, err := s.methods.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentMethodsNotReady, err)
	}

	co.Step = domcheckout.StepPayment
	s.ensureDefaultMethod(co, methods)
	return co, nil
}

// ensureDefaultMethod applies the default-selection policy: the first
// provider-ordered method is picked for the customer exactly as long as they
// have not made an explicit choice. A later refresh of the list never
// overrides an explicit choice.
func (s *Service) ensureDefaultMethod(co *domcheckout.Checkout, methods []*dompayment.Method) {
	if co.MethodChosen || co.Draft.PaymentMethodID != "" {
		return
	}
	if len(methods) > 0 {
		co.Draft.PaymentMethodID = methods[0].ID
	}
}

// Back returns from payment to details. Always allowed; the draft keeps
// every previously entered field.
func (s *Service) Back(ctx context.Context, sessionID string) (*domcheckout.Checkout, error) {
	co, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	co.Step = domcheckout.StepDetails
	return co, nil
}

// SelectPaymentMethod records an explicit choice. Unknown ids are accepted;
// resolution degrades later rather than blocking the customer.
func (s *Service) SelectPaymentMethod(ctx context.Context, sessionID, methodID string) (*domcheckout.Checkout, error) {
	co, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if co.Step != domcheckout.StepPayment {
		return nil, domcheckout.ErrNotInPayment
	}
	co.Draft.PaymentMethodID = methodID
	co.MethodChosen = true
	return co, nil
}

// PaymentView is what the payment screen renders: the loaded methods, the
// currently selected one (nil when resolution failed, in which case no
// account or QR details are shown), and the amount due.
type PaymentView struct {
	Methods  []*dompayment.Method
	Selected *dompayment.Method
	Amount   int64
}

func (s *Service) PaymentOptions(ctx context.Context, sessionID string) (*PaymentView, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Checkout == nil {
		return nil, domcheckout.ErrNoActiveCheckout
	}
	if sess.Checkout.Step != domcheckout.StepPayment {
		return nil, domcheckout.ErrNotInPayment
	}

	methods, err := s.methods.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrPaymentMethodsNotReady, err)
	}
	s.ensureDefaultMethod(sess.Checkout, methods)

	view := &PaymentView{Methods: methods, Amount: sess.Cart.TotalPrice()}
	for _, m := range methods {
		if m.ID == sess.Checkout.Draft.PaymentMethodID {
			view.Selected = m
			break
		}
	}
	return view, nil
}

// PlacedOrder is the finished payload plus the deep link the client opens.
// Handing it over is fire-and-forget; the orchestrator has no "sent" state.
type PlacedOrder struct {
	Payload      string
	MessengerURL string
}

// PlaceOrder builds the order payload from the cart snapshot and the draft.
// Only available at the payment step and with a non-empty cart.
func (s *Service) PlaceOrder(ctx context.Context, sessionID string) (*PlacedOrder, error) {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return nil, err
	}
	if sess.Checkout == nil {
		return nil, domcheckout.ErrNoActiveCheckout
	}
	co := sess.Checkout
	if co.Step != domcheckout.StepPayment {
		return nil, domcheckout.ErrNotInPayment
	}

	lines := sess.Cart.Lines()
	if len(lines) == 0 {
		return nil, domcheckout.ErrEmptyCart
	}

	conf, err := s.settings.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ucavailability.ErrSettingsNotReady, err)
	}

	paymentLabel := co.Draft.PaymentMethodID
	if methods, err := s.methods.List(ctx); err == nil {
		for _, m := range methods {
			if m.ID == co.Draft.PaymentMethodID {
				paymentLabel = m.Name
				break
			}
		}
	}

	payload := message.Format(message.Order{
		SiteName:      conf.SiteName,
		CustomerName:  co.Draft.CustomerName,
		ContactNumber: co.Draft.ContactNumber,
		RoomNumber:    co.Draft.RoomNumber,
		ServiceType:   co.Draft.ServiceType.Label(),
		ServiceTime:   co.Draft.ServiceTimeLabel(),
		Lines:         lines,
		Total:         sess.Cart.TotalPrice(),
		PaymentLabel:  paymentLabel,
		Notes:         co.Draft.Notes,
	})
	return &PlacedOrder{
		Payload:      payload,
		MessengerURL: message.MessengerLink(s.storeHandle, payload),
	}, nil
}

// Cancel discards the in-progress draft, e.g. when the customer navigates
// back to the menu or cart. No side effect has happened before PlaceOrder.
func (s *Service) Cancel(ctx context.Context, sessionID string) error {
	sess, err := s.sessions.Get(sessionID)
	if err != nil {
		return err
	}
	sess.Checkout = nil
	return nil
}
