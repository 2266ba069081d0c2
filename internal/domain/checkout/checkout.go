package checkout

type Step string

const (
	StepDetails Step = "details"
	StepPayment Step = "payment"
)

type ServiceType string

const (
	ServiceRoom   ServiceType = "room-service"
	ServicePickup ServiceType = "pickup"
)

func (s ServiceType) IsValid() bool {
	switch s {
	case ServiceRoom, ServicePickup:
		return true
	default:
		return false
	}
}

// Label is the human-readable service type used in the order payload.
func (s ServiceType) Label() string {
	if s == ServiceRoom {
		return "Room Service"
	}
	return "Pickup"
}

// TimeChoice is either one of the fixed minute bands or "custom", in which
// case the customer supplies free text. The custom text is intentionally
// unstructured; it is never parsed.
type TimeChoice string

const (
	TimeBand5To10   TimeChoice = "5-10"
	TimeBand15To20  TimeChoice = "15-20"
	TimeBand25To30  TimeChoice = "25-30"
	TimeChoiceCustom TimeChoice = "custom"
)

func (t TimeChoice) IsValid() bool {
	switch t {
	case TimeBand5To10, TimeBand15To20, TimeBand25To30, TimeChoiceCustom:
		return true
	default:
		return false
	}
}

// Draft is the working state of one in-progress order. It lives for the
// duration of a checkout session and is never persisted.
type Draft struct {
	CustomerName    string
	ContactNumber   string
	RoomNumber      string
	ServiceType     ServiceType
	TimeChoice      TimeChoice
	CustomTime      string
	PaymentMethodID string
	Notes           string
}

// ServiceTimeLabel renders the chosen service time for the order payload:
// the fixed band with "minutes" appended, or the custom text verbatim.
func (d Draft) ServiceTimeLabel() string {
	if d.TimeChoice == TimeChoiceCustom {
		return d.CustomTime
	}
	return string(d.TimeChoice) + " minutes"
}

// Checkout is the two-step flow state for one session. MethodChosen records
// whether the customer explicitly picked a payment method, so a later
// refresh of the method list does not override their choice.
type Checkout struct {
	Step         Step
	Draft        Draft
	MethodChosen bool
}

// New starts a checkout at the details step, pre-seeded with the room number
// captured earlier in the session.
func New(roomNumber string) *Checkout {
	return &Checkout{
		Step: StepDetails,
		Draft: Draft{
			RoomNumber:  roomNumber,
			ServiceType: ServiceRoom,
			TimeChoice:  TimeBand5To10,
		},
	}
}
