package domain

// Step is the position of a search session in the interaction flow.
type Step string

// Interaction steps, in the order a session normally walks them.
const (
	StepIdle                  Step = "idle"
	StepCitySelected          Step = "city_selected"
	StepModeSelected          Step = "mode_selected"
	StepStoreSelected         Step = "store_selected"
	StepAddressEntered        Step = "address_entered"
	StepPickupDateSelected    Step = "pickup_date_selected"
	StepPickupTimeSelected    Step = "pickup_time_selected"
	StepDropoffDateOverridden Step = "dropoff_date_overridden"
	StepDropoffTimeOverridden Step = "dropoff_time_overridden"
	StepReady                 Step = "ready"
)

// Selector names the dropdown or picker that is currently open.
type Selector string

// Selectors. At most one is active at a time.
const (
	SelectorNone        Selector = ""
	SelectorCity        Selector = "city"
	SelectorPickupMode  Selector = "pickupMode"
	SelectorStore       Selector = "store"
	SelectorPickupDate  Selector = "pickupDate"
	SelectorPickupTime  Selector = "pickupTime"
	SelectorDropoffDate Selector = "dropoffDate"
	SelectorDropoffTime Selector = "dropoffTime"
)

// IsValid checks if the selector is a known value (SelectorNone included).
func (s Selector) IsValid() bool {
	switch s {
	case SelectorNone, SelectorCity, SelectorPickupMode, SelectorStore,
		SelectorPickupDate, SelectorPickupTime, SelectorDropoffDate, SelectorDropoffTime:
		return true
	default:
		return false
	}
}

// EventType enumerates the user interactions the flow reacts to.
type EventType string

// Event types.
const (
	EventSelectCity        EventType = "select_city"
	EventSelectPickupMode  EventType = "select_pickup_mode"
	EventSelectStore       EventType = "select_store"
	EventEnterAddress      EventType = "enter_address"
	EventSelectPickupDate  EventType = "select_pickup_date"
	EventSelectPickupTime  EventType = "select_pickup_time"
	EventSelectDropoffDate EventType = "select_dropoff_date"
	EventSelectDropoffTime EventType = "select_dropoff_time"
	EventOpenSelector      EventType = "open_selector"
	EventCloseSelector     EventType = "close_selector"
	EventNextMonth         EventType = "next_month"
	EventPrevMonth         EventType = "prev_month"
	EventSetMonth          EventType = "set_month"
	EventSetYear           EventType = "set_year"
	EventReset             EventType = "reset"
)

// Event is one user interaction. Value carries the selected string; Number
// carries the month or year for calendar navigation.
type Event struct {
	Type   EventType `json:"type"`
	Value  string    `json:"value,omitempty"`
	Number int       `json:"number,omitempty"`
}

// FlowState is everything a search session holds between interactions.
type FlowState struct {
	// Criteria is the search being built
	Criteria SearchCriteria `json:"criteria"`

	// Step is the latest interaction step reached
	Step Step `json:"step"`

	// Active is the single open selector, if any
	Active Selector `json:"active"`

	// Calendar is the month the date picker is showing
	Calendar CalendarView `json:"calendar"`

	// DropoffOverridden is set once the user picks dropoff explicitly
	DropoffOverridden bool `json:"dropoffOverridden"`
}

// NewFlowState returns the Idle state with the calendar on the given view.
func NewFlowState(view CalendarView) FlowState {
	return FlowState{Step: StepIdle, Calendar: view}
}
