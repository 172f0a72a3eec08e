package usecase

import (
	"strings"

	"github.com/vehicle-marketplace/rental-search/internal/availability"
	"github.com/vehicle-marketplace/rental-search/internal/domain"
)

// Flow is the transition function of the search interaction flow.
// It holds no session state: every call takes a state and returns the next one.
type Flow struct {
	calc *availability.Calculator
}

// NewFlow creates a Flow that validates dates and times with calc.
func NewFlow(calc *availability.Calculator) *Flow {
	return &Flow{calc: calc}
}

// Dispatch applies ev to state. When the event is rejected the original state
// is returned unchanged together with false.
//
// The incoming state is sanitized first, so a rejected event returns the
// sanitized state.
func (f *Flow) Dispatch(state domain.FlowState, ev domain.Event) (domain.FlowState, bool) {
	ref := f.calc.ReferenceTime()
	state = f.sanitize(state, ref)
	ev.Value = strings.TrimSpace(ev.Value)

	next, step, ok := f.apply(state, ev, ref)
	if !ok {
		return state, false
	}

	if step != "" {
		next.Step = step
	}
	if next.Criteria.Ready() {
		next.Step = domain.StepReady
	} else if next.Step == domain.StepReady {
		next.Step = regress(next.Criteria)
	}
	return next, true
}

// apply returns the next state and the step the event moves to. An empty
// step leaves the current one in place.
func (f *Flow) apply(s domain.FlowState, ev domain.Event, ref domain.Reference) (domain.FlowState, domain.Step, bool) {
	c := &s.Criteria

	switch ev.Type {
	case domain.EventSelectCity:
		if ev.Value == "" {
			return s, "", false
		}
		if c.City != ev.Value {
			c.Store = ""
		}
		c.City = ev.Value
		s.Active = domain.SelectorNone
		return s, domain.StepCitySelected, true

	case domain.EventSelectPickupMode:
		mode := domain.PickupMode(ev.Value)
		if !mode.IsValid() {
			return s, "", false
		}
		switch mode {
		case domain.PickupModeStore:
			c.DeliveryAddress = ""
		case domain.PickupModeDelivery:
			c.Store = ""
		}
		c.PickupMode = mode
		s.Active = domain.SelectorNone
		return s, domain.StepModeSelected, true

	case domain.EventSelectStore:
		if c.PickupMode != domain.PickupModeStore || c.City == "" || ev.Value == "" {
			return s, "", false
		}
		c.Store = ev.Value
		s.Active = domain.SelectorNone
		return s, domain.StepStoreSelected, true

	case domain.EventEnterAddress:
		if c.PickupMode != domain.PickupModeDelivery || ev.Value == "" {
			return s, "", false
		}
		c.DeliveryAddress = ev.Value
		s.Active = domain.SelectorNone
		return s, domain.StepAddressEntered, true

	case domain.EventSelectPickupDate:
		if !wellFormed(domain.KeyPickupDate, ev.Value) ||
			!availability.ValidateDate(ev.Value, ref.Today, domain.RolePickup, "") {
			return s, "", false
		}
		c.PickupDate = ev.Value
		f.pickupChanged(&s, ref)
		s.Active = domain.SelectorNone
		return s, domain.StepPickupDateSelected, true

	case domain.EventSelectPickupTime:
		if c.PickupDate == "" || !f.onGrid(domain.KeyPickupTime, ev.Value) ||
			!availability.ValidateTime(ev.Value, c.PickupDate, ref.Today, ref.NowWithBuffer, domain.RolePickup, "", "") {
			return s, "", false
		}
		c.PickupTime = ev.Value
		f.pickupChanged(&s, ref)
		s.Active = domain.SelectorNone
		return s, domain.StepPickupTimeSelected, true

	case domain.EventSelectDropoffDate:
		if !wellFormed(domain.KeyDropoffDate, ev.Value) ||
			!availability.ValidateDate(ev.Value, ref.Today, domain.RoleDropoff, c.PickupDate) {
			return s, "", false
		}
		c.DropoffDate = ev.Value
		if c.DropoffTime != "" && !dropoffTimeValid(*c, c.DropoffTime, ref) {
			c.DropoffTime = ""
		}
		s.DropoffOverridden = true
		s.Active = domain.SelectorNone
		return s, domain.StepDropoffDateOverridden, true

	case domain.EventSelectDropoffTime:
		if c.DropoffDate == "" || !f.onGrid(domain.KeyDropoffTime, ev.Value) ||
			!dropoffTimeValid(*c, ev.Value, ref) {
			return s, "", false
		}
		c.DropoffTime = ev.Value
		s.DropoffOverridden = true
		s.Active = domain.SelectorNone
		return s, domain.StepDropoffTimeOverridden, true

	case domain.EventOpenSelector:
		sel := domain.Selector(ev.Value)
		if sel == domain.SelectorNone || !sel.IsValid() {
			return s, "", false
		}
		s.Active = sel
		return s, "", true

	case domain.EventCloseSelector:
		if s.Active == domain.SelectorNone {
			return s, "", false
		}
		s.Active = domain.SelectorNone
		return s, "", true

	case domain.EventNextMonth:
		return f.navigate(s, availability.NextMonth(s.Calendar), ref)

	case domain.EventPrevMonth:
		return f.navigate(s, availability.PrevMonth(s.Calendar), ref)

	case domain.EventSetMonth:
		return f.navigate(s, domain.CalendarView{Month: ev.Number, Year: s.Calendar.Year}, ref)

	case domain.EventSetYear:
		return f.navigate(s, domain.CalendarView{Month: s.Calendar.Month, Year: ev.Number}, ref)

	case domain.EventReset:
		return domain.NewFlowState(ref.CurrentView()), domain.StepIdle, true
	}

	return s, "", false
}

// pickupChanged keeps dropoff consistent after the pickup date or time moves.
// A complete pickup always re-derives dropoff and drops any manual override.
func (f *Flow) pickupChanged(s *domain.FlowState, ref domain.Reference) {
	c := &s.Criteria

	if c.PickupTime != "" &&
		!availability.ValidateTime(c.PickupTime, c.PickupDate, ref.Today, ref.NowWithBuffer, domain.RolePickup, "", "") {
		c.PickupTime = ""
		c.DropoffDate, c.DropoffTime = "", ""
		s.DropoffOverridden = false
		return
	}

	if c.HasPickup() {
		c.DropoffDate, c.DropoffTime = f.calc.DeriveDropoff(c.PickupDate, c.PickupTime)
		s.DropoffOverridden = false
		return
	}

	if c.DropoffDate != "" && c.DropoffDate < c.PickupDate {
		c.DropoffDate, c.DropoffTime = "", ""
		s.DropoffOverridden = false
	}
}

// Sanitize drops the criteria values a client-held state can no longer
// support at the current time. See Dispatch.
func (f *Flow) Sanitize(state domain.FlowState) domain.FlowState {
	return f.sanitize(state, f.calc.ReferenceTime())
}

// sanitize clears fields of the other pickup mode, dates before today, times
// off the slot grid or inside the buffer, and a dropoff not after pickup.
// A cleared field takes the fields derived from it along.
func (f *Flow) sanitize(s domain.FlowState, ref domain.Reference) domain.FlowState {
	c := &s.Criteria
	before := *c

	if c.PickupMode != domain.PickupModeStore {
		c.Store = ""
	}
	if c.PickupMode != domain.PickupModeDelivery {
		c.DeliveryAddress = ""
	}

	if c.PickupDate != "" && !availability.ValidateDate(c.PickupDate, ref.Today, domain.RolePickup, "") {
		c.PickupDate, c.PickupTime = "", ""
		c.DropoffDate, c.DropoffTime = "", ""
	}
	if c.PickupTime != "" && (c.PickupDate == "" || !f.calc.OnSlotGrid(c.PickupTime) ||
		!availability.ValidateTime(c.PickupTime, c.PickupDate, ref.Today, ref.NowWithBuffer, domain.RolePickup, "", "")) {
		c.PickupTime = ""
		c.DropoffDate, c.DropoffTime = "", ""
	}
	if c.DropoffDate != "" && !availability.ValidateDate(c.DropoffDate, ref.Today, domain.RoleDropoff, c.PickupDate) {
		c.DropoffDate, c.DropoffTime = "", ""
	}
	if c.DropoffTime != "" && (c.DropoffDate == "" || !f.calc.OnSlotGrid(c.DropoffTime) ||
		!dropoffTimeValid(*c, c.DropoffTime, ref)) {
		c.DropoffTime = ""
	}

	if *c == before {
		return s
	}
	if c.DropoffDate == "" && c.DropoffTime == "" {
		s.DropoffOverridden = false
	}
	if c.Ready() {
		s.Step = domain.StepReady
	} else {
		s.Step = regress(*c)
	}
	return s
}

func (f *Flow) navigate(s domain.FlowState, view domain.CalendarView, ref domain.Reference) (domain.FlowState, domain.Step, bool) {
	if !f.calc.ViewInRange(view, ref) {
		return s, "", false
	}
	s.Calendar = view
	return s, "", true
}

func dropoffTimeValid(c domain.SearchCriteria, t string, ref domain.Reference) bool {
	return availability.ValidateTime(t, c.DropoffDate, ref.Today, ref.NowWithBuffer,
		domain.RoleDropoff, c.PickupDate, c.PickupTime)
}

// onGrid reports whether a time value is well formed and one of the slot start times.
func (f *Flow) onGrid(field, value string) bool {
	return wellFormed(field, value) && f.calc.OnSlotGrid(value)
}

func wellFormed(field, value string) bool {
	rule, ok := domain.FieldRuleFor(field)
	return ok && value != "" && rule.Format(value)
}

// regress finds the furthest step the criteria still supports once a field
// required for Ready has been cleared.
func regress(c domain.SearchCriteria) domain.Step {
	switch {
	case c.City == "":
		return domain.StepIdle
	case c.PickupMode == domain.PickupModeNone:
		return domain.StepCitySelected
	case c.PickupMode == domain.PickupModeStore && c.Store == "",
		c.PickupMode == domain.PickupModeDelivery && c.DeliveryAddress == "":
		return domain.StepModeSelected
	case c.PickupDate == "":
		if c.PickupMode == domain.PickupModeStore {
			return domain.StepStoreSelected
		}
		return domain.StepAddressEntered
	case c.PickupTime == "":
		return domain.StepPickupDateSelected
	case c.DropoffTime == "" && c.DropoffDate != "":
		return domain.StepDropoffDateOverridden
	default:
		return domain.StepPickupTimeSelected
	}
}
