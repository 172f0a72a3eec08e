// Package usecase contains the business logic of the rental search flow.
// It combines the availability calculator, the flow transition function, and
// the city/store directory behind one interface used by every adapter.
package usecase

import "github.com/vehicle-marketplace/rental-search/internal/domain"

// ReferenceResult is the "now" snapshot plus the rules it was computed with.
type ReferenceResult struct {
	domain.Reference

	// BufferMinutes is the booking buffer applied to NowWithBuffer
	BufferMinutes int `json:"bufferMinutes"`

	// Timezone is the IANA name of the booking timezone
	Timezone string `json:"timezone"`
}

// CalendarQuery selects the month to render. Nil fields default to the
// current month and year.
type CalendarQuery struct {
	Month *int
	Year  *int
}

// CalendarResult is one rendered month of the date picker.
type CalendarResult struct {
	View        domain.CalendarView `json:"view"`
	YearOptions []int               `json:"yearOptions"`
	Today       string              `json:"today"`
	Days        []domain.DayCell    `json:"days"`
}

// SlotQuery asks for the time slots of one date, checked for a role.
type SlotQuery struct {
	Date       string
	Role       domain.Role
	PickupDate string
	PickupTime string
}

// Slot is a time slot with its selectability for the queried role.
type Slot struct {
	domain.TimeSlot
	Selectable bool `json:"selectable"`
}

// DropoffResult is an auto-derived dropoff.
type DropoffResult struct {
	DropoffDate string `json:"dropoffDate"`
	DropoffTime string `json:"dropoffTime"`
}

// SelectionQuery is a candidate date and optional time to validate.
type SelectionQuery struct {
	Date       string
	Time       string
	Role       domain.Role
	PickupDate string
	PickupTime string
}

// SelectionResult reports whether the candidate date and time can be chosen.
// TimeValid is false when no time was given.
type SelectionResult struct {
	DateValid bool `json:"dateValid"`
	TimeValid bool `json:"timeValid"`
}

// DispatchResult is the outcome of one flow event.
type DispatchResult struct {
	State         domain.FlowState  `json:"state"`
	Applied       bool              `json:"applied"`
	Ready         bool              `json:"ready"`
	MissingFields []string          `json:"missingFields"`
	Query         map[string]string `json:"query"`
	ListingURL    string            `json:"listingUrl,omitempty"`
}
