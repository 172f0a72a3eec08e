// Package http provides the HTTP handler layer for the rental search API.
// It handles request parsing, validation, and response formatting.
package http

import (
	"strconv"
	"strings"

	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
)

// CalendarRequest holds the query parameters of GET /rental-search/calendar.
type CalendarRequest struct {
	// Month is zero-based (0 = January); defaults to the current month
	Month string `query:"month"`

	// Year is the four-digit year; defaults to the current year
	Year string `query:"year"`

	month *int
	year  *int
}

// TimeSlotsRequest holds the query parameters of GET /rental-search/time-slots.
type TimeSlotsRequest struct {
	Date       string `query:"date"`
	Role       string `query:"role"`
	PickupDate string `query:"pickupDate"`
	PickupTime string `query:"pickupTime"`
}

// DropoffRequest is the body of POST /rental-search/dropoff.
type DropoffRequest struct {
	PickupDate string `json:"pickupDate" example:"2025-07-01"`
	PickupTime string `json:"pickupTime" example:"09:00"`
}

// ValidateSelectionRequest is the body of POST /rental-search/validate.
type ValidateSelectionRequest struct {
	Date       string `json:"date" example:"2025-07-02"`
	Time       string `json:"time,omitempty" example:"10:30"`
	Role       string `json:"role" example:"dropoff"`
	PickupDate string `json:"pickupDate,omitempty" example:"2025-07-01"`
	PickupTime string `json:"pickupTime,omitempty" example:"09:00"`
}

// DispatchRequest is the body of POST /rental-search/dispatch.
// A missing state starts a new session.
type DispatchRequest struct {
	State *FlowStateDTO `json:"state,omitempty"`
	Event EventDTO      `json:"event"`
}

// ValidationError represents a field-level validation error.
type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationErrors holds multiple validation errors.
type ValidationErrors struct {
	Errors []ValidationError `json:"errors"`
}

// Error implements the error interface.
func (v *ValidationErrors) Error() string {
	if len(v.Errors) == 0 {
		return "validation failed"
	}
	return v.Errors[0].Message
}

// Add adds a validation error.
func (v *ValidationErrors) Add(field, message string) {
	v.Errors = append(v.Errors, ValidationError{
		Field:   field,
		Message: message,
	})
}

// HasErrors returns true if there are validation errors.
func (v *ValidationErrors) HasErrors() bool {
	return len(v.Errors) > 0
}

// ToMap converts validation errors to a map for API response.
func (v *ValidationErrors) ToMap() map[string]string {
	result := make(map[string]string, len(v.Errors))
	for _, e := range v.Errors {
		result[e.Field] = e.Message
	}
	return result
}

func (v *ValidationErrors) orNil() error {
	if v.HasErrors() {
		return v
	}
	return nil
}

var validEventTypes = map[domain.EventType]bool{
	domain.EventSelectCity:        true,
	domain.EventSelectPickupMode:  true,
	domain.EventSelectStore:       true,
	domain.EventEnterAddress:      true,
	domain.EventSelectPickupDate:  true,
	domain.EventSelectPickupTime:  true,
	domain.EventSelectDropoffDate: true,
	domain.EventSelectDropoffTime: true,
	domain.EventOpenSelector:      true,
	domain.EventCloseSelector:     true,
	domain.EventNextMonth:         true,
	domain.EventPrevMonth:         true,
	domain.EventSetMonth:          true,
	domain.EventSetYear:           true,
	domain.EventReset:             true,
}

// Validate parses and checks the month and year parameters.
func (r *CalendarRequest) Validate() error {
	errs := &ValidationErrors{}

	if m := strings.TrimSpace(r.Month); m != "" {
		month, err := strconv.Atoi(m)
		if err != nil || month < 0 || month > 11 {
			errs.Add("month", "month must be an integer between 0 and 11")
		} else {
			r.month = &month
		}
	}

	if y := strings.TrimSpace(r.Year); y != "" {
		year, err := strconv.Atoi(y)
		if err != nil || year < 1 || year > 9999 {
			errs.Add("year", "year must be a four-digit integer")
		} else {
			r.year = &year
		}
	}

	return errs.orNil()
}

// Validate checks the slot query.
func (r *TimeSlotsRequest) Validate() error {
	errs := &ValidationErrors{}

	validateDate(errs, "date", r.Date, true)
	validateRole(errs, r.Role)
	validateDate(errs, "pickupDate", r.PickupDate, false)
	validateClock(errs, "pickupTime", r.PickupTime, false)

	return errs.orNil()
}

// Validate checks the pickup date and time.
func (r *DropoffRequest) Validate() error {
	errs := &ValidationErrors{}

	validateDate(errs, "pickupDate", r.PickupDate, true)
	validateClock(errs, "pickupTime", r.PickupTime, true)

	return errs.orNil()
}

// Validate checks the candidate selection.
func (r *ValidateSelectionRequest) Validate() error {
	errs := &ValidationErrors{}

	validateDate(errs, "date", r.Date, true)
	validateClock(errs, "time", r.Time, false)
	validateRole(errs, r.Role)
	validateDate(errs, "pickupDate", r.PickupDate, false)
	validateClock(errs, "pickupTime", r.PickupTime, false)

	return errs.orNil()
}

// Validate checks the event envelope. The state itself is checked by the use case.
func (r *DispatchRequest) Validate() error {
	errs := &ValidationErrors{}

	r.Event.Type = strings.TrimSpace(r.Event.Type)
	if r.Event.Type == "" {
		errs.Add("event.type", "event.type is required")
	} else if !validEventTypes[domain.EventType(r.Event.Type)] {
		errs.Add("event.type", "event.type is not a known event")
	}

	if r.State != nil && r.State.Criteria.PickupMode != "" &&
		!domain.PickupMode(r.State.Criteria.PickupMode).IsValid() {
		errs.Add("state.criteria.pickupMode", "pickupMode must be one of: store, delivery")
	}

	return errs.orNil()
}

func validateDate(errs *ValidationErrors, field, value string, required bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}
	if !timeutil.IsValidDate(value) {
		errs.Add(field, field+" must be a valid date in YYYY-MM-DD format")
	}
}

func validateClock(errs *ValidationErrors, field, value string, required bool) {
	if value == "" {
		if required {
			errs.Add(field, field+" is required")
		}
		return
	}
	if !timeutil.IsValidClock(value) {
		errs.Add(field, field+" must be in HH:MM format with valid hours (00-23) and minutes (00-59)")
	}
}

func validateRole(errs *ValidationErrors, role string) {
	if role != "" && !domain.Role(role).IsValid() {
		errs.Add("role", "role must be one of: pickup, dropoff")
	}
}
