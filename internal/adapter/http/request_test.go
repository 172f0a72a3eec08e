package http

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vehicle-marketplace/rental-search/internal/domain"
)

// validationFields returns the fields of a validation error, or nil.
func validationFields(t *testing.T, err error) []string {
	t.Helper()
	if err == nil {
		return nil
	}
	var errs *ValidationErrors
	require.True(t, errors.As(err, &errs), "expected *ValidationErrors, got %T", err)
	fields := make([]string, 0, len(errs.Errors))
	for _, e := range errs.Errors {
		fields = append(fields, e.Field)
	}
	return fields
}

func TestCalendarRequest_Validate(t *testing.T) {
	tests := []struct {
		name          string
		req           CalendarRequest
		errorFields   []string
		expectedMonth *int
		expectedYear  *int
	}{
		{name: "empty uses defaults"},
		{name: "january", req: CalendarRequest{Month: "0", Year: "2026"}, expectedMonth: intPtr(0), expectedYear: intPtr(2026)},
		{name: "december", req: CalendarRequest{Month: " 11 "}, expectedMonth: intPtr(11)},
		{name: "month too high", req: CalendarRequest{Month: "12"}, errorFields: []string{"month"}},
		{name: "negative month", req: CalendarRequest{Month: "-1"}, errorFields: []string{"month"}},
		{name: "month not a number", req: CalendarRequest{Month: "june"}, errorFields: []string{"month"}},
		{name: "year zero", req: CalendarRequest{Year: "0"}, errorFields: []string{"year"}},
		{name: "both invalid", req: CalendarRequest{Month: "x", Year: "y"}, errorFields: []string{"month", "year"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()
			assert.Equal(t, tt.errorFields, validationFields(t, err))
			if err != nil {
				return
			}
			q := ToCalendarQuery(&tt.req)
			assert.Equal(t, tt.expectedMonth, q.Month)
			assert.Equal(t, tt.expectedYear, q.Year)
		})
	}
}

func TestTimeSlotsRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		req         TimeSlotsRequest
		errorFields []string
	}{
		{name: "date only", req: TimeSlotsRequest{Date: "2025-07-01"}},
		{name: "dropoff with pickup", req: TimeSlotsRequest{Date: "2025-07-02", Role: "dropoff", PickupDate: "2025-07-01", PickupTime: "09:00"}},
		{name: "missing date", req: TimeSlotsRequest{}, errorFields: []string{"date"}},
		{name: "impossible date", req: TimeSlotsRequest{Date: "2025-02-30"}, errorFields: []string{"date"}},
		{name: "unknown role", req: TimeSlotsRequest{Date: "2025-07-01", Role: "return"}, errorFields: []string{"role"}},
		{name: "bad pickup clock", req: TimeSlotsRequest{Date: "2025-07-01", PickupTime: "24:00"}, errorFields: []string{"pickupTime"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errorFields, validationFields(t, tt.req.Validate()))
		})
	}
}

func TestToSlotQuery_DefaultsToPickup(t *testing.T) {
	q := ToSlotQuery(&TimeSlotsRequest{Date: "2025-07-01"})
	assert.Equal(t, domain.RolePickup, q.Role)

	q = ToSlotQuery(&TimeSlotsRequest{Date: "2025-07-01", Role: "dropoff"})
	assert.Equal(t, domain.RoleDropoff, q.Role)
}

func TestDropoffRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		req         DropoffRequest
		errorFields []string
	}{
		{name: "valid", req: DropoffRequest{PickupDate: "2025-07-01", PickupTime: "09:00"}},
		{name: "missing both", req: DropoffRequest{}, errorFields: []string{"pickupDate", "pickupTime"}},
		{name: "single digit hour", req: DropoffRequest{PickupDate: "2025-07-01", PickupTime: "9:00"}, errorFields: []string{"pickupTime"}},
		{name: "wrong date layout", req: DropoffRequest{PickupDate: "01-07-2025", PickupTime: "09:00"}, errorFields: []string{"pickupDate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errorFields, validationFields(t, tt.req.Validate()))
		})
	}
}

func TestValidateSelectionRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		req         ValidateSelectionRequest
		errorFields []string
	}{
		{name: "date only", req: ValidateSelectionRequest{Date: "2025-07-01"}},
		{name: "date and time", req: ValidateSelectionRequest{Date: "2025-07-01", Time: "23:30", Role: "pickup"}},
		{name: "missing date", req: ValidateSelectionRequest{Time: "10:00"}, errorFields: []string{"date"}},
		{name: "minute out of range", req: ValidateSelectionRequest{Date: "2025-07-01", Time: "10:60"}, errorFields: []string{"time"}},
		{name: "bad pickup date", req: ValidateSelectionRequest{Date: "2025-07-01", Role: "dropoff", PickupDate: "tomorrow"}, errorFields: []string{"pickupDate"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errorFields, validationFields(t, tt.req.Validate()))
		})
	}
}

func TestDispatchRequest_Validate(t *testing.T) {
	tests := []struct {
		name        string
		req         DispatchRequest
		errorFields []string
	}{
		{name: "known event without state", req: DispatchRequest{Event: EventDTO{Type: "reset"}}},
		{name: "event type is trimmed", req: DispatchRequest{Event: EventDTO{Type: " select_city ", Value: "pune"}}},
		{name: "missing type", req: DispatchRequest{}, errorFields: []string{"event.type"}},
		{name: "unknown type", req: DispatchRequest{Event: EventDTO{Type: "book_now"}}, errorFields: []string{"event.type"}},
		{
			name: "invalid pickup mode",
			req: DispatchRequest{
				State: &FlowStateDTO{Criteria: CriteriaDTO{PickupMode: "teleport"}},
				Event: EventDTO{Type: "reset"},
			},
			errorFields: []string{"state.criteria.pickupMode"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.errorFields, validationFields(t, tt.req.Validate()))
		})
	}
}

func TestToDomainState_RoundTrip(t *testing.T) {
	state := domain.FlowState{
		Criteria: domain.SearchCriteria{
			City:       "pune",
			PickupMode: domain.PickupModeStore,
			Store:      "pune-1",
			PickupDate: "2025-07-01",
		},
		Step:     domain.StepPickupDateSelected,
		Active:   domain.SelectorPickupTime,
		Calendar: domain.CalendarView{Month: 6, Year: 2025},
	}

	dto := ToFlowStateDTO(state)
	assert.Equal(t, state, ToDomainState(&dto, domain.CalendarView{Month: 0, Year: 2030}))
}

func TestToDomainState_NilStartsFresh(t *testing.T) {
	view := domain.CalendarView{Month: 5, Year: 2025}
	assert.Equal(t, domain.NewFlowState(view), ToDomainState(nil, view))
}

// TestValidationErrorsError tests the Error() method.
func TestValidationErrorsError(t *testing.T) {
	errs := &ValidationErrors{}
	errs.Add("field1", "error1")
	errs.Add("field2", "error2")

	errorMsg := errs.Error()
	require.NotEmpty(t, errorMsg)
	// Error() returns the first error's message
	assert.Equal(t, "error1", errorMsg)
	assert.Equal(t, map[string]string{"field1": "error1", "field2": "error2"}, errs.ToMap())

	// Test empty errors
	emptyErrs := &ValidationErrors{}
	assert.Equal(t, "validation failed", emptyErrs.Error())
}

func intPtr(i int) *int {
	return &i
}
