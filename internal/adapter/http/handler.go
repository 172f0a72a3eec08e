// Package http provides the HTTP handler layer for the rental search API.
// It handles request parsing, validation, response formatting, and error mapping.
package http

import (
	"context"
	"errors"

	"github.com/labstack/echo/v4"

	"github.com/vehicle-marketplace/rental-search/internal/adapter/http/response"
	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/usecase"
)

// RentalSearchHandler handles HTTP requests for the rental search endpoints.
type RentalSearchHandler struct {
	useCase usecase.RentalSearchUseCase
}

// NewRentalSearchHandler creates a new RentalSearchHandler with the given use case.
func NewRentalSearchHandler(uc usecase.RentalSearchUseCase) *RentalSearchHandler {
	return &RentalSearchHandler{
		useCase: uc,
	}
}

// Reference handles GET /api/v1/rental-search/reference
//
// @Summary Current reference time
// @Description Today's local date and the local clock advanced by the booking buffer
// @Tags rental-search
// @Produce json
// @Success 200 {object} ReferenceResponse
// @Router /api/v1/rental-search/reference [get]
func (h *RentalSearchHandler) Reference(c echo.Context) error {
	ref := h.useCase.Reference(c.Request().Context())
	return response.OK(c, ToReferenceResponse(ref))
}

// Calendar handles GET /api/v1/rental-search/calendar
//
// @Summary Month grid
// @Description Whole-week grid of a month with past and today flags
// @Tags rental-search
// @Produce json
// @Param month query int false "Zero-based month (0-11)"
// @Param year query int false "Four-digit year, clamped to the picker range"
// @Success 200 {object} CalendarResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/rental-search/calendar [get]
func (h *RentalSearchHandler) Calendar(c echo.Context) error {
	var req CalendarRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.Calendar(c.Request().Context(), ToCalendarQuery(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToCalendarResponse(result))
}

// TimeSlots handles GET /api/v1/rental-search/time-slots
//
// @Summary Time slots of a date
// @Description Start times of a date; today's slots before the buffered clock are omitted
// @Tags rental-search
// @Produce json
// @Param date query string true "Date (YYYY-MM-DD)"
// @Param role query string false "pickup or dropoff" Enums(pickup, dropoff)
// @Param pickupDate query string false "Pickup date when role is dropoff"
// @Param pickupTime query string false "Pickup time when role is dropoff"
// @Success 200 {object} TimeSlotsResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/rental-search/time-slots [get]
func (h *RentalSearchHandler) TimeSlots(c echo.Context) error {
	var req TimeSlotsRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	q := ToSlotQuery(&req)
	slots, err := h.useCase.TimeSlots(c.Request().Context(), q)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToTimeSlotsResponse(q, slots))
}

// Dropoff handles POST /api/v1/rental-search/dropoff
//
// @Summary Derive dropoff
// @Description Dropoff exactly one rental duration after pickup
// @Tags rental-search
// @Accept json
// @Produce json
// @Param request body DropoffRequest true "Pickup"
// @Success 200 {object} DropoffResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/rental-search/dropoff [post]
func (h *RentalSearchHandler) Dropoff(c echo.Context) error {
	var req DropoffRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.DeriveDropoff(c.Request().Context(), req.PickupDate, req.PickupTime)
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, DropoffResponse{DropoffDate: result.DropoffDate, DropoffTime: result.DropoffTime})
}

// ValidateSelection handles POST /api/v1/rental-search/validate
//
// @Summary Validate a selection
// @Description Checks a candidate date and optional time for pickup or dropoff
// @Tags rental-search
// @Accept json
// @Produce json
// @Param request body ValidateSelectionRequest true "Candidate"
// @Success 200 {object} ValidateSelectionResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Router /api/v1/rental-search/validate [post]
func (h *RentalSearchHandler) ValidateSelection(c echo.Context) error {
	var req ValidateSelectionRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	result, err := h.useCase.ValidateSelection(c.Request().Context(), ToSelectionQuery(&req))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ValidateSelectionResponse{DateValid: result.DateValid, TimeValid: result.TimeValid})
}

// Dispatch handles POST /api/v1/rental-search/dispatch
//
// @Summary Dispatch a flow event
// @Description Applies one interaction to the session state and returns the next state
// @Tags rental-search
// @Accept json
// @Produce json
// @Param request body DispatchRequest true "State and event"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} response.ErrorDetail "Validation error"
// @Failure 503 {object} response.ErrorDetail "Directory unavailable"
// @Failure 504 {object} response.ErrorDetail "Gateway timeout"
// @Router /api/v1/rental-search/dispatch [post]
func (h *RentalSearchHandler) Dispatch(c echo.Context) error {
	var req DispatchRequest
	if err := c.Bind(&req); err != nil {
		return response.InvalidRequestBody(c)
	}
	if err := req.Validate(); err != nil {
		return h.handleValidationError(c, err)
	}

	ctx := c.Request().Context()
	view := h.useCase.Reference(ctx).CurrentView()

	result, err := h.useCase.Dispatch(ctx, ToDomainState(req.State, view), ToDomainEvent(req.Event))
	if err != nil {
		return h.handleError(c, err)
	}

	return response.OK(c, ToDispatchResponse(result))
}

// Resume handles GET /api/v1/rental-search/resume
//
// @Summary Resume a search from listing query parameters
// @Description Rebuilds the session state from the eight listing query keys, dropping values that are no longer selectable
// @Tags rental-search
// @Produce json
// @Param city query string false "City ID"
// @Param pickupMode query string false "store or delivery"
// @Param store query string false "Store ID"
// @Param deliveryAddress query string false "Delivery address"
// @Param pickupDate query string false "Pickup date (YYYY-MM-DD)"
// @Param pickupTime query string false "Pickup time (HH:MM)"
// @Param dropoffDate query string false "Dropoff date (YYYY-MM-DD)"
// @Param dropoffTime query string false "Dropoff time (HH:MM)"
// @Success 200 {object} DispatchResponse
// @Failure 400 {object} response.ErrorDetail "Malformed criteria"
// @Failure 404 {object} response.ErrorDetail "Unknown city or store"
// @Failure 503 {object} response.ErrorDetail "Directory unavailable"
// @Router /api/v1/rental-search/resume [get]
func (h *RentalSearchHandler) Resume(c echo.Context) error {
	result, err := h.useCase.Resume(c.Request().Context(), domain.ParseSearchCriteria(c.QueryParams()))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToDispatchResponse(result))
}

// Cities handles GET /api/v1/cities
//
// @Summary List rental cities
// @Tags cities
// @Produce json
// @Success 200 {object} CitiesResponse
// @Failure 503 {object} response.ErrorDetail "Directory unavailable"
// @Router /api/v1/cities [get]
func (h *RentalSearchHandler) Cities(c echo.Context) error {
	cities, err := h.useCase.Cities(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToCitiesResponse(cities))
}

// RefreshCities handles POST /api/v1/cities/refresh
//
// @Summary Reload the city directory
// @Description Drops the cached directory and lists the cities from the source
// @Tags cities
// @Produce json
// @Success 200 {object} CitiesResponse
// @Failure 503 {object} response.ErrorDetail "Directory unavailable"
// @Router /api/v1/cities/refresh [post]
func (h *RentalSearchHandler) RefreshCities(c echo.Context) error {
	cities, err := h.useCase.RefreshCities(c.Request().Context())
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToCitiesResponse(cities))
}

// City handles GET /api/v1/cities/:id
//
// @Summary Get a city with its stores
// @Tags cities
// @Produce json
// @Param id path string true "City ID"
// @Success 200 {object} CityDTO
// @Failure 404 {object} response.ErrorDetail "City not found"
// @Failure 503 {object} response.ErrorDetail "Directory unavailable"
// @Router /api/v1/cities/{id} [get]
func (h *RentalSearchHandler) City(c echo.Context) error {
	city, err := h.useCase.City(c.Request().Context(), c.Param("id"))
	if err != nil {
		return h.handleError(c, err)
	}
	return response.OK(c, ToCityDTO(*city))
}

// handleValidationError handles validation errors and returns a 400 response.
func (h *RentalSearchHandler) handleValidationError(c echo.Context, err error) error {
	var validationErrs *ValidationErrors
	if errors.As(err, &validationErrs) {
		return response.ValidationError(c, validationErrs.ToMap())
	}

	return response.ValidationErrorWithMessage(c, err.Error())
}

// handleError maps domain errors to appropriate HTTP responses.
func (h *RentalSearchHandler) handleError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, domain.ErrInvalidRequest):
		return response.ValidationErrorWithMessage(c, err.Error())
	case domain.IsNotFound(err):
		return response.NotFound(c, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return response.GatewayTimeout(c)
	case errors.Is(err, context.Canceled):
		return response.RequestCancelled(c)
	case errors.Is(err, domain.ErrDirectoryUnavailable):
		return response.ServiceUnavailable(c)
	default:
		return response.InternalServerError(c)
	}
}

// Health handles GET /health
// Simple health check endpoint.
func (h *RentalSearchHandler) Health(c echo.Context) error {
	return response.Health(c)
}
