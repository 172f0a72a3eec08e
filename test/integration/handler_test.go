package integration

import (
	"errors"
	"net/http"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	httpAdapter "github.com/vehicle-marketplace/rental-search/internal/adapter/http"
	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/test/mock"
	"github.com/vehicle-marketplace/rental-search/test/testutil"
)

// newServer starts a server at the given India wall-clock time over the sample cities.
func newServer(t *testing.T, now string) (*TestServer, *mock.Directory) {
	t.Helper()
	dir := mock.NewDirectory("mock").WithCities(mock.SampleCities())
	return NewTestServer(testutil.NewClockAt(t, now), dir), dir
}

// runSession dispatches the steps in order, requiring every one to apply.
func runSession(t *testing.T, ts *TestServer, state *httpAdapter.FlowStateDTO, steps []Step) *httpAdapter.DispatchResponse {
	t.Helper()
	var resp *httpAdapter.DispatchResponse
	for _, s := range steps {
		r := ts.Dispatch(state, s.Type, s.Value)
		require.Equal(t, http.StatusOK, r.Code, string(r.Body))

		var err error
		resp, err = r.ParseDispatch()
		require.NoError(t, err)
		require.True(t, resp.Applied, "%s %q rejected", s.Type, s.Value)
		state = &resp.State
	}
	return resp
}

func reference(t *testing.T, ts *TestServer) httpAdapter.ReferenceResponse {
	t.Helper()
	var ref httpAdapter.ReferenceResponse
	r := ts.Get("/api/v1/rental-search/reference")
	require.Equal(t, http.StatusOK, r.Code)
	require.NoError(t, r.Parse(&ref))
	return ref
}

// TestHandler_StoreSessionReachesListing walks a store pickup search end to end.
func TestHandler_StoreSessionReachesListing(t *testing.T) {
	ts, _ := newServer(t, "2025-06-30 10:00")

	resp := runSession(t, ts, nil, StoreSession("2025-07-01", "09:00"))

	assert.True(t, resp.Ready)
	assert.Equal(t, "ready", resp.State.Step)
	assert.Empty(t, resp.MissingFields)
	assert.Equal(t, "2025-07-02", resp.State.Criteria.DropoffDate)
	assert.Equal(t, "09:00", resp.State.Criteria.DropoffTime)
	assert.False(t, resp.State.DropoffOverridden)

	require.True(t, strings.HasPrefix(resp.ListingURL, "/bikes?"))
	for _, part := range []string{"city=pune", "pickupMode=store", "store=pune-1", "pickupDate=2025-07-01", "dropoffDate=2025-07-02"} {
		assert.Contains(t, resp.ListingURL, part)
	}
}

// TestHandler_DeliverySession covers the delivery branch, which needs an address instead of a store.
func TestHandler_DeliverySession(t *testing.T) {
	ts, _ := newServer(t, "2025-06-30 10:00")

	resp := runSession(t, ts, nil, []Step{
		{Type: "select_city", Value: "goa"},
		{Type: "select_pickup_mode", Value: "delivery"},
		{Type: "select_pickup_date", Value: "2025-06-30"},
		{Type: "select_pickup_time", Value: "18:00"},
	})
	assert.False(t, resp.Ready)
	assert.Equal(t, []string{"deliveryAddress"}, resp.MissingFields)

	resp = runSession(t, ts, &resp.State, []Step{{Type: "enter_address", Value: "  12 Beach Road, Calangute "}})
	assert.True(t, resp.Ready)
	assert.Equal(t, "12 Beach Road, Calangute", resp.State.Criteria.DeliveryAddress)
	assert.Empty(t, resp.State.Criteria.Store)
	assert.Equal(t, "2025-07-01", resp.State.Criteria.DropoffDate)
}

// TestHandler_DropoffOverrideAndRederive checks a manual dropoff survives until pickup changes.
func TestHandler_DropoffOverrideAndRederive(t *testing.T) {
	ts, _ := newServer(t, "2025-06-30 10:00")
	resp := runSession(t, ts, nil, StoreSession("2025-07-01", "09:00"))

	resp = runSession(t, ts, &resp.State, []Step{{Type: "select_dropoff_date", Value: "2025-07-04"}})
	assert.True(t, resp.State.DropoffOverridden)
	assert.Equal(t, "2025-07-04", resp.State.Criteria.DropoffDate)
	assert.Equal(t, "09:00", resp.State.Criteria.DropoffTime)
	assert.True(t, resp.Ready)

	// Dropoff before pickup is refused and the state is unchanged
	r := ts.Dispatch(&resp.State, "select_dropoff_date", "2025-06-30")
	rejected, err := r.ParseDispatch()
	require.NoError(t, err)
	assert.False(t, rejected.Applied)
	assert.Equal(t, resp.State, rejected.State)

	// Moving pickup re-derives the dropoff
	resp = runSession(t, ts, &resp.State, []Step{{Type: "select_pickup_time", Value: "14:30"}})
	assert.False(t, resp.State.DropoffOverridden)
	assert.Equal(t, "2025-07-02", resp.State.Criteria.DropoffDate)
	assert.Equal(t, "14:30", resp.State.Criteria.DropoffTime)
}

// TestHandler_DirectoryRejectsUnknownIDs checks unknown cities and stores are refused, not errors.
func TestHandler_DirectoryRejectsUnknownIDs(t *testing.T) {
	ts, _ := newServer(t, "2025-06-30 10:00")

	r := ts.Dispatch(nil, "select_city", "atlantis")
	require.Equal(t, http.StatusOK, r.Code)
	resp, err := r.ParseDispatch()
	require.NoError(t, err)
	assert.False(t, resp.Applied)

	resp = runSession(t, ts, nil, []Step{
		{Type: "select_city", Value: "mumbai"},
		{Type: "select_pickup_mode", Value: "store"},
	})
	r = ts.Dispatch(&resp.State, "select_store", "pune-1")
	require.Equal(t, http.StatusOK, r.Code)
	resp, err = r.ParseDispatch()
	require.NoError(t, err)
	assert.False(t, resp.Applied, "pune-1 is not a Mumbai store")
}

// TestHandler_BufferCrossesMidnight checks the last half hour of the day has no bookable slot.
func TestHandler_BufferCrossesMidnight(t *testing.T) {
	ts, _ := newServer(t, "2025-06-30 23:45")

	ref := reference(t, ts)
	assert.Equal(t, "2025-06-30", ref.Today)
	assert.Equal(t, "24:00", ref.NowWithBuffer)

	r := ts.Get("/api/v1/rental-search/time-slots?date=2025-06-30")
	require.Equal(t, http.StatusOK, r.Code)
	var slots httpAdapter.TimeSlotsResponse
	require.NoError(t, r.Parse(&slots))
	assert.Zero(t, slots.Total)
	assert.Empty(t, slots.Slots)

	resp := runSession(t, ts, nil, []Step{{Type: "select_pickup_date", Value: "2025-06-30"}})
	r = ts.Dispatch(&resp.State, "select_pickup_time", "23:30")
	rejected, err := r.ParseDispatch()
	require.NoError(t, err)
	assert.False(t, rejected.Applied)

	// Half an hour later it is a new day
	ts.Clock.Advance(30 * time.Minute)
	ref = reference(t, ts)
	assert.Equal(t, "2025-07-01", ref.Today)
	assert.Equal(t, "00:45", ref.NowWithBuffer)
	assert.Equal(t, 6, ref.Month)
}

// TestHandler_CalendarNavigationStaysInRange checks month navigation against the year picker.
func TestHandler_CalendarNavigationStaysInRange(t *testing.T) {
	ts, _ := newServer(t, "2025-06-30 10:00")

	r := ts.Dispatch(nil, "prev_month", "")
	resp, err := r.ParseDispatch()
	require.NoError(t, err)
	assert.True(t, resp.Applied, "May 2025 is in the current year")

	r = ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/rental-search/dispatch",
		Body:   httpAdapter.DispatchRequest{Event: httpAdapter.EventDTO{Type: "set_year", Number: 2028}},
	})
	resp, err = r.ParseDispatch()
	require.NoError(t, err)
	assert.False(t, resp.Applied, "2028 is past the picker range")
	assert.Equal(t, 2025, resp.State.Calendar.Year)
}

// TestHandler_CitiesAreCached checks the directory is read once per cache lifetime.
func TestHandler_CitiesAreCached(t *testing.T) {
	ts, dir := newServer(t, "2025-06-30 10:00")

	for range 3 {
		r := ts.Get("/api/v1/cities")
		require.Equal(t, http.StatusOK, r.Code)
	}
	runSession(t, ts, nil, StoreSession("2025-07-01", "09:00"))
	assert.Equal(t, 1, dir.CallCount())

	ts.Clock.Advance(cacheTTL + time.Second)
	r := ts.Get("/api/v1/cities/pune")
	require.Equal(t, http.StatusOK, r.Code)
	assert.Equal(t, 2, dir.CallCount())

	var city httpAdapter.CityDTO
	require.NoError(t, r.Parse(&city))
	assert.Len(t, city.Stores, 2)
}

// TestHandler_ServiceUnavailable checks a directory outage surfaces as 503.
func TestHandler_ServiceUnavailable(t *testing.T) {
	dir := mock.NewDirectory("mock").WithError(domain.NewRetryableDirectoryError("mock", errors.New("connection refused")))
	ts := NewTestServer(testutil.NewClockAt(t, "2025-06-30 10:00"), dir)

	r := ts.Get("/api/v1/cities")
	assert.Equal(t, http.StatusServiceUnavailable, r.Code)

	r = ts.Dispatch(nil, "select_city", "pune")
	assert.Equal(t, http.StatusServiceUnavailable, r.Code)
	errResp, err := r.ParseError()
	require.NoError(t, err)
	assert.Equal(t, "service_unavailable", errResp["code"])

	// Calendar endpoints do not need the directory
	assert.Equal(t, http.StatusOK, ts.Get("/api/v1/rental-search/calendar").Code)
	assert.Equal(t, http.StatusOK, ts.Dispatch(nil, "next_month", "").Code)
}

// TestHandler_MetricsExposed checks flow and directory counters reach the scrape endpoint.
func TestHandler_MetricsExposed(t *testing.T) {
	ts, _ := newServer(t, "2025-06-30 10:00")
	runSession(t, ts, nil, StoreSession("2025-07-01", "09:00"))
	ts.Dispatch(nil, "select_pickup_date", "2020-01-01")

	r := ts.Get("/metrics")
	require.Equal(t, http.StatusOK, r.Code)
	body := string(r.Body)

	assert.Contains(t, body, `it_flow_events_total{event="select_city",outcome="applied"} 1`)
	assert.Contains(t, body, `it_flow_events_total{event="select_pickup_date",outcome="rejected"} 1`)
	assert.Contains(t, body, `it_directory_lookups_total{result="miss",source="mock"} 1`)
	assert.Contains(t, body, `it_http_requests_total{method="POST",route="/api/v1/rental-search/dispatch",status="200"} 6`)
}

// TestHandler_HealthCheck tests the health check endpoint.
func TestHandler_HealthCheck(t *testing.T) {
	ts, _ := newServer(t, "2025-06-30 10:00")

	r := ts.HealthRequest()

	assert.Equal(t, http.StatusOK, r.Code)
	assert.NotEmpty(t, r.Headers.Get("X-Request-ID"))
	assert.JSONEq(t, `{"status":"ok"}`, string(r.Body))
}

// TestHandler_InvalidJSON tests handling of malformed JSON.
func TestHandler_InvalidJSON(t *testing.T) {
	ts, _ := newServer(t, "2025-06-30 10:00")

	r := ts.Do(Request{
		Method:      http.MethodPost,
		Path:        "/api/v1/rental-search/dispatch",
		Body:        "{not json",
		ContentType: "application/json",
	})

	assert.Equal(t, http.StatusBadRequest, r.Code)
}

// TestHandler_RefreshReloadsDirectory checks a refresh bypasses the cached city list.
func TestHandler_RefreshReloadsDirectory(t *testing.T) {
	ts, dir := newServer(t, "2025-06-30 10:00")

	require.Equal(t, http.StatusOK, ts.Get("/api/v1/cities").Code)
	require.Equal(t, 1, dir.CallCount())

	dir.WithCities(mock.SampleCities()[:1])
	r := ts.Do(Request{Method: http.MethodPost, Path: "/api/v1/cities/refresh"})
	require.Equal(t, http.StatusOK, r.Code)
	assert.Equal(t, 2, dir.CallCount())

	var cities httpAdapter.CitiesResponse
	require.NoError(t, r.Parse(&cities))
	assert.Equal(t, 1, cities.Total)

	// The refreshed list is cached again
	require.Equal(t, http.StatusOK, ts.Get("/api/v1/cities").Code)
	assert.Equal(t, 2, dir.CallCount())
}

// TestHandler_ResumeFromListingURL checks a listing URL round-trips into a session.
func TestHandler_ResumeFromListingURL(t *testing.T) {
	ts, _ := newServer(t, "2025-06-30 10:00")

	done := runSession(t, ts, nil, StoreSession("2025-07-01", "09:00"))
	require.True(t, done.Ready)

	u, err := url.Parse(done.ListingURL)
	require.NoError(t, err)
	r := ts.Get("/api/v1/rental-search/resume?" + u.RawQuery)
	require.Equal(t, http.StatusOK, r.Code, string(r.Body))

	resumed, err := r.ParseDispatch()
	require.NoError(t, err)
	assert.True(t, resumed.Ready)
	assert.Equal(t, done.State.Criteria, resumed.State.Criteria)

	// The next day the same link no longer holds a bookable pickup
	ts.Clock.AdvanceDays(2)
	r = ts.Get("/api/v1/rental-search/resume?" + u.RawQuery)
	require.Equal(t, http.StatusOK, r.Code)
	stale, err := r.ParseDispatch()
	require.NoError(t, err)
	assert.False(t, stale.Ready)
	assert.Equal(t, "store_selected", stale.State.Step)
}
