// Package integration provides helpers and integration tests for the rental search system.
// Integration tests verify that components work together correctly, including
// HTTP handlers, middleware, the use case, the calculator, and the cached directory.
package integration

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/vehicle-marketplace/rental-search/internal/adapter/directory"
	httpAdapter "github.com/vehicle-marketplace/rental-search/internal/adapter/http"
	"github.com/vehicle-marketplace/rental-search/internal/adapter/http/middleware"
	"github.com/vehicle-marketplace/rental-search/internal/availability"
	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/cache"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/logger"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/metrics"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
	"github.com/vehicle-marketplace/rental-search/internal/usecase"
)

// cacheTTL is the directory cache lifetime in the test stack.
const cacheTTL = 5 * time.Minute

// TestServer wraps an Echo instance wired like cmd/server and provides
// helper methods for integration testing.
type TestServer struct {
	Echo    *echo.Echo
	Handler *httpAdapter.RentalSearchHandler
	Clock   *timeutil.MockClock
	Metrics *metrics.Metrics
	Cache   *cache.Memory
}

// NewTestServer creates a new test server over the given directory source.
// The clock drives both the calculator and the directory cache expiry.
func NewTestServer(clock *timeutil.MockClock, source domain.StoreDirectory) *TestServer {
	m := metrics.New("it")
	mem := cache.NewMemory(clock)
	uc := CreateUseCase(clock, directory.NewCached(source, mem, cacheTTL, directory.WithObserver(m)), m)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	middleware.SetupWithOptions(e, logger.Nop(), middleware.Options{Metrics: m})

	handler := httpAdapter.NewRentalSearchHandler(uc)
	httpAdapter.RegisterRoutes(e, handler)
	e.GET("/metrics", m.Handler())

	return &TestServer{
		Echo:    e,
		Handler: handler,
		Clock:   clock,
		Metrics: m,
		Cache:   mem,
	}
}

// CreateUseCase creates a use case in India time on the given clock.
func CreateUseCase(clock timeutil.Clock, dir domain.StoreDirectory, observer usecase.FlowObserver) usecase.RentalSearchUseCase {
	calc := availability.NewCalculator(clock, &availability.Config{
		Location: timeutil.MustLoadLocation(timeutil.IST),
	})
	return usecase.NewRentalSearchUseCase(calc, dir, &usecase.Config{
		ListingBaseURL: "/bikes",
		Observer:       observer,
	})
}

// Request represents a test HTTP request configuration.
type Request struct {
	Method      string
	Path        string
	Body        interface{}
	ContentType string
}

// Response represents a test HTTP response.
type Response struct {
	Code    int
	Body    []byte
	Headers http.Header
}

// Do executes a test request and returns the response.
func (ts *TestServer) Do(req Request) Response {
	var bodyReader *bytes.Reader
	if req.Body != nil {
		bodyBytes, _ := json.Marshal(req.Body)
		bodyReader = bytes.NewReader(bodyBytes)
	} else {
		bodyReader = bytes.NewReader(nil)
	}

	httpReq := httptest.NewRequest(req.Method, req.Path, bodyReader)

	if req.ContentType != "" {
		httpReq.Header.Set(echo.HeaderContentType, req.ContentType)
	} else if req.Body != nil {
		httpReq.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}

	rec := httptest.NewRecorder()
	ts.Echo.ServeHTTP(rec, httpReq)

	return Response{
		Code:    rec.Code,
		Body:    rec.Body.Bytes(),
		Headers: rec.Header(),
	}
}

// Get makes a GET request.
func (ts *TestServer) Get(path string) Response {
	return ts.Do(Request{Method: http.MethodGet, Path: path})
}

// Dispatch posts one event against the given state. A nil state starts a new session.
func (ts *TestServer) Dispatch(state *httpAdapter.FlowStateDTO, eventType, value string) Response {
	return ts.Do(Request{
		Method: http.MethodPost,
		Path:   "/api/v1/rental-search/dispatch",
		Body: httpAdapter.DispatchRequest{
			State: state,
			Event: httpAdapter.EventDTO{Type: eventType, Value: value},
		},
	})
}

// HealthRequest makes a health check request.
func (ts *TestServer) HealthRequest() Response {
	return ts.Get("/health")
}

// ParseDispatch parses the response body as a DispatchResponse.
func (r *Response) ParseDispatch() (*httpAdapter.DispatchResponse, error) {
	var resp httpAdapter.DispatchResponse
	if err := json.Unmarshal(r.Body, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Parse decodes the response body into v.
func (r *Response) Parse(v interface{}) error {
	return json.Unmarshal(r.Body, v)
}

// ParseError parses the response body to extract error information.
func (r *Response) ParseError() (map[string]interface{}, error) {
	var errResp map[string]interface{}
	if err := json.Unmarshal(r.Body, &errResp); err != nil {
		return nil, err
	}
	return errResp, nil
}

// Step is one event of a scripted session.
type Step struct {
	Type  string
	Value string
}

// StoreSession returns the events of a store pickup search in Pune.
func StoreSession(pickupDate, pickupTime string) []Step {
	return []Step{
		{Type: "select_city", Value: "pune"},
		{Type: "select_pickup_mode", Value: "store"},
		{Type: "select_store", Value: "pune-1"},
		{Type: "select_pickup_date", Value: pickupDate},
		{Type: "select_pickup_time", Value: pickupTime},
	}
}
