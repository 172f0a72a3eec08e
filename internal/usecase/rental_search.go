package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/vehicle-marketplace/rental-search/internal/availability"
	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/logger"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
)

// DefaultListingBaseURL is where a ready search is sent.
const DefaultListingBaseURL = "/bikes"

// RentalSearchUseCase defines the rental search operations.
type RentalSearchUseCase interface {
	// Reference returns today's date and the buffered clock.
	Reference(ctx context.Context) ReferenceResult

	// Calendar renders a month grid for the date picker.
	Calendar(ctx context.Context, q CalendarQuery) (*CalendarResult, error)

	// TimeSlots lists the start times of a date with their selectability.
	TimeSlots(ctx context.Context, q SlotQuery) ([]Slot, error)

	// DeriveDropoff computes the dropoff exactly one rental duration after pickup.
	DeriveDropoff(ctx context.Context, pickupDate, pickupTime string) (*DropoffResult, error)

	// ValidateSelection checks a candidate date and time for a role.
	ValidateSelection(ctx context.Context, q SelectionQuery) (SelectionResult, error)

	// Dispatch applies one event to a search session state.
	Dispatch(ctx context.Context, state domain.FlowState, ev domain.Event) (*DispatchResult, error)

	// Cities lists the rental cities with their stores.
	Cities(ctx context.Context) ([]domain.City, error)

	// City returns one city by ID.
	City(ctx context.Context, id string) (*domain.City, error)

	// RefreshCities drops any cached directory data and lists the cities again.
	RefreshCities(ctx context.Context) ([]domain.City, error)

	// Resume rebuilds a search session from listing query criteria.
	Resume(ctx context.Context, criteria domain.SearchCriteria) (*DispatchResult, error)
}

// Invalidator is implemented by directories that cache their lookups.
type Invalidator interface {
	Invalidate(ctx context.Context) error
}

// FlowObserver receives the outcome of every dispatched event.
type FlowObserver interface {
	ObserveFlowEvent(event string, applied bool)
}

// Config contains configuration options for the use case.
type Config struct {
	ListingBaseURL string
	Observer       FlowObserver
	Logger         *logger.Logger
}

type rentalSearchUseCase struct {
	calc      *availability.Calculator
	flow      *Flow
	directory domain.StoreDirectory
	listing   string
	observer  FlowObserver
	log       *logger.Logger
}

// NewRentalSearchUseCase creates a RentalSearchUseCase.
// If config is nil, the default listing URL and a disabled logger are used.
func NewRentalSearchUseCase(calc *availability.Calculator, directory domain.StoreDirectory, config *Config) RentalSearchUseCase {
	uc := &rentalSearchUseCase{
		calc:      calc,
		flow:      NewFlow(calc),
		directory: directory,
		listing:   DefaultListingBaseURL,
		log:       logger.Nop(),
	}
	if config != nil {
		if config.ListingBaseURL != "" {
			uc.listing = config.ListingBaseURL
		}
		if config.Logger != nil {
			uc.log = config.Logger
		}
		uc.observer = config.Observer
	}
	return uc
}

func (uc *rentalSearchUseCase) Reference(_ context.Context) ReferenceResult {
	cfg := uc.calc.Config()
	return ReferenceResult{
		Reference:     uc.calc.ReferenceTime(),
		BufferMinutes: int(cfg.BookingBuffer / time.Minute),
		Timezone:      cfg.Location.String(),
	}
}

func (uc *rentalSearchUseCase) Calendar(_ context.Context, q CalendarQuery) (*CalendarResult, error) {
	ref := uc.calc.ReferenceTime()
	view := ref.CurrentView()

	if q.Month != nil {
		if *q.Month < 0 || *q.Month > 11 {
			return nil, domain.WrapInvalidRequest("month must be between 0 and 11, got %d", *q.Month)
		}
		view.Month = *q.Month
	}
	if q.Year != nil {
		view.Year = *q.Year
	}

	// Years outside the picker range snap to the nearest allowed year.
	years := uc.calc.YearOptions(ref)
	view.Year = max(years[0], min(view.Year, years[len(years)-1]))

	return &CalendarResult{
		View:        view,
		YearOptions: years,
		Today:       ref.Today,
		Days:        uc.calc.CalendarGrid(view.Month, view.Year, ref.Today),
	}, nil
}

func (uc *rentalSearchUseCase) TimeSlots(_ context.Context, q SlotQuery) ([]Slot, error) {
	if !timeutil.IsValidDate(q.Date) {
		return nil, domain.WrapInvalidRequest("date must be YYYY-MM-DD, got %q", q.Date)
	}
	if err := checkPickup(q.PickupDate, q.PickupTime); err != nil {
		return nil, err
	}

	ref := uc.calc.ReferenceTime()
	if q.Date < ref.Today {
		return nil, domain.WrapInvalidRequest("date %s is in the past", q.Date)
	}

	slots := uc.calc.TimeSlots(q.Date, ref.Today, ref.NowWithBuffer)
	out := make([]Slot, 0, len(slots))
	for _, s := range slots {
		out = append(out, Slot{
			TimeSlot: s,
			Selectable: availability.ValidateTime(s.Value, q.Date, ref.Today, ref.NowWithBuffer,
				q.Role, q.PickupDate, q.PickupTime),
		})
	}
	return out, nil
}

func (uc *rentalSearchUseCase) DeriveDropoff(_ context.Context, pickupDate, pickupTime string) (*DropoffResult, error) {
	if !timeutil.IsValidDate(pickupDate) || !timeutil.IsValidClock(pickupTime) {
		return nil, domain.WrapInvalidRequest("pickup must be YYYY-MM-DD and HH:MM, got %q %q", pickupDate, pickupTime)
	}
	date, clock := uc.calc.DeriveDropoff(pickupDate, pickupTime)
	return &DropoffResult{DropoffDate: date, DropoffTime: clock}, nil
}

func (uc *rentalSearchUseCase) ValidateSelection(_ context.Context, q SelectionQuery) (SelectionResult, error) {
	if !timeutil.IsValidDate(q.Date) {
		return SelectionResult{}, domain.WrapInvalidRequest("date must be YYYY-MM-DD, got %q", q.Date)
	}
	if q.Time != "" && !timeutil.IsValidClock(q.Time) {
		return SelectionResult{}, domain.WrapInvalidRequest("time must be HH:MM, got %q", q.Time)
	}
	if err := checkPickup(q.PickupDate, q.PickupTime); err != nil {
		return SelectionResult{}, err
	}

	ref := uc.calc.ReferenceTime()
	result := SelectionResult{
		DateValid: availability.ValidateDate(q.Date, ref.Today, q.Role, q.PickupDate),
	}
	if q.Time != "" {
		result.TimeValid = uc.calc.OnSlotGrid(q.Time) && availability.ValidateTime(q.Time, q.Date, ref.Today, ref.NowWithBuffer,
			q.Role, q.PickupDate, q.PickupTime)
	}
	return result, nil
}

func (uc *rentalSearchUseCase) Dispatch(ctx context.Context, state domain.FlowState, ev domain.Event) (*DispatchResult, error) {
	if bad := state.Criteria.MalformedFields(); len(bad) > 0 {
		return nil, domain.WrapInvalidRequest("malformed criteria fields: %v", bad)
	}
	if !state.Active.IsValid() {
		return nil, domain.WrapInvalidRequest("unknown selector %q", state.Active)
	}
	if state.Calendar.Month < 0 || state.Calendar.Month > 11 {
		return nil, domain.WrapInvalidRequest("calendar month must be between 0 and 11, got %d", state.Calendar.Month)
	}
	if state.Step == "" {
		state.Step = domain.StepIdle
	}
	ev.Value = strings.TrimSpace(ev.Value)

	// Criteria come from the client and are re-checked against the current time.
	state = uc.flow.Sanitize(state)

	applied := true
	if err := uc.checkDirectory(ctx, state.Criteria, ev); err != nil {
		if !domain.IsNotFound(err) {
			return nil, err
		}
		uc.log.Debug().Err(err).Str("event", string(ev.Type)).Msg("event rejected by directory")
		applied = false
	}

	next := state
	if applied {
		next, applied = uc.flow.Dispatch(state, ev)
	}

	if uc.observer != nil {
		uc.observer.ObserveFlowEvent(string(ev.Type), applied)
	}
	uc.log.Debug().
		Str("event", string(ev.Type)).
		Bool("applied", applied).
		Str("step", string(next.Step)).
		Msg("flow event dispatched")

	return uc.result(next, applied), nil
}

// checkDirectory rejects cities and stores the directory does not know.
func (uc *rentalSearchUseCase) checkDirectory(ctx context.Context, c domain.SearchCriteria, ev domain.Event) error {
	switch ev.Type {
	case domain.EventSelectCity:
		_, err := uc.City(ctx, ev.Value)
		return err
	case domain.EventSelectStore:
		city, err := uc.City(ctx, c.City)
		if err != nil {
			return err
		}
		if _, ok := city.FindStore(ev.Value); !ok {
			return fmt.Errorf("%w: %s in %s", domain.ErrStoreNotFound, ev.Value, c.City)
		}
	}
	return nil
}

func (uc *rentalSearchUseCase) result(state domain.FlowState, applied bool) *DispatchResult {
	values := state.Criteria.Values()
	query := make(map[string]string, len(values))
	for k := range values {
		query[k] = values.Get(k)
	}

	missing := state.Criteria.MissingFields()
	if missing == nil {
		missing = []string{}
	}

	res := &DispatchResult{
		State:         state,
		Applied:       applied,
		Ready:         len(missing) == 0,
		MissingFields: missing,
		Query:         query,
	}
	if res.Ready {
		res.ListingURL = state.Criteria.ListingURL(uc.listing)
	}
	return res
}

func (uc *rentalSearchUseCase) Cities(ctx context.Context) ([]domain.City, error) {
	cities, err := uc.directory.Cities(ctx)
	if err != nil {
		uc.log.WithDirectory(uc.directory.Name()).Error().Err(err).Msg("directory lookup failed")
		return nil, fmt.Errorf("list cities: %w", err)
	}
	return cities, nil
}

func (uc *rentalSearchUseCase) City(ctx context.Context, id string) (*domain.City, error) {
	cities, err := uc.Cities(ctx)
	if err != nil {
		return nil, err
	}
	city, ok := domain.FindCity(cities, id)
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrCityNotFound, id)
	}
	return &city, nil
}

func (uc *rentalSearchUseCase) RefreshCities(ctx context.Context) ([]domain.City, error) {
	if inv, ok := uc.directory.(Invalidator); ok {
		if err := inv.Invalidate(ctx); err != nil {
			uc.log.WithDirectory(uc.directory.Name()).Warn().Err(err).Msg("directory cache invalidation failed")
		}
	}
	return uc.Cities(ctx)
}

// Resume accepts criteria as the listing view received them. Values that no
// longer pass the selection rules are dropped; an unknown city or store is an error.
func (uc *rentalSearchUseCase) Resume(ctx context.Context, criteria domain.SearchCriteria) (*DispatchResult, error) {
	if bad := criteria.MalformedFields(); len(bad) > 0 {
		return nil, domain.WrapInvalidRequest("malformed criteria fields: %v", bad)
	}

	if criteria.City != "" {
		city, err := uc.City(ctx, criteria.City)
		if err != nil {
			return nil, err
		}
		if criteria.Store != "" {
			if _, ok := city.FindStore(criteria.Store); !ok {
				return nil, fmt.Errorf("%w: %s in %s", domain.ErrStoreNotFound, criteria.Store, criteria.City)
			}
		}
	}

	ref := uc.calc.ReferenceTime()
	state := domain.NewFlowState(ref.CurrentView())
	state.Criteria = criteria
	state.Step = regress(criteria)
	if criteria.Ready() {
		state.Step = domain.StepReady
	}
	state = uc.flow.Sanitize(state)

	if state.Criteria.PickupDate != "" {
		d, err := time.Parse(timeutil.DateLayout, state.Criteria.PickupDate)
		view := domain.CalendarView{Month: int(d.Month()) - 1, Year: d.Year()}
		if err == nil && uc.calc.ViewInRange(view, ref) {
			state.Calendar = view
		}
	}

	uc.log.WithCity(criteria.City).Debug().Str("step", string(state.Step)).Msg("search resumed")
	return uc.result(state, true), nil
}

// checkPickup validates the optional pickup reference of a dropoff query.
func checkPickup(date, clock string) error {
	if date != "" && !timeutil.IsValidDate(date) {
		return domain.WrapInvalidRequest("pickupDate must be YYYY-MM-DD, got %q", date)
	}
	if clock != "" && !timeutil.IsValidClock(clock) {
		return domain.WrapInvalidRequest("pickupTime must be HH:MM, got %q", clock)
	}
	return nil
}

var _ RentalSearchUseCase = (*rentalSearchUseCase)(nil)
