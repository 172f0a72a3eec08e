// Package availability implements the rental window calculator: the "now"
// reference, month grids, half-hour time slots, dropoff derivation, and the
// pickup/dropoff selection rules. Everything here is synchronous and free of I/O;
// the only input besides the arguments is the injected clock.
package availability

import (
	"slices"
	"time"

	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
)

// Default calculator settings.
const (
	// DefaultBookingBuffer is the minimum lead time before the earliest bookable slot today.
	DefaultBookingBuffer = 30 * time.Minute

	// DefaultRentalDuration is the span between pickup and the auto-derived dropoff.
	DefaultRentalDuration = 24 * time.Hour

	// DefaultSlotInterval is the spacing of selectable start times.
	DefaultSlotInterval = 30 * time.Minute

	// DefaultYearSpan is how many years past the current one the year picker offers.
	DefaultYearSpan = 2

	// EndOfDayClock sorts after every HH:MM slot of a day.
	EndOfDayClock = "24:00"
)

// Config holds the calculator settings.
type Config struct {
	BookingBuffer time.Duration

	// NoBookingBuffer makes today's slots bookable from the current minute.
	// BookingBuffer is ignored when set.
	NoBookingBuffer bool

	RentalDuration time.Duration
	SlotInterval   time.Duration
	YearSpan       int

	// Location is the timezone whose calendar defines "today"
	Location *time.Location
}

// DefaultConfig returns the default configuration in the machine's local timezone.
func DefaultConfig() Config {
	return Config{
		BookingBuffer:  DefaultBookingBuffer,
		RentalDuration: DefaultRentalDuration,
		SlotInterval:   DefaultSlotInterval,
		YearSpan:       DefaultYearSpan,
		Location:       time.Local,
	}
}

// Calculator computes and validates rental windows against a clock.
type Calculator struct {
	clock timeutil.Clock
	cfg   Config
}

// NewCalculator creates a Calculator. Zero or missing config values fall back
// to the defaults.
func NewCalculator(clock timeutil.Clock, config *Config) *Calculator {
	cfg := DefaultConfig()
	if config != nil {
		switch {
		case config.NoBookingBuffer:
			cfg.BookingBuffer = 0
		case config.BookingBuffer > 0:
			cfg.BookingBuffer = config.BookingBuffer
		}
		if config.RentalDuration > 0 {
			cfg.RentalDuration = config.RentalDuration
		}
		if config.SlotInterval > 0 && (24*time.Hour)%config.SlotInterval == 0 {
			cfg.SlotInterval = config.SlotInterval
		}
		if config.YearSpan > 0 {
			cfg.YearSpan = config.YearSpan
		}
		if config.Location != nil {
			cfg.Location = config.Location
		}
	}
	if clock == nil {
		clock = timeutil.NewRealClock()
	}

	return &Calculator{clock: clock, cfg: cfg}
}

// Config returns the effective configuration.
func (c *Calculator) Config() Config {
	return c.cfg
}

// ReferenceTime returns today's local date and the local clock advanced by the
// booking buffer. It reads the clock on every call.
//
// When the buffer pushes past midnight NowWithBuffer is EndOfDayClock, so no
// slot remains bookable today.
func (c *Calculator) ReferenceTime() domain.Reference {
	now := c.clock.Now().In(c.cfg.Location)
	today := timeutil.LocalDate(now, c.cfg.Location)

	buffered := now.Add(c.cfg.BookingBuffer)
	nowWithBuffer := timeutil.LocalClock(buffered, c.cfg.Location)
	if timeutil.LocalDate(buffered, c.cfg.Location) != today {
		nowWithBuffer = EndOfDayClock
	}

	return domain.Reference{
		Today:         today,
		NowWithBuffer: nowWithBuffer,
		Year:          now.Year(),
		Month:         int(now.Month()) - 1,
	}
}

// CalendarGrid returns the month grid for a zero-based month.
func (c *Calculator) CalendarGrid(month, year int, today string) []domain.DayCell {
	return slices.Collect(CalendarDays(month, year, today))
}

// TimeSlots returns the selectable start times of a date at the configured interval.
func (c *Calculator) TimeSlots(selectedDate, today, nowWithBuffer string) []domain.TimeSlot {
	return slices.Collect(Slots(c.cfg.SlotInterval, selectedDate, today, nowWithBuffer))
}

// OnSlotGrid reports whether an HH:MM value is one of the start times TimeSlots
// can yield at the configured interval.
func (c *Calculator) OnSlotGrid(clock string) bool {
	if !timeutil.IsValidClock(clock) {
		return false
	}
	t, _ := time.Parse(timeutil.ClockLayout, clock)
	offset := time.Duration(t.Hour())*time.Hour + time.Duration(t.Minute())*time.Minute
	return offset%c.cfg.SlotInterval == 0
}

// DeriveDropoff adds the rental duration to the pickup instant and returns the
// local dropoff date and time. Empty or unparsable input yields two empty strings.
func (c *Calculator) DeriveDropoff(pickupDate, pickupTime string) (string, string) {
	if pickupDate == "" || pickupTime == "" {
		return "", ""
	}
	pickup, err := timeutil.Combine(pickupDate, pickupTime, c.cfg.Location)
	if err != nil {
		return "", ""
	}
	dropoff := pickup.Add(c.cfg.RentalDuration)
	return timeutil.LocalDate(dropoff, c.cfg.Location), timeutil.LocalClock(dropoff, c.cfg.Location)
}

// YearOptions returns the years the picker offers for the given reference.
func (c *Calculator) YearOptions(ref domain.Reference) []int {
	return YearOptions(ref.Year, c.cfg.YearSpan)
}

// ViewInRange reports whether a calendar view is navigable from the reference.
func (c *Calculator) ViewInRange(v domain.CalendarView, ref domain.Reference) bool {
	return v.Month >= 0 && v.Month <= 11 &&
		v.Year >= ref.Year && v.Year <= ref.Year+c.cfg.YearSpan
}
