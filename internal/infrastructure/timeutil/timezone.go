package timeutil

import (
	"fmt"
	"regexp"
	"time"
)

// Wire layouts used by the rental search API.
const (
	// DateLayout is the ISO calendar date (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	// ClockLayout is the 24-hour wall clock (HH:MM).
	ClockLayout = "15:04"

	// DisplayLayout is the 12-hour label shown next to a time slot.
	DisplayLayout = "3:04 PM"
)

// Common timezone names.
const (
	UTC = "UTC"

	// IST is India Standard Time, the default booking timezone.
	IST = "Asia/Kolkata"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockPattern = regexp.MustCompile(`^\d{2}:\d{2}$`)
)

// LoadLocation loads a named timezone, wrapping the failure with the name.
func LoadLocation(name string) (*time.Location, error) {
	loc, err := time.LoadLocation(name)
	if err != nil {
		return nil, fmt.Errorf("failed to load timezone %q: %w", name, err)
	}
	return loc, nil
}

// MustLoadLocation loads a timezone or panics. Use for known-good names.
func MustLoadLocation(name string) *time.Location {
	loc, err := LoadLocation(name)
	if err != nil {
		panic(err)
	}
	return loc
}

// LocalDate formats t as YYYY-MM-DD using the calendar fields of loc.
// It never slices a UTC representation, so a late-evening instant stays on
// the local day.
func LocalDate(t time.Time, loc *time.Location) string {
	lt := t.In(loc)
	return fmt.Sprintf("%04d-%02d-%02d", lt.Year(), int(lt.Month()), lt.Day())
}

// LocalClock formats t as HH:MM using the clock fields of loc.
func LocalClock(t time.Time, loc *time.Location) string {
	lt := t.In(loc)
	return fmt.Sprintf("%02d:%02d", lt.Hour(), lt.Minute())
}

// IsValidDate reports whether s is a real calendar date in YYYY-MM-DD form.
func IsValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(DateLayout, s)
	return err == nil
}

// IsValidClock reports whether s is HH:MM with hours 00-23 and minutes 00-59.
func IsValidClock(s string) bool {
	if !clockPattern.MatchString(s) {
		return false
	}
	_, err := time.Parse(ClockLayout, s)
	return err == nil
}

// ParseDate parses YYYY-MM-DD as midnight in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	if !datePattern.MatchString(s) {
		return time.Time{}, fmt.Errorf("date %q must be in YYYY-MM-DD format", s)
	}
	return time.ParseInLocation(DateLayout, s, loc)
}

// Combine joins a YYYY-MM-DD date and an HH:MM clock into one instant in loc.
func Combine(date, clock string, loc *time.Location) (time.Time, error) {
	d, err := ParseDate(date, loc)
	if err != nil {
		return time.Time{}, err
	}
	if !IsValidClock(clock) {
		return time.Time{}, fmt.Errorf("time %q must be in HH:MM format", clock)
	}
	c, _ := time.Parse(ClockLayout, clock)
	return time.Date(d.Year(), d.Month(), d.Day(), c.Hour(), c.Minute(), 0, 0, loc), nil
}

// DisplayClock renders an HH:MM value as a 12-hour label such as "9:30 AM".
// Invalid input is returned unchanged.
func DisplayClock(clock string) string {
	c, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return clock
	}
	return c.Format(DisplayLayout)
}

// DaysIn returns the number of days in the given month.
func DaysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}
