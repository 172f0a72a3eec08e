package availability

import (
	"fmt"
	"iter"
	"time"

	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
)

// CalendarDays yields the cells of a Sunday-first month grid: the trailing days
// of the previous month, every day of the month, then the leading days of the
// next month until the last week is full. month is zero-based. The sequence is
// recomputed on each iteration.
func CalendarDays(month, year int, today string) iter.Seq[domain.DayCell] {
	return func(yield func(domain.DayCell) bool) {
		first := time.Date(year, time.Month(month+1), 1, 0, 0, 0, 0, time.UTC)
		leading := int(first.Weekday())
		daysInMonth := timeutil.DaysIn(first.Year(), first.Month())

		total := leading + daysInMonth
		if rem := total % 7; rem != 0 {
			total += 7 - rem
		}

		// Index 0 is "leading" days before the 1st; time.Date normalizes the
		// day offset across month and year boundaries.
		for i := 0; i < total; i++ {
			d := first.AddDate(0, 0, i-leading)
			iso := fmt.Sprintf("%04d-%02d-%02d", d.Year(), int(d.Month()), d.Day())
			cell := domain.DayCell{
				Day:            d.Day(),
				IsCurrentMonth: d.Month() == first.Month() && d.Year() == first.Year(),
				ISODate:        iso,
				IsPast:         iso < today,
				IsToday:        iso == today,
			}
			if !yield(cell) {
				return
			}
		}
	}
}

// YearOptions returns current..current+span inclusive.
func YearOptions(current, span int) []int {
	years := make([]int, 0, span+1)
	for y := current; y <= current+span; y++ {
		years = append(years, y)
	}
	return years
}

// NextMonth moves the view forward one month, rolling into January of the next year.
func NextMonth(v domain.CalendarView) domain.CalendarView {
	if v.Month >= 11 {
		return domain.CalendarView{Month: 0, Year: v.Year + 1}
	}
	return domain.CalendarView{Month: v.Month + 1, Year: v.Year}
}

// PrevMonth moves the view back one month, rolling into December of the previous year.
func PrevMonth(v domain.CalendarView) domain.CalendarView {
	if v.Month <= 0 {
		return domain.CalendarView{Month: 11, Year: v.Year - 1}
	}
	return domain.CalendarView{Month: v.Month - 1, Year: v.Year}
}
