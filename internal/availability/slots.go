package availability

import (
	"fmt"
	"iter"
	"time"

	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/infrastructure/timeutil"
)

// Slots yields start times every interval from 00:00 through the end of the day.
// On today's date, slots earlier than nowWithBuffer are left out entirely.
func Slots(interval time.Duration, selectedDate, today, nowWithBuffer string) iter.Seq[domain.TimeSlot] {
	return func(yield func(domain.TimeSlot) bool) {
		if interval <= 0 {
			return
		}
		isToday := selectedDate == today
		step := int(interval / time.Minute)

		for m := 0; m < 24*60; m += step {
			value := fmt.Sprintf("%02d:%02d", m/60, m%60)
			if isToday && value < nowWithBuffer {
				continue
			}
			if !yield(domain.TimeSlot{Value: value, Display: timeutil.DisplayClock(value)}) {
				return
			}
		}
	}
}
