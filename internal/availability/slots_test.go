package availability

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vehicle-marketplace/rental-search/internal/domain"
)

func slotValues(slots []domain.TimeSlot) []string {
	values := make([]string, len(slots))
	for i, s := range slots {
		values[i] = s.Value
	}
	return values
}

func TestSlots_FullDay(t *testing.T) {
	slots := slices.Collect(Slots(DefaultSlotInterval, "2025-06-16", "2025-06-15", "14:30"))

	require.Len(t, slots, 48)
	assert.Equal(t, domain.TimeSlot{Value: "00:00", Display: "12:00 AM"}, slots[0])
	assert.Equal(t, domain.TimeSlot{Value: "09:30", Display: "9:30 AM"}, slots[19])
	assert.Equal(t, domain.TimeSlot{Value: "12:00", Display: "12:00 PM"}, slots[24])
	assert.Equal(t, domain.TimeSlot{Value: "23:30", Display: "11:30 PM"}, slots[47])
}

func TestSlots_TodayExcludesTimesBeforeBuffer(t *testing.T) {
	slots := slices.Collect(Slots(DefaultSlotInterval, "2025-06-15", "2025-06-15", "14:30"))

	want := []string{
		"14:30", "15:00", "15:30", "16:00", "16:30", "17:00", "17:30", "18:00", "18:30", "19:00",
		"19:30", "20:00", "20:30", "21:00", "21:30", "22:00", "22:30", "23:00", "23:30",
	}
	assert.Equal(t, want, slotValues(slots))
}

func TestSlots_TodayBufferBetweenSlots(t *testing.T) {
	slots := slices.Collect(Slots(DefaultSlotInterval, "2025-06-15", "2025-06-15", "14:37"))

	require.NotEmpty(t, slots)
	assert.Equal(t, "15:00", slots[0].Value)
}

func TestSlots_TodayAfterLastSlot(t *testing.T) {
	slots := slices.Collect(Slots(DefaultSlotInterval, "2025-06-15", "2025-06-15", EndOfDayClock))
	assert.Empty(t, slots)
}

func TestSlots_NonPositiveInterval(t *testing.T) {
	assert.Empty(t, slices.Collect(Slots(0, "2025-06-16", "2025-06-15", "14:30")))
}

func TestSlots_Restartable(t *testing.T) {
	seq := Slots(DefaultSlotInterval, "2025-06-15", "2025-06-15", "20:00")
	assert.Equal(t, slices.Collect(seq), slices.Collect(seq))
	assert.Len(t, slices.Collect(seq), 8)
}
