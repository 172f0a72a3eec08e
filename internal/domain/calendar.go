package domain

// Role tells the validator which end of the rental window is being chosen.
type Role string

// Selection roles.
const (
	RolePickup  Role = "pickup"
	RoleDropoff Role = "dropoff"
)

// IsValid checks if the role is a known value.
func (r Role) IsValid() bool {
	return r == RolePickup || r == RoleDropoff
}

// ParseRole converts a string to a Role, defaulting to pickup.
func ParseRole(s string) Role {
	if r := Role(s); r.IsValid() {
		return r
	}
	return RolePickup
}

// DayCell is one cell of a month grid.
type DayCell struct {
	// Day is the day of month (1-31)
	Day int `json:"day"`

	// IsCurrentMonth is false for the leading and trailing filler days
	IsCurrentMonth bool `json:"isCurrentMonth"`

	// ISODate is the cell's calendar date as YYYY-MM-DD
	ISODate string `json:"isoDate"`

	// IsPast is true when ISODate is before today
	IsPast bool `json:"isPast"`

	// IsToday is true when ISODate equals today
	IsToday bool `json:"isToday"`
}

// TimeSlot is one selectable half-hour start time.
type TimeSlot struct {
	// Value is the 24-hour clock value (HH:MM)
	Value string `json:"value"`

	// Display is the 12-hour label (e.g., "9:30 AM")
	Display string `json:"display"`
}

// CalendarView is the month the picker is showing, independent of the selected dates.
type CalendarView struct {
	// Month is zero-based (0 = January)
	Month int `json:"month"`

	// Year is the four-digit year
	Year int `json:"year"`
}

// Reference is the "now" snapshot every date/time comparison is made against.
type Reference struct {
	// Today is the local calendar date (YYYY-MM-DD)
	Today string `json:"today"`

	// NowWithBuffer is the local clock plus the booking buffer (HH:MM)
	NowWithBuffer string `json:"nowWithBuffer"`

	// Year is the local calendar year, the lower bound for year selection
	Year int `json:"year"`

	// Month is the zero-based local calendar month
	Month int `json:"month"`
}

// CurrentView returns the calendar view of the reference month.
func (r Reference) CurrentView() CalendarView {
	return CalendarView{Month: r.Month, Year: r.Year}
}
