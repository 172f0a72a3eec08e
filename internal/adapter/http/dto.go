package http

// CriteriaDTO is the search being built. Every field is an empty string until chosen.
type CriteriaDTO struct {
	City            string `json:"city" example:"pune"`
	PickupMode      string `json:"pickupMode" example:"store"`
	Store           string `json:"store" example:"pune-1"`
	DeliveryAddress string `json:"deliveryAddress" example:""`
	PickupDate      string `json:"pickupDate" example:"2025-07-01"`
	PickupTime      string `json:"pickupTime" example:"09:00"`
	DropoffDate     string `json:"dropoffDate" example:"2025-07-02"`
	DropoffTime     string `json:"dropoffTime" example:"09:00"`
}

// CalendarViewDTO is the month shown by the date picker.
type CalendarViewDTO struct {
	Month int `json:"month" example:"6"`
	Year  int `json:"year" example:"2025"`
}

// FlowStateDTO is the session state the client echoes back on every dispatch.
type FlowStateDTO struct {
	Criteria          CriteriaDTO     `json:"criteria"`
	Step              string          `json:"step" example:"pickup_time_selected"`
	Active            string          `json:"active" example:""`
	Calendar          CalendarViewDTO `json:"calendar"`
	DropoffOverridden bool            `json:"dropoffOverridden" example:"false"`
}

// EventDTO is one user interaction.
type EventDTO struct {
	Type   string `json:"type" example:"select_pickup_time"`
	Value  string `json:"value,omitempty" example:"09:00"`
	Number int    `json:"number,omitempty" example:"0"`
}

// DispatchResponse is the outcome of a dispatched event.
type DispatchResponse struct {
	State         FlowStateDTO      `json:"state"`
	Applied       bool              `json:"applied" example:"true"`
	Ready         bool              `json:"ready" example:"true"`
	MissingFields []string          `json:"missingFields"`
	Query         map[string]string `json:"query"`
	ListingURL    string            `json:"listingUrl,omitempty" example:"/bikes?city=pune&deliveryAddress=&dropoffDate=2025-07-02&dropoffTime=09%3A00&pickupDate=2025-07-01&pickupMode=store&pickupTime=09%3A00&store=pune-1"`
}

// ReferenceResponse is the "now" snapshot used for every comparison.
type ReferenceResponse struct {
	Today         string `json:"today" example:"2025-06-30"`
	NowWithBuffer string `json:"nowWithBuffer" example:"10:30"`
	Month         int    `json:"month" example:"5"`
	Year          int    `json:"year" example:"2025"`
	BufferMinutes int    `json:"bufferMinutes" example:"30"`
	Timezone      string `json:"timezone" example:"Asia/Kolkata"`
}

// DayCellDTO is one cell of the month grid.
type DayCellDTO struct {
	Day            int    `json:"day" example:"1"`
	IsCurrentMonth bool   `json:"isCurrentMonth" example:"true"`
	ISODate        string `json:"isoDate" example:"2025-07-01"`
	IsPast         bool   `json:"isPast" example:"false"`
	IsToday        bool   `json:"isToday" example:"false"`
}

// CalendarResponse is one rendered month.
type CalendarResponse struct {
	View        CalendarViewDTO `json:"view"`
	Today       string          `json:"today" example:"2025-06-30"`
	YearOptions []int           `json:"yearOptions" example:"2025,2026,2027"`
	Days        []DayCellDTO    `json:"days"`
}

// TimeSlotDTO is a start time with its selectability.
type TimeSlotDTO struct {
	Value      string `json:"value" example:"09:30"`
	Display    string `json:"display" example:"9:30 AM"`
	Selectable bool   `json:"selectable" example:"true"`
}

// TimeSlotsResponse lists the slots of one date.
type TimeSlotsResponse struct {
	Date  string        `json:"date" example:"2025-07-01"`
	Role  string        `json:"role" example:"pickup"`
	Total int           `json:"total" example:"48"`
	Slots []TimeSlotDTO `json:"slots"`
}

// DropoffResponse is a derived dropoff.
type DropoffResponse struct {
	DropoffDate string `json:"dropoffDate" example:"2025-07-02"`
	DropoffTime string `json:"dropoffTime" example:"09:00"`
}

// ValidateSelectionResponse reports whether a candidate can be chosen.
type ValidateSelectionResponse struct {
	DateValid bool `json:"dateValid" example:"true"`
	TimeValid bool `json:"timeValid" example:"false"`
}

// StoreDTO is a pickup store.
type StoreDTO struct {
	ID       string `json:"id" example:"pune-1"`
	Name     string `json:"name" example:"Pune Station"`
	Address  string `json:"address" example:"Station Road, Agarkar Nagar"`
	Capacity int    `json:"capacity" example:"40"`
}

// CityDTO is a rental city with its stores.
type CityDTO struct {
	ID     string     `json:"id" example:"pune"`
	Name   string     `json:"name" example:"Pune"`
	Stores []StoreDTO `json:"stores"`
}

// CitiesResponse lists every rental city.
type CitiesResponse struct {
	Total  int       `json:"total" example:"4"`
	Cities []CityDTO `json:"cities"`
}
