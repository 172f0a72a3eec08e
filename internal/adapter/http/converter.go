package http

import (
	"github.com/vehicle-marketplace/rental-search/internal/domain"
	"github.com/vehicle-marketplace/rental-search/internal/usecase"
)

// ToCalendarQuery converts a validated CalendarRequest.
func ToCalendarQuery(req *CalendarRequest) usecase.CalendarQuery {
	return usecase.CalendarQuery{Month: req.month, Year: req.year}
}

// ToSlotQuery converts a validated TimeSlotsRequest. The role defaults to pickup.
func ToSlotQuery(req *TimeSlotsRequest) usecase.SlotQuery {
	return usecase.SlotQuery{
		Date:       req.Date,
		Role:       domain.ParseRole(req.Role),
		PickupDate: req.PickupDate,
		PickupTime: req.PickupTime,
	}
}

// ToSelectionQuery converts a validated ValidateSelectionRequest.
func ToSelectionQuery(req *ValidateSelectionRequest) usecase.SelectionQuery {
	return usecase.SelectionQuery{
		Date:       req.Date,
		Time:       req.Time,
		Role:       domain.ParseRole(req.Role),
		PickupDate: req.PickupDate,
		PickupTime: req.PickupTime,
	}
}

// ToDomainEvent converts an EventDTO.
func ToDomainEvent(dto EventDTO) domain.Event {
	return domain.Event{
		Type:   domain.EventType(dto.Type),
		Value:  dto.Value,
		Number: dto.Number,
	}
}

// ToDomainState converts a FlowStateDTO. A nil state is a fresh session on view.
func ToDomainState(dto *FlowStateDTO, view domain.CalendarView) domain.FlowState {
	if dto == nil {
		return domain.NewFlowState(view)
	}
	return domain.FlowState{
		Criteria: domain.SearchCriteria{
			City:            dto.Criteria.City,
			PickupMode:      domain.PickupMode(dto.Criteria.PickupMode),
			Store:           dto.Criteria.Store,
			DeliveryAddress: dto.Criteria.DeliveryAddress,
			PickupDate:      dto.Criteria.PickupDate,
			PickupTime:      dto.Criteria.PickupTime,
			DropoffDate:     dto.Criteria.DropoffDate,
			DropoffTime:     dto.Criteria.DropoffTime,
		},
		Step:              domain.Step(dto.Step),
		Active:            domain.Selector(dto.Active),
		Calendar:          domain.CalendarView{Month: dto.Calendar.Month, Year: dto.Calendar.Year},
		DropoffOverridden: dto.DropoffOverridden,
	}
}

// ToFlowStateDTO converts a domain FlowState.
func ToFlowStateDTO(s domain.FlowState) FlowStateDTO {
	c := s.Criteria
	return FlowStateDTO{
		Criteria: CriteriaDTO{
			City:            c.City,
			PickupMode:      string(c.PickupMode),
			Store:           c.Store,
			DeliveryAddress: c.DeliveryAddress,
			PickupDate:      c.PickupDate,
			PickupTime:      c.PickupTime,
			DropoffDate:     c.DropoffDate,
			DropoffTime:     c.DropoffTime,
		},
		Step:              string(s.Step),
		Active:            string(s.Active),
		Calendar:          CalendarViewDTO{Month: s.Calendar.Month, Year: s.Calendar.Year},
		DropoffOverridden: s.DropoffOverridden,
	}
}

// ToDispatchResponse converts a dispatch result.
func ToDispatchResponse(r *usecase.DispatchResult) DispatchResponse {
	return DispatchResponse{
		State:         ToFlowStateDTO(r.State),
		Applied:       r.Applied,
		Ready:         r.Ready,
		MissingFields: r.MissingFields,
		Query:         r.Query,
		ListingURL:    r.ListingURL,
	}
}

// ToReferenceResponse converts a reference snapshot.
func ToReferenceResponse(r usecase.ReferenceResult) ReferenceResponse {
	return ReferenceResponse{
		Today:         r.Today,
		NowWithBuffer: r.NowWithBuffer,
		Month:         r.Month,
		Year:          r.Year,
		BufferMinutes: r.BufferMinutes,
		Timezone:      r.Timezone,
	}
}

// ToCalendarResponse converts a rendered month.
func ToCalendarResponse(r *usecase.CalendarResult) CalendarResponse {
	days := make([]DayCellDTO, 0, len(r.Days))
	for _, d := range r.Days {
		days = append(days, DayCellDTO{
			Day:            d.Day,
			IsCurrentMonth: d.IsCurrentMonth,
			ISODate:        d.ISODate,
			IsPast:         d.IsPast,
			IsToday:        d.IsToday,
		})
	}
	return CalendarResponse{
		View:        CalendarViewDTO{Month: r.View.Month, Year: r.View.Year},
		Today:       r.Today,
		YearOptions: r.YearOptions,
		Days:        days,
	}
}

// ToTimeSlotsResponse converts the slots of a date.
func ToTimeSlotsResponse(q usecase.SlotQuery, slots []usecase.Slot) TimeSlotsResponse {
	dtos := make([]TimeSlotDTO, 0, len(slots))
	for _, s := range slots {
		dtos = append(dtos, TimeSlotDTO{Value: s.Value, Display: s.Display, Selectable: s.Selectable})
	}
	return TimeSlotsResponse{
		Date:  q.Date,
		Role:  string(q.Role),
		Total: len(dtos),
		Slots: dtos,
	}
}

// ToCityDTO converts a city and its stores.
func ToCityDTO(c domain.City) CityDTO {
	stores := make([]StoreDTO, 0, len(c.Stores))
	for _, s := range c.Stores {
		stores = append(stores, StoreDTO{ID: s.ID, Name: s.Name, Address: s.Address, Capacity: s.Capacity})
	}
	return CityDTO{ID: c.ID, Name: c.Name, Stores: stores}
}

// ToCitiesResponse converts the city list.
func ToCitiesResponse(cities []domain.City) CitiesResponse {
	dtos := make([]CityDTO, 0, len(cities))
	for _, c := range cities {
		dtos = append(dtos, ToCityDTO(c))
	}
	return CitiesResponse{Total: len(dtos), Cities: dtos}
}
