package models

import "github.com/m04kA/SMC-TourBackoffice/internal/domain"

// CityDTO город дня маршрута
type CityDTO struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// DayInput данные дня маршрута. Последний город - место ночевки.
type DayInput struct {
	Cities             []CityDTO `json:"cities"`
	Activities         []string  `json:"activities"`
	OptionalActivities []string  `json:"optionalActivities"`
}

// DayResponse день маршрута
type DayResponse struct {
	ID                 int64     `json:"id"`
	BookingID          int64     `json:"bookingId"`
	DayIndex           int       `json:"dayIndex"`
	Cities             []CityDTO `json:"cities"`
	OvernightCity      *CityDTO  `json:"overnightCity,omitempty"`
	Activities         []string  `json:"activities"`
	OptionalActivities []string  `json:"optionalActivities"`
}

// DayListResponse маршрут бронирования
type DayListResponse struct {
	BookingID int64         `json:"bookingId"`
	Days      []DayResponse `json:"days"`
	Total     int           `json:"total"`
}

// FromDomain конвертирует domain модель в response
func FromDomain(d domain.ItineraryDay) DayResponse {
	cities := make([]CityDTO, len(d.Cities))
	for i, c := range d.Cities {
		cities[i] = CityDTO{ID: c.ID, Name: c.Name}
	}

	resp := DayResponse{
		ID:                 d.ID,
		BookingID:          d.BookingID,
		DayIndex:           d.DayIndex,
		Cities:             cities,
		Activities:         activityNames(d.Activities),
		OptionalActivities: activityNames(d.OptionalActivities),
	}
	if c, ok := d.OvernightCity(); ok {
		resp.OvernightCity = &CityDTO{ID: c.ID, Name: c.Name}
	}
	return resp
}

// FromDomainList конвертирует маршрут в response
func FromDomainList(bookingID int64, days []domain.ItineraryDay) *DayListResponse {
	out := make([]DayResponse, len(days))
	for i, d := range days {
		out[i] = FromDomain(d)
	}
	return &DayListResponse{
		BookingID: bookingID,
		Days:      out,
		Total:     len(out),
	}
}

func activityNames(activities []domain.Activity) []string {
	out := make([]string, len(activities))
	for i, a := range activities {
		out[i] = string(a)
	}
	return out
}
