package models

import (
	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

// Request модели

// ReservationInput данные размещения при ручном добавлении или редактировании
type ReservationInput struct {
	CityID      int64    `json:"cityId"`
	CityName    string   `json:"cityName"`
	StartDate   string   `json:"startDate"` // "2024-03-01", дата заезда
	EndDate     string   `json:"endDate"`   // "2024-03-03", дата выезда
	Hotels      []string `json:"hotels"`
	Meal        *string  `json:"meal,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	TargetPrice *float64 `json:"targetPrice,omitempty"`
	FinalPrice  *float64 `json:"finalPrice,omitempty"`
}

// Response модели

// ReservationResponse размещение
type ReservationResponse struct {
	ID          int64    `json:"id"`
	BookingID   int64    `json:"bookingId"`
	CityID      int64    `json:"cityId"`
	CityName    string   `json:"cityName"`
	StartDate   string   `json:"startDate"`
	EndDate     string   `json:"endDate"`
	Nights      int      `json:"nights"`
	Hotels      []string `json:"hotels"`
	Meal        *string  `json:"meal,omitempty"`
	Currency    *string  `json:"currency,omitempty"`
	TargetPrice *float64 `json:"targetPrice,omitempty"`
	FinalPrice  *float64 `json:"finalPrice,omitempty"`
	Complete    bool     `json:"complete"`
}

// ReservationListResponse список размещений бронирования
type ReservationListResponse struct {
	BookingID    int64                 `json:"bookingId"`
	Reservations []ReservationResponse `json:"reservations"`
	Total        int                   `json:"total"`
}

// FromDomain конвертирует domain модель в response
func FromDomain(r domain.ReservationStub) ReservationResponse {
	hotels := r.Hotels
	if hotels == nil {
		hotels = []string{}
	}

	return ReservationResponse{
		ID:          r.ID,
		BookingID:   r.BookingID,
		CityID:      r.City.ID,
		CityName:    r.City.Name,
		StartDate:   dateutil.Format(r.Start),
		EndDate:     dateutil.Format(r.End),
		Nights:      r.Nights(),
		Hotels:      hotels,
		Meal:        r.Meal,
		Currency:    r.Currency,
		TargetPrice: r.TargetPrice,
		FinalPrice:  r.FinalPrice,
		Complete:    r.IsComplete(),
	}
}

// FromDomainList конвертирует список размещений в response
func FromDomainList(bookingID int64, list []domain.ReservationStub) *ReservationListResponse {
	out := make([]ReservationResponse, len(list))
	for i, r := range list {
		out[i] = FromDomain(r)
	}
	return &ReservationListResponse{
		BookingID:    bookingID,
		Reservations: out,
		Total:        len(out),
	}
}
