package get_booking_status

import (
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/internal/service/reservations/models"
	getBookingStatus "github.com/m04kA/SMC-TourBackoffice/internal/usecase/get_booking_status"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

// StatusResponse оценки полноты бронирования
type StatusResponse struct {
	BookingID         int64   `json:"bookingId"`
	Reference         string  `json:"reference"`
	TripStart         *string `json:"tripStart,omitempty"`
	TripEnd           *string `json:"tripEnd,omitempty"`
	ReservationGrade  string  `json:"reservationGrade"`
	FlightGrade       string  `json:"flightGrade"`
	Overall           string  `json:"overall"`
	ReservationsCount int     `json:"reservationsCount"`
	FlightLegsCount   int     `json:"flightLegsCount"`
}

// CityResponse город
type CityResponse struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// FlightLegResponse перелет
type FlightLegResponse struct {
	ID           int64         `json:"id"`
	FlightNumber string        `json:"flightNumber"`
	Date         *string       `json:"date,omitempty"`
	FromCity     *CityResponse `json:"fromCity,omitempty"`
	ToCity       *CityResponse `json:"toCity,omitempty"`
	Complete     bool          `json:"complete"`
}

// BookingStatusResponse HTTP response model
type BookingStatusResponse struct {
	Status       StatusResponse               `json:"status"`
	Reservations []models.ReservationResponse `json:"reservations"`
	FlightLegs   []FlightLegResponse          `json:"flightLegs"`
}

// FromDomainStatus конвертирует статус бронирования
func FromDomainStatus(s domain.BookingStatus) StatusResponse {
	return StatusResponse{
		BookingID:         s.BookingID,
		Reference:         s.Reference,
		TripStart:         formatDate(s.TripStart),
		TripEnd:           formatDate(s.TripEnd),
		ReservationGrade:  string(s.ReservationGrade),
		FlightGrade:       string(s.FlightGrade),
		Overall:           string(s.Overall),
		ReservationsCount: s.ReservationsCount,
		FlightLegsCount:   s.FlightLegsCount,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBookingStatus.Response) *BookingStatusResponse {
	legs := make([]FlightLegResponse, len(resp.FlightLegs))
	for i, l := range resp.FlightLegs {
		legs[i] = FlightLegResponse{
			ID:           l.ID,
			FlightNumber: l.FlightNumber,
			Date:         formatDate(l.Date),
			FromCity:     toCity(l.FromCity),
			ToCity:       toCity(l.ToCity),
			Complete:     l.IsComplete(),
		}
	}

	return &BookingStatusResponse{
		Status:       FromDomainStatus(resp.Status),
		Reservations: models.FromDomainList(resp.Status.BookingID, resp.Reservations).Reservations,
		FlightLegs:   legs,
	}
}

func formatDate(t *time.Time) *string {
	if t == nil || t.IsZero() {
		return nil
	}
	s := dateutil.Format(*t)
	return &s
}

func toCity(c *domain.City) *CityResponse {
	if c == nil {
		return nil
	}
	return &CityResponse{ID: c.ID, Name: c.Name}
}
