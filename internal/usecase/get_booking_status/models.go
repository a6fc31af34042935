package get_booking_status

import "github.com/m04kA/SMC-TourBackoffice/internal/domain"

// Request запрос статуса бронирования
type Request struct {
	BookingID int64
}

// Response статус бронирования, рассчитанный на момент запроса
type Response struct {
	Status       domain.BookingStatus
	Reservations []domain.ReservationStub
	FlightLegs   []domain.FlightLeg
}
