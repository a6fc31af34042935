package events

import "time"

// Типы событий для слоя синхронизации
const (
	TypeReservationsRegenerated = "reservations_regenerated"
	TypeItineraryReordered      = "itinerary_reordered"
	TypeReservationChanged      = "reservation_changed"
)

// Event событие об изменении бронирования
type Event struct {
	Type              string    `json:"type"`
	BookingID         int64     `json:"bookingId"`
	ReservationsCount int       `json:"reservationsCount"`
	Version           int64     `json:"version"`
	OccurredAt        time.Time `json:"occurredAt"`
}
