package status

import "github.com/m04kA/SMC-TourBackoffice/internal/domain"

// ForBooking grades a booking's stays and flight legs; Overall is the worse of the two
func ForBooking(booking *domain.Booking, reservations []domain.ReservationStub, legs []domain.FlightLeg) domain.BookingStatus {
	span, _ := booking.StaySpan()

	reservationGrade := ClassifyReservations(reservations, span)
	flightGrade := ClassifyFlightLegs(legs, booking.FlightLegsExpected())

	return domain.BookingStatus{
		BookingID:         booking.ID,
		Reference:         booking.Reference,
		TripStart:         booking.TripStart,
		TripEnd:           booking.TripEnd,
		ReservationGrade:  reservationGrade,
		FlightGrade:       flightGrade,
		Overall:           domain.WorseOf(reservationGrade, flightGrade),
		ReservationsCount: len(reservations),
		FlightLegsCount:   len(legs),
	}
}
