package domain

import (
	"time"

	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

// Booking represents a tour booking as seen by the reservation core
type Booking struct {
	ID        int64
	Reference string

	TripStart *time.Time // arrival date
	TripEnd   *time.Time // departure date (exclusive for hotel nights)

	// Number of domestic flight legs the trip needs (arrival/departure pair by default)
	ExpectedFlightLegs int

	// Bumped on every change of the reservation list; used to detect
	// manual edits racing with a regeneration proposal
	ReservationsVersion int64

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasTripStart returns true if the arrival date is known
func (b *Booking) HasTripStart() bool {
	return b.TripStart != nil && !b.TripStart.IsZero()
}

// StaySpan returns the span of hotel nights expected for the trip.
// ok is false if either trip date is missing or the dates are inverted.
func (b *Booking) StaySpan() (DateSpan, bool) {
	if !b.HasTripStart() || b.TripEnd == nil || b.TripEnd.IsZero() {
		return DateSpan{}, false
	}
	days := dateutil.DaysBetween(*b.TripStart, *b.TripEnd)
	if days <= 0 {
		return DateSpan{}, false
	}
	return DateSpan{Start: dateutil.DateOnly(*b.TripStart), Days: days}, true
}

// FlightLegsExpected returns the expected number of legs, falling back to the default
func (b *Booking) FlightLegsExpected() int {
	if b.ExpectedFlightLegs > 0 {
		return b.ExpectedFlightLegs
	}
	return DefaultExpectedFlightLegs
}

// BookingsFilter filter for the traffic-sheet listing
type BookingsFilter struct {
	From *time.Time // trip start >= From (optional)
	To   *time.Time // trip start <= To (optional)

	// IncludeUndated also returns bookings whose trip start is not set yet
	IncludeUndated bool
}
