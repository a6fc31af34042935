// Package derivation turns a day-by-day itinerary into hotel reservation stubs.
package derivation

import (
	"time"

	"github.com/m04kA/SMC-TourBackoffice/internal/domain"
	"github.com/m04kA/SMC-TourBackoffice/pkg/dateutil"
)

// DeriveReservations builds the minimal list of stays for an itinerary starting on tripStart.
//
// Consecutive days with the same overnight city collapse into one stay. The itinerary
// must already be sorted by DayIndex. An empty itinerary, a missing start date or a day
// without cities yields an empty list. bookingID may be nil for a booking that is not
// persisted yet, stubs then carry domain.UnassignedBookingID.
//
// The last itinerary day never adds a night to a stay it continues: checkout happens
// that morning, so the stay keeps End = date of the last day.
func DeriveReservations(itinerary []domain.ItineraryDay, tripStart *time.Time, bookingID *int64) []domain.ReservationStub {
	result := make([]domain.ReservationStub, 0, len(itinerary))

	if len(itinerary) == 0 || tripStart == nil || tripStart.IsZero() {
		return result
	}
	for i := range itinerary {
		if !itinerary[i].HasCities() {
			return result
		}
	}

	owner := domain.UnassignedBookingID
	if bookingID != nil {
		owner = *bookingID
	}

	currentDate := dateutil.DateOnly(*tripStart)
	lastDay := len(itinerary) - 1
	active := -1

	for i := range itinerary {
		city, _ := itinerary[i].OvernightCity()

		if active >= 0 && result[active].City.ID == city.ID {
			if i == lastDay {
				result[active].End = currentDate
			} else {
				result[active].End = dateutil.AddDays(currentDate, 1)
			}
		} else {
			result = append(result, newStub(owner, city, currentDate))
			active = len(result) - 1
		}

		currentDate = dateutil.AddDays(currentDate, 1)
	}

	return result
}

func newStub(bookingID int64, city domain.City, start time.Time) domain.ReservationStub {
	return domain.ReservationStub{
		BookingID: bookingID,
		City:      domain.City{ID: city.ID, Name: city.Name},
		Start:     start,
		End:       dateutil.AddDays(start, 1),
		Hotels:    []string{},
	}
}
